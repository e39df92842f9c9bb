package main

import (
	"fmt"
	"os"

	"github.com/chazuruo/termhist/internal/cli"
	histerrors "github.com/chazuruo/termhist/internal/errors"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

func main() {
	rootCmd := cli.NewRootCommand(Version, Commit, Date)

	if err := rootCmd.Execute(); err != nil {
		if histerrors.IsCanceled(err) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
