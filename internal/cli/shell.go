package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chazuruo/termhist/internal/app"
	"github.com/chazuruo/termhist/internal/output"
)

// ShellOptions contains the options for the shell command.
type ShellOptions struct {
	ConfigPath string
	Format     string
}

// NewShellCommand creates the shell command.
func NewShellCommand() *cobra.Command {
	opts := &ShellOptions{}

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Show the detected shell and its history file",
		Long: `Show which shell termhist detected and where its history file is.

The shell comes from $SHELL (or cmd.exe on Windows when unset), unless
[shell].path in the config overrides it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = GlobalConfigPath()
			return runShell(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "", "output format (plain, table, json, yaml)")

	return cmd
}

func runShell(opts *ShellOptions, w io.Writer) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	format, err := resolveFormat(opts.Format, cfg)
	if err != nil {
		return err
	}

	info := app.DescribeShell(cfg.Env())
	if err := output.WriteShellInfo(w, format, info); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
