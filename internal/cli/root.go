package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the termhist command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "termhist",
		Short: "Shell history recall for terminal panes",
		Long: `termhist reads the history your shell saved (bash, zsh, fish, PowerShell)
and merges it with the commands entered in a terminal pane into one
deduplicated, newest-first recall list.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	AddGlobalFlags(rootCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(NewShellCommand())
	rootCmd.AddCommand(NewShowCommand())
	rootCmd.AddCommand(NewMergeCommand())
	rootCmd.AddCommand(NewPickCommand())
	rootCmd.AddCommand(NewHookCommand())
	rootCmd.AddCommand(NewInitCommand())
	rootCmd.AddCommand(NewVersionCommand(version, commit, date))

	return rootCmd
}
