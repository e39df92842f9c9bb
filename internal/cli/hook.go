package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chazuruo/termhist/internal/history"
	"github.com/chazuruo/termhist/internal/recorder"
)

// HookOptions contains the options for the hook command.
type HookOptions struct {
	Shell string
	Dir   string
}

// NewHookCommand creates the hook command.
func NewHookCommand() *cobra.Command {
	opts := &HookOptions{}

	cmd := &cobra.Command{
		Use:   "hook <bash|zsh|fish>",
		Short: "Print a shell hook that records this pane's commands",
		Long: `Print a shell snippet that appends every command entered in the
current pane to a session file named by $TERMHIST_SESSION_FILE.

Add it to your shell startup file:
  eval "$(termhist hook zsh)"          # ~/.zshrc
  eval "$(termhist hook bash)"         # ~/.bashrc
  termhist hook fish | source          # ~/.config/fish/config.fish

Then recall with:
  termhist pick --session-file "$TERMHIST_SESSION_FILE"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Shell = args[0]
			return runHook(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", "", "directory for session files (default: system temp dir)")

	return cmd
}

func runHook(opts *HookOptions, w io.Writer) error {
	gen := recorder.NewHookGenerator(opts.Dir)

	script, err := gen.GenerateInitScript(history.DetectShell(opts.Shell))
	if err != nil {
		return fmt.Errorf("%w (hooks exist for bash, zsh, fish)", err)
	}

	_, err = io.WriteString(w, script)
	return err
}
