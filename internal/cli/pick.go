package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	histerrors "github.com/chazuruo/termhist/internal/errors"
	"github.com/chazuruo/termhist/internal/output"
	"github.com/chazuruo/termhist/internal/tui"
)

// pickFunc runs the interactive picker. Replaced in tests.
var pickFunc = tui.RunHistoryPicker

// NewPickCommand creates the pick command.
func NewPickCommand() *cobra.Command {
	opts := &MergeOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a command from the merged history",
		Long: `Open an interactive list of the merged history and print the chosen
command to stdout, ready to be replayed by the caller, e.g.

  eval "$(termhist pick --session-file "$TERMHIST_SESSION_FILE")"

With --no-tui or [tui].enabled = false, the merged list is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = GlobalConfigPath()
			return runPick(opts, cmd.OutOrStdout())
		},
	}

	addMergeFlags(cmd, opts)

	return cmd
}

func runPick(opts *MergeOptions, w io.Writer) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	merged, err := mergedHistory(opts, cfg)
	if err != nil {
		return err
	}

	if IsNoTUI() || !cfg.TUI.Enabled {
		return output.WriteCommands(w, output.FormatPlain, merged)
	}

	chosen, ok, err := pickFunc(merged, cfg.TUI.ShowHelp)
	if err != nil {
		return err
	}
	if !ok {
		return histerrors.Wrap(histerrors.ErrCanceled, "pick")
	}

	_, err = fmt.Fprintln(w, chosen)
	return err
}
