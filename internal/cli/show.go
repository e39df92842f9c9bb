package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chazuruo/termhist/internal/history"
	"github.com/chazuruo/termhist/internal/output"
)

// ShowOptions contains the options for the show command.
type ShowOptions struct {
	ConfigPath string
	Limit      int
	Format     string
	Shell      string
}

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	opts := &ShowOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the shell's saved history, newest first",
		Long: `Print the commands saved by your shell, newest first.

Missing or unreadable history files are not errors: the list is simply
empty. Use --log-level debug to see why.

Examples:
  termhist show                 # newest 500 commands
  termhist show --limit 20      # newest 20 commands
  termhist show --shell fish    # read fish history regardless of $SHELL
  termhist show --format json   # JSON array`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = GlobalConfigPath()
			return runShow(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "maximum number of commands (default [history].max_entries)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "output format (plain, table, json, yaml)")
	cmd.Flags().StringVar(&opts.Shell, "shell", "", "shell to read (bash, zsh, fish, pwsh, cmd)")

	return cmd
}

func runShow(opts *ShowOptions, w io.Writer) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	format, err := resolveFormat(opts.Format, cfg)
	if err != nil {
		return err
	}

	readerOpts, err := shellOverride(opts.Shell)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	limit := opts.Limit
	if limit == 0 {
		limit = cfg.History.MaxEntries
	}

	reader := history.NewReader(cfg.Env(), append(readerOpts, history.WithLogger(logger))...)
	if err := output.WriteCommands(w, format, reader.Read(limit)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// shellOverride turns a --shell value into reader options.
func shellOverride(name string) ([]history.ReaderOption, error) {
	if name == "" {
		return nil, nil
	}
	shell := history.DetectShell(name)
	if shell == history.ShellUnknown {
		return nil, fmt.Errorf("unknown shell %q (must be bash, zsh, fish, pwsh, or cmd)", name)
	}
	return []history.ReaderOption{history.WithShell(shell)}, nil
}
