package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chazuruo/termhist/internal/app"
	"github.com/chazuruo/termhist/internal/config"
	"github.com/chazuruo/termhist/internal/history"
	"github.com/chazuruo/termhist/internal/output"
)

// MergeOptions contains the options for the merge and pick commands.
type MergeOptions struct {
	ConfigPath   string
	SessionFile  string
	Session      []string
	Rows         int
	Limit        int
	SkipBuiltins bool
	Shell        string
	Format       string
}

// NewMergeCommand creates the merge command.
func NewMergeCommand() *cobra.Command {
	opts := &MergeOptions{}

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge shell history with a pane's session commands",
		Long: `Combine the shell's saved history with commands entered in the current
terminal pane into one recall list: newest first, each command once.

Session commands are given oldest first, either repeated with --session or
one per line in --session-file ("-" reads stdin). Only the newest
[session].capacity of them are kept.

Examples:
  termhist merge --session "make" --session "go test ./..."
  printf 'ls\nmake\n' | termhist merge --session-file - --rows 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = GlobalConfigPath()
			return runMerge(opts, cmd.OutOrStdout())
		},
	}

	addMergeFlags(cmd, opts)
	cmd.Flags().StringVar(&opts.Format, "format", "", "output format (plain, table, json, yaml)")

	return cmd
}

func addMergeFlags(cmd *cobra.Command, opts *MergeOptions) {
	cmd.Flags().StringVar(&opts.SessionFile, "session-file", "", `file of session commands, oldest first ("-" for stdin)`)
	cmd.Flags().StringArrayVar(&opts.Session, "session", nil, "session command, oldest first (repeatable)")
	cmd.Flags().IntVar(&opts.Rows, "rows", 0, "maximum rows in the merged list (default [history].max_rows)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "shell history entries to read (default [history].max_entries)")
	cmd.Flags().BoolVar(&opts.SkipBuiltins, "skip-builtins", false, "drop cd, ls, clear and similar commands")
	cmd.Flags().StringVar(&opts.Shell, "shell", "", "shell to read (bash, zsh, fish, pwsh, cmd)")
}

func runMerge(opts *MergeOptions, w io.Writer) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	format, err := resolveFormat(opts.Format, cfg)
	if err != nil {
		return err
	}

	merged, err := mergedHistory(opts, cfg)
	if err != nil {
		return err
	}

	if err := output.WriteCommands(w, format, merged); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// mergedHistory builds the combined recall list described by opts.
func mergedHistory(opts *MergeOptions, cfg *config.Config) ([]string, error) {
	readerOpts, err := shellOverride(opts.Shell)
	if err != nil {
		return nil, err
	}

	var sessionCmds []string
	if opts.SessionFile != "" {
		sessionCmds, err = app.ReadSessionFile(opts.SessionFile)
		if err != nil {
			return nil, err
		}
	}
	sessionCmds = append(sessionCmds, opts.Session...)
	session := app.NewSession(cfg.Session.Capacity, sessionCmds)

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	appOpts := app.Options{
		MaxEntries:   cfg.History.MaxEntries,
		MaxRows:      cfg.History.MaxRows,
		SkipBuiltins: cfg.History.SkipBuiltins || opts.SkipBuiltins,
	}
	if opts.Limit != 0 {
		appOpts.MaxEntries = opts.Limit
	}
	if opts.Rows != 0 {
		appOpts.MaxRows = opts.Rows
	}

	reader := history.NewReader(cfg.Env(), append(readerOpts, history.WithLogger(logger))...)
	merged := app.LoadHistory(reader, session.Commands(), appOpts)

	logger.Debug("merged history",
		zap.String("session", session.ID()),
		zap.Int("session_commands", session.Len()),
		zap.Int("rows", len(merged)))

	return merged, nil
}
