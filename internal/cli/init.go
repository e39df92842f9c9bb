package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/chazuruo/termhist/internal/config"
	"github.com/chazuruo/termhist/internal/history"
)

// InitOptions contains the options for the init command.
type InitOptions struct {
	ConfigPath string
	Force      bool

	// Scriptable/flag options for --no-tui mode
	ShellPath    string
	Rows         int
	SkipBuiltins bool
	Format       string
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a termhist configuration file",
		Long: `Write ~/.config/termhist/config.toml (or the --config path).

The init command asks for:
- The shell to read history from (defaults to $SHELL)
- How many rows the merged list keeps
- Whether to drop cd, ls, clear and similar commands
- The default output format

Use --no-tui with flags for scripted setup. An existing file is only
replaced with --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = GlobalConfigPath()
			return runInit(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing config file")
	cmd.Flags().StringVar(&opts.ShellPath, "shell-path", "", "shell binary path, overrides $SHELL")
	cmd.Flags().IntVar(&opts.Rows, "rows", 0, "rows kept in the merged list")
	cmd.Flags().BoolVar(&opts.SkipBuiltins, "skip-builtins", false, "drop cd, ls, clear and similar commands")
	cmd.Flags().StringVar(&opts.Format, "format", "", "default output format (plain, table, json, yaml)")

	return cmd
}

func runInit(opts *InitOptions, w io.Writer) error {
	configPath := getConfigPath(opts.ConfigPath)
	if configPath == "" {
		return fmt.Errorf("cannot determine config path; pass --config")
	}

	if _, err := os.Stat(configPath); err == nil && !opts.Force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}

	cfg := config.DefaultConfig()

	if IsNoTUI() {
		applyInitFlags(cfg, opts)
	} else if err := runInitForm(cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if err := config.Write(configPath, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(w, "Configuration written to: %s\n", configPath)
	return nil
}

// applyInitFlags copies the scriptable flags onto cfg.
func applyInitFlags(cfg *config.Config, opts *InitOptions) {
	if opts.ShellPath != "" {
		cfg.Shell.Path = opts.ShellPath
	}
	if opts.Rows != 0 {
		cfg.History.MaxRows = opts.Rows
	}
	if opts.SkipBuiltins {
		cfg.History.SkipBuiltins = true
	}
	if opts.Format != "" {
		cfg.Output.Format = opts.Format
	}
}

// runInitForm asks for the config values with a huh form. Replaced in tests.
var runInitForm = func(cfg *config.Config) error {
	shellPath := history.EnvFromOS().ShellPath
	rows := strconv.Itoa(cfg.History.MaxRows)

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Shell").
				Description("Path of the shell whose history to read").
				Value(&shellPath),
			huh.NewInput().
				Title("Rows").
				Description("How many commands the merged list keeps").
				Value(&rows).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 {
						return fmt.Errorf("enter a number >= 0")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Skip builtins?").
				Description("Drop cd, ls, clear and similar commands").
				Value(&cfg.History.SkipBuiltins),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Options(huh.NewOptions(config.Formats...)...).
				Value(&cfg.Output.Format),
			huh.NewConfirm().
				Title("Use the interactive picker?").
				Value(&cfg.TUI.Enabled),
		),
	).Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	if shellPath != history.EnvFromOS().ShellPath {
		cfg.Shell.Path = shellPath
	}
	cfg.History.MaxRows, _ = strconv.Atoi(rows)
	return nil
}

// getConfigPath returns the config file path.
func getConfigPath(override string) string {
	if override != "" {
		return override
	}
	return config.DefaultConfigPath()
}
