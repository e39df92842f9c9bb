// Package cli provides global state and utilities for CLI commands.
package cli

import (
	"sync"

	"github.com/spf13/cobra"
)

var (
	// NoTUI indicates that TUI/interactive mode should be disabled.
	// This is set by the global --no-tui flag.
	NoTUI bool

	// ConfigPath is the config file given with --config.
	ConfigPath string

	// LogLevel overrides [log].level when set with --log-level.
	LogLevel string

	// globalMutex protects the global flag values for concurrent access.
	globalMutex sync.RWMutex
)

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&NoTUI, "no-tui", false,
		"disable TUI/interactive mode; use plain text output")
	cmd.PersistentFlags().StringVar(&ConfigPath, "config", "",
		"config file path (default ~/.config/termhist/config.toml)")
	cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "",
		"diagnostic log level: debug, info, warn, error")
}

// IsNoTUI returns true if TUI mode is disabled.
func IsNoTUI() bool {
	globalMutex.RLock()
	defer globalMutex.RUnlock()
	return NoTUI
}

// GlobalConfigPath returns the --config value.
func GlobalConfigPath() string {
	globalMutex.RLock()
	defer globalMutex.RUnlock()
	return ConfigPath
}

// GlobalLogLevel returns the --log-level value.
func GlobalLogLevel() string {
	globalMutex.RLock()
	defer globalMutex.RUnlock()
	return LogLevel
}
