// Package config provides configuration management for termhist.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/chazuruo/termhist/internal/history"
	"github.com/chazuruo/termhist/internal/logging"
)

// Config is the top-level configuration struct for termhist.
// It contains all configuration sections as embedded structs.
type Config struct {
	Shell   ShellConfig   `toml:"shell"`
	History HistoryConfig `toml:"history"`
	Session SessionConfig `toml:"session"`
	Output  OutputConfig  `toml:"output"`
	TUI     TUIConfig     `toml:"tui"`
	Log     LogConfig     `toml:"log"`
}

// ShellConfig overrides what is normally taken from the process environment.
// Empty values fall through to the environment.
type ShellConfig struct {
	// Path overrides $SHELL (e.g., "/bin/zsh").
	Path string `toml:"path"`

	// Home overrides $HOME.
	Home string `toml:"home"`

	// Profile overrides %USERPROFILE% on Windows.
	Profile string `toml:"profile"`
}

// HistoryConfig contains history reading and merging settings.
type HistoryConfig struct {
	// MaxEntries is the most shell history entries read per invocation.
	MaxEntries int `toml:"max_entries"`

	// MaxRows is the length of the merged recall list.
	MaxRows int `toml:"max_rows"`

	// SkipBuiltins drops cd, ls, clear and similar commands before merging.
	SkipBuiltins bool `toml:"skip_builtins"`
}

// SessionConfig contains in-session history settings.
type SessionConfig struct {
	// Capacity is the number of commands a pane session keeps.
	Capacity int `toml:"capacity"`
}

// OutputConfig contains output settings.
type OutputConfig struct {
	// Format is the default output format.
	// Valid values: "plain", "table", "json", "yaml".
	Format string `toml:"format"`
}

// TUIConfig contains terminal UI settings.
type TUIConfig struct {
	// Enabled controls whether to use the TUI (when false, falls back to CLI).
	Enabled bool `toml:"enabled"`

	// ShowHelp controls whether to show the help line by default.
	ShowHelp bool `toml:"show_help"`
}

// LogConfig contains diagnostic logging settings.
type LogConfig struct {
	// Level is the minimum log level.
	// Valid values: "debug", "info", "warn", "error".
	Level string `toml:"level"`
}

// Formats lists the supported output formats.
var Formats = []string{"plain", "table", "json", "yaml"}

// LogLevels lists the supported log levels. Names are case-insensitive.
var LogLevels = []string{"debug", "info", "warn", "warning", "error"}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			MaxEntries:   500,
			MaxRows:      50,
			SkipBuiltins: false,
		},
		Session: SessionConfig{
			Capacity: history.DefaultSessionCapacity,
		},
		Output: OutputConfig{
			Format: "plain",
		},
		TUI: TUIConfig{
			Enabled:  true,
			ShowHelp: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks the configuration for valid values.
// Returns a nil error if the config is valid, or an error describing the problem.
func (c *Config) Validate() error {
	if c.History.MaxEntries < 0 {
		return fmt.Errorf("history.max_entries must be >= 0; got %d", c.History.MaxEntries)
	}
	if c.History.MaxRows < 0 {
		return fmt.Errorf("history.max_rows must be >= 0; got %d", c.History.MaxRows)
	}

	if c.Session.Capacity < 1 {
		return fmt.Errorf("session.capacity must be >= 1; got %d", c.Session.Capacity)
	}

	if !ValidFormat(c.Output.Format) {
		return fmt.Errorf("output.format must be one of: plain, table, json, yaml; got %q", c.Output.Format)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level must be one of: %s; got %q", strings.Join(LogLevels, ", "), c.Log.Level)
	}

	return nil
}

// ValidFormat reports whether f is a supported output format.
func ValidFormat(f string) bool {
	return slices.Contains(Formats, f)
}

// Env returns the process environment with the [shell] overrides applied.
func (c *Config) Env() history.Env {
	env := history.EnvFromOS()
	if c.Shell.Path != "" {
		env.ShellPath = c.Shell.Path
	}
	if c.Shell.Home != "" {
		env.HomeDir = c.Shell.Home
	}
	if c.Shell.Profile != "" {
		env.ProfileDir = c.Shell.Profile
	}
	return env
}
