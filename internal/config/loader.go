package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	histerrors "github.com/chazuruo/termhist/internal/errors"
)

// DefaultConfigPath returns ~/.config/termhist/config.toml, or "" when the
// home directory is unknown.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "termhist", "config.toml")
}

// DetectConfigPath searches for a config file using XDG standard paths.
// Returns the first config file found, or empty string if none exists.
//
// Search order:
// 1. $XDG_CONFIG_HOME/termhist/config.toml
// 2. ~/.config/termhist/config.toml
func DetectConfigPath() string {
	var candidates []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates, filepath.Join(xdg, "termhist", "config.toml"))
	}
	if p := DefaultConfigPath(); p != "" {
		candidates = append(candidates, p)
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &histerrors.ConfigError{Path: path, Err: histerrors.ErrNotFound}
		}
		return nil, &histerrors.ConfigError{Path: path, Err: fmt.Errorf("%w: %w", histerrors.ErrIO, err)}
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &histerrors.ConfigError{Path: path, Err: fmt.Errorf("%w: %w", histerrors.ErrInvalid, err)}
	}

	applyEnvOverrides(cfg)
	expandPaths(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, &histerrors.ConfigError{Path: path, Err: fmt.Errorf("%w: %w", histerrors.ErrInvalid, err)}
	}

	return cfg, nil
}

// LoadWithDefaults attempts to load a config from XDG standard paths.
// If no config file is found, returns a config with all default values.
// If a config file is found but fails to load/validate, returns an error.
func LoadWithDefaults() (*Config, error) {
	configPath := DetectConfigPath()
	if configPath == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		expandPaths(cfg)

		if err := cfg.Validate(); err != nil {
			return nil, &histerrors.ConfigError{Err: fmt.Errorf("%w: %w", histerrors.ErrInvalid, err)}
		}
		return cfg, nil
	}

	return Load(configPath)
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: TERMHIST_<SECTION>_<FIELD>
//
// Examples:
// - TERMHIST_SHELL_PATH overrides [shell].path
// - TERMHIST_HISTORY_MAX_ROWS overrides [history].max_rows
//
// Boolean fields: use "true"/"false" strings
func applyEnvOverrides(c *Config) {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	applyBool := func(key string, target *bool) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				*target = true
			case "false", "0", "no", "off":
				*target = false
			}
		}
	}

	applyInt := func(key string, target *int) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			var i int
			if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
				*target = i
			}
		}
	}

	// Shell section
	applyString("TERMHIST_SHELL_PATH", &c.Shell.Path)
	applyString("TERMHIST_SHELL_HOME", &c.Shell.Home)
	applyString("TERMHIST_SHELL_PROFILE", &c.Shell.Profile)

	// History section
	applyInt("TERMHIST_HISTORY_MAX_ENTRIES", &c.History.MaxEntries)
	applyInt("TERMHIST_HISTORY_MAX_ROWS", &c.History.MaxRows)
	applyBool("TERMHIST_HISTORY_SKIP_BUILTINS", &c.History.SkipBuiltins)

	// Session section
	applyInt("TERMHIST_SESSION_CAPACITY", &c.Session.Capacity)

	// Output section
	applyString("TERMHIST_OUTPUT_FORMAT", &c.Output.Format)

	// TUI section
	applyBool("TERMHIST_TUI_ENABLED", &c.TUI.Enabled)
	applyBool("TERMHIST_TUI_SHOW_HELP", &c.TUI.ShowHelp)

	// Log section
	applyString("TERMHIST_LOG_LEVEL", &c.Log.Level)
}

// expandPaths expands ~ to the home directory in the home and profile overrides.
func expandPaths(c *Config) {
	c.Shell.Home = expandTilde(c.Shell.Home)
	c.Shell.Profile = expandTilde(c.Shell.Profile)
}

func expandTilde(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(homeDir, strings.TrimPrefix(strings.TrimPrefix(p, "~"), "/"))
}
