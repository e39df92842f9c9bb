package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	histerrors "github.com/chazuruo/termhist/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return configPath
}

// TestDetectConfigPath tests the XDG search order.
func TestDetectConfigPath(t *testing.T) {
	home := t.TempDir()
	xdg := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", xdg)

	if got := DetectConfigPath(); got != "" {
		t.Fatalf("DetectConfigPath() = %q, want empty", got)
	}

	homeConfig := filepath.Join(home, ".config", "termhist", "config.toml")
	if err := Write(homeConfig, DefaultConfig()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if got := DetectConfigPath(); got != homeConfig {
		t.Errorf("DetectConfigPath() = %q, want %q", got, homeConfig)
	}

	xdgConfig := filepath.Join(xdg, "termhist", "config.toml")
	if err := Write(xdgConfig, DefaultConfig()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if got := DetectConfigPath(); got != xdgConfig {
		t.Errorf("DetectConfigPath() = %q, want %q", got, xdgConfig)
	}
}

// TestLoad_ValidConfig tests loading a valid config file.
func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
[shell]
path = "/bin/zsh"

[history]
max_entries = 200
max_rows = 20
skip_builtins = true

[output]
format = "json"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Shell.Path != "/bin/zsh" {
		t.Errorf("expected shell.path to be '/bin/zsh', got %q", cfg.Shell.Path)
	}
	if cfg.History.MaxEntries != 200 {
		t.Errorf("expected history.max_entries to be 200, got %d", cfg.History.MaxEntries)
	}
	if cfg.History.MaxRows != 20 {
		t.Errorf("expected history.max_rows to be 20, got %d", cfg.History.MaxRows)
	}
	if !cfg.History.SkipBuiltins {
		t.Error("expected history.skip_builtins to be true")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected output.format to be 'json', got %q", cfg.Output.Format)
	}

	// Unset sections keep defaults
	if cfg.Session.Capacity != 5 {
		t.Errorf("expected session.capacity default 5, got %d", cfg.Session.Capacity)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected log.level default 'warn', got %q", cfg.Log.Level)
	}
}

// TestLoad_FileNotFound tests that a missing file is a not-found config error.
func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if !histerrors.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
	if _, ok := histerrors.AsConfigError(err); !ok {
		t.Errorf("expected *ConfigError, got %T", err)
	}
}

// TestLoad_InvalidTOML tests that malformed TOML is rejected.
func TestLoad_InvalidTOML(t *testing.T) {
	configPath := writeConfig(t, "[history\nmax_rows = ")

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
	if !histerrors.IsInvalid(err) {
		t.Errorf("expected invalid error, got %v", err)
	}
}

// TestLoad_ValidationFails tests that values are validated after loading.
func TestLoad_ValidationFails(t *testing.T) {
	configPath := writeConfig(t, `
[output]
format = "xml"
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !histerrors.IsInvalid(err) {
		t.Errorf("expected invalid error, got %v", err)
	}
}

// TestLoad_EnvOverrides tests that TERMHIST_* variables win over the file.
func TestLoad_EnvOverrides(t *testing.T) {
	configPath := writeConfig(t, `
[history]
max_rows = 20

[tui]
enabled = true
`)

	t.Setenv("TERMHIST_HISTORY_MAX_ROWS", "7")
	t.Setenv("TERMHIST_TUI_ENABLED", "off")
	t.Setenv("TERMHIST_SHELL_PATH", "/usr/bin/fish")
	t.Setenv("TERMHIST_LOG_LEVEL", "debug")
	t.Setenv("TERMHIST_SESSION_CAPACITY", "not-a-number")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.History.MaxRows != 7 {
		t.Errorf("expected max_rows 7 from env, got %d", cfg.History.MaxRows)
	}
	if cfg.TUI.Enabled {
		t.Error("expected tui.enabled false from env")
	}
	if cfg.Shell.Path != "/usr/bin/fish" {
		t.Errorf("expected shell.path from env, got %q", cfg.Shell.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log.level from env, got %q", cfg.Log.Level)
	}
	if cfg.Session.Capacity != 5 {
		t.Errorf("unparseable int should be ignored, got %d", cfg.Session.Capacity)
	}
}

// TestLoad_ExpandsTilde tests ~ expansion for home and profile overrides.
func TestLoad_ExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configPath := writeConfig(t, `
[shell]
home = "~/sandbox"
profile = "~"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if want := filepath.Join(home, "sandbox"); cfg.Shell.Home != want {
		t.Errorf("shell.home = %q, want %q", cfg.Shell.Home, want)
	}
	if cfg.Shell.Profile != home {
		t.Errorf("shell.profile = %q, want %q", cfg.Shell.Profile, home)
	}
}

// TestLoadWithDefaults_NoConfig tests that defaults are returned without a file.
func TestLoadWithDefaults_NoConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("TERMHIST_OUTPUT_FORMAT", "yaml")

	cfg, err := LoadWithDefaults()
	if err != nil {
		t.Fatalf("LoadWithDefaults() returned error: %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("expected env override on defaults, got %q", cfg.Output.Format)
	}
	if cfg.History.MaxEntries != 500 {
		t.Errorf("expected default max_entries, got %d", cfg.History.MaxEntries)
	}
}

// TestLoadWithDefaults_BadEnv tests that invalid env overrides are reported.
func TestLoadWithDefaults_BadEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("TERMHIST_LOG_LEVEL", "loud")

	if _, err := LoadWithDefaults(); !histerrors.IsInvalid(err) {
		t.Errorf("expected invalid error, got %v", err)
	}
}

// TestWrite_RoundTrip tests that a written config loads back unchanged.
func TestWrite_RoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "dir", "config.toml")

	cfg := DefaultConfig()
	cfg.Shell.Path = "/bin/zsh"
	cfg.History.MaxRows = 12
	cfg.History.SkipBuiltins = true
	cfg.Output.Format = "table"

	if err := Write(configPath, cfg); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded config = %+v, want %+v", *loaded, *cfg)
	}
}

// TestWrite_HeaderAndNoTempFiles tests the generated header and that only the
// config file is left in the directory.
func TestWrite_HeaderAndNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	if err := Write(configPath, DefaultConfig()); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if !strings.HasPrefix(string(data), "# termhist configuration.") {
		t.Errorf("expected header comment, got %q", string(data))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "config.toml" {
		t.Errorf("unexpected files in config dir: %v", entries)
	}
}

// TestWrite_InvalidKeepsExisting tests that an invalid config is not written
// over an existing file.
func TestWrite_InvalidKeepsExisting(t *testing.T) {
	configPath := writeConfig(t, "[history]\nmax_rows = 9\n")

	cfg := DefaultConfig()
	cfg.Output.Format = "xml"
	if err := Write(configPath, cfg); err == nil {
		t.Fatal("expected error writing invalid config")
	}
	if err := Write(configPath, nil); err == nil {
		t.Fatal("expected error writing nil config")
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if loaded.History.MaxRows != 9 {
		t.Errorf("existing config was modified: max_rows = %d", loaded.History.MaxRows)
	}
}
