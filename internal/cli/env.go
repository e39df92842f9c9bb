package cli

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/chazuruo/termhist/internal/config"
	"github.com/chazuruo/termhist/internal/logging"
	"github.com/chazuruo/termhist/internal/output"
)

// loadConfig loads the config at path, or from the XDG locations when path
// is empty.
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadWithDefaults()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the diagnostic logger. --log-level wins over [log].level.
// A bad level falls back to a no-op logger; diagnostics never stop a command.
func newLogger(cfg *config.Config) *zap.Logger {
	level := cfg.Log.Level
	if flag := GlobalLogLevel(); flag != "" {
		level = flag
	}

	logger, err := logging.New(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

// resolveFormat picks the --format value, falling back to [output].format.
func resolveFormat(flag string, cfg *config.Config) (output.Format, error) {
	if flag == "" {
		flag = cfg.Output.Format
	}
	return output.ParseFormat(flag)
}
