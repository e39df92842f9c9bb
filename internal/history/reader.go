package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	histerrors "github.com/chazuruo/termhist/internal/errors"
	"github.com/chazuruo/termhist/internal/logging"
)

// Reader loads the on-disk history of one shell.
type Reader struct {
	env    Env
	shell  Shell
	parser Parser
	logger *zap.Logger
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithLogger sets the logger for diagnostics. A nil logger disables logging.
func WithLogger(logger *zap.Logger) ReaderOption {
	return func(r *Reader) {
		r.logger = logging.OrNop(logger)
	}
}

// WithShell overrides the shell identity derived from Env.ShellPath.
func WithShell(shell Shell) ReaderOption {
	return func(r *Reader) {
		r.shell = shell
	}
}

// NewReader creates a Reader for env. The parser is chosen once here.
func NewReader(env Env, opts ...ReaderOption) *Reader {
	r := &Reader{
		env:    env,
		shell:  env.Shell(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.parser = ParserFor(r.shell)

	return r
}

// Shell returns the shell identity the reader parses.
func (r *Reader) Shell() Shell {
	return r.shell
}

// Path returns the history file the reader would open, or "" if none.
func (r *Reader) Path() string {
	return r.parser.Path(r.env)
}

// Read returns up to maxEntries commands, newest first.
//
// Read never fails: a missing home directory, a missing or unreadable file and
// malformed lines all produce fewer (possibly zero) entries. An empty, non-nil
// slice means no history is available.
func (r *Reader) Read(maxEntries int) []string {
	if maxEntries <= 0 {
		return []string{}
	}

	path := r.Path()
	if path == "" {
		if r.shell != ShellCmd {
			r.logger.Debug("no home directory for shell history",
				zap.Stringer("shell", r.shell))
		}
		return []string{}
	}

	entries, err := r.readFile(path, maxEntries)
	if err != nil {
		r.logError(err)
	}
	if entries == nil {
		entries = []string{}
	}

	r.logger.Debug("loaded shell history",
		zap.Stringer("shell", r.shell),
		zap.String("path", path),
		zap.Int("entries", len(entries)))

	return entries
}

func (r *Reader) readFile(path string, maxEntries int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, r.historyError(path, histerrors.ErrNotFound)
		}
		return nil, r.historyError(path, fmt.Errorf("%w: %w", histerrors.ErrIO, err))
	}
	defer func() { _ = file.Close() }()

	entries, err := r.parser.Parse(file, maxEntries)
	if err != nil {
		return entries, r.historyError(path, fmt.Errorf("%w: %w", histerrors.ErrIO, err))
	}

	return entries, nil
}

func (r *Reader) historyError(path string, err error) error {
	return &histerrors.HistoryError{Shell: r.shell.String(), Path: path, Err: err}
}

// logError records a degraded read. Missing files are routine (fresh machine,
// sandbox) and only logged at debug level.
func (r *Reader) logError(err error) {
	if histerrors.IsNotFound(err) {
		r.logger.Debug("shell history not found", zap.Error(err))
		return
	}
	r.logger.Warn("error reading shell history", zap.Error(err))
}

// ReadShellHistory reads up to maxEntries commands of the current user's shell
// history, newest first, using the process environment.
func ReadShellHistory(maxEntries int) []string {
	return NewReader(EnvFromOS()).Read(maxEntries)
}
