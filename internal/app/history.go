// Package app holds the operations behind the termhist commands, independent
// of cobra and the TUI.
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chazuruo/termhist/internal/history"
)

// HistorySource yields shell history newest first. *history.Reader satisfies it.
type HistorySource interface {
	Read(maxEntries int) []string
}

// Options controls how the combined view is built.
type Options struct {
	MaxEntries   int  // shell history entries to read
	MaxRows      int  // length of the merged list
	SkipBuiltins bool // drop cd, ls, clear and friends
}

// LoadHistory reads shell history from src and merges it with the pane's
// session commands (oldest first). The result is newest first, free of
// duplicates, and at most opts.MaxRows long.
func LoadHistory(src HistorySource, session []string, opts Options) []string {
	shell := history.Chronological(src.Read(opts.MaxEntries))

	if opts.SkipBuiltins {
		shell = history.FilterBuiltins(shell)
		session = history.FilterBuiltins(session)
	}

	return history.Merge(shell, session, opts.MaxRows)
}

// NewSession builds a pane session from commands in entry order, applying the
// session's blank and repeat rules.
func NewSession(capacity int, commands []string) *history.Session {
	s := history.NewSession(capacity)
	for _, cmd := range commands {
		s.Add(cmd)
	}
	return s
}

// ReadSessionFile reads session commands, one per line and oldest first.
// A path of "-" reads standard input.
func ReadSessionFile(path string) ([]string, error) {
	if path == "-" {
		return ReadSession(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session file: %w", err)
	}
	defer f.Close()

	cmds, err := ReadSession(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file %s: %w", path, err)
	}
	return cmds, nil
}

// ReadSession reads session commands from r, skipping blank lines.
func ReadSession(r io.Reader) ([]string, error) {
	var cmds []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmds = append(cmds, line)
	}
	if err := scanner.Err(); err != nil {
		return cmds, err
	}
	return cmds, nil
}
