package history

import (
	"io"
	"strings"
)

// BashParser implements Parser for bash history files.
//
// Bash writes one command per line. With HISTTIMEFORMAT set, each command is
// preceded by a "#<unix timestamp>" line, which is dropped like any comment:
//
//	#1616420000
//	ls -la
//	#1616420100
//	git status
//
// Lines copied from `history` output keep their number ("  12  git status");
// the number is stripped by CleanLine.
type BashParser struct{}

// NewBashParser creates a new BashParser.
func NewBashParser() *BashParser {
	return &BashParser{}
}

// Path returns the bash history file under the home directory.
func (p *BashParser) Path(env Env) string {
	if env.HomeDir == "" {
		return ""
	}
	return firstExisting(
		homeJoin(env.HomeDir, ".bash_history"),
		homeJoin(env.HomeDir, ".local", "share", "bash", "history"),
	)
}

// Parse reads bash history from r and returns up to max commands, newest first.
func (p *BashParser) Parse(r io.Reader, max int) ([]string, error) {
	if max <= 0 {
		return []string{}, nil
	}

	lines, err := readLines(r)
	return collectNewestFirst(lines, max, parsePlainLine), err
}

// parsePlainLine handles the one-command-per-line formats (bash, PowerShell).
func parsePlainLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if !isCommand(line) {
		return "", false
	}

	cmd := CleanLine(line)
	return cmd, isCommand(cmd)
}
