package history

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

const (
	// maxLineSize bounds a single history line; zsh and fish can store very
	// long multi-line commands on one physical line.
	maxLineSize = 1024 * 1024

	readBufferSize = 64 * 1024
)

// ParserFor returns the parser for a shell identity. Unknown shells use the
// bash parser and location.
func ParserFor(s Shell) Parser {
	switch s {
	case ShellZsh:
		return NewZshParser()
	case ShellFish:
		return NewFishParser()
	case ShellPowerShell:
		return NewPowerShellParser()
	case ShellCmd:
		return NewCmdParser()
	default:
		return NewBashParser()
	}
}

// CleanLine strips a numbered history prefix from a line.
//
// The line is trimmed first. A leading run of ASCII digits followed by
// whitespace (or by nothing) is removed along with that whitespace:
//
//	" 1747  nist -v"        -> "nist -v"
//	"1748 cargo run -- -v"  -> "cargo run -- -v"
//	"123"                   -> ""
//
// Digits glued to the command ("7z x a.7z", "123abc") are part of the command
// and are kept. Bash only numbers lines as "<digits><whitespace>", so this
// narrower rule is used for every shell instead of stripping any digit run.
func CleanLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || !isDigit(line[0]) {
		return line
	}

	i := 0
	for i < len(line) && isDigit(line[i]) {
		i++
	}
	if i < len(line) && line[i] != ' ' && line[i] != '\t' {
		return line
	}

	return strings.TrimSpace(line[i:])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// readLines reads every line of r. A line longer than maxLineSize is dropped
// and reading continues with the next one. On a read error it returns the
// lines read so far together with the error.
func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReaderSize(r, readBufferSize)

	var (
		lines   []string
		line    []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return lines, err
		}

		if !tooLong {
			if len(line)+len(chunk) > maxLineSize {
				tooLong = true
				line = line[:0]
			} else {
				line = append(line, chunk...)
			}
		}
		if isPrefix {
			continue
		}

		if !tooLong {
			lines = append(lines, string(line))
		}
		line = line[:0]
		tooLong = false
	}
}

// collectNewestFirst walks lines from the end of the file backwards, keeping
// up to max commands accepted by parse.
func collectNewestFirst(lines []string, max int, parse func(string) (string, bool)) []string {
	entries := make([]string, 0, min(max, len(lines)))

	for i := len(lines) - 1; i >= 0 && len(entries) < max; i-- {
		cmd, ok := parse(lines[i])
		if !ok {
			continue
		}
		entries = append(entries, strings.ToValidUTF8(cmd, "\uFFFD"))
	}

	return entries
}

// isCommand reports whether a cleaned line can be used as a command entry.
func isCommand(cmd string) bool {
	return cmd != "" && !strings.HasPrefix(cmd, "#")
}

// firstExisting returns the first candidate that is a regular file, or the
// first candidate when none exists yet.
func firstExisting(candidates ...string) string {
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return candidates[0]
}

// CmdParser implements Parser for Windows cmd.exe, which keeps no history file.
type CmdParser struct{}

// NewCmdParser creates a new CmdParser.
func NewCmdParser() *CmdParser {
	return &CmdParser{}
}

// Path always returns "".
func (p *CmdParser) Path(Env) string {
	return ""
}

// Parse always returns an empty history.
func (p *CmdParser) Parse(io.Reader, int) ([]string, error) {
	return []string{}, nil
}
