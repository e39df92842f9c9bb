package history

import (
	"io"
	"strings"
)

// zshMeta marks a metafied byte in zsh history; the following byte is XORed with 32.
const zshMeta = 0x83

// ZshParser implements Parser for zsh history files.
//
// Zsh extended history format: ": <timestamp>:<duration>;<command>"
//
// Example:
//
//	: 1616420000:0;ls -la
//	: 1616420100:1;git status
//
// The command is the field between the first and second ";". Lines without
// the metadata separator are treated as malformed and skipped.
type ZshParser struct{}

// NewZshParser creates a new ZshParser.
func NewZshParser() *ZshParser {
	return &ZshParser{}
}

// Path returns the zsh history file under the home directory.
func (p *ZshParser) Path(env Env) string {
	if env.HomeDir == "" {
		return ""
	}
	return firstExisting(
		homeJoin(env.HomeDir, ".zsh_history"),
		homeJoin(env.HomeDir, ".zhistory"),
		homeJoin(env.HomeDir, ".histfile"),
	)
}

// Parse reads zsh history from r and returns up to max commands, newest first.
func (p *ZshParser) Parse(r io.Reader, max int) ([]string, error) {
	if max <= 0 {
		return []string{}, nil
	}

	lines, err := readLines(r)
	return collectNewestFirst(lines, max, parseZshLine), err
}

func parseZshLine(line string) (string, bool) {
	_, rest, ok := strings.Cut(unmetafy(line), ";")
	if !ok {
		return "", false
	}
	cmd, _, _ := strings.Cut(rest, ";")

	cmd = strings.TrimSpace(cmd)
	return cmd, isCommand(cmd)
}

// unmetafy decodes zsh's metafied encoding of non-ASCII bytes.
func unmetafy(s string) string {
	i := strings.IndexByte(s, zshMeta)
	if i < 0 {
		return s
	}

	b := make([]byte, 0, len(s))
	b = append(b, s[:i]...)
	for ; i < len(s); i++ {
		if s[i] == zshMeta && i+1 < len(s) {
			i++
			b = append(b, s[i]^32)
			continue
		}
		b = append(b, s[i])
	}

	return string(b)
}
