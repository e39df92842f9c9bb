package history

import (
	"io"
	"strings"
)

const fishCmdPrefix = "- cmd:"

// FishParser implements Parser for fish history files.
//
// Fish stores a YAML-like list, appending each new entry at the end of the file:
//
//	- cmd: git status
//	  when: 1616420000
//	- cmd: cd /tmp
//	  when: 1616420100
//	  paths:
//	    - /tmp
//
// Only "- cmd:" lines are read. Fish escapes backslashes and newlines inside
// the value ("\\" and "\n"); both are decoded.
type FishParser struct{}

// NewFishParser creates a new FishParser.
func NewFishParser() *FishParser {
	return &FishParser{}
}

// Path returns the fish history file under the home directory.
func (p *FishParser) Path(env Env) string {
	return homeJoin(env.HomeDir, ".local", "share", "fish", "fish_history")
}

// Parse reads fish history from r and returns up to max commands, newest first.
func (p *FishParser) Parse(r io.Reader, max int) ([]string, error) {
	if max <= 0 {
		return []string{}, nil
	}

	lines, err := readLines(r)
	return collectNewestFirst(lines, max, parseFishLine), err
}

func parseFishLine(line string) (string, bool) {
	value, ok := strings.CutPrefix(line, fishCmdPrefix)
	if !ok {
		return "", false
	}

	cmd := strings.TrimSpace(unquote(strings.TrimSpace(value)))
	if cmd == "" {
		return "", false
	}

	return unescapeFish(cmd), true
}

// unquote removes one pair of matching quotes around the whole value.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func unescapeFish(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}

	return b.String()
}
