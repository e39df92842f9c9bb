package history

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// PowerShellParser implements Parser for the PSReadLine console host history.
//
// The file holds one command per line. Windows PowerShell 5 may write it as
// UTF-16 with a byte order mark, PowerShell 7 as UTF-8 (with or without BOM),
// so the input is decoded by BOM before lines are split.
type PowerShellParser struct{}

// NewPowerShellParser creates a new PowerShellParser.
func NewPowerShellParser() *PowerShellParser {
	return &PowerShellParser{}
}

// Path returns the console host history file. The base directory is
// %USERPROFILE% on Windows and $HOME elsewhere.
func (p *PowerShellParser) Path(env Env) string {
	base := env.profileHome()
	if base == "" {
		return ""
	}

	candidates := []string{
		homeJoin(base, "AppData", "Roaming", "Microsoft", "Windows", "PowerShell", "PSReadline", "ConsoleHost_history.txt"),
	}
	if !env.Windows {
		// pwsh on Linux and macOS keeps history under XDG data.
		candidates = append(candidates,
			homeJoin(base, ".local", "share", "powershell", "PSReadLine", "ConsoleHost_history.txt"))
	}

	return firstExisting(candidates...)
}

// Parse reads PowerShell history from r and returns up to max commands, newest first.
func (p *PowerShellParser) Parse(r io.Reader, max int) ([]string, error) {
	if max <= 0 {
		return []string{}, nil
	}

	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	lines, err := readLines(decoded)
	return collectNewestFirst(lines, max, parsePlainLine), err
}
