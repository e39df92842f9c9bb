package history

import "io"

// Shell identifies the user's interactive shell.
type Shell int

const (
	ShellUnknown Shell = iota
	ShellBash
	ShellZsh
	ShellFish
	ShellPowerShell
	ShellCmd
)

func (s Shell) String() string {
	switch s {
	case ShellBash:
		return "bash"
	case ShellZsh:
		return "zsh"
	case ShellFish:
		return "fish"
	case ShellPowerShell:
		return "powershell"
	case ShellCmd:
		return "cmd"
	default:
		return "unknown"
	}
}

// Env carries the environment the reader resolves shells and files from.
// Nothing in this package reads the process environment except EnvFromOS.
type Env struct {
	// ShellPath is the shell executable path ($SHELL).
	ShellPath string
	// HomeDir is the user's home directory ($HOME).
	HomeDir string
	// ProfileDir is the Windows profile directory (%USERPROFILE%).
	ProfileDir string
	// Windows selects Windows conventions for defaults and the PowerShell path.
	Windows bool
}

// Parser reads one shell's history format.
type Parser interface {
	// Path returns the history file for env, or "" when there is none to read.
	Path(env Env) string

	// Parse returns at most max commands from r, newest first. On error it
	// returns whatever was collected before the failure.
	Parse(r io.Reader, max int) ([]string, error)
}
