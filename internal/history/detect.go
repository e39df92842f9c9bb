package history

import (
	"os"
	"path/filepath"
	"runtime"
)

// DetectShell classifies a shell executable path by its final path segment.
// Matching is exact and case-sensitive; anything unrecognized is ShellUnknown.
func DetectShell(shellPath string) Shell {
	switch filepath.Base(shellPath) {
	case "bash":
		return ShellBash
	case "zsh":
		return ShellZsh
	case "fish":
		return ShellFish
	case "powershell", "pwsh":
		return ShellPowerShell
	case "cmd.exe", "cmd":
		return ShellCmd
	default:
		return ShellUnknown
	}
}

// DefaultShellPath is the shell assumed when $SHELL is unset.
func DefaultShellPath(windows bool) string {
	if windows {
		return "cmd.exe"
	}
	return "/bin/bash"
}

// EnvFromOS captures the process environment.
func EnvFromOS() Env {
	windows := runtime.GOOS == "windows"

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = DefaultShellPath(windows)
	}

	return Env{
		ShellPath:  shell,
		HomeDir:    os.Getenv("HOME"),
		ProfileDir: os.Getenv("USERPROFILE"),
		Windows:    windows,
	}
}

// Shell returns the shell identity declared by env.
func (e Env) Shell() Shell {
	return DetectShell(e.ShellPath)
}

// profileHome is the base of the PowerShell history path.
func (e Env) profileHome() string {
	if e.Windows {
		return e.ProfileDir
	}
	return e.HomeDir
}

// homeJoin joins elem onto dir, or returns "" when dir is unknown.
func homeJoin(dir string, elem ...string) string {
	if dir == "" {
		return ""
	}
	return filepath.Join(append([]string{dir}, elem...)...)
}
