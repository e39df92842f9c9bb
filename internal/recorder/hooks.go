// Package recorder generates shell hooks that record the commands entered in
// a pane to a session file, the input of "termhist merge --session-file".
package recorder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/chazuruo/termhist/internal/history"
)

// SessionFileEnv names the variable the hooks export.
const SessionFileEnv = "TERMHIST_SESSION_FILE"

// HookGenerator generates shell hooks for capturing commands.
type HookGenerator struct {
	SessionFile string
	SessionID   string
}

// NewHookGenerator creates a hook generator with a fresh session file under
// dir. An empty dir uses os.TempDir().
func NewHookGenerator(dir string) *HookGenerator {
	if dir == "" {
		dir = os.TempDir()
	}
	id := uuid.New().String()
	return &HookGenerator{
		SessionFile: filepath.Join(dir, fmt.Sprintf("termhist-%s.session", id)),
		SessionID:   id,
	}
}

// GenerateBashHook generates a bash shell hook script.
func (h *HookGenerator) GenerateBashHook() string {
	// PROMPT_COMMAND runs before each prompt; history 1 is the command just run.
	return fmt.Sprintf(`# termhist session hook
export %[1]s=%[2]s
export TERMHIST_SESSION_ID=%[3]s
_TERMHIST_LAST_CMD=""

_termhist_capture() {
    local cmd
    cmd="$(HISTTIMEFORMAT= builtin history 1 | sed -e 's/^ *[0-9][0-9]*[* ] *//')"

    [[ -z "$cmd" ]] && return
    [[ "$cmd" == "$_TERMHIST_LAST_CMD" ]] && return

    printf '%%s\n' "${cmd//$'\n'/ }" >> "$%[1]s"
    _TERMHIST_LAST_CMD="$cmd"
}

PROMPT_COMMAND="_termhist_capture${PROMPT_COMMAND:+;$PROMPT_COMMAND}"
`, SessionFileEnv, shellQuote(h.SessionFile), shellQuote(h.SessionID))
}

// GenerateZshHook generates a zsh shell hook script.
func (h *HookGenerator) GenerateZshHook() string {
	// preexec receives the command line as typed.
	return fmt.Sprintf(`# termhist session hook
export %[1]s=%[2]s
export TERMHIST_SESSION_ID=%[3]s

_termhist_preexec() {
    [[ -z "$1" ]] && return
    print -r -- "${1//$'\n'/ }" >> "$%[1]s"
}

_termhist_exit() {
    rm -f -- "$%[1]s"
}

preexec_functions+=(_termhist_preexec)
zshexit_functions+=(_termhist_exit)
`, SessionFileEnv, shellQuote(h.SessionFile), shellQuote(h.SessionID))
}

// GenerateFishHook generates a fish shell hook script.
func (h *HookGenerator) GenerateFishHook() string {
	return fmt.Sprintf(`# termhist session hook
set -gx %[1]s %[2]s
set -gx TERMHIST_SESSION_ID %[3]s

function _termhist_preexec --on-event fish_preexec
    test -z "$argv"; and return
    string replace -a \n ' ' -- "$argv" >> $%[1]s
end

function _termhist_exit --on-event fish_exit
    rm -f -- $%[1]s
end
`, SessionFileEnv, shellQuote(h.SessionFile), shellQuote(h.SessionID))
}

// GenerateInitScript generates an init script for the given shell.
func (h *HookGenerator) GenerateInitScript(shell history.Shell) (string, error) {
	switch shell {
	case history.ShellBash:
		return h.GenerateBashHook(), nil
	case history.ShellZsh:
		return h.GenerateZshHook(), nil
	case history.ShellFish:
		return h.GenerateFishHook(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedShell, shell)
	}
}

// ErrUnsupportedShell is returned for shells without a hook.
var ErrUnsupportedShell = errors.New("unsupported shell")

// shellQuote single-quotes s for POSIX shells and fish.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
