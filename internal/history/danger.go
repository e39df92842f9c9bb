package history

import (
	"fmt"
	"regexp"
	"strings"
)

// dangerPatterns lists commands that destroy data or rewrite shared state.
var dangerPatterns = []struct {
	pattern *regexp.Regexp
	name    string
	risk    string
}{
	{
		pattern: regexp.MustCompile(`(?i)\brm\s+(-rf|-fr|-r|--recursive)\s+/`),
		name:    "Recursive delete",
		risk:    "deletes everything under the target path",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bdd\s+.*\bof=/dev/`),
		name:    "Disk overwrite",
		risk:    "destroys all data on the target device",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bmkfs(\.|\s)`),
		name:    "Filesystem creation",
		risk:    "replaces the existing filesystem",
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(shutdown|reboot|halt|poweroff)\b`),
		name:    "Power state",
		risk:    "stops or restarts the machine",
	},
	{
		pattern: regexp.MustCompile(`\bgit\s+branch\s+-D\b`),
		name:    "Git branch deletion",
		risk:    "drops unmerged commits",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bgit\s+push\s+.*(--force\b|-f\b)`),
		name:    "Force push",
		risk:    "may overwrite remote history",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bgit\s+reset\s+--hard\b`),
		name:    "Hard reset",
		risk:    "discards uncommitted changes",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bchmod\s+-R\s+777\b`),
		name:    "World-writable permissions",
		risk:    "makes every file writable by anyone",
	},
	{
		pattern: regexp.MustCompile(`(?i)\bRemove-Item\b.*-Recurse\b`),
		name:    "Recursive delete",
		risk:    "deletes everything under the target path",
	},
}

// Danger describes why a history entry is risky to re-run.
type Danger struct {
	Name    string
	Risk    string
	Command string
}

// Warning returns a one-line warning for display.
func (d *Danger) Warning() string {
	return fmt.Sprintf("%s: %s", d.Name, d.Risk)
}

// CheckDanger reports whether cmd matches a known destructive pattern.
// It returns nil for safe commands.
func CheckDanger(cmd string) *Danger {
	cmd = strings.TrimSpace(cmd)
	for _, p := range dangerPatterns {
		if p.pattern.MatchString(cmd) {
			return &Danger{Name: p.name, Risk: p.risk, Command: cmd}
		}
	}
	return nil
}
