// Package history reads interactive shell history across shells and merges it
// with the terminal's in-session history.
package history

import "slices"

// Merge combines shell history with in-session terminal history.
//
// Both inputs are in chronological order, and terminalHistory is newer than
// shellHistory: the timeline is shellHistory followed by terminalHistory.
// Each command text is kept once, at the position of its first appearance in
// that timeline; the kept commands are returned newest first and truncated to
// maxRows. Empty strings are not commands and are skipped.
func Merge(shellHistory, terminalHistory []string, maxRows int) []string {
	if maxRows <= 0 {
		return []string{}
	}

	total := len(shellHistory) + len(terminalHistory)
	seen := make(map[string]struct{}, total)
	merged := make([]string, 0, total)

	for _, cmd := range slices.Concat(shellHistory, terminalHistory) {
		if cmd == "" {
			continue
		}
		if _, ok := seen[cmd]; ok {
			continue
		}
		seen[cmd] = struct{}{}
		merged = append(merged, cmd)
	}

	slices.Reverse(merged)

	if len(merged) > maxRows {
		merged = merged[:maxRows]
	}

	return merged
}

// Chronological returns a copy of a newest-first history in oldest-first order,
// the order Merge expects.
func Chronological(newestFirst []string) []string {
	out := slices.Clone(newestFirst)
	slices.Reverse(out)
	return out
}
