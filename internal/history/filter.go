package history

import "strings"

// builtins are navigation and housekeeping commands that add noise to a
// recall list.
var builtins = map[string]bool{
	"cd": true, "pushd": true, "popd": true, "dirs": true, "pwd": true,
	"ls": true, "la": true, "ll": true,
	"clear": true, "cls": true,
	"history": true, "exit": true, "logout": true,
	"jobs": true, "fg": true, "bg": true,
}

// FilterBuiltins returns cmds without shell builtins, preserving order.
func FilterBuiltins(cmds []string) []string {
	result := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		if isBuiltin(cmd) {
			continue
		}
		result = append(result, cmd)
	}
	return result
}

// isBuiltin returns true if the first word of cmd is a builtin.
func isBuiltin(cmd string) bool {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return false
	}
	return builtins[fields[0]]
}
