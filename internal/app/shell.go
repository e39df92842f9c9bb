package app

import (
	"os"

	"github.com/chazuruo/termhist/internal/history"
	"github.com/chazuruo/termhist/internal/output"
)

// DescribeShell reports the shell detected from env and its history file.
func DescribeShell(env history.Env) output.ShellInfo {
	r := history.NewReader(env)
	info := output.ShellInfo{
		Shell:       r.Shell().String(),
		ShellPath:   env.ShellPath,
		HistoryPath: r.Path(),
	}
	if info.HistoryPath != "" {
		if st, err := os.Stat(info.HistoryPath); err == nil && !st.IsDir() {
			info.Exists = true
		}
	}
	return info
}
