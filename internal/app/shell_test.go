package app

import (
	"path/filepath"
	"testing"

	"github.com/chazuruo/termhist/internal/history"
	"github.com/chazuruo/termhist/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDescribeShell(t *testing.T) {
	home := testutil.FakeHome(t)

	t.Run("missing file", func(t *testing.T) {
		got := DescribeShell(history.Env{ShellPath: "/bin/zsh", HomeDir: home})
		assert.Equal(t, "zsh", got.Shell)
		assert.Equal(t, "/bin/zsh", got.ShellPath)
		assert.Equal(t, filepath.Join(home, ".zsh_history"), got.HistoryPath)
		assert.False(t, got.Exists)
	})

	t.Run("existing file", func(t *testing.T) {
		path := testutil.WriteHistory(t, home, ".local/share/fish/fish_history", "- cmd: ls\n")
		got := DescribeShell(history.Env{ShellPath: "/usr/bin/fish", HomeDir: home})
		assert.Equal(t, "fish", got.Shell)
		assert.Equal(t, path, got.HistoryPath)
		assert.True(t, got.Exists)
	})

	t.Run("cmd has no history file", func(t *testing.T) {
		got := DescribeShell(history.Env{ShellPath: "cmd.exe", ProfileDir: home, Windows: true})
		assert.Equal(t, "cmd", got.Shell)
		assert.Empty(t, got.HistoryPath)
		assert.False(t, got.Exists)
	})
}
