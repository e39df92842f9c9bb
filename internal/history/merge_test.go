package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	shell := []string{"cmd1", "cmd2", "cmd3"}
	terminal := []string{"cmd3", "cmd4", "cmd2"}

	got := Merge(shell, terminal, 10)
	assert.Equal(t, []string{"cmd4", "cmd3", "cmd2", "cmd1"}, got)
}

func TestMerge_Truncates(t *testing.T) {
	var shell, terminal []string
	for i := 0; i < 20; i++ {
		shell = append(shell, fmt.Sprintf("shell_cmd_%d", i))
	}
	for i := 20; i < 30; i++ {
		terminal = append(terminal, fmt.Sprintf("term_cmd_%d", i))
	}

	got := Merge(shell, terminal, 8)
	require.Len(t, got, 8)
	assert.Equal(t, "term_cmd_29", got[0])
	assert.Equal(t, "term_cmd_22", got[7])
}

func TestMerge_EdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		shell    []string
		terminal []string
		maxRows  int
		want     []string
	}{
		{"both empty", nil, nil, 10, []string{}},
		{"zero rows", []string{"a"}, []string{"b"}, 0, []string{}},
		{"negative rows", []string{"a"}, nil, -3, []string{}},
		{"cap larger than result", []string{"a", "b"}, []string{"c"}, 100, []string{"c", "b", "a"}},
		{"only terminal", nil, []string{"x", "y"}, 5, []string{"y", "x"}},
		{"duplicates within one input", []string{"a", "a", "b", "a"}, nil, 5, []string{"b", "a"}},
		{"empty strings skipped", []string{"", "a"}, []string{""}, 5, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.shell, tt.terminal, tt.maxRows)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMerge_NoDuplicates(t *testing.T) {
	shell := []string{"make", "go test", "make", "git push", "ls"}
	terminal := []string{"ls", "make", "vim", "go test"}

	got := Merge(shell, terminal, 100)
	seen := make(map[string]bool)
	for _, cmd := range got {
		assert.False(t, seen[cmd], "duplicate %q in %q", cmd, got)
		seen[cmd] = true
	}
	assert.Len(t, got, 5)
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	shell := []string{"a", "b"}
	terminal := []string{"c"}
	_ = Merge(shell, terminal, 10)

	assert.Equal(t, []string{"a", "b"}, shell)
	assert.Equal(t, []string{"c"}, terminal)
}

func TestChronological(t *testing.T) {
	newest := []string{"c", "b", "a"}
	assert.Equal(t, []string{"a", "b", "c"}, Chronological(newest))
	assert.Equal(t, []string{"c", "b", "a"}, newest)
	assert.Empty(t, Chronological(nil))
}

func TestFilterBuiltins(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"drops navigation", []string{"cd /tmp", "ls -la", "kubectl get pods", "pwd"}, []string{"kubectl get pods"}},
		{"keeps order", []string{"git status", "clear", "go build"}, []string{"git status", "go build"}},
		{"prefix is not a match", []string{"lsof -i", "cdk deploy"}, []string{"lsof -i", "cdk deploy"}},
		{"empty input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterBuiltins(tt.in))
		})
	}
}
