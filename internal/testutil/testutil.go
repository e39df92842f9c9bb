// Package testutil provides helper functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// FakeHome creates an empty home directory that is removed when the test completes.
func FakeHome(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "termhist-home-*")
	if err != nil {
		t.Fatalf("failed to create fake home: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Errorf("failed to cleanup fake home %s: %v", dir, err)
		}
	})

	return dir
}

// WriteFile writes content to rel under dir, creating parent directories,
// and returns the full path.
func WriteFile(t *testing.T, dir, rel string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}

	return path
}

// WriteHistory writes a text history file to rel under home.
func WriteHistory(t *testing.T, home, rel, content string) string {
	t.Helper()
	return WriteFile(t, home, rel, []byte(content))
}
