package history

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := NewSession(0)
	assert.Equal(t, DefaultSessionCapacity, s.Capacity())
	assert.Equal(t, 0, s.Len())

	_, err := uuid.Parse(s.ID())
	require.NoError(t, err)
	assert.NotEqual(t, s.ID(), NewSession(3).ID())
}

func TestSession_Add(t *testing.T) {
	s := NewSession(3)

	s.Add("git status")
	s.Add("   ")
	s.Add("")
	s.Add("git status")
	s.Add("make")
	s.Add("git status")

	assert.Equal(t, []string{"git status", "make", "git status"}, s.Commands())
}

func TestSession_DropsOldest(t *testing.T) {
	s := NewSession(3)
	for i := 0; i < 5; i++ {
		s.Add(fmt.Sprintf("cmd%d", i))
	}

	assert.Equal(t, []string{"cmd2", "cmd3", "cmd4"}, s.Commands())
}

func TestSession_CommandsIsACopy(t *testing.T) {
	s := NewSession(3)
	s.Add("a")

	got := s.Commands()
	got[0] = "changed"
	assert.Equal(t, []string{"a"}, s.Commands())
}

func TestSession_Set(t *testing.T) {
	s := NewSession(2)
	s.Set([]string{"a", "b", "c"})
	assert.Equal(t, []string{"b", "c"}, s.Commands())

	s.Set(nil)
	assert.Equal(t, 0, s.Len())
}

func TestSession_Concurrent(t *testing.T) {
	s := NewSession(50)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Add(fmt.Sprintf("worker%d-%d", n, j))
				_ = s.Commands()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}

func TestSession_FeedsMerge(t *testing.T) {
	s := NewSession(5)
	s.Add("go test ./...")
	s.Add("git commit")

	shellNewestFirst := []string{"git commit", "make", "go test ./..."}
	got := Merge(Chronological(shellNewestFirst), s.Commands(), 10)
	assert.Equal(t, []string{"git commit", "make", "go test ./..."}, got)
}
