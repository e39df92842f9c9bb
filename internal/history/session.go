package history

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// DefaultSessionCapacity is the number of commands a pane session remembers.
const DefaultSessionCapacity = 5

// Session is the in-session command history of one terminal pane.
// It is safe for concurrent use.
type Session struct {
	id       string
	capacity int

	mu       sync.Mutex
	commands []string // oldest first
}

// NewSession creates a session history holding at most capacity commands.
// A capacity <= 0 uses DefaultSessionCapacity.
func NewSession(capacity int) *Session {
	if capacity <= 0 {
		capacity = DefaultSessionCapacity
	}
	return &Session{
		id:       uuid.New().String(),
		capacity: capacity,
		commands: make([]string, 0, capacity),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Capacity returns the maximum number of commands kept.
func (s *Session) Capacity() int {
	return s.capacity
}

// Add records an entered command. Blank commands and exact repeats of the
// previous command are ignored; the oldest command is dropped when full.
func (s *Session) Add(cmd string) {
	if strings.TrimSpace(cmd) == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.commands); n > 0 && s.commands[n-1] == cmd {
		return
	}

	s.commands = append(s.commands, cmd)
	if len(s.commands) > s.capacity {
		s.commands = s.commands[len(s.commands)-s.capacity:]
	}
}

// Commands returns a copy of the history, oldest first.
func (s *Session) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]string, len(s.commands))
	copy(result, s.commands)
	return result
}

// Set replaces the history, e.g. when restoring a pane. Only the newest
// capacity commands are kept.
func (s *Session) Set(commands []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(commands) > s.capacity {
		commands = commands[len(commands)-s.capacity:]
	}
	s.commands = append(make([]string, 0, s.capacity), commands...)
}

// Len returns the number of commands held.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.commands)
}
