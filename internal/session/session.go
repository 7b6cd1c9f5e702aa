package session

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Session holds the single auth token slot. It is passed explicitly to the
// backend client rather than read from ambient global state, so everything
// downstream stays testable. The zero value is a valid, unauthenticated
// session with no file backing.
type Session struct {
	mu    sync.RWMutex
	token string
	path  string
}

// New creates a session backed by a token file. An empty path disables
// persistence, which is what the server uses (it never stores a token).
func New(path string) *Session {
	return &Session{path: path}
}

// Token returns the current bearer token, or "" when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is present. It does not imply the
// backend still accepts the token.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetToken stores the token written once at login.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Clear drops the token and removes the token file if one exists.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	path := s.path
	s.mu.Unlock()

	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn("Failed to remove token file", "path", path, "error", err)
	}
}

// Load reads the token file. A missing file is not an error; it just leaves
// the session unauthenticated.
func (s *Session) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read token file: %w", err)
	}
	s.token = strings.TrimSpace(string(data))
	return nil
}

// Save writes the token file with owner-only permissions.
func (s *Session) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.path == "" {
		return nil
	}
	if err := os.WriteFile(s.path, []byte(s.token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}
