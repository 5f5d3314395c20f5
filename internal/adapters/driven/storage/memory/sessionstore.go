package memory

import (
	"sync"

	"github.com/packlane-labs/packtrak-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
type SessionStore struct {
	mu       sync.RWMutex
	token    string
	operator string
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Token returns the stored bearer token, or "".
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores a bearer token.
func (s *SessionStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// ClearToken removes the stored token.
func (s *SessionStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// OperatorName returns the stored operator name, or "".
func (s *SessionStore) OperatorName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.operator
}

// SetOperatorName stores the operator name.
func (s *SessionStore) SetOperatorName(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.operator = name
	return nil
}
