// Package file provides a TOML-backed session store. The session file lives
// next to the queue database under the packtrak home directory and holds the
// bearer token plus the operator display name.
package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/packlane-labs/packtrak-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// sessionData is the on-disk shape of the session file.
type sessionData struct {
	Token    string `toml:"token,omitempty"`
	Operator string `toml:"operator,omitempty"`
}

// SessionStore is a file-based implementation of driven.SessionStore using TOML.
type SessionStore struct {
	mu       sync.RWMutex
	filePath string
	data     sessionData
}

// NewSessionStore creates a new TOML-based session store.
// If configDir is empty, defaults to ~/.packtrak/session.toml.
func NewSessionStore(configDir string) (*SessionStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".packtrak")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &SessionStore{
		filePath: filepath.Join(configDir, "session.toml"),
	}

	// Load existing data if file exists
	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Token returns the stored bearer token, or "" when not logged in.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Token
}

// SetToken stores a new bearer token and persists immediately.
func (s *SessionStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Token = token
	return s.save()
}

// ClearToken removes the stored token.
func (s *SessionStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Token = ""
	return s.save()
}

// OperatorName returns the operator display name, or "".
func (s *SessionStore) OperatorName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Operator
}

// SetOperatorName stores the operator display name and persists immediately.
func (s *SessionStore) SetOperatorName(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Operator = name
	return s.save()
}

// save writes the session to the TOML file (caller must hold lock).
func (s *SessionStore) save() error {
	data, err := toml.Marshal(s.data)
	if err != nil {
		return err
	}

	// The token is a credential, so restrict permissions.
	return os.WriteFile(s.filePath, data, 0600)
}

// load reads the session from the TOML file.
func (s *SessionStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No session file yet - that's fine, start logged out
			s.data = sessionData{}
			return nil
		}
		return err
	}

	var loaded sessionData
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}

	s.data = loaded
	return nil
}

// Path returns the session file path.
func (s *SessionStore) Path() string {
	return s.filePath
}
