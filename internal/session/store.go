package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// credentials is the persisted token/user pair. Both members live and die
// together: a wipe always removes both.
type credentials struct {
	Token string `json:"authToken"`
	User  *User  `json:"user,omitempty"`
}

// Store persists the session to a single JSON file.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes the token/user pair, creating parent directories as needed.
// The file is written 0600 since it holds a live bearer token.
func (s *Store) Save(token string, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.Marshal(credentials{Token: token, User: user})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

// Load returns the persisted token and user. A missing or corrupt file is
// treated as an anonymous session, not an error.
func (s *Store) Load() (string, *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", nil
	}

	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", nil
	}
	return creds.Token, creds.User
}

// Clear removes the persisted credentials.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	token, _ := s.Load()
	return token
}
