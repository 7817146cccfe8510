package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/oyenscilik/cms-admin/src/models"
)

// FileStore persists the session as one JSON blob on disk so it survives
// process restarts. Every state change is written through before the call
// returns (write to a temp file, then rename).
type FileStore struct {
	mu   sync.RWMutex
	path string
	st   state
}

// NewFileStore opens (or creates) the session file at path. An existing blob
// is loaded so a previously authenticated session is restored; a corrupt
// blob is treated as logged out rather than failing startup.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	if err := json.Unmarshal(data, &s.st); err != nil {
		s.st = state{}
	}
	return s, nil
}

// DefaultPath returns the session file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "oyens-cms", "auth.json"), nil
}

func (s *FileStore) Current() (models.AdminUser, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.User, s.st.Token, s.st.IsAuthenticated
}

func (s *FileStore) SetAuth(user models.AdminUser, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := state{User: user, Token: token, IsAuthenticated: true}
	if err := s.persist(next); err != nil {
		return err
	}
	s.st = next
	return nil
}

func (s *FileStore) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := state{}
	if err := s.persist(next); err != nil {
		return err
	}
	s.st = next
	return nil
}

func (s *FileStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.IsAuthenticated
}

// persist writes the blob atomically. Callers hold the write lock.
func (s *FileStore) persist(st state) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
