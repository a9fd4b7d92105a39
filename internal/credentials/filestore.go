// ABOUTME: File-backed credential store for the POS client
// ABOUTME: Persists the credential record as a 0600 JSON file in the user config dir

package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jagatix-comp/petshop-pos/internal/models"
)

// FileStore persists credentials to a single JSON file.
// It is the only component that touches durable storage.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save writes the token and profile as one record. The file is written via
// a temp file and rename so a crash never leaves a half-written record.
func (s *FileStore) Save(token string, user *models.User) error {
	if token == "" || user == nil {
		return s.Clear()
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials dir: %w", err)
	}

	data, err := json.Marshal(Credentials{AccessToken: token, User: user})
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}

	slog.Debug("Credentials saved", "path", s.path, "user", user.Username)
	return nil
}

// Load reads the stored record. It returns (nil, nil) when no record exists.
// A record missing the token or with an unparseable profile is cleared on the
// spot: a dangling token with unusable identity must not survive.
func (s *FileStore) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		slog.Warn("Clearing unparseable credential record", "path", s.path)
		if clearErr := s.Clear(); clearErr != nil {
			return nil, clearErr
		}
		return nil, nil
	}

	if creds.AccessToken == "" || creds.User == nil || creds.User.ID == "" {
		slog.Warn("Clearing partial credential record", "path", s.path)
		if clearErr := s.Clear(); clearErr != nil {
			return nil, clearErr
		}
		return nil, nil
	}

	return &creds, nil
}

// Clear removes the stored record. Missing file is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
