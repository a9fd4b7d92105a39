// ABOUTME: Credential store interface and in-memory implementation
// ABOUTME: Holds the access token and cached user profile as one atomic record

package credentials

import (
	"sync"

	"github.com/jagatix-comp/petshop-pos/internal/models"
)

// Credentials is the persisted record: token and cached profile together.
// The two fields are saved and cleared as a unit; a record missing either
// half is treated as absent.
type Credentials struct {
	AccessToken string       `json:"accessToken"`
	User        *models.User `json:"user"`
}

// Store persists the credential record. Implementations must return
// (nil, nil) from Load when no usable record exists.
type Store interface {
	Save(token string, user *models.User) error
	Load() (*Credentials, error)
	Clear() error
}

// MemStore is an in-memory Store used by tests and ephemeral sessions.
type MemStore struct {
	mu    sync.Mutex
	creds *Credentials
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Save(token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token == "" || user == nil {
		s.creds = nil
		return nil
	}
	u := *user
	s.creds = &Credentials{AccessToken: token, User: &u}
	return nil
}

func (s *MemStore) Load() (*Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return nil, nil
	}
	u := *s.creds.User
	return &Credentials{AccessToken: s.creds.AccessToken, User: &u}, nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = nil
	return nil
}
