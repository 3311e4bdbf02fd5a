// Package auth holds the MyAnimeList credential: a client id and at most one bearer token.
package auth

import (
	"strings"
	"sync"
)

// Backend persists the token between runs.
type Backend interface {
	// Load returns the stored token. A missing entry returns "" and a nil error.
	Load() (string, error)
	Save(token string) error
	Delete() error
	// Location describes where the token lives, for display.
	Location() string
}

// Store is the credential handle passed to the API client.
// An empty token means requests go out with the client id header only.
type Store struct {
	mu       sync.Mutex
	token    string
	clientID string
	backend  Backend
}

// NewStore creates an empty store. Call Load to pick up a persisted token.
// A nil backend keeps the token in memory only.
func NewStore(clientID string, backend Backend) *Store {
	return &Store{
		clientID: strings.TrimSpace(clientID),
		backend:  backend,
	}
}

// Load reads the persisted token. When it can't be read the store stays
// unauthenticated and the error is returned for the caller to report.
func (s *Store) Load() error {
	if s.backend == nil {
		return nil
	}

	token, err := s.backend.Load()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.token = ""
		return err
	}

	s.token = strings.TrimSpace(token)
	return nil
}

// Token returns a copy of the current token, possibly empty.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// ClientID is fixed for the lifetime of the store.
func (s *Store) ClientID() string {
	return s.clientID
}

// Authenticated reports whether a bearer token is held.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// Set replaces the token and persists it.
func (s *Store) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	if s.backend == nil {
		return nil
	}
	return s.backend.Save(token)
}

// Clear forgets the token and removes the persisted copy.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if s.backend == nil {
		return nil
	}
	return s.backend.Delete()
}

// Location describes where the token is persisted.
func (s *Store) Location() string {
	if s.backend == nil {
		return "memory"
	}
	return s.backend.Location()
}
