// Package config provides persisted CLI state for the Bullhorn CLI.
package config

import "github.com/bullhorn-tools/bh-cli/internal/core/domain"

// MemStore is an in-memory Store for tests.
type MemStore struct {
	Session *domain.Session

	// SaveErr and ClearErr, when set, are returned by the matching
	// operation to exercise failure paths.
	SaveErr  error
	ClearErr error

	// Saves and Clears count successful mutations.
	Saves  int
	Clears int
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{Session: &domain.Session{}}
}

// Load returns a copy of the stored session.
func (s *MemStore) Load() (*domain.Session, error) {
	if s.Session == nil {
		return &domain.Session{}, nil
	}
	copied := *s.Session
	return &copied, nil
}

// Save replaces the stored session.
func (s *MemStore) Save(session *domain.Session) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	copied := *session
	s.Session = &copied
	s.Saves++
	return nil
}

// Clear resets the stored session.
func (s *MemStore) Clear() error {
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.Session = &domain.Session{}
	s.Clears++
	return nil
}
