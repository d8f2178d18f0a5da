package store

import (
	"context"
	"sync"

	"bloguser/internal/user/models"
	"bloguser/pkg/platform/sentinel"
)

// InMemory keeps users in a map keyed by the id they were added under. Each
// call takes the lock for its whole duration, so calls on one store are
// serialized per key.
//
// Records are stored and returned by value copy; no caller ever holds a
// reference into the map.
type InMemory struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewInMemory returns an empty store.
func NewInMemory() *InMemory {
	return &InMemory{users: make(map[string]models.User)}
}

// Insert stores a copy of user under id. The key is not required to match
// user.ID.
func (s *InMemory) Insert(_ context.Context, id string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; ok {
		return sentinel.ErrAlreadyExists
	}
	s.users[id] = *user
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[id]; ok {
		return &user, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}
