// Package presence stores which users are online and through which session.
// MemoryStore serves a single instance; RedisStore is shared between replicas.
package presence

import (
	"context"
	"sync"

	"courierhub/internal/core/domain/model/kernel"
)

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]string
	users    map[string]kernel.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[kernel.UUID]string),
		users:    make(map[string]kernel.UUID),
	}
}

func (s *MemoryStore) Set(_ context.Context, userID kernel.UUID, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if previous, ok := s.sessions[userID]; ok {
		delete(s.users, previous)
	}
	s.sessions[userID] = sessionID
	s.users[sessionID] = userID
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, userID kernel.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID, ok := s.sessions[userID]
	if !ok {
		return false, nil
	}
	delete(s.sessions, userID)
	delete(s.users, sessionID)
	return true, nil
}

func (s *MemoryStore) FindBySession(_ context.Context, sessionID string) (kernel.UUID, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.users[sessionID]
	return userID, ok, nil
}

func (s *MemoryStore) List(_ context.Context) ([]kernel.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]kernel.UUID, 0, len(s.sessions))
	for userID := range s.sessions {
		out = append(out, userID)
	}
	return out, nil
}
