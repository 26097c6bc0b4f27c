// Package memory provides the default in-process session store.
package memory

import (
	"context"
	"sync"

	"github.com/wyre-technology/syncro-mcp/pkg/domain"
)

// Store implements ports.SessionStore with a mutex-guarded map. State is
// lost on process exit; use the Redis store when sessions must survive
// restarts.
type Store struct {
	mu   sync.RWMutex
	data map[string]domain.SessionState
}

// New creates an empty store.
func New() *Store {
	return &Store{data: make(map[string]domain.SessionState)}
}

// Save persists the state for a session ID.
func (s *Store) Save(ctx context.Context, sessionID string, state *domain.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = *state
	return nil
}

// Load retrieves the state for a session ID.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.data[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	copied := state
	return &copied, nil
}

// Delete removes the state for a session ID.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}
