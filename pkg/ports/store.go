package ports

import (
	"context"

	"github.com/wyre-technology/syncro-mcp/pkg/domain"
)

// SessionStore persists per-session navigation state. This allows HTTP
// deployments to restart without dropping agents' navigation position.
type SessionStore interface {
	// Save persists the state for a given session ID.
	Save(ctx context.Context, sessionID string, state *domain.SessionState) error

	// Load retrieves the state for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.SessionState, error)

	// Delete removes the state for a given session ID.
	Delete(ctx context.Context, sessionID string) error
}
