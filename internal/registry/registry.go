// Package registry maps domain identifiers to their handlers, building
// each handler once on first use.
package registry

import (
	"fmt"
	"sync"

	"github.com/wyre-technology/syncro-mcp/internal/handlers"
	"github.com/wyre-technology/syncro-mcp/pkg/domain"
	"github.com/wyre-technology/syncro-mcp/pkg/ports"
)

// Registry memoizes domain handler construction. Handlers are stateless
// apart from their client function, so one registry is shared across all
// sessions.
type Registry struct {
	mu       sync.Mutex
	client   ports.ClientFunc
	resolved map[domain.ID]ports.Handler
}

// New creates an empty registry. Handlers built by it resolve their
// backing client through the given function on every call.
func New(client ports.ClientFunc) *Registry {
	return &Registry{
		client:   client,
		resolved: make(map[domain.ID]ports.Handler),
	}
}

// Resolve returns the handler for a domain, constructing it on first use.
// Repeated calls return the identical handler. Fails only for IDs outside
// the closed set, which the navigation layer already rejects.
func (r *Registry) Resolve(d domain.ID) (ports.Handler, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.resolved[d]; ok {
		return h, nil
	}

	h, err := handlers.New(d, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to load handler for %s: %w", d, err)
	}
	r.resolved[d] = h
	return h, nil
}

// Domains returns the closed set in canonical order.
func (r *Registry) Domains() []domain.ID {
	return domain.All()
}

// Reset evicts all cached handlers. Used for test isolation; navigation
// state is unaffected.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved = make(map[domain.ID]ports.Handler)
}
