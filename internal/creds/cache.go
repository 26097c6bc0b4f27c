package creds

import (
	"context"
	"sync"

	"github.com/wyre-technology/syncro-mcp/pkg/domain"
	"github.com/wyre-technology/syncro-mcp/pkg/syncro"
)

// Factory builds a Syncro client from a resolved tuple. Swapped out in
// tests to point clients at a local server.
type Factory func(c Credentials) *syncro.Client

// DefaultFactory builds a real API client.
func DefaultFactory(c Credentials) *syncro.Client {
	return syncro.New(c.APIKey, c.Subdomain)
}

// Cache holds at most one live Syncro client, keyed by the tuple that
// produced it. The handle is invalidated and rebuilt whenever the freshly
// resolved tuple differs in either field. One Cache exists per session,
// so concurrent sessions with different header credentials never race on
// a shared handle.
type Cache struct {
	mu       sync.Mutex
	resolver *Resolver
	factory  Factory

	creds  Credentials
	client *syncro.Client
}

// NewCache creates a cache over the given resolver.
func NewCache(resolver *Resolver, factory Factory) *Cache {
	if factory == nil {
		factory = DefaultFactory
	}
	return &Cache{resolver: resolver, factory: factory}
}

// Get resolves credentials and returns the cached client when the tuple
// is unchanged, or a freshly built one otherwise. Returns
// domain.ErrNotConfigured when no tuple is resolvable.
func (c *Cache) Get(ctx context.Context) (*syncro.Client, error) {
	resolved, ok := c.resolver.Resolve(ctx)
	if !ok {
		return nil, domain.ErrNotConfigured
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil && c.creds == resolved {
		return c.client, nil
	}

	c.client = c.factory(resolved)
	c.creds = resolved
	return c.client, nil
}

// Reset discards any cached handle. The next Get rebuilds from scratch.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.client = nil
	c.creds = Credentials{}
}
