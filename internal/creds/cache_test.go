package creds_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyre-technology/syncro-mcp/internal/creds"
	"github.com/wyre-technology/syncro-mcp/pkg/domain"
	"github.com/wyre-technology/syncro-mcp/pkg/syncro"
)

func testFactory(c creds.Credentials) *syncro.Client {
	return syncro.New(c.APIKey, c.Subdomain)
}

func TestCache_SameTupleReturnsSameHandle(t *testing.T) {
	resolver := creds.NewResolver(creds.Credentials{APIKey: "key-1", Subdomain: "acme"})
	cache := creds.NewCache(resolver, testFactory)
	ctx := context.Background()

	first, err := cache.Get(ctx)
	require.NoError(t, err)
	second, err := cache.Get(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second, "identical tuples must reuse the cached handle")
}

func TestCache_ChangedTupleRebuildsHandle(t *testing.T) {
	resolver := creds.NewResolver(creds.Credentials{APIKey: "key-1", Subdomain: "acme"})
	cache := creds.NewCache(resolver, testFactory)
	ctx := context.Background()

	base, err := cache.Get(ctx)
	require.NoError(t, err)

	// A different API key for the same tenant invalidates the handle.
	otherKey := creds.WithCredentials(ctx, creds.Credentials{APIKey: "key-2", Subdomain: "acme"})
	rotated, err := cache.Get(otherKey)
	require.NoError(t, err)
	assert.NotSame(t, base, rotated)

	// A different subdomain for the same key invalidates it too.
	otherTenant := creds.WithCredentials(ctx, creds.Credentials{APIKey: "key-2", Subdomain: "globex"})
	moved, err := cache.Get(otherTenant)
	require.NoError(t, err)
	assert.NotSame(t, rotated, moved)

	// The old tuple no longer returns the old handle instance.
	back, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.NotSame(t, base, back)
}

func TestCache_NotConfigured(t *testing.T) {
	resolver := creds.NewResolver(creds.Credentials{})
	cache := creds.NewCache(resolver, testFactory)

	_, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestResolver_ContextOverridesProcess(t *testing.T) {
	resolver := creds.NewResolver(creds.Credentials{APIKey: "process-key", Subdomain: "acme"})

	c, ok := resolver.Resolve(context.Background())
	require.True(t, ok)
	assert.Equal(t, "process-key", c.APIKey)

	ctx := creds.WithCredentials(context.Background(), creds.Credentials{APIKey: "request-key", Subdomain: "globex"})
	c, ok = resolver.Resolve(ctx)
	require.True(t, ok)
	assert.Equal(t, "request-key", c.APIKey)
	assert.Equal(t, "globex", c.Subdomain)
}

func TestCache_Reset(t *testing.T) {
	resolver := creds.NewResolver(creds.Credentials{APIKey: "key-1"})
	cache := creds.NewCache(resolver, testFactory)
	ctx := context.Background()

	first, err := cache.Get(ctx)
	require.NoError(t, err)

	cache.Reset()

	second, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}
