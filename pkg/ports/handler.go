package ports

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wyre-technology/syncro-mcp/pkg/domain"
	"github.com/wyre-technology/syncro-mcp/pkg/syncro"
)

// ClientFunc resolves the backing Syncro client for the current call.
// Implementations consult the session's credential cache; the returned
// error is domain.ErrNotConfigured when no credentials are resolvable.
type ClientFunc func(ctx context.Context) (*syncro.Client, error)

// Handler is the capability a domain exposes to the navigation layer:
// its tool descriptors and the ability to invoke one of them.
type Handler interface {
	// Domain identifies which member of the closed set this handler serves.
	Domain() domain.ID

	// Tools returns the ordered tool descriptors owned by this domain.
	// The result is constant for the process lifetime.
	Tools() []mcp.Tool

	// Call invokes the named tool with a loosely-typed argument bag.
	// Failures are returned as tool-error results, never as Go errors,
	// so they cross the protocol boundary as structured payloads.
	Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error)
}
