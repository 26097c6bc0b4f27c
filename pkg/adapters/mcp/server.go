// Package mcp binds the navigation core to the Model Context Protocol
// over two transports: a stdio duplex channel and streamable HTTP.
package mcp

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	syncromcp "github.com/wyre-technology/syncro-mcp"
	"github.com/wyre-technology/syncro-mcp/internal/adapters/memory"
	"github.com/wyre-technology/syncro-mcp/internal/config"
	"github.com/wyre-technology/syncro-mcp/internal/creds"
	"github.com/wyre-technology/syncro-mcp/internal/handlers"
	"github.com/wyre-technology/syncro-mcp/internal/nav"
	"github.com/wyre-technology/syncro-mcp/internal/registry"
	"github.com/wyre-technology/syncro-mcp/internal/session"
	"github.com/wyre-technology/syncro-mcp/pkg/domain"
	"github.com/wyre-technology/syncro-mcp/pkg/ports"
	"github.com/wyre-technology/syncro-mcp/pkg/syncro"
)

// Server wires the navigation machine, registry and session manager into
// one MCP server instance shared by both transports.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger

	registry  *registry.Registry
	sessions  *session.Manager
	mcpServer *server.MCPServer

	// fallbackSessionID identifies the single duplex-mode session when
	// the transport provides no client session of its own.
	fallbackSessionID string
}

// Option configures the Server.
type Option func(*serverDeps)

type serverDeps struct {
	store   ports.SessionStore
	factory creds.Factory
	timeout time.Duration
}

// WithSessionStore replaces the in-memory session store.
func WithSessionStore(store ports.SessionStore) Option {
	return func(d *serverDeps) {
		d.store = store
	}
}

// WithClientFactory replaces the Syncro client constructor. Tests use
// this to point clients at a local server.
func WithClientFactory(f creds.Factory) Option {
	return func(d *serverDeps) {
		d.factory = f
	}
}

// WithSessionTimeout sets the idle session eviction timeout.
func WithSessionTimeout(d time.Duration) Option {
	return func(deps *serverDeps) {
		deps.timeout = d
	}
}

// NewServer creates the MCP server and registers the full tool surface.
// Visibility of that surface is computed per session by the tool filter,
// so an agent only ever sees navigate/status at root, and back/status
// plus one domain's tools inside a domain.
func NewServer(cfg *config.Config, logger *slog.Logger, opts ...Option) *Server {
	deps := &serverDeps{
		store:   memory.New(),
		timeout: cfg.SessionTimeout,
	}
	for _, opt := range opts {
		opt(deps)
	}

	s := &Server{
		cfg:               cfg,
		logger:            logger,
		fallbackSessionID: uuid.NewString(),
	}

	resolver := creds.NewResolver(creds.Credentials{
		APIKey:    cfg.APIKey,
		Subdomain: cfg.Subdomain,
	})
	s.registry = registry.New(s.clientFor)
	s.sessions = session.NewManager(s.registry, resolver, deps.store,
		session.WithTimeout(deps.timeout),
		session.WithLogger(logger),
		session.WithClientFactory(deps.factory),
	)

	s.mcpServer = server.NewMCPServer(
		"syncro-mcp",
		syncromcp.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithToolFilter(s.filterTools),
	)
	s.registerTools()

	return s
}

// Close releases background resources.
func (s *Server) Close() {
	s.sessions.Stop()
}

// Sessions exposes the session manager for tests and the HTTP handler.
func (s *Server) Sessions() *session.Manager {
	return s.sessions
}

// sessionFor resolves the session owning the current invocation. HTTP
// transports carry an MCP session ID; the stdio duplex channel maps to
// one fixed session for its lifetime.
func (s *Server) sessionFor(ctx context.Context) *session.Session {
	id := s.fallbackSessionID
	if cs := server.ClientSessionFromContext(ctx); cs != nil && cs.SessionID() != "" {
		id = cs.SessionID()
	}
	return s.sessions.GetOrCreate(ctx, id)
}

// clientFor resolves the backing Syncro client through the invoking
// session's credential-scoped cache.
func (s *Server) clientFor(ctx context.Context) (*syncro.Client, error) {
	return s.sessionFor(ctx).Clients.Get(ctx)
}

// filterTools trims the advertised tool list to the invoking session's
// visible set.
func (s *Server) filterTools(ctx context.Context, tools []mcp.Tool) []mcp.Tool {
	visible := s.sessionFor(ctx).Machine.VisibleNames()

	filtered := make([]mcp.Tool, 0, len(tools))
	for _, tool := range tools {
		if visible[tool.Name] {
			filtered = append(filtered, tool)
		}
	}
	return filtered
}

// registerTools adds the reserved navigation tools and every domain's
// tools. All of them funnel through dispatch, so the navigation machine
// remains the single gatekeeper regardless of what a client tries to
// call.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(nav.ToolNavigate,
		mcp.WithDescription("Enter a Syncro domain to reveal its tools. Only one domain is active at a time."),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("The domain to enter"),
			mcp.Enum(domain.Names()...),
		),
	), s.dispatch)

	s.mcpServer.AddTool(mcp.NewTool(nav.ToolBack,
		mcp.WithDescription("Leave the current domain and return to the domain list."),
	), s.dispatch)

	s.mcpServer.AddTool(mcp.NewTool(nav.ToolStatus,
		mcp.WithDescription("Report the current domain, credential configuration, and the available domains."),
	), s.dispatch)

	for _, d := range domain.All() {
		for _, tool := range handlers.Tools(d) {
			s.mcpServer.AddTool(tool, s.dispatch)
		}
	}
}

// dispatch routes every tool invocation through the session's navigation
// machine and persists the (possibly changed) navigation position.
func (s *Server) dispatch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.Params.Name
	sess := s.sessionFor(ctx)

	start := time.Now()
	result, err := sess.Machine.Dispatch(ctx, name, req.GetArguments())
	toolDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	outcome := "ok"
	if err != nil || (result != nil && result.IsError) {
		outcome = "error"
	}
	toolInvocations.WithLabelValues(name, outcome).Inc()

	s.sessions.Persist(ctx, sess)
	s.logger.Debug("dispatched tool", "tool", name, "session", sess.ID, "outcome", outcome)

	return result, err
}

// ServeStdio runs the duplex transport: one long-lived channel, strictly
// ordered invocation/response pairs, one session for its lifetime.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Info("starting MCP server", "transport", config.TransportStdio)
	stdioServer := server.NewStdioServer(s.mcpServer)
	return stdioServer.Listen(ctx, os.Stdin, os.Stdout)
}
