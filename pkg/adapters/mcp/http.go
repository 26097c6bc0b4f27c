package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	syncromcp "github.com/wyre-technology/syncro-mcp"
	"github.com/wyre-technology/syncro-mcp/internal/config"
	"github.com/wyre-technology/syncro-mcp/internal/creds"
)

// Side-channel credential headers for header auth mode.
const (
	HeaderAPIKey    = "X-Syncro-Api-Key"
	HeaderSubdomain = "X-Syncro-Subdomain"
)

// Known HTTP paths, reported by the catch-all 404.
const (
	PathMCP     = "/mcp"
	PathHealth  = "/healthz"
	PathMetrics = "/metrics"
)

// Handler builds the HTTP surface: the MCP protocol path, the
// credential-free health path, metrics, and a catch-all 404.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get(PathHealth, s.handleHealth)
	r.Handle(PathMetrics, promhttp.Handler())

	streamable := server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithHTTPContextFunc(s.injectHeaderCredentials),
	)
	var protocol http.Handler = streamable
	if s.cfg.AuthMode == config.AuthModeHeader {
		protocol = requireHeaderCredentials(protocol)
	}
	r.Handle(PathMCP, protocol)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error": "not found",
			"paths": []string{PathMCP, PathHealth, PathMetrics},
		})
	})

	return r
}

// ServeHTTP runs the request/response transport until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	s.logger.Info("starting MCP server",
		"transport", config.TransportHTTP, "addr", addr, "auth_mode", s.cfg.AuthMode)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// injectHeaderCredentials overlays one request's side-channel credentials
// onto its context. Only active in header auth mode: in env mode the
// process-wide tuple remains the single credential source.
func (s *Server) injectHeaderCredentials(ctx context.Context, req *http.Request) context.Context {
	if s.cfg.AuthMode != config.AuthModeHeader {
		return ctx
	}
	c := creds.Credentials{
		APIKey:    req.Header.Get(HeaderAPIKey),
		Subdomain: req.Header.Get(HeaderSubdomain),
	}
	if !c.Valid() {
		return ctx
	}
	return creds.WithCredentials(ctx, c)
}

// requireHeaderCredentials rejects protocol requests without the required
// API key header before any protocol dispatch happens.
func requireHeaderCredentials(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get(HeaderAPIKey) == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"error":    "missing credentials",
				"message":  "header auth mode requires Syncro credentials on every request",
				"required": []string{HeaderAPIKey},
				"optional": []string{HeaderSubdomain},
			})
			return
		}
		next.ServeHTTP(w, req)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"version":   syncromcp.Version,
		"auth_mode": s.cfg.AuthMode,
		"sessions":  s.sessions.Count(),
		"time":      time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
