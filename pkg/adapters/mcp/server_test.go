package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyre-technology/syncro-mcp/internal/config"
	"github.com/wyre-technology/syncro-mcp/internal/logging"
	"github.com/wyre-technology/syncro-mcp/internal/creds"
	"github.com/wyre-technology/syncro-mcp/internal/nav"
	"github.com/wyre-technology/syncro-mcp/pkg/syncro"
)

func testConfig(authMode string) *config.Config {
	return &config.Config{
		APIKey:         "test-key",
		Subdomain:      "acme",
		Transport:      config.TransportHTTP,
		AuthMode:       authMode,
		Addr:           ":0",
		SessionStore:   config.SessionStoreMemory,
		SessionTimeout: time.Minute,
		LogLevel:       "error",
	}
}

func newTestServer(t *testing.T, authMode, backendURL string) *Server {
	t.Helper()
	srv := NewServer(testConfig(authMode), logging.NewNop(), WithClientFactory(func(c creds.Credentials) *syncro.Client {
		return syncro.New(c.APIKey, c.Subdomain, syncro.WithBaseURL(backendURL))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func callTool(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func TestDispatch_NavigationFlow(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tickets": []}`))
	}))
	defer backend.Close()

	srv := newTestServer(t, config.AuthModeEnv, backend.URL)
	ctx := context.Background()

	res, err := srv.dispatch(ctx, callTool(nav.ToolNavigate, map[string]any{"domain": "tickets"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	res, err = srv.dispatch(ctx, callTool("tickets_list", nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	res, err = srv.dispatch(ctx, callTool(nav.ToolBack, nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	// After back, domain tools are no longer dispatchable.
	res, err = srv.dispatch(ctx, callTool("tickets_list", nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestFilterTools_TracksNavigation(t *testing.T) {
	srv := newTestServer(t, config.AuthModeEnv, "http://unused.invalid")
	ctx := context.Background()

	all := []mcp.Tool{
		mcp.NewTool(nav.ToolNavigate),
		mcp.NewTool(nav.ToolBack),
		mcp.NewTool(nav.ToolStatus),
		mcp.NewTool("tickets_list"),
		mcp.NewTool("invoices_list"),
	}

	names := func(tools []mcp.Tool) []string {
		out := make([]string, len(tools))
		for i, tool := range tools {
			out[i] = tool.Name
		}
		return out
	}

	assert.ElementsMatch(t, []string{nav.ToolNavigate, nav.ToolStatus}, names(srv.filterTools(ctx, all)))

	_, err := srv.dispatch(ctx, callTool(nav.ToolNavigate, map[string]any{"domain": "tickets"}))
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{nav.ToolBack, nav.ToolStatus, "tickets_list"},
		names(srv.filterTools(ctx, all)))
}

func TestInjectHeaderCredentials(t *testing.T) {
	srv := newTestServer(t, config.AuthModeHeader, "http://unused.invalid")

	req := httptest.NewRequest(http.MethodPost, PathMCP, nil)
	req.Header.Set(HeaderAPIKey, "tenant-key")
	req.Header.Set(HeaderSubdomain, "globex")

	ctx := srv.injectHeaderCredentials(context.Background(), req)
	c, ok := creds.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "tenant-key", c.APIKey)
	assert.Equal(t, "globex", c.Subdomain)
}

func TestInjectHeaderCredentials_EnvModeIgnoresHeaders(t *testing.T) {
	srv := newTestServer(t, config.AuthModeEnv, "http://unused.invalid")

	req := httptest.NewRequest(http.MethodPost, PathMCP, nil)
	req.Header.Set(HeaderAPIKey, "tenant-key")

	ctx := srv.injectHeaderCredentials(context.Background(), req)
	_, ok := creds.FromContext(ctx)
	assert.False(t, ok, "env mode must not overlay header credentials")
}

func TestHandler_Health(t *testing.T) {
	srv := newTestServer(t, config.AuthModeHeader, "http://unused.invalid")

	rec := httptest.NewRecorder()
	// No credential headers on purpose: health is credential-free.
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, PathHealth, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, config.AuthModeHeader, body["auth_mode"])
	assert.NotEmpty(t, body["time"])
}

func TestHandler_MissingHeaderCredentials(t *testing.T) {
	srv := newTestServer(t, config.AuthModeHeader, "http://unused.invalid")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, PathMCP, nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body struct {
		Error    string   `json:"error"`
		Required []string `json:"required"`
		Optional []string `json:"optional"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "missing credentials", body.Error)
	assert.Equal(t, []string{HeaderAPIKey}, body.Required)
	assert.Equal(t, []string{HeaderSubdomain}, body.Optional)
}

func TestHandler_EnvModeDoesNotRequireHeaders(t *testing.T) {
	srv := newTestServer(t, config.AuthModeEnv, "http://unused.invalid")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, PathMCP, nil))

	assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_NotFound(t *testing.T) {
	srv := newTestServer(t, config.AuthModeEnv, "http://unused.invalid")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body struct {
		Paths []string `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.ElementsMatch(t, []string{PathMCP, PathHealth, PathMetrics}, body.Paths)
}
