package nav_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyre-technology/syncro-mcp/internal/creds"
	"github.com/wyre-technology/syncro-mcp/internal/handlers"
	"github.com/wyre-technology/syncro-mcp/internal/nav"
	"github.com/wyre-technology/syncro-mcp/internal/registry"
	"github.com/wyre-technology/syncro-mcp/pkg/domain"
	"github.com/wyre-technology/syncro-mcp/pkg/syncro"
)

// newMachine builds a machine whose backing clients hit the given URL.
// An empty apiKey simulates an unconfigured process.
func newMachine(apiKey, backendURL string) *nav.Machine {
	resolver := creds.NewResolver(creds.Credentials{APIKey: apiKey, Subdomain: "acme"})
	cache := creds.NewCache(resolver, func(c creds.Credentials) *syncro.Client {
		return syncro.New(c.APIKey, c.Subdomain, syncro.WithBaseURL(backendURL))
	})
	return nav.New(registry.New(cache.Get), resolver)
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func visibleSet(m *nav.Machine) map[string]bool {
	return m.VisibleNames()
}

func TestMachine_NavigateEveryDomain(t *testing.T) {
	m := newMachine("key", "http://unused.invalid")
	ctx := context.Background()

	for _, d := range domain.All() {
		res, err := m.Navigate(ctx, string(d))
		require.NoError(t, err)
		require.False(t, res.IsError, "navigate(%s) must succeed", d)

		selected, ok := m.Current()
		require.True(t, ok)
		assert.Equal(t, d, selected)

		// Visible set is exactly {back, status} plus the domain's tools.
		visible := visibleSet(m)
		assert.True(t, visible[nav.ToolBack])
		assert.True(t, visible[nav.ToolStatus])
		assert.False(t, visible[nav.ToolNavigate])
		tools := handlers.Tools(d)
		for _, tool := range tools {
			assert.True(t, visible[tool.Name], "tool %s must be visible in %s", tool.Name, d)
		}
		assert.Len(t, visible, len(tools)+2)
	}
}

func TestMachine_NavigateFromDomainToDomain(t *testing.T) {
	m := newMachine("key", "http://unused.invalid")
	ctx := context.Background()

	res, err := m.Navigate(ctx, "tickets")
	require.NoError(t, err)
	require.False(t, res.IsError)

	// navigate is valid from any state, not only root.
	res, err = m.Navigate(ctx, "invoices")
	require.NoError(t, err)
	require.False(t, res.IsError)

	selected, _ := m.Current()
	assert.Equal(t, domain.Invoices, selected)
}

func TestMachine_NavigateUnknownDomain(t *testing.T) {
	m := newMachine("key", "http://unused.invalid")

	res, err := m.Navigate(context.Background(), "payroll")
	require.NoError(t, err)
	assert.True(t, res.IsError)

	// The error enumerates the canonical domain order and nothing moved.
	text := resultText(t, res)
	assert.Contains(t, text, "customers, tickets, contacts, assets, invoices")
	_, ok := m.Current()
	assert.False(t, ok, "invalid navigate must not mutate state")
}

func TestMachine_NavigateWithoutCredentials(t *testing.T) {
	m := newMachine("", "http://unused.invalid")

	res, err := m.Navigate(context.Background(), "customers")
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "SYNCRO_API_KEY")

	_, ok := m.Current()
	assert.False(t, ok, "navigate without credentials must not mutate state")
}

func TestMachine_Back(t *testing.T) {
	m := newMachine("key", "http://unused.invalid")
	ctx := context.Background()

	_, err := m.Navigate(ctx, "assets")
	require.NoError(t, err)

	res, err := m.Back()
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "assets")

	_, ok := m.Current()
	assert.False(t, ok)

	visible := visibleSet(m)
	assert.Equal(t, map[string]bool{nav.ToolNavigate: true, nav.ToolStatus: true}, visible)
}

func TestMachine_BackAtRootIsNoop(t *testing.T) {
	m := newMachine("key", "http://unused.invalid")

	res, err := m.Back()
	require.NoError(t, err)
	assert.False(t, res.IsError, "back at root is a no-op, not an error")
}

func TestMachine_StatusNeverMutates(t *testing.T) {
	m := newMachine("key", "http://unused.invalid")
	ctx := context.Background()

	res, err := m.Status(ctx)
	require.NoError(t, err)
	text := resultText(t, res)
	assert.Contains(t, text, `"state": "root"`)
	assert.Contains(t, text, `"credentials_configured": true`)
	assert.Contains(t, text, `"subdomain": "acme"`)
	_, ok := m.Current()
	assert.False(t, ok)

	_, err = m.Navigate(ctx, "contacts")
	require.NoError(t, err)

	res, err = m.Status(ctx)
	require.NoError(t, err)
	text = resultText(t, res)
	assert.Contains(t, text, `"state": "in_domain"`)
	assert.Contains(t, text, `"domain": "contacts"`)

	selected, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, domain.Contacts, selected)
}

func TestMachine_DispatchUnknownToolAtRoot(t *testing.T) {
	m := newMachine("key", "http://unused.invalid")

	res, err := m.Dispatch(context.Background(), "tickets_list", nil)
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Navigate into a domain first")
}

func TestMachine_DispatchForeignDomainTool(t *testing.T) {
	m := newMachine("key", "http://unused.invalid")
	ctx := context.Background()

	_, err := m.Navigate(ctx, "tickets")
	require.NoError(t, err)

	// invoices_get belongs to another domain; it is outside the visible
	// set and must fail even though it exists somewhere.
	res, err := m.Dispatch(ctx, "invoices_get", map[string]any{"invoice_id": 1})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	text := resultText(t, res)
	assert.Contains(t, text, "tickets")
	assert.Contains(t, text, "back")
}

func TestMachine_TicketScenario(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/tickets/789" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "Ticket not found"}`))
			return
		}
		w.Write([]byte(`{"tickets": []}`))
	}))
	defer backend.Close()

	m := newMachine("key", backend.URL)
	ctx := context.Background()

	res, err := m.Navigate(ctx, "tickets")
	require.NoError(t, err)
	require.False(t, res.IsError)

	visible := visibleSet(m)
	for _, name := range []string{
		"tickets_list", "tickets_get", "tickets_create", "tickets_update", "tickets_add_comment",
		nav.ToolBack, nav.ToolStatus,
	} {
		assert.True(t, visible[name], "expected %s to be visible", name)
	}

	res, err = m.Dispatch(ctx, "tickets_get", map[string]any{"ticket_id": 789})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Ticket not found")

	res, err = m.Back()
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, map[string]bool{nav.ToolNavigate: true, nav.ToolStatus: true}, visibleSet(m))
}

func TestMachine_RestoreSnapshot(t *testing.T) {
	m := newMachine("key", "http://unused.invalid")
	ctx := context.Background()

	_, err := m.Navigate(ctx, "invoices")
	require.NoError(t, err)

	snap := m.Snapshot()
	assert.Equal(t, domain.Invoices, snap.Selected)

	restored := newMachine("key", "http://unused.invalid")
	restored.Restore(snap)
	selected, ok := restored.Current()
	require.True(t, ok)
	assert.Equal(t, domain.Invoices, selected)

	// A snapshot naming a domain outside the closed set falls back to root.
	bad := newMachine("key", "http://unused.invalid")
	bad.Restore(&domain.SessionState{Selected: domain.ID("payroll")})
	_, ok = bad.Current()
	assert.False(t, ok)
}
