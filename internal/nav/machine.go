// Package nav implements the navigation state machine that decides which
// tools a session can see and dispatches invocations accordingly.
package nav

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wyre-technology/syncro-mcp/internal/creds"
	"github.com/wyre-technology/syncro-mcp/internal/handlers"
	"github.com/wyre-technology/syncro-mcp/internal/registry"
	"github.com/wyre-technology/syncro-mcp/pkg/domain"
)

// Reserved tool names, available in every state per the dispatch rule.
const (
	ToolNavigate = "navigate"
	ToolBack     = "back"
	ToolStatus   = "status"
)

// Machine tracks one session's selected domain. It starts at root and is
// mutated only by Navigate and Back; it lives for the session's lifetime.
type Machine struct {
	mu       sync.Mutex
	selected domain.ID // empty at root

	registry *registry.Registry
	resolver *creds.Resolver
}

// New creates a machine at root.
func New(reg *registry.Registry, resolver *creds.Resolver) *Machine {
	return &Machine{registry: reg, resolver: resolver}
}

// Current returns the selected domain and whether one is selected.
func (m *Machine) Current() (domain.ID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selected, m.selected != ""
}

// Snapshot captures the machine's state for persistence.
func (m *Machine) Snapshot() *domain.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &domain.SessionState{Selected: m.selected, UpdatedAt: time.Now().UTC()}
}

// Restore seeds the machine from a persisted snapshot. A snapshot naming
// a domain that has since left the closed set falls back to root.
func (m *Machine) Restore(state *domain.SessionState) {
	if state == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := domain.Parse(string(state.Selected)); ok {
		m.selected = state.Selected
	} else {
		m.selected = ""
	}
}

// VisibleNames computes the set of tool names dispatchable right now:
// status always, navigate at root, back plus the selected domain's tools
// inside a domain. Nothing outside this set is ever dispatched.
func (m *Machine) VisibleNames() map[string]bool {
	m.mu.Lock()
	selected := m.selected
	m.mu.Unlock()

	visible := map[string]bool{ToolStatus: true}
	if selected == "" {
		visible[ToolNavigate] = true
		return visible
	}
	visible[ToolBack] = true
	for _, tool := range handlers.Tools(selected) {
		visible[tool.Name] = true
	}
	return visible
}

// Navigate selects a domain. Invalid targets and missing credentials both
// leave the state untouched and come back as tool-error results.
func (m *Machine) Navigate(ctx context.Context, target string) (*mcp.CallToolResult, error) {
	d, ok := domain.Parse(target)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"unknown domain %q. Valid domains: %s", target, strings.Join(domain.Names(), ", "))), nil
	}

	if _, ok := m.resolver.Resolve(ctx); !ok {
		return mcp.NewToolResultError(
			"Syncro credentials are not configured. Set SYNCRO_API_KEY (and optionally SYNCRO_SUBDOMAIN), " +
				"or supply the X-Syncro-Api-Key header in header auth mode."), nil
	}

	m.mu.Lock()
	m.selected = d
	m.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Entered the %s domain. Available tools:\n", d)
	for _, tool := range handlers.Tools(d) {
		fmt.Fprintf(&b, "- %s: %s\n", tool.Name, tool.Description)
	}
	b.WriteString("Use the back tool to return to the domain list.")
	return mcp.NewToolResultText(b.String()), nil
}

// Back unconditionally returns to root. Calling it at root is a no-op,
// not an error.
func (m *Machine) Back() (*mcp.CallToolResult, error) {
	m.mu.Lock()
	left := m.selected
	m.selected = ""
	m.mu.Unlock()

	if left == "" {
		return mcp.NewToolResultText("Already at the domain list. Use navigate to enter a domain."), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"Left the %s domain. Use navigate to enter a domain: %s", left, strings.Join(domain.Names(), ", "))), nil
}

// Status reports the current state without mutating it.
func (m *Machine) Status(ctx context.Context) (*mcp.CallToolResult, error) {
	m.mu.Lock()
	selected := m.selected
	m.mu.Unlock()

	report := map[string]any{
		"state":                  "root",
		"domains":                domain.Names(),
		"credentials_configured": false,
	}
	if selected != "" {
		report["state"] = "in_domain"
		report["domain"] = string(selected)
	}
	if c, ok := m.resolver.Resolve(ctx); ok {
		report["credentials_configured"] = true
		if c.Subdomain != "" {
			report["subdomain"] = c.Subdomain
		}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return mcp.NewToolResultErrorFromErr("failed to render status", err), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// Dispatch routes an arbitrary invocation name per the navigation rule:
// reserved tools are handled here, domain tools are delegated to the
// selected domain's handler, and anything else is an unknown-tool error
// phrased for the current state.
func (m *Machine) Dispatch(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	switch name {
	case ToolNavigate:
		target, _ := args["domain"].(string)
		return m.Navigate(ctx, target)
	case ToolBack:
		return m.Back()
	case ToolStatus:
		return m.Status(ctx)
	}

	m.mu.Lock()
	selected := m.selected
	m.mu.Unlock()

	if selected == "" {
		return mcp.NewToolResultError(fmt.Sprintf(
			"unknown tool %q. Navigate into a domain first (valid domains: %s).",
			name, strings.Join(domain.Names(), ", "))), nil
	}

	owned := false
	for _, tool := range handlers.Tools(selected) {
		if tool.Name == name {
			owned = true
			break
		}
	}
	if !owned {
		return mcp.NewToolResultError(fmt.Sprintf(
			"unknown tool %q in the %s domain. Use back to return to the domain list.", name, selected)), nil
	}

	handler, err := m.registry.Resolve(selected)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("failed to load domain handler", err), nil
	}
	return handler.Call(ctx, name, args)
}
