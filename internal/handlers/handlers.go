package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mitchellh/mapstructure"

	"github.com/wyre-technology/syncro-mcp/pkg/domain"
	"github.com/wyre-technology/syncro-mcp/pkg/ports"
)

// New constructs the handler for a domain. Callers go through the
// registry, which memoizes the result; the switch is exhaustive over the
// closed set so an unknown ID is a programming error.
func New(d domain.ID, client ports.ClientFunc) (ports.Handler, error) {
	switch d {
	case domain.Customers:
		return &customersHandler{client: client}, nil
	case domain.Tickets:
		return &ticketsHandler{client: client}, nil
	case domain.Contacts:
		return &contactsHandler{client: client}, nil
	case domain.Assets:
		return &assetsHandler{client: client}, nil
	case domain.Invoices:
		return &invoicesHandler{client: client}, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownDomain, d)
	}
}

// Tools returns the descriptor list for a domain without constructing its
// handler. Descriptors are static tables, so the visible tool set can be
// computed before any handler (or backing client) exists.
func Tools(d domain.ID) []mcp.Tool {
	switch d {
	case domain.Customers:
		return customerTools()
	case domain.Tickets:
		return ticketTools()
	case domain.Contacts:
		return contactTools()
	case domain.Assets:
		return assetTools()
	case domain.Invoices:
		return invoiceTools()
	default:
		return nil
	}
}

// decode maps a loosely-typed argument bag onto a param struct. Weak
// typing is deliberate: JSON numbers arrive as float64 and some agents
// send numeric IDs as strings.
func decode(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// requireID pulls a required integer ID out of the argument bag. JSON
// numbers arrive as float64; string IDs are tolerated.
func requireID(args map[string]any, key string) (int, error) {
	switch v := args[key].(type) {
	case float64:
		if v > 0 {
			return int(v), nil
		}
	case int:
		if v > 0 {
			return v, nil
		}
	case json.Number:
		if n, err := v.Int64(); err == nil && n > 0 {
			return int(n), nil
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n, nil
		}
	case nil:
		return 0, fmt.Errorf("missing required argument %q", key)
	}
	return 0, fmt.Errorf("argument %q must be a positive integer", key)
}

// jsonResult renders a decoded API response as an indented JSON text
// result for the agent.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultErrorFromErr("failed to render response", err), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// callResult converts a client call outcome into a tool result. Remote
// failures become error results so they cross the protocol boundary as
// structured payloads, never as unhandled failures.
func callResult(v any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(v)
}

// unknownTool is returned when a name reaches a handler it does not own.
// The navigation machine validates names first, so this is unreachable in
// normal dispatch.
func unknownTool(d domain.ID, name string) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(fmt.Sprintf("tool %q is not part of the %s domain", name, d)), nil
}
