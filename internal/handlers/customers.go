package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wyre-technology/syncro-mcp/pkg/domain"
	"github.com/wyre-technology/syncro-mcp/pkg/ports"
	"github.com/wyre-technology/syncro-mcp/pkg/syncro"
)

type customersHandler struct {
	client ports.ClientFunc
}

func customerTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("customers_list",
			mcp.WithDescription("List customers, optionally filtered by a search query."),
			mcp.WithString("query", mcp.Description("Free-text search over customer names and emails")),
			mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		),
		mcp.NewTool("customers_get",
			mcp.WithDescription("Get one customer by ID, including contacts and recent activity."),
			mcp.WithNumber("customer_id", mcp.Required(), mcp.Description("Customer ID")),
		),
		mcp.NewTool("customers_create",
			mcp.WithDescription("Create a new customer."),
			mcp.WithString("business_name", mcp.Description("Business name")),
			mcp.WithString("first_name", mcp.Description("Primary contact first name")),
			mcp.WithString("last_name", mcp.Description("Primary contact last name")),
			mcp.WithString("email", mcp.Description("Primary email address")),
			mcp.WithString("phone", mcp.Description("Phone number")),
			mcp.WithString("address", mcp.Description("Street address")),
			mcp.WithString("city", mcp.Description("City")),
			mcp.WithString("state", mcp.Description("State or region")),
			mcp.WithString("zip", mcp.Description("Postal code")),
			mcp.WithString("notes", mcp.Description("Internal notes")),
		),
		mcp.NewTool("customers_update",
			mcp.WithDescription("Update an existing customer. Only provided fields change."),
			mcp.WithNumber("customer_id", mcp.Required(), mcp.Description("Customer ID")),
			mcp.WithString("business_name", mcp.Description("Business name")),
			mcp.WithString("first_name", mcp.Description("Primary contact first name")),
			mcp.WithString("last_name", mcp.Description("Primary contact last name")),
			mcp.WithString("email", mcp.Description("Primary email address")),
			mcp.WithString("phone", mcp.Description("Phone number")),
			mcp.WithString("notes", mcp.Description("Internal notes")),
		),
	}
}

func (h *customersHandler) Domain() domain.ID { return domain.Customers }

func (h *customersHandler) Tools() []mcp.Tool { return customerTools() }

func (h *customersHandler) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	client, err := h.client(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch name {
	case "customers_list":
		var p syncro.CustomerListParams
		if err := decode(args, &p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.ListCustomers(ctx, p))

	case "customers_get":
		id, err := requireID(args, "customer_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.GetCustomer(ctx, id))

	case "customers_create":
		var p syncro.CustomerParams
		if err := decode(args, &p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.CreateCustomer(ctx, p))

	case "customers_update":
		id, err := requireID(args, "customer_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var p syncro.CustomerParams
		if err := decode(args, &p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.UpdateCustomer(ctx, id, p))

	default:
		return unknownTool(domain.Customers, name)
	}
}
