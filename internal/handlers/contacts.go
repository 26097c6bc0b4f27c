package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wyre-technology/syncro-mcp/pkg/domain"
	"github.com/wyre-technology/syncro-mcp/pkg/ports"
	"github.com/wyre-technology/syncro-mcp/pkg/syncro"
)

type contactsHandler struct {
	client ports.ClientFunc
}

func contactTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("contacts_list",
			mcp.WithDescription("List contacts, optionally scoped to one customer."),
			mcp.WithNumber("customer_id", mcp.Description("Only contacts for this customer")),
			mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		),
		mcp.NewTool("contacts_get",
			mcp.WithDescription("Get one contact by ID."),
			mcp.WithNumber("contact_id", mcp.Required(), mcp.Description("Contact ID")),
		),
		mcp.NewTool("contacts_create",
			mcp.WithDescription("Create a contact under a customer."),
			mcp.WithNumber("customer_id", mcp.Required(), mcp.Description("Customer the contact belongs to")),
			mcp.WithString("name", mcp.Required(), mcp.Description("Full name")),
			mcp.WithString("email", mcp.Description("Email address")),
			mcp.WithString("phone", mcp.Description("Phone number")),
			mcp.WithString("mobile", mcp.Description("Mobile number")),
			mcp.WithString("notes", mcp.Description("Internal notes")),
		),
		mcp.NewTool("contacts_update",
			mcp.WithDescription("Update an existing contact. Only provided fields change."),
			mcp.WithNumber("contact_id", mcp.Required(), mcp.Description("Contact ID")),
			mcp.WithString("name", mcp.Description("Full name")),
			mcp.WithString("email", mcp.Description("Email address")),
			mcp.WithString("phone", mcp.Description("Phone number")),
			mcp.WithString("mobile", mcp.Description("Mobile number")),
			mcp.WithString("notes", mcp.Description("Internal notes")),
		),
	}
}

func (h *contactsHandler) Domain() domain.ID { return domain.Contacts }

func (h *contactsHandler) Tools() []mcp.Tool { return contactTools() }

func (h *contactsHandler) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	client, err := h.client(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch name {
	case "contacts_list":
		var p syncro.ContactListParams
		if err := decode(args, &p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.ListContacts(ctx, p))

	case "contacts_get":
		id, err := requireID(args, "contact_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.GetContact(ctx, id))

	case "contacts_create":
		var p syncro.ContactParams
		if err := decode(args, &p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if p.CustomerID == 0 {
			return mcp.NewToolResultError(`missing required argument "customer_id"`), nil
		}
		if p.Name == "" {
			return mcp.NewToolResultError(`missing required argument "name"`), nil
		}
		return callResult(client.CreateContact(ctx, p))

	case "contacts_update":
		id, err := requireID(args, "contact_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var p syncro.ContactParams
		if err := decode(args, &p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.UpdateContact(ctx, id, p))

	default:
		return unknownTool(domain.Contacts, name)
	}
}
