package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wyre-technology/syncro-mcp/pkg/domain"
	"github.com/wyre-technology/syncro-mcp/pkg/ports"
	"github.com/wyre-technology/syncro-mcp/pkg/syncro"
)

type ticketsHandler struct {
	client ports.ClientFunc
}

func ticketTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("tickets_list",
			mcp.WithDescription("List tickets, optionally filtered by status or customer."),
			mcp.WithString("status", mcp.Description("Ticket status filter (e.g. New, In Progress, Resolved)")),
			mcp.WithNumber("customer_id", mcp.Description("Only tickets for this customer")),
			mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		),
		mcp.NewTool("tickets_get",
			mcp.WithDescription("Get one ticket by ID, including its comment thread."),
			mcp.WithNumber("ticket_id", mcp.Required(), mcp.Description("Ticket ID")),
		),
		mcp.NewTool("tickets_create",
			mcp.WithDescription("Create a new ticket for a customer."),
			mcp.WithString("subject", mcp.Required(), mcp.Description("Ticket subject")),
			mcp.WithNumber("customer_id", mcp.Required(), mcp.Description("Customer the ticket belongs to")),
			mcp.WithString("description", mcp.Description("Issue description, stored as the initial comment")),
			mcp.WithString("status", mcp.Description("Initial status, defaults to New")),
			mcp.WithString("priority", mcp.Description("Priority (e.g. 1 Low, 2 Normal, 3 High)")),
			mcp.WithString("problem_type", mcp.Description("Problem category")),
		),
		mcp.NewTool("tickets_update",
			mcp.WithDescription("Update an existing ticket. Only provided fields change."),
			mcp.WithNumber("ticket_id", mcp.Required(), mcp.Description("Ticket ID")),
			mcp.WithString("subject", mcp.Description("New subject")),
			mcp.WithString("status", mcp.Description("New status")),
			mcp.WithString("priority", mcp.Description("New priority")),
			mcp.WithString("due_date", mcp.Description("New due date (YYYY-MM-DD)")),
		),
		mcp.NewTool("tickets_add_comment",
			mcp.WithDescription("Add a comment to a ticket."),
			mcp.WithNumber("ticket_id", mcp.Required(), mcp.Description("Ticket ID")),
			mcp.WithString("body", mcp.Required(), mcp.Description("Comment text")),
			mcp.WithString("subject", mcp.Description("Comment subject line")),
			mcp.WithBoolean("hidden", mcp.Description("Internal-only comment, hidden from the customer")),
			mcp.WithBoolean("do_not_email", mcp.Description("Skip the customer notification email")),
		),
	}
}

func (h *ticketsHandler) Domain() domain.ID { return domain.Tickets }

func (h *ticketsHandler) Tools() []mcp.Tool { return ticketTools() }

func (h *ticketsHandler) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	client, err := h.client(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch name {
	case "tickets_list":
		var p syncro.TicketListParams
		if err := decode(args, &p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.ListTickets(ctx, p))

	case "tickets_get":
		id, err := requireID(args, "ticket_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.GetTicket(ctx, id))

	case "tickets_create":
		var p syncro.TicketCreateParams
		if err := decode(args, &p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if p.Subject == "" {
			return mcp.NewToolResultError(`missing required argument "subject"`), nil
		}
		if p.CustomerID == 0 {
			return mcp.NewToolResultError(`missing required argument "customer_id"`), nil
		}
		return callResult(client.CreateTicket(ctx, p))

	case "tickets_update":
		id, err := requireID(args, "ticket_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var p syncro.TicketUpdateParams
		if err := decode(args, &p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.UpdateTicket(ctx, id, p))

	case "tickets_add_comment":
		id, err := requireID(args, "ticket_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var p syncro.TicketCommentParams
		if err := decode(args, &p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if p.Body == "" {
			return mcp.NewToolResultError(`missing required argument "body"`), nil
		}
		return callResult(client.AddTicketComment(ctx, id, p))

	default:
		return unknownTool(domain.Tickets, name)
	}
}
