package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wyre-technology/syncro-mcp/pkg/domain"
	"github.com/wyre-technology/syncro-mcp/pkg/ports"
	"github.com/wyre-technology/syncro-mcp/pkg/syncro"
)

type invoicesHandler struct {
	client ports.ClientFunc
}

func invoiceTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("invoices_list",
			mcp.WithDescription("List invoices, optionally scoped to one customer."),
			mcp.WithNumber("customer_id", mcp.Description("Only invoices for this customer")),
			mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		),
		mcp.NewTool("invoices_get",
			mcp.WithDescription("Get one invoice by ID, including line items."),
			mcp.WithNumber("invoice_id", mcp.Required(), mcp.Description("Invoice ID")),
		),
		mcp.NewTool("invoices_create",
			mcp.WithDescription("Create an invoice for a customer."),
			mcp.WithNumber("customer_id", mcp.Required(), mcp.Description("Customer the invoice is billed to")),
			mcp.WithString("date", mcp.Description("Invoice date (YYYY-MM-DD), defaults to today")),
			mcp.WithString("due_date", mcp.Description("Due date (YYYY-MM-DD)")),
			mcp.WithString("note", mcp.Description("Note shown on the invoice")),
			mcp.WithArray("line_items", mcp.Description("Line items: objects with item, description, quantity, price, taxable")),
		),
		mcp.NewTool("invoices_email",
			mcp.WithDescription("Email an invoice to the customer's billing contact."),
			mcp.WithNumber("invoice_id", mcp.Required(), mcp.Description("Invoice ID")),
		),
	}
}

func (h *invoicesHandler) Domain() domain.ID { return domain.Invoices }

func (h *invoicesHandler) Tools() []mcp.Tool { return invoiceTools() }

func (h *invoicesHandler) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	client, err := h.client(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch name {
	case "invoices_list":
		var p syncro.InvoiceListParams
		if err := decode(args, &p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.ListInvoices(ctx, p))

	case "invoices_get":
		id, err := requireID(args, "invoice_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.GetInvoice(ctx, id))

	case "invoices_create":
		var p syncro.InvoiceCreateParams
		if err := decode(args, &p); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if p.CustomerID == 0 {
			return mcp.NewToolResultError(`missing required argument "customer_id"`), nil
		}
		return callResult(client.CreateInvoice(ctx, p))

	case "invoices_email":
		id, err := requireID(args, "invoice_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return callResult(client.EmailInvoice(ctx, id))

	default:
		return unknownTool(domain.Invoices, name)
	}
}
