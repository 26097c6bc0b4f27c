package syncro

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// InvoiceListParams filters the invoice listing.
type InvoiceListParams struct {
	CustomerID int `mapstructure:"customer_id"`
	Page       int `mapstructure:"page"`
}

// InvoiceLineItem is one line on a new invoice.
type InvoiceLineItem struct {
	Item        string  `mapstructure:"item" json:"item,omitempty"`
	Description string  `mapstructure:"description" json:"name,omitempty"`
	Quantity    float64 `mapstructure:"quantity" json:"quantity,omitempty"`
	Price       float64 `mapstructure:"price" json:"price,omitempty"`
	Taxable     bool    `mapstructure:"taxable" json:"taxable,omitempty"`
}

// InvoiceCreateParams carries the fields for a new invoice.
type InvoiceCreateParams struct {
	CustomerID int               `mapstructure:"customer_id" json:"customer_id"`
	Date       string            `mapstructure:"date" json:"date,omitempty"`
	DueDate    string            `mapstructure:"due_date" json:"due_date,omitempty"`
	Note       string            `mapstructure:"note" json:"note,omitempty"`
	LineItems  []InvoiceLineItem `mapstructure:"line_items" json:"line_items,omitempty"`
}

// ListInvoices returns a page of invoices, optionally scoped to a customer.
func (c *Client) ListInvoices(ctx context.Context, p InvoiceListParams) (any, error) {
	q := pageQuery(p.Page)
	if p.CustomerID > 0 {
		q.Set("customer_id", strconv.Itoa(p.CustomerID))
	}
	return c.do(ctx, http.MethodGet, "/invoices", q, nil)
}

// GetInvoice fetches one invoice by ID.
func (c *Client) GetInvoice(ctx context.Context, id int) (any, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/invoices/%d", id), nil, nil)
}

// CreateInvoice creates an invoice.
func (c *Client) CreateInvoice(ctx context.Context, p InvoiceCreateParams) (any, error) {
	return c.do(ctx, http.MethodPost, "/invoices", nil, p)
}

// EmailInvoice emails an invoice to the customer's billing contact.
func (c *Client) EmailInvoice(ctx context.Context, id int) (any, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/invoices/%d/email", id), nil, nil)
}
