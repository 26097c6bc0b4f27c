package syncro

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// TicketListParams filters the ticket listing.
type TicketListParams struct {
	Status     string `mapstructure:"status"`
	CustomerID int    `mapstructure:"customer_id"`
	Page       int    `mapstructure:"page"`
}

// TicketCreateParams carries the fields for a new ticket.
type TicketCreateParams struct {
	Subject     string `mapstructure:"subject" json:"subject"`
	CustomerID  int    `mapstructure:"customer_id" json:"customer_id"`
	Status      string `mapstructure:"status" json:"status,omitempty"`
	Priority    string `mapstructure:"priority" json:"priority,omitempty"`
	ProblemType string `mapstructure:"problem_type" json:"problem_type,omitempty"`
	Description string `mapstructure:"description" json:"-"`
}

// TicketUpdateParams carries the mutable ticket fields.
type TicketUpdateParams struct {
	Subject  string `mapstructure:"subject" json:"subject,omitempty"`
	Status   string `mapstructure:"status" json:"status,omitempty"`
	Priority string `mapstructure:"priority" json:"priority,omitempty"`
	DueDate  string `mapstructure:"due_date" json:"due_date,omitempty"`
}

// TicketCommentParams carries a new ticket comment.
type TicketCommentParams struct {
	Body    string `mapstructure:"body" json:"body"`
	Subject string `mapstructure:"subject" json:"subject,omitempty"`
	Hidden  bool   `mapstructure:"hidden" json:"hidden,omitempty"`
	DoNotEmail bool `mapstructure:"do_not_email" json:"do_not_email,omitempty"`
}

// ListTickets returns a page of tickets with optional status and customer filters.
func (c *Client) ListTickets(ctx context.Context, p TicketListParams) (any, error) {
	q := pageQuery(p.Page)
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.CustomerID > 0 {
		q.Set("customer_id", strconv.Itoa(p.CustomerID))
	}
	return c.do(ctx, http.MethodGet, "/tickets", q, nil)
}

// GetTicket fetches one ticket by ID.
func (c *Client) GetTicket(ctx context.Context, id int) (any, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d", id), nil, nil)
}

// CreateTicket creates a ticket. A non-empty description becomes the
// ticket's initial comment, matching how the Syncro UI seeds new tickets.
func (c *Client) CreateTicket(ctx context.Context, p TicketCreateParams) (any, error) {
	body := map[string]any{
		"subject":     p.Subject,
		"customer_id": p.CustomerID,
	}
	if p.Status != "" {
		body["status"] = p.Status
	}
	if p.Priority != "" {
		body["priority"] = p.Priority
	}
	if p.ProblemType != "" {
		body["problem_type"] = p.ProblemType
	}
	if p.Description != "" {
		body["comments_attributes"] = []map[string]any{{
			"subject": "Initial Issue",
			"body":    p.Description,
			"hidden":  false,
		}}
	}
	return c.do(ctx, http.MethodPost, "/tickets", nil, body)
}

// UpdateTicket updates an existing ticket.
func (c *Client) UpdateTicket(ctx context.Context, id int, p TicketUpdateParams) (any, error) {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/tickets/%d", id), nil, p)
}

// AddTicketComment appends a comment to a ticket.
func (c *Client) AddTicketComment(ctx context.Context, id int, p TicketCommentParams) (any, error) {
	if p.Subject == "" {
		p.Subject = "Update"
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/tickets/%d/comment", id), nil, p)
}
