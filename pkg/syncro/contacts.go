package syncro

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// ContactListParams filters the contact listing.
type ContactListParams struct {
	CustomerID int `mapstructure:"customer_id"`
	Page       int `mapstructure:"page"`
}

// ContactParams carries the writable contact fields.
type ContactParams struct {
	CustomerID int    `mapstructure:"customer_id" json:"customer_id,omitempty"`
	Name       string `mapstructure:"name" json:"name,omitempty"`
	Email      string `mapstructure:"email" json:"email,omitempty"`
	Phone      string `mapstructure:"phone" json:"phone,omitempty"`
	Mobile     string `mapstructure:"mobile" json:"mobile,omitempty"`
	Notes      string `mapstructure:"notes" json:"notes,omitempty"`
}

// ListContacts returns a page of contacts, optionally scoped to a customer.
func (c *Client) ListContacts(ctx context.Context, p ContactListParams) (any, error) {
	q := pageQuery(p.Page)
	if p.CustomerID > 0 {
		q.Set("customer_id", strconv.Itoa(p.CustomerID))
	}
	return c.do(ctx, http.MethodGet, "/contacts", q, nil)
}

// GetContact fetches one contact by ID.
func (c *Client) GetContact(ctx context.Context, id int) (any, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/contacts/%d", id), nil, nil)
}

// CreateContact creates a contact under a customer.
func (c *Client) CreateContact(ctx context.Context, p ContactParams) (any, error) {
	return c.do(ctx, http.MethodPost, "/contacts", nil, p)
}

// UpdateContact updates an existing contact.
func (c *Client) UpdateContact(ctx context.Context, id int, p ContactParams) (any, error) {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/contacts/%d", id), nil, p)
}
