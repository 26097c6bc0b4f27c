package syncro

import (
	"context"
	"fmt"
	"net/http"
)

// CustomerListParams filters the customer listing.
type CustomerListParams struct {
	Query string `mapstructure:"query"`
	Page  int    `mapstructure:"page"`
}

// CustomerParams carries the writable customer fields.
type CustomerParams struct {
	Business  string `mapstructure:"business_name" json:"business_name,omitempty"`
	FirstName string `mapstructure:"first_name" json:"firstname,omitempty"`
	LastName  string `mapstructure:"last_name" json:"lastname,omitempty"`
	Email     string `mapstructure:"email" json:"email,omitempty"`
	Phone     string `mapstructure:"phone" json:"phone,omitempty"`
	Address   string `mapstructure:"address" json:"address,omitempty"`
	City      string `mapstructure:"city" json:"city,omitempty"`
	State     string `mapstructure:"state" json:"state,omitempty"`
	Zip       string `mapstructure:"zip" json:"zip,omitempty"`
	Notes     string `mapstructure:"notes" json:"notes,omitempty"`
}

// ListCustomers returns a page of customers, optionally filtered by a
// free-text query.
func (c *Client) ListCustomers(ctx context.Context, p CustomerListParams) (any, error) {
	q := pageQuery(p.Page)
	if p.Query != "" {
		q.Set("query", p.Query)
	}
	return c.do(ctx, http.MethodGet, "/customers", q, nil)
}

// GetCustomer fetches one customer by ID.
func (c *Client) GetCustomer(ctx context.Context, id int) (any, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil, nil)
}

// CreateCustomer creates a customer.
func (c *Client) CreateCustomer(ctx context.Context, p CustomerParams) (any, error) {
	return c.do(ctx, http.MethodPost, "/customers", nil, p)
}

// UpdateCustomer updates an existing customer.
func (c *Client) UpdateCustomer(ctx context.Context, id int, p CustomerParams) (any, error) {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), nil, p)
}
