package syncro

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// AssetListParams filters the asset listing.
type AssetListParams struct {
	CustomerID int    `mapstructure:"customer_id"`
	Query      string `mapstructure:"query"`
	Page       int    `mapstructure:"page"`
}

// AssetUpdateParams carries the mutable asset fields.
type AssetUpdateParams struct {
	Name       string         `mapstructure:"name" json:"name,omitempty"`
	AssetType  string         `mapstructure:"asset_type" json:"asset_type,omitempty"`
	Properties map[string]any `mapstructure:"properties" json:"properties,omitempty"`
}

// ListAssets returns a page of customer assets (RMM devices and tracked
// hardware), optionally scoped to a customer or filtered by query.
func (c *Client) ListAssets(ctx context.Context, p AssetListParams) (any, error) {
	q := pageQuery(p.Page)
	if p.CustomerID > 0 {
		q.Set("customer_id", strconv.Itoa(p.CustomerID))
	}
	if p.Query != "" {
		q.Set("query", p.Query)
	}
	return c.do(ctx, http.MethodGet, "/customer_assets", q, nil)
}

// GetAsset fetches one asset by ID.
func (c *Client) GetAsset(ctx context.Context, id int) (any, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/customer_assets/%d", id), nil, nil)
}

// UpdateAsset updates an existing asset.
func (c *Client) UpdateAsset(ctx context.Context, id int, p AssetUpdateParams) (any, error) {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/customer_assets/%d", id), nil, p)
}
