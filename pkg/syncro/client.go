package syncro

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal REST client for the Syncro MSP API
// (https://<subdomain>.syncromsp.com/api/v1). One Client is bound to
// exactly one credential tuple (API key, subdomain) for its lifetime.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	subdomain  string
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the computed API base URL. Used in tests to point
// the client at a local server.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

// New creates a client for the given credential tuple.
func New(apiKey, subdomain string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    fmt.Sprintf("https://%s.syncromsp.com/api/v1", subdomain),
		apiKey:     apiKey,
		subdomain:  subdomain,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subdomain returns the tenant qualifier this client was built for.
func (c *Client) Subdomain() string {
	return c.subdomain
}

// APIError carries a non-2xx Syncro response. The message is surfaced to
// the caller verbatim; retry policy is not this layer's concern.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == http.StatusTooManyRequests {
		return fmt.Sprintf("syncro api rate limit exceeded (429): %s", e.Message)
	}
	return fmt.Sprintf("syncro api error (%d): %s", e.StatusCode, e.Message)
}

// do performs one API call. Query and body may be nil. The decoded JSON
// response is returned as-is so callers can forward it unchanged.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("syncro api request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data, resp.StatusCode),
		}
	}

	if len(data) == 0 {
		return map[string]any{"success": true}, nil
	}

	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}

// errorMessage extracts a human-readable message from an error body.
// Syncro uses "message" for most errors and "error"/"errors" on some
// validation failures.
func errorMessage(data []byte, status int) string {
	var body map[string]any
	if err := json.Unmarshal(data, &body); err == nil {
		if msg, ok := body["message"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := body["error"].(string); ok && msg != "" {
			return msg
		}
		if errs, ok := body["errors"]; ok {
			if text, err := json.Marshal(errs); err == nil {
				return string(text)
			}
		}
	}
	if text := strings.TrimSpace(string(data)); text != "" {
		return text
	}
	return http.StatusText(status)
}

// pageQuery builds the common pagination/filter query values.
func pageQuery(page int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", fmt.Sprintf("%d", page))
	}
	return q
}
