package creds

import "context"

// Credentials is the tuple a Syncro client is built from. Subdomain is
// the optional tenant qualifier; a tuple with an empty APIKey is not
// usable.
type Credentials struct {
	APIKey    string
	Subdomain string
}

// Valid reports whether the tuple can authenticate at all.
func (c Credentials) Valid() bool {
	return c.APIKey != ""
}

type ctxKey struct{}

// WithCredentials attaches request-scoped credentials to the context.
// The HTTP transport uses this to overlay header credentials for the
// duration of one request.
func WithCredentials(ctx context.Context, c Credentials) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext extracts request-scoped credentials, if any were attached.
func FromContext(ctx context.Context) (Credentials, bool) {
	c, ok := ctx.Value(ctxKey{}).(Credentials)
	return c, ok
}
