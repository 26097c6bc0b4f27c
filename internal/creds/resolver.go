package creds

import "context"

// Resolver derives the effective credential tuple for a call. Context
// credentials (the request side channel) win over the process-wide
// configuration; nothing is persisted between calls.
type Resolver struct {
	base Credentials
}

// NewResolver creates a resolver over the process-wide tuple. Both
// fields may be empty; in header auth mode credentials arrive per
// request instead.
func NewResolver(base Credentials) *Resolver {
	return &Resolver{base: base}
}

// Resolve returns the effective tuple and whether it is usable.
func (r *Resolver) Resolve(ctx context.Context) (Credentials, bool) {
	if c, ok := FromContext(ctx); ok && c.Valid() {
		return c, true
	}
	if r.base.Valid() {
		return r.base, true
	}
	return Credentials{}, false
}
