package domain

import "errors"

// ErrNotConfigured is returned when no Syncro credentials are resolvable,
// neither from process configuration nor from the request side channel.
var ErrNotConfigured = errors.New("syncro credentials not configured")

// ErrUnknownDomain is returned when a domain identifier is outside the closed set.
var ErrUnknownDomain = errors.New("unknown domain")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")
