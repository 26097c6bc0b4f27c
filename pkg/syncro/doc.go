// Package syncro implements the HTTP client for the Syncro MSP REST API.
//
// The client is a thin pass-through: parameters go in, the decoded JSON
// document comes back out unchanged. Higher layers own formatting and
// error presentation. Remote failures, including 429 rate limits, are
// returned as *APIError and never retried here.
package syncro
