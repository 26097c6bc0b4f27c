// Package syncromcp is an MCP server for the Syncro MSP platform.
//
// Syncro exposes dozens of API operations; presenting them all as tools
// at once degrades an agent's tool selection. This server instead
// presents a navigable surface: at root the agent sees only navigate and
// status, entering a domain (customers, tickets, contacts, assets,
// invoices) reveals that domain's tools plus back, and leaving hides
// them again.
//
// The server speaks MCP over a stdio duplex channel or over streamable
// HTTP, and can authenticate either with process-wide credentials or
// with per-request header credentials for multi-tenant deployments.
package syncromcp

// Version is the release version reported over MCP and on /healthz.
const Version = "0.3.0"
