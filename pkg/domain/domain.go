package domain

import "strings"

// ID identifies one Syncro domain: a fixed named category of remote
// operations the server can navigate into.
type ID string

const (
	Customers ID = "customers"
	Tickets   ID = "tickets"
	Contacts  ID = "contacts"
	Assets    ID = "assets"
	Invoices  ID = "invoices"
)

// All returns the closed domain set in canonical order.
// This ordering is used everywhere domains are enumerated: the navigate
// tool enum, error messages, and the status report.
func All() []ID {
	return []ID{Customers, Tickets, Contacts, Assets, Invoices}
}

// Names returns the canonical domain order as plain strings.
func Names() []string {
	ids := All()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return names
}

// Parse validates a raw string against the closed domain set.
func Parse(raw string) (ID, bool) {
	id := ID(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range All() {
		if id == known {
			return id, true
		}
	}
	return "", false
}
