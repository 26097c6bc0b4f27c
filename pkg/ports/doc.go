// Package ports defines the interfaces between the navigation core and
// its adapters: domain handlers, the backing-client resolver, and the
// session state store. Core logic depends on these contracts, never on
// concrete adapters.
package ports
