package service

import (
	"github.com/openfeed/feedctl/internal/domain/nav"
	"github.com/openfeed/feedctl/internal/ports"
)

// SessionView is the read-only slice of session state the nav store needs.
type SessionView interface {
	Authenticated() bool
}

// NavStore derives navigation visibility from live session state and the
// active route. It holds no state of its own; every answer is recomputed so
// it can never disagree with the session store.
type NavStore struct {
	session SessionView
	route   ports.RouteSource
}

// NewNavStore constructs a NavStore over the given session view and route
// source.
func NewNavStore(session SessionView, route ports.RouteSource) *NavStore {
	return &NavStore{session: session, route: route}
}

// Entries returns the full navigation catalog in display order.
func (n *NavStore) Entries() []nav.Entry {
	return nav.Entries()
}

// VisibleEntries returns the catalog filtered for the current authentication
// state.
func (n *NavStore) VisibleEntries() []nav.Entry {
	return nav.Visible(n.session.Authenticated())
}

// NeedsAuthWarning reports whether the sign-in warning applies to the active
// route.
func (n *NavStore) NeedsAuthWarning() bool {
	return nav.NeedsAuthWarning(n.session.Authenticated(), n.route.Current())
}
