package nav

// Package nav contains the static navigation catalog and pure derivation of
// what the UI may show for a given authentication state. No network access,
// no persisted state; everything here is recomputed on every call.

// Entry is a single navigation item. The list is compile-time static.
type Entry struct {
	Key          string
	Label        string
	Route        string
	RequiresAuth bool
}

// KeyProfile is the one entry whose visibility is gated on authentication.
// Other RequiresAuth entries stay visible for anonymous users; the flag still
// drives the sign-in warning for their routes.
const KeyProfile = "profile"

// Entries returns the navigation catalog in display order.
func Entries() []Entry {
	return []Entry{
		{Key: "feed", Label: "Feed", Route: "/feed"},
		{Key: "blacklist", Label: "Blacklist", Route: "/blacklist", RequiresAuth: true},
		{Key: "whitelist", Label: "Whitelist", Route: "/whitelist", RequiresAuth: true},
		{Key: KeyProfile, Label: "Profile", Route: "/profile", RequiresAuth: true},
	}
}

// Visible filters the catalog for the given authentication state.
// Only the profile entry is hidden for anonymous users.
func Visible(authenticated bool) []Entry {
	all := Entries()
	out := make([]Entry, 0, len(all))
	for _, e := range all {
		if e.RequiresAuth && e.Key == KeyProfile && !authenticated {
			continue
		}
		out = append(out, e)
	}
	return out
}

// NeedsAuthWarning reports whether a sign-in warning applies: the caller is
// anonymous and the active route belongs to an auth-required entry.
func NeedsAuthWarning(authenticated bool, route string) bool {
	if authenticated {
		return false
	}
	for _, e := range Entries() {
		if e.RequiresAuth && e.Route == route {
			return true
		}
	}
	return false
}
