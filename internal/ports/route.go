package ports

// RouteSource exposes the currently active route path, read-only. The
// session layer consumes it only to derive the sign-in warning.
type RouteSource interface {
	Current() string
}

// StaticRoute is a RouteSource fixed at construction. Useful for CLIs and
// tests where there is no live router.
type StaticRoute string

func (r StaticRoute) Current() string { return string(r) }
