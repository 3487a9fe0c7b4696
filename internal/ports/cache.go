package ports

import (
	"context"

	"github.com/openfeed/feedctl/internal/domain/identity"
)

// ErrNoSession is returned by SessionCache.Load when no persisted record
// exists.
type noSessionError struct{}

func (noSessionError) Error() string { return "no persisted session" }

var ErrNoSession error = noSessionError{}

// SessionCache is the durable, reload-surviving copy of the session: the
// serialized user record plus an opaque presence marker. It is a cache, not
// the source of truth. Save overwrites both slots; Clear removes both.
type SessionCache interface {
	Save(ctx context.Context, user *identity.User) error
	Load(ctx context.Context) (*identity.User, error)
	Clear(ctx context.Context) error
}
