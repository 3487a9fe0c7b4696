// Package memstore keeps the session record in process memory only. Nothing
// survives exit; it backs the "memory" cache setting for throwaway usage.
package memstore

import (
	"context"
	"errors"
	"sync"

	"github.com/openfeed/feedctl/internal/domain/identity"
	"github.com/openfeed/feedctl/internal/ports"
)

// SessionCache is an in-memory session cache. The zero value is usable.
type SessionCache struct {
	mu   sync.Mutex
	user *identity.User
}

var _ ports.SessionCache = (*SessionCache)(nil)

// New creates an empty SessionCache.
func New() *SessionCache {
	return &SessionCache{}
}

// Save stores a copy of the user.
func (c *SessionCache) Save(ctx context.Context, user *identity.User) error {
	if user == nil {
		return errors.New("user is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = user.Clone()
	return nil
}

// Load returns a copy of the stored user, or ports.ErrNoSession when empty.
func (c *SessionCache) Load(ctx context.Context) (*identity.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil, ports.ErrNoSession
	}
	return c.user.Clone(), nil
}

// Clear drops the stored user.
func (c *SessionCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
	return nil
}
