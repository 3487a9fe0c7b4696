package redisstore

// Package redisstore persists the session record in Redis, for shared dev
// environments where the client state should survive the local filesystem.
// Same two-slot layout as the file backend: serialized user plus a presence
// marker under prefixed keys.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/openfeed/feedctl/internal/domain/identity"
	"github.com/openfeed/feedctl/internal/ports"
)

const defaultPrefix = "feedctl:session:"

// SessionCache is a Redis-backed session cache.
type SessionCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ ports.SessionCache = (*SessionCache)(nil)

// New creates a SessionCache with the default key prefix. ttl of zero means
// the record never expires.
func New(client redis.UniversalClient, ttl time.Duration) *SessionCache {
	return NewWithPrefix(client, defaultPrefix, ttl)
}

// NewWithPrefix creates a SessionCache with a custom key prefix.
func NewWithPrefix(client redis.UniversalClient, prefix string, ttl time.Duration) *SessionCache {
	return &SessionCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *SessionCache) userKey() string   { return c.prefix + "user" }
func (c *SessionCache) markerKey() string { return c.prefix + "marker" }

// Save writes both slots, user first so a marker always points at a
// readable record.
func (c *SessionCache) Save(ctx context.Context, user *identity.User) error {
	if user == nil {
		return errors.New("user is required")
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	if err := c.client.Set(ctx, c.userKey(), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set user slot: %w", err)
	}
	if err := c.client.Set(ctx, c.markerKey(), uuid.NewString(), c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set marker slot: %w", err)
	}
	return nil
}

// Load reads the persisted record. A missing marker is ports.ErrNoSession; a
// marker without a readable user slot is corruption.
func (c *SessionCache) Load(ctx context.Context) (*identity.User, error) {
	if _, err := c.client.Get(ctx, c.markerKey()).Result(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrNoSession
		}
		return nil, fmt.Errorf("redis get marker slot: %w", err)
	}

	data, err := c.client.Get(ctx, c.userKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("marker present but user slot missing")
		}
		return nil, fmt.Errorf("redis get user slot: %w", err)
	}

	var user identity.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("decode user slot: %w", err)
	}
	return &user, nil
}

// Clear removes both slots.
func (c *SessionCache) Clear(ctx context.Context) error {
	if err := c.client.Del(ctx, c.markerKey(), c.userKey()).Err(); err != nil {
		return fmt.Errorf("redis del session slots: %w", err)
	}
	return nil
}
