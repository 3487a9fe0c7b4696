package filestore

// Package filestore persists the session record on local disk: one slot for
// the serialized user, one for an opaque presence marker. It is the default
// cache backend, scoped to the state directory the way browser storage is
// scoped to an origin.

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/openfeed/feedctl/internal/domain/identity"
	"github.com/openfeed/feedctl/internal/ports"
)

const (
	userFile   = "session_user.json"
	markerFile = "session_marker"
)

// SessionCache stores the two session slots under a state directory.
type SessionCache struct {
	dir    string
	logger *slog.Logger
}

var _ ports.SessionCache = (*SessionCache)(nil)

// New creates a SessionCache rooted at dir. The directory is created on the
// first Save.
func New(dir string, logger *slog.Logger) *SessionCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionCache{dir: dir, logger: logger}
}

func (c *SessionCache) userPath() string   { return filepath.Join(c.dir, userFile) }
func (c *SessionCache) markerPath() string { return filepath.Join(c.dir, markerFile) }

// Save writes both slots. The user slot is written before the marker so a
// marker on disk always points at a readable user record.
func (c *SessionCache) Save(_ context.Context, user *identity.User) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(c.userPath(), data, 0o600); err != nil {
		return fmt.Errorf("write user slot: %w", err)
	}
	if err := os.WriteFile(c.markerPath(), []byte(uuid.NewString()), 0o600); err != nil {
		return fmt.Errorf("write marker slot: %w", err)
	}
	return nil
}

// Load reads the persisted record. The marker is the presence signal: no
// marker means ports.ErrNoSession; a marker with an unreadable user slot is
// corruption, not absence.
func (c *SessionCache) Load(_ context.Context) (*identity.User, error) {
	if _, err := os.Stat(c.markerPath()); err != nil {
		if os.IsNotExist(err) {
			return nil, ports.ErrNoSession
		}
		return nil, fmt.Errorf("stat marker slot: %w", err)
	}

	data, err := os.ReadFile(c.userPath())
	if err != nil {
		return nil, fmt.Errorf("read user slot: %w", err)
	}

	var user identity.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode user slot: %w", err)
	}
	return &user, nil
}

// Clear removes both slots. Missing files are fine.
func (c *SessionCache) Clear(_ context.Context) error {
	for _, path := range []string{c.markerPath(), c.userPath()} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}
