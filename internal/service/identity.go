package service

// Package service orchestrates the client session layer: the identity store
// (who the user is), the session store (whether they are authenticated, and
// reconciliation against server and cache), and navigation visibility.

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/openfeed/feedctl/internal/domain/content"
	"github.com/openfeed/feedctl/internal/domain/identity"
	"github.com/openfeed/feedctl/internal/ports"
)

// IdentityStoreOptions groups dependencies for IdentityStore.
type IdentityStoreOptions struct {
	API    ports.AccountsAPI
	Logger *slog.Logger
}

// IdentityStore holds at most one User value and performs identity-scoped
// remote reads/writes. It has no authentication awareness; the session store
// owns that and is the only component that should call SetUser/ClearUser as
// part of the login/logout/restore protocol.
type IdentityStore struct {
	api    ports.AccountsAPI
	logger *slog.Logger

	mu   sync.RWMutex
	user *identity.User
}

// NewIdentityStore constructs an IdentityStore bound to the given API.
func NewIdentityStore(opts IdentityStoreOptions) *IdentityStore {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &IdentityStore{api: opts.API, logger: logger}
}

// Current returns the held user, shared by reference. Nil when no user is
// held.
func (s *IdentityStore) Current() *identity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser unconditionally overwrites the held user.
func (s *IdentityStore) SetUser(u *identity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// ClearUser drops the held user.
func (s *IdentityStore) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// FetchOwnProfile reads the caller's own profile. On success the held user
// is overwritten with the fetched record; on failure nothing is mutated.
func (s *IdentityStore) FetchOwnProfile(ctx context.Context) (*identity.User, error) {
	user, err := s.api.FetchOwnProfile(ctx)
	if err != nil {
		return nil, err
	}
	s.SetUser(user)
	return user, nil
}

// FetchProfileByName reads another account's public profile. The held user
// is never mutated; the fetched record is not "me".
func (s *IdentityStore) FetchProfileByName(ctx context.Context, username string) (*identity.User, error) {
	return s.api.FetchProfileByName(ctx, username)
}

// UpdateProfile writes the given fields. The held user is not updated; the
// session layer re-seeds it via a fresh profile fetch.
func (s *IdentityStore) UpdateProfile(ctx context.Context, patch ports.ProfilePatch) (json.RawMessage, error) {
	return s.api.UpdateProfile(ctx, patch)
}

// ChangePassword performs a credentialed password change.
func (s *IdentityStore) ChangePassword(ctx context.Context, change ports.PasswordChange) (json.RawMessage, error) {
	return s.api.ChangePassword(ctx, change)
}

// DeleteOwnAccount deletes the caller's account.
func (s *IdentityStore) DeleteOwnAccount(ctx context.Context) (json.RawMessage, error) {
	return s.api.DeleteOwnAccount(ctx)
}

// DeleteAccountByID deletes another account. Authorization is enforced
// server-side.
func (s *IdentityStore) DeleteAccountByID(ctx context.Context, id int64) (json.RawMessage, error) {
	return s.api.DeleteAccountByID(ctx, id)
}

// ListPostsForUser returns the user's posts; zero results is an empty slice.
func (s *IdentityStore) ListPostsForUser(ctx context.Context, userID int64) ([]content.Post, error) {
	return s.api.ListPostsForUser(ctx, userID)
}

// DeletePost deletes a post by id.
func (s *IdentityStore) DeletePost(ctx context.Context, postID int64) error {
	return s.api.DeletePost(ctx, postID)
}
