package accounts

// Package accounts contains simple hand-written test doubles for the session
// layer ports. These are lightweight and suitable for unit tests without
// codegen.

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/openfeed/feedctl/internal/domain/content"
	"github.com/openfeed/feedctl/internal/domain/identity"
	"github.com/openfeed/feedctl/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AccountsAPI  = (*StubAccountsAPI)(nil)
	_ ports.SessionCache = (*MemorySessionCache)(nil)
)

// StubAccountsAPI is a scripted AccountsAPI. Per-method func fields override
// behavior; unset methods return DefaultUser (where a user is expected) or
// zero values. Call counts are tracked per method name.
type StubAccountsAPI struct {
	LoginFunc              func(ctx context.Context, creds ports.Credentials) (*identity.User, error)
	RegisterFunc           func(ctx context.Context, form ports.RegistrationForm) (*identity.User, error)
	LogoutFunc             func(ctx context.Context) error
	FetchOwnProfileFunc    func(ctx context.Context) (*identity.User, error)
	FetchProfileByNameFunc func(ctx context.Context, username string) (*identity.User, error)
	UpdateProfileFunc      func(ctx context.Context, patch ports.ProfilePatch) (json.RawMessage, error)
	ChangePasswordFunc     func(ctx context.Context, change ports.PasswordChange) (json.RawMessage, error)
	DeleteOwnAccountFunc   func(ctx context.Context) (json.RawMessage, error)
	DeleteAccountByIDFunc  func(ctx context.Context, id int64) (json.RawMessage, error)
	ListPostsForUserFunc   func(ctx context.Context, userID int64) ([]content.Post, error)
	DeletePostFunc         func(ctx context.Context, postID int64) error

	DefaultUser *identity.User

	mu    sync.Mutex
	calls map[string]int
}

// NewStubAccountsAPI creates a StubAccountsAPI with a sensible default user.
func NewStubAccountsAPI() *StubAccountsAPI {
	return &StubAccountsAPI{
		DefaultUser: &identity.User{
			ID:       1,
			Username: "stubuser",
			Email:    "stub.user@example.com",
			Role:     identity.RoleStandard,
		},
	}
}

// Calls reports how many times the named method was invoked.
func (s *StubAccountsAPI) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

func (s *StubAccountsAPI) record(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[method]++
}

func (s *StubAccountsAPI) Login(ctx context.Context, creds ports.Credentials) (*identity.User, error) {
	s.record("Login")
	if s.LoginFunc != nil {
		return s.LoginFunc(ctx, creds)
	}
	return s.DefaultUser, nil
}

func (s *StubAccountsAPI) Register(ctx context.Context, form ports.RegistrationForm) (*identity.User, error) {
	s.record("Register")
	if s.RegisterFunc != nil {
		return s.RegisterFunc(ctx, form)
	}
	return s.DefaultUser, nil
}

func (s *StubAccountsAPI) Logout(ctx context.Context) error {
	s.record("Logout")
	if s.LogoutFunc != nil {
		return s.LogoutFunc(ctx)
	}
	return nil
}

func (s *StubAccountsAPI) FetchOwnProfile(ctx context.Context) (*identity.User, error) {
	s.record("FetchOwnProfile")
	if s.FetchOwnProfileFunc != nil {
		return s.FetchOwnProfileFunc(ctx)
	}
	return s.DefaultUser, nil
}

func (s *StubAccountsAPI) FetchProfileByName(ctx context.Context, username string) (*identity.User, error) {
	s.record("FetchProfileByName")
	if s.FetchProfileByNameFunc != nil {
		return s.FetchProfileByNameFunc(ctx, username)
	}
	return s.DefaultUser, nil
}

func (s *StubAccountsAPI) UpdateProfile(ctx context.Context, patch ports.ProfilePatch) (json.RawMessage, error) {
	s.record("UpdateProfile")
	if s.UpdateProfileFunc != nil {
		return s.UpdateProfileFunc(ctx, patch)
	}
	return json.RawMessage(`{}`), nil
}

func (s *StubAccountsAPI) ChangePassword(ctx context.Context, change ports.PasswordChange) (json.RawMessage, error) {
	s.record("ChangePassword")
	if s.ChangePasswordFunc != nil {
		return s.ChangePasswordFunc(ctx, change)
	}
	return json.RawMessage(`{}`), nil
}

func (s *StubAccountsAPI) DeleteOwnAccount(ctx context.Context) (json.RawMessage, error) {
	s.record("DeleteOwnAccount")
	if s.DeleteOwnAccountFunc != nil {
		return s.DeleteOwnAccountFunc(ctx)
	}
	return json.RawMessage(`{}`), nil
}

func (s *StubAccountsAPI) DeleteAccountByID(ctx context.Context, id int64) (json.RawMessage, error) {
	s.record("DeleteAccountByID")
	if s.DeleteAccountByIDFunc != nil {
		return s.DeleteAccountByIDFunc(ctx, id)
	}
	return json.RawMessage(`{}`), nil
}

func (s *StubAccountsAPI) ListPostsForUser(ctx context.Context, userID int64) ([]content.Post, error) {
	s.record("ListPostsForUser")
	if s.ListPostsForUserFunc != nil {
		return s.ListPostsForUserFunc(ctx, userID)
	}
	return []content.Post{}, nil
}

func (s *StubAccountsAPI) DeletePost(ctx context.Context, postID int64) error {
	s.record("DeletePost")
	if s.DeletePostFunc != nil {
		return s.DeletePostFunc(ctx, postID)
	}
	return nil
}

// MemorySessionCache is an in-memory SessionCache. The zero value is usable.
// Per-method error fields inject failures; LoadCorrupt simulates a record
// that exists but cannot be decoded.
type MemorySessionCache struct {
	SaveErr     error
	LoadErr     error
	ClearErr    error
	LoadCorrupt bool

	mu     sync.Mutex
	user   *identity.User
	saves  int
	clears int
}

// NewMemorySessionCache creates an empty MemorySessionCache.
func NewMemorySessionCache() *MemorySessionCache {
	return &MemorySessionCache{}
}

// Seed installs a record directly, bypassing error injection.
func (c *MemorySessionCache) Seed(user *identity.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = user
}

// Stored returns the currently persisted record, nil when empty.
func (c *MemorySessionCache) Stored() *identity.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// Saves reports how many times Save succeeded.
func (c *MemorySessionCache) Saves() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves
}

// Clears reports how many times Clear was invoked.
func (c *MemorySessionCache) Clears() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clears
}

func (c *MemorySessionCache) Save(ctx context.Context, user *identity.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	if c.SaveErr != nil {
		return c.SaveErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = user.Clone()
	c.saves++
	return nil
}

func (c *MemorySessionCache) Load(ctx context.Context) (*identity.User, error) {
	if c.LoadErr != nil {
		return nil, c.LoadErr
	}
	if c.LoadCorrupt {
		return nil, errors.New("decode persisted user: unexpected end of JSON input")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil, ports.ErrNoSession
	}
	return c.user.Clone(), nil
}

func (c *MemorySessionCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.clears++
	c.mu.Unlock()
	if c.ClearErr != nil {
		return c.ClearErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
	return nil
}
