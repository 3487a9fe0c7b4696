package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/openfeed/feedctl/internal/domain/identity"
	apperrors "github.com/openfeed/feedctl/internal/errors"
	"github.com/openfeed/feedctl/internal/observability/statsd"
	"github.com/openfeed/feedctl/internal/ports"
)

// IdentityHolder is the contract the session store depends on. It is the
// only coupling between the two stores: the session store reaches identity
// through this interface, never through a shared global.
type IdentityHolder interface {
	Current() *identity.User
	SetUser(*identity.User)
	ClearUser()
	FetchOwnProfile(ctx context.Context) (*identity.User, error)
}

// SessionStoreOptions groups dependencies for SessionStore.
type SessionStoreOptions struct {
	Identity IdentityHolder
	API      ports.AccountsAPI
	Cache    ports.SessionCache
	Metrics  statsd.Sink
	Logger   *slog.Logger
}

// SessionStore owns the authentication state: the authenticated flag,
// loading/error flags, and the auth-prompt modal flag. It wraps every
// identity-changing network operation and is the single writer of the
// persisted session record.
//
// Within one operation the in-memory transition and the cache write are
// ordered: the cache is written only after a successful server response is
// fully decoded. The verification path is coalesced so overlapping
// restore/verify callers share one network call. Overlapping Login/Register
// calls are not serialized; the last response to resolve wins.
type SessionStore struct {
	identity IdentityHolder
	api      ports.AccountsAPI
	cache    ports.SessionCache
	metrics  statsd.Sink
	logger   *slog.Logger

	verify singleflight.Group

	mu            sync.RWMutex
	authenticated bool
	pending       int
	lastErr       error
	showAuthModal bool
}

// NewSessionStore constructs a SessionStore.
func NewSessionStore(opts SessionStoreOptions) *SessionStore {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{
		identity: opts.Identity,
		api:      opts.API,
		cache:    opts.Cache,
		metrics:  opts.Metrics,
		logger:   logger,
	}
}

// Authenticated reports whether the session currently claims an
// authenticated user.
func (s *SessionStore) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Loading reports whether any session operation is in flight.
func (s *SessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending > 0
}

// LastError returns the most recently recorded operation error, nil after a
// successful login/register/profile fetch.
func (s *SessionStore) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// CurrentUser returns the identity store's held user.
func (s *SessionStore) CurrentUser() *identity.User {
	return s.identity.Current()
}

// ShowAuthModal reports the auth-prompt modal flag.
func (s *SessionStore) ShowAuthModal() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showAuthModal
}

// SetShowAuthModal sets the auth-prompt modal flag. Successful registration
// clears it as a side effect.
func (s *SessionStore) SetShowAuthModal(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showAuthModal = show
}

// CanDeleteAccounts reports whether the current user's role permits account
// deletion. Recomputed on every call; the held user may change at any time.
func (s *SessionStore) CanDeleteAccounts() bool {
	u := s.identity.Current()
	return u != nil && u.Role.Elevated()
}

// Hydrate seeds in-memory authenticated state without touching the cache or
// the network. Bootstrap uses it when the persisted record was already read
// at construction time.
func (s *SessionStore) Hydrate(user *identity.User) {
	if user == nil {
		return
	}
	s.identity.SetUser(user)
	s.mu.Lock()
	s.authenticated = true
	s.mu.Unlock()
}

// Login authenticates with email/password. On success the returned user is
// held, authenticated state is set, and the session record is persisted. On
// failure the prior state is kept, the error is recorded, and the failure is
// returned to the caller.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	start := time.Now()
	s.beginOp(true)
	defer s.endOp()

	user, err := s.api.Login(ctx, ports.Credentials{Email: email, Password: password})
	if err != nil {
		s.recordError(err)
		s.count("session.login", "failure")
		return err
	}

	s.setAuth(ctx, user)
	s.count("session.login", "success")
	s.timing("session.login", start)
	return nil
}

// Register creates an account. Identical shape to Login, plus clearing the
// auth-prompt modal flag on success.
func (s *SessionStore) Register(ctx context.Context, form ports.RegistrationForm) error {
	start := time.Now()
	s.beginOp(true)
	defer s.endOp()

	user, err := s.api.Register(ctx, form)
	if err != nil {
		s.recordError(err)
		s.count("session.register", "failure")
		return err
	}

	s.setAuth(ctx, user)
	s.SetShowAuthModal(false)
	s.count("session.register", "success")
	s.timing("session.register", start)
	return nil
}

// FetchProfile is the verification path: it re-reads the caller's own
// profile. Success re-seeds the identity store, marks the session
// authenticated, and persists. Any failure, network included, demotes the
// session to anonymous and erases the persisted record; a failed
// verification is never retried transparently.
func (s *SessionStore) FetchProfile(ctx context.Context) error {
	start := time.Now()
	s.beginOp(true)
	defer s.endOp()

	user, err := s.identity.FetchOwnProfile(ctx)
	if err != nil {
		verr := apperrors.Wrap(err, apperrors.ErrCodeVerification, apperrors.UserMessage(err))
		s.recordError(verr)
		s.clearAuth(ctx)
		s.count("session.verify", "failure")
		return verr
	}

	s.setAuth(ctx, user)
	s.count("session.verify", "success")
	s.timing("session.verify", start)
	return nil
}

// Logout notifies the server best-effort and unconditionally clears
// in-memory and persisted state. It never fails from the caller's
// perspective.
func (s *SessionStore) Logout(ctx context.Context) {
	s.beginOp(false)
	defer s.endOp()

	if err := s.api.Logout(ctx); err != nil {
		s.logger.Debug("logout request failed, clearing local state anyway", "error", err)
	}
	s.clearAuth(ctx)
	s.count("session.logout", "success")
}

// InitializeAuth reconciles state once per page session. An in-memory
// authenticated user is re-verified against the server (coalesced across
// concurrent callers); otherwise a persisted record, when present, is
// restored optimistically without a network call. With neither, the session
// stays anonymous and no request is issued.
//
// A non-nil return reports a failed verification; state has already settled
// to anonymous with the persisted record erased.
func (s *SessionStore) InitializeAuth(ctx context.Context) error {
	if s.Authenticated() && s.identity.Current() != nil {
		_, err, _ := s.verify.Do("verify", func() (any, error) {
			return nil, s.FetchProfile(ctx)
		})
		return err
	}

	user, err := s.cache.Load(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrNoSession) {
			return nil
		}
		// Corrupt record: drop it rather than restoring garbage.
		s.logger.Warn("persisted session unreadable, clearing", "error", err)
		if clearErr := s.cache.Clear(ctx); clearErr != nil {
			s.logger.Warn("clear persisted session failed", "error", clearErr)
		}
		return nil
	}

	s.Hydrate(user)
	s.count("session.restore", "optimistic")
	return nil
}

// setAuth installs the user, marks the session authenticated, and persists
// the session record. Memory first, then cache, so readers never observe a
// persisted record ahead of in-memory state.
func (s *SessionStore) setAuth(ctx context.Context, user *identity.User) {
	s.identity.SetUser(user)

	s.mu.Lock()
	s.authenticated = true
	s.lastErr = nil
	s.mu.Unlock()

	// The cache is advisory; a failed write only costs the next restore.
	if err := s.cache.Save(ctx, user); err != nil {
		s.logger.Warn("persist session failed", "error", err)
	}
}

// clearAuth drops the user, marks the session anonymous, and erases the
// persisted record.
func (s *SessionStore) clearAuth(ctx context.Context) {
	s.identity.ClearUser()

	s.mu.Lock()
	s.authenticated = false
	s.mu.Unlock()

	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn("clear persisted session failed", "error", err)
	}
}

func (s *SessionStore) beginOp(clearErr bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending++
	if clearErr {
		s.lastErr = nil
	}
}

func (s *SessionStore) endOp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending--
}

func (s *SessionStore) recordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
}

func (s *SessionStore) count(name, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.Count(name, 1, map[string]string{"outcome": outcome})
}

func (s *SessionStore) timing(name string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.Timing(name, time.Since(start), nil)
}
