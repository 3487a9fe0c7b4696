package ports

// Package ports defines interfaces (hexagonal ports) for the session layer's
// collaborators. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"
	"encoding/json"

	"github.com/openfeed/feedctl/internal/domain/content"
	"github.com/openfeed/feedctl/internal/domain/identity"
)

// Credentials carries a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationForm carries a registration request.
type RegistrationForm struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// ProfilePatch carries a partial profile update. Nil fields are omitted
// from the request body.
type ProfilePatch struct {
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// PasswordChange carries a password change request.
type PasswordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// AccountsAPI is the remote collaborator: the platform's REST endpoints for
// accounts and the two scoped content operations. Credentialed calls rely on
// the adapter carrying the server's session cookie between requests.
type AccountsAPI interface {
	// Login authenticates with email/password and returns the user record.
	Login(ctx context.Context, creds Credentials) (*identity.User, error)

	// Register creates an account and returns the user record.
	Register(ctx context.Context, form RegistrationForm) (*identity.User, error)

	// Logout notifies the server. The server response is advisory; callers
	// treat failures as non-fatal.
	Logout(ctx context.Context) error

	// FetchOwnProfile reads the caller's own profile (credentialed).
	FetchOwnProfile(ctx context.Context) (*identity.User, error)

	// FetchProfileByName reads another account's public profile
	// (uncredentialed).
	FetchProfileByName(ctx context.Context, username string) (*identity.User, error)

	// UpdateProfile writes the given fields and returns the server's echo of
	// the updated fields.
	UpdateProfile(ctx context.Context, patch ProfilePatch) (json.RawMessage, error)

	// ChangePassword performs a credentialed password change and returns the
	// server's confirmation payload.
	ChangePassword(ctx context.Context, change PasswordChange) (json.RawMessage, error)

	// DeleteOwnAccount deletes the caller's account.
	DeleteOwnAccount(ctx context.Context) (json.RawMessage, error)

	// DeleteAccountByID deletes another account. Authorization is enforced
	// server-side; the client only surfaces the rejection.
	DeleteAccountByID(ctx context.Context, id int64) (json.RawMessage, error)

	// ListPostsForUser returns the user's posts. Zero results is an empty
	// slice, not an error.
	ListPostsForUser(ctx context.Context, userID int64) ([]content.Post, error)

	// DeletePost deletes a post by id. Success carries no payload.
	DeletePost(ctx context.Context, postID int64) error
}
