package restapi

// Package restapi implements the AccountsAPI port over the platform's
// JSON-over-HTTP endpoints. Credentialed calls share a cookie jar so the
// server's session cookie set at login rides along on later requests;
// public-profile reads go through a bare client with no jar.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/openfeed/feedctl/internal/domain/content"
	"github.com/openfeed/feedctl/internal/domain/identity"
	apperrors "github.com/openfeed/feedctl/internal/errors"
	"github.com/openfeed/feedctl/internal/ports"
)

const defaultTimeout = 30 * time.Second

// Config describes how to reach the remote API.
type Config struct {
	// BaseURL is the API origin, e.g. "https://feed.example.com".
	BaseURL string
	// Timeout bounds each request. Zero means the 30s default.
	Timeout time.Duration
	// UserAgent is sent on every request when non-empty.
	UserAgent string
	// Logger receives request-level debug logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client talks to the accounts and content endpoints.
type Client struct {
	base         *url.URL
	credentialed *http.Client
	public       *http.Client
	userAgent    string
	logger       *slog.Logger
}

var _ ports.AccountsAPI = (*Client)(nil)

// NewClient constructs a Client with a fresh cookie jar.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", cfg.BaseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		base:         base,
		credentialed: &http.Client{Jar: jar, Timeout: timeout},
		public:       &http.Client{Timeout: timeout},
		userAgent:    cfg.UserAgent,
		logger:       logger,
	}, nil
}

// errorBody is the failure shape shared by all endpoints.
type errorBody struct {
	Error string `json:"error"`
}

// exchange performs one round trip and returns the status plus raw body.
// Transport failures come back already mapped into the error taxonomy.
func (c *Client) exchange(ctx context.Context, client *http.Client, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, reader)
	if err != nil {
		return 0, nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "error", err)
		return 0, nil, apperrors.MapTransportError(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, apperrors.MapTransportError(err)
	}

	c.logger.Debug("request completed", "method", method, "path", path, "status", resp.StatusCode)
	return resp.StatusCode, payload, nil
}

// serverMessage extracts the {error} field from a failure body, if any.
func serverMessage(payload []byte) string {
	var eb errorBody
	if err := json.Unmarshal(payload, &eb); err != nil {
		return ""
	}
	return eb.Error
}

func ok(status int) bool { return status >= 200 && status < 300 }

// userEnvelope wraps login/register success bodies.
type userEnvelope struct {
	User *identity.User `json:"user"`
}

// Login authenticates with email/password.
func (c *Client) Login(ctx context.Context, creds ports.Credentials) (*identity.User, error) {
	status, payload, err := c.exchange(ctx, c.credentialed, http.MethodPost, "/api/accounts/login/", creds)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, apperrors.MapStatusError(apperrors.ErrCodeAuthentication, status, serverMessage(payload))
	}

	var env userEnvelope
	if err := json.Unmarshal(payload, &env); err != nil || env.User == nil {
		return nil, apperrors.MapDecodeError(apperrors.ErrCodeAuthentication, fmt.Errorf("decode login response: %w", err))
	}
	return env.User, nil
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, form ports.RegistrationForm) (*identity.User, error) {
	status, payload, err := c.exchange(ctx, c.credentialed, http.MethodPost, "/api/accounts/register/", form)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, apperrors.MapStatusError(apperrors.ErrCodeAuthentication, status, serverMessage(payload))
	}

	var env userEnvelope
	if err := json.Unmarshal(payload, &env); err != nil || env.User == nil {
		return nil, apperrors.MapDecodeError(apperrors.ErrCodeAuthentication, fmt.Errorf("decode register response: %w", err))
	}
	return env.User, nil
}

// Logout notifies the server the session is over.
func (c *Client) Logout(ctx context.Context) error {
	status, payload, err := c.exchange(ctx, c.credentialed, http.MethodPost, "/api/accounts/logout/", nil)
	if err != nil {
		return err
	}
	if !ok(status) {
		return apperrors.MapStatusError(apperrors.ErrCodeInternal, status, serverMessage(payload))
	}
	return nil
}

// FetchOwnProfile reads the caller's own profile.
func (c *Client) FetchOwnProfile(ctx context.Context) (*identity.User, error) {
	status, payload, err := c.exchange(ctx, c.credentialed, http.MethodGet, "/api/accounts/profile/", nil)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, apperrors.MapStatusError(apperrors.ErrCodeProfileFetch, status, serverMessage(payload))
	}

	var user identity.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, apperrors.MapDecodeError(apperrors.ErrCodeProfileFetch, err)
	}
	return &user, nil
}

// FetchProfileByName reads another account's public profile. No credentials
// are attached.
func (c *Client) FetchProfileByName(ctx context.Context, username string) (*identity.User, error) {
	if username == "" {
		return nil, apperrors.Validation("username is required")
	}

	path := "/api/accounts/profile/" + url.PathEscape(username) + "/"
	status, payload, err := c.exchange(ctx, c.public, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, apperrors.MapStatusError(apperrors.ErrCodeProfileFetch, status, serverMessage(payload))
	}

	var user identity.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, apperrors.MapDecodeError(apperrors.ErrCodeProfileFetch, err)
	}
	return &user, nil
}

// UpdateProfile writes the given fields and returns the server's echo.
func (c *Client) UpdateProfile(ctx context.Context, patch ports.ProfilePatch) (json.RawMessage, error) {
	status, payload, err := c.exchange(ctx, c.credentialed, http.MethodPut, "/api/accounts/profile/", patch)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, apperrors.MapStatusError(apperrors.ErrCodeProfileUpdate, status, serverMessage(payload))
	}
	return json.RawMessage(payload), nil
}

// ChangePassword performs a credentialed password change. An undecodable
// body is a failure even on a 2xx status.
func (c *Client) ChangePassword(ctx context.Context, change ports.PasswordChange) (json.RawMessage, error) {
	status, payload, err := c.exchange(ctx, c.credentialed, http.MethodPost, "/api/accounts/change-password/", change)
	if err != nil {
		return nil, err
	}

	var decoded json.RawMessage
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, apperrors.MapDecodeError(apperrors.ErrCodePasswordChange, err)
	}
	if !ok(status) {
		return nil, apperrors.MapStatusError(apperrors.ErrCodePasswordChange, status, serverMessage(payload))
	}
	return decoded, nil
}

// DeleteOwnAccount deletes the caller's account.
func (c *Client) DeleteOwnAccount(ctx context.Context) (json.RawMessage, error) {
	status, payload, err := c.exchange(ctx, c.credentialed, http.MethodPost, "/api/accounts/account/", nil)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, apperrors.MapStatusError(apperrors.ErrCodeAccountDeletion, status, serverMessage(payload))
	}
	return json.RawMessage(payload), nil
}

// DeleteAccountByID deletes another user's account (moderator/superuser
// endpoint; authorization is the server's call).
func (c *Client) DeleteAccountByID(ctx context.Context, id int64) (json.RawMessage, error) {
	path := fmt.Sprintf("/api/accounts/moderator/delete-user/%d/", id)
	status, payload, err := c.exchange(ctx, c.credentialed, http.MethodPost, path, nil)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, apperrors.MapStatusError(apperrors.ErrCodeAccountDeletion, status, serverMessage(payload))
	}
	return json.RawMessage(payload), nil
}

// postListEnvelope wraps post listings.
type postListEnvelope struct {
	Results []content.Post `json:"results"`
}

// ListPostsForUser returns the user's posts; zero results is an empty slice.
func (c *Client) ListPostsForUser(ctx context.Context, userID int64) ([]content.Post, error) {
	path := fmt.Sprintf("/api/blogs/user/id/%d/blogs/", userID)
	status, payload, err := c.exchange(ctx, c.credentialed, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, apperrors.MapStatusError(apperrors.ErrCodeContentFetch, status, serverMessage(payload))
	}

	var env postListEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, apperrors.MapDecodeError(apperrors.ErrCodeContentFetch, err)
	}
	if env.Results == nil {
		return []content.Post{}, nil
	}
	return env.Results, nil
}

// deletePostBody is the request body for DeletePost.
type deletePostBody struct {
	BlogID int64 `json:"blog_id"`
}

// DeletePost deletes a post by id.
func (c *Client) DeletePost(ctx context.Context, postID int64) error {
	status, payload, err := c.exchange(ctx, c.credentialed, http.MethodDelete, "/api/blogs/feed/", deletePostBody{BlogID: postID})
	if err != nil {
		return err
	}
	if !ok(status) {
		return apperrors.MapStatusError(apperrors.ErrCodeContentDelete, status, serverMessage(payload))
	}
	return nil
}
