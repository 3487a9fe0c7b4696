package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/openfeed/feedctl/internal/errors"
	"github.com/openfeed/feedctl/internal/ports"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client, srv
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "not-a-url"})
	assert.Error(t, err)

	_, err = NewClient(Config{BaseURL: "://broken"})
	assert.Error(t, err)
}

func TestLogin_SuccessAndCookiePropagation(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		var creds ports.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@x.com", creds.Email)
		assert.Equal(t, "p", creds.Password)

		http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "s3cret", Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":1,"username":"a","role":"US"}}`))
	})
	mux.HandleFunc("GET /api/accounts/profile/", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("sessionid")
		if err != nil || cookie.Value != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"not authenticated"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"username":"a","role":"US"}`))
	})

	client, _ := newTestClient(t, mux)
	ctx := context.Background()

	user, err := client.Login(ctx, ports.Credentials{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "a", user.Username)

	// The session cookie from login must ride along on credentialed calls.
	fetched, err := client.FetchOwnProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", fetched.Username)
}

func TestLogin_RejectedWithServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/accounts/login/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"bad credentials"}`))
	})

	client, _ := newTestClient(t, mux)

	user, err := client.Login(context.Background(), ports.Credentials{Email: "a@x.com", Password: "nope"})
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, apperrors.IsAuthentication(err))
	assert.Equal(t, "bad credentials", apperrors.UserMessage(err))
}

func TestLogin_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close() // nothing listens anymore

	client, err := NewClient(Config{BaseURL: base, Timeout: time.Second})
	require.NoError(t, err)

	_, err = client.Login(context.Background(), ports.Credentials{Email: "a@x.com", Password: "p"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNetwork(err))
	assert.Equal(t, "network error", apperrors.UserMessage(err))
}

func TestRegister_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/accounts/register/", func(w http.ResponseWriter, r *http.Request) {
		var form ports.RegistrationForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		assert.Equal(t, "newbie", form.Username)
		assert.Equal(t, form.Password, form.PasswordConfirm)
		_, _ = w.Write([]byte(`{"user":{"id":2,"username":"newbie","role":"US"}}`))
	})

	client, _ := newTestClient(t, mux)

	user, err := client.Register(context.Background(), ports.RegistrationForm{
		Username:        "newbie",
		Email:           "n@x.com",
		Password:        "pw",
		PasswordConfirm: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
}

func TestFetchProfileByName_NoCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/accounts/login/", func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "s3cret", Path: "/"})
		_, _ = w.Write([]byte(`{"user":{"id":1,"username":"a","role":"US"}}`))
	})
	mux.HandleFunc("GET /api/accounts/profile/{username}/", func(w http.ResponseWriter, r *http.Request) {
		// Public profile reads must not carry the session cookie.
		_, err := r.Cookie("sessionid")
		assert.Error(t, err)
		_, _ = w.Write([]byte(`{"id":3,"username":"` + r.PathValue("username") + `","role":"MO"}`))
	})

	client, _ := newTestClient(t, mux)
	ctx := context.Background()

	_, err := client.Login(ctx, ports.Credentials{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	author, err := client.FetchProfileByName(ctx, "someone")
	require.NoError(t, err)
	assert.Equal(t, "someone", author.Username)
}

func TestFetchProfileByName_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/accounts/profile/{username}/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"no such user"}`))
	})

	client, _ := newTestClient(t, mux)

	_, err := client.FetchProfileByName(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "no such user", apperrors.UserMessage(err))
}

func TestFetchProfileByName_EmptyUsername(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler())

	_, err := client.FetchProfileByName(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateProfile_ReturnsEcho(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/accounts/profile/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "newname", body["username"])
		assert.NotContains(t, body, "email") // nil fields omitted
		_, _ = w.Write([]byte(`{"username":"newname"}`))
	})

	client, _ := newTestClient(t, mux)

	username := "newname"
	echo, err := client.UpdateProfile(context.Background(), ports.ProfilePatch{Username: &username})
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"newname"}`, string(echo))
}

func TestUpdateProfile_Rejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/accounts/profile/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"username taken"}`))
	})

	client, _ := newTestClient(t, mux)

	username := "dup"
	_, err := client.UpdateProfile(context.Background(), ports.ProfilePatch{Username: &username})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeProfileUpdate, apperrors.GetCode(err))
	assert.Equal(t, "username taken", apperrors.UserMessage(err))
}

func TestChangePassword_UndecodableBodyFailsEvenOn200(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/accounts/change-password/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	})

	client, _ := newTestClient(t, mux)

	_, err := client.ChangePassword(context.Background(), ports.PasswordChange{OldPassword: "a", NewPassword: "b"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodePasswordChange, apperrors.GetCode(err))
}

func TestChangePassword_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/accounts/change-password/", func(w http.ResponseWriter, r *http.Request) {
		var change ports.PasswordChange
		require.NoError(t, json.NewDecoder(r.Body).Decode(&change))
		assert.Equal(t, "old", change.OldPassword)
		assert.Equal(t, "new", change.NewPassword)
		_, _ = w.Write([]byte(`{"detail":"password changed"}`))
	})

	client, _ := newTestClient(t, mux)

	confirmation, err := client.ChangePassword(context.Background(), ports.PasswordChange{OldPassword: "old", NewPassword: "new"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"detail":"password changed"}`, string(confirmation))
}

func TestDeleteAccountByID_ForbiddenIsAuthorization(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/accounts/moderator/delete-user/{id}/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"moderator role required"}`))
	})

	client, _ := newTestClient(t, mux)

	_, err := client.DeleteAccountByID(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, apperrors.IsAuthorization(err))
	assert.Equal(t, "moderator role required", apperrors.UserMessage(err))
}

func TestListPostsForUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/blogs/user/id/7/blogs/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results":[
			{"id":10,"title":"first","description":"d","is_private":false,"author":7,"author_username":"ada"},
			{"id":11,"title":"second","description":"d2","is_private":true,"author":7,"author_username":"ada"}
		]}`))
	})
	mux.HandleFunc("GET /api/blogs/user/id/8/blogs/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`)) // server omits results when empty
	})

	client, _ := newTestClient(t, mux)
	ctx := context.Background()

	posts, err := client.ListPostsForUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "first", posts[0].Title)
	assert.Equal(t, "ada", posts[1].AuthorUsername)
	assert.True(t, posts[1].IsPrivate)

	empty, err := client.ListPostsForUser(ctx, 8)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestDeletePost(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/blogs/feed/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["blog_id"] == 10 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"not your post"}`))
	})

	client, _ := newTestClient(t, mux)
	ctx := context.Background()

	require.NoError(t, client.DeletePost(ctx, 10))

	err := client.DeletePost(ctx, 11)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeContentDelete, apperrors.GetCode(err))
	assert.Equal(t, "not your post", apperrors.UserMessage(err))
}

func TestLogout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/accounts/logout/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	client, _ := newTestClient(t, mux)
	assert.NoError(t, client.Logout(context.Background()))
}
