package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfeed/feedctl/internal/domain/content"
	"github.com/openfeed/feedctl/internal/domain/identity"
	apperrors "github.com/openfeed/feedctl/internal/errors"
	"github.com/openfeed/feedctl/internal/mocks/accounts"
	"github.com/openfeed/feedctl/internal/ports"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func TestIdentityStore_HoldsSingleUser(t *testing.T) {
	store := NewIdentityStore(IdentityStoreOptions{API: accounts.NewStubAccountsAPI()})

	assert.Nil(t, store.Current())

	user := &identity.User{ID: 1, Username: "ada"}
	store.SetUser(user)
	assert.Same(t, user, store.Current())

	store.ClearUser()
	assert.Nil(t, store.Current())
}

func TestIdentityStore_FetchOwnProfileOverwritesOnSuccess(t *testing.T) {
	api := accounts.NewStubAccountsAPI()
	api.FetchOwnProfileFunc = func(ctx context.Context) (*identity.User, error) {
		return &identity.User{ID: 2, Username: "fresh"}, nil
	}
	store := NewIdentityStore(IdentityStoreOptions{API: api})
	store.SetUser(&identity.User{ID: 1, Username: "stale"})

	user, err := store.FetchOwnProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", user.Username)
	assert.Same(t, user, store.Current())
}

func TestIdentityStore_FetchOwnProfileFailureLeavesUser(t *testing.T) {
	api := accounts.NewStubAccountsAPI()
	api.FetchOwnProfileFunc = func(ctx context.Context) (*identity.User, error) {
		return nil, apperrors.Authentication("session expired")
	}
	store := NewIdentityStore(IdentityStoreOptions{API: api})
	held := &identity.User{ID: 1, Username: "held"}
	store.SetUser(held)

	_, err := store.FetchOwnProfile(context.Background())
	require.Error(t, err)
	assert.Same(t, held, store.Current())
}

func TestIdentityStore_FetchProfileByNameDoesNotMutate(t *testing.T) {
	api := accounts.NewStubAccountsAPI()
	api.FetchProfileByNameFunc = func(ctx context.Context, username string) (*identity.User, error) {
		return &identity.User{ID: 42, Username: username}, nil
	}
	store := NewIdentityStore(IdentityStoreOptions{API: api})
	held := &identity.User{ID: 1, Username: "me"}
	store.SetUser(held)

	other, err := store.FetchProfileByName(context.Background(), "author")
	require.NoError(t, err)
	assert.Equal(t, "author", other.Username)
	assert.Same(t, held, store.Current())
}

func TestIdentityStore_UpdateProfileDoesNotMutate(t *testing.T) {
	api := accounts.NewStubAccountsAPI()
	api.UpdateProfileFunc = func(ctx context.Context, patch ports.ProfilePatch) (json.RawMessage, error) {
		require.NotNil(t, patch.Email)
		return json.RawMessage(`{"email":"new@example.com"}`), nil
	}
	store := NewIdentityStore(IdentityStoreOptions{API: api})
	held := &identity.User{ID: 1, Email: "old@example.com"}
	store.SetUser(held)

	email := "new@example.com"
	echo, err := store.UpdateProfile(context.Background(), ports.ProfilePatch{Email: &email})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"new@example.com"}`, string(echo))
	assert.Equal(t, "old@example.com", store.Current().Email)
}

func TestIdentityStore_ContentDelegation(t *testing.T) {
	api := accounts.NewStubAccountsAPI()
	api.ListPostsForUserFunc = func(ctx context.Context, userID int64) ([]content.Post, error) {
		assert.Equal(t, int64(7), userID)
		return []content.Post{{ID: 10, Title: "first", AuthorID: 7}}, nil
	}
	store := NewIdentityStore(IdentityStoreOptions{API: api})

	posts, err := store.ListPostsForUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "first", posts[0].Title)

	require.NoError(t, store.DeletePost(context.Background(), 10))
	assert.Equal(t, 1, api.Calls("DeletePost"))
}
