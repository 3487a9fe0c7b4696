package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfeed/feedctl/internal/domain/identity"
	"github.com/openfeed/feedctl/internal/ports"
)

func TestStubAccountsAPI_DefaultsAndCallCounts(t *testing.T) {
	api := NewStubAccountsAPI()
	ctx := context.Background()

	user, err := api.Login(ctx, ports.Credentials{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "stubuser", user.Username)

	_, err = api.FetchOwnProfile(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, api.Calls("Login"))
	assert.Equal(t, 1, api.Calls("FetchOwnProfile"))
	assert.Equal(t, 0, api.Calls("Logout"))
}

func TestStubAccountsAPI_FuncOverride(t *testing.T) {
	api := NewStubAccountsAPI()
	api.LoginFunc = func(ctx context.Context, creds ports.Credentials) (*identity.User, error) {
		return nil, errors.New("scripted failure")
	}

	_, err := api.Login(context.Background(), ports.Credentials{})
	require.Error(t, err)
	assert.Equal(t, 1, api.Calls("Login"))
}

func TestMemorySessionCache_RoundTripAndInjection(t *testing.T) {
	cache := NewMemorySessionCache()
	ctx := context.Background()

	_, err := cache.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrNoSession)

	user := &identity.User{ID: 1, Username: "ada"}
	require.NoError(t, cache.Save(ctx, user))
	assert.Equal(t, 1, cache.Saves())

	loaded, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada", loaded.Username)

	// Stored copy is isolated from the caller's value.
	user.Username = "mutated"
	loaded2, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada", loaded2.Username)

	cache.LoadCorrupt = true
	_, err = cache.Load(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrNoSession)
	cache.LoadCorrupt = false

	require.NoError(t, cache.Clear(ctx))
	assert.Equal(t, 1, cache.Clears())
	_, err = cache.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrNoSession)
}
