package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfeed/feedctl/config"
)

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	cfg := config.AppConfig{}
	cfg.API.BaseURL = "http://localhost:8000"
	cfg.Cache.Backend = config.CacheBackendMemory
	cfg.Sanitize()
	return cfg
}

func TestNewApp_WiresStores(t *testing.T) {
	app, err := NewApp(testConfig(t), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	require.NotNil(t, app.Identity)
	require.NotNil(t, app.Session)
	assert.False(t, app.Session.Authenticated())

	nav := app.NavStore("/feed")
	require.NotNil(t, nav)
	assert.Len(t, nav.VisibleEntries(), 3)
}

func TestNewApp_RejectsRelativeBaseURL(t *testing.T) {
	cfg := testConfig(t)
	cfg.API.BaseURL = "not-a-url"

	_, err := NewApp(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create API client")
}

func TestNewApp_FileBackendUsesStateDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Backend = config.CacheBackendFile
	cfg.Cache.StateDir = t.TempDir()

	app, err := NewApp(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	// No persisted record yet; initialize settles anonymous without error.
	require.NoError(t, app.Session.InitializeAuth(context.Background()))
	assert.False(t, app.Session.Authenticated())
}

func TestLoadConfig_AppliesSanitize(t *testing.T) {
	t.Setenv("FEED_API_BASE_URL", "http://example.com/")
	t.Setenv("FEED_CACHE_BACKEND", "memory")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://example.com", cfg.API.BaseURL)
	assert.Equal(t, config.CacheBackendMemory, cfg.Cache.Backend)
}
