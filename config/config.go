package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Remote accounts API configuration
//   - cache.go: Session cache configuration
//   - observability.go: Metrics configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging).
	// Set DEV=true or FEED_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Remote accounts API configuration
	API APIConfig `envPrefix:"FEED_API_"`

	// Session cache configuration
	Cache CacheConfig `envPrefix:"FEED_CACHE_"`

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Cache.Sanitize()
	c.Observability.Sanitize()
	c.detectDevMode()
}

// detectDevMode checks both DEV and FEED_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		feedEnv := strings.ToLower(os.Getenv("FEED_ENV"))
		c.IsDev = feedEnv == "development" || feedEnv == "dev"
	}
}
