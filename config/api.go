package config

import (
	"strings"
	"time"
)

// APIConfig controls how the client talks to the platform's accounts API.
type APIConfig struct {
	// BaseURL is the root of the platform API, e.g. https://feed.example.com.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds each request round trip.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`

	// UserAgent is sent on every request.
	UserAgent string `env:"USER_AGENT" envDefault:"feedctl"`
}

// Sanitize normalises API configuration values and enforces safe defaults.
func (c *APIConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if c.UserAgent = strings.TrimSpace(c.UserAgent); c.UserAgent == "" {
		c.UserAgent = "feedctl"
	}
}
