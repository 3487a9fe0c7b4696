package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Session cache backends.
const (
	CacheBackendFile   = "file"
	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"
)

// CacheConfig controls where the session record persists between runs.
type CacheConfig struct {
	// Backend selects the session cache implementation: file, redis, or
	// memory. Memory does not survive the process and exists for tests and
	// throwaway usage.
	Backend string `env:"BACKEND" envDefault:"file"`

	// StateDir is the directory for the file backend. Defaults to
	// $XDG_STATE_HOME/feedctl or ~/.local/state/feedctl.
	StateDir string `env:"STATE_DIR"`

	// TTL expires the persisted record. Zero means no expiry. Only the
	// redis backend enforces it.
	TTL time.Duration `env:"TTL" envDefault:"0"`

	// Redis connection settings for the redis backend.
	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`
}

// Sanitize normalises cache configuration values and enforces safe defaults.
func (c *CacheConfig) Sanitize() {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case CacheBackendFile, CacheBackendRedis, CacheBackendMemory:
	default:
		c.Backend = CacheBackendFile
	}

	c.StateDir = strings.TrimSpace(c.StateDir)
	if c.StateDir == "" {
		c.StateDir = defaultStateDir()
	}

	if c.TTL < 0 {
		c.TTL = 0
	}

	c.RedisAddr = strings.TrimSpace(c.RedisAddr)
	if c.RedisAddr == "" {
		c.RedisAddr = "localhost:6379"
	}
	if c.RedisDB < 0 {
		c.RedisDB = 0
	}
}

func defaultStateDir() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); dir != "" {
		return filepath.Join(dir, "feedctl")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "feedctl")
	}
	return filepath.Join(home, ".local", "state", "feedctl")
}
