// Package bootstrap wires configuration, adapters, and stores into a running
// application. All dependency injection happens here; nothing below this
// package reaches for globals.
package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/openfeed/feedctl/config"
	"github.com/openfeed/feedctl/internal/adapters/filestore"
	"github.com/openfeed/feedctl/internal/adapters/memstore"
	"github.com/openfeed/feedctl/internal/adapters/redisstore"
	"github.com/openfeed/feedctl/internal/adapters/restapi"
	"github.com/openfeed/feedctl/internal/observability/statsd"
	"github.com/openfeed/feedctl/internal/ports"
	"github.com/openfeed/feedctl/internal/service"
)

// App is the wired application: stores ready to use plus the resources that
// need closing on shutdown.
type App struct {
	Config   config.AppConfig
	Logger   *slog.Logger
	Identity *service.IdentityStore
	Session  *service.SessionStore
	Metrics  *statsd.Client

	redisClient *redis.Client
}

// NewApp builds the full dependency graph from configuration.
func NewApp(cfg config.AppConfig, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	api, err := restapi.NewClient(restapi.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create API client: %w", err)
	}

	metrics, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Observability.Metrics.IsEnabled(),
		Address: cfg.Observability.Metrics.StatsdAddress,
		Prefix:  cfg.Observability.Metrics.StatsdPrefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create metrics client: %w", err)
	}

	app := &App{Config: cfg, Logger: logger, Metrics: metrics}

	cache, err := app.buildCache(cfg.Cache, logger)
	if err != nil {
		return nil, err
	}

	app.Identity = service.NewIdentityStore(service.IdentityStoreOptions{
		API:    api,
		Logger: logger,
	})
	app.Session = service.NewSessionStore(service.SessionStoreOptions{
		Identity: app.Identity,
		API:      api,
		Cache:    cache,
		Metrics:  metrics,
		Logger:   logger,
	})
	return app, nil
}

// NavStore builds a navigation store over the session for the given route.
func (a *App) NavStore(route string) *service.NavStore {
	return service.NewNavStore(a.Session, ports.StaticRoute(route))
}

// Close releases held connections.
func (a *App) Close() error {
	var firstErr error
	if a.Metrics != nil {
		if err := a.Metrics.Close(); err != nil {
			firstErr = err
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (a *App) buildCache(cfg config.CacheConfig, logger *slog.Logger) (ports.SessionCache, error) {
	switch cfg.Backend {
	case config.CacheBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		a.redisClient = client
		return redisstore.New(client, cfg.TTL), nil
	case config.CacheBackendMemory:
		return memstore.New(), nil
	case config.CacheBackendFile:
		return filestore.New(cfg.StateDir, logger), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
