package cache

import (
	"context"
	"log/slog"

	"store/config"
	"store/internal/domain/lifecycle"
	"store/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// KeyValueCacheParams holds dependencies for the key/value cache, injected by Fx
type KeyValueCacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueCache creates the key/value cache selected by configuration
func NewKeyValueCache(params KeyValueCacheParams) (service.KeyValueCache, error) {
	cfg := params.Config.Cache
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == config.CacheProviderMemory {
		logger.Info("Using in-memory key/value cache")

		return NewMemoryCache(), nil
	}

	if cfg.Provider != config.CacheProviderRedis {
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}

	if cfg.Redis.Addr == "" {
		return nil, errors.New("redis address is required for redis provider")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	logger.Info("Using redis key/value cache",
		slog.String("addr", cfg.Redis.Addr),
		slog.String("prefix", cfg.Redis.Prefix),
	)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Closing redis client")

			return client.Close()
		},
	})

	return NewRedisCache(client, cfg.Redis.Prefix), nil
}
