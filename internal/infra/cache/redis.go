package cache

import (
	"context"
	"encoding/json"

	"store/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const clearScanBatch = 500

// redisCache stores JSON-encoded values in Redis under a fixed key prefix.
// Entries are written without expiry.
type redisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache wraps an existing client. Every key is namespaced with prefix.
func NewRedisCache(client *redis.Client, prefix string) service.KeyValueCache {
	return &redisCache{
		client: client,
		prefix: prefix,
	}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		observeLookup(cacheLabelKeyValue, false)

		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to get %s from redis", key)
	}
	observeLookup(cacheLabelKeyValue, true)

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(err, "failed to decode cached value for %s", key)
	}

	return true, nil
}

func (c *redisCache) Put(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode value for %s", key)
	}

	if err := c.client.Set(ctx, c.prefix+key, raw, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set %s in redis", key)
	}

	return nil
}

func (c *redisCache) ContainsKey(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+key).Result()
	if err != nil {
		return false, errors.Wrapf(err, "failed to check %s in redis", key)
	}

	return n > 0, nil
}

func (c *redisCache) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, c.prefix+key)
	}

	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		return errors.Wrap(err, "failed to delete keys from redis")
	}

	return nil
}

// Clear removes only the keys under this cache's prefix.
func (c *redisCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", clearScanBatch).Iterator()

	batch := make([]string, 0, clearScanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == clearScanBatch {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return errors.Wrap(err, "failed to clear redis cache")
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to scan redis cache")
	}

	if len(batch) > 0 {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return errors.Wrap(err, "failed to clear redis cache")
		}
	}

	return nil
}
