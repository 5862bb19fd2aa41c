// Package cache provides the lookup caches that sit in front of the repositories.
package cache

import (
	"context"
	"encoding/json"
	"sync"

	"store/internal/domain/service"

	"github.com/pkg/errors"
)

// memoryCache keeps JSON-encoded values in process memory. It never evicts.
type memoryCache struct {
	entries sync.Map // string -> []byte
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() service.KeyValueCache {
	return &memoryCache{}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.entries.Load(key)
	observeLookup(cacheLabelKeyValue, ok)
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw.([]byte), dest); err != nil {
		return false, errors.Wrapf(err, "failed to decode cached value for %s", key)
	}

	return true, nil
}

func (c *memoryCache) Put(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode value for %s", key)
	}

	c.entries.Store(key, raw)

	return nil
}

func (c *memoryCache) ContainsKey(_ context.Context, key string) (bool, error) {
	_, ok := c.entries.Load(key)

	return ok, nil
}

func (c *memoryCache) Remove(_ context.Context, keys ...string) error {
	for _, key := range keys {
		c.entries.Delete(key)
	}

	return nil
}

func (c *memoryCache) Clear(_ context.Context) error {
	c.entries.Clear()

	return nil
}
