package cache

import (
	"testing"

	"store/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewKeyValueCache_DefaultsToMemory(t *testing.T) {
	cfg := &config.Config{}

	c, err := NewKeyValueCache(KeyValueCacheParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &memoryCache{}, c)
}

func TestNewKeyValueCache_RedisRequiresAddr(t *testing.T) {
	cfg := &config.Config{Cache: &config.CacheConfig{Provider: config.CacheProviderRedis}}

	_, err := NewKeyValueCache(KeyValueCacheParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: newDiscardLogger(),
	})
	require.Error(t, err)
}

func TestNewKeyValueCache_UnknownProvider(t *testing.T) {
	cfg := &config.Config{Cache: &config.CacheConfig{Provider: "memcached"}}

	_, err := NewKeyValueCache(KeyValueCacheParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: newDiscardLogger(),
	})
	require.ErrorContains(t, err, "unknown cache provider")
}

func TestNewKeyValueCache_Redis(t *testing.T) {
	cfg := &config.Config{Cache: &config.CacheConfig{
		Provider: config.CacheProviderRedis,
		Redis:    config.RedisConfig{Addr: "localhost:6379", Prefix: "test:"},
	}}

	c, err := NewKeyValueCache(KeyValueCacheParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)
	require.IsType(t, &redisCache{}, c)
	assert.Equal(t, "test:", c.(*redisCache).prefix)
}
