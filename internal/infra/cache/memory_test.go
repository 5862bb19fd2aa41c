package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"store/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_PutGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	accounts := []*entity.Account{
		{ID: 1, Nickname: "ann", Email: "ann@example.com"},
		{ID: 2, Nickname: "bob", Email: "bob@example.com"},
	}
	require.NoError(t, c.Put(ctx, "all_accounts", accounts))

	var got []*entity.Account
	found, err := c.Get(ctx, "all_accounts", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, accounts, got)

	ok, err := c.ContainsKey(ctx, "all_accounts")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryCache_GetMissing(t *testing.T) {
	c := NewMemoryCache()

	var got entity.Account
	found, err := c.Get(context.Background(), "account_404", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, got)
}

func TestMemoryCache_GetWrongShape(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	require.NoError(t, c.Put(ctx, "order_1", []int{1, 2}))

	var got entity.Order
	found, err := c.Get(ctx, "order_1", &got)
	require.Error(t, err)
	assert.False(t, found)
}

func TestMemoryCache_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, c.Put(ctx, key, key))
	}

	require.NoError(t, c.Remove(ctx, "a", "missing"))
	ok, _ := c.ContainsKey(ctx, "a")
	assert.False(t, ok)
	ok, _ = c.ContainsKey(ctx, "b")
	assert.True(t, ok)

	require.NoError(t, c.Clear(ctx))
	for _, key := range []string{"b", "c"} {
		ok, _ = c.ContainsKey(ctx, key)
		assert.False(t, ok, key)
	}
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("account_%d", i%4)
			_ = c.Put(ctx, key, entity.Account{ID: int64(i % 4)})
			var got entity.Account
			_, _ = c.Get(ctx, key, &got)
			_ = c.Remove(ctx, key)
		}()
	}
	wg.Wait()
}
