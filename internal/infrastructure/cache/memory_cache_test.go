package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", "v1"))
	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v1", got)

	require.NoError(t, c.Set(ctx, "k", "v2"))
	got, _ = c.Get(ctx, "k")
	assert.Equal(t, "v2", got)
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%10)
			_ = c.Set(ctx, key, "value")
			c.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	got, ok := c.Get(ctx, "key-0")
	require.True(t, ok)
	assert.Equal(t, "value", got)
}
