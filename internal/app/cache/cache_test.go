package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopCacheAlwaysMisses(t *testing.T) {
	c := NewNoopCache()
	ctx := context.Background()

	c.Set(ctx, "key", "value", time.Minute)
	value, ok := c.Get(ctx, "key")
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestRedisCacheTreatsErrorsAsMisses(t *testing.T) {
	// Nothing listens on this port; every operation fails and Get must
	// degrade to a miss instead of surfacing the error.
	c := NewRedisCache("127.0.0.1:1", "", 0)
	ctx := context.Background()

	c.Set(ctx, "key", "value", time.Minute)
	value, ok := c.Get(ctx, "key")
	assert.False(t, ok)
	assert.Empty(t, value)

	assert.Error(t, c.Ping(ctx))
}
