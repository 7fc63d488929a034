//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"lushquote/internal/infra/cache"
	"lushquote/tests/common/builder"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*cache.TemplateCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewTemplateCache(client, 5*time.Minute), mr
}

func TestTemplateCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	record := builder.NewTemplateBuilder().BuildPublicRecord()

	_, hit, err := c.Get(ctx, record.View.Slug)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, record.View.Slug, record))

	got, hit, err := c.Get(ctx, record.View.Slug)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, record.View.TemplateID, got.View.TemplateID)
	assert.Equal(t, record.OwnerID, got.OwnerID)
	assert.Equal(t, record.OwnerTier, got.OwnerTier)
}

func TestTemplateCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	record := builder.NewTemplateBuilder().BuildPublicRecord()

	require.NoError(t, c.Set(ctx, record.View.Slug, record))

	mr.FastForward(6 * time.Minute)

	_, hit, err := c.Get(ctx, record.View.Slug)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestTemplateCacheCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("public_template:broken", "{not json"))

	_, hit, err := c.Get(ctx, "broken")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestTemplateCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	record := builder.NewTemplateBuilder().BuildPublicRecord()

	require.NoError(t, c.Set(ctx, record.View.Slug, record))
	require.NoError(t, c.Invalidate(ctx, record.View.Slug))

	_, hit, err := c.Get(ctx, record.View.Slug)
	require.NoError(t, err)
	assert.False(t, hit)

	// Invalidating an absent key is not an error.
	assert.NoError(t, c.Invalidate(ctx, "missing"))
}

func TestTemplateCacheConnectionError(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	mr.Close()

	_, _, err := c.Get(ctx, "anything")
	assert.Error(t, err)
}
