package cache_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.farmtech.dev/agroview/internal/adapters/cache"
)

func TestResponseCache_TTL(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	c := cache.NewResponseCache(30*time.Second, clock)

	c.Put("/api/cultures", nil, []byte(`{"status":"success"}`))

	t.Run("fresh entry is served", func(t *testing.T) {
		raw, ok := c.Get("/api/cultures", nil)
		require.True(t, ok)
		assert.JSONEq(t, `{"status":"success"}`, string(raw))
	})

	t.Run("entry just below the boundary is still served", func(t *testing.T) {
		clock.Advance(30*time.Second - time.Millisecond)
		_, ok := c.Get("/api/cultures", nil)
		assert.True(t, ok)
	})

	t.Run("entry at exactly ttl is absent and evicted", func(t *testing.T) {
		clock.Advance(time.Millisecond)
		_, ok := c.Get("/api/cultures", nil)
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len())
	})
}

func TestResponseCache_Keying(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	c := cache.NewResponseCache(time.Minute, clock)

	c.Put("/api/cultures", []byte(`{"a":1}`), []byte(`first`))
	c.Put("/api/cultures", []byte(`{"a":2}`), []byte(`second`))

	raw, ok := c.Get("/api/cultures", []byte(`{"a":1}`))
	require.True(t, ok)
	assert.Equal(t, "first", string(raw))

	raw, ok = c.Get("/api/cultures", []byte(`{"a":2}`))
	require.True(t, ok)
	assert.Equal(t, "second", string(raw))

	_, ok = c.Get("/api/cultures", []byte(`{"a":3}`))
	assert.False(t, ok)
}

func TestResponseCache_Invalidate(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	c := cache.NewResponseCache(time.Minute, clock)

	c.Put("/api/cultures", nil, []byte(`list`))
	c.Put("/api/cultures/soja_0", nil, []byte(`one`))
	c.Put("/api/cultures/soja_0/weather-analysis", nil, []byte(`analysis`))
	c.Put("/api/health", nil, []byte(`ok`))

	c.Invalidate("/api/cultures")

	_, ok := c.Get("/api/cultures", nil)
	assert.False(t, ok)
	_, ok = c.Get("/api/cultures/soja_0", nil)
	assert.False(t, ok)
	_, ok = c.Get("/api/cultures/soja_0/weather-analysis", nil)
	assert.False(t, ok)

	// Unrelated endpoints survive a prefix invalidation.
	_, ok = c.Get("/api/health", nil)
	assert.True(t, ok)

	c.InvalidateAll()
	assert.Equal(t, 0, c.Len())
}

func TestResponseCache_PutRefreshesExpiry(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	c := cache.NewResponseCache(30*time.Second, clock)

	c.Put("/api/cultures", nil, []byte(`old`))
	clock.Advance(20 * time.Second)
	c.Put("/api/cultures", nil, []byte(`new`))
	clock.Advance(20 * time.Second)

	// 40s after the first Put, but only 20s after the refresh.
	raw, ok := c.Get("/api/cultures", nil)
	require.True(t, ok)
	assert.Equal(t, "new", string(raw))
}
