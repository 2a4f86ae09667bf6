// Package cache implements the in-memory TTL response cache.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jonboulle/clockwork"
)

// entry is one cached response. Entries are replaced, never updated.
type entry struct {
	raw      []byte
	storedAt time.Time
}

// ResponseCache implements ports.ResponseCache with per-entry TTL. Expired
// entries are treated as absent and lazily evicted on the next lookup; there
// is no background sweeper.
type ResponseCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	clock   clockwork.Clock
}

// NewResponseCache creates a cache whose entries expire after ttl.
func NewResponseCache(ttl time.Duration, clock clockwork.Clock) *ResponseCache {
	return &ResponseCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		clock:   clock,
	}
}

// key derives the cache key from the endpoint and the canonical body bytes.
// The endpoint stays in clear text so prefix invalidation can match it; the
// body is folded to a short hash to keep keys bounded.
func key(endpoint string, body []byte) string {
	return fmt.Sprintf("%s|%016x", endpoint, xxhash.Sum64(body))
}

// Get returns the cached response, or ok=false if absent or expired. An
// entry is absent once now - storedAt >= ttl, boundary included.
func (c *ResponseCache) Get(endpoint string, body []byte) ([]byte, bool) {
	k := key(endpoint, body)

	c.mu.RLock()
	e, ok := c.entries[k]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.clock.Since(e.storedAt) >= c.ttl {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Put may have refreshed
		// the entry between the two lock scopes.
		if e2, ok2 := c.entries[k]; ok2 && c.clock.Since(e2.storedAt) >= c.ttl {
			delete(c.entries, k)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.raw, true
}

// Put stores a response, replacing any existing entry.
func (c *ResponseCache) Put(endpoint string, body []byte, raw []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key(endpoint, body)] = entry{raw: raw, storedAt: c.clock.Now()}
}

// Invalidate removes every entry whose endpoint starts with prefix.
func (c *ResponseCache) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}

// InvalidateAll clears the cache.
func (c *ResponseCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len reports the number of live entries, counting expired ones until their
// lazy eviction. Used by tests.
func (c *ResponseCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
