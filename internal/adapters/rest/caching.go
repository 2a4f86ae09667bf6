package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.farmtech.dev/agroview/internal/core/domain"
	"go.farmtech.dev/agroview/internal/core/ports"
)

// CachingExecutor decorates an Executor with a read-through response cache.
// GET requests consult and populate the cache; mutating requests bypass it
// and synchronously invalidate the mutated resource's path prefix before
// returning, so a read issued right after a successful mutation never sees
// the pre-mutation payload.
type CachingExecutor struct {
	next  ports.Executor
	cache ports.ResponseCache
}

// NewCachingExecutor wraps next with cache.
func NewCachingExecutor(next ports.Executor, cache ports.ResponseCache) *CachingExecutor {
	return &CachingExecutor{next: next, cache: cache}
}

// Execute implements ports.Executor.
func (c *CachingExecutor) Execute(ctx context.Context, method, endpoint string, body any) (*domain.Envelope, error) {
	if method != http.MethodGet {
		env, err := c.next.Execute(ctx, method, endpoint, body)
		if err == nil {
			c.cache.Invalidate(resourcePrefix(endpoint))
		}
		return env, err
	}

	key := canonicalBody(body)
	if raw, ok := c.cache.Get(endpoint, key); ok {
		return domain.DecodeEnvelope(raw)
	}

	env, err := c.next.Execute(ctx, method, endpoint, body)
	if err != nil || !env.IsSuccess() {
		return env, err
	}

	if raw, merr := json.Marshal(env); merr == nil {
		c.cache.Put(endpoint, key, raw)
	}
	return env, nil
}

// canonicalBody serializes a request body into the byte form used for cache
// keying. A nil body keys as empty so distinct payloads to the same endpoint
// are cached independently.
func canonicalBody(body any) []byte {
	if body == nil {
		return nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil
	}
	return raw
}

// resourcePrefix reduces an endpoint to its resource path segment, e.g.
// "/api/cultures/5/weather-analysis" -> "/api/cultures".
func resourcePrefix(endpoint string) string {
	parts := strings.SplitN(strings.TrimPrefix(endpoint, "/"), "/", 3)
	if len(parts) >= 2 {
		return "/" + parts[0] + "/" + parts[1]
	}
	return endpoint
}
