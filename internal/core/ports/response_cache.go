package ports

// ResponseCache is a TTL-bounded cache for read-only responses, keyed by
// endpoint plus request body. Expired entries are reported as absent, never
// as stale values.
//
//go:generate mockgen -source=response_cache.go -destination=mocks/mock_response_cache.go -package=mocks
type ResponseCache interface {
	// Get returns the cached raw response for the endpoint/body pair, or
	// ok=false if absent or expired.
	Get(endpoint string, body []byte) (raw []byte, ok bool)

	// Put stores a raw response. Existing entries are replaced, not merged.
	Put(endpoint string, body []byte, raw []byte)

	// Invalidate removes every entry whose endpoint starts with prefix.
	Invalidate(prefix string)

	// InvalidateAll clears the cache.
	InvalidateAll()
}
