package domain

import "time"

// Retry and cache defaults. The executor defaults bound a single load
// session to Timeout * (MaxRetries+1) wall time.
const (
	DefaultMaxRetries    = 2
	DefaultBaseDelay     = 500 * time.Millisecond
	DefaultTimeout       = 10 * time.Second
	DefaultCacheTTL      = 30 * time.Second
	DefaultAttemptBudget = 3
)

// RetryPolicy is the immutable retry configuration consumed by the request
// executor.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	Timeout    time.Duration
}

// DefaultRetryPolicy returns the policy used when the config file does not
// override it.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
		Timeout:    DefaultTimeout,
	}
}

// Backoff returns the wait before retry number attempt (zero-based):
// BaseDelay * 2^attempt.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	return p.BaseDelay << attempt
}
