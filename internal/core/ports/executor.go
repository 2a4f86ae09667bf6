// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.farmtech.dev/agroview/internal/core/domain"
)

// Executor issues one logical HTTP call against the culture service and
// returns the normalized response envelope. Implementations own per-attempt
// timeouts and bounded retries; they never cache.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute performs the call. body may be nil for bodiless requests.
	// Transport failures are retried up to the policy's budget and then
	// surfaced wrapped in domain.ErrTransport; non-JSON bodies surface
	// domain.ErrMalformedPayload without retrying.
	Execute(ctx context.Context, method, endpoint string, body any) (*domain.Envelope, error)
}
