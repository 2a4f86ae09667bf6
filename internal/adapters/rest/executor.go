// Package rest implements the HTTP request executor for the culture service.
package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"go.farmtech.dev/agroview/internal/core/domain"
	"go.farmtech.dev/agroview/internal/core/ports"
	"go.trai.ch/zerr"
	"resty.dev/v3"
)

// Executor implements ports.Executor over a resty client. Each logical call
// makes up to MaxRetries+1 attempts, each bounded by a hard per-attempt
// timeout, with exponential backoff between attempts. It knows nothing about
// caching or entities.
type Executor struct {
	client *resty.Client
	policy domain.RetryPolicy
	clock  clockwork.Clock
	logger ports.Logger
	tracer ports.Tracer
}

// NewExecutor creates an Executor with the given transport and policy.
func NewExecutor(client *resty.Client, policy domain.RetryPolicy, clock clockwork.Clock, logger ports.Logger, tracer ports.Tracer) *Executor {
	return &Executor{
		client: client,
		policy: policy,
		clock:  clock,
		logger: logger,
		tracer: tracer,
	}
}

// Execute implements ports.Executor. Timeouts, connection failures and 5xx
// responses are retried with waits of BaseDelay * 2^attempt; malformed
// payloads are surfaced immediately because retrying cannot fix a
// structurally wrong body. The returned envelope is always normalized.
func (e *Executor) Execute(ctx context.Context, method, endpoint string, body any) (*domain.Envelope, error) {
	ctx, span := e.tracer.Start(ctx, "rest.execute")
	defer span.End()
	span.SetAttribute("http.method", method)
	span.SetAttribute("endpoint", endpoint)

	var lastErr error
	for attempt := 0; attempt <= e.policy.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-e.clock.After(e.policy.Backoff(attempt - 1)):
			case <-ctx.Done():
				span.RecordError(ctx.Err())
				terr := zerr.With(domain.ErrTransport, "endpoint", endpoint)
				return nil, zerr.With(terr, "error", ctx.Err().Error())
			}
		}

		env, retryable, err := e.attempt(ctx, method, endpoint, body)
		if err == nil {
			return env, nil
		}
		if !retryable {
			span.RecordError(err)
			return nil, err
		}

		lastErr = err
		if attempt < e.policy.MaxRetries {
			e.logger.Warn(fmt.Sprintf("request to %s failed, retrying (attempt %d/%d)", endpoint, attempt+1, e.policy.MaxRetries+1))
		}
	}

	span.RecordError(lastErr)
	return nil, lastErr
}

// attempt performs one bounded HTTP attempt. The second return value reports
// whether the failure is worth retrying.
func (e *Executor) attempt(ctx context.Context, method, endpoint string, body any) (*domain.Envelope, bool, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, e.policy.Timeout)
	defer cancel()

	req := e.client.R().SetContext(attemptCtx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		terr := zerr.With(domain.ErrTransport, "endpoint", endpoint)
		return nil, true, zerr.With(terr, "error", err.Error())
	}

	if resp.StatusCode() >= http.StatusInternalServerError {
		terr := zerr.With(domain.ErrTransport, "endpoint", endpoint)
		return nil, true, zerr.With(terr, "status", resp.StatusCode())
	}

	// 4xx responses carry an error envelope from the service; they are not
	// transport failures and reach the caller as a normalized envelope.
	env, err := domain.DecodeEnvelope(resp.Bytes())
	if err != nil {
		merr := zerr.With(domain.ErrMalformedPayload, "endpoint", endpoint)
		return nil, false, zerr.With(merr, "status", resp.StatusCode())
	}
	return env, false, nil
}
