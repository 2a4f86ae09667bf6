package rest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.farmtech.dev/agroview/internal/adapters/rest"
	"go.farmtech.dev/agroview/internal/adapters/telemetry"
	"go.farmtech.dev/agroview/internal/core/domain"
	"go.farmtech.dev/agroview/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
	"resty.dev/v3"
)

func newTestLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

func newTestClient(t *testing.T, baseURL string) *resty.Client {
	t.Helper()
	client := resty.New().SetBaseURL(baseURL).SetRetryCount(0)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

type executeResult struct {
	env *domain.Envelope
	err error
}

// executeAsync runs Execute in a goroutine so the test can drive the fake
// clock through the backoff waits.
func executeAsync(ex *rest.Executor, method, endpoint string) chan executeResult {
	done := make(chan executeResult, 1)
	go func() {
		env, err := ex.Execute(context.Background(), method, endpoint, nil)
		done <- executeResult{env: env, err: err}
	}()
	return done
}

func TestExecutor_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	clock := clockwork.NewFakeClock()
	policy := domain.RetryPolicy{MaxRetries: 2, BaseDelay: 500 * time.Millisecond, Timeout: 5 * time.Second}
	ex := rest.NewExecutor(newTestClient(t, srv.URL), policy, clock, newTestLogger(t), telemetry.NewNoopTracer())

	done := executeAsync(ex, http.MethodGet, "/api/cultures")

	// Two backoff waits separate the three attempts: 500ms, then 1s.
	for attempt := range policy.MaxRetries {
		err := clock.BlockUntilContext(context.Background(), 1)
		require.NoError(t, err)
		clock.Advance(policy.Backoff(attempt))
	}

	res := <-done
	require.ErrorIs(t, res.err, domain.ErrTransport)
	assert.Equal(t, int64(3), requests.Load())
}

func TestExecutor_SucceedsAfterTransientFailure(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","data":[]}`))
	}))
	defer srv.Close()

	clock := clockwork.NewFakeClock()
	policy := domain.RetryPolicy{MaxRetries: 2, BaseDelay: 500 * time.Millisecond, Timeout: 5 * time.Second}
	ex := rest.NewExecutor(newTestClient(t, srv.URL), policy, clock, newTestLogger(t), telemetry.NewNoopTracer())

	done := executeAsync(ex, http.MethodGet, "/api/cultures")

	require.NoError(t, clock.BlockUntilContext(context.Background(), 1))
	clock.Advance(policy.Backoff(0))

	res := <-done
	require.NoError(t, res.err)
	assert.True(t, res.env.IsSuccess())
	assert.Equal(t, int64(2), requests.Load())
}

func TestExecutor_MalformedPayloadIsNotRetried(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer srv.Close()

	clock := clockwork.NewFakeClock()
	policy := domain.RetryPolicy{MaxRetries: 2, BaseDelay: 500 * time.Millisecond, Timeout: 5 * time.Second}
	ex := rest.NewExecutor(newTestClient(t, srv.URL), policy, clock, newTestLogger(t), telemetry.NewNoopTracer())

	_, err := ex.Execute(context.Background(), http.MethodGet, "/api/cultures", nil)
	require.ErrorIs(t, err, domain.ErrMalformedPayload)
	assert.Equal(t, int64(1), requests.Load())
}

func TestExecutor_ClientErrorReturnsEnvelope(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"error","message":"Cultura não encontrada"}`))
	}))
	defer srv.Close()

	clock := clockwork.NewFakeClock()
	policy := domain.RetryPolicy{MaxRetries: 2, BaseDelay: 500 * time.Millisecond, Timeout: 5 * time.Second}
	ex := rest.NewExecutor(newTestClient(t, srv.URL), policy, clock, newTestLogger(t), telemetry.NewNoopTracer())

	env, err := ex.Execute(context.Background(), http.MethodGet, "/api/cultures/soja_9", nil)
	require.NoError(t, err)
	assert.False(t, env.IsSuccess())
	assert.Equal(t, "Cultura não encontrada", env.Message)
	// 4xx is the service answering, not the transport failing.
	assert.Equal(t, int64(1), requests.Load())
}

func TestExecutor_PerAttemptTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	policy := domain.RetryPolicy{MaxRetries: 0, BaseDelay: time.Millisecond, Timeout: 50 * time.Millisecond}
	ex := rest.NewExecutor(newTestClient(t, srv.URL), policy, clockwork.NewFakeClock(), newTestLogger(t), telemetry.NewNoopTracer())

	_, err := ex.Execute(context.Background(), http.MethodGet, "/api/cultures", nil)
	require.ErrorIs(t, err, domain.ErrTransport)
}
