package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"go.farmtech.dev/agroview/internal/adapters/logger"
	"go.farmtech.dev/agroview/internal/app"
	"go.farmtech.dev/agroview/internal/core/domain"
	"go.farmtech.dev/agroview/internal/core/ports"
	"go.farmtech.dev/agroview/internal/core/ports/mocks"
	"go.farmtech.dev/agroview/internal/engine/loader"
	"go.farmtech.dev/agroview/internal/wiring"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// newTestComponents builds real app wiring over mocked ports.
func newTestComponents(t *testing.T) (*wiring.Components, *mocks.MockExecutor) {
	t.Helper()
	ctrl := gomock.NewController(t)

	executor := mocks.NewMockExecutor(ctrl)
	store := mocks.NewMockAnalysisStore(ctrl)
	renderer := mocks.NewMockAnalysisRenderer(ctrl)
	renderer.EXPECT().ShowLoading(gomock.Any()).AnyTimes()
	renderer.EXPECT().ClearAnalysis().AnyTimes()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()

	coordinator := loader.NewCoordinator(executor, store, 3, clockwork.NewFakeClock(), mockLogger, tracer)
	application := app.New(executor, coordinator, store, renderer, mockLogger, tracer)

	log := logger.New()
	log.SetOutput(io.Discard)

	return &wiring.Components{App: application, Logger: log}, executor
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components, _ := newTestComponents(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, func(context.Context) (*wiring.Components, func(), error) {
		return components, func() {}, nil
	})
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*wiring.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	components, executor := newTestComponents(t)
	executor.EXPECT().
		Execute(gomock.Any(), http.MethodGet, "/api/cultures", nil).
		Return(nil, zerr.With(domain.ErrTransport, "endpoint", "/api/cultures"))

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"list"}, stderr, func(context.Context) (*wiring.Components, func(), error) {
		return components, func() {}, nil
	})
	assert.Equal(t, 1, exitCode)
}

// TestRun_UsageError verifies the distinct exit code for caller mistakes.
func TestRun_UsageError(t *testing.T) {
	components, _ := newTestComponents(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"delete", "not-an-identity"}, stderr, func(context.Context) (*wiring.Components, func(), error) {
		return components, func() {}, nil
	})
	assert.Equal(t, 2, exitCode)
	assert.Contains(t, stderr.String(), "Error:")
}
