// Package loader implements the per-culture analysis load coordinator.
package loader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.farmtech.dev/agroview/internal/core/domain"
	"go.farmtech.dev/agroview/internal/core/ports"
	"go.trai.ch/zerr"
)

// Status is the state of a load session.
type Status string

const (
	// StatusIdle indicates no load is running for the culture.
	StatusIdle Status = "Idle"
	// StatusLoading indicates a load is in flight.
	StatusLoading Status = "Loading"
	// StatusLoaded indicates the last load succeeded.
	StatusLoaded Status = "Loaded"
	// StatusFailed indicates the last load failed.
	StatusFailed Status = "Failed"
)

// session tracks one culture's load state. The attempt counter survives
// failed calls and resets on success or budget exhaustion, bounding retry
// storms against a consistently failing endpoint.
type session struct {
	status   Status
	attempts int
}

// Coordinator turns the executor and the durable store into a "load
// analysis" operation with concurrency exclusion, an attempt budget, and
// forced-refresh semantics. At most one session per identity is ever in
// StatusLoading.
type Coordinator struct {
	executor ports.Executor
	store    ports.AnalysisStore
	budget   int
	clock    clockwork.Clock
	logger   ports.Logger
	tracer   ports.Tracer

	mu       sync.Mutex
	sessions map[string]*session
}

// NewCoordinator creates a Coordinator. budget <= 0 selects the default.
func NewCoordinator(executor ports.Executor, store ports.AnalysisStore, budget int, clock clockwork.Clock, logger ports.Logger, tracer ports.Tracer) *Coordinator {
	if budget <= 0 {
		budget = domain.DefaultAttemptBudget
	}
	return &Coordinator{
		executor: executor,
		store:    store,
		budget:   budget,
		clock:    clock,
		logger:   logger,
		tracer:   tracer,
		sessions: make(map[string]*session),
	}
}

// Status reports the current session status for id.
func (c *Coordinator) Status(id domain.Identity) Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.sessions[id.String()]; ok {
		return s.status
	}
	return StatusIdle
}

// LoadAnalysis loads the analysis for id. Without force, a complete record
// in the durable store is returned synchronously with no network call. A
// call while another load for the same id is running returns
// domain.ErrLoadInProgress; that rejection is the system's substitute for
// cancellation, so correctness depends on sessions always terminating
// (bounded by timeout * (maxRetries+1)).
func (c *Coordinator) LoadAnalysis(ctx context.Context, id domain.Identity, force bool) (*domain.AnalysisRecord, error) {
	ctx, span := c.tracer.Start(ctx, "loader.load_analysis")
	defer span.End()
	span.SetAttribute("culture", id.String())

	c.mu.Lock()
	sess, ok := c.sessions[id.String()]
	if !ok {
		sess = &session{status: StatusIdle}
		c.sessions[id.String()] = sess
	}

	if sess.status == StatusLoading {
		c.mu.Unlock()
		return nil, zerr.With(domain.ErrLoadInProgress, "culture", id.String())
	}

	// Fast path: a complete persisted record satisfies the load without a
	// session transition.
	if !force {
		if rec := c.store.Get(id); rec != nil && rec.IsComplete() {
			c.mu.Unlock()
			return rec, nil
		}
	}

	sess.attempts++
	if sess.attempts > c.budget {
		sess.attempts = 0
		sess.status = StatusIdle
		c.mu.Unlock()
		err := zerr.With(domain.ErrBudgetExhausted, "culture", id.String())
		err = zerr.With(err, "budget", c.budget)
		span.RecordError(err)
		return nil, err
	}
	sess.status = StatusLoading
	c.mu.Unlock()

	rec, err := c.fetch(ctx, id)
	if err != nil {
		c.conclude(id, StatusFailed)
		span.RecordError(err)
		return nil, err
	}

	// Write-through happens strictly after validation; a persist failure is
	// logged but does not fail the load, the fetched record is still valid.
	if perr := c.store.Put(rec); perr != nil {
		c.logger.Error(perr)
	}
	if perr := c.store.MarkAnalyzed(id); perr != nil {
		c.logger.Error(perr)
	}

	c.mu.Lock()
	sess.attempts = 0
	c.mu.Unlock()
	c.conclude(id, StatusLoaded)
	return rec, nil
}

// fetch performs the network path: one executor call, then the completeness
// validation, in that order.
func (c *Coordinator) fetch(ctx context.Context, id domain.Identity) (*domain.AnalysisRecord, error) {
	endpoint := fmt.Sprintf("/api/cultures/%s/weather-analysis", id)

	env, err := c.executor.Execute(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		// Structurally wrong payloads are incomplete data, not transport
		// failures; retrying cannot fix them.
		if errors.Is(err, domain.ErrMalformedPayload) {
			ierr := zerr.With(domain.ErrIncompleteData, "culture", id.String())
			return nil, zerr.With(ierr, "error", err.Error())
		}
		return nil, err
	}
	if !env.IsSuccess() {
		rerr := zerr.With(domain.ErrServerRejected, "culture", id.String())
		return nil, zerr.With(rerr, "message", env.Message)
	}

	rec, err := domain.DecodeAnalysisRecord(id, env.Data, c.clock.Now())
	if err != nil {
		return nil, zerr.With(domain.ErrIncompleteData, "culture", id.String())
	}
	if !rec.IsComplete() {
		return nil, zerr.With(domain.ErrIncompleteData, "culture", id.String())
	}
	return rec, nil
}

// conclude moves the session out of Loading. Loaded and Failed both return
// to Idle on the next request, so only the attempt counter carries over.
func (c *Coordinator) conclude(id domain.Identity, status Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.sessions[id.String()]; ok {
		s.status = status
	}
}
