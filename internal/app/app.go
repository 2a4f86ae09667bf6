// Package app holds the application operations behind the agroview CLI. It
// depends on ports only; all concrete adapters are bound in internal/wiring.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.farmtech.dev/agroview/internal/core/domain"
	"go.farmtech.dev/agroview/internal/core/ports"
	"go.farmtech.dev/agroview/internal/engine/loader"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// analyzeAllConcurrency bounds the number of in-flight analysis loads during
// a bulk run. The server is a small Flask app; hammering it defeats the
// retry budget.
const analyzeAllConcurrency = 4

// GenerateResult is the outcome of a bulk generation request.
type GenerateResult struct {
	Created    []domain.Culture
	Statistics json.RawMessage
	Message    string
}

// App wires the culture operations together.
type App struct {
	executor    ports.Executor
	coordinator *loader.Coordinator
	store       ports.AnalysisStore
	renderer    ports.AnalysisRenderer
	logger      ports.Logger
	tracer      ports.Tracer
	validate    *validator.Validate
}

// New creates an App.
func New(executor ports.Executor, coordinator *loader.Coordinator, store ports.AnalysisStore, renderer ports.AnalysisRenderer, logger ports.Logger, tracer ports.Tracer) *App {
	return &App{
		executor:    executor,
		coordinator: coordinator,
		store:       store,
		renderer:    renderer,
		logger:      logger,
		tracer:      tracer,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ListCultures fetches the culture list, assigns stable identities to the
// records, and reconciles the analysis store against the live set. Deleted
// records are only included when includeDeleted is set.
func (a *App) ListCultures(ctx context.Context, includeDeleted bool) ([]domain.Culture, error) {
	ctx, span := a.tracer.Start(ctx, "app.list_cultures")
	defer span.End()

	endpoint := "/api/cultures"
	if includeDeleted {
		endpoint = "/api/cultures/all"
	}

	env, err := a.executor.Execute(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if !env.IsSuccess() {
		return nil, zerr.With(domain.ErrServerRejected, "message", env.Message)
	}

	wires, err := decodeCultures(env.Data)
	if err != nil {
		return nil, zerr.With(domain.ErrMalformedPayload, "endpoint", endpoint)
	}

	snapshot := make([]domain.CultureSnapshot, len(wires))
	for i, w := range wires {
		snapshot[i] = w.snapshot()
	}
	ids := domain.AllocateIdentities(snapshot)

	cultures := make([]domain.Culture, 0, len(wires))
	live := make(map[domain.Identity]domain.CultureType, len(wires))
	for i, w := range wires {
		c := w.culture(ids[i])
		if !c.Deleted {
			live[c.ID] = c.Type
		}
		cultures = append(cultures, c)
	}

	// Analyses for cultures that no longer exist, or whose type changed, are
	// stale; drop them now that the authoritative list is in hand.
	if err := a.store.Reconcile(live); err != nil {
		a.logger.Error(err)
	}
	return cultures, nil
}

// ShowCulture fetches a single culture by identity.
func (a *App) ShowCulture(ctx context.Context, id domain.Identity) (*domain.Culture, error) {
	env, err := a.executor.Execute(ctx, http.MethodGet, "/api/cultures/"+id.String(), nil)
	if err != nil {
		return nil, err
	}
	if !env.IsSuccess() {
		err := zerr.With(domain.ErrCultureNotFound, "culture", id.String())
		return nil, zerr.With(err, "message", env.Message)
	}

	var w cultureWire
	if err := json.Unmarshal(env.Data, &w); err != nil {
		return nil, zerr.With(domain.ErrMalformedPayload, "culture", id.String())
	}
	c := w.culture(id)
	return &c, nil
}

// CreateCulture validates req and creates the culture on the server.
func (a *App) CreateCulture(ctx context.Context, req CreateCultureRequest) (string, error) {
	ctx, span := a.tracer.Start(ctx, "app.create_culture")
	defer span.End()

	if err := validateRequest(a.validate, req); err != nil {
		return "", err
	}

	env, err := a.executor.Execute(ctx, http.MethodPost, "/api/cultures", createBody(req))
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	if !env.IsSuccess() {
		return "", zerr.With(domain.ErrServerRejected, "message", env.Message)
	}
	return env.Message, nil
}

// UpdateCulture validates req and applies a sparse update to id.
func (a *App) UpdateCulture(ctx context.Context, id domain.Identity, req UpdateCultureRequest) (string, error) {
	ctx, span := a.tracer.Start(ctx, "app.update_culture")
	defer span.End()

	if err := validateRequest(a.validate, req); err != nil {
		return "", err
	}
	body := updateBody(req)
	if len(body) == 0 {
		return "", zerr.With(domain.ErrValidationFailed, "error", "no fields to update")
	}

	env, err := a.executor.Execute(ctx, http.MethodPut, "/api/cultures/"+id.String(), body)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	if !env.IsSuccess() {
		err := zerr.With(domain.ErrServerRejected, "culture", id.String())
		return "", zerr.With(err, "message", env.Message)
	}
	return env.Message, nil
}

// DeleteCulture removes id on the server and drops its persisted analysis.
func (a *App) DeleteCulture(ctx context.Context, id domain.Identity) (string, error) {
	ctx, span := a.tracer.Start(ctx, "app.delete_culture")
	defer span.End()

	env, err := a.executor.Execute(ctx, http.MethodDelete, "/api/cultures/"+id.String(), nil)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	if !env.IsSuccess() {
		err := zerr.With(domain.ErrServerRejected, "culture", id.String())
		return "", zerr.With(err, "message", env.Message)
	}
	if err := a.store.Remove(id); err != nil {
		a.logger.Error(err)
	}
	return env.Message, nil
}

// Analyze loads the weather analysis for id and renders the outcome. A
// concurrent load for the same culture is reported, not treated as a
// failure.
func (a *App) Analyze(ctx context.Context, id domain.Identity, force bool) error {
	a.renderer.ShowLoading(id)

	rec, err := a.coordinator.LoadAnalysis(ctx, id, force)
	a.renderer.ClearAnalysis()
	switch {
	case err == nil:
		a.renderer.RenderAnalysis(rec)
		return nil
	case errors.Is(err, domain.ErrLoadInProgress):
		a.renderer.ShowSelectionPrompt(fmt.Sprintf("analysis for %s is already running, try again shortly", id))
		return nil
	case errors.Is(err, domain.ErrIncompleteData):
		a.renderer.ShowSelectionPrompt(fmt.Sprintf("the server returned incomplete analysis data for %s", id))
		return err
	default:
		return err
	}
}

// AnalyzeAll loads the analysis for every live culture with bounded
// concurrency. Failures are joined; a partial run still renders every
// successful analysis.
func (a *App) AnalyzeAll(ctx context.Context, force bool) error {
	ctx, span := a.tracer.Start(ctx, "app.analyze_all")
	defer span.End()

	cultures, err := a.ListCultures(ctx, false)
	if err != nil {
		span.RecordError(err)
		return err
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(analyzeAllConcurrency)
	for _, c := range cultures {
		g.Go(func() error {
			rec, err := a.coordinator.LoadAnalysis(gctx, c.ID, force)
			if err != nil {
				if errors.Is(err, domain.ErrLoadInProgress) {
					return nil
				}
				mu.Lock()
				errs = append(errs, zerr.Wrap(err, c.ID.String()))
				mu.Unlock()
				return nil
			}
			mu.Lock()
			a.renderer.RenderAnalysis(rec)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// GenerateCultures asks the server to create a batch of random cultures.
func (a *App) GenerateCultures(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	ctx, span := a.tracer.Start(ctx, "app.generate_cultures")
	defer span.End()

	if err := validateRequest(a.validate, req); err != nil {
		return nil, err
	}

	body := map[string]any{
		"culture_type":    req.Type.Code(),
		"samples":         req.Samples,
		"with_statistics": req.WithStatistics,
	}
	env, err := a.executor.Execute(ctx, http.MethodPost, "/api/cultures/generate", body)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if !env.IsSuccess() {
		return nil, zerr.With(domain.ErrServerRejected, "message", env.Message)
	}

	var data struct {
		Cultures   []cultureWire   `json:"cultures"`
		Statistics json.RawMessage `json:"statistics"`
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, zerr.With(domain.ErrMalformedPayload, "endpoint", "/api/cultures/generate")
		}
	}

	snapshot := make([]domain.CultureSnapshot, len(data.Cultures))
	for i, w := range data.Cultures {
		snapshot[i] = w.snapshot()
	}
	ids := domain.AllocateIdentities(snapshot)

	result := &GenerateResult{Statistics: data.Statistics, Message: env.Message}
	for i, w := range data.Cultures {
		result.Created = append(result.Created, w.culture(ids[i]))
	}
	return result, nil
}

// CalculateLines returns the number of planting lines the server computes
// for the culture's area and spacing.
func (a *App) CalculateLines(ctx context.Context, id domain.Identity) (float64, error) {
	env, err := a.executor.Execute(ctx, http.MethodGet, "/api/cultures/"+id.String()+"/lines", nil)
	if err != nil {
		return 0, err
	}
	if !env.IsSuccess() {
		err := zerr.With(domain.ErrCultureNotFound, "culture", id.String())
		return 0, zerr.With(err, "message", env.Message)
	}

	var data struct {
		Lines float64 `json:"linhas_calculadas"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return 0, zerr.With(domain.ErrMalformedPayload, "culture", id.String())
	}
	return data.Lines, nil
}
