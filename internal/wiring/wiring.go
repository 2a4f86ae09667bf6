// Package wiring binds the concrete adapters to the application. All
// construction happens here, once, so every other package can stay on ports.
package wiring

import (
	"os"

	"github.com/jonboulle/clockwork"
	"go.farmtech.dev/agroview/internal/adapters/cache"
	"go.farmtech.dev/agroview/internal/adapters/config"
	"go.farmtech.dev/agroview/internal/adapters/logger"
	"go.farmtech.dev/agroview/internal/adapters/render"
	"go.farmtech.dev/agroview/internal/adapters/rest"
	"go.farmtech.dev/agroview/internal/adapters/store"
	"go.farmtech.dev/agroview/internal/adapters/telemetry"
	"go.farmtech.dev/agroview/internal/app"
	"go.farmtech.dev/agroview/internal/engine/loader"
	"resty.dev/v3"
)

// Components holds everything the CLI layer needs.
type Components struct {
	App    *app.App
	Logger *logger.Logger
	Cache  *cache.ResponseCache
	Store  *store.AnalysisStore
	Client *resty.Client
}

// NewRestClient creates the shared HTTP transport. Retries are handled by the
// executor, so resty's own retry machinery stays off.
func NewRestClient(server string) *resty.Client {
	return resty.New().
		SetBaseURL(server).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}

// New builds the full component graph from cfg. A nil log gets a fresh
// pretty logger on stderr.
func New(cfg config.Config, log *logger.Logger) (*Components, error) {
	if log == nil {
		log = logger.New()
	}
	if cfg.LogJSON {
		log.SetJSON(true)
	}

	tracer := telemetry.NewOTelTracer("agroview")
	clock := clockwork.NewRealClock()

	client := NewRestClient(cfg.Server)

	responseCache := cache.NewResponseCache(cfg.CacheTTL, clock)

	analysisStore, err := store.NewAnalysisStore(cfg.StateDir, log)
	if err != nil {
		return nil, err
	}

	executor := rest.NewCachingExecutor(
		rest.NewExecutor(client, cfg.Retry, clock, log, tracer),
		responseCache,
	)

	coordinator := loader.NewCoordinator(executor, analysisStore, cfg.AttemptBudget, clock, log, tracer)
	renderer := render.NewRenderer(os.Stdout)

	return &Components{
		App:    app.New(executor, coordinator, analysisStore, renderer, log, tracer),
		Logger: log,
		Cache:  responseCache,
		Store:  analysisStore,
		Client: client,
	}, nil
}

// Close releases the transport resources.
func (c *Components) Close() error {
	return c.Client.Close()
}
