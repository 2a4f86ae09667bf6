package ports

import "go.farmtech.dev/agroview/internal/core/domain"

// AnalysisRenderer is the rendering collaborator the data layer hands its
// results to. The core never formats terminal output itself; it only calls
// these hooks once a load settles.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type AnalysisRenderer interface {
	// ShowLoading tells the renderer a load for id has started.
	ShowLoading(id domain.Identity)

	// RenderAnalysis presents a settled analysis model.
	RenderAnalysis(record *domain.AnalysisRecord)

	// ClearAnalysis removes any previously rendered analysis.
	ClearAnalysis()

	// ShowSelectionPrompt presents an informational message in place of an
	// analysis, e.g. "load in progress" or a retry hint.
	ShowSelectionPrompt(message string)
}
