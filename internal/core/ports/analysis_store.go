package ports

import "go.farmtech.dev/agroview/internal/core/domain"

// AnalysisStore is the durable cache of previously fetched analyses, keyed
// by culture identity. It survives restarts; every mutating call persists
// before returning so a crash loses at most the in-progress call.
// Corrupt stored state self-heals to empty instead of failing loads.
//
//go:generate mockgen -source=analysis_store.go -destination=mocks/mock_analysis_store.go -package=mocks
type AnalysisStore interface {
	// Get returns the stored analysis for id, or nil if absent.
	Get(id domain.Identity) *domain.AnalysisRecord

	// Put stores an analysis unconditionally (last write wins).
	Put(record *domain.AnalysisRecord) error

	// Remove deletes the analysis for id, if present.
	Remove(id domain.Identity) error

	// Reconcile drops every record whose identity is not in live, and every
	// record whose remembered culture type differs from the live one.
	Reconcile(live map[domain.Identity]domain.CultureType) error

	// MarkAnalyzed records that the culture has been analyzed at least once.
	MarkAnalyzed(id domain.Identity) error

	// Analyzed reports whether the culture has ever been analyzed.
	Analyzed(id domain.Identity) bool
}
