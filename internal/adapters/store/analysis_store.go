// Package store implements the durable analysis cache.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.farmtech.dev/agroview/internal/core/domain"
	"go.farmtech.dev/agroview/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	analysisCacheFile = "analysisCache.json"
	analyzedIDsFile   = "analyzedCultureIds.json"

	dirPerm  = 0o755
	filePerm = 0o644
)

// AnalysisStore implements ports.AnalysisStore as file-per-key JSON in a
// state directory. Every mutating call persists before returning, so a crash
// immediately after a call never loses more than the in-progress call.
// Corrupt or incomplete stored state is discarded on load rather than
// propagated; durability failures must never block the UI path.
type AnalysisStore struct {
	dir    string
	logger ports.Logger

	mu       sync.Mutex
	records  map[string]*domain.AnalysisRecord
	analyzed map[string]bool
}

// NewAnalysisStore opens (or initializes) the store rooted at dir.
func NewAnalysisStore(dir string, logger ports.Logger) (*AnalysisStore, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	s := &AnalysisStore{
		dir:      dir,
		logger:   logger,
		records:  make(map[string]*domain.AnalysisRecord),
		analyzed: make(map[string]bool),
	}
	s.load()
	return s, nil
}

// load reads both durable keys, self-healing on corruption: a value that is
// not a well-formed mapping (or array) resets to empty, and records failing
// the completeness check are dropped so they get refetched.
func (s *AnalysisStore) load() {
	raw, err := os.ReadFile(filepath.Join(s.dir, analysisCacheFile))
	if err == nil {
		var records map[string]*domain.AnalysisRecord
		if jerr := json.Unmarshal(raw, &records); jerr != nil || records == nil {
			s.logger.Warn("discarding corrupt analysis cache")
		} else {
			for id, rec := range records {
				if rec != nil && rec.IsComplete() {
					s.records[id] = rec
				}
			}
		}
	}

	raw, err = os.ReadFile(filepath.Join(s.dir, analyzedIDsFile))
	if err == nil {
		var ids []string
		if jerr := json.Unmarshal(raw, &ids); jerr != nil {
			s.logger.Warn("discarding corrupt analyzed-id list")
		} else {
			for _, id := range ids {
				s.analyzed[id] = true
			}
		}
	}
}

// Get returns the stored analysis for id, or nil if absent.
func (s *AnalysisStore) Get(id domain.Identity) *domain.AnalysisRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[id.String()]
}

// Put stores an analysis unconditionally and persists.
func (s *AnalysisStore) Put(record *domain.AnalysisRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.CultureID.String()] = record
	return s.persistRecords()
}

// Remove deletes the analysis for id and persists.
func (s *AnalysisStore) Remove(id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id.String())
	delete(s.analyzed, id.String())
	if err := s.persistRecords(); err != nil {
		return err
	}
	return s.persistAnalyzed()
}

// Reconcile drops records whose identity is not live, and records whose
// remembered culture type no longer matches the live one. The type check
// guards against stale cross-type collisions after edits.
func (s *AnalysisStore) Reconcile(live map[domain.Identity]domain.CultureType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byString := make(map[string]domain.CultureType, len(live))
	for id, t := range live {
		byString[id.String()] = t
	}

	for id, rec := range s.records {
		liveType, ok := byString[id]
		if !ok || rec.CultureType != liveType {
			delete(s.records, id)
			delete(s.analyzed, id)
		}
	}
	for id := range s.analyzed {
		if _, ok := byString[id]; !ok {
			delete(s.analyzed, id)
		}
	}

	if err := s.persistRecords(); err != nil {
		return err
	}
	return s.persistAnalyzed()
}

// MarkAnalyzed records that the culture has been analyzed at least once and
// persists.
func (s *AnalysisStore) MarkAnalyzed(id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyzed[id.String()] = true
	return s.persistAnalyzed()
}

// Analyzed reports whether the culture has ever been analyzed.
func (s *AnalysisStore) Analyzed(id domain.Identity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analyzed[id.String()]
}

func (s *AnalysisStore) persistRecords() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	path := filepath.Join(s.dir, analysisCacheFile)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

func (s *AnalysisStore) persistAnalyzed() error {
	ids := make([]string, 0, len(s.analyzed))
	for id := range s.analyzed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	data, err := json.Marshal(ids)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	path := filepath.Join(s.dir, analyzedIDsFile)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}
