// Package profile manages the single student document: load-once with
// initialize-on-first-read, merge-writes on save, and a local cache that
// only moves after a write succeeds.
package profile

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aalmasoud/unilife/internal/common"
	"github.com/aalmasoud/unilife/internal/docstore"
	"github.com/aalmasoud/unilife/internal/logging"
	"github.com/aalmasoud/unilife/internal/models"
)

// Collection is where student documents live.
const Collection = "students"

// Store caches one remote profile document. The cache is considered stale
// until Load is called; failed operations leave it at its last-known value.
type Store struct {
	docs      docstore.Store
	studentID string
	log       logging.Logger

	mu     sync.Mutex
	cached models.Profile
	loaded bool
}

func NewStore(docs docstore.Store, studentID string, log logging.Logger) *Store {
	return &Store{docs: docs, studentID: studentID, log: log}
}

// Load fetches the document, creating it from the defaults when absent.
// Concurrent first loads are not deduplicated; both may write the default
// document, which the merge-free overwrite keeps idempotent.
func (s *Store) Load(ctx context.Context) (models.Profile, error) {
	fields, err := s.docs.Get(ctx, Collection, s.studentID)
	switch {
	case errors.Is(err, common.ErrNotFound):
		def := models.DefaultProfile()
		if err := s.docs.Set(ctx, Collection, s.studentID, def.Fields(), false); err != nil {
			return models.Profile{}, fmt.Errorf("initializing profile: %w", err)
		}
		s.log.Info(ctx, "profile initialized with defaults", "student", s.studentID)
		s.setCache(def)
		return def, nil

	case err != nil:
		return models.Profile{}, fmt.Errorf("loading profile: %w", err)
	}

	p, err := models.ProfileFromFields(fields)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: decoding profile: %v", common.ErrPersistence, err)
	}
	s.setCache(p)
	return p, nil
}

// Save merge-writes only the given fields, then overlays them onto the
// cache. The cache is untouched when the write fails.
func (s *Store) Save(ctx context.Context, fields map[string]any) error {
	if err := s.docs.Set(ctx, Collection, s.studentID, fields, true); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	merged := s.cached.Fields()
	for k, v := range fields {
		merged[k] = v
	}
	if p, err := models.ProfileFromFields(merged); err == nil {
		s.cached = p
		s.loaded = true
	}
	return nil
}

// SetToggle writes one notification switch immediately. Each flip is its
// own durable merge-write.
func (s *Store) SetToggle(ctx context.Context, field string, value bool) error {
	return s.Save(ctx, map[string]any{field: value})
}

// Cached returns the last successfully loaded or saved profile.
func (s *Store) Cached() (models.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cached, s.loaded
}

func (s *Store) setCache(p models.Profile) {
	s.mu.Lock()
	s.cached = p
	s.loaded = true
	s.mu.Unlock()
}
