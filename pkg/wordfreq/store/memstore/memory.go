package memstore

import (
	"context"
	"sync"

	"github.com/cognicore/wordfreq/pkg/wordfreq/aggregate"
	"github.com/cognicore/wordfreq/pkg/wordfreq/pos"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu    sync.RWMutex
	order []string // run IDs, most recent first
	runs  map[string][]aggregate.Word
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{runs: make(map[string][]aggregate.Word)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRun replaces the snapshot for runID.
func (s *Store) SaveRun(ctx context.Context, runID string, words []aggregate.Word) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[runID]; !exists {
		s.order = append([]string{runID}, s.order...)
	}
	copied := make([]aggregate.Word, len(words))
	for i, w := range words {
		copied[i] = aggregate.Word{Word: w.Word, Freq: w.Freq, Tags: w.Tags.Clone()}
	}
	s.runs[runID] = copied
	return nil
}

// Runs lists stored run IDs, most recent first.
func (s *Store) Runs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...), nil
}

// TopWords returns up to limit words of a run in rank order.
func (s *Store) TopWords(ctx context.Context, runID string, limit int) ([]aggregate.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	words := s.runs[runID]
	if len(words) > limit {
		words = words[:limit]
	}
	out := make([]aggregate.Word, len(words))
	for i, w := range words {
		out[i] = aggregate.Word{Word: w.Word, Freq: w.Freq, Tags: w.Tags.Clone()}
	}
	return out, nil
}

// TagCounts returns per-tag word counts for a run.
func (s *Store) TagCounts(ctx context.Context, runID string) (map[pos.Tag]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[pos.Tag]int)
	for _, w := range s.runs[runID] {
		for t := range w.Tags {
			counts[t]++
		}
	}
	return counts, nil
}
