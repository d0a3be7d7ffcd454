package store

import (
	"sync"

	"github.com/festroi/festroi/internal/models"
)

// MemoryStore holds the current record set. Loads replace the whole set;
// derived state is recomputed from a snapshot on every read, so there is no
// incremental update path to keep consistent.
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Replace swaps in a new record set and returns its size.
func (s *MemoryStore) Replace(records []models.Record) int {
	cp := make([]models.Record, len(records))
	copy(cp, records)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = cp
	return len(cp)
}

// All returns a snapshot copy of the record set.
func (s *MemoryStore) All() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
