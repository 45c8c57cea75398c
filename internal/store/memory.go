// Package store holds recently analyzed batches in memory so later queries
// can re-serve them without re-upload. Nothing here is durable.
package store

import (
	"sync"

	"github.com/sells-group/cohort-intel/internal/model"
)

// defaultCapacity bounds how many named batches are retained.
const defaultCapacity = 16

// BatchStore remembers uploaded batches and their analyses by name.
// Writes are last-write-wins; capacity eviction drops the oldest batch.
type BatchStore interface {
	Put(name string, companies []model.CompanyRecord, analysis *model.BatchAnalysis)
	Get(name string) ([]model.CompanyRecord, *model.BatchAnalysis, bool)
	Latest() (string, []model.CompanyRecord, *model.BatchAnalysis, bool)
}

type entry struct {
	companies []model.CompanyRecord
	analysis  *model.BatchAnalysis
}

// MemoryStore is a capacity-bounded in-memory BatchStore, safe for
// concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	capacity int
	order    []string // insertion order, oldest first
	batches  map[string]entry
	latest   string
}

// NewMemoryStore creates a store retaining at most capacity batches.
// Non-positive capacity uses the default.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &MemoryStore{
		capacity: capacity,
		batches:  make(map[string]entry),
	}
}

// Put stores a batch under name, replacing any previous batch of that name.
func (s *MemoryStore) Put(name string, companies []model.CompanyRecord, analysis *model.BatchAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.batches[name]; exists {
		s.removeFromOrder(name)
	}
	s.batches[name] = entry{companies: companies, analysis: analysis}
	s.order = append(s.order, name)
	s.latest = name

	for len(s.order) > s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.batches, oldest)
	}
}

// Get returns the batch stored under name.
func (s *MemoryStore) Get(name string) ([]model.CompanyRecord, *model.BatchAnalysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.batches[name]
	if !ok {
		return nil, nil, false
	}
	return e.companies, e.analysis, true
}

// Latest returns the most recently written batch.
func (s *MemoryStore) Latest() (string, []model.CompanyRecord, *model.BatchAnalysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.batches[s.latest]
	if !ok {
		return "", nil, nil, false
	}
	return s.latest, e.companies, e.analysis, true
}

func (s *MemoryStore) removeFromOrder(name string) {
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
