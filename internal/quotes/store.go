package quotes

import (
	"sync"
	"time"

	"crypto_dash/internal/domain"
)

// Store holds the latest snapshot of market records.
// Every Replace swaps in a new generation; records are never merged.
type Store struct {
	mu      sync.RWMutex
	records map[string]domain.MarketRecord
	at      time.Time
	gen     uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{records: make(map[string]domain.MarketRecord)}
}

// Replace indexes records by id and makes them the current snapshot.
func (s *Store) Replace(records []domain.MarketRecord, at time.Time) uint64 {
	next := make(map[string]domain.MarketRecord, len(records))
	for _, r := range records {
		next[r.ID] = r
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = next
	s.at = at
	s.gen++
	return s.gen
}

// Get returns the record for id from the current snapshot.
func (s *Store) Get(id string) (domain.MarketRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	return r, ok
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make(map[string]domain.MarketRecord, len(s.records))
	for k, v := range s.records {
		records[k] = v
	}
	return domain.Snapshot{Records: records, FetchedAt: s.at, Generation: s.gen}
}

// Generation is the number of successful replaces so far.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}
