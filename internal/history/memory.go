package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/venatus57/autoanalyseur/internal/model"
)

// MemoryStore is an in-memory Store for tests and ephemeral runs.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []model.HistoricalListing
}

// NewMemoryStore creates an empty in-memory history.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save persists a listing with the same skip and eviction rules as the
// SQLite store.
func (s *MemoryStore) Save(ctx context.Context, listing model.HistoricalListing) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}

	entry := normalizeEntry(listing)
	if entry.Make == "" || entry.PriceEUR <= 0 {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.SameVehicle(entry) {
			return false, nil
		}
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.SavedAt.IsZero() {
		entry.SavedAt = time.Now().UTC()
	}

	s.entries = append(s.entries, entry)
	if len(s.entries) > MaxEntries {
		s.entries = s.entries[len(s.entries)-MaxEntries:]
	}
	return true, nil
}

// FindSimilar returns stored listings for the same vehicle family.
func (s *MemoryStore) FindSimilar(ctx context.Context, make, mdl string, year int) ([]model.HistoricalListing, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []model.HistoricalListing
	for _, e := range s.entries {
		if matchesSimilar(e, make, mdl, year) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// AveragePrice aggregates prices over similar listings.
func (s *MemoryStore) AveragePrice(ctx context.Context, make, mdl string, year int) (*PriceStats, error) {
	matches, err := s.FindSimilar(ctx, make, mdl, year)
	if err != nil {
		return nil, err
	}
	return priceStats(matches), nil
}

// All returns every stored listing, oldest first.
func (s *MemoryStore) All(ctx context.Context) ([]model.HistoricalListing, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.HistoricalListing, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Replace swaps the whole history for the given entries.
func (s *MemoryStore) Replace(ctx context.Context, listings []model.HistoricalListing) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = s.entries[:0]
	for _, l := range listings {
		entry := normalizeEntry(l)
		if entry.ID == "" {
			entry.ID = uuid.New().String()
		}
		if entry.SavedAt.IsZero() {
			entry.SavedAt = time.Now().UTC()
		}
		s.entries = append(s.entries, entry)
	}
	return nil
}

// Stats summarizes the stored history.
func (s *MemoryStore) Stats(ctx context.Context) (Stats, error) {
	entries, err := s.All(ctx)
	if err != nil {
		return Stats{}, err
	}
	return computeStats(entries), nil
}

// Clear removes every entry.
func (s *MemoryStore) Clear(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }
