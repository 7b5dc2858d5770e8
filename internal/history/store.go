// Package history persists previously analyzed listings and answers
// similarity queries used for crowd-sourced price estimation.
package history

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/venatus57/autoanalyseur/internal/model"
)

// MaxEntries bounds the history; the oldest entry is evicted first.
const MaxEntries = 500

// descriptionLimit is the stored-description truncation length.
const descriptionLimit = 200

// PriceStats summarizes the asking prices of similar stored listings.
type PriceStats struct {
	Mean  int `json:"mean"`
	Count int `json:"count"`
	Min   int `json:"min"`
	Max   int `json:"max"`
}

// MakeCount pairs a make with how many stored listings it has.
type MakeCount struct {
	Make  string `json:"make"`
	Count int    `json:"count"`
}

// Stats describes the stored history as a whole.
type Stats struct {
	TopMakes      []MakeCount `json:"topMakes"`
	Total         int         `json:"total"`
	DistinctMakes int         `json:"distinctMakes"`
}

// Store is the listing history persistence interface.
type Store interface {
	// Save persists a listing. It reports false without error when the
	// entry is skipped: missing make or price, or an exact duplicate on
	// (make, model, year, price, mileage).
	Save(ctx context.Context, listing model.HistoricalListing) (bool, error)
	// FindSimilar returns stored listings matching make and model by
	// bidirectional containment (or near-identical model names), with
	// year within ±2 when year is set.
	FindSimilar(ctx context.Context, make, mdl string, year int) ([]model.HistoricalListing, error)
	// AveragePrice aggregates the prices of similar listings; nil when
	// nothing matches.
	AveragePrice(ctx context.Context, make, mdl string, year int) (*PriceStats, error)
	// All returns every stored listing, oldest first.
	All(ctx context.Context) ([]model.HistoricalListing, error)
	// Replace swaps the whole history for the given entries.
	Replace(ctx context.Context, listings []model.HistoricalListing) error
	// Stats summarizes the stored history.
	Stats(ctx context.Context) (Stats, error)
	// Clear removes every entry.
	Clear(ctx context.Context) error
	Close() error
}

// normalizeEntry applies the storage canonical form: lowercased make and
// model, truncated description.
func normalizeEntry(l model.HistoricalListing) model.HistoricalListing {
	l.Make = strings.ToLower(strings.TrimSpace(l.Make))
	l.Model = strings.ToLower(strings.TrimSpace(l.Model))
	if len(l.Description) > descriptionLimit {
		l.Description = l.Description[:descriptionLimit]
	}
	return l
}

// matchesSimilar implements the similarity predicate shared by both
// store implementations.
func matchesSimilar(entry model.HistoricalListing, make, mdl string, year int) bool {
	makeNorm := strings.ToLower(strings.TrimSpace(make))
	modelNorm := strings.ToLower(strings.TrimSpace(mdl))

	makeMatch := contains(entry.Make, makeNorm)
	modelMatch := contains(entry.Model, modelNorm) ||
		(modelNorm != "" && entry.Model != "" && levenshtein.ComputeDistance(entry.Model, modelNorm) <= 1)
	yearMatch := year == 0 || abs(entry.Year-year) <= 2

	return makeMatch && modelMatch && yearMatch
}

func contains(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func priceStats(matches []model.HistoricalListing) *PriceStats {
	if len(matches) == 0 {
		return nil
	}
	stats := &PriceStats{Count: len(matches), Min: matches[0].PriceEUR, Max: matches[0].PriceEUR}
	total := 0
	for _, m := range matches {
		total += m.PriceEUR
		if m.PriceEUR < stats.Min {
			stats.Min = m.PriceEUR
		}
		if m.PriceEUR > stats.Max {
			stats.Max = m.PriceEUR
		}
	}
	stats.Mean = int(float64(total)/float64(len(matches)) + 0.5)
	return stats
}

func computeStats(entries []model.HistoricalListing) Stats {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Make]++
	}
	stats := Stats{Total: len(entries), DistinctMakes: len(counts)}
	for mk, c := range counts {
		stats.TopMakes = append(stats.TopMakes, MakeCount{Make: mk, Count: c})
	}
	sort.Slice(stats.TopMakes, func(i, j int) bool {
		if stats.TopMakes[i].Count != stats.TopMakes[j].Count {
			return stats.TopMakes[i].Count > stats.TopMakes[j].Count
		}
		return stats.TopMakes[i].Make < stats.TopMakes[j].Make
	})
	if len(stats.TopMakes) > 5 {
		stats.TopMakes = stats.TopMakes[:5]
	}
	return stats
}
