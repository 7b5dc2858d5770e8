package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venatus57/autoanalyseur/internal/model"
)

func testListing(mk, mdl string, year, km, price int) model.HistoricalListing {
	return model.HistoricalListing{
		Make:      mk,
		Model:     mdl,
		Year:      year,
		MileageKm: km,
		PriceEUR:  price,
	}
}

func TestMemoryStoreSave(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		listing model.HistoricalListing
		saved   bool
	}{
		{
			name:    "complete listing",
			listing: testListing("Renault", "Clio", 2018, 80000, 9500),
			saved:   true,
		},
		{
			name:    "missing make",
			listing: testListing("", "Clio", 2018, 80000, 9500),
			saved:   false,
		},
		{
			name:    "missing price",
			listing: testListing("Renault", "Clio", 2018, 80000, 0),
			saved:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			saved, err := store.Save(ctx, tt.listing)
			require.NoError(t, err)
			assert.Equal(t, tt.saved, saved)
		})
	}
}

func TestMemoryStoreSaveDeduplicates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	saved, err := store.Save(ctx, testListing("Renault", "Clio", 2018, 80000, 9500))
	require.NoError(t, err)
	require.True(t, saved)

	// Exact duplicate on all five fields, case differences included.
	saved, err = store.Save(ctx, testListing("RENAULT", "clio", 2018, 80000, 9500))
	require.NoError(t, err)
	assert.False(t, saved)

	// A single differing field is a distinct listing.
	saved, err = store.Save(ctx, testListing("Renault", "Clio", 2018, 80001, 9500))
	require.NoError(t, err)
	assert.True(t, saved)

	entries, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestMemoryStoreEvictsOldest(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for i := 0; i < MaxEntries+10; i++ {
		saved, err := store.Save(ctx, testListing("Renault", "Clio", 2018, 10000+i, 5000+i))
		require.NoError(t, err)
		require.True(t, saved)
	}

	entries, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, MaxEntries)
	// The ten oldest entries were evicted.
	assert.Equal(t, 10010, entries[0].MileageKm)
}

func TestMemoryStoreNormalizesEntries(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	listing := testListing("Renault", "Clio", 2018, 80000, 9500)
	listing.Description = string(long)

	saved, err := store.Save(ctx, listing)
	require.NoError(t, err)
	require.True(t, saved)

	entries, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "renault", entries[0].Make)
	assert.Equal(t, "clio", entries[0].Model)
	assert.Len(t, entries[0].Description, 200)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].SavedAt.IsZero())
}

func TestMemoryStoreFindSimilar(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	seed := []model.HistoricalListing{
		testListing("renault", "clio", 2018, 80000, 9500),
		testListing("renault", "clio 4", 2017, 90000, 8900),
		testListing("renault", "clio", 2013, 120000, 6500),
		testListing("renault", "megane", 2018, 80000, 11000),
		testListing("peugeot", "208", 2018, 80000, 10500),
	}
	for _, l := range seed {
		_, err := store.Save(ctx, l)
		require.NoError(t, err)
	}

	tests := []struct {
		name  string
		make  string
		model string
		year  int
		want  int
	}{
		{name: "containment and year window", make: "renault", model: "clio", year: 2018, want: 2},
		{name: "zero year matches all years", make: "renault", model: "clio", year: 0, want: 3},
		{name: "near-identical model name", make: "renault", model: "clip", year: 0, want: 2},
		{name: "different make", make: "peugeot", model: "208", year: 2018, want: 1},
		{name: "no match", make: "fiat", model: "500", year: 2018, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := store.FindSimilar(ctx, tt.make, tt.model, tt.year)
			require.NoError(t, err)
			assert.Len(t, matches, tt.want)
		})
	}
}

func TestMemoryStoreAveragePrice(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Save(ctx, testListing("renault", "clio", 2018, 80000, 9000))
	require.NoError(t, err)
	_, err = store.Save(ctx, testListing("renault", "clio", 2019, 60000, 11000))
	require.NoError(t, err)

	stats, err := store.AveragePrice(ctx, "renault", "clio", 2018)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 10000, stats.Mean)
	assert.Equal(t, 9000, stats.Min)
	assert.Equal(t, 11000, stats.Max)

	stats, err = store.AveragePrice(ctx, "fiat", "500", 0)
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestMemoryStoreStats(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for i := 0; i < 3; i++ {
		_, err := store.Save(ctx, testListing("renault", fmt.Sprintf("model%d", i), 2018, 1000*i+1, 5000+i))
		require.NoError(t, err)
	}
	_, err := store.Save(ctx, testListing("peugeot", "208", 2018, 80000, 10500))
	require.NoError(t, err)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.DistinctMakes)
	require.NotEmpty(t, stats.TopMakes)
	assert.Equal(t, "renault", stats.TopMakes[0].Make)
	assert.Equal(t, 3, stats.TopMakes[0].Count)
}

func TestMemoryStoreReplaceAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Save(ctx, testListing("renault", "clio", 2018, 80000, 9500))
	require.NoError(t, err)

	err = store.Replace(ctx, []model.HistoricalListing{
		testListing("Peugeot", "208", 2019, 50000, 12000),
		testListing("Toyota", "Yaris", 2020, 30000, 15000),
	})
	require.NoError(t, err)

	entries, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "peugeot", entries[0].Make)

	require.NoError(t, store.Clear(ctx))
	entries, err = store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestValidateContext(t *testing.T) {
	store := NewMemoryStore()
	//nolint:staticcheck // nil context is the case under test
	_, err := store.Save(nil, testListing("renault", "clio", 2018, 80000, 9500))
	assert.ErrorIs(t, err, ErrNilContext)
}
