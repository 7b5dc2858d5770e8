package market

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venatus57/autoanalyseur/internal/history"
	"github.com/venatus57/autoanalyseur/internal/model"
)

func testEngine(h HistoryReader) *Engine {
	e := New(h)
	e.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return e
}

func TestEstimateReferencedVehicle(t *testing.T) {
	e := testEngine(nil)

	listing := model.Listing{
		Make:          "Renault",
		Model:         "Clio",
		Year:          2016,
		MileageKm:     96000, // exactly the expected mileage for age 8
		EngineVariant: "1.2 TCe 120",
	}

	est := e.Estimate(context.Background(), listing)
	require.True(t, est.Found)
	assert.Equal(t, SourceMarketTable, est.Source)
	assert.Equal(t, ConfidenceHigh, est.Confidence)
	assert.Equal(t, 20000, est.NewPriceEUR)
	assert.InDelta(t, 0.13, est.AnnualDepreciation, 1e-9)
	assert.Equal(t, 8, est.AgeYears)
	assert.Equal(t, 96000, est.ExpectedKm)
	assert.InDelta(t, 0, est.MileageDeviation, 1e-9)
	// 20000 compounded down 13% over 8 years
	assert.Equal(t, 6564, est.PriceEUR)
}

func TestEstimateMileageAdjustmentClamped(t *testing.T) {
	e := testEngine(nil)

	listing := model.Listing{
		Make:          "renault",
		Model:         "clio",
		Year:          2016,
		MileageKm:     480000,
		EngineVariant: "1.2 TCe 120",
	}

	est := e.Estimate(context.Background(), listing)
	require.True(t, est.Found)
	// Deviation of +4 would push the adjustment to 0.52; it clamps at 0.7.
	assert.Equal(t, 4595, est.PriceEUR)
}

func TestEstimateVariantFallbackAverages(t *testing.T) {
	e := testEngine(nil)

	listing := model.Listing{
		Make:  "renault",
		Model: "clio",
		Year:  2016,
	}

	est := e.Estimate(context.Background(), listing)
	require.True(t, est.Found)
	// Average over the three generation-4 variants, rounded.
	assert.Equal(t, 26667, est.NewPriceEUR)
	assert.True(t, est.Collector, "averaging picks up the collector flag")
}

func TestEstimateCollectorAppreciates(t *testing.T) {
	e := testEngine(nil)

	listing := model.Listing{
		Make:  "nissan",
		Model: "skyline",
		Year:  2000,
	}

	est := e.Estimate(context.Background(), listing)
	require.True(t, est.Found)
	assert.True(t, est.Collector)
	assert.Negative(t, est.AnnualDepreciation)
	assert.Greater(t, est.PriceEUR, est.NewPriceEUR)
}

func TestEstimateFallsBackToHistory(t *testing.T) {
	ctx := context.Background()
	store := history.NewMemoryStore()
	for _, price := range []int{9000, 11000} {
		_, err := store.Save(ctx, model.HistoricalListing{
			Make: "lada", Model: "niva", Year: 2015, MileageKm: price * 10, PriceEUR: price,
		})
		require.NoError(t, err)
	}

	e := testEngine(store)
	est := e.Estimate(ctx, model.Listing{Make: "lada", Model: "niva", Year: 2015})
	require.True(t, est.Found)
	assert.Equal(t, SourceSimilarListings, est.Source)
	assert.Equal(t, ConfidenceMedium, est.Confidence)
	assert.Equal(t, 10000, est.PriceEUR)
	require.NotNil(t, est.HistoryStats)
	assert.Equal(t, 2, est.HistoryStats.Count)
}

func TestEstimateSingleSampleFallsThrough(t *testing.T) {
	ctx := context.Background()
	store := history.NewMemoryStore()
	_, err := store.Save(ctx, model.HistoricalListing{
		Make: "lada", Model: "niva", Year: 2015, MileageKm: 90000, PriceEUR: 9000,
	})
	require.NoError(t, err)

	e := testEngine(store)
	est := e.Estimate(ctx, model.Listing{Make: "lada", Model: "niva", Year: 2015})
	assert.False(t, est.Found)
	assert.Equal(t, SourceGenericCurve, est.Source)
}

func TestGenericEstimate(t *testing.T) {
	e := testEngine(nil)

	est := e.Estimate(context.Background(), model.Listing{
		Make: "lada", Model: "niva", Year: 1992, MileageKm: 400000,
	})
	assert.False(t, est.Found)
	assert.Equal(t, SourceGenericCurve, est.Source)
	assert.Equal(t, ConfidenceLow, est.Confidence)
	assert.NotEmpty(t, est.Message)
	// The curve bottoms out at 2000 for very old vehicles.
	assert.Equal(t, 2000, est.PriceEUR)
}

func TestPredictResaleVerdicts(t *testing.T) {
	e := testEngine(nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		listing model.Listing
		verdict string
	}{
		{
			name:    "steep depreciation",
			listing: model.Listing{Make: "renault", Model: "clio", Year: 2016, EngineVariant: "1.2 TCe 120"},
			verdict: ResaleSteepDecline,
		},
		{
			name:    "stable hot hatch",
			listing: model.Listing{Make: "renault", Model: "megane", Year: 2018, EngineVariant: "1.8 RS 280"},
			verdict: ResaleStable,
		},
		{
			name:    "very stable collector",
			listing: model.Listing{Make: "toyota", Model: "yaris", Year: 2021, EngineVariant: "1.6 GR 261"},
			verdict: ResaleVeryStable,
		},
		{
			name:    "appreciating classic",
			listing: model.Listing{Make: "nissan", Model: "skyline", Year: 2000},
			verdict: ResaleAppreciating,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred := e.PredictResale(ctx, tt.listing, 3)
			require.True(t, pred.Analyzable)
			assert.Equal(t, tt.verdict, pred.Verdict)
			assert.Equal(t, 3, pred.Years)
		})
	}
}

func TestPredictResaleDefaultRate(t *testing.T) {
	ctx := context.Background()
	store := history.NewMemoryStore()
	for _, price := range []int{9000, 11000} {
		_, err := store.Save(ctx, model.HistoricalListing{
			Make: "lada", Model: "niva", Year: 2015, MileageKm: price * 10, PriceEUR: price,
		})
		require.NoError(t, err)
	}

	e := testEngine(store)
	pred := e.PredictResale(ctx, model.Listing{Make: "lada", Model: "niva", Year: 2015}, 0)
	require.True(t, pred.Analyzable)
	// Years default to 3, rate to the standard 10% when the estimate
	// carries none.
	assert.Equal(t, 3, pred.Years)
	assert.InDelta(t, 0.10, pred.AnnualDepreciation, 1e-9)
	assert.Equal(t, ResaleNormal, pred.Verdict)
}

func TestPredictResaleUnreferenced(t *testing.T) {
	e := testEngine(nil)

	pred := e.PredictResale(context.Background(), model.Listing{Make: "lada", Model: "niva", Year: 2015}, 3)
	assert.False(t, pred.Analyzable)
	assert.NotEmpty(t, pred.Message)
}
