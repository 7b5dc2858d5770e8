package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venatus57/autoanalyseur/internal/common"
	"github.com/venatus57/autoanalyseur/internal/history"
	"github.com/venatus57/autoanalyseur/internal/model"
)

func TestEngineAnalyzeCleanListing(t *testing.T) {
	ctx := context.Background()
	store := history.NewMemoryStore()
	engine := NewEngine(store)

	req := Request{
		Listing: model.Listing{
			Make:           "Toyota",
			Model:          "Yaris",
			Year:           2016,
			MileageKm:      200000,
			PriceEUR:       8000,
			ReferencePrice: 8000,
			EngineVariant:  "1.5 Hybrid",
			Description: "Toyota Yaris hybride entretenue chez le concessionnaire, carnet à jour, " +
				"factures disponibles, deux pneus neufs, non fumeur, contrôle technique effectué " +
				"récemment, aucune réparation prévue, véhicule propre et suivi régulièrement.",
		},
	}

	report, err := engine.Analyze(ctx, req)
	require.NoError(t, err)

	assert.True(t, report.Modifications.Stock)
	assert.Empty(t, report.General.Alerts)
	assert.Equal(t, 100, report.Score.Global)
	assert.Equal(t, ScoreExcellent, report.Score.Tier)
	assert.Nil(t, report.Score.Warning)
	assert.NotNil(t, report.Resale)
	assert.True(t, report.Saved)

	// Re-analyzing the same listing hits the history deduplication.
	report, err = engine.Analyze(ctx, req)
	require.NoError(t, err)
	assert.False(t, report.Saved)
}

func TestEngineAnalyzeExtractsFromRawText(t *testing.T) {
	engine := NewEngine(nil)

	report, err := engine.Analyze(context.Background(), Request{
		RawText: "Volkswagen Golf 7 GTI de 2015, 120 000 km, 18 500 €. Stage 2 avec gros turbo et décata, embrayage renforcé.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Volkswagen", report.Listing.Make)
	assert.Equal(t, 2015, report.Listing.Year)
	assert.Equal(t, 120000, report.Listing.MileageKm)
	assert.Equal(t, 18500, report.Listing.PriceEUR)
	// Raw text doubles as the description when none was given.
	assert.NotEmpty(t, report.Listing.Description)

	assert.Equal(t, 4, report.Modifications.Count)
	assert.Len(t, report.Modifications.Combinations, 2)
	assert.Equal(t, TierCritical, report.Modifications.Summary.Tier)

	assert.Less(t, report.Score.Global, 30)
	assert.Equal(t, ScoreCritical, report.Score.Tier)
	require.NotNil(t, report.Score.Warning)
	assert.Contains(t, report.Score.Warning.Reasons, "Combinaisons à risque")

	// No store wired, nothing persisted.
	assert.False(t, report.Saved)
}

func TestEngineAnalyzeStructuredFieldsWin(t *testing.T) {
	engine := NewEngine(nil)

	report, err := engine.Analyze(context.Background(), Request{
		Listing: model.Listing{Make: "Renault", Model: "Clio", Year: 2018},
		RawText: "Renault Clio de 2015, 90 000 km",
	})
	require.NoError(t, err)

	assert.Equal(t, 2018, report.Listing.Year)
	assert.Equal(t, 90000, report.Listing.MileageKm)
}

func TestEngineAnalyzeSkipHistory(t *testing.T) {
	ctx := context.Background()
	store := history.NewMemoryStore()
	engine := NewEngine(store)

	report, err := engine.Analyze(ctx, Request{
		Listing:     model.Listing{Make: "Renault", Model: "Clio", Year: 2018, PriceEUR: 9500},
		SkipHistory: true,
	})
	require.NoError(t, err)
	assert.False(t, report.Saved)

	entries, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEngineAnalyzeEmptyInput(t *testing.T) {
	engine := NewEngine(nil)

	_, err := engine.Analyze(context.Background(), Request{})
	assert.ErrorIs(t, err, common.ErrNoInput)
}
