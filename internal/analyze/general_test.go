package analyze

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venatus57/autoanalyseur/internal/market"
	"github.com/venatus57/autoanalyseur/internal/model"
)

func testAnalyzer() *GeneralAnalyzer {
	g := NewGeneralAnalyzer(market.New(nil))
	g.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return g
}

func TestRatePrice(t *testing.T) {
	tests := []struct {
		name      string
		asking    int
		estimated int
		verdict   string
		score     int
	}{
		{name: "very low", asking: 69, estimated: 100, verdict: PriceVeryLow, score: -30},
		{name: "low boundary", asking: 70, estimated: 100, verdict: PriceLow, score: -10},
		{name: "normal lower edge", asking: 85, estimated: 100, verdict: PriceNormal, score: 0},
		{name: "normal upper edge", asking: 115, estimated: 100, verdict: PriceNormal, score: 0},
		{name: "high", asking: 120, estimated: 100, verdict: PriceHigh, score: -5},
		{name: "very high", asking: 131, estimated: 100, verdict: PriceVeryHigh, score: -15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pa := ratePrice(tt.asking, tt.estimated)
			require.True(t, pa.Analyzable)
			assert.Equal(t, tt.verdict, pa.Verdict)
			assert.Equal(t, tt.score, pa.Score)
		})
	}
}

func TestRatePriceVeryLowHypotheses(t *testing.T) {
	pa := ratePrice(5000, 10000)
	assert.Equal(t, PriceVeryLow, pa.Verdict)
	assert.NotEmpty(t, pa.Warning)
	assert.Len(t, pa.Hypotheses, 5)
	assert.Equal(t, -50, pa.GapPercent)
}

func TestAssessPriceSources(t *testing.T) {
	g := testAnalyzer()
	ctx := context.Background()

	t.Run("missing price", func(t *testing.T) {
		pa := g.assessPrice(ctx, model.Listing{Year: 2016})
		assert.False(t, pa.Analyzable)
		assert.Equal(t, "Prix non renseigné.", pa.Message)
	})

	t.Run("manual reference wins", func(t *testing.T) {
		pa := g.assessPrice(ctx, model.Listing{
			Make: "renault", Model: "clio", Year: 2016,
			PriceEUR: 10000, ReferencePrice: 10000,
		})
		assert.Equal(t, "manuel", pa.Source)
		assert.Equal(t, PriceNormal, pa.Verdict)
	})

	t.Run("market estimate", func(t *testing.T) {
		pa := g.assessPrice(ctx, model.Listing{
			Make: "renault", Model: "clio", Year: 2016, PriceEUR: 8000,
		})
		require.NotNil(t, pa.Estimate)
		assert.True(t, pa.Estimate.Found)
		assert.Contains(t, pa.Message, "Estimation:")
	})

	t.Run("basic curve fallback", func(t *testing.T) {
		pa := g.assessPrice(ctx, model.Listing{Year: 2014, PriceEUR: 5000})
		require.True(t, pa.Analyzable)
		assert.Equal(t, "estimation_basique", pa.Source)
		// 25000 depreciated 12% per year over 10 years is about 6963.
		assert.Equal(t, PriceLow, pa.Verdict)
	})

	t.Run("no identity no year", func(t *testing.T) {
		pa := g.assessPrice(ctx, model.Listing{PriceEUR: 5000})
		assert.False(t, pa.Analyzable)
		assert.Contains(t, pa.Message, "Renseignez la marque")
	})
}

func TestAssessMileage(t *testing.T) {
	g := testAnalyzer()

	tests := []struct {
		name    string
		year    int
		km      int
		verdict string
		score   int
	}{
		{name: "suspiciously low", year: 2014, km: 20000, verdict: MileageSuspectLow, score: -20},
		{name: "low", year: 2014, km: 50000, verdict: MileageLow, score: -5},
		{name: "normal", year: 2014, km: 150000, verdict: MileageNormal, score: 0},
		{name: "high", year: 2014, km: 400000, verdict: MileageHigh, score: -10},
		{name: "suspiciously high", year: 2014, km: 600000, verdict: MileageSuspectHigh, score: -25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ma := g.assessMileage(model.Listing{Year: tt.year, MileageKm: tt.km})
			require.True(t, ma.Analyzable)
			assert.Equal(t, tt.verdict, ma.Verdict)
			assert.Equal(t, tt.score, ma.Score)
		})
	}

	t.Run("missing mileage", func(t *testing.T) {
		ma := g.assessMileage(model.Listing{Year: 2014})
		assert.False(t, ma.Analyzable)
		assert.Equal(t, -5, ma.Score)
	})

	t.Run("brand new vehicle", func(t *testing.T) {
		ma := g.assessMileage(model.Listing{Year: 2024, MileageKm: 500})
		require.True(t, ma.Analyzable)
		assert.Equal(t, MileageNormal, ma.Verdict)
		assert.Equal(t, "Véhicule neuf ou récent", ma.Message)
		assert.Zero(t, ma.Score)
	})
}

func TestAssessDescription(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		da := assessDescription("   ")
		assert.Equal(t, DescriptionMissing, da.Quality)
		assert.Equal(t, -20, da.Score)
		require.Len(t, da.Alerts, 1)
		assert.Equal(t, model.SeverityHigh, da.Alerts[0].Severity)
	})

	t.Run("urgent red flag", func(t *testing.T) {
		da := assessDescription("Urgent cause départ")
		assert.Equal(t, DescriptionVeryBrief, da.Quality)
		// urgent -10, length -10, the sale-reason flag scores 0.
		assert.Equal(t, -20, da.Score)
		assert.Len(t, da.Alerts, 3)
	})

	t.Run("early clutch replacement", func(t *testing.T) {
		da := assessDescription("Très belle auto, embrayage changé à 60 000 km, entretien suivi, pneus montés récemment pour rouler tranquille.")
		assert.Equal(t, -20, da.Score)

		var found bool
		for _, a := range da.Alerts {
			if a.Severity == model.SeverityHigh {
				assert.Contains(t, a.Message, "ANORMALEMENT TÔT")
				found = true
			}
		}
		assert.True(t, found, "expected a clutch alert")
	})

	t.Run("track use and tuning vocabulary", func(t *testing.T) {
		da := assessDescription("Golf utilisée sur circuit, stage 2, embrayage renforcé sachs")
		// circuit -20, stage -15, reinforced parts -10, brief -5.
		assert.Equal(t, -50, da.Score)
		assert.Len(t, da.Alerts, 4)
	})

	t.Run("clutch changed at normal mileage", func(t *testing.T) {
		da := assessDescription("Entretien complet, embrayage changé à 180 000 km par le concessionnaire.")
		for _, a := range da.Alerts {
			assert.NotContains(t, a.Message, "ANORMALEMENT")
		}
	})
}

func TestAssessUrgency(t *testing.T) {
	tests := []struct {
		name        string
		description string
		level       string
		score       int
	}{
		{name: "calm", description: "Belle voiture bien entretenue", level: UrgencyNormal, score: 0},
		{name: "light", description: "vends pour déménagement prochain", level: UrgencyLight, score: -6},
		{name: "moderate", description: "déménagement, première qui vient la prend", level: UrgencyModerate, score: -12},
		{name: "high", description: "URGENT je dois vendre vite avant de partir à l'étranger", level: UrgencyHigh, score: -24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ua := assessUrgency(tt.description)
			assert.Equal(t, tt.level, ua.Level)
			assert.Equal(t, tt.score, ua.Score)
		})
	}
}

func TestAssessReliability(t *testing.T) {
	t.Run("problematic engine", func(t *testing.T) {
		ra := assessReliability(model.Listing{Make: "renault", Model: "Clio 4", EngineVariant: "1.2 TCe 120"})
		require.True(t, ra.Analyzable)
		require.NotNil(t, ra.EngineAlert)
		assert.Equal(t, -10, ra.Score)
		assert.Contains(t, ra.EngineAlert.Message, "1.2 TCe")
	})

	t.Run("reliable engine", func(t *testing.T) {
		ra := assessReliability(model.Listing{Make: "renault", Model: "clio", EngineVariant: "1.5 dCi"})
		require.True(t, ra.Analyzable)
		assert.Nil(t, ra.EngineAlert)
		assert.Zero(t, ra.Score)
	})

	t.Run("unreferenced model", func(t *testing.T) {
		ra := assessReliability(model.Listing{Make: "lada", Model: "niva"})
		assert.False(t, ra.Analyzable)
		assert.NotEmpty(t, ra.Advice)
	})

	t.Run("missing identity", func(t *testing.T) {
		ra := assessReliability(model.Listing{})
		assert.False(t, ra.Analyzable)
	})
}

func TestAnalyzeCollectsAlerts(t *testing.T) {
	g := testAnalyzer()

	// No price, suspiciously low mileage, no description.
	result := g.Analyze(context.Background(), model.Listing{Year: 2014, MileageKm: 20000})

	assert.Equal(t, 60, result.Score)
	require.Len(t, result.Alerts, 2)
	assert.Equal(t, "kilometrage", result.Alerts[0].Source)
	assert.Equal(t, model.SeverityHigh, result.Alerts[0].Severity)
	assert.Equal(t, "description", result.Alerts[1].Source)
}
