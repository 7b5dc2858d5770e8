// Package market estimates used-car prices from the static reference
// tables, with crowd-sourced history and a generic depreciation curve as
// fallbacks, and projects future resale value.
package market

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/venatus57/autoanalyseur/internal/common"
	"github.com/venatus57/autoanalyseur/internal/history"
	"github.com/venatus57/autoanalyseur/internal/model"
	"github.com/venatus57/autoanalyseur/internal/refdata"
)

// Estimate sources.
const (
	SourceMarketTable     = "base_marche"
	SourceSimilarListings = "annonces_similaires"
	SourceGenericCurve    = "estimation_generique"
)

// Estimation confidence levels.
const (
	ConfidenceHigh   = "haute"
	ConfidenceMedium = "moyenne"
	ConfidenceLow    = "faible"
)

const (
	// priceFloor is the minimum estimate a referenced vehicle can get.
	priceFloor = 1500
	// resaleFloor is the minimum projected resale value.
	resaleFloor = 1000
	// mileageAdjustmentRate converts relative mileage deviation into a
	// price adjustment, clamped to [0.7, 1.3].
	mileageAdjustmentRate = 0.12
	// defaultDepreciation applies when predicting resale from an
	// estimate that carries no depreciation rate of its own.
	defaultDepreciation = 0.10
	// minSimilarListings is how many history samples the crowd-sourced
	// fallback needs before it is trusted.
	minSimilarListings = 2
)

// Estimate is a price estimation with its provenance.
type Estimate struct {
	HistoryStats       *history.PriceStats `json:"historyStats,omitempty"`
	Source             string              `json:"source"`
	Confidence         string              `json:"confidence"`
	Message            string              `json:"message,omitempty"`
	PriceEUR           int                 `json:"priceEur"`
	NewPriceEUR        int                 `json:"newPriceEur,omitempty"`
	AgeYears           int                 `json:"ageYears,omitempty"`
	ExpectedKm         int                 `json:"expectedKm,omitempty"`
	AnnualDepreciation float64             `json:"annualDepreciation,omitempty"`
	MileageDeviation   float64             `json:"mileageDeviation,omitempty"`
	Found              bool                `json:"found"`
	Collector          bool                `json:"collector,omitempty"`
	hasRate            bool
}

// Resale verdicts, ordered from best to worst.
const (
	ResaleAppreciating = "apprecie"
	ResaleVeryStable   = "tres_stable"
	ResaleStable       = "stable"
	ResaleNormal       = "normal"
	ResaleSteepDecline = "forte_decote"
)

// ResalePrediction projects the value of a vehicle a few years out.
type ResalePrediction struct {
	Verdict            string  `json:"verdict,omitempty"`
	Advice             string  `json:"advice,omitempty"`
	Message            string  `json:"message,omitempty"`
	CurrentEstimate    int     `json:"currentEstimate,omitempty"`
	ResalePrice        int     `json:"resalePrice,omitempty"`
	Years              int     `json:"years,omitempty"`
	TotalLoss          int     `json:"totalLoss,omitempty"`
	AnnualLoss         int     `json:"annualLoss,omitempty"`
	LossPercent        int     `json:"lossPercent,omitempty"`
	AnnualDepreciation float64 `json:"annualDepreciation,omitempty"`
	Analyzable         bool    `json:"analyzable"`
	Collector          bool    `json:"collector,omitempty"`
}

// HistoryReader is the slice of the history store the engine needs.
type HistoryReader interface {
	AveragePrice(ctx context.Context, make, mdl string, year int) (*history.PriceStats, error)
}

// Engine resolves price estimates. A nil history reader disables the
// crowd-sourced fallback.
type Engine struct {
	history HistoryReader
	now     func() time.Time
}

// New creates a market engine backed by the given history.
func New(h HistoryReader) *Engine {
	return &Engine{history: h, now: time.Now}
}

// Estimate resolves a price for the listing, walking the reference table
// first, then similar stored listings, then the generic curve.
func (e *Engine) Estimate(ctx context.Context, listing model.Listing) Estimate {
	currentYear := e.now().Year()

	mk, ok := refdata.FindMake(listing.Make)
	if !ok {
		return e.estimateFromHistory(ctx, listing, currentYear)
	}

	mdl, ok := matchModel(mk, listing.Model)
	if !ok {
		return e.estimateFromHistory(ctx, listing, currentYear)
	}

	gen, ok := matchGeneration(mdl, listing.Year)
	if !ok {
		return e.estimateFromHistory(ctx, listing, currentYear)
	}

	age := currentYear - listing.Year
	expectedKm := gen.AvgKmPerYear * age
	deviation := 0.0
	if listing.HasMileage() {
		deviation = float64(listing.MileageKm-expectedKm) / math.Max(float64(expectedKm), 1)
	}

	newPrice, rate, collector := matchVariant(gen, listing.EngineVariant)

	price := newPrice
	for i := 0; i < age; i++ {
		price *= 1 - rate
	}

	adjustment := 1 - deviation*mileageAdjustmentRate
	adjustment = math.Max(0.7, math.Min(1.3, adjustment))
	estimated := int(math.Round(price * adjustment))
	if estimated < priceFloor {
		estimated = priceFloor
	}

	return Estimate{
		Found:              true,
		PriceEUR:           estimated,
		NewPriceEUR:        int(math.Round(newPrice)),
		AnnualDepreciation: rate,
		hasRate:            true,
		Collector:          collector,
		Confidence:         ConfidenceHigh,
		Source:             SourceMarketTable,
		AgeYears:           age,
		ExpectedKm:         expectedKm,
		MileageDeviation:   deviation,
	}
}

// estimateFromHistory averages similar stored listings; with fewer than
// minSimilarListings samples it falls through to the generic curve.
func (e *Engine) estimateFromHistory(ctx context.Context, listing model.Listing, currentYear int) Estimate {
	if e.history != nil && listing.HasVehicleIdentity() {
		stats, err := e.history.AveragePrice(ctx, listing.Make, listing.Model, listing.Year)
		if err != nil {
			common.LogDebug("history lookup failed, falling back to generic estimate", common.Fields{
				"make":  listing.Make,
				"model": listing.Model,
				"error": err.Error(),
			})
		} else if stats != nil && stats.Count >= minSimilarListings {
			return Estimate{
				Found:        true,
				PriceEUR:     stats.Mean,
				Confidence:   ConfidenceMedium,
				Source:       SourceSimilarListings,
				HistoryStats: stats,
			}
		}
	}
	return genericEstimate(listing, currentYear)
}

// genericEstimate is the last-resort depreciation curve for unreferenced
// vehicles.
func genericEstimate(listing model.Listing, currentYear int) Estimate {
	year := listing.Year
	if year == 0 {
		year = 2015
	}
	km := listing.MileageKm
	if km == 0 {
		km = 100000
	}
	age := currentYear - year
	price := math.Max(2000, 25000*math.Pow(0.88, float64(age))*(1-float64(km)/500000))

	return Estimate{
		Found:      false,
		PriceEUR:   int(math.Round(price)),
		Confidence: ConfidenceLow,
		Source:     SourceGenericCurve,
		Message:    "Modèle non référencé. Estimation approximative.",
	}
}

// PredictResale projects the estimated value years ahead by compounding
// the depreciation rate forward. Appreciating vehicles gain value.
func (e *Engine) PredictResale(ctx context.Context, listing model.Listing, years int) ResalePrediction {
	if years <= 0 {
		years = 3
	}

	est := e.Estimate(ctx, listing)
	if !est.Found {
		return ResalePrediction{
			Analyzable: false,
			Message:    "Impossible de prédire sans données de référence.",
		}
	}

	rate := est.AnnualDepreciation
	if !est.hasRate {
		rate = defaultDepreciation
	}

	future := float64(est.PriceEUR)
	for i := 0; i < years; i++ {
		future *= 1 - rate
	}
	resale := int(math.Round(math.Max(future, resaleFloor)))

	totalLoss := est.PriceEUR - resale
	annualLoss := int(math.Round(float64(totalLoss) / float64(years)))
	lossPercent := int(math.Round(float64(totalLoss) / float64(est.PriceEUR) * 100))

	var verdict, advice string
	switch {
	case rate <= 0:
		verdict = ResaleAppreciating
		advice = "Ce véhicule prend de la valeur. Excellent investissement."
	case rate <= 0.05:
		verdict = ResaleVeryStable
		advice = "Décote très faible. Revente favorable."
	case rate <= 0.08:
		verdict = ResaleStable
		advice = "Décote modérée. Bonne conservation de valeur."
	case rate <= 0.11:
		verdict = ResaleNormal
		advice = "Décote standard pour ce type de véhicule."
	default:
		verdict = ResaleSteepDecline
		advice = "Décote importante. Prévoir une perte significative à la revente."
	}

	return ResalePrediction{
		Analyzable:         true,
		CurrentEstimate:    est.PriceEUR,
		ResalePrice:        resale,
		Years:              years,
		TotalLoss:          totalLoss,
		AnnualLoss:         annualLoss,
		LossPercent:        lossPercent,
		AnnualDepreciation: rate,
		Collector:          est.Collector,
		Verdict:            verdict,
		Advice:             advice,
	}
}

// matchModel matches the listing model against the make's model lines by
// bidirectional containment of normalized keys.
func matchModel(mk refdata.PriceMake, mdl string) (refdata.PriceModel, bool) {
	key := common.NormalizeKey(mdl)
	if key == "" {
		return refdata.PriceModel{}, false
	}
	for _, m := range mk.Models {
		mKey := common.NormalizeKey(m.Name)
		if strings.Contains(key, mKey) || strings.Contains(mKey, key) {
			return m, true
		}
	}
	return refdata.PriceModel{}, false
}

// matchGeneration picks the first generation whose production range
// contains the year.
func matchGeneration(mdl refdata.PriceModel, year int) (refdata.Generation, bool) {
	if year == 0 {
		return refdata.Generation{}, false
	}
	for _, g := range mdl.Generations {
		if year >= g.FirstYear && year <= g.LastYear {
			return g, true
		}
	}
	return refdata.Generation{}, false
}

// matchVariant resolves the engine variant, averaging across all variants
// when none matches.
func matchVariant(gen refdata.Generation, variant string) (newPrice, rate float64, collector bool) {
	key := common.NormalizeKey(variant)
	if key != "" {
		for _, v := range gen.Variants {
			vKey := common.NormalizeKey(v.Name)
			if strings.Contains(vKey, key) || strings.Contains(key, vKey) {
				return float64(v.NewPriceEUR), v.DepreciationRate, v.Collector
			}
		}
	}

	var priceSum, rateSum float64
	for _, v := range gen.Variants {
		priceSum += float64(v.NewPriceEUR)
		rateSum += v.DepreciationRate
		collector = collector || v.Collector
	}
	n := float64(len(gen.Variants))
	return priceSum / n, rateSum / n, collector
}

// Describe renders a short human summary of an estimate.
func Describe(est Estimate) string {
	switch est.Source {
	case SourceMarketTable:
		return fmt.Sprintf("Estimation %d€ (neuf %d€, décote %d%%/an)",
			est.PriceEUR, est.NewPriceEUR, int(math.Round(est.AnnualDepreciation*100)))
	case SourceSimilarListings:
		return fmt.Sprintf("Estimation %d€ basée sur %d annonces similaires", est.PriceEUR, est.HistoryStats.Count)
	default:
		return fmt.Sprintf("Estimation approximative %d€ (modèle non référencé)", est.PriceEUR)
	}
}
