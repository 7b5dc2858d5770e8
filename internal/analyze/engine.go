package analyze

import (
	"context"
	"time"

	"github.com/venatus57/autoanalyseur/internal/common"
	"github.com/venatus57/autoanalyseur/internal/extract"
	"github.com/venatus57/autoanalyseur/internal/history"
	"github.com/venatus57/autoanalyseur/internal/market"
	"github.com/venatus57/autoanalyseur/internal/model"
)

// Report is the complete analysis of one listing.
type Report struct {
	AnalyzedAt    time.Time                `json:"analyzedAt"`
	Listing       model.Listing            `json:"listing"`
	General       GeneralResult            `json:"general"`
	Modifications ModificationResult       `json:"modifications"`
	Score         FinalScore               `json:"score"`
	Resale        *market.ResalePrediction `json:"resale,omitempty"`
	Saved         bool                     `json:"saved"`
}

// Request carries a listing to analyze. Raw text, when present, is
// mined for fields the structured listing leaves blank.
type Request struct {
	Listing  model.Listing
	RawText  string
	Declared []DeclaredModification
	// SkipHistory disables persisting the listing after analysis.
	SkipHistory bool
}

// Engine orchestrates the full analysis pipeline.
type Engine struct {
	general *GeneralAnalyzer
	market  *market.Engine
	store   history.Store
	now     func() time.Time
}

// NewEngine wires the pipeline. The store may be nil to disable
// history persistence and the crowd-sourced price fallback.
func NewEngine(store history.Store) *Engine {
	var reader market.HistoryReader
	if store != nil {
		reader = store
	}
	m := market.New(reader)
	return &Engine{
		general: NewGeneralAnalyzer(m),
		market:  m,
		store:   store,
		now:     time.Now,
	}
}

// Market exposes the price engine for estimate-only commands.
func (e *Engine) Market() *market.Engine { return e.market }

// Analyze runs extraction, both analyzers and the scorer on a request,
// then persists the listing when it is identifiable.
func (e *Engine) Analyze(ctx context.Context, req Request) (*Report, error) {
	listing := req.Listing
	if req.RawText != "" {
		extracted := extract.Extract(req.RawText)
		extracted.MergeInto(&listing)
		if listing.Description == "" {
			listing.Description = req.RawText
		}
	}
	if listing.IsEmpty() {
		return nil, common.ErrNoInput
	}

	general := e.general.Analyze(ctx, listing)
	mods := AnalyzeModifications(listing.Description, req.Declared)
	score := ComputeScore(general, mods)

	report := &Report{
		AnalyzedAt:    e.now().UTC(),
		Listing:       listing,
		General:       general,
		Modifications: mods,
		Score:         score,
	}

	if listing.HasVehicleIdentity() && listing.HasYear() {
		resale := e.market.PredictResale(ctx, listing, 0)
		report.Resale = &resale
	}

	if !req.SkipHistory && e.store != nil && listing.HasPrice() {
		saved, err := e.store.Save(ctx, model.HistoricalListing{
			Make:          listing.Make,
			Model:         listing.Model,
			Year:          listing.Year,
			MileageKm:     listing.MileageKm,
			PriceEUR:      listing.PriceEUR,
			EngineVariant: listing.EngineVariant,
			Description:   listing.Description,
		})
		if err != nil {
			common.LogError(err, "failed to save listing to history", common.Fields{
				"make":  listing.Make,
				"model": listing.Model,
			})
		} else {
			report.Saved = saved
		}
	}

	return report, nil
}
