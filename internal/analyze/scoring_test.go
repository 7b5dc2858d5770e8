package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venatus57/autoanalyseur/internal/model"
	"github.com/venatus57/autoanalyseur/internal/refdata"
)

func cleanMods() ModificationResult {
	return ModificationResult{
		Stock:  true,
		Scores: CategoryScores{Mechanical: 100, Legal: 100, Resale: 100},
	}
}

func TestComputeScoreCleanListing(t *testing.T) {
	score := ComputeScore(GeneralResult{Score: 100}, cleanMods())

	assert.Equal(t, 100, score.Global)
	assert.Equal(t, ScoreExcellent, score.Tier)
	assert.Equal(t, "Confiance élevée", score.Label)
	assert.Nil(t, score.Warning)
	assert.Empty(t, score.Penalties)
}

func TestComputeScoreCategoryBlend(t *testing.T) {
	score := ComputeScore(GeneralResult{Score: 60}, cleanMods())

	// Mechanical mixes 60/40, legal 80/20, resale 70/30 with the
	// general score.
	assert.Equal(t, 84, score.Mechanical.Score)
	assert.Equal(t, 92, score.Legal.Score)
	assert.Equal(t, 88, score.Resale.Score)
	assert.Equal(t, 88, score.Global)
	assert.Equal(t, ScoreExcellent, score.Tier)

	assert.InDelta(t, 0.40, score.Mechanical.Weight, 1e-9)
	assert.InDelta(t, 0.30, score.Legal.Weight, 1e-9)
	assert.InDelta(t, 0.30, score.Resale.Weight, 1e-9)
}

func TestComputeScorePenalties(t *testing.T) {
	illegal, ok := refdata.FindModification("decatalyseur")
	require.True(t, ok)

	general := GeneralResult{
		Score: 100,
		Alerts: []Alert{
			{Severity: model.SeverityHigh, Message: "compteur suspect"},
			{Severity: model.SeverityHigh, Message: "usage circuit"},
			{Severity: model.SeverityMedium, Message: "description courte"},
		},
	}
	mods := ModificationResult{
		Scores: CategoryScores{Mechanical: 100, Legal: 100, Resale: 100},
		Combinations: []model.DangerousCombination{
			{Severity: model.SeverityCritical, Message: "reprog + turbo"},
		},
		Modifications: []ModEvaluation{{Record: illegal}},
	}

	score := ComputeScore(general, mods)

	// Two high alerts cost 5/0/3 each, the critical combination 15/15/10
	// and the illegal modification 0/20/15.
	assert.Equal(t, 75, score.Mechanical.Score)
	assert.Equal(t, 65, score.Legal.Score)
	assert.Equal(t, 69, score.Resale.Score)
	assert.Equal(t, 70, score.Global)
	assert.Equal(t, ScoreGood, score.Tier)

	require.Len(t, score.Penalties, 4)
	assert.Equal(t, "analyse générale", score.Penalties[0].Source)
	assert.Equal(t, "combinaison", score.Penalties[2].Source)
	assert.Equal(t, "modification illégale", score.Penalties[3].Source)

	require.NotNil(t, score.Warning)
	assert.Len(t, score.Warning.Reasons, 2)
	assert.NotEmpty(t, score.Warning.CheckPoints)
}

func TestComputeScoreFloorsAtZero(t *testing.T) {
	general := GeneralResult{Score: 0}
	mods := ModificationResult{
		Scores: CategoryScores{},
		Combinations: []model.DangerousCombination{
			{Severity: model.SeverityCritical},
			{Severity: model.SeverityCritical},
		},
	}

	score := ComputeScore(general, mods)
	assert.Zero(t, score.Mechanical.Score)
	assert.Zero(t, score.Legal.Score)
	assert.Zero(t, score.Resale.Score)
	assert.Zero(t, score.Global)
	assert.Equal(t, ScoreCritical, score.Tier)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		tier  string
	}{
		{score: 100, tier: ScoreExcellent},
		{score: 80, tier: ScoreExcellent},
		{score: 79, tier: ScoreGood},
		{score: 65, tier: ScoreGood},
		{score: 64, tier: ScoreAverage},
		{score: 50, tier: ScoreAverage},
		{score: 49, tier: ScoreRisky},
		{score: 30, tier: ScoreRisky},
		{score: 29, tier: ScoreCritical},
		{score: 0, tier: ScoreCritical},
	}

	for _, tt := range tests {
		tier, label := classify(tt.score)
		assert.Equal(t, tt.tier, tier, "score %d", tt.score)
		assert.NotEmpty(t, label)
	}
}

func TestExpertiseWarning(t *testing.T) {
	t.Run("low score alone", func(t *testing.T) {
		w := expertiseWarning(40, cleanMods())
		require.NotNil(t, w)
		assert.Equal(t, []string{"Score faible"}, w.Reasons)
	})

	t.Run("risky modification", func(t *testing.T) {
		rec, ok := refdata.FindModification("reprogrammation")
		require.True(t, ok)
		mods := ModificationResult{Modifications: []ModEvaluation{{Record: rec}}}
		w := expertiseWarning(90, mods)
		require.NotNil(t, w)
		assert.Contains(t, w.Reasons[0], "1 modification(s) à risque")
	})

	t.Run("clean", func(t *testing.T) {
		assert.Nil(t, expertiseWarning(90, cleanMods()))
	})
}
