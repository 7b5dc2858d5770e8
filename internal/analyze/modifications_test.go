package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venatus57/autoanalyseur/internal/model"
)

func modIDs(mods []ModEvaluation) []string {
	ids := make([]string, 0, len(mods))
	for _, m := range mods {
		ids = append(ids, m.Record.ID)
	}
	return ids
}

func TestAnalyzeModificationsStockVehicle(t *testing.T) {
	result := AnalyzeModifications("", nil)

	assert.True(t, result.Stock)
	assert.Zero(t, result.Count)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, TierPositive, result.Summary.Tier)
	assert.Equal(t, "Véhicule d'origine", result.Summary.Title)
	// 100 plus the stock bonus, clamped back to 100.
	assert.Equal(t, CategoryScores{Mechanical: 100, Legal: 100, Resale: 100}, result.Scores)
}

func TestAnalyzeModificationsHeavyTuning(t *testing.T) {
	result := AnalyzeModifications("Clio stage 2 avec gros turbo et décata", nil)

	require.Equal(t, 3, result.Count)
	assert.Equal(t, []string{"reprogrammation", "turbo_upgrade", "decatalyseur"}, modIDs(result.Modifications))
	for _, m := range result.Modifications {
		assert.Equal(t, model.SourceDetected, m.Source)
		assert.Equal(t, model.ConfidenceHigh, m.Confidence)
		assert.True(t, m.Known)
	}

	require.Len(t, result.Combinations, 2)
	assert.Equal(t, "reprog_turbo", result.Combinations[0].ID)
	assert.Equal(t, "reprog_decata", result.Combinations[1].ID)

	// Deltas push every axis below zero before clamping.
	assert.Equal(t, CategoryScores{}, result.Scores)

	assert.Equal(t, TierCritical, result.Summary.Tier)
	assert.Equal(t, 3, result.Summary.Risky)
	assert.Contains(t, result.Summary.Description, "2 combinaison(s)")
}

func TestAnalyzeModificationsRecommendationOrder(t *testing.T) {
	result := AnalyzeModifications("Clio stage 2 avec gros turbo et décata", nil)

	require.Len(t, result.Recommendations, 4)
	types := make([]string, len(result.Recommendations))
	for i, r := range result.Recommendations {
		types[i] = r.Type
	}
	assert.Equal(t, []string{RecGeneral, RecCritical, RecLegal, RecInsurance}, types)

	// The first candidate of each type wins.
	assert.Contains(t, result.Recommendations[1].Message, "EXPERTISE MÉCANIQUE OBLIGATOIRE")
	assert.Contains(t, result.Recommendations[2].Message, "contrôle technique")
}

func TestAnalyzeModificationsSubstringConfidence(t *testing.T) {
	result := AnalyzeModifications("voiture reprogrammée récemment", nil)

	require.Equal(t, 1, result.Count)
	m := result.Modifications[0]
	assert.Equal(t, "reprogrammation", m.Record.ID)
	assert.Equal(t, "reprog", m.MatchedKeyword)
	assert.Equal(t, model.ConfidenceMedium, m.Confidence)
}

func TestAnalyzeModificationsDeclaredMerge(t *testing.T) {
	declared := []DeclaredModification{
		{ID: "reprogrammation"},
		{ID: ""},
		{ID: "jantes_non_oem"},
		{ID: "nitro", Description: "Kit nitro"},
	}
	result := AnalyzeModifications("stage 1 récent", declared)

	require.Equal(t, 3, result.Count)
	assert.Equal(t, []string{"reprogrammation", "jantes_non_oem", "nitro"}, modIDs(result.Modifications))

	// Detection wins over the duplicate declaration.
	assert.Equal(t, model.SourceDetected, result.Modifications[0].Source)

	assert.Equal(t, model.SourceDeclared, result.Modifications[1].Source)
	assert.True(t, result.Modifications[1].Known)

	unknown := result.Modifications[2]
	assert.False(t, unknown.Known)
	assert.Equal(t, "Kit nitro", unknown.Record.Name)
	assert.Equal(t, model.CategoryUnknown, unknown.Record.Category)
	assert.Equal(t, model.VerdictMonitor, unknown.Record.Verdict)
	assert.Equal(t, model.LegalUnknown, unknown.Record.Legal.Level)
	assert.Equal(t, model.ScoreImpact{Mechanical: -5, Legal: -5, Resale: -5}, unknown.Record.Impact)
}

func TestAnalyzeModificationsSummaryTiers(t *testing.T) {
	tests := []struct {
		name        string
		description string
		tier        string
		sound       int
		monitored   int
	}{
		{
			name:        "sound only",
			description: "barre anti-rapprochement et gros freins",
			tier:        TierPositive,
			sound:       2,
		},
		{
			name:        "monitored",
			description: "jantes alu et gros freins",
			tier:        TierAttention,
			sound:       1,
			monitored:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeModifications(tt.description, nil)
			assert.Equal(t, tt.tier, result.Summary.Tier)
			assert.Equal(t, tt.sound, result.Summary.Sound)
			assert.Equal(t, tt.monitored, result.Summary.Monitored)
			assert.Empty(t, result.Combinations)
			assert.False(t, result.Stock)
		})
	}
}

func TestAnalyzeModificationsFirstKeywordWins(t *testing.T) {
	// "boitier additionnel" is a keyword of both the remap entry and the
	// piggyback entry; each entry reports once.
	result := AnalyzeModifications("boitier additionnel installé", nil)

	assert.Equal(t, []string{"reprogrammation", "boitier_additionnel"}, modIDs(result.Modifications))
}

func TestClampRound(t *testing.T) {
	assert.Equal(t, 0, clampRound(-12))
	assert.Equal(t, 100, clampRound(115))
	assert.Equal(t, 87, clampRound(86.6))
	assert.Equal(t, 86, clampRound(86.4))
}
