package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venatus57/autoanalyseur/internal/model"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestFindModification(t *testing.T) {
	rec, ok := FindModification("reprogrammation")
	require.True(t, ok)
	assert.Equal(t, model.CategoryEngine, rec.Category)
	assert.Equal(t, model.VerdictRisk, rec.Verdict)
	assert.NotEmpty(t, rec.Keywords)

	_, ok = FindModification("nitro")
	assert.False(t, ok)
}

func TestFindMake(t *testing.T) {
	tests := []struct {
		name  string
		query string
		found bool
	}{
		{name: "exact lowercase", query: "renault", found: true},
		{name: "mixed case", query: "Renault", found: true},
		{name: "diacritics", query: "Citroën", found: true},
		{name: "space in name", query: "alfa romeo", found: true},
		{name: "unknown", query: "lada", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := FindMake(tt.query)
			assert.Equal(t, tt.found, ok)
		})
	}
}

func TestFindModelInfo(t *testing.T) {
	info, ok := FindModelInfo("renault", "Clio 4")
	require.True(t, ok)
	assert.Equal(t, "Clio", info.Model)
	assert.Contains(t, info.ProblematicEngines[0], "1.2 TCe")

	_, ok = FindModelInfo("renault", "fuego")
	assert.False(t, ok)

	_, ok = FindModelInfo("", "clio")
	assert.False(t, ok)
}

func TestCombinationsResolve(t *testing.T) {
	for _, combo := range Combinations {
		require.GreaterOrEqual(t, len(combo.Mods), 2, combo.ID)
		for _, id := range combo.Mods {
			_, ok := FindModification(id)
			assert.True(t, ok, "combination %s references unknown mod %s", combo.ID, id)
		}
	}
}

func TestCollectorVariantsAppreciate(t *testing.T) {
	mk, ok := FindMake("nissan")
	require.True(t, ok)

	var found bool
	for _, mdl := range mk.Models {
		if mdl.Name != "skyline" {
			continue
		}
		for _, gen := range mdl.Generations {
			for _, v := range gen.Variants {
				found = true
				assert.True(t, v.Collector, "skyline variant %s", v.Name)
				assert.Negative(t, v.DepreciationRate, "skyline variant %s should appreciate", v.Name)
			}
		}
	}
	assert.True(t, found, "expected skyline variants in the price table")
}

func TestStockVehicleWeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, WeightMechanical+WeightLegal+WeightResale, 1e-9)
}
