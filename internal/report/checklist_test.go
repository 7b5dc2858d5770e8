package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venatus57/autoanalyseur/internal/model"
)

func TestBuildChecklistStockVehicle(t *testing.T) {
	checklist := BuildChecklist(nil)

	require.Len(t, checklist.Sections, 5)
	assert.NotEmpty(t, checklist.Advice)
	for _, section := range checklist.Sections {
		assert.NotEmpty(t, section.Title)
		assert.NotEmpty(t, section.Items, section.Title)
	}
}

func TestBuildChecklistModifiedVehicle(t *testing.T) {
	mods := []ChecklistMod{
		{ID: "reprogrammation", Name: "Reprogrammation moteur", Category: model.CategoryEngine},
		{ID: "rabaissement", Name: "Rabaissement", Category: model.CategoryChassis},
	}
	checklist := BuildChecklist(mods)

	require.Len(t, checklist.Sections, 6)

	// Engine and running-gear sections pick up the modification checks.
	base := BuildChecklist(nil)
	assert.Greater(t, len(checklist.Sections[3].Items), len(base.Sections[3].Items))
	assert.Greater(t, len(checklist.Sections[4].Items), len(base.Sections[4].Items))

	modSection := checklist.Sections[5]
	require.Len(t, modSection.Items, 2)
	assert.Contains(t, modSection.Items[0].Question, "Reprogrammation moteur")
}

func TestBuildChecklistUnmatchedModFallback(t *testing.T) {
	checklist := BuildChecklist([]ChecklistMod{
		{ID: "sono", Name: "Installation audio", Category: model.CategoryElectronic},
	})

	modSection := checklist.Sections[len(checklist.Sections)-1]
	require.Len(t, modSection.Items, 1)
	assert.Contains(t, modSection.Items[0].Question, "non déclarées")
}
