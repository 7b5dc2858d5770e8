package analyze

import (
	"fmt"
	"math"

	"github.com/venatus57/autoanalyseur/internal/model"
	"github.com/venatus57/autoanalyseur/internal/refdata"
)

// Confidence tiers for the final score.
const (
	ScoreExcellent = "excellent"
	ScoreGood      = "bon"
	ScoreAverage   = "moyen"
	ScoreRisky     = "risque"
	ScoreCritical  = "critique"
)

// Penalty is one scoring deduction with its origin.
type Penalty struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

// CategoryScore is a weighted category result with its reading.
type CategoryScore struct {
	Score       int     `json:"score"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// ExpertiseWarning asks the buyer for a physical inspection.
type ExpertiseWarning struct {
	Recommendation string   `json:"recommendation"`
	Message        string   `json:"message"`
	Reasons        []string `json:"reasons"`
	CheckPoints    []string `json:"checkPoints"`
}

// FinalScore is the blended trust score for a listing.
type FinalScore struct {
	Warning     *ExpertiseWarning `json:"warning,omitempty"`
	Tier        string            `json:"tier"`
	Label       string            `json:"label"`
	Description string            `json:"description"`
	Mechanical  CategoryScore     `json:"mechanical"`
	Legal       CategoryScore     `json:"legal"`
	Resale      CategoryScore     `json:"resale"`
	Penalties   []Penalty         `json:"penalties,omitempty"`
	Global      int               `json:"global"`
}

// ComputeScore blends the general and modification analyses into the
// final trust score. Each category mixes the modification axis with the
// general score, then penalties apply and the global score is the
// weighted sum of the three categories.
func ComputeScore(general GeneralResult, mods ModificationResult) FinalScore {
	generalScore := float64(general.Score)

	mechanical := weighted(float64(mods.Scores.Mechanical), 0.6, generalScore, 0.4)
	legal := weighted(float64(mods.Scores.Legal), 0.8, generalScore, 0.2)
	resale := weighted(float64(mods.Scores.Resale), 0.7, generalScore, 0.3)

	mechPen, legalPen, resalePen, penalties := computePenalties(general, mods)
	mechanical = math.Max(0, mechanical+float64(mechPen))
	legal = math.Max(0, legal+float64(legalPen))
	resale = math.Max(0, resale+float64(resalePen))

	global := int(math.Round(mechanical*refdata.WeightMechanical +
		legal*refdata.WeightLegal +
		resale*refdata.WeightResale))

	tier, label := classify(global)
	return FinalScore{
		Global:      global,
		Tier:        tier,
		Label:       label,
		Description: describeScore(global),
		Mechanical: CategoryScore{
			Score:       int(math.Round(mechanical)),
			Weight:      refdata.WeightMechanical,
			Description: describeCategory("mecanique", mechanical),
		},
		Legal: CategoryScore{
			Score:       int(math.Round(legal)),
			Weight:      refdata.WeightLegal,
			Description: describeCategory("legalite", legal),
		},
		Resale: CategoryScore{
			Score:       int(math.Round(resale)),
			Weight:      refdata.WeightResale,
			Description: describeCategory("revente", resale),
		},
		Penalties: penalties,
		Warning:   expertiseWarning(global, mods),
	}
}

func weighted(a, wa, b, wb float64) float64 {
	return (a*wa + b*wb) / (wa + wb)
}

// computePenalties translates high-severity alerts, fired combinations
// and illegal modifications into category deductions.
func computePenalties(general GeneralResult, mods ModificationResult) (mech, legal, resale int, details []Penalty) {
	for _, alert := range general.Alerts {
		if alert.Severity == model.SeverityHigh {
			mech -= 5
			resale -= 3
			details = append(details, Penalty{Source: "analyse générale", Message: alert.Message})
		}
	}

	for _, combo := range mods.Combinations {
		switch combo.Severity {
		case model.SeverityCritical:
			mech -= 15
			legal -= 15
			resale -= 10
		case model.SeverityHigh:
			mech -= 10
			legal -= 8
			resale -= 5
		default:
			mech -= 5
			legal -= 3
			resale -= 3
		}
		details = append(details, Penalty{Source: "combinaison", Message: combo.Message})
	}

	for _, m := range mods.Modifications {
		if m.Record.Legal.Level == model.LegalIllegal {
			legal -= 20
			resale -= 15
			details = append(details, Penalty{Source: "modification illégale", Message: m.Record.Name})
		}
	}
	return mech, legal, resale, details
}

func classify(score int) (tier, label string) {
	switch {
	case score >= 80:
		return ScoreExcellent, "Confiance élevée"
	case score >= 65:
		return ScoreGood, "Correct avec vigilance"
	case score >= 50:
		return ScoreAverage, "Attention requise"
	case score >= 30:
		return ScoreRisky, "Risques importants"
	default:
		return ScoreCritical, "Fortement déconseillé"
	}
}

func describeScore(score int) string {
	switch {
	case score >= 80:
		return "Bons indicateurs. Visite recommandée pour confirmer."
	case score >= 65:
		return "Acceptable avec points de vigilance."
	case score >= 50:
		return "Signaux d'alerte. Expertise recommandée."
	case score >= 30:
		return "Risques significatifs. Expertise obligatoire."
	default:
		return "Trop de risques. Achat déconseillé."
	}
}

var categoryDescriptions = map[string]map[string]string{
	"mecanique": {
		ScoreExcellent: "Bon état mécanique probable.",
		ScoreGood:      "Correct, vérifications recommandées.",
		ScoreAverage:   "Points à surveiller.",
		ScoreRisky:     "Risques significatifs.",
		ScoreCritical:  "Fiabilité compromise.",
	},
	"legalite": {
		ScoreExcellent: "Conforme.",
		ScoreGood:      "Globalement conforme.",
		ScoreAverage:   "Vérification nécessaire.",
		ScoreRisky:     "Problèmes probables.",
		ScoreCritical:  "Non conforme.",
	},
	"revente": {
		ScoreExcellent: "Bonne valeur.",
		ScoreGood:      "Valeur correcte.",
		ScoreAverage:   "Impact possible.",
		ScoreRisky:     "Revente difficile.",
		ScoreCritical:  "Forte décote.",
	},
}

func describeCategory(category string, score float64) string {
	tier, _ := classify(int(score))
	return categoryDescriptions[category][tier]
}

// expertiseWarning fires on a weak global score, dangerous combinations
// or any risk-verdict modification.
func expertiseWarning(global int, mods ModificationResult) *ExpertiseWarning {
	var reasons []string
	if global < 50 {
		reasons = append(reasons, "Score faible")
	}
	if len(mods.Combinations) > 0 {
		reasons = append(reasons, "Combinaisons à risque")
	}
	risky := 0
	for _, m := range mods.Modifications {
		if m.Record.Verdict == model.VerdictRisk {
			risky++
		}
	}
	if risky > 0 {
		reasons = append(reasons, fmt.Sprintf("%d modification(s) à risque", risky))
	}
	if len(reasons) == 0 {
		return nil
	}
	return &ExpertiseWarning{
		Recommendation: "EXPERTISE PHYSIQUE RECOMMANDÉE",
		Message:        "Inspection mécanique par un professionnel conseillée.",
		Reasons:        reasons,
		CheckPoints:    []string{"Embrayage", "Turbo", "Compression", "Boîte de vitesses", "Géométrie", "Codes défaut"},
	}
}
