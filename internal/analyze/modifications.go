// Package analyze contains the listing analyzers: modification detection,
// general coherence checks, and the final scoring blend.
package analyze

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/venatus57/autoanalyseur/internal/common"
	"github.com/venatus57/autoanalyseur/internal/model"
	"github.com/venatus57/autoanalyseur/internal/refdata"
)

// CategoryScores are the three scoring axes, each in [0, 100].
type CategoryScores struct {
	Mechanical int `json:"mechanical"`
	Legal      int `json:"legal"`
	Resale     int `json:"resale"`
}

// Summary tiers.
const (
	TierPositive  = "positif"
	TierAttention = "attention"
	TierCritical  = "critique"
)

// ModSummary is the qualitative rollup of the modification analysis.
type ModSummary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tier        string `json:"tier"`
	Sound       int    `json:"sound"`
	Monitored   int    `json:"monitored"`
	Risky       int    `json:"risky"`
}

// Recommendation types.
const (
	RecGeneral   = "general"
	RecCritical  = "critique"
	RecLegal     = "legal"
	RecInsurance = "assurance"
)

// Recommendation is an actionable follow-up for the buyer.
type Recommendation struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ModEvaluation is one modification with its catalog assessment. Known is
// false for declared modifications absent from the catalog, which get a
// conservative degraded record.
type ModEvaluation struct {
	Record         model.ModificationRecord `json:"record"`
	Source         model.Source             `json:"source"`
	Confidence     model.Confidence         `json:"confidence"`
	MatchedKeyword string                   `json:"matchedKeyword,omitempty"`
	Explanation    string                   `json:"explanation,omitempty"`
	Known          bool                     `json:"known"`
}

// DeclaredModification is a user-supplied modification, identified by
// catalog id when known.
type DeclaredModification struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
}

// ModificationResult is the full modification analysis output.
type ModificationResult struct {
	Modifications   []ModEvaluation              `json:"modifications"`
	Combinations    []model.DangerousCombination `json:"combinations,omitempty"`
	Recommendations []Recommendation             `json:"recommendations,omitempty"`
	Summary         ModSummary                   `json:"summary"`
	Scores          CategoryScores               `json:"scores"`
	Count           int                          `json:"count"`
	Stock           bool                         `json:"stock"`
}

// AnalyzeModifications detects catalog modifications in the description,
// merges declared ones, fires combination rules and scores the result.
func AnalyzeModifications(description string, declared []DeclaredModification) ModificationResult {
	detected := detectModifications(description)
	merged := mergeDeclared(detected, declared)

	present := make(map[string]bool, len(merged))
	for _, m := range merged {
		present[m.Record.ID] = true
	}
	var combos []model.DangerousCombination
	for _, c := range refdata.Combinations {
		if c.FiresOn(present) {
			combos = append(combos, c)
		}
	}

	result := ModificationResult{
		Modifications: merged,
		Combinations:  combos,
		Count:         len(merged),
		Stock:         len(merged) == 0,
	}
	result.Scores = modificationScores(merged, combos)
	result.Summary = summarize(merged, combos)
	result.Recommendations = recommendations(merged, combos)
	return result
}

// detectModifications scans the description against every catalog entry.
// Matching is case- and diacritic-insensitive; the first matching keyword
// of an entry wins and an entry is reported at most once.
func detectModifications(description string) []ModEvaluation {
	if strings.TrimSpace(description) == "" {
		return nil
	}

	text := common.StripDiacritics(strings.ToLower(description))
	var out []ModEvaluation
	for _, rec := range refdata.Catalog {
		for _, kw := range rec.Keywords {
			needle := common.StripDiacritics(strings.ToLower(kw))
			if !strings.Contains(text, needle) {
				continue
			}
			out = append(out, ModEvaluation{
				Record:         rec,
				Source:         model.SourceDetected,
				Confidence:     matchConfidence(text, needle),
				MatchedKeyword: kw,
				Known:          true,
				Explanation:    explain(rec),
			})
			break
		}
	}
	return out
}

// matchConfidence ranks whole-word matches above bare substring hits.
func matchConfidence(text, needle string) model.Confidence {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(needle) + `\b`)
	if err == nil && re.MatchString(text) {
		return model.ConfidenceHigh
	}
	return model.ConfidenceMedium
}

// mergeDeclared appends user-declared modifications that detection did
// not already find. Detection takes precedence on conflicts.
func mergeDeclared(detected []ModEvaluation, declared []DeclaredModification) []ModEvaluation {
	merged := detected
	seen := make(map[string]bool, len(detected))
	for _, m := range detected {
		seen[m.Record.ID] = true
	}

	for _, d := range declared {
		if d.ID == "" || seen[d.ID] {
			continue
		}
		seen[d.ID] = true

		if rec, ok := refdata.FindModification(d.ID); ok {
			merged = append(merged, ModEvaluation{
				Record:      rec,
				Source:      model.SourceDeclared,
				Confidence:  model.ConfidenceHigh,
				Known:       true,
				Explanation: explain(rec),
			})
			continue
		}
		merged = append(merged, ModEvaluation{
			Record:      unknownRecord(d),
			Source:      model.SourceDeclared,
			Confidence:  model.ConfidenceHigh,
			Known:       false,
			Explanation: "Cette modification n'est pas référencée. Faites vérifier son impact par un professionnel.",
		})
	}
	return merged
}

// unknownRecord is the conservative assessment applied to modifications
// the catalog does not know.
func unknownRecord(d DeclaredModification) model.ModificationRecord {
	name := d.Description
	if name == "" {
		name = d.ID
	}
	return model.ModificationRecord{
		ID:        d.ID,
		Name:      name,
		Category:  model.CategoryUnknown,
		Objective: "Non déterminé",
		Benefits:  []string{"Non évaluable sans identification"},
		Risks:     []string{"Impact inconnu - prudence recommandée"},
		Legal: model.LegalImpact{
			Level:  model.LegalUnknown,
			Detail: "Vérification nécessaire auprès d'un professionnel",
		},
		Resale:      model.ResaleImpact{Detail: "Impact non évaluable", Factor: 1},
		InsurerNote: "À vérifier avec votre assureur",
		Verdict:     model.VerdictMonitor,
		Impact:      model.ScoreImpact{Mechanical: -5, Legal: -5, Resale: -5},
	}
}

func explain(rec model.ModificationRecord) string {
	switch rec.Verdict {
	case model.VerdictSound:
		return fmt.Sprintf("Modification généralement saine. Elle vise à %s et présente peu de risques.",
			strings.ToLower(rec.Objective))
	case model.VerdictRisk:
		risk := ""
		if len(rec.Risks) > 0 {
			risk = rec.Risks[0]
		}
		return fmt.Sprintf("ATTENTION : risques significatifs. Légal : %s Mécanique : %s", rec.Legal.Detail, risk)
	default:
		risk := ""
		if len(rec.Risks) > 0 {
			risk = strings.ToLower(rec.Risks[0])
		}
		return fmt.Sprintf("Modification à surveiller : %s", risk)
	}
}

// modificationScores starts every axis at 100, applies per-modification
// deltas, weighs combination penalties 0.4/0.3/0.3, grants the stock
// bonus when nothing was found and clamps to [0, 100].
func modificationScores(mods []ModEvaluation, combos []model.DangerousCombination) CategoryScores {
	mechanical, legal, resale := 100.0, 100.0, 100.0

	for _, m := range mods {
		mechanical += float64(m.Record.Impact.Mechanical)
		legal += float64(m.Record.Impact.Legal)
		resale += float64(m.Record.Impact.Resale)
	}
	for _, c := range combos {
		mechanical += float64(c.ScoreDelta) * 0.4
		legal += float64(c.ScoreDelta) * 0.3
		resale += float64(c.ScoreDelta) * 0.3
	}
	if len(mods) == 0 {
		mechanical += refdata.StockVehicleBonus
		legal += refdata.StockVehicleBonus
		resale += refdata.StockVehicleBonus
	}

	return CategoryScores{
		Mechanical: clampRound(mechanical),
		Legal:      clampRound(legal),
		Resale:     clampRound(resale),
	}
}

func summarize(mods []ModEvaluation, combos []model.DangerousCombination) ModSummary {
	if len(mods) == 0 {
		return ModSummary{
			Title:       "Véhicule d'origine",
			Description: "Aucune modification détectée. Le véhicule semble être dans sa configuration d'origine.",
			Tier:        TierPositive,
		}
	}

	var sound, monitored, risky int
	for _, m := range mods {
		switch m.Record.Verdict {
		case model.VerdictSound:
			sound++
		case model.VerdictRisk:
			risky++
		default:
			monitored++
		}
	}

	s := ModSummary{
		Title:     fmt.Sprintf("%d modification(s) détectée(s)", len(mods)),
		Sound:     sound,
		Monitored: monitored,
		Risky:     risky,
	}
	switch {
	case risky > 0 || len(combos) > 0:
		s.Tier = TierCritical
		s.Description = fmt.Sprintf("%d modification(s) à risque détectée(s). ", risky)
		if len(combos) > 0 {
			s.Description += fmt.Sprintf("%d combinaison(s) dangereuse(s) identifiée(s). ", len(combos))
		}
		s.Description += "Une expertise mécanique approfondie est fortement recommandée."
	case monitored > 0:
		s.Tier = TierAttention
		s.Description = fmt.Sprintf("%d modification(s) nécessitant une attention particulière. Vérifiez l'état mécanique et la conformité légale.", monitored)
	default:
		s.Tier = TierPositive
		s.Description = fmt.Sprintf("%d modification(s) détectée(s), toutes considérées comme saines. Impact limité sur la fiabilité et la valeur.", sound)
	}
	return s
}

// recommendations emits follow-ups in priority order, keeping a single
// recommendation per type.
func recommendations(mods []ModEvaluation, combos []model.DangerousCombination) []Recommendation {
	var candidates []Recommendation

	if len(mods) > 0 {
		candidates = append(candidates, Recommendation{
			Type:    RecGeneral,
			Message: "Demandez un historique complet des modifications (factures, marques, professionnels ayant effectué les travaux).",
		})
	}

	var risky []ModEvaluation
	for _, m := range mods {
		if m.Record.Verdict == model.VerdictRisk {
			risky = append(risky, m)
		}
	}
	if len(risky) > 0 {
		candidates = append(candidates, Recommendation{
			Type:    RecCritical,
			Message: "EXPERTISE MÉCANIQUE OBLIGATOIRE avant achat. Les modifications détectées peuvent compromettre la fiabilité du véhicule.",
		})
		for _, m := range risky {
			if m.Record.ID == "reprogrammation" || m.Record.ID == "boitier_additionnel" {
				candidates = append(candidates, Recommendation{
					Type:    RecCritical,
					Message: "Faites vérifier l'état de l'embrayage, du turbo et de la boîte de vitesses (usure accélérée probable).",
				})
				break
			}
		}
		for _, m := range risky {
			if m.Record.ID == "decatalyseur" || m.Record.ID == "suppression_fap" {
				candidates = append(candidates, Recommendation{
					Type:    RecLegal,
					Message: "ATTENTION : Le véhicule ne pourra pas passer le contrôle technique en l'état et n'est pas légalement vendable.",
				})
				break
			}
		}
	}

	if len(combos) > 0 {
		candidates = append(candidates, Recommendation{
			Type:    RecCritical,
			Message: "La combinaison de modifications détectée multiplie les risques. Véhicule potentiellement très sollicité.",
		})
	}

	for _, m := range mods {
		if m.Record.Legal.Level == model.LegalIllegal || m.Record.Legal.Level == model.LegalNonCompliant {
			candidates = append(candidates, Recommendation{
				Type:    RecLegal,
				Message: "Vérifiez la conformité administrative : certaines modifications nécessitent une homologation ou sont interdites.",
			})
			break
		}
	}

	if len(mods) > 0 {
		candidates = append(candidates, Recommendation{
			Type:    RecInsurance,
			Message: "Contactez votre assureur pour déclarer les modifications et vérifier votre couverture.",
		})
	}

	var out []Recommendation
	seen := make(map[string]bool, len(candidates))
	for _, r := range candidates {
		if seen[r.Type] {
			continue
		}
		seen[r.Type] = true
		out = append(out, r)
	}
	return out
}

func clampRound(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v + 0.5)
}
