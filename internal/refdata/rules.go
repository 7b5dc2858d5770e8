package refdata

import (
	"fmt"
	"regexp"

	"github.com/venatus57/autoanalyseur/internal/model"
)

// Score weights for the final blend and the unmodified-vehicle bonus.
const (
	WeightMechanical = 0.40
	WeightLegal      = 0.30
	WeightResale     = 0.30

	StockVehicleBonus = 15
)

// Combinations are the dangerous modification pairings. A rule fires when
// every listed id is detected, extra modifications do not prevent it.
var Combinations = []model.DangerousCombination{
	{
		ID:       "reprog_turbo",
		Mods:     []string{"reprogrammation", "turbo_upgrade"},
		Severity: model.SeverityCritical,
		Message:  "Reprogrammation + Upgrade turbo = Sollicitation extrême du moteur",
		Risks: []string{
			"Risque de casse moteur très élevé",
			"Durée de vie embrayage/boîte fortement réduite",
			"Expertise mécanique approfondie OBLIGATOIRE",
		},
		ScoreDelta: -40,
	},
	{
		ID:       "reprog_decata",
		Mods:     []string{"reprogrammation", "decatalyseur"},
		Severity: model.SeverityCritical,
		Message:  "Reprogrammation + Décatalyseur = Véhicule non conforme et potentiellement dangereux",
		Risks: []string{
			"Illégal (amende jusqu'à 7500€)",
			"CT impossible à passer",
			"Assurance nulle",
		},
		ScoreDelta: -50,
	},
	{
		ID:       "preparation_complete",
		Mods:     []string{"reprogrammation", "echappement", "admission"},
		Severity: model.SeverityHigh,
		Message:  "Préparation moteur complète détectée",
		Risks: []string{
			"Fiabilité compromise",
			"Historique d'utilisation intensive probable",
			"Vérifier état embrayage, turbo, boîte",
		},
		ScoreDelta: -30,
	},
	{
		ID:       "rabaissement_jantes",
		Mods:     []string{"rabaissement", "jantes_non_oem"},
		Severity: model.SeverityMedium,
		Message:  "Rabaissement + Jantes aftermarket",
		Risks: []string{
			"Vérifier la géométrie",
			"Usure pneus potentiellement anormale",
			"Confort dégradé",
		},
		ScoreDelta: -15,
	},
	{
		ID:       "fap_reprog",
		Mods:     []string{"suppression_fap", "reprogrammation"},
		Severity: model.SeverityCritical,
		Message:  "Suppression FAP + Reprogrammation",
		Risks: []string{
			"STRICTEMENT ILLÉGAL",
			"Véhicule invendable légalement",
			"Pollution massive",
		},
		ScoreDelta: -60,
	},
	{
		ID:       "intercooler_echappement",
		Mods:     []string{"intercooler", "echappement"},
		Severity: model.SeverityHigh,
		Message:  "Intercooler + Échappement = Indice fort de reprogrammation cachée",
		Risks: []string{
			"Ces modifications seules n'ont pas de sens",
			"Reprogrammation très probablement présente ou passée",
			"Demander explicitement si reprog effectuée",
		},
		ScoreDelta:  -25,
		InsurerNote: "Cumul suggérant modification puissance non déclarée",
	},
	{
		ID:       "intercooler_admission",
		Mods:     []string{"intercooler", "admission"},
		Severity: model.SeverityHigh,
		Message:  "Intercooler + Admission = Préparation moteur évidente",
		Risks: []string{
			"Reprogrammation très probable",
			"Véhicule préparé pour la performance",
			"Usure mécanique potentiellement avancée",
		},
		ScoreDelta: -25,
	},
	{
		ID:       "boitier_echappement",
		Mods:     []string{"boitier_additionnel", "echappement"},
		Severity: model.SeverityHigh,
		Message:  "Boîtier additionnel + Échappement = Préparation complète",
		Risks: []string{
			"Mêmes risques qu'une reprog complète",
			"Embrayage/turbo/boîte fortement sollicités",
			"Historique d'utilisation sportive probable",
		},
		ScoreDelta:  -30,
		InsurerNote: "Équivalent à modification puissance : surprime ou refus probable",
	},
	{
		ID:       "boitier_admission_echappement",
		Mods:     []string{"boitier_additionnel", "admission", "echappement"},
		Severity: model.SeverityCritical,
		Message:  "Boîtier + Admission + Échappement = Véhicule intensivement préparé",
		Risks: []string{
			"Usure mécanique très probable",
			"Embrayage/volant moteur potentiellement à remplacer",
			"EXPERTISE OBLIGATOIRE avant achat",
		},
		ScoreDelta: -40,
	},
}

// RedFlag is a description pattern with its alert level and score delta.
// Positive scores reward transparency signals.
type RedFlag struct {
	Pattern  *regexp.Regexp
	Severity model.Severity
	Message  string
	Score    int
}

// RedFlags are scanned in order against the raw description.
var RedFlags = []RedFlag{
	{regexp.MustCompile(`(?i)urgent`), model.SeverityMedium, `Mention "urgent" - précipitation suspecte`, -10},
	{regexp.MustCompile(`(?i)vite`), model.SeverityMedium, "Mention de vente rapide - précipitation suspecte", -8},
	{regexp.MustCompile(`(?i)pas s[ée]rieux? s'abstenir`), model.SeverityLow, "Formule défensive", -3},
	{regexp.MustCompile(`(?i)prix ferme`), model.SeverityLow, "Prix non négociable - vérifier la cohérence", -2},
	{regexp.MustCompile(`(?i)(?:cause|pour cause|suite)`), model.SeverityInfo, "Raison de vente mentionnée - à vérifier", 0},
	{regexp.MustCompile(`(?i)jamais eu de probl[èe]me`), model.SeverityLow, "Affirmation de fiabilité parfaite - à vérifier", -2},
	{regexp.MustCompile(`(?i)parfait [ée]tat`), model.SeverityLow, `État "parfait" annoncé - soyez critique`, -2},
	{regexp.MustCompile(`(?i)aucune? frais [àa] pr[ée]voir`), model.SeverityLow, `Affirmation "aucun frais" - à vérifier`, -3},
	{regexp.MustCompile(`(?i)ct ok|contr[ôo]le technique ok`), model.SeverityInfo, "CT mentionné comme OK - demander le rapport détaillé", 0},
	{regexp.MustCompile(`(?i)pas de ct`), model.SeverityHigh, "Contrôle technique non effectué - ATTENTION", -15},
	{regexp.MustCompile(`(?i)carnet (d'entretien )?[àa] jour`), model.SeverityPositive, "Carnet d'entretien mentionné comme à jour", 5},
	{regexp.MustCompile(`(?i)factures? disponible`), model.SeverityPositive, "Factures disponibles - bon signe", 5},
	{regexp.MustCompile(`(?i)premi[èe]re main`), model.SeverityPositive, "Première main annoncée", 3},
	{regexp.MustCompile(`(?i)plusieurs propri[ée]taires`), model.SeverityInfo, "Plusieurs propriétaires - historique à vérifier", -3},
	{regexp.MustCompile(`(?i)import`), model.SeverityMedium, "Véhicule importé - vérifier l'historique et la conformité", -10},
	{regexp.MustCompile(`(?i)accidenté|accident`), model.SeverityHigh, "Accident mentionné - ATTENTION", -20},
	{regexp.MustCompile(`(?i)repeint|repeinture`), model.SeverityMedium, "Repeinture mentionnée - possible réparation", -8},
}

// UrgencySignal is a pressure-selling pattern with its weight.
type UrgencySignal struct {
	Pattern *regexp.Regexp
	Weight  int
	Message string
}

// UrgencySignals feed the urgency score; the penalty is -3 per weight point.
var UrgencySignals = []UrgencySignal{
	{regexp.MustCompile(`(?i)urgent`), 3, `Mot "urgent" détecté`},
	{regexp.MustCompile(`(?i)vendre (tr[èe]s )?vite`), 3, "Urgence de vente mentionnée"},
	{regexp.MustCompile(`(?i)d[ée]m[ée]nage`), 2, "Déménagement mentionné"},
	{regexp.MustCompile(`(?i)voyage|partir|[ée]tranger`), 2, "Départ mentionné"},
	{regexp.MustCompile(`(?i)besoin (de )?liquidit[ée]`), 3, "Besoin financier mentionné"},
	{regexp.MustCompile(`(?i)premi[èe]re? qui vient`), 2, "Premier arrivé servi"},
	{regexp.MustCompile(`(?i)ne rate[zs]? pas`), 1, "Incitation à ne pas rater"},
	{regexp.MustCompile(`(?i)offre limit[ée]e`), 2, "Offre limitée suggérée"},
	{regexp.MustCompile(`(?i)cette semaine|ce week-?end`), 2, "Deadline temporelle"},
	{regexp.MustCompile(`(?i)pas le temps`), 2, "Manque de temps mentionné"},
}

// Validate checks internal consistency of the reference tables: every
// combination id must resolve to a catalog entry and generation year
// ranges must be well formed. Exercised by tests; data bugs fail fast.
func Validate() error {
	ids := make(map[string]bool, len(Catalog))
	for _, rec := range Catalog {
		if rec.ID == "" {
			return fmt.Errorf("catalog entry %q has empty id", rec.Name)
		}
		if ids[rec.ID] {
			return fmt.Errorf("duplicate catalog id %q", rec.ID)
		}
		if len(rec.Keywords) == 0 {
			return fmt.Errorf("catalog entry %q has no keywords", rec.ID)
		}
		ids[rec.ID] = true
	}

	for _, combo := range Combinations {
		if len(combo.Mods) < 2 {
			return fmt.Errorf("combination %q needs at least two modifications", combo.ID)
		}
		for _, id := range combo.Mods {
			if !ids[id] {
				return fmt.Errorf("combination %q references unknown modification %q", combo.ID, id)
			}
		}
	}

	for _, mk := range MarketPrices {
		for _, mod := range mk.Models {
			for _, gen := range mod.Generations {
				if gen.FirstYear > gen.LastYear {
					return fmt.Errorf("%s %s %s: inverted year range", mk.Name, mod.Name, gen.Code)
				}
				if gen.AvgKmPerYear <= 0 {
					return fmt.Errorf("%s %s %s: missing average yearly mileage", mk.Name, mod.Name, gen.Code)
				}
				if len(gen.Variants) == 0 {
					return fmt.Errorf("%s %s %s: no engine variants", mk.Name, mod.Name, gen.Code)
				}
				for _, v := range gen.Variants {
					if v.NewPriceEUR <= 0 {
						return fmt.Errorf("%s %s %s %s: missing new price", mk.Name, mod.Name, gen.Code, v.Name)
					}
				}
			}
		}
	}
	return nil
}
