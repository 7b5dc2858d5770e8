package analyze

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/venatus57/autoanalyseur/internal/market"
	"github.com/venatus57/autoanalyseur/internal/model"
	"github.com/venatus57/autoanalyseur/internal/refdata"
)

// Price verdicts relative to the market estimate.
const (
	PriceVeryLow  = "tres_bas"
	PriceLow      = "bas"
	PriceNormal   = "normal"
	PriceHigh     = "eleve"
	PriceVeryHigh = "tres_eleve"
)

// Mileage verdicts, derived from annual mileage.
const (
	MileageSuspectLow  = "suspect_bas"
	MileageLow         = "bas"
	MileageNormal      = "normal"
	MileageHigh        = "eleve"
	MileageSuspectHigh = "suspect_haut"
)

// Annual mileage bounds considered normal on the French market.
const (
	annualKmMin = 8000
	annualKmMax = 30000
)

// Description quality tiers.
const (
	DescriptionMissing   = "absente"
	DescriptionVeryBrief = "tres_courte"
	DescriptionBrief     = "courte"
	DescriptionCorrect   = "correcte"
	DescriptionDetailed  = "detaillee"
)

// Urgency levels.
const (
	UrgencyNormal   = "normal"
	UrgencyLight    = "leger"
	UrgencyModerate = "modere"
	UrgencyHigh     = "eleve"
)

// Alert is a single warning raised by the general analysis.
type Alert struct {
	Source   string         `json:"source"`
	Severity model.Severity `json:"severity"`
	Message  string         `json:"message"`
	Score    int            `json:"score,omitempty"`
}

// PriceAssessment rates the asking price against an estimate.
type PriceAssessment struct {
	Estimate   *market.Estimate `json:"estimate,omitempty"`
	Verdict    string           `json:"verdict,omitempty"`
	Source     string           `json:"source,omitempty"`
	Message    string           `json:"message"`
	Warning    string           `json:"warning,omitempty"`
	Advice     string           `json:"advice,omitempty"`
	Hypotheses []string         `json:"hypotheses,omitempty"`
	Ratio      float64          `json:"ratio,omitempty"`
	GapPercent int              `json:"gapPercent,omitempty"`
	Score      int              `json:"score"`
	Analyzable bool             `json:"analyzable"`
}

// MileageAssessment rates the mileage against the vehicle age.
type MileageAssessment struct {
	Verdict    string `json:"verdict,omitempty"`
	Message    string `json:"message"`
	Hypothesis string `json:"hypothesis,omitempty"`
	KmPerYear  int    `json:"kmPerYear,omitempty"`
	Score      int    `json:"score"`
	Coherent   bool   `json:"coherent"`
	Analyzable bool   `json:"analyzable"`
}

// DescriptionAssessment rates the description text itself.
type DescriptionAssessment struct {
	Quality string  `json:"quality"`
	Message string  `json:"message"`
	Length  int     `json:"length"`
	Alerts  []Alert `json:"alerts,omitempty"`
	Score   int     `json:"score"`
}

// UrgencyAssessment measures pressure-selling signals.
type UrgencyAssessment struct {
	Level   string   `json:"level"`
	Message string   `json:"message"`
	Signals []string `json:"signals,omitempty"`
	Weight  int      `json:"weight"`
	Score   int      `json:"score"`
}

// ReliabilityAssessment carries the known weak points of the model line.
type ReliabilityAssessment struct {
	Info        *refdata.ModelInfo `json:"info,omitempty"`
	EngineAlert *Alert             `json:"engineAlert,omitempty"`
	Message     string             `json:"message,omitempty"`
	Advice      string             `json:"advice,omitempty"`
	Score       int                `json:"score"`
	Analyzable  bool               `json:"analyzable"`
}

// GeneralResult is the coherence analysis of a listing: price, mileage,
// description quality, urgency and model reliability, with a section
// score in [0, 100].
type GeneralResult struct {
	Price       PriceAssessment       `json:"price"`
	Mileage     MileageAssessment     `json:"mileage"`
	Description DescriptionAssessment `json:"description"`
	Urgency     UrgencyAssessment     `json:"urgency"`
	Reliability ReliabilityAssessment `json:"reliability"`
	Alerts      []Alert               `json:"alerts,omitempty"`
	Score       int                   `json:"score"`
}

// GeneralAnalyzer runs the coherence checks. The market engine supplies
// price estimates.
type GeneralAnalyzer struct {
	market *market.Engine
	now    func() time.Time
}

// NewGeneralAnalyzer creates a general analyzer backed by the market engine.
func NewGeneralAnalyzer(m *market.Engine) *GeneralAnalyzer {
	return &GeneralAnalyzer{market: m, now: time.Now}
}

// Analyze runs every coherence check on the listing.
func (g *GeneralAnalyzer) Analyze(ctx context.Context, listing model.Listing) GeneralResult {
	result := GeneralResult{
		Price:       g.assessPrice(ctx, listing),
		Mileage:     g.assessMileage(listing),
		Description: assessDescription(listing.Description),
		Urgency:     assessUrgency(listing.Description),
		Reliability: assessReliability(listing),
	}

	score := 100 + result.Price.Score + result.Mileage.Score +
		result.Description.Score + result.Urgency.Score + result.Reliability.Score
	result.Score = clampRound(float64(score))

	result.Alerts = collectAlerts(result)
	return result
}

// assessPrice rates the asking price. A user-supplied reference price
// wins over the market estimate; vehicles without identity fall back to
// a crude age curve.
func (g *GeneralAnalyzer) assessPrice(ctx context.Context, listing model.Listing) PriceAssessment {
	if !listing.HasPrice() {
		return PriceAssessment{Message: "Prix non renseigné."}
	}

	if listing.HasReferencePrice() {
		pa := ratePrice(listing.PriceEUR, listing.ReferencePrice)
		pa.Source = "manuel"
		return pa
	}

	if listing.HasVehicleIdentity() && listing.HasYear() {
		est := g.market.Estimate(ctx, listing)
		pa := ratePrice(listing.PriceEUR, est.PriceEUR)
		pa.Estimate = &est
		pa.Source = est.Source
		if est.Found {
			pa.Message += fmt.Sprintf(" (Estimation: %d€ basée sur %s %s %d)",
				est.PriceEUR, listing.Make, listing.Model, listing.Year)
		} else {
			pa.Hypotheses = append(pa.Hypotheses, est.Message)
		}
		return pa
	}

	if listing.HasYear() {
		age := listing.Age(g.now().Year())
		basic := int(math.Round(math.Max(2000, 25000*math.Pow(0.88, float64(age)))))
		pa := ratePrice(listing.PriceEUR, basic)
		pa.Source = "estimation_basique"
		pa.Hypotheses = append(pa.Hypotheses, "Prix estimé approximativement (modèle non référencé).")
		return pa
	}

	return PriceAssessment{
		Message: "Renseignez la marque, le modèle et l'année pour une estimation automatique du prix.",
		Advice:  "Ou consultez La Centrale, Argus ou des annonces similaires sur Leboncoin.",
	}
}

// ratePrice buckets the asking/estimate ratio into verdicts.
func ratePrice(asking, estimated int) PriceAssessment {
	if estimated <= 0 {
		return PriceAssessment{Message: "Prix de référence non disponible"}
	}

	ratio := float64(asking) / float64(estimated)
	gap := int(math.Round((float64(asking-estimated) / float64(estimated)) * 100))

	pa := PriceAssessment{Analyzable: true, Ratio: ratio, GapPercent: gap}
	switch {
	case ratio < 0.7:
		pa.Verdict = PriceVeryLow
		pa.Message = fmt.Sprintf("Prix très inférieur au marché (%d%% en dessous).", -gap)
		pa.Warning = "ATTENTION : Prix suspect. Risque d'arnaque, de défauts cachés ou de problème administratif."
		pa.Hypotheses = []string{
			"Véhicule accidenté non déclaré",
			"Problème administratif (gage, opposition)",
			"Arnaque (véhicule inexistant)",
			"Vente précipitée (divorce, décès, dette)",
			"Kilométrage trafiqué",
		}
		pa.Score = -30
	case ratio < 0.85:
		pa.Verdict = PriceLow
		pa.Message = fmt.Sprintf("Prix inférieur au marché (%d%% en dessous).", -gap)
		pa.Warning = "Prix attractif mais vigilance recommandée."
		pa.Hypotheses = []string{
			"Vendeur pressé",
			"Petits défauts non mentionnés",
			"Négociation anticipée",
		}
		pa.Score = -10
	case ratio <= 1.15:
		pa.Verdict = PriceNormal
		pa.Message = "Prix conforme au marché."
	case ratio <= 1.3:
		pa.Verdict = PriceHigh
		pa.Message = fmt.Sprintf("Prix supérieur au marché (%d%% au-dessus).", gap)
		pa.Hypotheses = []string{
			"Options premium",
			"Faible kilométrage",
			"État exceptionnel",
			"Vendeur optimiste",
		}
		pa.Score = -5
	default:
		pa.Verdict = PriceVeryHigh
		pa.Message = fmt.Sprintf("Prix bien supérieur au marché (%d%% au-dessus).", gap)
		pa.Warning = "Prix excessif. Négociation fortement recommandée."
		pa.Score = -15
	}
	return pa
}

// assessMileage buckets the annual mileage.
func (g *GeneralAnalyzer) assessMileage(listing model.Listing) MileageAssessment {
	if !listing.HasMileage() || !listing.HasYear() {
		return MileageAssessment{
			Message: "Kilométrage ou année non renseigné",
			Score:   -5,
		}
	}

	age := listing.Age(g.now().Year())
	if age <= 0 {
		return MileageAssessment{
			Analyzable: true,
			Coherent:   true,
			Verdict:    MileageNormal,
			Message:    "Véhicule neuf ou récent",
		}
	}

	kmPerYear := int(math.Round(float64(listing.MileageKm) / float64(age)))
	ma := MileageAssessment{Analyzable: true, KmPerYear: kmPerYear}
	switch {
	case kmPerYear < 3000:
		ma.Verdict = MileageSuspectLow
		ma.Message = fmt.Sprintf("Kilométrage anormalement bas (%d km/an). Risque de compteur trafiqué.", kmPerYear)
		ma.Hypothesis = "Le kilométrage pourrait avoir été manipulé. Demander historique d'entretien et factures."
		ma.Score = -20
	case kmPerYear < annualKmMin:
		ma.Coherent = true
		ma.Verdict = MileageLow
		ma.Message = fmt.Sprintf("Kilométrage faible (%d km/an). Usage urbain probable.", kmPerYear)
		ma.Hypothesis = "Usage ville uniquement, attention aux embrayages et FAP sur diesel."
		ma.Score = -5
	case kmPerYear <= annualKmMax:
		ma.Coherent = true
		ma.Verdict = MileageNormal
		ma.Message = fmt.Sprintf("Kilométrage cohérent (%d km/an).", kmPerYear)
	case kmPerYear <= 50000:
		ma.Coherent = true
		ma.Verdict = MileageHigh
		ma.Message = fmt.Sprintf("Kilométrage élevé (%d km/an). Usage intensif (commercial, VTC ?).", kmPerYear)
		ma.Hypothesis = "Vérifier état mécanique général et historique d'entretien."
		ma.Score = -10
	default:
		ma.Verdict = MileageSuspectHigh
		ma.Message = fmt.Sprintf("Kilométrage extrêmement élevé (%d km/an). Usage professionnel intensif.", kmPerYear)
		ma.Hypothesis = "Usure mécanique probablement importante. Prudence recommandée."
		ma.Score = -25
	}
	return ma
}

var (
	clutchWorkPattern = regexp.MustCompile(`(?i)embrayage.{0,30}(chang|remplac|neuf|refait|km)`)
	clutchKmPattern   = regexp.MustCompile(`(?i)embrayage.{0,50}?(\d{2,3})\s?000`)
	trackUsePattern   = regexp.MustCompile(`(?i)circuit|track ?day|journée piste|roulage`)
	tuningVocab       = regexp.MustCompile(`(?i)stage\s?[123]|e85|flexfuel|launch.?control|pop.?and.?bang|crackle`)
	reinforcedParts   = regexp.MustCompile(`(?i)renforc[ée]|upgrad[ée]|racing|compétition|sachs|clutch masters`)
	flywheelPattern   = regexp.MustCompile(`(?i)volant.{0,20}(all[ée]g|bimasse|mono.?masse|sachs)`)
	offNetworkPattern = regexp.MustCompile(`(?i)hors r[ée]seau|garage ind[ée]pendant`)
	modifHintPattern  = regexp.MustCompile(`(?i)reprog|stage|pr[ée]par|modif`)
)

// assessDescription scans the text for red flags and tuning tells, then
// rates its length. The score is the sum of the alert scores.
func assessDescription(description string) DescriptionAssessment {
	if strings.TrimSpace(description) == "" {
		return DescriptionAssessment{
			Quality: DescriptionMissing,
			Message: "Aucune description fournie - ATTENTION, signe de mauvaise qualité d'annonce",
			Score:   -20,
			Alerts: []Alert{{
				Source:   "description",
				Severity: model.SeverityHigh,
				Message:  "Annonce sans description - très suspect",
			}},
		}
	}

	var alerts []Alert
	for _, flag := range refdata.RedFlags {
		if flag.Pattern.MatchString(description) {
			alerts = append(alerts, Alert{
				Source:   "description",
				Severity: flag.Severity,
				Message:  flag.Message,
				Score:    flag.Score,
			})
		}
	}

	// A clutch replaced well before 100 000 km points at hard driving
	// or a remap.
	if clutchWorkPattern.MatchString(description) {
		if m := clutchKmPattern.FindStringSubmatch(description); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n*1000 < 100000 {
				alerts = append(alerts, Alert{
					Source:   "description",
					Severity: model.SeverityHigh,
					Message:  fmt.Sprintf("Embrayage changé à %d km - ANORMALEMENT TÔT. Signe de conduite sportive ou reprogrammation.", n*1000),
					Score:    -15,
				})
			}
		}
	}
	if trackUsePattern.MatchString(description) {
		alerts = append(alerts, Alert{
			Source:   "description",
			Severity: model.SeverityHigh,
			Message:  "Usage circuit mentionné - sollicitation mécanique extrême probable",
			Score:    -20,
		})
	}
	if tuningVocab.MatchString(description) {
		alerts = append(alerts, Alert{
			Source:   "description",
			Severity: model.SeverityHigh,
			Message:  "Vocabulaire de préparation détecté - véhicule probablement modifié",
			Score:    -15,
		})
	}
	if reinforcedParts.MatchString(description) {
		alerts = append(alerts, Alert{
			Source:   "description",
			Severity: model.SeverityMedium,
			Message:  "Pièces renforcées mentionnées - suggère préparation pour puissance accrue",
			Score:    -10,
		})
	}
	if flywheelPattern.MatchString(description) {
		alerts = append(alerts, Alert{
			Source:   "description",
			Severity: model.SeverityMedium,
			Message:  "Volant moteur modifié - associé à préparations moteur",
			Score:    -10,
		})
	}
	if offNetworkPattern.MatchString(description) && modifHintPattern.MatchString(description) {
		alerts = append(alerts, Alert{
			Source:   "description",
			Severity: model.SeverityMedium,
			Message:  "Entretien hors réseau après modifications - historique difficile à vérifier",
			Score:    -8,
		})
	}

	length := len(description)
	switch {
	case length < 50:
		alerts = append(alerts, Alert{
			Source:   "description",
			Severity: model.SeverityMedium,
			Message:  "Description très courte - manque d'informations",
			Score:    -10,
		})
	case length < 150:
		alerts = append(alerts, Alert{
			Source:   "description",
			Severity: model.SeverityLow,
			Message:  "Description sommaire - demander plus de détails",
			Score:    -5,
		})
	case length > 500:
		alerts = append(alerts, Alert{
			Source:   "description",
			Severity: model.SeverityPositive,
			Message:  "Description détaillée - bon signe de transparence",
			Score:    3,
		})
	}

	da := DescriptionAssessment{Length: length, Alerts: alerts}
	switch {
	case length < 50:
		da.Quality = DescriptionVeryBrief
		da.Message = "Description trop courte pour être informative"
	case length < 150:
		da.Quality = DescriptionBrief
		da.Message = "Description sommaire - demander des précisions"
	case length < 500:
		da.Quality = DescriptionCorrect
		da.Message = "Description de longueur acceptable"
	default:
		da.Quality = DescriptionDetailed
		da.Message = "Description détaillée - bon signe"
	}
	for _, a := range alerts {
		da.Score += a.Score
	}
	return da
}

// assessUrgency totals pressure-selling signal weights; the penalty is
// three points per weight point.
func assessUrgency(description string) UrgencyAssessment {
	ua := UrgencyAssessment{}
	for _, sig := range refdata.UrgencySignals {
		if sig.Pattern.MatchString(description) {
			ua.Signals = append(ua.Signals, sig.Message)
			ua.Weight += sig.Weight
		}
	}
	ua.Score = -ua.Weight * 3

	switch {
	case ua.Weight == 0:
		ua.Level = UrgencyNormal
		ua.Message = "Aucun signe de précipitation détecté"
	case ua.Weight <= 2:
		ua.Level = UrgencyLight
		ua.Message = "Légère urgence suggérée - à vérifier"
	case ua.Weight <= 5:
		ua.Level = UrgencyModerate
		ua.Message = "Signes d'urgence modérés - prudence"
	default:
		ua.Level = UrgencyHigh
		ua.Message = "Forte urgence détectée - ATTENTION aux arnaques"
	}
	return ua
}

// assessReliability looks the model line up and flags engines with a
// known bad reputation.
func assessReliability(listing model.Listing) ReliabilityAssessment {
	if !listing.HasVehicleIdentity() {
		return ReliabilityAssessment{Message: "Marque ou modèle non renseigné"}
	}

	info, ok := refdata.FindModelInfo(listing.Make, listing.Model)
	if !ok {
		return ReliabilityAssessment{
			Message: fmt.Sprintf("Modèle %s %s non référencé dans notre base", listing.Make, listing.Model),
			Advice:  "Faites des recherches sur les forums spécialisés pour ce modèle.",
		}
	}

	ra := ReliabilityAssessment{Analyzable: true, Info: &info}
	if variant := strings.ToLower(listing.EngineVariant); variant != "" {
		for _, engine := range info.ProblematicEngines {
			token := strings.ToLower(strings.SplitN(engine, " ", 2)[0])
			if strings.Contains(variant, token) {
				ra.EngineAlert = &Alert{
					Source:   "modele",
					Severity: model.SeverityMedium,
					Message:  fmt.Sprintf("Motorisation potentiellement problématique : %s", engine),
					Score:    -10,
				}
				ra.Score = -10
				break
			}
		}
	}
	return ra
}

// collectAlerts flattens the section findings into one alert list.
func collectAlerts(result GeneralResult) []Alert {
	var alerts []Alert

	if result.Price.Warning != "" {
		alerts = append(alerts, Alert{
			Source:   "prix",
			Severity: priceSeverity(result.Price.Verdict),
			Message:  result.Price.Warning,
		})
	}

	if result.Mileage.Verdict != "" && result.Mileage.Verdict != MileageNormal {
		sev := model.SeverityMedium
		if strings.Contains(result.Mileage.Verdict, "suspect") {
			sev = model.SeverityHigh
		}
		alerts = append(alerts, Alert{Source: "kilometrage", Severity: sev, Message: result.Mileage.Message})
	}

	for _, a := range result.Description.Alerts {
		if a.Score < 0 || a.Severity == model.SeverityHigh {
			alerts = append(alerts, a)
		}
	}

	if result.Urgency.Level != UrgencyNormal {
		sev := model.SeverityMedium
		if result.Urgency.Level == UrgencyHigh {
			sev = model.SeverityHigh
		}
		alerts = append(alerts, Alert{Source: "urgence", Severity: sev, Message: result.Urgency.Message})
	}

	if result.Reliability.EngineAlert != nil {
		alerts = append(alerts, *result.Reliability.EngineAlert)
	}

	return alerts
}

func priceSeverity(verdict string) model.Severity {
	switch verdict {
	case PriceVeryLow:
		return model.SeverityHigh
	case PriceLow, PriceVeryHigh:
		return model.SeverityMedium
	default:
		return model.SeverityInfo
	}
}
