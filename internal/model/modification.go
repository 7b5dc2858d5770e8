package model

// ModCategory groups catalog entries by the part of the vehicle they touch.
type ModCategory string

const (
	CategoryEngine     ModCategory = "moteur"
	CategoryChassis    ModCategory = "chassis"
	CategoryWheels     ModCategory = "roues"
	CategoryAesthetic  ModCategory = "esthetique"
	CategoryElectronic ModCategory = "electronique"
	CategoryUnknown    ModCategory = "inconnu"
)

// LegalLevel classifies road-legality of a modification in France.
type LegalLevel string

const (
	LegalTolerated    LegalLevel = "tolere"
	LegalConditional  LegalLevel = "conditionnel"
	LegalNonCompliant LegalLevel = "non_conforme"
	LegalIllegal      LegalLevel = "illegal"
	LegalUnknown      LegalLevel = "inconnu"
)

// Verdict is the per-modification risk call.
type Verdict string

const (
	VerdictSound   Verdict = "ok"
	VerdictMonitor Verdict = "vigilance"
	VerdictRisk    Verdict = "risque"
)

// Source records how a modification entered the analysis.
type Source string

const (
	SourceDetected Source = "detecte"
	SourceDeclared Source = "declare"
)

// Confidence qualifies keyword matches: whole-word hits rank high,
// substring hits medium.
type Confidence string

const (
	ConfidenceHigh   Confidence = "haute"
	ConfidenceMedium Confidence = "moyenne"
)

// Severity ranks dangerous combinations and alerts.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityPositive Severity = "positif"
	SeverityLow      Severity = "faible"
	SeverityMedium   Severity = "moyen"
	SeverityHigh     Severity = "eleve"
	SeverityCritical Severity = "critique"
)

// ScoreImpact is the per-axis score delta a modification carries.
// Values are negative for penalties.
type ScoreImpact struct {
	Mechanical int `json:"mechanical"`
	Legal      int `json:"legal"`
	Resale     int `json:"resale"`
}

// LegalImpact describes the regulatory consequences of a modification.
type LegalImpact struct {
	Level          LegalLevel `json:"level"`
	Detail         string     `json:"detail"`
	InspectionRisk string     `json:"inspectionRisk,omitempty"`
}

// ResaleImpact describes how a modification affects resale value.
type ResaleImpact struct {
	Detail string  `json:"detail"`
	Factor float64 `json:"factor"`
}

// ModificationRecord is one catalog entry: a known aftermarket modification
// with its detection keywords and assessed impact.
type ModificationRecord struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     ModCategory  `json:"category"`
	Keywords     []string     `json:"keywords"`
	Objective    string       `json:"objective,omitempty"`
	Benefits     []string     `json:"benefits,omitempty"`
	Risks        []string     `json:"risks,omitempty"`
	Legal        LegalImpact  `json:"legal"`
	Resale       ResaleImpact `json:"resale"`
	MechanicNote string       `json:"mechanicNote,omitempty"`
	InsurerNote  string       `json:"insurerNote,omitempty"`
	Verdict      Verdict      `json:"verdict"`
	Impact       ScoreImpact  `json:"impact"`
}

// DetectedModification is a catalog entry matched against a listing,
// annotated with how it was found.
type DetectedModification struct {
	Record         ModificationRecord `json:"record"`
	Source         Source             `json:"source"`
	Confidence     Confidence         `json:"confidence"`
	MatchedKeyword string             `json:"matchedKeyword,omitempty"`
}

// DangerousCombination is a rule that fires when every listed modification
// id is present together.
type DangerousCombination struct {
	ID          string   `json:"id"`
	Mods        []string `json:"mods"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	Risks       []string `json:"risks,omitempty"`
	ScoreDelta  int      `json:"scoreDelta"`
	InsurerNote string   `json:"insurerNote,omitempty"`
}

// FiresOn reports whether every required modification id is in present.
func (c DangerousCombination) FiresOn(present map[string]bool) bool {
	for _, id := range c.Mods {
		if !present[id] {
			return false
		}
	}
	return len(c.Mods) > 0
}
