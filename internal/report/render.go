package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/venatus57/autoanalyseur/internal/analyze"
	"github.com/venatus57/autoanalyseur/internal/market"
	"github.com/venatus57/autoanalyseur/internal/model"
)

// RenderJSON marshals any result for scripting use.
func RenderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}

// Render formats a full analysis report for the terminal.
func Render(r *analyze.Report) string {
	var sections []string

	sections = append(sections, renderSummary(r))
	sections = append(sections, renderCategories(r.Score))
	if s := renderAlerts(r); s != "" {
		sections = append(sections, s)
	}
	sections = append(sections, renderGeneral(r.General))
	sections = append(sections, renderModifications(r.Modifications))
	if s := renderRecommendations(r.Modifications.Recommendations); s != "" {
		sections = append(sections, s)
	}
	if r.Score.Warning != nil {
		sections = append(sections, renderWarning(r.Score.Warning))
	}
	if r.Resale != nil && r.Resale.Analyzable {
		sections = append(sections, renderResale(r.Resale))
	}

	return strings.Join(sections, "\n\n") + "\n"
}

func renderSummary(r *analyze.Report) string {
	icon := OKIcon
	switch r.Score.Tier {
	case analyze.ScoreAverage, analyze.ScoreRisky:
		icon = WarnIcon
	case analyze.ScoreCritical:
		icon = DangerIcon
	}

	title := fmt.Sprintf("%s Score de confiance : %s", icon,
		ScoreStyle(r.Score.Global).Bold(true).Render(fmt.Sprintf("%d/100", r.Score.Global)))
	lines := []string{
		BoldStyle.Render(r.Score.Label),
		r.Score.Description,
	}
	if r.Listing.HasVehicleIdentity() {
		vehicle := fmt.Sprintf("%s %s", r.Listing.Make, r.Listing.Model)
		if r.Listing.HasYear() {
			vehicle += fmt.Sprintf(" (%d)", r.Listing.Year)
		}
		lines = append(lines, SubtitleStyle.UnsetMargins().Render(vehicle))
	}
	return RenderBox(title, strings.Join(lines, "\n"))
}

func renderCategories(score analyze.FinalScore) string {
	rows := []struct {
		icon  string
		label string
		cat   analyze.CategoryScore
	}{
		{WrenchIcon, "Mécanique", score.Mechanical},
		{ScaleIcon, "Légalité", score.Legal},
		{MoneyIcon, "Revente", score.Resale},
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Scores par catégorie"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s %-10s %s %s %s\n",
			row.icon,
			row.label,
			gauge(row.cat.Score),
			ScoreStyle(row.cat.Score).Render(fmt.Sprintf("%3d/100", row.cat.Score)),
			SubtleStyle.Render(row.cat.Description)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// gauge draws a 20-cell score bar.
func gauge(score int) string {
	filled := score / 5
	if filled < 0 {
		filled = 0
	}
	if filled > 20 {
		filled = 20
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	return ScoreStyle(score).Render(bar)
}

func renderAlerts(r *analyze.Report) string {
	var lines []string
	for _, a := range r.General.Alerts {
		if a.Severity == model.SeverityHigh || a.Severity == model.SeverityCritical {
			lines = append(lines, DangerStyle.Render(fmt.Sprintf("%s %s", DangerIcon, a.Message)))
		}
	}
	for _, c := range r.Modifications.Combinations {
		lines = append(lines, DangerStyle.Render(fmt.Sprintf("%s %s", DangerIcon, c.Message)))
	}
	if len(lines) == 0 {
		return ""
	}
	return TitleStyle.Render("Alertes principales") + "\n" + strings.Join(lines, "\n")
}

func renderGeneral(g analyze.GeneralResult) string {
	var lines []string

	lines = append(lines, itemLine("Prix", g.Price.Message, g.Price.Score))
	if g.Price.Warning != "" {
		lines = append(lines, "   "+WarningStyle.Render(g.Price.Warning))
	}
	for _, h := range g.Price.Hypotheses {
		lines = append(lines, "   "+SubtleStyle.Render("• "+h))
	}

	lines = append(lines, itemLine("Kilométrage", g.Mileage.Message, g.Mileage.Score))
	if g.Mileage.Hypothesis != "" {
		lines = append(lines, "   "+SubtleStyle.Render("• "+g.Mileage.Hypothesis))
	}

	lines = append(lines, itemLine("Description", g.Description.Message, g.Description.Score))
	lines = append(lines, itemLine("Urgence", g.Urgency.Message, g.Urgency.Score))

	if g.Reliability.Analyzable && g.Reliability.Info != nil {
		info := g.Reliability.Info
		lines = append(lines, itemLine("Modèle",
			fmt.Sprintf("%s %s - fiabilité marque %s", info.Make, info.Model, info.MakeReliability),
			g.Reliability.Score))
		if len(info.WatchPoints) > 0 {
			lines = append(lines, "   "+SubtleStyle.Render("Points de vigilance : "+strings.Join(info.WatchPoints, ", ")))
		}
		if g.Reliability.EngineAlert != nil {
			lines = append(lines, "   "+WarningStyle.Render(g.Reliability.EngineAlert.Message))
		}
	} else if g.Reliability.Message != "" {
		lines = append(lines, itemLine("Modèle", g.Reliability.Message, 0))
	}

	return TitleStyle.Render(fmt.Sprintf("Analyse générale (%d/100)", g.Score)) + "\n" + strings.Join(lines, "\n")
}

func itemLine(label, message string, score int) string {
	icon := OKIcon
	if score < 0 {
		icon = WarnIcon
	}
	return fmt.Sprintf("%s %s : %s", icon, BoldStyle.Render(label), message)
}

func renderModifications(m analyze.ModificationResult) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Modifications"))
	b.WriteString("\n")
	b.WriteString(m.Summary.Title + " - " + m.Summary.Description)

	for _, mod := range m.Modifications {
		b.WriteString("\n\n")
		b.WriteString(renderModCard(mod))
	}
	return b.String()
}

func renderModCard(mod analyze.ModEvaluation) string {
	var style lipgloss.Style
	var icon string
	switch mod.Record.Verdict {
	case model.VerdictSound:
		style, icon = SuccessStyle, OKIcon
	case model.VerdictRisk:
		style, icon = DangerStyle, DangerIcon
	default:
		style, icon = WarningStyle, WarnIcon
	}

	header := style.Render(fmt.Sprintf("%s %s", icon, mod.Record.Name))
	var lines []string
	lines = append(lines, header)
	if mod.MatchedKeyword != "" {
		lines = append(lines, SubtleStyle.Render(fmt.Sprintf("   détecté via \"%s\" (confiance %s)", mod.MatchedKeyword, mod.Confidence)))
	} else if mod.Source == model.SourceDeclared {
		lines = append(lines, SubtleStyle.Render("   déclaré par l'utilisateur"))
	}
	if mod.Explanation != "" {
		lines = append(lines, "   "+mod.Explanation)
	}
	if mod.Record.Legal.Detail != "" {
		lines = append(lines, "   "+SubtleStyle.Render("Légal : "+mod.Record.Legal.Detail))
	}
	if mod.Record.Resale.Detail != "" {
		lines = append(lines, "   "+SubtleStyle.Render("Revente : "+mod.Record.Resale.Detail))
	}
	return strings.Join(lines, "\n")
}

func renderRecommendations(recs []analyze.Recommendation) string {
	if len(recs) == 0 {
		return ""
	}
	var lines []string
	for _, r := range recs {
		style := SuccessStyle
		switch r.Type {
		case analyze.RecCritical:
			style = DangerStyle
		case analyze.RecLegal, analyze.RecInsurance:
			style = WarningStyle
		}
		lines = append(lines, fmt.Sprintf("%s %s", AdviceIcon, style.Render(r.Message)))
	}
	return TitleStyle.Render("Recommandations") + "\n" + strings.Join(lines, "\n")
}

func renderWarning(w *analyze.ExpertiseWarning) string {
	content := []string{
		w.Message,
		"Raisons : " + strings.Join(w.Reasons, ", "),
		"À vérifier : " + strings.Join(w.CheckPoints, ", "),
	}
	return RenderBox(DangerStyle.Render(WarnIcon+" "+w.Recommendation), strings.Join(content, "\n"))
}

func renderResale(p *market.ResalePrediction) string {
	lines := []string{
		fmt.Sprintf("Valeur estimée actuelle : %d€", p.CurrentEstimate),
		fmt.Sprintf("Valeur estimée dans %d ans : %d€", p.Years, p.ResalePrice),
		fmt.Sprintf("Perte totale : %d€ (%d%%), soit %d€/an", p.TotalLoss, p.LossPercent, p.AnnualLoss),
		SubtleStyle.Render(p.Advice),
	}
	if p.Collector {
		lines = append(lines, SuccessStyle.Render("Véhicule collector - cote susceptible de monter"))
	}
	return TitleStyle.Render("Prédiction de revente") + "\n" + strings.Join(lines, "\n")
}

// RenderEstimate formats a standalone price estimate.
func RenderEstimate(est market.Estimate) string {
	var lines []string
	lines = append(lines, BoldStyle.Render(market.Describe(est)))
	lines = append(lines, SubtleStyle.Render("Confiance : "+est.Confidence))
	if est.Message != "" {
		lines = append(lines, WarningStyle.Render(est.Message))
	}
	if est.ExpectedKm > 0 {
		lines = append(lines, SubtleStyle.Render(fmt.Sprintf("Kilométrage attendu : ~%d km", est.ExpectedKm)))
	}
	return RenderBox(MoneyIcon+" Estimation du prix", strings.Join(lines, "\n")) + "\n"
}

// RenderChecklist formats the photo checklist for the terminal.
func RenderChecklist(c Checklist) string {
	var sections []string
	for _, s := range c.Sections {
		var b strings.Builder
		b.WriteString(TitleStyle.Render(s.Icon + " " + s.Title))
		b.WriteString("\n")
		for _, item := range s.Items {
			style := SubtleStyle
			switch item.Importance {
			case ImportanceCritical:
				style = DangerStyle
			case ImportanceHigh:
				style = WarningStyle
			}
			b.WriteString(fmt.Sprintf("[ ] %s\n", item.Question))
			b.WriteString("    " + style.Render(item.Hint) + "\n")
		}
		sections = append(sections, strings.TrimRight(b.String(), "\n"))
	}

	var advice strings.Builder
	advice.WriteString(TitleStyle.Render(AdviceIcon + " Conseils"))
	advice.WriteString("\n")
	for _, a := range c.Advice {
		advice.WriteString(BoldStyle.Render(a.Title) + " : " + a.Description + "\n")
	}
	sections = append(sections, strings.TrimRight(advice.String(), "\n"))

	return strings.Join(sections, "\n\n") + "\n"
}
