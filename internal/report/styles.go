// Package report renders analysis results for the terminal, styled with
// lipgloss, and as JSON for scripting.
package report

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#5FAFFF")
	// SuccessColor indicates good scores and positive findings.
	SuccessColor = lipgloss.Color("#22C55E")
	// WarningColor indicates findings that need attention.
	WarningColor = lipgloss.Color("#F59E0B")
	// DangerColor indicates critical findings.
	DangerColor = lipgloss.Color("#EF4444")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtitleStyle is used for secondary headings.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginBottom(1)

	// SuccessStyle formats positive findings.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats cautionary findings.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// DangerStyle formats critical findings.
	DangerStyle = lipgloss.NewStyle().
			Foreground(DangerColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// Icons.
const (
	OKIcon     = "✅"
	WarnIcon   = "⚠️"
	DangerIcon = "❌"
	CarIcon    = "🚗"
	WrenchIcon = "🔧"
	ScaleIcon  = "⚖️"
	MoneyIcon  = "💶"
	SearchIcon = "🔍"
	CameraIcon = "📷"
	AdviceIcon = "💡"
)

// RenderBox renders content in a styled box under a title.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	)

	return BoxStyle.Render(boxContent)
}

// ScoreStyle picks a style by score band.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 65:
		return SuccessStyle
	case score >= 50:
		return WarningStyle
	default:
		return DangerStyle
	}
}
