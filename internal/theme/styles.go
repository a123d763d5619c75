package theme

import "github.com/charmbracelet/lipgloss"

// Report styles
var (
	DetailStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			PaddingLeft(6)

	DurationStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	RunIDStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Status badge styles
var (
	FailStyle = lipgloss.NewStyle().
			Foreground(ColorFail).
			Bold(true)

	PassStyle = lipgloss.NewStyle().
			Foreground(ColorPass).
			Bold(true)

	SkipStyle = lipgloss.NewStyle().
			Foreground(ColorSkip)
)

// StatusStyle returns the badge style for a case status
// ("PASS", "FAIL" or "SKIP"). Unknown statuses are rendered unstyled.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "PASS":
		return PassStyle
	case "FAIL":
		return FailStyle
	case "SKIP":
		return SkipStyle
	}
	return lipgloss.NewStyle()
}
