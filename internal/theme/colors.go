package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - scenario titles
	ColorSecondary Color = "86" // Cyan - run ids
)

// Case status colors
const (
	ColorFail Color = "1" // Red
	ColorPass Color = "2" // Green
	ColorSkip Color = "3" // Yellow
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - durations, diagnostics
	ColorSubtle    Color = "245" // Light gray - labels
)
