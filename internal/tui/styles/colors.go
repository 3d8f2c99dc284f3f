package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepline/internal/stepper"
)

// Gotham Night -- Dark Palette
// Deep midnight backgrounds with electric cyan accents.

var (
	// Backgrounds (darkest to lightest)
	BgDeep    = lipgloss.Color("#0a0e14") // Deepest -- main background
	BgPanel   = lipgloss.Color("#11151c") // Panel/card background
	BgSurface = lipgloss.Color("#1a1f2e") // Elevated surface

	// Accents
	AccentPrimary   = lipgloss.Color("#4fc1ff") // Cyan -- current step, focused borders
	AccentSecondary = lipgloss.Color("#39c5bb") // Teal -- secondary info
	AccentTertiary  = lipgloss.Color("#7c3aed") // Purple -- dialogs
	AccentGold      = lipgloss.Color("#f5a623") // Gold -- highlights

	// Status
	StatusOK    = lipgloss.Color("#22c55e") // Green -- done steps
	StatusWarn  = lipgloss.Color("#f59e0b") // Amber
	StatusError = lipgloss.Color("#ef4444") // Red

	// Text
	TextPrimary   = lipgloss.Color("#e2e8f0") // High contrast
	TextSecondary = lipgloss.Color("#94a3b8") // Dimmed
	TextMuted     = lipgloss.Color("#64748b") // Very dim -- todo steps

	// Borders
	BorderNormal  = lipgloss.Color("#2d3748") // Subtle -- line track
	BorderFocused = lipgloss.Color("#4fc1ff") // Cyan focus ring
)

// Hex converts a palette color to a stepper style color.
func Hex(c lipgloss.Color) stepper.Color {
	return stepper.Color(c)
}

// Color converts a stepper style color to a lipgloss color. Empty colors
// map to the terminal default.
func Color(c stepper.Color) lipgloss.TerminalColor {
	if c == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c)
}
