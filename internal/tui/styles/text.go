package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Dallionking/stepline/internal/stepper"
)

// ---------------------------------------------------------------------------
// Inline text helpers
// ---------------------------------------------------------------------------

// Fg renders s in color c.
func Fg(c lipgloss.Color, s string) string {
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

// StateColor is the palette color a step state is drawn in.
func StateColor(state stepper.StepState) lipgloss.Color {
	switch state {
	case stepper.Done:
		return StatusOK
	case stepper.Current:
		return AccentPrimary
	default:
		return TextMuted
	}
}

// StateText renders s in the color of state.
func StateText(state stepper.StepState, s string) string {
	return Fg(StateColor(state), s)
}

// StateGlyph is the single-cell marker for state: ✓ done, ● current, ○ todo.
func StateGlyph(state stepper.StepState) string {
	switch state {
	case stepper.Done:
		return StateText(state, "✓")
	case stepper.Current:
		return StateText(state, "●")
	default:
		return StateText(state, "○")
	}
}

// ErrorText renders s in StatusError.
func ErrorText(s string) string {
	return Fg(StatusError, s)
}

// Dim renders s in TextMuted.
func Dim(s string) string {
	return Fg(TextMuted, s)
}

// Bold renders s in bold TextPrimary.
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(TextPrimary).Render(s)
}

// Truncate shortens s to max terminal cells, ending in "…" when cut.
// Escape sequences don't count toward the width.
func Truncate(s string, max int) string {
	return ansi.Truncate(s, max, "…")
}
