package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepline/internal/stepper"
	"github.com/Dallionking/stepline/internal/tui/styles"
)

// CompactStepper shows a sequence on a single line without connectors, for
// status lines and narrow terminals.
type CompactStepper struct {
	Steps              []string // step titles
	Position           float64
	IgnoreCurrentState bool
}

// Render returns the styled one-line stepper.
// Done steps get a filled green dot, the current step gets a cyan bold
// dot, and todo steps get an empty muted circle.
func (p CompactStepper) Render() string {
	if len(p.Steps) == 0 {
		return ""
	}

	var parts []string

	for i, label := range p.Steps {
		var dot string
		var labelStr string

		switch stepper.ComputeStepState(i, p.Position, p.IgnoreCurrentState) {
		case stepper.Done:
			dot = lipgloss.NewStyle().Foreground(styles.StatusOK).Render("●")
			labelStr = lipgloss.NewStyle().Foreground(styles.StatusOK).Render(label)
		case stepper.Current:
			dot = lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true).Render("●")
			labelStr = lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true).Render(label)
		default:
			dot = lipgloss.NewStyle().Foreground(styles.TextMuted).Render("○")
			labelStr = lipgloss.NewStyle().Foreground(styles.TextMuted).Render(label)
		}

		parts = append(parts, dot+" "+labelStr)
	}

	separator := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("  ")
	return strings.Join(parts, separator)
}
