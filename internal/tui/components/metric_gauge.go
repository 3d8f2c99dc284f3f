package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepline/internal/stepper"
	"github.com/Dallionking/stepline/internal/tui/styles"
)

// PositionGauge shows how far through the sequence the cursor is.
type PositionGauge struct {
	Position  float64
	StepCount int
}

// Completion is the fraction of the sequence done, in [0,1].
func (g PositionGauge) Completion() float64 {
	if g.StepCount <= 0 || g.Position <= 0 {
		return 0
	}
	return min(g.Position/float64(g.StepCount), 1)
}

// gaugeColor follows the step state palette: muted before the first step,
// cyan while in progress, green once everything is done.
func (g PositionGauge) gaugeColor() lipgloss.Color {
	switch {
	case g.Position < 0:
		return styles.TextMuted
	case g.Completion() >= 1:
		return styles.StatusOK
	default:
		return styles.AccentPrimary
	}
}

// Render returns the styled gauge.
func (g PositionGauge) Render() string {
	color := g.gaugeColor()

	valueStyle := lipgloss.NewStyle().
		Foreground(color).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted)

	current := "not started"
	if g.Position >= 0 {
		idx := int(stepper.Clamp(g.Position, g.StepCount))
		if idx >= g.StepCount {
			current = "complete"
		} else {
			current = fmt.Sprintf("step %d of %d", idx+1, g.StepCount)
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		valueStyle.Render(fmt.Sprintf("%.0f%%", g.Completion()*100)),
		labelStyle.Render(current),
	)
}
