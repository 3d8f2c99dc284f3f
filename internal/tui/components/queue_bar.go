package components

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepline/internal/stepper"
	"github.com/Dallionking/stepline/internal/tui/styles"
)

// TimelineBar shows the timed-mode schedule as a horizontal flow of
// segments, one per step, with the running segment highlighted.
type TimelineBar struct {
	Titles    []string
	Durations []time.Duration
	Position  float64
	Running   bool
	Width     int
}

// Render returns the styled timeline panel, or "" without durations.
func (t TimelineBar) Render() string {
	if len(t.Durations) == 0 {
		return ""
	}
	width := t.Width
	if width <= 0 {
		width = 72
	}

	arrow := lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(" ──▶ ")

	var total time.Duration
	var line string
	for i, d := range t.Durations {
		total += d

		label := stepName(t.Titles, i)
		var color lipgloss.Color
		switch stepper.ComputeStepState(i, t.Position, false) {
		case stepper.Done:
			color = styles.StatusOK
		case stepper.Current:
			color = styles.TextSecondary
			if t.Running {
				color = styles.AccentPrimary
			}
		default:
			color = styles.TextMuted
		}

		labelStyle := lipgloss.NewStyle().Foreground(color)
		durStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
		line += labelStyle.Render(label) + " " + durStyle.Render("["+d.String()+"]")
		if i < len(t.Durations)-1 {
			line += arrow
		}
	}

	// Title for the top of the border.
	title := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Bold(true).
		Render(" Timeline " + remaining(t.Durations, t.Position).String() + " / " + total.String() + " ")

	panelStyle := lipgloss.NewStyle().
		Background(styles.BgPanel).
		Border(styles.RoundedBorder).
		BorderTop(false).
		BorderForeground(styles.BorderNormal).
		Padding(0, 1).
		Width(width - 2)

	content := panelStyle.Render(line)

	// Draw the top border by hand so the title sits inside it.
	border := lipgloss.NewStyle().Foreground(styles.BorderNormal)
	fill := lipgloss.Width(content) - lipgloss.Width(title) - 3
	if fill < 0 {
		return joinLines([]string{title, content})
	}
	top := border.Render(styles.RoundedBorder.TopLeft+"─") + title +
		border.Render(strings.Repeat("─", fill)+styles.RoundedBorder.TopRight)
	return joinLines([]string{top, content})
}

// remaining is the scheduled time left from position to the end. The
// current segment counts in proportion to its unfilled part.
func remaining(durations []time.Duration, position float64) time.Duration {
	var left time.Duration
	for i, d := range durations {
		switch frac := position - float64(i); {
		case frac <= 0:
			left += d
		case frac < 1:
			left += time.Duration(math.Round(float64(d) * (1 - frac)))
		}
	}
	return left
}

func stepName(titles []string, i int) string {
	if i < len(titles) && titles[i] != "" {
		return titles[i]
	}
	return "#" + strconv.Itoa(i+1)
}
