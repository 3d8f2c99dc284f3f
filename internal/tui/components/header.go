package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepline/internal/stepper"
	"github.com/Dallionking/stepline/internal/tui/styles"
)

// Header renders the preview header bar.
type Header struct {
	Name        string
	Flavor      styles.Flavor
	Orientation stepper.Orientation
	Position    float64
	StepCount   int
	Width       int
}

// Render returns the styled header string.
func (h Header) Render() string {
	width := h.Width
	if width <= 0 {
		width = 80
	}

	logo := lipgloss.NewStyle().
		Foreground(styles.AccentPrimary).
		Bold(true).
		Render(styles.CompactLogo)

	sep := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("  │  ")

	name := styles.Label.Render("Definition: ") +
		lipgloss.NewStyle().Foreground(styles.AccentGold).Bold(true).Render(h.Name)

	layout := styles.Label.Render("Layout: ") +
		styles.Value.Render(fmt.Sprintf("%s/%s", h.Flavor, h.Orientation))

	pos := styles.Label.Render("Position: ") +
		styles.Value.Render(fmt.Sprintf("%.2f/%d", h.Position, h.StepCount))

	content := logo + sep + name + sep + layout + sep + pos

	return styles.Header.Width(width).Render(content)
}
