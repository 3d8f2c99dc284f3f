package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepline/internal/tui/styles"
)

// Footer renders context-aware keybinding hints from bubbles key bindings.
// Disabled bindings are skipped.
type Footer struct {
	Bindings []key.Binding
	Status   string // right-aligned status text
	Width    int
}

// Render returns the styled footer string.
func (f Footer) Render() string {
	width := f.Width
	if width <= 0 {
		width = 80
	}

	keyStyle := lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
	sepStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}

	content := strings.Join(parts, sepStyle.Render(" • "))
	if f.Status != "" {
		status := lipgloss.NewStyle().Foreground(styles.AccentGold).Render(f.Status)
		space := width - 2 - lipgloss.Width(content) - lipgloss.Width(status)
		if space > 0 {
			content += strings.Repeat(" ", space) + status
		}
	}

	return styles.Footer.Width(width).Render(content)
}
