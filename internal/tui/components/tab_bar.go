package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepline/internal/tui/styles"
)

// TabBar renders a row of numbered tabs; tab i is selected with key i+1.
type TabBar struct {
	Tabs      []string
	ActiveTab int
	Width     int
}

// FlavorTabs returns a tab bar listing every stepper flavor.
func FlavorTabs(active styles.Flavor, width int) TabBar {
	flavors := styles.AllFlavors()
	tabs := make([]string, len(flavors))
	for i, f := range flavors {
		tabs[i] = f.String()
	}
	return TabBar{Tabs: tabs, ActiveTab: int(active), Width: width}
}

// Render returns the styled tab bar string.
func (t TabBar) Render() string {
	if len(t.Tabs) == 0 {
		return ""
	}

	hotkey := lipgloss.NewStyle().Foreground(styles.TextMuted)
	active := lipgloss.NewStyle().
		Foreground(styles.AccentPrimary).
		Bold(true).
		Underline(true)
	inactive := lipgloss.NewStyle().Foreground(styles.TextSecondary)
	cell := lipgloss.NewStyle().Padding(0, 1)

	tabs := make([]string, len(t.Tabs))
	for i, tab := range t.Tabs {
		label := inactive.Render(tab)
		if i == t.ActiveTab {
			label = active.Render(tab)
		}
		tabs[i] = cell.Render(hotkey.Render(strconv.Itoa(i+1)) + " " + label)
	}

	sep := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("│")
	return lipgloss.NewStyle().
		Background(styles.BgDeep).
		Width(t.Width).
		Render(strings.Join(tabs, sep))
}
