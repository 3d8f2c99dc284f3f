package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepline/internal/tui/styles"
)

// ConfirmDialog is a modal yes/no prompt. The caller routes key messages to
// Update while Done is false.
type ConfirmDialog struct {
	Title     string
	Message   string
	Confirmed bool
	Done      bool
	yes       bool // focused button
}

// NewConfirmDialog creates a dialog focused on "No".
func NewConfirmDialog(title, message string) ConfirmDialog {
	return ConfirmDialog{Title: title, Message: message}
}

// Update handles y/n, arrow focus and enter.
func (d ConfirmDialog) Update(msg tea.Msg) (ConfirmDialog, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch k.String() {
	case "y", "Y":
		d.Confirmed, d.Done = true, true
	case "n", "N", "esc":
		d.Confirmed, d.Done = false, true
	case "enter":
		d.Confirmed, d.Done = d.yes, true
	case "left", "h", "tab":
		d.yes = true
	case "right", "l", "shift+tab":
		d.yes = false
	}
	return d, nil
}

// View returns the styled dialog.
func (d ConfirmDialog) View() string {
	focused := lipgloss.NewStyle().
		Background(styles.AccentPrimary).
		Foreground(styles.BgDeep).
		Bold(true).
		Padding(0, 1)
	blurred := lipgloss.NewStyle().
		Background(styles.BgSurface).
		Foreground(styles.TextSecondary).
		Padding(0, 1)

	yesBtn, noBtn := blurred.Render("Yes"), focused.Render("No")
	if d.yes {
		yesBtn, noBtn = focused.Render("Yes"), blurred.Render("No")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.Title.Render(d.Title),
		"",
		styles.Subtitle.Render(d.Message),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, yesBtn, "  ", noBtn),
		"",
		styles.Dim("y/n or ←→ + enter"),
	)

	return lipgloss.NewStyle().
		Background(styles.BgPanel).
		Border(styles.RoundedBorder).
		BorderForeground(styles.AccentTertiary).
		Padding(1, 2).
		Width(48).
		Align(lipgloss.Center).
		Render(content)
}
