package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepline/internal/tui/styles"
)

// Event is one entry in the preview's event log: a step completing, a
// definition reload, a validation failure.
type Event struct {
	Time    time.Time
	Level   string // "info", "warn", "error", "success"
	Source  string // "step", "config", "timer"
	Message string
}

// EventLog is a scrollable event viewer. It follows new events until the
// user scrolls up.
type EventLog struct {
	events     []Event
	viewport   viewport.Model
	autoScroll bool
	maxEvents  int
}

// NewEventLog creates an event log with the given dimensions.
func NewEventLog(width, height int) EventLog {
	return EventLog{
		viewport:   viewport.New(width, height),
		autoScroll: true,
		maxEvents:  200,
	}
}

// SetSize resizes the viewport.
func (l *EventLog) SetSize(width, height int) {
	l.viewport.Width = width
	l.viewport.Height = height
	l.viewport.SetContent(l.renderEvents())
}

// Len returns the number of retained events.
func (l EventLog) Len() int {
	return len(l.events)
}

// Update handles scrolling keys and viewport messages.
func (l EventLog) Update(msg tea.Msg) (EventLog, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "G" {
		l.autoScroll = true
		l.viewport.GotoBottom()
		return l, nil
	}

	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	l.autoScroll = l.viewport.AtBottom()
	return l, cmd
}

// View returns the titled viewport.
func (l EventLog) View() string {
	title := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Bold(true).
		Render("Events")

	if !l.autoScroll {
		title += lipgloss.NewStyle().
			Foreground(styles.StatusWarn).
			Render(" (paused, G to follow)")
	}
	return title + "\n" + l.viewport.View()
}

// Add appends an event, trimming the oldest past the retention limit.
func (l *EventLog) Add(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	l.events = append(l.events, e)
	if over := len(l.events) - l.maxEvents; over > 0 {
		l.events = l.events[over:]
	}

	l.viewport.SetContent(l.renderEvents())
	if l.autoScroll {
		l.viewport.GotoBottom()
	}
}

// levelColor returns the foreground color for an event level.
func levelColor(level string) lipgloss.Color {
	switch strings.ToLower(level) {
	case "info":
		return styles.TextSecondary
	case "warn":
		return styles.StatusWarn
	case "error":
		return styles.StatusError
	case "success":
		return styles.StatusOK
	default:
		return styles.TextMuted
	}
}

func (l EventLog) renderEvents() string {
	lines := make([]string, 0, len(l.events))
	for _, e := range l.events {
		color := levelColor(e.Level)

		ts := lipgloss.NewStyle().Foreground(styles.TextMuted).
			Render(e.Time.Format("15:04:05"))
		src := lipgloss.NewStyle().Foreground(styles.AccentSecondary).
			Render(fmt.Sprintf("%-6s", strings.ToUpper(e.Source)))
		msg := lipgloss.NewStyle().Foreground(color).Render(e.Message)

		lines = append(lines, ts+" "+src+" "+msg)
	}
	return joinLines(lines)
}
