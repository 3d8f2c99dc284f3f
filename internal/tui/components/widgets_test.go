package components

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/Dallionking/stepline/internal/stepper"
	"github.com/Dallionking/stepline/internal/tui/styles"
)

func TestFooterSkipsDisabledBindings(t *testing.T) {
	quit := key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	hidden := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	hidden.SetEnabled(false)

	out := ansi.Strip(Footer{Bindings: []key.Binding{quit, hidden}, Status: "auto", Width: 60}.Render())
	assert.Contains(t, out, "q quit")
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "auto")
}

func TestHeader(t *testing.T) {
	out := ansi.Strip(Header{
		Name:        "release",
		Flavor:      styles.FlavorDashed,
		Orientation: stepper.Vertical,
		Position:    1.5,
		StepCount:   4,
		Width:       120,
	}.Render())
	assert.Contains(t, out, "release")
	assert.Contains(t, out, "dashed/vertical")
	assert.Contains(t, out, "1.50/4")
}

func TestPositionGauge(t *testing.T) {
	assert.Equal(t, 0.0, PositionGauge{Position: -1, StepCount: 4}.Completion())
	assert.Equal(t, 0.5, PositionGauge{Position: 2, StepCount: 4}.Completion())
	assert.Equal(t, 1.0, PositionGauge{Position: 4, StepCount: 4}.Completion())

	assert.Contains(t, ansi.Strip(PositionGauge{Position: -1, StepCount: 4}.Render()), "not started")
	assert.Contains(t, ansi.Strip(PositionGauge{Position: 2.5, StepCount: 4}.Render()), "step 3 of 4")
	assert.Contains(t, ansi.Strip(PositionGauge{Position: 4, StepCount: 4}.Render()), "complete")
}

func TestFlavorTabs(t *testing.T) {
	out := ansi.Strip(FlavorTabs(styles.FlavorTab, 80).Render())
	assert.Contains(t, out, "1 classic")
	assert.Contains(t, out, "5 tab")
	assert.Equal(t, "", TabBar{}.Render())
}

func TestEventLogRetention(t *testing.T) {
	l := NewEventLog(40, 5)
	l.maxEvents = 3
	for i := 0; i < 5; i++ {
		l.Add(Event{Level: "info", Source: "step", Message: "tick"})
	}
	assert.Equal(t, 3, l.Len())
	assert.Contains(t, ansi.Strip(l.View()), "STEP")
}

func TestConfirmDialog(t *testing.T) {
	d := NewConfirmDialog("Reset", "Start over?")
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, d.Done)
	assert.False(t, d.Confirmed, "defaults to no")

	d = NewConfirmDialog("Reset", "Start over?")
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	assert.True(t, d.Confirmed)
	assert.Contains(t, ansi.Strip(d.View()), "Start over?")
}

func TestCompactStepper(t *testing.T) {
	assert.Equal(t, "", CompactStepper{}.Render())

	out := ansi.Strip(CompactStepper{Steps: []string{"Plan", "Build", "Ship"}, Position: 1}.Render())
	assert.Equal(t, "● Plan  ● Build  ○ Ship", out)

	out = ansi.Strip(CompactStepper{Steps: []string{"Plan", "Build"}, Position: -1}.Render())
	assert.Equal(t, "○ Plan  ○ Build", out)
}

func TestTimelineBar(t *testing.T) {
	assert.Equal(t, "", TimelineBar{Titles: []string{"A"}}.Render())

	bar := TimelineBar{
		Titles:    []string{"Plan", ""},
		Durations: []time.Duration{2 * time.Second, 4 * time.Second},
		Position:  1.5,
		Width:     80,
	}
	out := ansi.Strip(bar.Render())
	assert.Contains(t, out, "Plan [2s]")
	assert.Contains(t, out, "#2 [4s]")
	assert.Contains(t, out, "Timeline 2s / 6s")
	assert.Contains(t, out, "╭─")
}

func TestRemaining(t *testing.T) {
	d := []time.Duration{time.Second, 2 * time.Second}
	assert.Equal(t, 3*time.Second, remaining(d, -1))
	assert.Equal(t, 3*time.Second, remaining(d, 0))
	assert.Equal(t, 2500*time.Millisecond, remaining(d, 0.5))
	assert.Equal(t, time.Second, remaining(d, 1.5))
	assert.Equal(t, time.Duration(0), remaining(d, 2))
}
