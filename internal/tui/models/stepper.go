package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepline/internal/config"
	"github.com/Dallionking/stepline/internal/logging"
	"github.com/Dallionking/stepline/internal/stepper"
	"github.com/Dallionking/stepline/internal/tui/anim"
	"github.com/Dallionking/stepline/internal/tui/components"
	"github.com/Dallionking/stepline/internal/tui/styles"
)

// fractionStep is how far the fractional keys move the position.
const fractionStep = 0.25

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

type frameMsg time.Time
type autoTickMsg struct{ gen int }
type reloadMsg config.ReloadEvent
type reloadClosedMsg struct{}

// ---------------------------------------------------------------------------
// StepperModel
// ---------------------------------------------------------------------------

// Options configures a StepperModel.
type Options struct {
	Spring        anim.Spring
	MarkdownStyle string
	// Reloads delivers definition reloads, usually from config.Watcher.
	Reloads <-chan config.ReloadEvent
	// Flavor, when set, replaces the flavor of every reloaded definition.
	Flavor string
}

// StepperModel is the Bubble Tea model for the interactive stepper preview.
type StepperModel struct {
	def    *config.Definition
	steps  []stepper.StepDescriptor
	style  stepper.StepperStyle
	flavor styles.Flavor
	aux    []stepper.AuxList

	cache    *stepper.LabelCache
	notifier *stepper.Notifier
	markdown *components.MarkdownRenderer

	// Position state. target is the logical position; shown chases it.
	target    float64
	shown     anim.Value
	spring    anim.Spring
	tweens    []anim.StyleTween
	animating bool

	// Timed mode.
	auto    bool
	autoGen int

	spinner spinner.Model
	help    help.Model
	keys    keyMap
	events  components.EventLog
	confirm *components.ConfirmDialog
	reloads <-chan config.ReloadEvent
	flavorOverride string

	// Layout.
	width  int
	height int
}

// NewStepperModel creates a preview of def. The definition must be valid.
func NewStepperModel(def *config.Definition, opts Options) (StepperModel, error) {
	if err := config.ValidateErr(def); err != nil {
		return StepperModel{}, fmt.Errorf("invalid definition: %w", err)
	}

	spr := opts.Spring
	if spr == (anim.Spring{}) {
		spr = anim.DefaultSpring()
	}

	m := StepperModel{
		cache:    stepper.NewLabelCache(),
		notifier: &stepper.Notifier{},
		markdown: components.NewMarkdownRenderer(opts.MarkdownStyle),
		spring:   spr,
		spinner:  spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		help:     help.New(),
		keys:     defaultKeyMap(),
		events:   components.NewEventLog(78, 6),
		reloads:  opts.Reloads,
		width:    80,
		height:   24,

		flavorOverride: opts.Flavor,
	}
	m.target = def.Position
	m.shown = anim.NewValue(def.Position)
	if err := m.apply(def); err != nil {
		return StepperModel{}, err
	}
	return m, nil
}

// Position returns the logical position.
func (m StepperModel) Position() float64 {
	return m.target
}

// DisplayedPosition returns the animated position currently drawn.
func (m StepperModel) DisplayedPosition() float64 {
	return m.shown.Pos
}

// Auto reports whether timed mode is running.
func (m StepperModel) Auto() bool {
	return m.auto
}

// Style returns the active stepper style.
func (m StepperModel) Style() stepper.StepperStyle {
	return m.style
}

// Flavor returns the active flavor.
func (m StepperModel) Flavor() styles.Flavor {
	return m.flavor
}

// Wait blocks until completion callbacks fired so far have returned.
func (m StepperModel) Wait() {
	m.notifier.Wait()
}

// apply installs def as the definition being previewed.
func (m *StepperModel) apply(def *config.Definition) error {
	style, err := def.StepperStyle()
	if err != nil {
		return err
	}
	flavor, err := def.FlavorValue()
	if err != nil {
		return err
	}

	m.def = def
	m.steps = def.Descriptors()
	m.style = style
	m.flavor = flavor
	m.aux = def.AuxLists()

	keys := make([]stepper.StepKey, len(m.steps))
	for i, s := range m.steps {
		keys[i] = s.Key
	}
	m.cache.Prune(keys)

	m.keys.Auto.SetEnabled(len(def.Durations) > 0)
	if m.auto && len(def.Durations) == 0 {
		m.auto = false
	}

	m.target = stepper.Clamp(m.target, len(m.steps))
	m.shown.SetTarget(m.target)

	targets := m.targetStyles()
	m.tweens = make([]anim.StyleTween, len(targets))
	for i, s := range targets {
		m.tweens[i] = anim.NewStyleTween(s)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Bubble Tea Interface
// ---------------------------------------------------------------------------

// Init starts listening for definition reloads.
func (m StepperModel) Init() tea.Cmd {
	return waitForReload(m.reloads)
}

// Update handles all messages for the preview.
func (m StepperModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.events.SetSize(max(msg.Width-2, 20), 6)
		return m, nil

	case tea.KeyMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		return m.handleKey(msg)

	case frameMsg:
		return m, m.onFrame()

	case autoTickMsg:
		return m, m.onAutoTick(msg)

	case spinner.TickMsg:
		if !m.auto {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case reloadMsg:
		return m, m.onReload(config.ReloadEvent(msg))

	case reloadClosedMsg:
		m.reloads = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.events, cmd = m.events.Update(msg)
	return m, cmd
}

// View renders the full preview screen.
func (m StepperModel) View() string {
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	header := components.Header{
		Name:        m.def.Name,
		Flavor:      m.flavor,
		Orientation: m.style.Orientation,
		Position:    m.target,
		StepCount:   len(m.steps),
		Width:       m.width,
	}.Render()
	tabs := components.FlavorTabs(m.flavor, m.width).Render()
	gauge := components.PositionGauge{Position: m.target, StepCount: len(m.steps)}.Render()
	body := styles.Panel.Width(max(m.width-2, 20)).Render(m.renderStepper())

	parts := []string{header, tabs, "", body, gauge}
	if len(m.def.Durations) > 0 {
		parts = append(parts, components.TimelineBar{
			Titles:    m.titles(),
			Durations: m.def.Durations,
			Position:  m.target,
			Running:   m.auto,
			Width:     m.width,
		}.Render())
	}
	parts = append(parts, "", m.events.View())
	if m.help.ShowAll {
		parts = append(parts, "", m.help.View(m.keys))
	}
	parts = append(parts, components.Footer{
		Bindings: m.keys.ShortHelp(),
		Status:   m.status(),
		Width:    m.width,
	}.Render())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ---------------------------------------------------------------------------
// Input
// ---------------------------------------------------------------------------

func (m StepperModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m, m.navigate(math.Floor(m.target) + 1)

	case key.Matches(msg, m.keys.Prev):
		prev := math.Floor(m.target)
		if prev == m.target {
			prev--
		}
		return m, m.navigate(prev)

	case key.Matches(msg, m.keys.NextFraction):
		return m, m.navigate(m.target + fractionStep)

	case key.Matches(msg, m.keys.PrevFraction):
		return m, m.navigate(m.target - fractionStep)

	case key.Matches(msg, m.keys.Activate):
		return m, m.activate()

	case key.Matches(msg, m.keys.Orientation):
		if m.style.Orientation == stepper.Horizontal {
			m.style.Orientation = stepper.Vertical
		} else {
			m.style.Orientation = stepper.Horizontal
		}
		// measured extents are along the old axis
		m.cache.Prune(nil)
		return m, nil

	case key.Matches(msg, m.keys.IgnoreCurrent):
		m.style.IgnoreCurrentState = !m.style.IgnoreCurrentState
		m.retarget()
		return m, m.animate()

	case key.Matches(msg, m.keys.Flavor):
		flavors := styles.AllFlavors()
		i := int(msg.Runes[0] - '1')
		if i < 0 || i >= len(flavors) {
			return m, nil
		}
		return m, m.setFlavor(flavors[i])

	case key.Matches(msg, m.keys.Auto):
		return m, m.toggleAuto()

	case key.Matches(msg, m.keys.Reset):
		d := components.NewConfirmDialog("Reset", fmt.Sprintf("Return to position %g?", m.def.Position))
		m.confirm = &d
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.events, cmd = m.events.Update(msg)
	return m, cmd
}

func (m StepperModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d, _ := m.confirm.Update(msg)
	if !d.Done {
		m.confirm = &d
		return m, nil
	}
	m.confirm = nil
	if !d.Confirmed {
		return m, nil
	}

	m.auto = false
	m.autoGen++
	m.target = stepper.Clamp(m.def.Position, len(m.steps))
	m.shown.Jump(m.target)
	for i, s := range m.targetStyles() {
		if i < len(m.tweens) {
			m.tweens[i] = anim.NewStyleTween(s)
		}
	}
	m.events.Add(components.Event{Level: "info", Source: "step", Message: fmt.Sprintf("reset to %g", m.target)})
	return m, nil
}

// navigate moves the position in response to the user. In timed mode the
// current segment's timer restarts.
func (m *StepperModel) navigate(p float64) tea.Cmd {
	cmd := m.setPosition(p)
	if !m.auto {
		return cmd
	}
	m.autoGen++
	return tea.Batch(cmd, m.scheduleAuto())
}

// activate fires the current step's click callback.
func (m *StepperModel) activate() tea.Cmd {
	i := int(math.Trunc(m.target))
	if m.target < 0 || i >= len(m.steps) {
		return nil
	}
	m.events.Add(components.Event{Level: "info", Source: "step", Message: m.stepName(i) + " activated"})
	fn := m.steps[i].OnClick
	if fn == nil {
		return nil
	}
	return func() tea.Msg {
		fn()
		return nil
	}
}

func (m *StepperModel) setFlavor(f styles.Flavor) tea.Cmd {
	if f == m.flavor {
		return nil
	}
	style := styles.Preset(f)
	if own, err := m.def.FlavorValue(); err == nil && own == f {
		if s, err := m.def.StepperStyle(); err == nil {
			style = s
		}
	}
	style.Orientation = m.style.Orientation
	style.IgnoreCurrentState = m.style.IgnoreCurrentState

	m.style = style
	m.flavor = f
	// tab titles leave the text block, so extents change
	m.cache.Prune(nil)
	m.retarget()
	return m.animate()
}

// ---------------------------------------------------------------------------
// Position and animation
// ---------------------------------------------------------------------------

// setPosition moves the logical position to p, fires completion callbacks
// for steps it finishes and starts the transition animation.
func (m *StepperModel) setPosition(p float64) tea.Cmd {
	p = stepper.Clamp(p, len(m.steps))
	if p == m.target {
		return nil
	}

	from := m.target
	completed := m.notifier.Notify(m.steps, from, p, m.style.IgnoreCurrentState)
	logging.LogTransition(from, p, completed)
	for _, i := range completed {
		m.events.Add(components.Event{Level: "success", Source: "step", Message: m.stepName(i) + " complete"})
	}

	m.target = p
	m.shown.SetTarget(p)
	m.retarget()
	return m.animate()
}

// targetStyles are the planned indicator styles at the logical position.
func (m StepperModel) targetStyles() []stepper.StepVisualStyle {
	plan, err := stepper.Plan(m.steps, m.target, m.style, nil)
	if err != nil {
		return nil
	}
	out := make([]stepper.StepVisualStyle, len(plan))
	for i, ins := range plan {
		out[i] = ins.Step
	}
	return out
}

func (m *StepperModel) retarget() {
	for i, s := range m.targetStyles() {
		if i < len(m.tweens) {
			m.tweens[i].Retarget(s)
		}
	}
}

// animate starts the frame loop unless it is already running.
func (m *StepperModel) animate() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return nextFrame()
}

func (m *StepperModel) onFrame() tea.Cmd {
	moving := m.shown.Step(m.spring)
	for i := range m.tweens {
		if m.tweens[i].Step(m.spring) {
			moving = true
		}
	}
	if !moving {
		m.animating = false
		return nil
	}
	return nextFrame()
}

// ---------------------------------------------------------------------------
// Timed mode
// ---------------------------------------------------------------------------

func (m *StepperModel) toggleAuto() tea.Cmd {
	if !m.keys.Auto.Enabled() {
		return nil
	}
	m.auto = !m.auto
	m.autoGen++
	if !m.auto {
		m.events.Add(components.Event{Level: "info", Source: "timer", Message: "timed mode stopped"})
		return nil
	}

	var cmds []tea.Cmd
	if m.target >= float64(len(m.steps)) {
		m.target = -1
		m.shown.Jump(-1)
		m.retarget()
		cmds = append(cmds, m.animate())
	}
	m.events.Add(components.Event{Level: "info", Source: "timer", Message: "timed mode started"})
	cmds = append(cmds, m.scheduleAuto(), m.spinner.Tick)
	return tea.Batch(cmds...)
}

// scheduleAuto arms the timer for the segment the position is in. Step i
// stays current for Durations[i] before it completes.
func (m StepperModel) scheduleAuto() tea.Cmd {
	gen := m.autoGen
	i := int(math.Floor(m.target))
	switch {
	case i < 0:
		return func() tea.Msg { return autoTickMsg{gen: gen} }
	case i >= len(m.steps) || i >= len(m.def.Durations):
		return nil
	}
	return tea.Tick(m.def.Durations[i], func(time.Time) tea.Msg {
		return autoTickMsg{gen: gen}
	})
}

func (m *StepperModel) onAutoTick(msg autoTickMsg) tea.Cmd {
	if !m.auto || msg.gen != m.autoGen {
		return nil
	}
	cmd := m.setPosition(math.Floor(m.target) + 1)
	if m.target >= float64(len(m.steps)) {
		m.auto = false
		m.events.Add(components.Event{Level: "success", Source: "timer", Message: "sequence complete"})
		return cmd
	}
	return tea.Batch(cmd, m.scheduleAuto())
}

// ---------------------------------------------------------------------------
// Reload
// ---------------------------------------------------------------------------

func (m *StepperModel) onReload(ev config.ReloadEvent) tea.Cmd {
	wait := waitForReload(m.reloads)
	path := m.def.Path()

	err := ev.Err
	if err == nil && m.flavorOverride != "" {
		ev.Definition.Flavor = m.flavorOverride
	}
	if err == nil {
		err = config.ValidateErr(ev.Definition)
	}
	if err == nil {
		// an edited start position moves the preview; otherwise keep the
		// user's place
		if ev.Definition.Position != m.def.Position {
			m.target = ev.Definition.Position
		}
		err = m.apply(ev.Definition)
	}

	if err != nil {
		logging.LogReload(path, 0, err)
		m.events.Add(components.Event{Level: "error", Source: "config", Message: firstLine(err.Error())})
		return wait
	}

	logging.LogReload(path, len(m.steps), nil)
	m.events.Add(components.Event{
		Level:   "info",
		Source:  "config",
		Message: fmt.Sprintf("reloaded %d steps", len(m.steps)),
	})

	cmds := []tea.Cmd{wait, m.animate()}
	if m.auto {
		m.autoGen++
		cmds = append(cmds, m.scheduleAuto())
	}
	return tea.Batch(cmds...)
}

// ---------------------------------------------------------------------------
// Tea Commands
// ---------------------------------------------------------------------------

func nextFrame() tea.Cmd {
	return tea.Tick(anim.FrameInterval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func waitForReload(ch <-chan config.ReloadEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return reloadClosedMsg{}
		}
		return reloadMsg(ev)
	}
}

// ---------------------------------------------------------------------------
// View helpers
// ---------------------------------------------------------------------------

func (m StepperModel) renderStepper() string {
	displayed := make([]stepper.StepVisualStyle, len(m.tweens))
	for i, t := range m.tweens {
		displayed[i] = t.Current()
	}

	s := components.Stepper{
		Steps:        m.steps,
		Style:        m.style,
		Flavor:       m.flavor,
		Icons:        m.def.Icons,
		Descriptions: m.def.Descriptions,
		Displayed:    displayed,
		Markdown:     m.markdown,
		Width:        m.width - 4,
	}
	if m.auto {
		s.Spinner = m.spinner.View()
	}

	s, err := components.Layout(s, stepper.Clamp(m.shown.Pos, len(m.steps)), m.cache, m.aux...)
	if err != nil {
		return styles.ErrorText(err.Error())
	}
	return s.Render()
}

func (m StepperModel) status() string {
	var parts []string
	if m.style.IgnoreCurrentState {
		parts = append(parts, "ignore-current")
	}
	if m.auto {
		parts = append(parts, "auto")
	}
	return strings.Join(parts, " · ")
}

func (m StepperModel) stepName(i int) string {
	if t := m.steps[i].Title; t != "" {
		return t
	}
	return fmt.Sprintf("step %d", i+1)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func (m StepperModel) titles() []string {
	out := make([]string, len(m.steps))
	for i, st := range m.steps {
		out[i] = st.Title
	}
	return out
}
