package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepline/internal/stepper"
	"github.com/Dallionking/stepline/internal/tui/styles"
)

// Stepper draws a planned step sequence. It holds no state between frames;
// callers rebuild it from a fresh plan whenever position or style changes.
type Stepper struct {
	Steps        []stepper.StepDescriptor
	Plan         []stepper.RenderInstruction
	Style        stepper.StepperStyle
	Flavor       styles.Flavor
	Icons        []string // per-step glyphs for FlavorIcon
	Descriptions []string // per-step secondary text

	// Displayed overrides the planned indicator style of step i while a
	// transition animates. Steps past its length use the plan.
	Displayed []stepper.StepVisualStyle

	Spinner  string // current spinner frame, drawn in place of the current bullet
	Markdown *MarkdownRenderer
	Width    int
}

var (
	descriptionStyle = lipgloss.NewStyle().Foreground(styles.TextSecondary)
	labelStyle       = lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true)
	contentStyle     = lipgloss.NewStyle().Foreground(styles.TextPrimary)
)

// Layout plans s at position and runs the label measurement pass. When a
// label is measured for the first time the plan is computed again with the
// grown connector, so the returned stepper is ready to draw.
func Layout(s Stepper, position float64, cache *stepper.LabelCache, aux ...stepper.AuxList) (Stepper, error) {
	s.Steps = withDescriptions(s.Steps, s.Descriptions)
	plan, err := stepper.Plan(s.Steps, position, s.Style, cache, aux...)
	if err != nil {
		return s, err
	}
	s.Plan = plan

	if cache != nil && s.MeasureLabels(cache) {
		plan, err = stepper.Plan(s.Steps, position, s.Style, cache, aux...)
		if err != nil {
			return s, err
		}
		s.Plan = plan
	}
	return s, nil
}

// withDescriptions returns a copy of steps carrying descriptions, so a
// changed description changes the step's content identity.
func withDescriptions(steps []stepper.StepDescriptor, descriptions []string) []stepper.StepDescriptor {
	if len(descriptions) == 0 {
		return steps
	}
	out := make([]stepper.StepDescriptor, len(steps))
	copy(out, steps)
	for i := range out {
		if i < len(descriptions) {
			out[i].Description = descriptions[i]
		}
	}
	return out
}

// MeasureLabels records the on-screen extent of every trailing label along
// the layout axis. It reports whether any measurement was new, in which case
// the plan must be recomputed.
//
// Horizontal extents are the width of the text block under the indicator
// plus one cell of clearance. Vertical extents are the height of the text
// column beside the indicator.
func (s Stepper) MeasureLabels(cache *stepper.LabelCache) bool {
	changed := false
	for i, step := range s.Steps {
		if i >= len(s.Plan) || !step.HasLabel() {
			continue
		}
		block := s.textBlock(i, s.Plan[i])
		extent := lipgloss.Height(block)
		if s.Style.Orientation == stepper.Horizontal {
			extent = lipgloss.Width(block) + 1
		}
		if cache.Record(step.Key, step.ContentID(), stepper.Length(extent)) {
			changed = true
		}
	}
	return changed
}

// Render returns the drawn stepper, or "" when there is no plan.
func (s Stepper) Render() string {
	if len(s.Plan) == 0 || len(s.Steps) < len(s.Plan) {
		return ""
	}
	if s.Style.Orientation == stepper.Vertical {
		return s.renderVertical()
	}
	return s.renderHorizontal()
}

func (s Stepper) renderHorizontal() string {
	gap := strings.Repeat(" ", int(s.Style.ItemPadding))

	blocks := make([]string, 0, len(s.Plan)*2)
	for i, ins := range s.Plan {
		head := s.indicator(i, ins)
		if !ins.IsLastStep {
			pad := strings.Repeat(" ", int(ins.Line.Padding))
			line := pad + RenderLine(ins, int(ins.EffectiveLineLength), stepper.Horizontal) + pad
			head = lipgloss.JoinHorizontal(lipgloss.Center, head, line)
		}

		block := head
		if text := s.textBlock(i, ins); text != "" {
			block = lipgloss.JoinVertical(lipgloss.Left, head, text)
		}
		blocks = append(blocks, block)
		if gap != "" && !ins.IsLastStep {
			blocks = append(blocks, gap)
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	for i, ins := range s.Plan {
		if ins.State != stepper.Current {
			continue
		}
		if c := s.content(i, ins); c != "" {
			row = lipgloss.JoinVertical(lipgloss.Left, row, "", c)
		}
		break
	}
	return row
}

func (s Stepper) renderVertical() string {
	gap := strings.Repeat(" ", int(s.Style.ItemPadding)+1)

	blocks := make([]string, 0, len(s.Plan))
	for i, ins := range s.Plan {
		ind := s.indicator(i, ins)

		right := s.textBlock(i, ins)
		if c := s.content(i, ins); c != "" {
			if right == "" {
				right = c
			} else {
				right = lipgloss.JoinVertical(lipgloss.Left, right, c)
			}
		}

		left := ind
		if !ins.IsLastStep {
			rows := int(ins.EffectiveLineLength)
			// expanded content keeps the connector running beside it
			if right != "" {
				rows = max(rows, lipgloss.Height(right)-lipgloss.Height(ind))
			}
			line := RenderLine(ins, rows, stepper.Vertical)
			if line != "" {
				line = lipgloss.PlaceHorizontal(lipgloss.Width(ind), lipgloss.Center, line)
				left = lipgloss.JoinVertical(lipgloss.Left, ind, line)
			}
		}

		if right == "" {
			blocks = append(blocks, left)
			continue
		}
		blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// style is the indicator style to draw for step i this frame.
func (s Stepper) style(i int, ins stepper.RenderInstruction) stepper.StepVisualStyle {
	if i < len(s.Displayed) {
		return s.Displayed[i]
	}
	return ins.Step
}

// glyph picks the character drawn inside an indicator.
func (s Stepper) glyph(i int, ins stepper.RenderInstruction) string {
	if ins.State == stepper.Done && s.Style.ShowCheckMarkOnDone {
		return "✓"
	}
	if ins.State == stepper.Current && s.Spinner != "" {
		return s.Spinner
	}

	switch s.Flavor {
	case styles.FlavorNumbered:
		return strconv.Itoa(i + 1)
	case styles.FlavorIcon:
		if i < len(s.Icons) && s.Icons[i] != "" {
			return s.Icons[i]
		}
	}

	if ins.Visual == stepper.VisualIcon {
		return s.Steps[i].Icon
	}
	if ins.State == stepper.Todo {
		return "○"
	}
	return "●"
}

// enclose wraps a glyph in brackets matching the indicator shape.
func enclose(shape stepper.Shape, g string) string {
	switch shape {
	case stepper.ShapeSquare:
		return "[" + g + "]"
	case stepper.ShapeDiamond:
		return "<" + g + ">"
	default:
		return "(" + g + ")"
	}
}

func tabTitle(step stepper.StepDescriptor, i int) string {
	switch step.PrimaryVisual() {
	case stepper.VisualTitle:
		return step.Title
	case stepper.VisualIcon:
		return step.Icon
	default:
		return strconv.Itoa(i + 1)
	}
}

// indicator draws step i centred in its layout slot. The slot is the widest
// size across all states so indicators do not shift while they resize.
func (s Stepper) indicator(i int, ins stepper.RenderInstruction) string {
	vs := s.style(i, ins)
	base := lipgloss.NewStyle().Bold(vs.Text.Bold)

	var body string
	switch s.Flavor {
	case styles.FlavorTab:
		body = base.Foreground(styles.Color(vs.Color)).
			Padding(0, 1).
			Render(tabTitle(s.Steps[i], i))
	case styles.FlavorNumbered:
		g := s.glyph(i, ins)
		body = base.Background(styles.Color(vs.Color)).
			Foreground(styles.Color(vs.Text.Color)).
			Width(max(int(vs.Size), lipgloss.Width(g))).
			Align(lipgloss.Center).
			Render(g)
	default:
		g := s.glyph(i, ins)
		if vs.Size >= 3 {
			g = enclose(vs.Shape, g)
		}
		body = base.Foreground(styles.Color(vs.Color)).
			Width(max(int(vs.Size), lipgloss.Width(g))).
			Align(lipgloss.Center).
			Render(g)
	}

	if vs.Border.Width > 0 {
		body = lipgloss.NewStyle().
			Border(styles.ShapeBorder(vs.Border)).
			BorderForeground(styles.Color(vs.Border.Color)).
			Render(body)
	}

	slot := max(int(ins.SlotSize), lipgloss.Width(body))
	return lipgloss.PlaceHorizontal(slot, lipgloss.Center, body)
}

// textBlock is the title, description and trailing label of step i. This is
// the block MeasureLabels measures.
func (s Stepper) textBlock(i int, ins stepper.RenderInstruction) string {
	step := s.Steps[i]
	vs := s.style(i, ins)

	var lines []string
	if ins.Visual == stepper.VisualTitle && s.Flavor != styles.FlavorTab {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(styles.Color(vs.Color)).
			Bold(vs.Text.Bold).
			Render(step.Title))
	}
	desc := step.Description
	if i < len(s.Descriptions) {
		desc = s.Descriptions[i]
	}
	if desc != "" {
		lines = append(lines, descriptionStyle.Render(desc))
	}
	if step.Label != "" {
		lines = append(lines, labelStyle.Render(step.Label))
	}
	return strings.Join(lines, "\n")
}

// content renders the custom content of step i. Collapsible content is only
// shown while its step is current.
func (s Stepper) content(i int, ins stepper.RenderInstruction) string {
	c := s.Steps[i].Content
	if c == nil || c.Body == "" {
		return ""
	}
	if s.Steps[i].Collapsible && ins.State != stepper.Current {
		return ""
	}

	width := s.Width - int(ins.SlotSize) - 2
	if width < 20 {
		width = 60
	}
	if c.Markdown && s.Markdown != nil {
		return s.Markdown.Render(c.Body, width)
	}
	return contentStyle.Width(width).Render(c.Body)
}
