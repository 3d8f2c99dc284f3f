package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepline/internal/stepper"
	"github.com/Dallionking/stepline/internal/tui/styles"
)

// lineGlyph is the body character of a connector.
func lineGlyph(o stepper.Orientation, thickness stepper.Length) string {
	heavy := thickness >= 2
	switch {
	case o == stepper.Vertical && heavy:
		return "┃"
	case o == stepper.Vertical:
		return "│"
	case heavy:
		return "━"
	default:
		return "─"
	}
}

// capGlyph replaces the end cell of a segment according to its cap. Gaps
// in a pattern are never capped.
func capGlyph(o stepper.Orientation, c stepper.StrokeCap, g string) string {
	if g == " " {
		return g
	}
	switch c {
	case stepper.CapRound:
		if o == stepper.Vertical {
			return "╵"
		}
		return "╴"
	case stepper.CapSquare:
		if o == stepper.Vertical {
			return "╹"
		}
		return "╸"
	default:
		return g
	}
}

func patternGlyph(t stepper.LineType, on bool, body string) string {
	if !on {
		return " "
	}
	if t.Kind == stepper.LineDotted {
		return "·"
	}
	return body
}

// lineCell is one drawn cell of a connector.
type lineCell struct {
	glyph    string
	progress bool
}

// lineCells lays out a connector of length cells. The first
// round(fraction*length) cells use the progress pattern and color, the rest
// use the track pattern. Patterns are anchored at the start of the line so
// dashes do not crawl as the fill advances.
func lineCells(ins stepper.RenderInstruction, length int, o stepper.Orientation) []lineCell {
	if length <= 0 {
		return nil
	}
	l := ins.Line
	body := lineGlyph(o, l.Thickness)
	filled := int(math.Round(ins.LineFillFraction * float64(length)))
	filled = min(max(filled, 0), length)

	progressMask := l.ProgressType.Pattern(length)
	trackMask := l.TrackType.Pattern(length)

	cells := make([]lineCell, length)
	for i := range cells {
		if i < filled {
			g := patternGlyph(l.ProgressType, progressMask[i], body)
			if i == filled-1 && filled < length {
				g = capGlyph(o, l.ProgressCap, g)
			}
			cells[i] = lineCell{glyph: g, progress: true}
			continue
		}
		g := patternGlyph(l.TrackType, trackMask[i], body)
		if i == length-1 {
			g = capGlyph(o, l.TrackCap, g)
		}
		cells[i] = lineCell{glyph: g}
	}
	return cells
}

// RenderLine draws the connector that follows a step.
func RenderLine(ins stepper.RenderInstruction, length int, o stepper.Orientation) string {
	cells := lineCells(ins, length, o)
	if len(cells) == 0 {
		return ""
	}

	progress := lipgloss.NewStyle().Foreground(styles.Color(ins.Line.ProgressColor))
	track := lipgloss.NewStyle().Foreground(styles.Color(ins.Line.TrackColor))

	parts := make([]string, len(cells))
	for i, c := range cells {
		if c.progress {
			parts[i] = progress.Render(c.glyph)
		} else {
			parts[i] = track.Render(c.glyph)
		}
	}

	if o == stepper.Vertical {
		return strings.Join(parts, "\n")
	}
	return strings.Join(parts, "")
}
