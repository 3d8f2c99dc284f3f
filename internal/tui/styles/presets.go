package styles

import (
	"fmt"
	"strings"

	"github.com/Dallionking/stepline/internal/stepper"
)

// Flavor selects how a stepper draws its indicators. Flavors only choose
// which resolved style fields are used; they share one style model.
type Flavor int

const (
	FlavorClassic Flavor = iota // bullets and check marks
	FlavorNumbered              // step numbers inside the indicator
	FlavorIcon                  // per-step icon glyphs
	FlavorDashed                // classic bullets over dashed tracks
	FlavorTab                   // bordered tabs carrying the title
)

var flavorNames = []string{"classic", "numbered", "icon", "dashed", "tab"}

// AllFlavors lists flavors in display order.
func AllFlavors() []Flavor {
	return []Flavor{FlavorClassic, FlavorNumbered, FlavorIcon, FlavorDashed, FlavorTab}
}

func (f Flavor) String() string {
	if int(f) >= 0 && int(f) < len(flavorNames) {
		return flavorNames[f]
	}
	return fmt.Sprintf("Flavor(%d)", int(f))
}

// ParseFlavor parses a flavor name; empty yields FlavorClassic.
func ParseFlavor(s string) (Flavor, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FlavorClassic, nil
	}
	for i, n := range flavorNames {
		if n == s {
			return Flavor(i), nil
		}
	}
	return FlavorClassic, fmt.Errorf("unknown flavor %q (want one of %s)", s, strings.Join(flavorNames, ", "))
}

func stepStyle(c, text stepper.Color, size stepper.Length, shape stepper.Shape) stepper.StepVisualStyle {
	return stepper.StepVisualStyle{
		Color: c,
		Size:  size,
		Shape: shape,
		Text:  stepper.TextStyle{Color: text},
		Icon:  stepper.IconStyle{Tint: c, Size: 1},
	}
}

func lineStyle(progress stepper.Color, length stepper.Length, track, fill stepper.LineType) stepper.LineVisualStyle {
	return stepper.LineVisualStyle{
		TrackColor:    Hex(BorderNormal),
		ProgressColor: progress,
		Length:        length,
		Thickness:     1,
		Padding:       1,
		TrackType:     track,
		ProgressType:  fill,
	}
}

// Preset returns the stock style for a flavor in the Gotham Night palette.
func Preset(f Flavor) stepper.StepperStyle {
	todo, current, done := Hex(TextMuted), Hex(AccentPrimary), Hex(StatusOK)
	dark := Hex(BgDeep)

	style := stepper.DefaultStepperStyle()
	switch f {
	case FlavorNumbered:
		style.StepStyle = stepper.StyleSet[stepper.StepVisualStyle]{
			OnTodo:    stepStyle(todo, dark, 3, stepper.ShapeCircle),
			OnCurrent: stepStyle(current, dark, 3, stepper.ShapeCircle),
			OnDone:    stepStyle(done, dark, 3, stepper.ShapeCircle),
		}
		style.StepStyle.OnCurrent.Text.Bold = true
	case FlavorIcon:
		style.StepStyle = stepper.StyleSet[stepper.StepVisualStyle]{
			OnTodo:    stepStyle(todo, todo, 1, stepper.ShapeCircle),
			OnCurrent: stepStyle(current, current, 3, stepper.ShapeCircle),
			OnDone:    stepStyle(done, done, 1, stepper.ShapeCircle),
		}
	case FlavorDashed:
		style.LineStyle = stepper.StyleSet[stepper.LineVisualStyle]{
			OnTodo:    lineStyle(todo, 6, stepper.Dotted(1), stepper.Dashed(2, 1)),
			OnCurrent: lineStyle(current, 6, stepper.Dotted(1), stepper.Dashed(2, 1)),
			OnDone:    lineStyle(done, 6, stepper.Dotted(1), stepper.Solid()),
		}
		style.LineStyle.OnCurrent.ProgressCap = stepper.CapRound
	case FlavorTab:
		tab := func(c stepper.Color) stepper.StepVisualStyle {
			s := stepStyle(c, c, 1, stepper.ShapeTab)
			s.Border = stepper.BorderStyle{Width: 1, Color: c, Shape: stepper.ShapeTab}
			return s
		}
		style.StepStyle = stepper.StyleSet[stepper.StepVisualStyle]{
			OnTodo:    tab(todo),
			OnCurrent: tab(current),
			OnDone:    tab(done),
		}
		style.StepStyle.OnCurrent.Text.Bold = true
		style.LineStyle = stepper.StyleSet[stepper.LineVisualStyle]{
			OnTodo:    lineStyle(todo, 2, stepper.Solid(), stepper.Solid()),
			OnCurrent: lineStyle(current, 2, stepper.Solid(), stepper.Solid()),
			OnDone:    lineStyle(done, 2, stepper.Solid(), stepper.Solid()),
		}
		style.ShowCheckMarkOnDone = false
	default:
		style.StepStyle = stepper.StyleSet[stepper.StepVisualStyle]{
			OnTodo:    stepStyle(todo, todo, 1, stepper.ShapeCircle),
			OnCurrent: stepStyle(current, current, 3, stepper.ShapeCircle),
			OnDone:    stepStyle(done, done, 1, stepper.ShapeCircle),
		}
		style.StepStyle.OnCurrent.Text.Bold = true
	}

	if f != FlavorDashed && f != FlavorTab {
		style.LineStyle = stepper.StyleSet[stepper.LineVisualStyle]{
			OnTodo:    lineStyle(todo, 6, stepper.Solid(), stepper.Solid()),
			OnCurrent: lineStyle(current, 6, stepper.Solid(), stepper.Solid()),
			OnDone:    lineStyle(done, 6, stepper.Solid(), stepper.Solid()),
		}
	}
	return style
}
