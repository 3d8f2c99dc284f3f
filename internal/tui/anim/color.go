package anim

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Dallionking/stepline/internal/stepper"
)

// BlendColor mixes from and to in Lab space; t is clamped to [0,1]. Colors
// that fail to parse are returned unblended.
func BlendColor(from, to stepper.Color, t float64) stepper.Color {
	t = math.Max(0, math.Min(1, t))
	if t == 0 || from == to {
		return from
	}
	if t == 1 {
		return to
	}

	a, err := colorful.Hex(string(from))
	if err != nil {
		return to
	}
	b, err := colorful.Hex(string(to))
	if err != nil {
		return from
	}
	return stepper.Color(a.BlendLab(b, t).Clamped().Hex())
}

// LerpLength interpolates a cell length, rounding to the nearest cell.
func LerpLength(from, to stepper.Length, t float64) stepper.Length {
	t = math.Max(0, math.Min(1, t))
	return stepper.Length(math.Round(float64(from) + (float64(to)-float64(from))*t))
}

// StyleTween animates one step's indicator from the style of its previous
// state to the style of its new state.
type StyleTween struct {
	From     stepper.StepVisualStyle
	To       stepper.StepVisualStyle
	Progress Value
}

// NewStyleTween returns a tween resting at s.
func NewStyleTween(s stepper.StepVisualStyle) StyleTween {
	return StyleTween{From: s, To: s, Progress: NewValue(1)}
}

// Retarget starts a transition from the currently displayed style toward
// target. It is a no-op when target is already the destination.
func (t *StyleTween) Retarget(target stepper.StepVisualStyle) {
	if target == t.To {
		return
	}
	t.From = t.Current()
	t.To = target
	t.Progress = Value{Pos: 0, Target: 1}
}

// Step advances the tween one frame and reports whether it is still moving.
func (t *StyleTween) Step(s Spring) bool {
	return t.Progress.Step(s)
}

// Current is the style to draw this frame. Colors and size blend smoothly;
// shape, text and border switch at the midpoint.
func (t StyleTween) Current() stepper.StepVisualStyle {
	p := t.Progress.Pos
	out := t.To
	if p < 0.5 {
		out = t.From
	}
	out.Color = BlendColor(t.From.Color, t.To.Color, p)
	out.Size = LerpLength(t.From.Size, t.To.Size, p)
	out.Icon.Tint = BlendColor(t.From.Icon.Tint, t.To.Icon.Tint, p)
	return out
}
