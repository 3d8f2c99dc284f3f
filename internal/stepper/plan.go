package stepper

import (
	"fmt"
	"strings"
)

// Orientation is the axis steps are laid out along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// MarshalText lets orientations appear by name in plan output.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// ParseOrientation parses "horizontal" or "vertical"; empty is horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown orientation %q", s)
}

// StepperStyle is the full style configuration of a stepper.
type StepperStyle struct {
	Orientation         Orientation
	ItemPadding         Length
	ShowCheckMarkOnDone bool
	IgnoreCurrentState  bool
	StepStyle           StyleSet[StepVisualStyle]
	LineStyle           StyleSet[LineVisualStyle]
}

// DefaultStepperStyle returns a horizontal stepper with the stock styles.
func DefaultStepperStyle() StepperStyle {
	return StepperStyle{
		Orientation:         Horizontal,
		ItemPadding:         0,
		ShowCheckMarkOnDone: true,
		StepStyle:           DefaultStepStyles(),
		LineStyle:           DefaultLineStyles(),
	}
}

// indicatorExtent is the room an indicator takes along the layout axis.
// Vertical indicators are always one row tall whatever their width.
func (s StepperStyle) indicatorExtent(step StepVisualStyle) Length {
	if s.Orientation == Vertical {
		return 1
	}
	return step.Size
}

// RenderInstruction is everything the rendering layer needs for one step.
// A fresh slice is produced on every pass.
type RenderInstruction struct {
	Index               int             `json:"index" yaml:"index"`
	Key                 StepKey         `json:"key" yaml:"key"`
	Visual              Visual          `json:"visual" yaml:"visual"`
	State               StepState       `json:"state" yaml:"state"`
	LineFillFraction    float64         `json:"lineFillFraction" yaml:"lineFillFraction"`
	Step                StepVisualStyle `json:"-" yaml:"-"`
	Line                LineVisualStyle `json:"-" yaml:"-"`
	EffectiveLineLength Length          `json:"effectiveLineLength" yaml:"effectiveLineLength"`
	SlotSize            Length          `json:"slotSize" yaml:"slotSize"`
	IsLastStep          bool            `json:"isLastStep" yaml:"isLastStep"`
}

// Plan validates the inputs and computes one instruction per step. It fails
// before producing anything if the configuration is invalid. cache may be
// nil, in which case every label is treated as unmeasured.
func Plan(steps []StepDescriptor, position float64, style StepperStyle, cache *LabelCache, aux ...AuxList) ([]RenderInstruction, error) {
	if err := ValidateSequence(len(steps), position, aux...); err != nil {
		return nil, err
	}

	slot := MaxSize(style.StepStyle)
	out := make([]RenderInstruction, len(steps))
	for i, step := range steps {
		state := ComputeStepState(i, position, style.IgnoreCurrentState)
		stepStyle := style.StepStyle.Resolve(state)
		lineStyle := style.LineStyle.Resolve(state)
		last := i == len(steps)-1

		length := lineStyle.Length
		if step.HasLabel() && !last {
			measured := cache.Measured(step.Key, step.ContentID())
			length = ComputeEffectiveLineLength(lineStyle.Length, measured, style.indicatorExtent(stepStyle))
		}

		fraction := ComputeLineProgress(i, position)
		if last {
			fraction = 0
		}

		out[i] = RenderInstruction{
			Index:               i,
			Key:                 step.Key,
			Visual:              step.PrimaryVisual(),
			State:               state,
			LineFillFraction:    fraction,
			Step:                stepStyle,
			Line:                lineStyle,
			EffectiveLineLength: length,
			SlotSize:            slot,
			IsLastStep:          last,
		}
	}
	return out, nil
}

// CompletedBetween returns the indices of steps that are Done at to but were
// not Done at from. Callers use it to fire completion callbacks.
func CompletedBetween(stepCount int, from, to float64, ignoreCurrentState bool) []int {
	var done []int
	for i := 0; i < stepCount; i++ {
		if ComputeStepState(i, to, ignoreCurrentState) == Done &&
			ComputeStepState(i, from, ignoreCurrentState) != Done {
			done = append(done, i)
		}
	}
	return done
}

// Clamp limits position to the valid range for stepCount steps.
func Clamp(position float64, stepCount int) float64 {
	return min(max(position, -1), float64(stepCount))
}
