package stepper

import (
	"fmt"
	"math"
	"strings"
)

// StepState is the derived status of a single step. It is never stored on a
// step; it is always computed from the current position.
type StepState int

const (
	Todo StepState = iota
	Current
	Done
)

// AllStates lists the states in progression order.
func AllStates() []StepState {
	return []StepState{Todo, Current, Done}
}

// String returns the lowercase name used in config files and plan output.
func (s StepState) String() string {
	switch s {
	case Todo:
		return "todo"
	case Current:
		return "current"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("StepState(%d)", int(s))
	}
}

// MarshalText lets states appear by name in JSON and YAML output.
func (s StepState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseStepState parses the names produced by String.
func ParseStepState(s string) (StepState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo":
		return Todo, nil
	case "current":
		return Current, nil
	case "done":
		return Done, nil
	}
	return Todo, fmt.Errorf("unknown step state %q", s)
}

// ComputeStepState classifies the step at index for the given position.
//
// The integer part of position selects the current step. A negative position
// means nothing has started. With ignoreCurrentState every step at or before
// position is Done and Current is never produced.
func ComputeStepState(index int, position float64, ignoreCurrentState bool) StepState {
	if ignoreCurrentState {
		if float64(index) <= position {
			return Done
		}
		return Todo
	}

	if position < 0 {
		return Todo
	}

	pInt := int(math.Trunc(position))
	switch {
	case index < pInt:
		return Done
	case index == pInt:
		return Current
	default:
		return Todo
	}
}
