package stepper

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidConfiguration is the single error kind reported for stepper
// precondition violations. Use errors.Is to test for it.
var ErrInvalidConfiguration = errors.New("invalid stepper configuration")

// Issue describes one precondition violation.
type Issue struct {
	Field   string
	Message string
}

// Error implements the error interface for a single issue.
func (i Issue) Error() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// ConfigError groups every issue found in one validation pass.
type ConfigError struct {
	Issues []Issue
}

// Error joins all issues into one line.
func (e *ConfigError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, iss := range e.Issues {
		parts = append(parts, iss.Error())
	}
	return ErrInvalidConfiguration.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports ErrInvalidConfiguration as the error kind.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// AuxList describes an auxiliary per-step list supplied alongside the steps,
// such as icons or segment durations.
type AuxList struct {
	Name  string
	Len   int
	Exact bool // length must equal the step count instead of covering it
}

// IconList describes a per-step icon list of length n.
func IconList(n int) AuxList { return AuxList{Name: "icons", Len: n} }

// DescriptionList describes a per-step description list of length n.
func DescriptionList(n int) AuxList { return AuxList{Name: "descriptions", Len: n} }

// DurationList describes a per-segment duration list of length n. Timed
// steppers need exactly one duration per step.
func DurationList(n int) AuxList { return AuxList{Name: "durations", Len: n, Exact: true} }

// ValidateSequence checks the inputs of one render pass. It reports every
// violation at once and returns a *ConfigError, or nil when the sequence is
// well formed.
func ValidateSequence(stepCount int, position float64, aux ...AuxList) error {
	var issues []Issue

	if stepCount < 1 {
		issues = append(issues, Issue{
			Field:   "steps",
			Message: "step sequence must not be empty",
		})
	}

	if math.IsNaN(position) || position < -1 || position > float64(stepCount) {
		issues = append(issues, Issue{
			Field: "position",
			Message: fmt.Sprintf("position out of range: got %g, want a value in [-1, %d]",
				position, stepCount),
		})
	}

	for _, a := range aux {
		switch {
		case a.Exact && a.Len != stepCount:
			issues = append(issues, Issue{
				Field:   a.Name,
				Message: fmt.Sprintf("length mismatch: expected %d, got %d", stepCount, a.Len),
			})
		case !a.Exact && a.Len < stepCount:
			issues = append(issues, Issue{
				Field:   a.Name,
				Message: fmt.Sprintf("too short: expected at least %d, got %d", stepCount, a.Len),
			})
		}
	}

	if len(issues) == 0 {
		return nil
	}
	return &ConfigError{Issues: issues}
}
