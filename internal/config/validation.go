package config

import (
	"errors"
	"fmt"

	"github.com/Dallionking/stepline/internal/stepper"
)

// ValidationError describes a single definition validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for a single validation error.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// Validate checks the Definition for completeness and consistency. It returns
// a slice of all discovered issues rather than stopping at the first one.
func Validate(def *Definition) []ValidationError {
	var errs []ValidationError

	// --- Sequence ---
	if err := stepper.ValidateSequence(len(def.Steps), def.Position, def.AuxLists()...); err != nil {
		var ce *stepper.ConfigError
		if errors.As(err, &ce) {
			for _, iss := range ce.Issues {
				errs = append(errs, ValidationError{Field: iss.Field, Message: iss.Message})
			}
		}
	}

	// --- Steps ---
	seen := make(map[string]int)
	for i, s := range def.Steps {
		if s.Title == "" && s.Icon == "" && s.Content == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("steps[%d]", i),
				Message: "step has no title, icon or content",
			})
		}
		if s.Key == "" {
			continue
		}
		if prev, ok := seen[s.Key]; ok {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("steps[%d].key", i),
				Message: fmt.Sprintf("duplicate key %q (also used by steps[%d])", s.Key, prev),
			})
			continue
		}
		seen[s.Key] = i
	}

	for i, d := range def.Durations {
		if d <= 0 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("durations[%d]", i),
				Message: fmt.Sprintf("must be > 0, got %s", d),
			})
		}
	}

	// --- Presentation ---
	if _, err := def.FlavorValue(); err != nil {
		errs = append(errs, ValidationError{Field: "flavor", Message: err.Error()})
	}
	if _, err := stepper.ParseOrientation(def.Orientation); err != nil {
		errs = append(errs, ValidationError{Field: "orientation", Message: err.Error()})
	}
	if def.ItemPadding < 0 {
		errs = append(errs, ValidationError{
			Field:   "itemPadding",
			Message: fmt.Sprintf("must be >= 0, got %d", def.ItemPadding),
		})
	}

	// --- Style overrides ---
	states := []struct {
		name string
		step StepStyleDef
		line LineStyleDef
	}{
		{"todo", def.Style.Step.Todo, def.Style.Line.Todo},
		{"current", def.Style.Step.Current, def.Style.Line.Current},
		{"done", def.Style.Step.Done, def.Style.Line.Done},
	}
	for _, st := range states {
		if st.step.Shape != "" {
			if _, err := stepper.ParseShape(st.step.Shape); err != nil {
				errs = append(errs, ValidationError{Field: "style.step." + st.name + ".shape", Message: err.Error()})
			}
		}
		if st.step.Size < 0 {
			errs = append(errs, ValidationError{
				Field:   "style.step." + st.name + ".size",
				Message: fmt.Sprintf("must be >= 0, got %d", st.step.Size),
			})
		}
		if st.line.Length < 0 {
			errs = append(errs, ValidationError{
				Field:   "style.line." + st.name + ".length",
				Message: fmt.Sprintf("must be >= 0, got %d", st.line.Length),
			})
		}
		for _, f := range [][2]string{{"trackCap", st.line.TrackCap}, {"progressCap", st.line.ProgressCap}} {
			if f[1] == "" {
				continue
			}
			if _, err := stepper.ParseStrokeCap(f[1]); err != nil {
				errs = append(errs, ValidationError{Field: "style.line." + st.name + "." + f[0], Message: err.Error()})
			}
		}
		for _, f := range [][2]string{{"trackType", st.line.TrackType}, {"progressType", st.line.ProgressType}} {
			if f[1] == "" {
				continue
			}
			if _, err := stepper.ParseLineType(f[1]); err != nil {
				errs = append(errs, ValidationError{Field: "style.line." + st.name + "." + f[0], Message: err.Error()})
			}
		}
	}

	return errs
}

// ValidateErr joins the issues Validate finds into one error, or returns nil
// when def is valid.
func ValidateErr(def *Definition) error {
	issues := Validate(def)
	if len(issues) == 0 {
		return nil
	}
	errs := make([]error, len(issues))
	for i, iss := range issues {
		errs[i] = iss
	}
	return errors.Join(errs...)
}
