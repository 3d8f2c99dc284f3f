package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fields(errs []ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateEmptyDefinition(t *testing.T) {
	errs := Validate(&Definition{})
	assert.Contains(t, fields(errs), "steps")
}

func TestValidatePosition(t *testing.T) {
	def := &Definition{Steps: []StepDef{{Title: "A"}, {Title: "B"}}, Position: 3}
	errs := Validate(def)
	assert.Equal(t, []string{"position"}, fields(errs))
	assert.Contains(t, errs[0].Error(), "position out of range")

	def.Position = -1
	assert.Empty(t, Validate(def))
	def.Position = 2
	assert.Empty(t, Validate(def))
}

func TestValidateAuxLists(t *testing.T) {
	def := &Definition{
		Steps:     []StepDef{{Title: "A"}, {Title: "B"}},
		Icons:     []string{"x"},
		Durations: []time.Duration{time.Second, 0, time.Second},
	}
	got := fields(Validate(def))
	assert.Contains(t, got, "icons")
	assert.Contains(t, got, "durations")
	assert.Contains(t, got, "durations[1]")
}

func TestValidateSteps(t *testing.T) {
	def := &Definition{Steps: []StepDef{
		{Key: "a", Title: "A"},
		{Key: "a", Title: "B"},
		{},
	}}
	got := fields(Validate(def))
	assert.Contains(t, got, "steps[1].key")
	assert.Contains(t, got, "steps[2]")
}

func TestValidatePresentation(t *testing.T) {
	def := &Definition{
		Steps:       []StepDef{{Title: "A"}},
		Flavor:      "neon",
		Orientation: "diagonal",
		ItemPadding: -1,
		Style: StyleDef{
			Step: StepStyleSetDef{Done: StepStyleDef{Shape: "hexagon", Size: -2}},
			Line: LineStyleSetDef{Current: LineStyleDef{ProgressType: "wavy", TrackCap: "pointy", Length: -1}},
		},
	}
	assert.ElementsMatch(t, []string{
		"flavor",
		"orientation",
		"itemPadding",
		"style.step.done.shape",
		"style.step.done.size",
		"style.line.current.length",
		"style.line.current.trackCap",
		"style.line.current.progressType",
	}, fields(Validate(def)))
}

func TestValidateErr(t *testing.T) {
	assert.NoError(t, ValidateErr(&Definition{Steps: []StepDef{{Title: "A"}}}))

	err := ValidateErr(&Definition{Flavor: "neon"})
	assert.ErrorContains(t, err, "steps: step sequence must not be empty")
	assert.ErrorContains(t, err, "flavor:")
}
