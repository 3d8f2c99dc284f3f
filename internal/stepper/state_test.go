package stepper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStepState(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		position float64
		ignore   bool
		want     []StepState
	}{
		{"halfway through third step", 5, 2.5, false, []StepState{Done, Done, Current, Todo, Todo}},
		{"nothing started", 3, -1, false, []StepState{Todo, Todo, Todo}},
		{"all done", 4, 4, false, []StepState{Done, Done, Done, Done}},
		{"first step", 3, 0, false, []StepState{Current, Todo, Todo}},
		{"ignore current", 3, 1.0, true, []StepState{Done, Done, Todo}},
		{"ignore current fractional", 3, 1.5, true, []StepState{Done, Done, Todo}},
		{"ignore current sentinel", 3, -1, true, []StepState{Todo, Todo, Todo}},
		{"negative fraction", 3, -0.5, false, []StepState{Todo, Todo, Todo}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]StepState, tt.count)
			for i := range got {
				got[i] = ComputeStepState(i, tt.position, tt.ignore)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeStepStateOrdering(t *testing.T) {
	const count = 6
	for p := -1.0; p <= count; p += 0.25 {
		pInt := int(math.Trunc(p))
		for i := 0; i < count; i++ {
			state := ComputeStepState(i, p, false)
			switch {
			case p < 0:
				assert.Equal(t, Todo, state, "p=%v i=%d", p, i)
			case i < pInt:
				assert.Equal(t, Done, state, "p=%v i=%d", p, i)
			case i == pInt:
				assert.Equal(t, Current, state, "p=%v i=%d", p, i)
			default:
				assert.Equal(t, Todo, state, "p=%v i=%d", p, i)
			}
			if i > 0 {
				assert.GreaterOrEqual(t, int(ComputeStepState(i-1, p, false)), int(state),
					"earlier steps are never behind later ones")
			}
		}
	}
}

func TestIgnoreCurrentStateNeverCurrent(t *testing.T) {
	for p := -1.0; p <= 5; p += 0.1 {
		for i := 0; i < 5; i++ {
			assert.NotEqual(t, Current, ComputeStepState(i, p, true), "p=%v i=%d", p, i)
		}
	}
}

func TestStepStateNames(t *testing.T) {
	for _, s := range AllStates() {
		parsed, err := ParseStepState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStepState("paused")
	assert.Error(t, err)
	assert.Equal(t, "StepState(9)", StepState(9).String())
}
