package stepper

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titledSteps(n int) []StepDescriptor {
	b := NewBuilder()
	for i := 0; i < n; i++ {
		b.Step(fmt.Sprintf("Step %d", i+1), WithKey(fmt.Sprintf("s%d", i)))
	}
	return b.Build()
}

func TestPlan(t *testing.T) {
	style := DefaultStepperStyle()

	plan, err := Plan(titledSteps(5), 2.5, style, nil)
	require.NoError(t, err)
	require.Len(t, plan, 5)

	wantStates := []StepState{Done, Done, Current, Todo, Todo}
	wantFill := []float64{1, 1, 0.5, 0, 0}
	for i, ins := range plan {
		assert.Equal(t, i, ins.Index)
		assert.Equal(t, StepKey(fmt.Sprintf("s%d", i)), ins.Key)
		assert.Equal(t, wantStates[i], ins.State)
		assert.InDelta(t, wantFill[i], ins.LineFillFraction, 1e-9)
		assert.Equal(t, style.StepStyle.Resolve(ins.State), ins.Step)
		assert.Equal(t, style.LineStyle.Resolve(ins.State), ins.Line)
		assert.Equal(t, MaxSize(style.StepStyle), ins.SlotSize)
		assert.Equal(t, i == 4, ins.IsLastStep)
		assert.Equal(t, VisualTitle, ins.Visual)
	}
}

func TestPlanTerminalPosition(t *testing.T) {
	plan, err := Plan(titledSteps(4), 4, DefaultStepperStyle(), nil)
	require.NoError(t, err)
	for i, ins := range plan {
		assert.Equal(t, Done, ins.State)
		if i < 3 {
			assert.Equal(t, 1.0, ins.LineFillFraction)
		}
	}
	assert.True(t, plan[3].IsLastStep)
}

func TestPlanFailsFast(t *testing.T) {
	plan, err := Plan(nil, 0, DefaultStepperStyle(), nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Nil(t, plan)

	plan, err = Plan(titledSteps(3), 1, DefaultStepperStyle(), nil, DurationList(2))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Nil(t, plan)
}

func TestPlanUsesMeasuredLabels(t *testing.T) {
	steps := NewBuilder().
		Step("A", WithKey("a"), WithLabel("a very long trailing label")).
		Step("B", WithKey("b")).
		Build()
	style := DefaultStepperStyle()
	cache := NewLabelCache()

	first, err := Plan(steps, 0, style, cache)
	require.NoError(t, err)
	assert.Equal(t, style.LineStyle.OnCurrent.Length, first[0].EffectiveLineLength)

	require.True(t, cache.Record("a", steps[0].ContentID(), 26))
	second, err := Plan(steps, 0, style, cache)
	require.NoError(t, err)
	// current step is 3 cells wide in the default style
	assert.Equal(t, Length(23), second[0].EffectiveLineLength)

	assert.False(t, cache.Record("a", steps[0].ContentID(), 26))
	third, err := Plan(steps, 0, style, cache)
	require.NoError(t, err)
	assert.Equal(t, second, third, "layout converges once measured")
}

func TestPlanVerticalLabelExtent(t *testing.T) {
	steps := NewBuilder().
		Step("A", WithKey("a"), WithLabel("line1\nline2\nline3\nline4\nline5\nline6\nline7\nline8")).
		Step("B", WithKey("b")).
		Build()
	style := DefaultStepperStyle()
	style.Orientation = Vertical
	cache := NewLabelCache()
	cache.Record("a", steps[0].ContentID(), 8)

	plan, err := Plan(steps, 0, style, cache)
	require.NoError(t, err)
	assert.Equal(t, Length(7), plan[0].EffectiveLineLength)
}

func TestCompletedBetween(t *testing.T) {
	assert.Equal(t, []int{0, 1}, CompletedBetween(4, 0.5, 2.2, false))
	assert.Nil(t, CompletedBetween(4, 2.2, 0.5, false))
	assert.Equal(t, []int{1}, CompletedBetween(3, 0, 1, true))
	assert.Equal(t, []int{0, 1, 2}, CompletedBetween(3, -1, 3, false))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, -1.0, Clamp(-3, 4))
	assert.Equal(t, 4.0, Clamp(9, 4))
	assert.Equal(t, 2.5, Clamp(2.5, 4))
}

func TestParseOrientation(t *testing.T) {
	o, err := ParseOrientation("Vertical")
	require.NoError(t, err)
	assert.Equal(t, Vertical, o)

	_, err = ParseOrientation("diagonal")
	assert.Error(t, err)
}
