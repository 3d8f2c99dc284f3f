package stepper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimaryVisualPrecedence(t *testing.T) {
	content := &Content{Body: "body"}

	assert.Equal(t, VisualTitle, StepDescriptor{Title: "t", Icon: "i", Content: content}.PrimaryVisual())
	assert.Equal(t, VisualIcon, StepDescriptor{Icon: "i", Content: content}.PrimaryVisual())
	assert.Equal(t, VisualContent, StepDescriptor{Content: content}.PrimaryVisual())
	assert.Equal(t, VisualBullet, StepDescriptor{}.PrimaryVisual())
}

func TestBuilder(t *testing.T) {
	completed := 0
	steps := NewBuilder().
		Step("Plan", WithKey("plan"), WithLabel("drafting")).
		Step("", WithIcon("✎"), Collapsible()).
		Step("", WithMarkdown("**ship** it"), OnComplete(func() { completed++ })).
		Build()

	require.Len(t, steps, 3)
	assert.Equal(t, StepKey("plan"), steps[0].Key)
	assert.True(t, steps[0].HasLabel())
	assert.NotEmpty(t, steps[1].Key, "keys are generated when omitted")
	assert.NotEqual(t, steps[1].Key, steps[2].Key)
	assert.True(t, steps[1].Collapsible)
	assert.True(t, steps[2].Content.Markdown)

	steps[2].OnComplete()
	assert.Equal(t, 1, completed)
}

func TestContentID(t *testing.T) {
	a := StepDescriptor{Label: "hello"}
	b := StepDescriptor{Label: "hello"}
	c := StepDescriptor{Label: "hello", Content: &Content{Body: "x"}}

	assert.Equal(t, a.ContentID(), b.ContentID())
	assert.NotEqual(t, a.ContentID(), c.ContentID())
	assert.NotEqual(t, a.ContentID(), StepDescriptor{Label: "bye"}.ContentID())
	assert.NotEqual(t, a.ContentID(), StepDescriptor{Label: "hello", Description: "more"}.ContentID())
}
