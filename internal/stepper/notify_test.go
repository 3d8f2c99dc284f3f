package stepper

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifierFiresCompletedSteps(t *testing.T) {
	var calls [4]atomic.Int32
	b := NewBuilder()
	for i := range calls {
		b.Step("s", OnComplete(func() { calls[i].Add(1) }))
	}
	steps := b.Build()

	var n Notifier
	assert.Equal(t, []int{0, 1}, n.Notify(steps, -1, 2, false))
	n.Wait()
	assert.Equal(t, int32(1), calls[0].Load())
	assert.Equal(t, int32(1), calls[1].Load())
	assert.Equal(t, int32(0), calls[2].Load())

	assert.Empty(t, n.Notify(steps, 2, 0.5, false), "rewinding completes nothing")
	assert.Equal(t, []int{2}, n.Notify(steps, 1.5, 2, true))
	n.Wait()
	assert.Equal(t, int32(1), calls[2].Load())
}

func TestNotifierSkipsNilCallbacks(t *testing.T) {
	steps := NewBuilder().Step("a").Step("b").Build()
	var n Notifier
	assert.Equal(t, []int{0, 1}, n.Notify(steps, -1, 2, false))
	n.Wait()
}
