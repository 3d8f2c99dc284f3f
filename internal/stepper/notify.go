package stepper

import "sync"

// Notifier fires OnComplete callbacks for steps that become Done when the
// position moves. Callbacks run on their own goroutines so a slow callback
// never holds up planning or drawing.
type Notifier struct {
	wg sync.WaitGroup
}

// Notify fires the callback of every step that is Done at to but was not at
// from, and returns their indices. Moving backwards completes nothing.
func (n *Notifier) Notify(steps []StepDescriptor, from, to float64, ignoreCurrentState bool) []int {
	completed := CompletedBetween(len(steps), from, to, ignoreCurrentState)
	for _, i := range completed {
		fn := steps[i].OnComplete
		if fn == nil {
			continue
		}
		n.wg.Add(1)
		go func() {
			defer n.wg.Done()
			fn()
		}()
	}
	return completed
}

// Wait blocks until every callback fired so far has returned.
func (n *Notifier) Wait() {
	n.wg.Wait()
}
