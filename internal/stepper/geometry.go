package stepper

import "sync"

// ComputeEffectiveLineLength returns the length of the connector following a
// step. A nil measured means the step's label has not been laid out yet and
// the nominal length is used. Otherwise the line grows so the next indicator
// clears the label: max(nominal, measured-stepSize).
func ComputeEffectiveLineLength(nominal Length, measured *Length, stepSize Length) Length {
	if measured == nil {
		return nominal
	}
	return max(nominal, *measured-stepSize)
}

// StepKey identifies a step across render passes.
type StepKey string

type labelCell struct {
	contentID string
	extent    Length
}

// LabelCache remembers the measured extent of each step's trailing label.
// A cell moves from unmeasured to measured once and stays there until the
// label's content identity changes, so the two-pass layout converges.
type LabelCache struct {
	mu    sync.RWMutex
	cells map[StepKey]labelCell
}

// NewLabelCache returns an empty cache.
func NewLabelCache() *LabelCache {
	return &LabelCache{cells: make(map[StepKey]labelCell)}
}

// Record stores a measurement. It returns true when the layout needs another
// pass: the first measurement for key, or a measurement for new content.
// Repeat measurements of unchanged content are ignored.
func (c *LabelCache) Record(key StepKey, contentID string, extent Length) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cell, ok := c.cells[key]; ok && cell.contentID == contentID {
		return false
	}
	c.cells[key] = labelCell{contentID: contentID, extent: extent}
	return true
}

// Lookup returns the measured extent for key. A stored measurement for
// different content reads as unmeasured.
func (c *LabelCache) Lookup(key StepKey, contentID string) (Length, bool) {
	if c == nil {
		return 0, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	cell, ok := c.cells[key]
	if !ok || cell.contentID != contentID {
		return 0, false
	}
	return cell.extent, true
}

// Measured returns a pointer suitable for ComputeEffectiveLineLength, nil
// when the label is unmeasured.
func (c *LabelCache) Measured(key StepKey, contentID string) *Length {
	ext, ok := c.Lookup(key, contentID)
	if !ok {
		return nil
	}
	return &ext
}

// Invalidate resets key to unmeasured.
func (c *LabelCache) Invalidate(key StepKey) {
	c.mu.Lock()
	delete(c.cells, key)
	c.mu.Unlock()
}

// Prune drops every cell whose key is not in keep. Call it when the step
// list is replaced so stale steps do not accumulate.
func (c *LabelCache) Prune(keep []StepKey) {
	live := make(map[StepKey]struct{}, len(keep))
	for _, k := range keep {
		live[k] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.cells {
		if _, ok := live[k]; !ok {
			delete(c.cells, k)
		}
	}
}

// Len returns the number of measured cells.
func (c *LabelCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cells)
}
