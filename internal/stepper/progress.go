package stepper

import "math"

// ComputeLineProgress returns the fill fraction of the connector that follows
// the step at index. Inputs are assumed to have passed ValidateSequence.
func ComputeLineProgress(index int, position float64) float64 {
	if position < 0 {
		return 0
	}

	whole := math.Trunc(position)
	pInt := int(whole)
	switch {
	case index == pInt:
		return position - whole
	case index < pInt:
		return 1
	default:
		return 0
	}
}
