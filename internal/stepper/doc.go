// Package stepper derives step states, connector fill fractions and
// resolved styles for multi-step progress indicators.
//
// The position cursor runs over [-1, stepCount]. Its integer part selects
// the current step and its fractional part fills the connector after that
// step; -1 means nothing has started and stepCount means every step is done.
// Everything here is a pure function of (steps, position, style) except
// LabelCache, which carries measured label sizes between layout passes.
package stepper
