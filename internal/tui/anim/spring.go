package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// FPS is the frame rate animations are stepped at.
const FPS = 60

// settleEpsilon is how close a value must be to its target, with near-zero
// velocity, before it snaps and stops animating.
const settleEpsilon = 0.001

// FrameInterval is the delay between animation frames.
func FrameInterval() time.Duration {
	return time.Second / FPS
}

// Spring wraps a harmonica spring with the stepper's defaults.
type Spring struct {
	s harmonica.Spring
}

// NewSpring returns a spring with the given angular frequency and damping.
// Damping of 1 is critically damped; below 1 overshoots.
func NewSpring(frequency, damping float64) Spring {
	return Spring{s: harmonica.NewSpring(harmonica.FPS(FPS), frequency, damping)}
}

// DefaultSpring is slightly underdamped so position changes feel lively
// without ringing.
func DefaultSpring() Spring {
	return NewSpring(6.0, 0.8)
}

// Value is a float animated toward Target.
type Value struct {
	Pos    float64
	Vel    float64
	Target float64
}

// NewValue returns a value already resting at v.
func NewValue(v float64) Value {
	return Value{Pos: v, Target: v}
}

// SetTarget retargets the value; the current velocity is kept.
func (v *Value) SetTarget(target float64) {
	v.Target = target
}

// Jump moves the value to target immediately.
func (v *Value) Jump(target float64) {
	v.Pos, v.Vel, v.Target = target, 0, target
}

// Step advances one frame and reports whether the value is still moving.
func (v *Value) Step(s Spring) bool {
	if v.Settled() {
		v.Pos, v.Vel = v.Target, 0
		return false
	}
	v.Pos, v.Vel = s.s.Update(v.Pos, v.Vel, v.Target)
	if v.Settled() {
		v.Pos, v.Vel = v.Target, 0
		return false
	}
	return true
}

// Settled reports whether the value has reached its target.
func (v Value) Settled() bool {
	return math.Abs(v.Pos-v.Target) < settleEpsilon && math.Abs(v.Vel) < settleEpsilon
}
