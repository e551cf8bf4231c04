// Package physics integrates ball-like bodies in logical playfield space.
// All per-tick constants are scaled by dt, where dt=1 is one 1/60 s reference
// tick, so the same tuning holds at any frame rate.
package physics

import (
	"math"

	"github.com/vovakirdan/tripgames/internal/core"
)

// Body is a circular moving object: a ball, a jumper, a falling item.
type Body struct {
	Pos    core.Vec
	Vel    core.Vec // Logical units per reference tick
	Radius float64
}

// Speed returns the magnitude of the velocity.
func (b *Body) Speed() float64 {
	return b.Vel.Len()
}

// Integrate advances position by velocity scaled by dt.
func Integrate(b *Body, dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Stop zeroes the velocity.
func (b *Body) Stop() {
	b.Vel = core.Vec{}
}

// Finite reports whether position and velocity are finite numbers.
func Finite(b *Body) bool {
	return b.Pos.Finite() && b.Vel.Finite()
}

// ClampSpeed scales the velocity down so its magnitude is at most max.
func ClampSpeed(b *Body, max float64) {
	s := b.Speed()
	if max <= 0 || s <= max || s == 0 {
		return
	}
	b.Vel = b.Vel.Scale(max / s)
}

// SnapToRest zeroes the velocity when its magnitude drops below min.
// Returns true if the body is at rest afterwards.
func SnapToRest(b *Body, min float64) bool {
	if b.Speed() < min {
		b.Stop()
		return true
	}
	return false
}

// Sanitize replaces non-finite components with zero and clamps the speed.
// Games call it after every integration step so that a bad frame can never
// leave the simulation in a NaN state.
func Sanitize(b *Body, maxSpeed float64) {
	b.Pos.X = finiteOr(b.Pos.X, 0)
	b.Pos.Y = finiteOr(b.Pos.Y, 0)
	b.Vel.X = finiteOr(b.Vel.X, 0)
	b.Vel.Y = finiteOr(b.Vel.Y, 0)
	ClampSpeed(b, maxSpeed)
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
