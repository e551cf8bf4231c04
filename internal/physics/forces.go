package physics

import (
	"math"

	"github.com/vovakirdan/tripgames/internal/core"
)

// ApplyGravity accelerates the body downward by g per reference tick.
func ApplyGravity(b *Body, g, dt float64) {
	b.Vel.Y += g * dt
}

// ApplyFriction multiplies velocity by coeff once per reference tick.
// For fractional dt the decay is coeff^dt.
func ApplyFriction(b *Body, coeff, dt float64) {
	k := coeff
	if dt != 1 {
		k = math.Pow(coeff, dt)
	}
	b.Vel = b.Vel.Scale(k)
}

// Slope is a circular area of the green that pushes the ball in a direction.
type Slope struct {
	Pos      core.Vec
	Radius   float64 // Influence radius
	Angle    float64 // Direction of the push in radians
	Strength float64 // Acceleration per reference tick
}

// Contains reports whether p is inside the slope's influence radius.
func (s Slope) Contains(p core.Vec) bool {
	return p.Dist(s.Pos) < s.Radius
}

// ApplySlopes adds every slope's push whose area contains the body.
// Returns true if at least one slope acted.
func ApplySlopes(b *Body, slopes []Slope, dt float64) bool {
	on := false
	for _, s := range slopes {
		if !s.Contains(b.Pos) {
			continue
		}
		b.Vel.X += s.Strength * math.Cos(s.Angle) * dt
		b.Vel.Y += s.Strength * math.Sin(s.Angle) * dt
		on = true
	}
	return on
}
