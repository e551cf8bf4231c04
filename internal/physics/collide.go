package physics

import "github.com/vovakirdan/tripgames/internal/core"

// Wall is a bitmask of playfield edges.
type Wall uint8

const (
	WallLeft Wall = 1 << iota
	WallRight
	WallTop
	WallBottom

	WallsSides      = WallLeft | WallRight
	WallsOpenBottom = WallLeft | WallRight | WallTop
	WallsAll        = WallLeft | WallRight | WallTop | WallBottom
)

// Has reports whether w contains all bits of o.
func (w Wall) Has(o Wall) bool {
	return w&o == o
}

// ReflectWalls keeps the body inside [r, W-r]×[r, H-r] for every edge in
// walls. When the body crosses an edge its position is clamped and the
// matching velocity component is negated and scaled by restitution
// (1 is elastic). Only velocity pointing into the wall is reflected.
// Returns the set of walls that were hit.
func ReflectWalls(b *Body, w, h float64, walls Wall, restitution float64) Wall {
	var hit Wall
	r := b.Radius

	if walls.Has(WallLeft) && b.Pos.X < r {
		b.Pos.X = r
		if b.Vel.X < 0 {
			b.Vel.X = -b.Vel.X * restitution
		}
		hit |= WallLeft
	}
	if walls.Has(WallRight) && b.Pos.X > w-r {
		b.Pos.X = w - r
		if b.Vel.X > 0 {
			b.Vel.X = -b.Vel.X * restitution
		}
		hit |= WallRight
	}
	if walls.Has(WallTop) && b.Pos.Y < r {
		b.Pos.Y = r
		if b.Vel.Y < 0 {
			b.Vel.Y = -b.Vel.Y * restitution
		}
		hit |= WallTop
	}
	if walls.Has(WallBottom) && b.Pos.Y > h-r {
		b.Pos.Y = h - r
		if b.Vel.Y > 0 {
			b.Vel.Y = -b.Vel.Y * restitution
		}
		hit |= WallBottom
	}
	return hit
}

// CenterInRect reports whether p lies strictly inside r.
func CenterInRect(p core.Vec, r core.RectF) bool {
	return r.ContainsStrict(p)
}

// CircleRect reports whether a circle overlaps an axis-aligned rectangle.
func CircleRect(c core.Vec, radius float64, r core.RectF) bool {
	nx := core.ClampF(c.X, r.X, r.Right())
	ny := core.ClampF(c.Y, r.Y, r.Bottom())
	dx, dy := c.X-nx, c.Y-ny
	return dx*dx+dy*dy < radius*radius
}

// Sunk reports whether a ball at p with the given speed drops into a hole:
// its center must be well inside the cup (distance < holeR - ballR/2) and it
// must be slow enough to be captured. A fast ball over the cup lips out.
func Sunk(p, hole core.Vec, speed, ballR, holeR, captureSpeed float64) bool {
	return p.Dist(hole) < holeR-ballR/2 && speed < captureSpeed
}

// NearestWithin returns the index of the center nearest to p among those
// strictly within radius, or -1. Equal distances resolve to the lowest index.
// skip, when non-nil, excludes indices from consideration.
func NearestWithin(p core.Vec, centers []core.Vec, radius float64, skip func(i int) bool) int {
	best := -1
	bestD := 0.0
	for i, c := range centers {
		if skip != nil && skip(i) {
			continue
		}
		d := p.Dist(c)
		if d >= radius {
			continue
		}
		if best == -1 || d < bestD {
			best = i
			bestD = d
		}
	}
	return best
}
