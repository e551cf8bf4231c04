package putting

import (
	"math"

	"github.com/vovakirdan/tripgames/internal/core"
	"github.com/vovakirdan/tripgames/internal/physics"
)

// Hole is one green: where the ball starts, the cup, and the slopes.
type Hole struct {
	Start  core.Vec
	Cup    core.Vec
	Slopes []physics.Slope
}

func deg(d float64) float64 { return d * math.Pi / 180 }

// course is laid out on the 400x600 green.
var course = []Hole{
	{
		Start: core.V(200, 500),
		Cup:   core.V(200, 100),
	},
	{
		Start: core.V(100, 520),
		Cup:   core.V(300, 120),
		Slopes: []physics.Slope{
			{Pos: core.V(200, 320), Radius: 80, Angle: deg(180), Strength: 0.04},
		},
	},
	{
		Start: core.V(320, 520),
		Cup:   core.V(90, 140),
		Slopes: []physics.Slope{
			{Pos: core.V(260, 360), Radius: 70, Angle: deg(0), Strength: 0.05},
			{Pos: core.V(130, 220), Radius: 60, Angle: deg(90), Strength: 0.04},
		},
	},
	{
		Start: core.V(200, 540),
		Cup:   core.V(200, 80),
		Slopes: []physics.Slope{
			{Pos: core.V(120, 300), Radius: 90, Angle: deg(0), Strength: 0.06},
			{Pos: core.V(280, 300), Radius: 90, Angle: deg(180), Strength: 0.06},
		},
	},
	{
		Start: core.V(60, 540),
		Cup:   core.V(340, 90),
		Slopes: []physics.Slope{
			{Pos: core.V(200, 420), Radius: 100, Angle: deg(270), Strength: 0.05},
			{Pos: core.V(280, 200), Radius: 70, Angle: deg(135), Strength: 0.07},
		},
	},
	{
		Start: core.V(340, 540),
		Cup:   core.V(200, 300),
		Slopes: []physics.Slope{
			{Pos: core.V(200, 300), Radius: 110, Angle: deg(90), Strength: 0.05},
			{Pos: core.V(100, 480), Radius: 60, Angle: deg(315), Strength: 0.05},
		},
	},
}

// Course returns the first n holes, at least one and at most all of them.
func Course(n int) []Hole {
	n = core.Clamp(n, 1, len(course))
	return course[:n]
}
