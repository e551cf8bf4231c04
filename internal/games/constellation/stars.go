package constellation

import (
	"math/rand"

	"github.com/vovakirdan/tripgames/internal/config"
	"github.com/vovakirdan/tripgames/internal/core"
)

// Star is one point of a level's constellation. Stars are tapped in slice
// order.
type Star struct {
	Pos core.Vec
	Lit bool
}

// template spreads twelve anchor points over the 400x600 sky.
var template = []core.Vec{
	{X: 80, Y: 110}, {X: 210, Y: 90}, {X: 330, Y: 130},
	{X: 110, Y: 240}, {X: 250, Y: 220}, {X: 350, Y: 270},
	{X: 60, Y: 370}, {X: 190, Y: 350}, {X: 310, Y: 400},
	{X: 100, Y: 500}, {X: 230, Y: 480}, {X: 340, Y: 530},
}

const placeAttempts = 10

// StarCount returns how many stars level (1-based) shows.
func StarCount(cfg config.ConstellationStars, level int) int {
	return min(cfg.Base+level, cfg.Max, len(template))
}

// Layout picks n template anchors in a seeded order and jitters each one.
// A jittered point closer than MinSeparation to an earlier star is retried;
// when every attempt fails the anchor itself is used.
func Layout(rng *rand.Rand, cfg config.ConstellationStars, n int) []Star {
	order := rng.Perm(len(template))[:n]
	stars := make([]Star, 0, n)
	for _, idx := range order {
		base := template[idx]
		pos := base
		for attempt := 0; attempt < placeAttempts; attempt++ {
			p := base.Add(core.V(
				(rng.Float64()*2-1)*cfg.Jitter,
				(rng.Float64()*2-1)*cfg.Jitter,
			))
			if separated(p, stars, cfg.MinSeparation) {
				pos = p
				break
			}
		}
		stars = append(stars, Star{Pos: pos})
	}
	return stars
}

func separated(p core.Vec, stars []Star, minDist float64) bool {
	for _, s := range stars {
		if p.Dist(s.Pos) < minDist {
			return false
		}
	}
	return true
}
