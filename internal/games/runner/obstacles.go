package runner

import (
	"math/rand"

	"github.com/vovakirdan/tripgames/internal/config"
	"github.com/vovakirdan/tripgames/internal/core"
)

// Obstacle is a floor block to jump over or a hanging block to stay under.
type Obstacle struct {
	Rect    core.RectF
	Hanging bool
	Passed  bool // Already counted for score
}

// ObstacleManager handles spawning, scrolling and removal of obstacles.
type ObstacleManager struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	cfg        *config.RunnerConfig
	difficulty *config.DifficultyManager
	floorY     float64
	nextSpawn  float64 // Distance still to scroll before the next spawn
}

// NewObstacleManager creates an obstacle manager drawing from rng.
func NewObstacleManager(rng *rand.Rand, cfg *config.RunnerConfig, diff *config.DifficultyManager) *ObstacleManager {
	return &ObstacleManager{
		obstacles:  make([]Obstacle, 0, 8),
		rng:        rng,
		cfg:        cfg,
		difficulty: diff,
		floorY:     cfg.Field.Height - cfg.Player.GroundOffset,
		nextSpawn:  cfg.Obstacles.MinSpacing,
	}
}

// Speed returns the current scroll speed per reference tick.
func (om *ObstacleManager) Speed(score int, seconds float64) float64 {
	return om.difficulty.Speed(om.cfg.Physics.BaseSpeed, score, seconds)
}

// Update scrolls obstacles left, spawns new ones and returns how many were
// passed by a player whose left edge is at playerX.
func (om *ObstacleManager) Update(dt float64, playerX float64, score int, seconds float64) int {
	dx := om.Speed(score, seconds) * dt

	passed := 0
	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		o.Rect.X -= dx
		if !o.Passed && o.Rect.Right() < playerX {
			o.Passed = true
			passed++
		}
		if o.Rect.Right() > 0 {
			kept = append(kept, o)
		}
	}
	om.obstacles = kept

	om.nextSpawn -= dx
	if om.nextSpawn <= 0 {
		om.spawn(score, seconds)
	}
	return passed
}

// spawn places a new obstacle at the right edge and picks the next gap.
func (om *ObstacleManager) spawn(score int, seconds float64) {
	o := om.cfg.Obstacles
	w := o.MinWidth + om.rng.Float64()*(o.MaxWidth-o.MinWidth)
	x := om.cfg.Field.Width

	var ob Obstacle
	if o.HangingChance > 0 && om.rng.Float64() < o.HangingChance {
		// Bottom edge leaves room for a standing player plus the gap.
		h := om.floorY - om.cfg.Player.Height - o.HangingGap
		ob = Obstacle{Rect: core.NewRectF(x, 0, w, h), Hanging: true}
	} else {
		h := o.MinHeight + om.rng.Float64()*(o.MaxHeight-o.MinHeight)
		ob = Obstacle{Rect: core.NewRectF(x, om.floorY-h, w, h)}
	}
	om.obstacles = append(om.obstacles, ob)

	current := max(om.difficulty.Spacing(o.MaxSpacing, score, seconds), o.MinSpacing)
	om.nextSpawn = o.MinSpacing + om.rng.Float64()*(current-o.MinSpacing) + w
}

// Obstacles returns the live obstacles.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Collides tests whether r overlaps any obstacle.
func (om *ObstacleManager) Collides(r core.RectF) bool {
	for _, o := range om.obstacles {
		if r.Intersects(o.Rect) {
			return true
		}
	}
	return false
}
