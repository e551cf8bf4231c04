package breakout

import (
	"github.com/vovakirdan/tripgames/internal/config"
	"github.com/vovakirdan/tripgames/internal/core"
)

// Brick is one destructible block.
type Brick struct {
	Rect   core.RectF
	Active bool
	Color  core.Color
}

// Wall holds the bricks column-major: Bricks[c][r].
type Wall struct {
	Bricks [][]Brick
	active int
	points int
}

// NewWall lays out a full wall.
func NewWall(cfg config.BreakoutBricks) *Wall {
	w := &Wall{Bricks: make([][]Brick, cfg.Columns), points: cfg.Points}
	for c := 0; c < cfg.Columns; c++ {
		w.Bricks[c] = make([]Brick, cfg.Rows)
		for r := 0; r < cfg.Rows; r++ {
			x := cfg.OffsetLeft + float64(c)*(cfg.Width+cfg.Padding)
			y := cfg.OffsetTop + float64(r)*(cfg.Height+cfg.Padding)
			w.Bricks[c][r] = Brick{
				Rect:   core.NewRectF(x, y, cfg.Width, cfg.Height),
				Active: true,
				Color:  core.PaletteColor(r),
			}
			w.active++
		}
	}
	return w
}

// Active returns the number of bricks still standing.
func (w *Wall) Active() int {
	return w.active
}

// HitAt returns the first active brick, scanning columns then rows, whose
// rectangle strictly contains p.
func (w *Wall) HitAt(p core.Vec) (*Brick, bool) {
	for c := range w.Bricks {
		for r := range w.Bricks[c] {
			b := &w.Bricks[c][r]
			if b.Active && b.Rect.ContainsStrict(p) {
				return b, true
			}
		}
	}
	return nil, false
}

// Destroy deactivates a brick and returns the points it was worth.
// Destroying an inactive brick is a no-op worth 0.
func (w *Wall) Destroy(b *Brick) int {
	if !b.Active {
		return 0
	}
	b.Active = false
	w.active--
	return w.points
}

// Paddle is the player-controlled bar at the bottom of the field.
type Paddle struct {
	X      float64 // Left edge
	Y      float64 // Top edge
	Width  float64
	Height float64
}

// Rect returns the paddle's bounds.
func (p *Paddle) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Clamp keeps the paddle inside [0, fieldW-Width].
func (p *Paddle) Clamp(fieldW float64) {
	p.X = core.ClampF(p.X, 0, fieldW-p.Width)
}
