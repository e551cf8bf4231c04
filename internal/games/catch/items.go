package catch

import (
	"github.com/vovakirdan/tripgames/internal/core"
	"github.com/vovakirdan/tripgames/internal/physics"
)

// Item is a falling ball. Color is an index into the game's colors and must
// match the basket to score.
type Item struct {
	physics.Body
	Color int
}

// Basket is the player-controlled catcher at the bottom of the field.
type Basket struct {
	X      float64 // Left edge
	Y      float64 // Top edge
	Width  float64
	Height float64
	Color  int
}

// Rect returns the basket's bounds.
func (b *Basket) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}

// Catches reports whether an item touches the basket.
func (b *Basket) Catches(it *Item) bool {
	return physics.CircleRect(it.Pos, it.Radius, b.Rect())
}

// Clamp keeps the basket inside [0, fieldW-Width].
func (b *Basket) Clamp(fieldW float64) {
	b.X = core.ClampF(b.X, 0, fieldW-b.Width)
}
