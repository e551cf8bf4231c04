package memory

import (
	"math/rand"

	"github.com/vovakirdan/tripgames/internal/config"
	"github.com/vovakirdan/tripgames/internal/core"
)

// Card is one tile of the grid. Two cards with the same Value form a pair.
type Card struct {
	Rect    core.RectF
	Value   int
	FaceUp  bool
	Matched bool
}

// Deal lays out a shuffled grid of pairs, row-major from the top-left.
// An odd cell count leaves the last cell empty.
func Deal(rng *rand.Rand, field config.FieldConfig, grid config.MemoryGrid) []Card {
	cells := grid.Columns * grid.Rows
	values := make([]int, 0, cells)
	for v := 0; v < cells/2; v++ {
		values = append(values, v, v)
	}
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	w, h := CardSize(field, grid)
	cards := make([]Card, len(values))
	for i, v := range values {
		c, r := i%grid.Columns, i/grid.Columns
		x := grid.Gap + float64(c)*(w+grid.Gap)
		y := grid.Top + grid.Gap + float64(r)*(h+grid.Gap)
		cards[i] = Card{Rect: core.NewRectF(x, y, w, h), Value: v}
	}
	return cards
}

// CardSize returns the card dimensions that fill the field below Top.
func CardSize(field config.FieldConfig, grid config.MemoryGrid) (float64, float64) {
	w := (field.Width - grid.Gap*float64(grid.Columns+1)) / float64(grid.Columns)
	h := (field.Height - grid.Top - grid.Gap*float64(grid.Rows+1)) / float64(grid.Rows)
	return w, h
}
