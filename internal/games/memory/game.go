// Package memory implements a pairs game: flip two cards at a time and find
// every match in as few moves as possible.
package memory

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tripgames/internal/config"
	"github.com/vovakirdan/tripgames/internal/core"
	"github.com/vovakirdan/tripgames/internal/engine"
	"github.com/vovakirdan/tripgames/internal/leaderboard"
	"github.com/vovakirdan/tripgames/internal/physics"
	"github.com/vovakirdan/tripgames/internal/registry"
)

// Visual characters for rendering
const (
	BackChar   = '▒'
	FaceChar   = ' '
	CursorChar = '▸'
)

// faces labels card values.
const faces = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Game implements the Memory rules.
type Game struct {
	cfg config.MemoryConfig

	cards   []Card
	first   int // Index of the face-up unmatched card, -1 when none
	pending bool
	moves   int
	matched int
	cursor  int
}

// New creates a new Memory game instance.
func New() *Game {
	return &Game{cfg: config.DefaultMemoryConfig(), first: -1}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "memory"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Memory"
}

// Size returns the logical playfield.
func (g *Game) Size() (float64, float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Ranking orders rounds by moves.
func (g *Game) Ranking() leaderboard.Ranking {
	return leaderboard.Ranking{Game: g.ID(), Order: leaderboard.FewerMoves, TopN: 5}
}

// Moves returns the number of resolved pairs flipped.
func (g *Game) Moves() int {
	return g.moves
}

// Pending reports whether a mismatched pair is waiting to flip back.
func (g *Game) Pending() bool {
	return g.pending
}

// InitRound deals a shuffled grid.
func (g *Game) InitRound(rt core.RuntimeConfig, c *engine.Control) engine.State {
	cfg, err := config.LoadMemory(rt.ConfigPath, rt.Difficulty)
	if err != nil {
		c.Logger().Warn("memory config", "err", err)
	}
	g.cfg = cfg
	g.cards = Deal(c.Rand(), cfg.Field, cfg.Grid)
	g.first = -1
	g.pending = false
	g.moves = 0
	g.matched = 0
	g.cursor = 0
	return engine.Playing
}

// Step handles taps and keyboard flips. Input is ignored while a mismatched
// pair is face up.
func (g *Game) Step(t *engine.Tick) {
	if g.pending || len(g.cards) == 0 {
		return
	}
	g.moveCursor(t.In)

	if t.In.Has(core.ActionJump) || t.In.Has(core.ActionConfirm) {
		g.flip(g.cursor, t.Ctl)
		return
	}

	p, ok := t.In.Tap()
	if !ok {
		return
	}
	centers := make([]core.Vec, len(g.cards))
	for i, c := range g.cards {
		centers[i] = c.Rect.Center()
	}
	if idx := physics.NearestWithin(p, centers, g.tapRadius(), nil); idx >= 0 {
		g.cursor = idx
		g.flip(idx, t.Ctl)
	}
}

// tapRadius reaches the corners of a card's slot. Nearest-first picking
// then resolves every point of a slot to its own card.
func (g *Game) tapRadius() float64 {
	w, h := CardSize(g.cfg.Field, g.cfg.Grid)
	gap := g.cfg.Grid.Gap / 2
	return math.Hypot(w/2+gap, h/2+gap)
}

func (g *Game) moveCursor(in core.InputFrame) {
	cols, n := g.cfg.Grid.Columns, len(g.cards)
	switch {
	case in.Has(core.ActionLeft):
		g.cursor = (g.cursor - 1 + n) % n
	case in.Has(core.ActionRight):
		g.cursor = (g.cursor + 1) % n
	case in.Has(core.ActionUp) && g.cursor-cols >= 0:
		g.cursor -= cols
	case in.Has(core.ActionDown) && g.cursor+cols < n:
		g.cursor += cols
	}
}

// flip turns a face-down card up and resolves a pair on the second flip.
func (g *Game) flip(idx int, c *engine.Control) {
	card := &g.cards[idx]
	if card.FaceUp || card.Matched {
		return
	}
	card.FaceUp = true
	if g.first < 0 {
		g.first = idx
		return
	}

	a, b := g.first, idx
	g.first = -1
	g.moves++
	if g.cards[a].Value == g.cards[b].Value {
		g.cards[a].Matched = true
		g.cards[b].Matched = true
		g.matched += 2
		c.AddScore(10)
		return
	}

	g.pending = true
	c.After(g.cfg.Gameplay.FlipBack, func() {
		g.cards[a].FaceUp = false
		g.cards[b].FaceUp = false
		g.pending = false
	})
}

// CheckTerminal reports WON once every card is matched.
func (g *Game) CheckTerminal() (engine.State, bool) {
	if len(g.cards) > 0 && g.matched == len(g.cards) {
		return engine.Won, true
	}
	return 0, false
}

// Status shows moves and pairs found.
func (g *Game) Status() string {
	return fmt.Sprintf("Moves: %d | Pairs: %d/%d", g.moves, g.matched/2, len(g.cards)/2)
}

// Render draws the grid: backs for hidden cards, colored letters for
// revealed ones.
func (g *Game) Render(dst *core.Screen, v engine.View) {
	vp := v.Viewport
	for i, c := range g.cards {
		r := vp.CellRect(c.Rect)
		cx, cy := vp.Cell(c.Rect.Center())
		switch {
		case c.Matched:
			dst.SetColored(cx, cy, rune(faces[c.Value%len(faces)]), core.ColorGray)
		case c.FaceUp:
			dst.DrawRect(r, FaceChar, core.ColorDefault)
			dst.DrawBox(r)
			dst.SetColored(cx, cy, rune(faces[c.Value%len(faces)]), core.PaletteColor(c.Value))
		default:
			dst.DrawRect(r, BackChar, core.ColorBlue)
		}
		if i == g.cursor && v.State.Active() {
			dst.SetColored(r.X, cy, CursorChar, core.ColorCyan)
		}
	}
}

func init() {
	registry.Register("memory", func() engine.Rules {
		return New()
	})
}
