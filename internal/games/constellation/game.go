// Package constellation implements a sequence game: tap the stars of each
// level in order before the sky grows.
package constellation

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tripgames/internal/config"
	"github.com/vovakirdan/tripgames/internal/core"
	"github.com/vovakirdan/tripgames/internal/engine"
	"github.com/vovakirdan/tripgames/internal/leaderboard"
	"github.com/vovakirdan/tripgames/internal/physics"
	"github.com/vovakirdan/tripgames/internal/registry"
)

// Visual characters for rendering
const (
	StarChar   = '✦'
	LitChar    = '★'
	CursorChar = '>'
)

// Game implements the Constellation rules.
type Game struct {
	cfg config.ConstellationConfig

	level    int // 1-based
	stars    []Star
	expected int // Index of the next star to tap
	cursor   int // Keyboard selection
	paused   bool
	wrong    bool
	won      bool
}

// New creates a new Constellation game instance.
func New() *Game {
	return &Game{cfg: config.DefaultConstellationConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "constellation"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Constellation"
}

// Size returns the logical playfield.
func (g *Game) Size() (float64, float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Ranking returns the leaderboard policy.
func (g *Game) Ranking() leaderboard.Ranking {
	return leaderboard.Ranking{Game: g.ID(), Order: leaderboard.HigherScore, TopN: 5}
}

// Level returns the current 1-based level.
func (g *Game) Level() int {
	return g.level
}

// InitRound starts at level 1.
func (g *Game) InitRound(rt core.RuntimeConfig, c *engine.Control) engine.State {
	cfg, err := config.LoadConstellation(rt.ConfigPath, rt.Difficulty)
	if err != nil {
		c.Logger().Warn("constellation config", "err", err)
	}
	g.cfg = cfg
	g.wrong = false
	g.won = false
	g.startLevel(1, c)
	return engine.Playing
}

func (g *Game) startLevel(level int, c *engine.Control) {
	g.level = level
	g.stars = Layout(c.Rand(), g.cfg.Stars, StarCount(g.cfg.Stars, level))
	g.expected = 0
	g.cursor = 0
	g.paused = false
}

// Step handles taps and keyboard selection. Input is ignored during the
// pause between levels.
func (g *Game) Step(t *engine.Tick) {
	if g.paused {
		return
	}

	if t.In.Has(core.ActionLeft) || t.In.Has(core.ActionUp) {
		g.cursor = (g.cursor - 1 + len(g.stars)) % len(g.stars)
	}
	if t.In.Has(core.ActionRight) || t.In.Has(core.ActionDown) {
		g.cursor = (g.cursor + 1) % len(g.stars)
	}
	if t.In.Has(core.ActionJump) || t.In.Has(core.ActionConfirm) {
		g.tap(g.cursor, t.Ctl)
		return
	}

	p, ok := t.In.Tap()
	if !ok {
		return
	}
	centers := make([]core.Vec, len(g.stars))
	for i, s := range g.stars {
		centers[i] = s.Pos
	}
	idx := physics.NearestWithin(p, centers, g.cfg.Stars.TapRadius, func(i int) bool {
		return g.stars[i].Lit
	})
	if idx >= 0 {
		g.tap(idx, t.Ctl)
	}
}

// tap lights the expected star or ends the round on any other.
func (g *Game) tap(idx int, c *engine.Control) {
	if g.stars[idx].Lit {
		return
	}
	if idx != g.expected {
		g.wrong = true
		return
	}
	g.stars[idx].Lit = true
	g.expected++
	if g.expected < len(g.stars) {
		return
	}

	c.AddScore(len(g.stars) * g.cfg.Stars.Points)
	if g.level >= g.cfg.Levels.Count {
		g.won = true
		return
	}
	g.paused = true
	next := g.level + 1
	c.After(g.cfg.Levels.Pause, func() {
		g.startLevel(next, c)
	})
}

// CheckTerminal reports GAMEOVER on a wrong star and WON after the last level.
func (g *Game) CheckTerminal() (engine.State, bool) {
	if g.wrong {
		return engine.GameOver, true
	}
	if g.won {
		return engine.Won, true
	}
	return 0, false
}

// Status shows the level and progress through it.
func (g *Game) Status() string {
	return fmt.Sprintf("Level %d/%d | Star %d/%d", g.level, g.cfg.Levels.Count, g.expected, len(g.stars))
}

// Render draws the stars with their order numbers.
func (g *Game) Render(dst *core.Screen, v engine.View) {
	vp := v.Viewport
	for i, s := range g.stars {
		x, y := vp.Cell(s.Pos)
		if s.Lit {
			dst.SetColored(x, y, LitChar, core.ColorYellow)
			continue
		}
		dst.SetColored(x, y, StarChar, core.ColorWhite)
		dst.DrawText(x+1, y, strconv.Itoa(i+1))
		if i == g.cursor && v.State.Active() {
			dst.SetColored(x-1, y, CursorChar, core.ColorCyan)
		}
	}
	if g.paused {
		dst.DrawTextCentered(1, fmt.Sprintf("Level %d complete!", g.level))
	}
}

func init() {
	registry.Register("constellation", func() engine.Rules {
		return New()
	})
}
