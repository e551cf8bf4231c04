// Package catch implements a color-match catcher: items of several colors
// fall from the top and only those matching the basket's current color may
// be caught.
package catch

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
	ItemChar   = '●'
	BasketChar = '▀'
)

// colors are the item and basket colors, indexed by Item.Color.
var colors = []core.Color{core.ColorRed, core.ColorGreen, core.ColorYellow, core.ColorBlue,
	core.ColorMagenta, core.ColorCyan}

// Game implements the Catch rules.
type Game struct {
	cfg        config.CatchConfig
	difficulty *config.DifficultyManager
	ctl        *engine.Control

	basket     Basket
	items      []Item
	lives      int
	spawnAcc   float64
	nextChange float64 // Elapsed seconds of the next basket color change
}

// New creates a new Catch game instance.
func New() *Game {
	return &Game{cfg: config.DefaultCatchConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "catch"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Color Catch"
}

// Size returns the logical playfield.
func (g *Game) Size() (float64, float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Ranking keeps a top 10.
func (g *Game) Ranking() leaderboard.Ranking {
	return leaderboard.Ranking{Game: g.ID(), Order: leaderboard.HigherScore, TopN: 10}
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// InitRound centers the basket with a random color and arms the color timer.
func (g *Game) InitRound(rt core.RuntimeConfig, c *engine.Control) engine.State {
	cfg, err := config.LoadCatch(rt.ConfigPath, rt.Difficulty)
	if err != nil {
		c.Logger().Warn("catch config", "err", err)
	}
	cfg.Items.Colors = core.Clamp(cfg.Items.Colors, 1, len(colors))
	g.cfg = cfg
	g.ctl = c
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.lives = cfg.Gameplay.Lives
	g.items = g.items[:0]
	g.spawnAcc = 0

	w, h := g.Size()
	g.basket = Basket{
		Width:  cfg.Basket.Width,
		Height: cfg.Basket.Height,
		X:      (w - cfg.Basket.Width) / 2,
		Y:      h - cfg.Basket.Bottom - cfg.Basket.Height,
		Color:  c.Rand().Intn(cfg.Items.Colors),
	}
	g.scheduleColorChange(0)
	return engine.Playing
}

// scheduleColorChange re-arms the basket color timer from now.
func (g *Game) scheduleColorChange(now float64) {
	d := g.cfg.Gameplay.ColorSeconds
	if d <= 0 {
		return
	}
	g.nextChange = now + d
	g.ctl.After(d, func() {
		g.changeColor()
		g.scheduleColorChange(g.nextChange)
	})
}

// changeColor picks a different basket color.
func (g *Game) changeColor() {
	n := g.cfg.Items.Colors
	if n < 2 {
		return
	}
	g.basket.Color = (g.basket.Color + 1 + g.ctl.Rand().Intn(n-1)) % n
}

// Step advances the game by one frame.
func (g *Game) Step(t *engine.Tick) {
	g.moveBasket(t.In, t.DT)

	score, elapsed := t.Ctl.Score(), t.Ctl.Elapsed()
	g.spawnAcc += t.DT
	if every := g.difficulty.Spacing(g.cfg.Items.SpawnEvery, score, elapsed); g.spawnAcc >= every {
		g.spawnAcc -= every
		g.spawn(t.Ctl)
	}

	speed := g.difficulty.Speed(g.cfg.Items.Speed, score, elapsed)
	_, h := g.Size()
	kept := g.items[:0]
	for _, it := range g.items {
		it.Vel = core.V(0, speed)
		physics.Integrate(&it.Body, t.DT)
		physics.Sanitize(&it.Body, math.Max(speed, 1))

		switch {
		case g.basket.Catches(&it):
			if it.Color == g.basket.Color {
				t.Ctl.AddScore(g.cfg.Gameplay.Points)
			} else {
				g.lives--
			}
		case it.Pos.Y-it.Radius > h:
			if it.Color == g.basket.Color {
				g.lives--
			}
		default:
			kept = append(kept, it)
		}
	}
	g.items = kept
}

func (g *Game) moveBasket(in core.InputFrame, dt float64) {
	if in.Has(core.ActionLeft) {
		g.basket.X -= g.cfg.Basket.Speed * dt
	}
	if in.Has(core.ActionRight) {
		g.basket.X += g.cfg.Basket.Speed * dt
	}
	if in.Pointer != nil {
		// Pointers arrive in logical units already.
		w := g.cfg.Field.Width
		g.basket.X = core.ControlPosition(in.Pointer.X, w, w, g.basket.Width)
	}
	g.basket.Clamp(g.cfg.Field.Width)
}

// spawn drops a new item at a random x with a random color.
func (g *Game) spawn(c *engine.Control) {
	r := g.cfg.Items.Radius
	w, _ := g.Size()
	rng := c.Rand()
	g.items = append(g.items, Item{
		Body:  physics.Body{Pos: core.V(r+rng.Float64()*(w-2*r), -r), Radius: r},
		Color: rng.Intn(g.cfg.Items.Colors),
	})
}

// CheckTerminal reports GAMEOVER when lives run out and WON when the round
// timer expires.
func (g *Game) CheckTerminal() (engine.State, bool) {
	if g.lives <= 0 {
		return engine.GameOver, true
	}
	if g.ctl != nil && g.ctl.Elapsed() >= g.cfg.Gameplay.RoundSeconds {
		return engine.Won, true
	}
	return 0, false
}

// Status shows lives, time left and the color countdown.
func (g *Game) Status() string {
	if g.ctl == nil {
		return ""
	}
	now := g.ctl.Elapsed()
	left := math.Max(g.cfg.Gameplay.RoundSeconds-now, 0)
	change := math.Max(g.nextChange-now, 0)
	return fmt.Sprintf("Lives: %d | Time: %.0fs | Color in %.0fs", g.lives, math.Ceil(left), math.Ceil(change))
}

// Render draws falling items and the basket in its current color.
func (g *Game) Render(dst *core.Screen, v engine.View) {
	vp := v.Viewport
	for _, it := range g.items {
		x, y := vp.Cell(it.Pos)
		dst.SetColored(x, y, ItemChar, colors[it.Color])
	}
	dst.DrawRect(vp.CellRect(g.basket.Rect()), BasketChar, colors[g.basket.Color])
}

func init() {
	registry.Register("catch", func() engine.Rules {
		return New()
	})
}
