// Package runner implements a side-scrolling jumper: blocks slide in from the
// right and the player jumps over floor blocks and stays under hanging ones.
package runner

import (
	"fmt"

	"github.com/vovakirdan/tripgames/internal/config"
	"github.com/vovakirdan/tripgames/internal/core"
	"github.com/vovakirdan/tripgames/internal/engine"
	"github.com/vovakirdan/tripgames/internal/leaderboard"
	"github.com/vovakirdan/tripgames/internal/physics"
	"github.com/vovakirdan/tripgames/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar  = '█'
	BlockChar   = '▓'
	HangingChar = '▒'
	GroundChar  = '═'
)

// Game implements the Runner rules.
type Game struct {
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
	obstacles  *ObstacleManager

	player   physics.Body // Pos is the top-left corner
	floorY   float64
	grounded bool
	airJumps int
	crashed  bool
	speed    float64
}

// New creates a new Runner game instance.
func New() *Game {
	return &Game{cfg: config.DefaultRunnerConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Runner"
}

// Size returns the logical playfield.
func (g *Game) Size() (float64, float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Ranking returns the leaderboard policy.
func (g *Game) Ranking() leaderboard.Ranking {
	return leaderboard.Ranking{Game: g.ID(), Order: leaderboard.HigherScore, TopN: 5}
}

// InitRound puts the player on the floor with an empty track.
func (g *Game) InitRound(rt core.RuntimeConfig, c *engine.Control) engine.State {
	cfg, err := config.LoadRunner(rt.ConfigPath, rt.Difficulty)
	if err != nil {
		c.Logger().Warn("runner config", "err", err)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.floorY = cfg.Field.Height - cfg.Player.GroundOffset
	g.obstacles = NewObstacleManager(c.Rand(), &g.cfg, g.difficulty)
	g.player = physics.Body{Pos: core.V(cfg.Player.X, g.floorY-cfg.Player.Height)}
	g.grounded = true
	g.airJumps = cfg.Physics.AirJumps
	g.crashed = false
	g.speed = cfg.Physics.BaseSpeed
	return engine.Playing
}

// Step advances the game by one frame.
func (g *Game) Step(t *engine.Tick) {
	_, tapped := t.In.Tap()
	if t.In.Has(core.ActionJump) || t.In.Has(core.ActionUp) || tapped {
		g.jump()
	}

	p := &g.player
	physics.ApplyGravity(p, g.cfg.Physics.Gravity, t.DT)
	p.Vel.Y = min(p.Vel.Y, g.cfg.Physics.MaxFallSpeed)
	physics.Integrate(p, t.DT)
	physics.Sanitize(p, g.cfg.Physics.MaxFallSpeed*2)

	g.grounded = false
	if p.Pos.Y+g.cfg.Player.Height >= g.floorY {
		p.Pos.Y = g.floorY - g.cfg.Player.Height
		p.Vel.Y = 0
		g.grounded = true
		g.airJumps = g.cfg.Physics.AirJumps
	}
	if p.Pos.Y < 0 {
		p.Pos.Y = 0
		p.Vel.Y = 0
	}

	g.speed = g.obstacles.Speed(t.Ctl.Score(), t.Ctl.Elapsed())
	passed := g.obstacles.Update(t.DT, g.cfg.Player.X, t.Ctl.Score(), t.Ctl.Elapsed())
	t.Ctl.AddScore(passed)

	if g.obstacles.Collides(g.playerRect()) {
		g.crashed = true
	}
}

// jump starts a jump from the floor, or spends an air jump.
func (g *Game) jump() {
	switch {
	case g.grounded:
	case g.airJumps > 0:
		g.airJumps--
	default:
		return
	}
	g.player.Vel.Y = g.cfg.Physics.JumpImpulse
	g.grounded = false
}

func (g *Game) playerRect() core.RectF {
	return core.NewRectF(g.player.Pos.X, g.player.Pos.Y, g.cfg.Player.Width, g.cfg.Player.Height)
}

// CheckTerminal reports GAMEOVER after a collision. The runner has no win.
func (g *Game) CheckTerminal() (engine.State, bool) {
	if g.crashed {
		return engine.GameOver, true
	}
	return 0, false
}

// Status shows the scroll speed.
func (g *Game) Status() string {
	return fmt.Sprintf("Spd: %.1f", g.speed)
}

// Render draws the ground, obstacles and the player.
func (g *Game) Render(dst *core.Screen, v engine.View) {
	if g.obstacles == nil {
		return
	}
	vp := v.Viewport
	_, gy := vp.Cell(core.V(0, g.floorY))
	dst.DrawHLine(0, gy, dst.Width(), GroundChar)

	for _, o := range g.obstacles.Obstacles() {
		ch, col := BlockChar, core.ColorGreen
		if o.Hanging {
			ch, col = HangingChar, core.ColorMagenta
		}
		dst.DrawRect(vp.CellRect(o.Rect), ch, col)
	}
	dst.DrawRect(vp.CellRect(g.playerRect()), PlayerChar, core.ColorYellow)
}

func init() {
	registry.Register("runner", func() engine.Rules {
		return New()
	})
}
