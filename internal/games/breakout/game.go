// Package breakout implements a brick-breaking game: a ball bounces off the
// walls and a paddle and destroys a 6x3 wall of bricks.
package breakout

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
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// Game implements the Breakout rules.
type Game struct {
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager

	ball      physics.Body
	baseSpeed float64
	paddle    Paddle
	wall      *Wall
	lives     int
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{cfg: config.DefaultBreakoutConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Size returns the logical playfield.
func (g *Game) Size() (float64, float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Ranking returns the leaderboard policy.
func (g *Game) Ranking() leaderboard.Ranking {
	return leaderboard.Ranking{Game: g.ID(), Order: leaderboard.HigherScore, TopN: 5}
}

// InitRound lays out a fresh wall and serves the ball.
func (g *Game) InitRound(rt core.RuntimeConfig, c *engine.Control) engine.State {
	cfg, err := config.LoadBreakout(rt.ConfigPath, rt.Difficulty)
	if err != nil {
		c.Logger().Warn("breakout config", "err", err)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.lives = cfg.Gameplay.Lives
	g.wall = NewWall(cfg.Bricks)
	g.paddle = Paddle{
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
		Y:      cfg.Field.Height - cfg.Paddle.Height,
	}
	g.serve()
	return engine.Playing
}

// serve centers the paddle and puts the ball above it moving up-right.
func (g *Game) serve() {
	g.paddle.X = (g.cfg.Field.Width - g.paddle.Width) / 2
	g.ball = physics.Body{
		Pos:    core.V(g.cfg.Field.Width/2, g.cfg.Field.Height-30),
		Vel:    core.V(g.cfg.Ball.SpeedX, g.cfg.Ball.SpeedY),
		Radius: g.cfg.Ball.Radius,
	}
	g.baseSpeed = g.ball.Speed()
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Bricks returns the number of active bricks.
func (g *Game) Bricks() int {
	return g.wall.Active()
}

// Step advances the game by one frame.
func (g *Game) Step(t *engine.Tick) {
	g.updatePaddle(t.In, t.DT)

	prev := g.ball.Pos
	physics.Integrate(&g.ball, t.DT)
	physics.Sanitize(&g.ball, g.cfg.Ball.MaxSpeed)

	w, h := g.Size()
	physics.ReflectWalls(&g.ball, w, h, physics.WallsOpenBottom, 1)

	if g.checkPaddle() {
		return
	}
	if g.ball.Pos.Y > h-g.ball.Radius {
		g.miss()
		return
	}

	if b, ok := g.wall.HitAt(g.ball.Pos); ok {
		t.Ctl.AddScore(g.wall.Destroy(b))
		// Bounce away from the side the ball came from.
		if prev.Y > b.Rect.Center().Y {
			g.ball.Vel.Y = math.Abs(g.ball.Vel.Y)
		} else {
			g.ball.Vel.Y = -math.Abs(g.ball.Vel.Y)
		}
		g.rescale(t.Ctl.Score(), t.Ctl.Elapsed())
	}
}

// updatePaddle applies keyboard movement and pointer position.
func (g *Game) updatePaddle(in core.InputFrame, dt float64) {
	if in.Has(core.ActionLeft) {
		g.paddle.X -= g.cfg.Paddle.Speed * dt
	}
	if in.Has(core.ActionRight) {
		g.paddle.X += g.cfg.Paddle.Speed * dt
	}
	if in.Pointer != nil {
		// Pointers arrive in logical units already.
		w := g.cfg.Field.Width
		g.paddle.X = core.ControlPosition(in.Pointer.X, w, w, g.paddle.Width)
	}
	g.paddle.Clamp(g.cfg.Field.Width)
}

// checkPaddle bounces a descending ball that reaches the paddle. The hit
// offset from the paddle center steers the ball sideways.
func (g *Game) checkPaddle() bool {
	b := &g.ball
	if b.Vel.Y <= 0 || b.Pos.Y+b.Radius < g.paddle.Y {
		return false
	}
	if b.Pos.X < g.paddle.X || b.Pos.X > g.paddle.X+g.paddle.Width {
		return false
	}

	speed := b.Speed()
	hit := core.ClampF((b.Pos.X-g.paddle.CenterX())/(g.paddle.Width/2), -1, 1)
	b.Vel.X = hit * speed * 0.8
	b.Vel.Y = -math.Sqrt(math.Max(speed*speed-b.Vel.X*b.Vel.X, 0))
	b.Pos.Y = g.paddle.Y - b.Radius
	return true
}

// rescale sets the ball speed from the difficulty curve.
func (g *Game) rescale(score int, elapsed float64) {
	if !g.difficulty.IsEnabled() {
		return
	}
	s := g.ball.Speed()
	if s == 0 {
		return
	}
	target := math.Min(g.difficulty.Speed(g.baseSpeed, score, elapsed), g.cfg.Ball.MaxSpeed)
	g.ball.Vel = g.ball.Vel.Scale(target / s)
}

func (g *Game) miss() {
	g.lives--
	if g.lives > 0 {
		g.serve()
	}
}

// CheckTerminal reports WON when the wall is cleared and GAMEOVER when no
// lives remain.
func (g *Game) CheckTerminal() (engine.State, bool) {
	if g.wall.Active() == 0 {
		return engine.Won, true
	}
	if g.lives <= 0 {
		return engine.GameOver, true
	}
	return 0, false
}

// Status returns the lives and bricks counter for the status line.
func (g *Game) Status() string {
	return fmt.Sprintf("Lives: %d | Bricks: %d", g.lives, g.wall.Active())
}

// Render draws bricks, paddle and ball.
func (g *Game) Render(dst *core.Screen, v engine.View) {
	if g.wall == nil {
		return
	}
	vp := v.Viewport
	for c := range g.wall.Bricks {
		for r := range g.wall.Bricks[c] {
			b := g.wall.Bricks[c][r]
			if b.Active {
				dst.DrawRect(vp.CellRect(b.Rect), BrickChar, b.Color)
			}
		}
	}
	dst.DrawRect(vp.CellRect(g.paddle.Rect()), PaddleChar, core.ColorCyan)
	bx, by := vp.Cell(g.ball.Pos)
	dst.SetColored(bx, by, BallChar, core.ColorWhite)
}

func init() {
	registry.Register("breakout", func() engine.Rules {
		return New()
	})
}
