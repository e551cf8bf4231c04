// Package putting implements a mini-golf course: aim, putt, and roll the ball
// over slopes into the cup in as few strokes as possible.
package putting

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
	BallChar = '●'
	CupChar  = 'O'
	AimChar  = '·'
)

// maxRollTicks stops a ball that keeps oscillating on a slope.
const maxRollTicks = 900

// Game implements the Putting rules.
type Game struct {
	cfg    config.PuttingConfig
	course []Hole

	hole        int
	ball        physics.Body
	strokes     int // Total for the round
	holeStrokes int
	aimAngle    float64 // Degrees, 0 = right, -90 = up
	power       float64
	dragging    bool
	rolled      float64
	pickedUp    bool
	finished    bool
}

// New creates a new Putting game instance.
func New() *Game {
	return &Game{cfg: config.DefaultPuttingConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "putting"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Putting"
}

// Size returns the logical playfield.
func (g *Game) Size() (float64, float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Ranking orders rounds by total strokes.
func (g *Game) Ranking() leaderboard.Ranking {
	return leaderboard.Ranking{Game: g.ID(), Order: leaderboard.FewerMoves, TopN: 5}
}

// Moves returns the strokes played this round.
func (g *Game) Moves() int {
	return g.strokes
}

// Hole returns the zero-based index of the current hole.
func (g *Game) Hole() int {
	return g.hole
}

// InitRound tees up the first hole.
func (g *Game) InitRound(rt core.RuntimeConfig, c *engine.Control) engine.State {
	cfg, err := config.LoadPutting(rt.ConfigPath, rt.Difficulty)
	if err != nil {
		c.Logger().Warn("putting config", "err", err)
	}
	g.cfg = cfg
	g.course = Course(cfg.Course.Holes)
	g.strokes = 0
	g.finished = false
	g.setupHole(0)
	return engine.Aiming
}

func (g *Game) setupHole(i int) {
	g.hole = i
	g.holeStrokes = 0
	g.pickedUp = false
	g.dragging = false
	g.aimAngle = -90
	g.power = g.cfg.Physics.MaxPower / 2
	g.ball = physics.Body{Pos: g.course[i].Start, Radius: g.cfg.Ball.Radius}
}

// Step advances the game by one frame.
func (g *Game) Step(t *engine.Tick) {
	switch t.Ctl.State() {
	case engine.Aiming:
		g.aim(t)
	case engine.Rolling:
		g.roll(t)
	}
}

// aim handles keyboard aiming and pointer drags. Dragging away from the ball
// and releasing putts in the opposite direction.
func (g *Game) aim(t *engine.Tick) {
	in := t.In
	ph := g.cfg.Physics

	if in.Has(core.ActionLeft) {
		g.aimAngle -= ph.AngleStep
	}
	if in.Has(core.ActionRight) {
		g.aimAngle += ph.AngleStep
	}
	if in.Has(core.ActionUp) {
		g.power = math.Min(g.power+ph.PowerStep, ph.MaxPower)
	}
	if in.Has(core.ActionDown) {
		g.power = math.Max(g.power-ph.PowerStep, ph.PowerStep)
	}
	if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
		rad := g.aimAngle * math.Pi / 180
		g.putt(core.V(math.Cos(rad), math.Sin(rad)).Scale(g.power), t.Ctl)
		return
	}

	p := in.Pointer
	if p == nil {
		return
	}
	if p.Pressed {
		g.dragging = true
	}
	if g.dragging && p.Released {
		g.dragging = false
		v := g.ball.Pos.Sub(p.Pos()).Scale(ph.DragScale)
		if v.Len() < ph.PowerStep {
			return
		}
		if l := v.Len(); l > ph.MaxPower {
			v = v.Scale(ph.MaxPower / l)
		}
		g.putt(v, t.Ctl)
	}
}

func (g *Game) putt(v core.Vec, c *engine.Control) {
	g.ball.Vel = v
	g.strokes++
	g.holeStrokes++
	g.rolled = 0
	c.Transition(engine.Rolling)
}

// roll runs one frame of ball physics: slopes, friction, motion, walls,
// then the cup and rest checks.
func (g *Game) roll(t *engine.Tick) {
	ph := g.cfg.Physics
	b := &g.ball
	h := g.course[g.hole]

	friction := ph.Friction
	if physics.ApplySlopes(b, h.Slopes, t.DT) {
		friction = ph.SlopeFriction
	}
	physics.ApplyFriction(b, friction, t.DT)
	physics.Integrate(b, t.DT)
	physics.Sanitize(b, ph.MaxPower)
	w, fh := g.Size()
	physics.ReflectWalls(b, w, fh, physics.WallsAll, ph.WallRestitution)

	if physics.Sunk(b.Pos, h.Cup, b.Speed(), b.Radius, g.cfg.Hole.Radius, g.cfg.Hole.CaptureSpeed) {
		b.Pos = h.Cup
		b.Stop()
		t.Ctl.AddScore(1)
		g.holeOut(t.Ctl)
		return
	}

	g.rolled += t.DT
	if physics.SnapToRest(b, ph.MinVelocity) || g.rolled >= maxRollTicks {
		b.Stop()
		if g.holeStrokes >= g.cfg.Course.StrokeCap {
			g.pickedUp = true
			g.holeOut(t.Ctl)
			return
		}
		t.Ctl.Transition(engine.Aiming)
	}
}

// holeOut shows the hole result, then moves to the next hole or ends the
// round after the course's last hole.
func (g *Game) holeOut(c *engine.Control) {
	c.Transition(engine.HoleIn)
	c.After(g.cfg.Course.HoleInDelay, func() {
		if g.hole+1 >= len(g.course) {
			g.finished = true
			return
		}
		g.setupHole(g.hole + 1)
		c.Transition(engine.Aiming)
	})
}

// CheckTerminal ends the round once every hole is played.
func (g *Game) CheckTerminal() (engine.State, bool) {
	if g.finished {
		return engine.GameOver, true
	}
	return 0, false
}

// Status shows hole, strokes and putt power.
func (g *Game) Status() string {
	return fmt.Sprintf("Hole %d/%d | Strokes: %d | Power: %.1f",
		g.hole+1, len(g.course), g.strokes, g.power)
}

// Render draws slopes, cup, ball and the aim guide.
func (g *Game) Render(dst *core.Screen, v engine.View) {
	if len(g.course) == 0 {
		return
	}
	vp := v.Viewport
	h := g.course[g.hole]

	for y := 0; y < vp.CellsH; y++ {
		for x := 0; x < vp.CellsW; x++ {
			p := vp.Logical(x, y)
			for _, s := range h.Slopes {
				if s.Contains(p) {
					dst.SetColored(x, y, slopeArrow(s.Angle), core.ColorGreen)
					break
				}
			}
		}
	}

	cx, cy := vp.Cell(h.Cup)
	dst.SetColored(cx, cy, CupChar, core.ColorYellow)

	if v.State == engine.Aiming {
		rad := g.aimAngle * math.Pi / 180
		dir := core.V(math.Cos(rad), math.Sin(rad))
		for i := 1; i <= 4; i++ {
			p := g.ball.Pos.Add(dir.Scale(float64(i) * g.power * 2))
			ax, ay := vp.Cell(p)
			dst.SetColored(ax, ay, AimChar, core.ColorGray)
		}
	}

	bx, by := vp.Cell(g.ball.Pos)
	dst.SetColored(bx, by, BallChar, core.ColorWhite)

	if v.State == engine.HoleIn {
		msg := "IN THE HOLE!"
		if g.pickedUp {
			msg = "PICKED UP"
		}
		dst.DrawMessage(msg, fmt.Sprintf("Strokes on hole: %d", g.holeStrokes))
	}
}

// slopeArrow picks an arrow rune for a push direction.
func slopeArrow(angle float64) rune {
	arrows := []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	i := int(math.Round(angle/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return arrows[i]
}

func init() {
	registry.Register("putting", func() engine.Rules {
		return New()
	})
}
