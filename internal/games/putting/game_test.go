package putting

import (
	"math"
	"testing"

	"github.com/vovakirdan/tripgames/internal/core"
	"github.com/vovakirdan/tripgames/internal/engine"
)

func newSession(t *testing.T, d core.Difficulty, opts engine.Options) (*Game, *engine.Session) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	rt := core.DefaultConfig()
	rt.Seed = 3
	rt.Difficulty = d
	s := engine.NewSession(g, rt, opts)
	if err := s.Start("Ana"); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return g, s
}

func pointer(x, y float64, pressed, released bool) core.InputFrame {
	in := core.NewInputFrame()
	in.SetPointer(core.Pointer{X: x, Y: y, Pressed: pressed, Released: released})
	return in
}

func idle() core.InputFrame { return core.NewInputFrame() }

func TestStraightPuttSinks(t *testing.T) {
	var got []engine.State
	g, s := newSession(t, core.DifficultyAdult, engine.Options{
		OnTransition: func(_, to engine.State) { got = append(got, to) },
	})

	if s.State() != engine.Aiming {
		t.Fatalf("State() = %s, expected AIMING", s.State())
	}

	// Drag 100 units straight down from the ball at (200, 500) and release:
	// velocity (0, -10) toward the cup at (200, 100).
	s.Step(pointer(200, 500, true, false), 1)
	s.Step(pointer(200, 600, false, true), 1)

	for i := 0; i < 1000 && s.State() == engine.Rolling; i++ {
		s.Step(idle(), 1)
	}

	if s.State() != engine.HoleIn {
		t.Fatalf("State() = %s, expected HOLE_IN (ball at %v)", s.State(), g.ball.Pos)
	}
	if g.Moves() != 1 {
		t.Errorf("Moves() = %d, expected 1", g.Moves())
	}
	want := []engine.State{engine.Aiming, engine.Rolling, engine.HoleIn}
	for i := range want {
		if i >= len(got) || got[i] != want[i] {
			t.Fatalf("transitions = %v, expected prefix %v", got, want)
		}
	}

	// After the hole-in pause the next hole is teed up.
	for i := 0; i < 100 && s.State() == engine.HoleIn; i++ {
		s.Step(idle(), 1)
	}
	if s.State() != engine.Aiming || g.Hole() != 1 {
		t.Errorf("State() = %s hole = %d, expected AIMING on hole 1", s.State(), g.Hole())
	}
	if g.ball.Pos != g.course[1].Start {
		t.Errorf("ball at %v, expected tee %v", g.ball.Pos, g.course[1].Start)
	}
}

func TestSunkAtDistanceZero(t *testing.T) {
	g, s := newSession(t, core.DifficultyAdult, engine.Options{})

	s.Step(pointer(200, 500, true, false), 1)
	s.Step(pointer(200, 520, false, true), 1)
	if s.State() != engine.Rolling {
		t.Fatalf("State() = %s, expected ROLLING", s.State())
	}

	g.ball.Pos = g.course[0].Cup
	g.ball.Vel = core.Vec{}
	s.Step(idle(), 1)

	if s.State() != engine.HoleIn {
		t.Errorf("State() = %s, expected HOLE_IN", s.State())
	}
}

func TestFastBallLipsOut(t *testing.T) {
	g, s := newSession(t, core.DifficultyAdult, engine.Options{})

	s.Step(pointer(200, 500, true, false), 1)
	s.Step(pointer(200, 520, false, true), 1)

	cup := g.course[0].Cup
	g.ball.Pos = cup.Add(core.V(0, 12))
	g.ball.Vel = core.V(0, -12)
	s.Step(idle(), 1)

	if s.State() == engine.HoleIn {
		t.Error("ball over the cup at speed above capture should not sink")
	}
}

func TestKeyboardAimAndPower(t *testing.T) {
	g, s := newSession(t, core.DifficultyAdult, engine.Options{})

	in := idle()
	in.Set(core.ActionRight)
	in.Set(core.ActionUp)
	s.Step(in, 1)
	if g.aimAngle != -85 {
		t.Errorf("aimAngle = %v, expected -85", g.aimAngle)
	}
	if g.power != 8 {
		t.Errorf("power = %v, expected 8", g.power)
	}

	for i := 0; i < 40; i++ {
		up := idle()
		up.Set(core.ActionUp)
		s.Step(up, 1)
	}
	if g.power != g.cfg.Physics.MaxPower {
		t.Errorf("power = %v, expected clamp at %v", g.power, g.cfg.Physics.MaxPower)
	}

	shoot := idle()
	shoot.Set(core.ActionJump)
	s.Step(shoot, 1)
	if s.State() != engine.Rolling {
		t.Errorf("State() = %s, expected ROLLING", s.State())
	}
}

func TestDragPowerClamped(t *testing.T) {
	g, s := newSession(t, core.DifficultyAdult, engine.Options{})

	s.Step(pointer(200, 500, true, false), 1)
	s.Step(pointer(-5000, 9000, false, true), 1)

	// The first rolling step has not run yet; velocity is the putt itself.
	if sp := g.ball.Speed(); sp > g.cfg.Physics.MaxPower+1e-9 {
		t.Errorf("putt speed = %v, expected <= %v", sp, g.cfg.Physics.MaxPower)
	}
}

func TestBallComesToRestAndAimsAgain(t *testing.T) {
	g, s := newSession(t, core.DifficultyAdult, engine.Options{})

	// A gentle putt sideways stops well short of the cup.
	s.Step(pointer(200, 500, true, false), 1)
	s.Step(pointer(220, 500, false, true), 1)
	for i := 0; i < 1000 && s.State() == engine.Rolling; i++ {
		s.Step(idle(), 1)
		if !g.ball.Pos.Finite() {
			t.Fatalf("ball position not finite: %v", g.ball.Pos)
		}
	}

	if s.State() != engine.Aiming {
		t.Fatalf("State() = %s, expected AIMING", s.State())
	}
	if g.ball.Speed() != 0 {
		t.Errorf("ball speed = %v, expected 0 at rest", g.ball.Speed())
	}
}

func TestStrokeCapPicksUp(t *testing.T) {
	g, s := newSession(t, core.DifficultyAdult, engine.Options{})
	g.holeStrokes = g.cfg.Course.StrokeCap - 1

	s.Step(pointer(200, 500, true, false), 1)
	s.Step(pointer(220, 500, false, true), 1)
	for i := 0; i < 1000 && s.State() == engine.Rolling; i++ {
		s.Step(idle(), 1)
	}

	if s.State() != engine.HoleIn || !g.pickedUp {
		t.Errorf("State() = %s pickedUp = %v, expected HOLE_IN after the stroke cap", s.State(), g.pickedUp)
	}
}

func TestFinishingCourseEndsRound(t *testing.T) {
	g, s := newSession(t, core.DifficultyKids, engine.Options{})
	if len(g.course) != 3 {
		t.Fatalf("kids course has %d holes, expected 3", len(g.course))
	}

	for h := 0; h < 3; h++ {
		shoot := idle()
		shoot.Set(core.ActionJump)
		s.Step(shoot, 1)
		g.ball.Pos = g.course[h].Cup
		g.ball.Vel = core.Vec{}
		s.Step(idle(), 1)
		for i := 0; i < 100 && s.State() == engine.HoleIn; i++ {
			s.Step(idle(), 1)
		}
	}

	if s.State() != engine.GameOver {
		t.Fatalf("State() = %s, expected GAMEOVER", s.State())
	}
	if e := s.Entry(); e.Moves != 3 {
		t.Errorf("Entry().Moves = %d, expected 3", e.Moves)
	}
}

func TestSlopeArrow(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '→'},
		{math.Pi / 2, '↓'},
		{math.Pi, '←'},
		{-math.Pi / 2, '↑'},
	}
	for _, tc := range tests {
		if got := slopeArrow(tc.angle); got != tc.want {
			t.Errorf("slopeArrow(%v) = %q, expected %q", tc.angle, got, tc.want)
		}
	}
}
