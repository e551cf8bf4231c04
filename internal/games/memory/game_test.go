package memory

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tripgames/internal/config"
	"github.com/vovakirdan/tripgames/internal/core"
	"github.com/vovakirdan/tripgames/internal/engine"
)

func newSession(t *testing.T, d core.Difficulty) (*Game, *engine.Session) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	rt := core.DefaultConfig()
	rt.Seed = 8
	rt.Difficulty = d
	s := engine.NewSession(g, rt, engine.Options{})
	if err := s.Start("Ana"); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return g, s
}

func tapCard(g *Game, i int) core.InputFrame {
	p := g.cards[i].Rect.Center()
	in := core.NewInputFrame()
	in.SetPointer(core.Pointer{X: p.X, Y: p.Y, Pressed: true})
	return in
}

// pairs returns, for each value, the two card indices holding it.
func pairs(g *Game) map[int][]int {
	m := make(map[int][]int)
	for i, c := range g.cards {
		m[c.Value] = append(m[c.Value], i)
	}
	return m
}

// mismatch returns two indices with different values.
func mismatch(g *Game) (int, int) {
	for j := 1; j < len(g.cards); j++ {
		if g.cards[j].Value != g.cards[0].Value {
			return 0, j
		}
	}
	return 0, 0
}

func TestDealSizes(t *testing.T) {
	g, _ := newSession(t, core.DifficultyAdult)
	if len(g.cards) != 24 {
		t.Errorf("adult grid has %d cards, expected 24", len(g.cards))
	}
	for v, idx := range pairs(g) {
		if len(idx) != 2 {
			t.Errorf("value %d appears %d times", v, len(idx))
		}
	}

	kids, _ := newSession(t, core.DifficultyKids)
	if len(kids.cards) != 16 {
		t.Errorf("kids grid has %d cards, expected 16", len(kids.cards))
	}
}

func TestMatchingPair(t *testing.T) {
	g, s := newSession(t, core.DifficultyAdult)
	p := pairs(g)[0]

	s.Step(tapCard(g, p[0]), 1)
	s.Step(tapCard(g, p[1]), 1)

	if !g.cards[p[0]].Matched || !g.cards[p[1]].Matched {
		t.Error("both cards should be matched")
	}
	if g.Moves() != 1 {
		t.Errorf("Moves() = %d, expected 1", g.Moves())
	}
	if g.Pending() {
		t.Error("a match should not leave a pending flip-back")
	}
}

func TestMismatchFlipsBackAfterDelay(t *testing.T) {
	g, s := newSession(t, core.DifficultyAdult)
	a, b := mismatch(g)

	s.Step(tapCard(g, a), 1)
	s.Step(tapCard(g, b), 1)

	if !g.Pending() || !g.cards[a].FaceUp || !g.cards[b].FaceUp {
		t.Fatal("mismatched pair should stay face up while pending")
	}

	// Just under one second: still face up.
	for i := 0; i < 55; i++ {
		s.Step(core.NewInputFrame(), 1)
	}
	if !g.cards[a].FaceUp {
		t.Fatal("cards flipped back too early")
	}

	for i := 0; i < 10; i++ {
		s.Step(core.NewInputFrame(), 1)
	}
	if g.cards[a].FaceUp || g.cards[b].FaceUp || g.Pending() {
		t.Error("cards should be face down after the flip-back delay")
	}
	if g.Moves() != 1 {
		t.Errorf("Moves() = %d, expected 1", g.Moves())
	}
}

func TestInputBlockedWhilePending(t *testing.T) {
	g, s := newSession(t, core.DifficultyAdult)
	a, b := mismatch(g)

	s.Step(tapCard(g, a), 1)
	s.Step(tapCard(g, b), 1)

	var other int
	for i := range g.cards {
		if i != a && i != b {
			other = i
			break
		}
	}
	s.Step(tapCard(g, other), 1)

	if g.cards[other].FaceUp {
		t.Error("tap during pending flip-back should be ignored")
	}
}

func TestAllPairsWin(t *testing.T) {
	g, s := newSession(t, core.DifficultyKids)

	for _, idx := range pairs(g) {
		s.Step(tapCard(g, idx[0]), 1)
		s.Step(tapCard(g, idx[1]), 1)
	}

	if s.State() != engine.Won {
		t.Fatalf("State() = %s, expected WON", s.State())
	}
	if e := s.Entry(); e.Moves != 8 {
		t.Errorf("Entry().Moves = %d, expected 8", e.Moves)
	}
}

func TestKeyboardFlip(t *testing.T) {
	g, s := newSession(t, core.DifficultyAdult)

	down := core.NewInputFrame()
	down.Set(core.ActionDown)
	s.Step(down, 1)
	if g.cursor != g.cfg.Grid.Columns {
		t.Fatalf("cursor = %d, expected %d", g.cursor, g.cfg.Grid.Columns)
	}

	flip := core.NewInputFrame()
	flip.Set(core.ActionJump)
	s.Step(flip, 1)
	if !g.cards[g.cursor].FaceUp {
		t.Error("card under the cursor should be face up")
	}
}

func TestDealDeterministic(t *testing.T) {
	cfg := config.DefaultMemoryConfig()
	a := Deal(rand.New(rand.NewSource(4)), cfg.Field, cfg.Grid)
	b := Deal(rand.New(rand.NewSource(4)), cfg.Field, cfg.Grid)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("card %d differs", i)
		}
	}
}

func TestTapNearCardCornerFlipsThatCard(t *testing.T) {
	corners := []struct {
		name string
		at   func(r core.RectF) core.Vec
	}{
		{"top-left", func(r core.RectF) core.Vec { return core.V(r.X+2, r.Y+2) }},
		{"top-right", func(r core.RectF) core.Vec { return core.V(r.X+r.W-2, r.Y+2) }},
		{"bottom-left", func(r core.RectF) core.Vec { return core.V(r.X+2, r.Y+r.H-2) }},
		{"bottom-right", func(r core.RectF) core.Vec { return core.V(r.X+r.W-2, r.Y+r.H-2) }},
	}

	for _, tc := range corners {
		t.Run(tc.name, func(t *testing.T) {
			g, s := newSession(t, core.DifficultyAdult)
			const idx = 5
			p := tc.at(g.cards[idx].Rect)
			in := core.NewInputFrame()
			in.SetPointer(core.Pointer{X: p.X, Y: p.Y, Pressed: true})
			s.Step(in, 1)

			if !g.cards[idx].FaceUp {
				t.Errorf("tap at %v inside card %d did not flip it", p, idx)
			}
			for i, c := range g.cards {
				if i != idx && c.FaceUp {
					t.Errorf("card %d flipped instead", i)
				}
			}
		})
	}
}
