package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tripgames/internal/core"
	"github.com/vovakirdan/tripgames/internal/leaderboard"
	"github.com/vovakirdan/tripgames/internal/storage"
)

// countRules is a minimal game: every step scores one point, and the round
// ends when the score reaches target.
type countRules struct {
	target int
	overAt int
	steps  int
	inits  int
	ctl    *Control
	lastDT float64
}

func (r *countRules) ID() string               { return "count" }
func (r *countRules) Title() string            { return "Count" }
func (r *countRules) Size() (float64, float64) { return 100, 100 }

func (r *countRules) InitRound(_ core.RuntimeConfig, c *Control) State {
	r.ctl = c
	r.steps = 0
	r.inits++
	return Playing
}

func (r *countRules) Step(t *Tick) {
	r.steps++
	r.lastDT = t.DT
	t.Ctl.AddScore(1)
}

func (r *countRules) CheckTerminal() (State, bool) {
	if r.overAt > 0 && r.steps >= r.overAt {
		return GameOver, true
	}
	if r.target > 0 && r.ctl.Score() >= r.target {
		return Won, true
	}
	return 0, false
}

func (r *countRules) Ranking() leaderboard.Ranking {
	return leaderboard.Ranking{Game: "count", Order: leaderboard.HigherScore, TopN: 5}
}

func (r *countRules) Render(dst *core.Screen, v View) {}

func newTestSession(r Rules) *Session {
	rt := core.DefaultConfig()
	rt.Seed = 7
	return NewSession(r, rt, Options{})
}

func TestStateActive(t *testing.T) {
	active := map[State]bool{Playing: true, Aiming: true, Rolling: true, HoleIn: true}
	for s := Start; s <= Leaderboard; s++ {
		if s.Active() != active[s] {
			t.Errorf("%s.Active() = %v, expected %v", s, s.Active(), active[s])
		}
	}
}

func TestSessionStartRequiresName(t *testing.T) {
	s := newTestSession(&countRules{})
	if err := s.Start("   "); !errors.Is(err, ErrNameRequired) {
		t.Errorf("Start(blank) err = %v, expected ErrNameRequired", err)
	}
	if s.State() != Start {
		t.Errorf("State() = %s, expected START", s.State())
	}
	if err := s.Start("Ana"); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if s.State() != Playing {
		t.Errorf("State() = %s, expected PLAYING", s.State())
	}
}

func TestSessionNoStepOutsideActive(t *testing.T) {
	r := &countRules{target: 3}
	s := newTestSession(r)

	s.Step(core.NewInputFrame(), 1)
	if r.steps != 0 {
		t.Fatalf("rules stepped in START state")
	}

	s.Start("Ana")
	for i := 0; i < 10; i++ {
		s.Step(core.NewInputFrame(), 1)
	}
	if s.State() != Won {
		t.Fatalf("State() = %s, expected WON", s.State())
	}
	if r.steps != 3 || s.Score() != 3 {
		t.Errorf("steps=%d score=%d, expected 3 and 3", r.steps, s.Score())
	}
}

func TestSessionTransitionOrder(t *testing.T) {
	var got []State
	r := &countRules{target: 2}
	rt := core.DefaultConfig()
	s := NewSession(r, rt, Options{OnTransition: func(_, to State) { got = append(got, to) }})

	s.Start("Ana")
	s.Step(core.NewInputFrame(), 1)
	s.Step(core.NewInputFrame(), 1)
	if !s.BeginNameEntry() {
		t.Fatal("BeginNameEntry() should succeed after a qualifying round")
	}
	if _, err := s.Submit("Ana"); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	s.Back()

	want := []State{Playing, Won, NameEntry, Leaderboard, Start}
	if len(got) != len(want) {
		t.Fatalf("transitions = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("transition %d = %s, expected %s", i, got[i], want[i])
		}
	}
}

func TestSessionSubmitEmptyNameKeepsPrompt(t *testing.T) {
	s := newTestSession(&countRules{target: 1})
	s.Start("Ana")
	s.Step(core.NewInputFrame(), 1)
	s.BeginNameEntry()

	if _, err := s.Submit("  "); !errors.Is(err, ErrNameRequired) {
		t.Errorf("Submit(blank) err = %v, expected ErrNameRequired", err)
	}
	if s.State() != NameEntry {
		t.Errorf("State() = %s, expected NAME_ENTRY", s.State())
	}
}

func TestSessionRecordsThroughManager(t *testing.T) {
	r := &countRules{target: 4}
	mgr := leaderboard.NewManager(r.Ranking(), storage.NewMemory(), leaderboard.Options{})
	s := NewSession(r, core.DefaultConfig(), Options{Manager: mgr})

	s.Start("Bo")
	for s.State().Active() {
		s.Step(core.NewInputFrame(), 1)
	}
	if mgr.HighScore() != 4 {
		t.Errorf("HighScore() = %d, expected 4", mgr.HighScore())
	}
	if !s.Qualifies() {
		t.Fatal("first round should qualify")
	}
	s.BeginNameEntry()
	board, err := s.Submit("Bo")
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if len(board) != 1 || board[0].Score != 4 {
		t.Errorf("board = %+v", board)
	}
}

func TestSessionScoreNeverNegative(t *testing.T) {
	s := newTestSession(&countRules{})
	s.Start("Ana")
	s.ctl.AddScore(-50)
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
}

func TestStaleTimerAfterRestartIsNoOp(t *testing.T) {
	r := &countRules{}
	s := newTestSession(r)
	s.Start("Ana")

	fired := false
	r.ctl.After(1.0, func() { fired = true })

	s.Restart()
	for i := 0; i < 120; i++ {
		s.Step(core.NewInputFrame(), 1)
	}
	if fired {
		t.Error("timer from the previous round fired after Restart")
	}
}

func TestSchedulerGenerationGuard(t *testing.T) {
	var sch Scheduler
	fired := 0
	sch.After(1, 0.5, func() { fired++ })
	sch.After(2, 0.5, func() { fired += 10 })

	if ran := sch.Advance(0.4, 2); ran != 0 {
		t.Errorf("Advance before due ran %d timers", ran)
	}
	if ran := sch.Advance(0.2, 2); ran != 1 {
		t.Errorf("Advance ran %d timers, expected 1", ran)
	}
	if fired != 10 {
		t.Errorf("fired = %d, expected only the current generation's timer", fired)
	}
	if sch.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", sch.Pending())
	}
}

func TestSchedulerCancel(t *testing.T) {
	var sch Scheduler
	fired := false
	id := sch.After(1, 0.1, func() { fired = true })
	if !sch.Cancel(id) {
		t.Error("Cancel() of pending timer should succeed")
	}
	if sch.Cancel(id) {
		t.Error("second Cancel() should report nothing pending")
	}
	sch.Advance(1, 1)
	if fired {
		t.Error("cancelled timer fired")
	}
}

func TestTimerFiresInOrder(t *testing.T) {
	r := &countRules{}
	s := newTestSession(r)
	s.Start("Ana")

	var order []int
	r.ctl.After(0.2, func() { order = append(order, 2) })
	r.ctl.After(0.1, func() { order = append(order, 1) })

	for i := 0; i < 30; i++ {
		s.Step(core.NewInputFrame(), 1)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, expected [1 2]", order)
	}
}

func TestClockDelta(t *testing.T) {
	var c Clock
	t0 := time.Unix(100, 0)

	if dt := c.Delta(t0); dt != 1 {
		t.Errorf("first Delta() = %v, expected 1", dt)
	}
	if dt := c.Delta(t0.Add(RefTick * 2)); dt < 1.999 || dt > 2.001 {
		t.Errorf("Delta() = %v, expected 2", dt)
	}
	if dt := c.Delta(t0.Add(time.Hour)); dt != MaxDelta {
		t.Errorf("Delta() after a stall = %v, expected %v", dt, MaxDelta)
	}
	if dt := c.Delta(t0); dt != 0 {
		t.Errorf("Delta() going backwards = %v, expected 0", dt)
	}
}

func TestDriverCancelIsIdempotent(t *testing.T) {
	r := &countRules{}
	s := newTestSession(r)
	s.Start("Ana")
	d := NewDriver(s)

	h := d.Arm()
	d.Cancel()
	d.Cancel()
	if d.Active() {
		t.Error("driver should be inactive after Cancel()")
	}
	if d.Frame(h, time.Now(), core.NewInputFrame(), nil) {
		t.Error("Frame() on a cancelled loop should return false")
	}
	if r.steps != 0 {
		t.Error("cancelled loop must not step the session")
	}
}

func TestDriverStaleHandle(t *testing.T) {
	r := &countRules{}
	s := newTestSession(r)
	s.Start("Ana")
	d := NewDriver(s)

	old := d.Arm()
	cur := d.Arm()
	now := time.Now()

	if d.Frame(old, now, core.NewInputFrame(), nil) {
		t.Error("stale handle should not run")
	}
	if !d.Frame(cur, now, core.NewInputFrame(), nil) {
		t.Error("current handle should run")
	}
	if r.steps != 1 {
		t.Errorf("steps = %d, expected 1", r.steps)
	}
}

func TestDriverStopsWhenInactiveAndRearms(t *testing.T) {
	r := &countRules{target: 2}
	s := newTestSession(r)
	s.Start("Ana")
	d := NewDriver(s)
	screen := core.NewScreen(40, 12)

	h := d.Arm()
	now := time.Now()
	frames := 0
	for d.Frame(h, now, core.NewInputFrame(), screen) {
		frames++
		now = now.Add(RefTick)
	}
	if s.State() != Won || d.Active() {
		t.Fatalf("state=%s active=%v, expected WON and inactive", s.State(), d.Active())
	}
	if frames != 1 {
		t.Errorf("frames = %d, expected 1 continuing frame", frames)
	}

	// Restart re-arms a fresh loop.
	s.Restart()
	h2 := d.Arm()
	if h2 == h {
		t.Error("re-arm should produce a new handle")
	}
	if !d.Frame(h2, now, core.NewInputFrame(), screen) {
		t.Error("re-armed loop should run")
	}
	if r.lastDT != 1 {
		t.Errorf("first frame after re-arm dt = %v, expected 1", r.lastDT)
	}
}

func TestSessionSubmitRechecksRenamedRound(t *testing.T) {
	r := &countRules{target: 4}
	mgr := leaderboard.NewManager(r.Ranking(), storage.NewMemory(), leaderboard.Options{})
	if _, err := mgr.RecordAttempt("Cy", leaderboard.Entry{Score: 10}); err != nil {
		t.Fatalf("RecordAttempt() failed: %v", err)
	}
	s := NewSession(r, core.DefaultConfig(), Options{Manager: mgr})

	s.Start("Bo")
	for s.State().Active() {
		s.Step(core.NewInputFrame(), 1)
	}
	if !s.Qualifies() {
		t.Fatal("Bo's first round should qualify")
	}
	s.BeginNameEntry()

	board, err := s.Submit("cy")
	if !errors.Is(err, ErrNotQualified) {
		t.Fatalf("Submit(cy) err = %v, expected ErrNotQualified", err)
	}
	if s.State() != Leaderboard {
		t.Errorf("State() = %s, expected LEADERBOARD", s.State())
	}
	if len(board) != 1 || board[0].Score != 10 {
		t.Errorf("board = %+v, expected Cy's record untouched", board)
	}
}
