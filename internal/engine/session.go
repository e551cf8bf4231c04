package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tripgames/internal/core"
	"github.com/vovakirdan/tripgames/internal/leaderboard"
)

// RefTickSeconds is the length of one reference tick.
const RefTickSeconds = 1.0 / 60.0

// ErrNameRequired is returned when a session is started or a score is
// submitted without a player name.
var ErrNameRequired = errors.New("engine: player name required")

// ErrNotQualified is returned by Submit when the round no longer enters the
// leaderboard under the submitted name.
var ErrNotQualified = errors.New("engine: round does not beat the existing record")

// Options configures a Session. Zero values are valid.
type Options struct {
	// Manager persists scores. Nil runs without persistence.
	Manager *leaderboard.Manager
	Logger  *log.Logger
	// OnTransition is called after every state change.
	OnTransition func(from, to State)
}

// Session owns one game's round lifecycle and hands rules a Control.
type Session struct {
	rules  Rules
	rt     core.RuntimeConfig
	mgr    *leaderboard.Manager
	logger *log.Logger
	onTr   func(from, to State)

	state     State
	score     int
	ticks     int
	elapsed   float64
	player    string
	gen       uint64
	sched     Scheduler
	rng       *rand.Rand
	ctl       *Control
	last      leaderboard.Entry
	qualifies bool
}

// NewSession creates a session in the Start state.
func NewSession(r Rules, rt core.RuntimeConfig, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		rules:  r,
		rt:     rt,
		mgr:    opts.Manager,
		logger: logger.With("game", r.ID()),
		onTr:   opts.OnTransition,
		state:  Start,
		rng:    rand.New(rand.NewSource(rt.Seed)),
	}
	s.ctl = &Control{s: s}
	if s.mgr != nil {
		s.player = s.mgr.PlayerName()
	}
	return s
}

// Start validates the player name, remembers it and begins a round.
func (s *Session) Start(name string) error {
	name, err := leaderboard.ValidateName(name)
	if err != nil {
		return ErrNameRequired
	}
	s.player = name
	if s.mgr != nil {
		if err := s.mgr.SetPlayerName(name); err != nil {
			s.logger.Warn("save player name failed", "err", err)
		}
	}
	s.beginRound()
	return nil
}

// Restart begins a fresh round from any state. Pending timers of the
// previous round never fire.
func (s *Session) Restart() {
	s.beginRound()
}

func (s *Session) beginRound() {
	s.gen++
	s.sched.CancelAll()
	s.score = 0
	s.ticks = 0
	s.elapsed = 0
	s.qualifies = false
	s.last = leaderboard.Entry{}
	s.rng = rand.New(rand.NewSource(s.rt.Seed + int64(s.gen) - 1))

	first := s.rules.InitRound(s.rt, s.ctl)
	if !first.Active() {
		first = Playing
	}
	s.transition(first)
}

// Step advances the session by one frame of dt reference ticks. Due timers
// run first; the rules only step while the state is active.
func (s *Session) Step(in core.InputFrame, dt float64) core.StepResult {
	s.sched.Advance(dt*RefTickSeconds, s.gen)
	if !s.state.Active() {
		return core.StepResult{State: s.GameState()}
	}

	s.ticks++
	s.elapsed += dt * RefTickSeconds
	s.rules.Step(&Tick{In: in, DT: dt, Ctl: s.ctl})

	if s.state.Active() {
		if next, ok := s.rules.CheckTerminal(); ok {
			s.transition(next)
		}
	}
	return core.StepResult{State: s.GameState()}
}

func (s *Session) transition(to State) {
	from := s.state
	if from == to {
		return
	}
	s.state = to
	s.logger.Debug("transition", "from", from, "to", to, "gen", s.gen)

	if to.Terminal() && from.Active() {
		s.finish()
	}
	if s.onTr != nil {
		s.onTr(from, to)
	}
}

func (s *Session) finish() {
	s.sched.CancelAll()
	e := s.Entry()
	s.last = e
	if s.mgr != nil {
		s.qualifies = s.mgr.Finish(e)
		return
	}
	s.qualifies = s.rules.Ranking().Qualifies(nil, e)
}

// Entry returns the ranking record for the current round.
func (s *Session) Entry() leaderboard.Entry {
	e := leaderboard.Entry{Name: s.player, Score: s.score, Seconds: s.elapsed}
	if m, ok := s.rules.(Mover); ok {
		e.Moves = m.Moves()
	}
	return e
}

// Qualifies reports whether the finished round may enter the leaderboard.
func (s *Session) Qualifies() bool {
	return s.qualifies
}

// BeginNameEntry opens the name prompt after a qualifying round.
func (s *Session) BeginNameEntry() bool {
	if !s.state.Terminal() || !s.qualifies {
		return false
	}
	s.transition(NameEntry)
	return true
}

// Submit records the finished round under name and shows the leaderboard.
// An empty name keeps the prompt open.
func (s *Session) Submit(name string) ([]leaderboard.Entry, error) {
	if s.state != NameEntry {
		return s.Board(), fmt.Errorf("engine: submit in state %s", s.state)
	}
	valid, err := leaderboard.ValidateName(name)
	if err != nil {
		return s.Board(), ErrNameRequired
	}
	// Qualification was decided for the start name; a different name may
	// already hold a better record.
	e := s.last
	e.Name = valid
	if s.mgr != nil && !s.mgr.Qualifies(e) {
		s.qualifies = false
		s.transition(Leaderboard)
		return s.Board(), ErrNotQualified
	}
	var board []leaderboard.Entry
	if s.mgr != nil {
		b, err := s.mgr.RecordAttempt(name, s.last)
		if err != nil {
			return b, err
		}
		board = b
	}
	s.transition(Leaderboard)
	return board, nil
}

// Decline skips name entry.
func (s *Session) Decline() {
	if s.state.Terminal() || s.state == NameEntry {
		s.transition(Leaderboard)
	}
}

// ShowLeaderboard switches to the leaderboard from a passive state.
func (s *Session) ShowLeaderboard() {
	if s.state == Start || s.state.Terminal() {
		s.transition(Leaderboard)
	}
}

// Back returns to the start screen from a passive state.
func (s *Session) Back() {
	if s.state == Leaderboard || s.state.Terminal() {
		s.transition(Start)
	}
}

// Board returns the local leaderboard.
func (s *Session) Board() []leaderboard.Entry {
	if s.mgr == nil {
		return nil
	}
	return s.mgr.Board()
}

// Manager returns the persistence service, which may be nil.
func (s *Session) Manager() *leaderboard.Manager { return s.mgr }

// Rules returns the game rules.
func (s *Session) Rules() Rules { return s.rules }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Elapsed returns simulated seconds spent in active states this round.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Ticks returns the number of active frames this round.
func (s *Session) Ticks() int { return s.ticks }

// Player returns the player name.
func (s *Session) Player() string { return s.player }

// Generation returns the current round generation.
func (s *Session) Generation() uint64 { return s.gen }

// Pending returns the number of scheduled timers.
func (s *Session) Pending() int { return s.sched.Pending() }

// GameState summarizes the session for the host.
func (s *Session) GameState() core.GameState {
	return core.GameState{
		Score:    s.score,
		State:    s.state.String(),
		Active:   s.state.Active(),
		GameOver: s.state.Terminal(),
	}
}

// Control is the handle rules and timers use to act on their session.
type Control struct {
	s *Session
}

// AddScore adds n to the score. The score never drops below zero.
func (c *Control) AddScore(n int) {
	c.s.score += n
	if c.s.score < 0 {
		c.s.score = 0
	}
}

// Score returns the current score.
func (c *Control) Score() int { return c.s.score }

// State returns the current state.
func (c *Control) State() State { return c.s.state }

// Transition moves the session to another state.
func (c *Control) Transition(to State) { c.s.transition(to) }

// After runs fn after d simulated seconds unless the round is restarted
// or finished first.
func (c *Control) After(d float64, fn func()) TimerID {
	return c.s.sched.After(c.s.gen, d, fn)
}

// Cancel drops a pending timer.
func (c *Control) Cancel(id TimerID) bool { return c.s.sched.Cancel(id) }

// Elapsed returns simulated seconds spent in active states this round.
func (c *Control) Elapsed() float64 { return c.s.elapsed }

// Rand returns the round's seeded random source.
func (c *Control) Rand() *rand.Rand { return c.s.rng }

// Logger returns the session logger.
func (c *Control) Logger() *log.Logger { return c.s.logger }
