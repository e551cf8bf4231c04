package engine

import (
	"github.com/vovakirdan/tripgames/internal/core"
	"github.com/vovakirdan/tripgames/internal/leaderboard"
)

// Rules is the per-game part of a session. Games contain pure logic with no
// external dependencies; the session owns state, score, timers and
// persistence.
type Rules interface {
	// ID returns a unique identifier (e.g. "breakout"), used for CLI
	// commands and storage keys.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Size returns the logical playfield resolution.
	Size() (w, h float64)

	// InitRound builds fresh entity state and returns the first active state.
	InitRound(rt core.RuntimeConfig, c *Control) State

	// Step integrates and detects collisions for one frame. Only called
	// while the session is in an active state.
	Step(t *Tick)

	// CheckTerminal is called once per frame after Step.
	CheckTerminal() (State, bool)

	// Ranking returns the game's leaderboard policy.
	Ranking() leaderboard.Ranking

	// Render draws the playfield. The screen is pre-cleared.
	Render(dst *core.Screen, v View)
}

// Mover is implemented by games ranked by move or stroke count.
type Mover interface {
	Moves() int
}

// StatusLiner adds game-specific text (lives, level) to the status line.
type StatusLiner interface {
	Status() string
}

// Tick is the per-frame input to Rules.Step.
type Tick struct {
	In  core.InputFrame
	DT  float64 // Frame length in reference ticks (1 = 1/60 s)
	Ctl *Control
}

// View is what Render needs besides the game's own state.
type View struct {
	State    State
	Score    int
	Best     int
	Elapsed  float64
	Player   string
	Viewport core.Viewport
}
