// Package engine runs one game session: the round state machine, the
// generation-guarded timer scheduler and the frame driver. Each game supplies
// only its Rules.
package engine

// State is a node of the session state machine.
type State int

const (
	Start State = iota
	Playing
	Aiming
	Rolling
	HoleIn
	Won
	GameOver
	NameEntry
	Leaderboard
)

var stateNames = [...]string{
	Start:       "START",
	Playing:     "PLAYING",
	Aiming:      "AIMING",
	Rolling:     "ROLLING",
	HoleIn:      "HOLE_IN",
	Won:         "WON",
	GameOver:    "GAMEOVER",
	NameEntry:   "NAME_ENTRY",
	Leaderboard: "LEADERBOARD",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// Active reports whether the integrator and detector run in this state.
func (s State) Active() bool {
	switch s {
	case Playing, Aiming, Rolling, HoleIn:
		return true
	}
	return false
}

// Terminal reports whether the state ends a round.
func (s State) Terminal() bool {
	return s == Won || s == GameOver
}
