package core

// Difficulty selects the tuning preset for a session.
type Difficulty string

const (
	DifficultyKids  Difficulty = "kids"
	DifficultyAdult Difficulty = "adult"
)

// ParseDifficulty accepts "kids"/"easy" and "adult"/"hard".
// Anything else yields DifficultyAdult and false.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "kids", "easy":
		return DifficultyKids, true
	case "adult", "hard":
		return DifficultyAdult, true
	default:
		return DifficultyAdult, false
	}
}

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW    int        // Terminal width in cells (render target)
	ScreenH    int        // Terminal height in cells
	TickRate   int        // Host frames per second (default 60)
	Seed       int64      // RNG seed for deterministic gameplay
	Difficulty Difficulty // kids or adult tuning
	ConfigPath string     // Optional custom YAML config for the game
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		Difficulty: DifficultyAdult,
	}
}

// Kids reports whether the kids preset is selected.
func (c RuntimeConfig) Kids() bool {
	return c.Difficulty == DifficultyKids
}

// GameState summarizes a session for the host.
type GameState struct {
	Score    int    // Current score
	State    string // State machine name (START, PLAYING, ...)
	Active   bool   // Whether the loop should keep ticking
	GameOver bool   // Whether the round has ended (won or lost)
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
