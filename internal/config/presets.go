package config

import "github.com/vovakirdan/tripgames/internal/core"

// InitialLevelForPreset returns the starting difficulty level for a preset.
func InitialLevelForPreset(d core.Difficulty) float64 {
	if d == core.DifficultyKids {
		return 0.0
	}
	return 0.3
}

// ApplyBreakoutPreset adjusts Breakout for the difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, d core.Difficulty) {
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(d)
	if d == core.DifficultyKids {
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 100
		cfg.Difficulty.Enabled = false
	}
}

// ApplyRunnerPreset adjusts Runner for the difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, d core.Difficulty) {
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(d)
	if d == core.DifficultyKids {
		cfg.Physics.AirJumps = 1
		cfg.Obstacles.HangingChance = 0
		cfg.Difficulty.Scaling.SpeedMultiplier /= 2
	}
}

// ApplyPuttingPreset adjusts Putting for the difficulty preset.
func ApplyPuttingPreset(cfg *PuttingConfig, d core.Difficulty) {
	if d == core.DifficultyKids {
		cfg.Course.Holes = 3
	}
}

// ApplyConstellationPreset adjusts Constellation for the difficulty preset.
func ApplyConstellationPreset(cfg *ConstellationConfig, d core.Difficulty) {
	if d == core.DifficultyKids {
		cfg.Stars.TapRadius = 40
	}
}

// ApplyCatchPreset adjusts the catch game for the difficulty preset.
func ApplyCatchPreset(cfg *CatchConfig, d core.Difficulty) {
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(d)
	if d == core.DifficultyKids {
		cfg.Basket.Width = 110
		cfg.Items.Speed = 2
	}
}

// ApplyMemoryPreset adjusts Memory for the difficulty preset.
func ApplyMemoryPreset(cfg *MemoryConfig, d core.Difficulty) {
	if d == core.DifficultyKids {
		cfg.Grid.Columns = 4
		cfg.Grid.Rows = 4
	}
}
