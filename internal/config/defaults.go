package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/putting.yaml
var defaultPuttingYAML []byte

//go:embed defaults/constellation.yaml
var defaultConstellationYAML []byte

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{Width: 480, Height: 320},
		Bricks: BreakoutBricks{
			Columns:    6,
			Rows:       3,
			Width:      65,
			Height:     20,
			Padding:    10,
			OffsetTop:  30,
			OffsetLeft: 30,
			Points:     10,
		},
		Ball: BreakoutBall{
			Radius:   8,
			SpeedX:   2,
			SpeedY:   -2,
			MaxSpeed: 8,
		},
		Paddle: BreakoutPaddle{
			Width:  75,
			Height: 10,
			Speed:  7,
		},
		Gameplay: BreakoutGameplay{Lives: 3},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 180,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultRunnerConfig returns the default Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Field: FieldConfig{Width: 480, Height: 270},
		Physics: RunnerPhysics{
			Gravity:      0.5,
			JumpImpulse:  -9,
			MaxFallSpeed: 12,
			BaseSpeed:    4,
		},
		Player: RunnerPlayer{
			X:            60,
			Width:        24,
			Height:       32,
			GroundOffset: 20,
		},
		Obstacles: RunnerObstacles{
			MinWidth:      18,
			MaxWidth:      34,
			MinHeight:     24,
			MaxHeight:     48,
			MinSpacing:    220,
			MaxSpacing:    380,
			HangingChance: 0.25,
			HangingGap:    20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				SpacingReduction: 0.3,
			},
		},
	}
}

// DefaultPuttingConfig returns the default Putting configuration.
func DefaultPuttingConfig() PuttingConfig {
	return PuttingConfig{
		Field: FieldConfig{Width: 400, Height: 600},
		Ball:  PuttingBall{Radius: 6},
		Hole: PuttingHole{
			Radius:       12,
			CaptureSpeed: 5,
		},
		Physics: PuttingPhysics{
			Friction:        0.98,
			SlopeFriction:   0.95,
			WallRestitution: 0.7,
			MinVelocity:     0.05,
			MaxPower:        15,
			DragScale:       0.1,
			PowerStep:       0.5,
			AngleStep:       5,
		},
		Course: PuttingCourse{
			Holes:       6,
			StrokeCap:   10,
			HoleInDelay: 1.5,
		},
	}
}

// DefaultConstellationConfig returns the default Constellation configuration.
func DefaultConstellationConfig() ConstellationConfig {
	return ConstellationConfig{
		Field: FieldConfig{Width: 400, Height: 600},
		Stars: ConstellationStars{
			Base:          3,
			Max:           12,
			Jitter:        20,
			MinSeparation: 48,
			TapRadius:     30,
			Points:        10,
		},
		Levels: ConstellationLevels{
			Count: 10,
			Pause: 0.8,
		},
	}
}

// DefaultCatchConfig returns the default catch game configuration.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Field: FieldConfig{Width: 400, Height: 600},
		Basket: CatchBasket{
			Width:  80,
			Height: 20,
			Bottom: 20,
			Speed:  8,
		},
		Items: CatchItems{
			Radius:     12,
			Speed:      3,
			SpawnEvery: 50,
			Colors:     4,
		},
		Gameplay: CatchGameplay{
			Lives:        3,
			RoundSeconds: 60,
			ColorSeconds: 8,
			Points:       10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.8,
				SpacingReduction: 0.4,
			},
		},
	}
}

// DefaultMemoryConfig returns the default Memory configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Field: FieldConfig{Width: 400, Height: 600},
		Grid: MemoryGrid{
			Columns: 4,
			Rows:    6,
			Gap:     10,
			Top:     40,
		},
		Gameplay: MemoryGameplay{FlipBack: 1.0},
	}
}
