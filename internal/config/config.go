// Package config provides YAML-based game configuration loading, kids/adult
// presets and difficulty management for the game runtime.
package config

// FieldConfig is a game's logical playfield resolution.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Ball       BreakoutBall     `yaml:"ball"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutBricks defines the brick wall layout.
type BreakoutBricks struct {
	Columns    int     `yaml:"columns"`
	Rows       int     `yaml:"rows"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
	Points     int     `yaml:"points"`
}

// BreakoutBall defines ball parameters.
type BreakoutBall struct {
	Radius   float64 `yaml:"radius"`
	SpeedX   float64 `yaml:"speed_x"`
	SpeedY   float64 `yaml:"speed_y"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// BreakoutPaddle defines paddle parameters.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Per tick when moved by keys
}

// BreakoutGameplay defines rules.
type BreakoutGameplay struct {
	Lives int `yaml:"lives"`
}

// RunnerConfig contains all configuration for Runner.
type RunnerConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    RunnerPhysics    `yaml:"physics"`
	Player     RunnerPlayer     `yaml:"player"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines physics parameters for Runner.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
	AirJumps     int     `yaml:"air_jumps"` // Extra jumps allowed before landing
}

// RunnerPlayer defines the jumper.
type RunnerPlayer struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Floor distance from the bottom edge
}

// RunnerObstacles defines obstacle generation.
type RunnerObstacles struct {
	MinWidth      float64 `yaml:"min_width"`
	MaxWidth      float64 `yaml:"max_width"`
	MinHeight     float64 `yaml:"min_height"`
	MaxHeight     float64 `yaml:"max_height"`
	MinSpacing    float64 `yaml:"min_spacing"`
	MaxSpacing    float64 `yaml:"max_spacing"`
	HangingChance float64 `yaml:"hanging_chance"` // Probability of a ceiling block
	HangingGap    float64 `yaml:"hanging_gap"`    // Clearance under a ceiling block
}

// PuttingConfig contains all configuration for Putting.
type PuttingConfig struct {
	Field   FieldConfig    `yaml:"field"`
	Ball    PuttingBall    `yaml:"ball"`
	Hole    PuttingHole    `yaml:"hole"`
	Physics PuttingPhysics `yaml:"physics"`
	Course  PuttingCourse  `yaml:"course"`
}

// PuttingBall defines the ball.
type PuttingBall struct {
	Radius float64 `yaml:"radius"`
}

// PuttingHole defines the cup.
type PuttingHole struct {
	Radius       float64 `yaml:"radius"`
	CaptureSpeed float64 `yaml:"capture_speed"` // Faster balls lip out
}

// PuttingPhysics defines rolling behaviour.
type PuttingPhysics struct {
	Friction        float64 `yaml:"friction"`
	SlopeFriction   float64 `yaml:"slope_friction"`
	WallRestitution float64 `yaml:"wall_restitution"`
	MinVelocity     float64 `yaml:"min_velocity"`
	MaxPower        float64 `yaml:"max_power"`
	DragScale       float64 `yaml:"drag_scale"` // Power per logical unit of drag
	PowerStep       float64 `yaml:"power_step"`
	AngleStep       float64 `yaml:"angle_step"` // Degrees per key press
}

// PuttingCourse defines the round.
type PuttingCourse struct {
	Holes       int     `yaml:"holes"`
	StrokeCap   int     `yaml:"stroke_cap"`
	HoleInDelay float64 `yaml:"hole_in_delay"` // Seconds
}

// ConstellationConfig contains all configuration for Constellation.
type ConstellationConfig struct {
	Field  FieldConfig         `yaml:"field"`
	Stars  ConstellationStars  `yaml:"stars"`
	Levels ConstellationLevels `yaml:"levels"`
}

// ConstellationStars defines star layout and tapping.
type ConstellationStars struct {
	Base          int     `yaml:"base"` // Level L has Base+L stars
	Max           int     `yaml:"max"`
	Jitter        float64 `yaml:"jitter"`
	MinSeparation float64 `yaml:"min_separation"`
	TapRadius     float64 `yaml:"tap_radius"`
	Points        int     `yaml:"points"` // Per star on level completion
}

// ConstellationLevels defines progression.
type ConstellationLevels struct {
	Count int     `yaml:"count"`
	Pause float64 `yaml:"pause"` // Seconds between levels
}

// CatchConfig contains all configuration for the color-match catch game.
type CatchConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Basket     CatchBasket      `yaml:"basket"`
	Items      CatchItems       `yaml:"items"`
	Gameplay   CatchGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CatchBasket defines the basket.
type CatchBasket struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Bottom float64 `yaml:"bottom"` // Gap under the basket
	Speed  float64 `yaml:"speed"`
}

// CatchItems defines falling items.
type CatchItems struct {
	Radius     float64 `yaml:"radius"`
	Speed      float64 `yaml:"speed"`
	SpawnEvery float64 `yaml:"spawn_every"` // Ticks between spawns
	Colors     int     `yaml:"colors"`
}

// CatchGameplay defines rules.
type CatchGameplay struct {
	Lives        int     `yaml:"lives"`
	RoundSeconds float64 `yaml:"round_seconds"`
	ColorSeconds float64 `yaml:"color_seconds"` // Basket color change interval
	Points       int     `yaml:"points"`
}

// MemoryConfig contains all configuration for Memory.
type MemoryConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Grid     MemoryGrid     `yaml:"grid"`
	Gameplay MemoryGameplay `yaml:"gameplay"`
}

// MemoryGrid defines the card layout.
type MemoryGrid struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	Gap     float64 `yaml:"gap"`
	Top     float64 `yaml:"top"` // Space above the grid
}

// MemoryGameplay defines rules.
type MemoryGameplay struct {
	FlipBack float64 `yaml:"flip_back"` // Seconds a mismatched pair stays face up
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction"` // Fraction of spacing removed at max difficulty
}
