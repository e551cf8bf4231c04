package config

import "math"

// DifficultyManager maps progress (score or elapsed seconds) to a level in
// [InitialLevel, 1] and scales speeds and intervals by it.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score int, seconds float64) float64 {
	if !d.IsEnabled() {
		return d.cfg.InitialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = seconds / maxAt
	default:
		return d.cfg.InitialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.cfg.InitialLevel + progress*(1.0-d.cfg.InitialLevel)
}

// Speed scales baseSpeed up to baseSpeed * (1 + SpeedMultiplier) at level 1.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, seconds float64) float64 {
	return baseSpeed * (1.0 + d.Level(score, seconds)*d.cfg.Scaling.SpeedMultiplier)
}

// Spacing shrinks an interval (obstacle distance, spawn period) with the
// level. It never drops below half the base value.
func (d *DifficultyManager) Spacing(base float64, score int, seconds float64) float64 {
	reduction := clampF(d.Level(score, seconds)*d.cfg.Scaling.SpacingReduction, 0, 0.5)
	return base * (1 - reduction)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
