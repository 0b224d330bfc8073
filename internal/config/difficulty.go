package config

import "math"

// Progress is what difficulty progression can be measured against.
type Progress struct {
	Distance int // world units travelled
	Score    int // committed stunt score
	Ticks    int
}

// DifficultyManager calculates terrain parameters based on ride progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "distance":
		progress = float64(p.Distance) / maxAt
	case "score":
		progress = float64(p.Score) / maxAt
	case "time":
		progress = float64(p.Ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Amplitude returns the rolling hill height at the current level.
func (d *DifficultyManager) Amplitude(base float64, p Progress) float64 {
	return base * (1.0 + d.Level(p)*d.cfg.Scaling.AmplitudeMultiplier)
}

// RampHeight returns the ramp height at the current level.
func (d *DifficultyManager) RampHeight(base float64, p Progress) float64 {
	return base * (1.0 + d.Level(p)*d.cfg.Scaling.RampMultiplier)
}

// GapWidth returns the landing gap after a ramp at the current level.
func (d *DifficultyManager) GapWidth(base float64, p Progress) float64 {
	return base * (1.0 + d.Level(p)*d.cfg.Scaling.GapMultiplier)
}

// RampSpacing returns the mean distance between ramps at the current level.
func (d *DifficultyManager) RampSpacing(base float64, p Progress) float64 {
	factor := clampF(d.cfg.Scaling.RampSpacingFactor, 0.0, 0.9)
	result := base * (1.0 - d.Level(p)*factor)
	if result < 40 { // Room to land and set up the next jump
		result = 40
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
