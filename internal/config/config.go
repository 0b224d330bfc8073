// Package config provides YAML-based configuration loading, hot reload, and
// difficulty management for Pixel Riders.
package config

import "fmt"

// RidersConfig contains all configuration for the riders game modes.
type RidersConfig struct {
	Stunt      StuntConfig      `yaml:"stunt"`
	Bike       BikeConfig       `yaml:"bike"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BikeConfig defines the rigid bodies and controls of the motorcycle.
// Units are world units (one terminal column is WorldScale units wide).
type BikeConfig struct {
	Gravity       float64 `yaml:"gravity"`        // downward acceleration
	ChassisMass   float64 `yaml:"chassis_mass"`
	WheelMass     float64 `yaml:"wheel_mass"`
	WheelRadius   float64 `yaml:"wheel_radius"`
	WheelBase     float64 `yaml:"wheel_base"`     // distance between axles
	WheelFriction float64 `yaml:"wheel_friction"`
	MaxWheelSpin  float64 `yaml:"max_wheel_spin"` // rad/s at full throttle
	Acceleration  float64 `yaml:"acceleration"`   // wheel spin gained per second of throttle
	BrakeDamping  float64 `yaml:"brake_damping"`  // fraction of wheel spin removed per second
	LeanRate      float64 `yaml:"lean_rate"`      // chassis angular velocity added per second of lean
	MaxLeanSpin   float64 `yaml:"max_lean_spin"`  // lean input stops adding beyond this rad/s
	GroundMargin  float64 `yaml:"ground_margin"`  // wheel counts as grounded this close to the surface
	StartSpeed    float64 `yaml:"start_speed"`
}

// TerrainConfig defines the procedural track.
type TerrainConfig struct {
	SegmentLength float64 `yaml:"segment_length"` // horizontal length of one terrain segment
	BaseAmplitude float64 `yaml:"base_amplitude"` // rolling hill height at difficulty 0
	HillPeriod    float64 `yaml:"hill_period"`    // horizontal distance of one hill cycle
	RampEvery     float64 `yaml:"ramp_every"`     // mean distance between ramps
	RampHeight    float64 `yaml:"ramp_height"`
	RampLength    float64 `yaml:"ramp_length"`
	GapWidth      float64 `yaml:"gap_width"` // landing gap after a ramp at difficulty 0
	Friction      float64 `yaml:"friction"`
	Lookahead     float64 `yaml:"lookahead"` // terrain generated this far ahead of the bike
	Keepbehind    float64 `yaml:"keepbehind"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a ride.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "distance", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // distance/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	AmplitudeMultiplier float64 `yaml:"amplitude_multiplier"` // added to hill amplitude at max difficulty
	RampMultiplier      float64 `yaml:"ramp_multiplier"`      // added to ramp height at max difficulty
	GapMultiplier       float64 `yaml:"gap_multiplier"`       // added to landing gap at max difficulty
	RampSpacingFactor   float64 `yaml:"ramp_spacing_factor"`  // fraction of ramp spacing removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard, or fixed)", ErrInvalid, name)
	}
}
