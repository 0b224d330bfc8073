package config

import (
	_ "embed"
)

//go:embed defaults/riders.yaml
var defaultRidersYAML []byte

// DefaultRidersConfig returns the default configuration.
// It mirrors defaults/riders.yaml and is used if the embedded file cannot be parsed.
func DefaultRidersConfig() RidersConfig {
	return RidersConfig{
		Stunt: DefaultStuntConfig(),
		Bike: BikeConfig{
			Gravity:       40,
			ChassisMass:   2,
			WheelMass:     0.6,
			WheelRadius:   0.9,
			WheelBase:     4,
			WheelFriction: 1.2,
			MaxWheelSpin:  60,
			Acceleration:  45,
			BrakeDamping:  3,
			LeanRate:      14,
			MaxLeanSpin:   7,
			GroundMargin:  0.35,
			StartSpeed:    18,
		},
		Terrain: TerrainConfig{
			SegmentLength: 2,
			BaseAmplitude: 2,
			HillPeriod:    90,
			RampEvery:     140,
			RampHeight:    6,
			RampLength:    16,
			GapWidth:      10,
			Friction:      0.9,
			Lookahead:     160,
			Keepbehind:    60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				AmplitudeMultiplier: 1.5,
				RampMultiplier:      0.8,
				GapMultiplier:       1.0,
				RampSpacingFactor:   0.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game mode.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "riders", "riders_zen":
		return defaultRidersYAML
	default:
		return nil
	}
}
