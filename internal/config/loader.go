package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const ridersFile = "riders.yaml"

// LoadRiders loads the riders configuration.
// Search order: customPath -> ~/.pixel-riders/configs/riders.yaml -> ./configs/riders.yaml -> embedded default
func LoadRiders(customPath string) (RidersConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RidersConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseRiders(data)
		if err != nil {
			return RidersConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(ridersFile), filepath.Join("configs", ridersFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := ParseRiders(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := ParseRiders(defaultRidersYAML)
	if err != nil {
		return DefaultRidersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseRiders decodes YAML on top of the defaults, so a file only needs the
// keys it changes, and validates the result.
func ParseRiders(data []byte) (RidersConfig, error) {
	cfg := DefaultRidersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RidersConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RidersConfig{}, err
	}
	return cfg, nil
}

// ResolvePath returns the file LoadRiders would read, or "" when it would
// fall back to the embedded default.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range []string{userConfigPath(ridersFile), filepath.Join("configs", ridersFile)} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg RidersConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks the whole configuration.
func (c RidersConfig) Validate() error {
	if err := c.Stunt.Validate(); err != nil {
		return err
	}
	if c.Bike.WheelRadius <= 0 || c.Bike.WheelBase <= 0 {
		return fmt.Errorf("%w: bike.wheel_radius and bike.wheel_base must be > 0", ErrInvalid)
	}
	if c.Bike.ChassisMass <= 0 || c.Bike.WheelMass <= 0 {
		return fmt.Errorf("%w: bike masses must be > 0", ErrInvalid)
	}
	if c.Terrain.SegmentLength <= 0 {
		return fmt.Errorf("%w: terrain.segment_length must be > 0", ErrInvalid)
	}
	if c.Terrain.Lookahead <= 0 {
		return fmt.Errorf("%w: terrain.lookahead must be > 0", ErrInvalid)
	}
	switch c.Difficulty.Progression.Type {
	case "distance", "score", "time", "none":
	default:
		return fmt.Errorf("%w: difficulty.progression.type: unknown value %q", ErrInvalid, c.Difficulty.Progression.Type)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pixel-riders", "configs", filename)
}

// ApplyRidersPreset modifies the config based on a difficulty preset.
func ApplyRidersPreset(cfg *RidersConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Landing windows get more or less forgiving with the preset
	switch preset {
	case DifficultyEasy:
		cfg.Stunt.Landing.AngleTolerance = 30
		cfg.Stunt.Landing.DualWheelWindow *= 2
	case DifficultyHard:
		cfg.Stunt.Landing.AngleTolerance = 15
	}
}
