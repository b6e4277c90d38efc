package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlyer loads the Ring Flyer configuration.
// Search order: customPath -> ~/.flyer/configs/flyer.yaml ->
// ./configs/flyer.yaml -> embedded default.
func LoadFlyer(customPath string) (FlyerConfig, error) {
	var cfg FlyerConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.sanitize()
		return cfg, nil
	}

	if userCfgPath := userConfigPath("flyer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.sanitize()
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/flyer.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.sanitize()
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultFlyerYAML, &cfg); err != nil {
		return DefaultFlyerConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.sanitize()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flyer", "configs", filename)
}

// sanitize repairs config values that would make generation degenerate:
// floors above defaults, inverted center ranges, caps tighter than the
// starting range. Generation parameters must never invert at runtime, so
// bad input is fixed here rather than reported mid-game.
func (c *FlyerConfig) sanitize() {
	def := DefaultFlyerConfig()

	if c.Difficulty.Spacing.Default <= 0 {
		c.Difficulty.Spacing = def.Difficulty.Spacing
	}
	if c.Difficulty.Spacing.Floor <= 0 || c.Difficulty.Spacing.Floor > c.Difficulty.Spacing.Default {
		c.Difficulty.Spacing.Floor = c.Difficulty.Spacing.Default
	}
	if c.Difficulty.GateHalfHeight.Default <= 0 {
		c.Difficulty.GateHalfHeight = def.Difficulty.GateHalfHeight
	}
	if c.Difficulty.GateHalfHeight.Floor <= 0 || c.Difficulty.GateHalfHeight.Floor > c.Difficulty.GateHalfHeight.Default {
		c.Difficulty.GateHalfHeight.Floor = c.Difficulty.GateHalfHeight.Default
	}
	if c.Difficulty.CenterLow > c.Difficulty.CenterHigh {
		c.Difficulty.CenterLow, c.Difficulty.CenterHigh = c.Difficulty.CenterHigh, c.Difficulty.CenterLow
	}
	if c.Difficulty.CenterCap < c.Difficulty.CenterHigh {
		c.Difficulty.CenterCap = c.Difficulty.CenterHigh
	}
	if c.Difficulty.CenterCap < -c.Difficulty.CenterLow {
		c.Difficulty.CenterCap = -c.Difficulty.CenterLow
	}

	if c.World.ScreenW <= 0 {
		c.World = def.World
	}
	if c.Player.Mass <= 0 {
		c.Player.Mass = def.Player.Mass
	}
	if c.Player.HalfSize <= 0 {
		c.Player.HalfSize = def.Player.HalfSize
	}
	if c.Obstacles.Width <= 0 {
		c.Obstacles = def.Obstacles
	}
}

// ApplyFlyerPreset modifies the config based on a difficulty preset.
// Presets shift where the curve starts; the floors and caps stay fixed so
// no preset can produce degenerate generation parameters.
func ApplyFlyerPreset(cfg *FlyerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Spacing.Default += 100
		cfg.Difficulty.GateHalfHeight.Default += 25
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Spacing.Default = cfg.Difficulty.Spacing.Floor + 50
		cfg.Difficulty.GateHalfHeight.Default = cfg.Difficulty.GateHalfHeight.Floor + 10
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	}
	cfg.sanitize()
}
