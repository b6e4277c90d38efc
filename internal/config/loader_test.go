package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFlyerEmbeddedDefault(t *testing.T) {
	cfg, err := LoadFlyer("")
	if err != nil {
		t.Fatalf("LoadFlyer(\"\") failed: %v", err)
	}

	if cfg.Difficulty.Spacing.Default != 650.0 {
		t.Errorf("default spacing = %f, expected 650", cfg.Difficulty.Spacing.Default)
	}
	if cfg.Difficulty.Spacing.Floor != 500.0 {
		t.Errorf("spacing floor = %f, expected 500", cfg.Difficulty.Spacing.Floor)
	}
	if cfg.Difficulty.GateHalfHeight.Floor != 100.0 {
		t.Errorf("gate half-height floor = %f, expected 100", cfg.Difficulty.GateHalfHeight.Floor)
	}
	if cfg.World.ScreenW != 1280.0 || cfg.World.ScreenH != 720.0 {
		t.Errorf("screen = %fx%f, expected 1280x720", cfg.World.ScreenW, cfg.World.ScreenH)
	}
}

func TestLoadFlyerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("difficulty:\n  enabled: true\n  spacing:\n    default: 800\n    floor: 600\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlyer(path)
	if err != nil {
		t.Fatalf("LoadFlyer(custom) failed: %v", err)
	}
	if cfg.Difficulty.Spacing.Default != 800 {
		t.Errorf("spacing default = %f, expected 800", cfg.Difficulty.Spacing.Default)
	}
	if cfg.Difficulty.Spacing.Floor != 600 {
		t.Errorf("spacing floor = %f, expected 600", cfg.Difficulty.Spacing.Floor)
	}
}

func TestLoadFlyerMissingCustomPath(t *testing.T) {
	if _, err := LoadFlyer("/nonexistent/flyer.yaml"); err == nil {
		t.Error("missing custom config should return an error")
	}
}

func TestSanitizeRepairsDegenerateValues(t *testing.T) {
	cfg := FlyerConfig{
		Difficulty: DifficultyConfig{
			Spacing:        ParamFloor{Default: 650, Floor: 900}, // floor above default
			GateHalfHeight: ParamFloor{Default: 125, Floor: -5},
			CenterLow:      100,
			CenterHigh:     -100, // inverted range
			CenterCap:      10,   // cap tighter than range
		},
	}

	cfg.sanitize()

	if cfg.Difficulty.Spacing.Floor > cfg.Difficulty.Spacing.Default {
		t.Error("spacing floor should never exceed its default")
	}
	if cfg.Difficulty.GateHalfHeight.Floor <= 0 {
		t.Error("gate half-height floor should be positive")
	}
	if cfg.Difficulty.CenterLow > cfg.Difficulty.CenterHigh {
		t.Error("center range should not be inverted")
	}
	if cfg.Difficulty.CenterCap < cfg.Difficulty.CenterHigh || cfg.Difficulty.CenterCap < -cfg.Difficulty.CenterLow {
		t.Error("center cap should contain the starting range")
	}
}

func TestApplyFlyerPreset(t *testing.T) {
	tests := []struct {
		name   string
		preset DifficultyPreset
		check  func(t *testing.T, cfg FlyerConfig)
	}{
		{
			name:   "fixed disables progression",
			preset: DifficultyFixed,
			check: func(t *testing.T, cfg FlyerConfig) {
				if cfg.Difficulty.Enabled {
					t.Error("fixed preset should disable difficulty progression")
				}
			},
		},
		{
			name:   "easy widens gates",
			preset: DifficultyEasy,
			check: func(t *testing.T, cfg FlyerConfig) {
				def := DefaultFlyerConfig()
				if cfg.Difficulty.GateHalfHeight.Default <= def.Difficulty.GateHalfHeight.Default {
					t.Error("easy preset should widen the starting gate")
				}
			},
		},
		{
			name:   "hard starts near the floors",
			preset: DifficultyHard,
			check: func(t *testing.T, cfg FlyerConfig) {
				if cfg.Difficulty.Spacing.Default < cfg.Difficulty.Spacing.Floor {
					t.Error("hard preset must not start below the spacing floor")
				}
				def := DefaultFlyerConfig()
				if cfg.Difficulty.Spacing.Default >= def.Difficulty.Spacing.Default {
					t.Error("hard preset should tighten starting spacing")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlyerConfig()
			ApplyFlyerPreset(&cfg, tc.preset)
			tc.check(t, cfg)
		})
	}
}
