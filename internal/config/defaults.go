package config

import (
	_ "embed"
)

//go:embed defaults/flyer.yaml
var defaultFlyerYAML []byte

// DefaultFlyerConfig returns the default Ring Flyer configuration.
// Kept in sync with defaults/flyer.yaml as a fallback if the embedded
// file fails to parse.
func DefaultFlyerConfig() FlyerConfig {
	return FlyerConfig{
		Physics: FlyerPhysics{
			Gravity:      -441.45,
			JumpImpulse:  320.0,
			ForwardForce: 40.0,
			InitialSpeed: 0.0,
			Restitution:  2.0,
			LethalForce:  1.0,
		},
		World: FlyerWorld{
			ScreenW:         1280.0,
			ScreenH:         720.0,
			LookaheadMargin: 50.0,
			BoundsMargin:    50.0,
			BoundsThickness: 10.0,
		},
		Player: FlyerPlayer{
			HalfSize: 25.0,
			Mass:     1.0,
		},
		Obstacles: FlyerObstacles{
			Width:       82.0,
			WallHeight:  15.0,
			SensorWidth: 10.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			Spacing:        ParamFloor{Default: 650.0, Floor: 500.0},
			GateHalfHeight: ParamFloor{Default: 125.0, Floor: 100.0},
			CenterLow:      -100.0,
			CenterHigh:     100.0,
			CenterCap:      200.0,
		},
	}
}
