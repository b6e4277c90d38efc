package flyer

import (
	"math"

	"github.com/vovakirdan/tui-flyer/internal/config"
)

// Params are the generation parameters in effect for new obstacles.
// They are recomputed from the score and frozen into each obstacle at
// spawn time.
type Params struct {
	MinXBetween float64 // Minimum horizontal distance between gates
	YMidLow     float64 // Gate center range, inclusive
	YMidHigh    float64
	YMidOffset  float64 // Gate open half-height
}

// Curve maps the cumulative score to generation parameters. Higher scores
// bring gates closer together and make them narrower while the vertical
// band the center may appear in widens. Every parameter clamps to its
// floor or cap, so the curve can never produce inverted or zero-width
// values no matter how large the score gets.
type Curve struct {
	cfg config.DifficultyConfig
}

// NewCurve creates a curve from the difficulty configuration.
func NewCurve(cfg config.DifficultyConfig) Curve {
	return Curve{cfg: cfg}
}

// Params returns the generation parameters for the given score.
// Pure and idempotent: the same score always yields identical parameters.
func (c Curve) Params(score int) Params {
	s := float64(score)
	if s < 0 || !c.cfg.Enabled {
		s = 0
	}

	return Params{
		MinXBetween: math.Max(c.cfg.Spacing.Floor, c.cfg.Spacing.Default-s),
		YMidOffset:  math.Max(c.cfg.GateHalfHeight.Floor, c.cfg.GateHalfHeight.Default-s),
		YMidLow:     math.Max(-c.cfg.CenterCap, c.cfg.CenterLow-s),
		YMidHigh:    math.Min(c.cfg.CenterCap, c.cfg.CenterHigh+s),
	}
}
