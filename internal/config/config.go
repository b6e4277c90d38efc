// Package config provides YAML-based game configuration loading and
// difficulty presets for the flyer platform.
package config

// FlyerConfig contains all tunables for the Ring Flyer game.
// Positions and sizes are in world units; the renderer projects them onto
// terminal cells.
type FlyerConfig struct {
	Physics    FlyerPhysics     `yaml:"physics"`
	World      FlyerWorld       `yaml:"world"`
	Player     FlyerPlayer      `yaml:"player"`
	Obstacles  FlyerObstacles   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlyerPhysics defines the simulation parameters.
type FlyerPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration (negative = down)
	JumpImpulse  float64 `yaml:"jump_impulse"`  // Upward impulse per flap
	ForwardForce float64 `yaml:"forward_force"` // Continuous forward thrust
	InitialSpeed float64 `yaml:"initial_speed"` // Horizontal velocity at session start
	Restitution  float64 `yaml:"restitution"`   // Flyer bounce factor
	LethalForce  float64 `yaml:"lethal_force"`  // Contact force at or above which the flyer dies
}

// FlyerWorld defines the play-field geometry.
type FlyerWorld struct {
	ScreenW         float64 `yaml:"screen_w"`         // Visible width in world units
	ScreenH         float64 `yaml:"screen_h"`         // Visible height in world units
	LookaheadMargin float64 `yaml:"lookahead_margin"` // Spawn/reclaim margin past the screen edge
	BoundsMargin    float64 `yaml:"bounds_margin"`    // Vertical overshoot that ends the session
	BoundsThickness float64 `yaml:"bounds_thickness"` // Half-thickness of the bound colliders
}

// FlyerPlayer defines the flyer body.
type FlyerPlayer struct {
	HalfSize float64 `yaml:"half_size"` // Collider half extent
	Mass     float64 `yaml:"mass"`
}

// FlyerObstacles defines the gate geometry shared by every obstacle.
type FlyerObstacles struct {
	Width       float64 `yaml:"width"`        // Visual/ring width
	WallHeight  float64 `yaml:"wall_height"`  // Wall collider half-height
	SensorWidth float64 `yaml:"sensor_width"` // Scoring sensor half-width
}

// DifficultyConfig defines the score-driven generation curve: the default
// parameter values at score zero and the floors/caps they clamp to as the
// score grows. Floors and caps are hard limits; the curve never crosses
// them regardless of score.
type DifficultyConfig struct {
	Enabled        bool       `yaml:"enabled"`          // false pins generation at the defaults
	Spacing        ParamFloor `yaml:"spacing"`          // Minimum x between consecutive gates
	GateHalfHeight ParamFloor `yaml:"gate_half_height"` // Gate open half-height
	CenterLow      float64    `yaml:"center_low"`       // Gate center range at score zero
	CenterHigh     float64    `yaml:"center_high"`
	CenterCap      float64    `yaml:"center_cap"` // Widest the range may grow (+/-)
}

// ParamFloor is a generation parameter that shrinks with score down to a
// floor.
type ParamFloor struct {
	Default float64 `yaml:"default"`
	Floor   float64 `yaml:"floor"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
