package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the game status exposed to the platform for display.
type GameState struct {
	Score  int  // Current session score
	Alive  bool // Whether the flyer is still responding to input
	Paused bool // Whether the simulation is frozen
}

// StepResult is returned by Game.Step() after each simulation tick.
//
// Because a session restarts itself on the tick after it ends, there is no
// sticky game-over state for the platform to observe. RunEnded is set on
// exactly the tick a session ended, with FinalScore carrying the score of
// that run so it can be persisted.
type StepResult struct {
	State      GameState
	RunEnded   bool
	FinalScore int
}
