package flyer

// SessionState is the run lifecycle. A session is either in play or over;
// an ended session is torn down and a fresh one started on the next tick,
// so Ended is observable for exactly one tick.
type SessionState int

const (
	// Running means a live session: physics steps, input is honored,
	// obstacles spawn.
	Running SessionState = iota
	// Ended means the run is over and will restart on the next tick.
	Ended
)

func (s SessionState) String() string {
	switch s {
	case Running:
		return "running"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// ScoreTracker accumulates the run score. The score never decreases
// within a session.
type ScoreTracker struct {
	score int
}

// Add increases the score by n points. Negative deltas are ignored.
func (t *ScoreTracker) Add(n int) {
	if n > 0 {
		t.score += n
	}
}

// Score returns the current run score.
func (t *ScoreTracker) Score() int {
	return t.score
}
