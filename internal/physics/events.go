package physics

// EventKind classifies sensor-overlap events.
type EventKind int

const (
	// OverlapBegin is emitted once on the tick two shapes start overlapping.
	OverlapBegin EventKind = iota
	// OverlapEnd is emitted once on the tick two shapes stop overlapping.
	OverlapEnd
)

// CollisionEvent reports a sensor overlap transition between two bodies.
// Events are only produced for pairs where at least one body is a sensor.
type CollisionEvent struct {
	Kind EventKind
	A, B BodyID
}

// ContactForceEvent reports a solid impact. Force approximates the impulse
// magnitude applied during contact resolution divided by the step duration.
// Only pairs where at least one body has EmitContactForces set produce
// these events.
type ContactForceEvent struct {
	A, B  BodyID
	Force float64
}

// pairKey identifies an unordered body pair.
type pairKey struct {
	lo, hi uint64
}

func makePair(a, b BodyID) pairKey {
	pa, pb := a.pack(), b.pack()
	if pa > pb {
		pa, pb = pb, pa
	}
	return pairKey{lo: pa, hi: pb}
}
