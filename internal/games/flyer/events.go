package flyer

import "github.com/vovakirdan/tui-flyer/internal/physics"

// Interpreter turns a tick's raw physics events into gameplay outcomes.
// It is stateless: the same events always produce the same outcome
// regardless of ordering within the tick.
type Interpreter struct {
	lethalForce float64
}

// TickOutcome is the aggregate gameplay effect of one tick's events.
// Score and death can both occur in the same tick.
type TickOutcome struct {
	ScoreDelta int
	Lethal     bool
}

func newInterpreter(lethalForce float64) Interpreter {
	return Interpreter{lethalForce: lethalForce}
}

// Interpret folds the tick's events into an outcome. Each overlap begin
// involving a scoring sensor counts one point; overlap ends never score,
// so a gate crossed exactly once yields exactly one point. Any contact
// force at or above the lethal threshold involving the flyer is fatal.
func (in Interpreter) Interpret(
	collisions []physics.CollisionEvent,
	contacts []physics.ContactForceEvent,
	isSensor func(physics.BodyID) bool,
	flyer physics.BodyID,
) TickOutcome {
	var out TickOutcome

	for _, ev := range collisions {
		if ev.Kind != physics.OverlapBegin {
			continue
		}
		if isSensor(ev.A) || isSensor(ev.B) {
			out.ScoreDelta++
		}
	}

	for _, ev := range contacts {
		if ev.A != flyer && ev.B != flyer {
			continue
		}
		if ev.Force >= in.lethalForce {
			out.Lethal = true
		}
	}

	return out
}
