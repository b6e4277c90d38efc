package flyer

import (
	"testing"

	"github.com/vovakirdan/tui-flyer/internal/physics"
)

func TestInterpretScoreAndDeathSameTick(t *testing.T) {
	w := physics.NewWorld(physics.Vec2{})
	flyer := w.CreateBody(physics.BodyDef{Type: physics.Dynamic})
	sensor := w.CreateBody(physics.BodyDef{Type: physics.Static, Sensor: true})
	wall := w.CreateBody(physics.BodyDef{Type: physics.Static})
	isSensor := func(id physics.BodyID) bool { return id == sensor }

	begin := physics.CollisionEvent{Kind: physics.OverlapBegin, A: flyer, B: sensor}
	hit := physics.ContactForceEvent{A: flyer, B: wall, Force: 10}

	in := newInterpreter(1.0)

	forward := in.Interpret([]physics.CollisionEvent{begin}, []physics.ContactForceEvent{hit}, isSensor, flyer)
	if forward.ScoreDelta != 1 || !forward.Lethal {
		t.Errorf("forward order: got %+v, want ScoreDelta=1 Lethal=true", forward)
	}

	// Swapping event pair order within the tick must not change the outcome.
	swapped := in.Interpret(
		[]physics.CollisionEvent{{Kind: physics.OverlapBegin, A: sensor, B: flyer}},
		[]physics.ContactForceEvent{{A: wall, B: flyer, Force: 10}},
		isSensor, flyer,
	)
	if swapped != forward {
		t.Errorf("outcome depends on participant order: %+v vs %+v", swapped, forward)
	}
}

func TestInterpretOverlapEndDoesNotScore(t *testing.T) {
	w := physics.NewWorld(physics.Vec2{})
	flyer := w.CreateBody(physics.BodyDef{Type: physics.Dynamic})
	sensor := w.CreateBody(physics.BodyDef{Type: physics.Static, Sensor: true})
	isSensor := func(id physics.BodyID) bool { return id == sensor }

	out := newInterpreter(1.0).Interpret(
		[]physics.CollisionEvent{{Kind: physics.OverlapEnd, A: flyer, B: sensor}},
		nil, isSensor, flyer,
	)
	if out.ScoreDelta != 0 {
		t.Errorf("overlap end scored: %+v", out)
	}
}

func TestInterpretSubLethalForceIgnored(t *testing.T) {
	w := physics.NewWorld(physics.Vec2{})
	flyer := w.CreateBody(physics.BodyDef{Type: physics.Dynamic})
	wall := w.CreateBody(physics.BodyDef{Type: physics.Static})

	out := newInterpreter(100.0).Interpret(nil,
		[]physics.ContactForceEvent{{A: flyer, B: wall, Force: 99.9}},
		func(physics.BodyID) bool { return false }, flyer,
	)
	if out.Lethal {
		t.Error("sub-threshold contact was lethal")
	}
}

func TestInterpretContactWithoutFlyerIgnored(t *testing.T) {
	w := physics.NewWorld(physics.Vec2{})
	flyer := w.CreateBody(physics.BodyDef{Type: physics.Dynamic})
	a := w.CreateBody(physics.BodyDef{Type: physics.Dynamic})
	b := w.CreateBody(physics.BodyDef{Type: physics.Static})

	out := newInterpreter(1.0).Interpret(nil,
		[]physics.ContactForceEvent{{A: a, B: b, Force: 10}},
		func(physics.BodyID) bool { return false }, flyer,
	)
	if out.Lethal {
		t.Error("contact between other bodies killed the flyer")
	}
}
