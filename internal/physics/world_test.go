package physics

import (
	"math"
	"testing"
)

const dt = 1.0 / 60.0

func TestBodyLifecycle(t *testing.T) {
	w := NewWorld(Vec2{})

	id := w.CreateBody(BodyDef{Type: Dynamic, Pos: Vec2{X: 1, Y: 2}, HalfExtents: Vec2{X: 1, Y: 1}})
	if !w.Valid(id) {
		t.Fatal("freshly created body should be valid")
	}
	if got := w.Position(id); got != (Vec2{X: 1, Y: 2}) {
		t.Errorf("Position() = %+v, expected {1 2}", got)
	}

	w.DestroyBody(id)
	if w.Valid(id) {
		t.Error("destroyed body should be invalid")
	}
	if got := w.Position(id); got != (Vec2{}) {
		t.Errorf("stale handle Position() = %+v, expected zero", got)
	}

	// Recycling the slot must not resurrect the old handle.
	id2 := w.CreateBody(BodyDef{Type: Static, HalfExtents: Vec2{X: 1, Y: 1}})
	if w.Valid(id) {
		t.Error("stale handle must stay invalid after slot reuse")
	}
	if !w.Valid(id2) {
		t.Error("new handle should be valid")
	}
}

func TestGravityIntegration(t *testing.T) {
	w := NewWorld(Vec2{Y: -100})
	id := w.CreateBody(BodyDef{Type: Dynamic, HalfExtents: Vec2{X: 1, Y: 1}})

	w.Step(dt)

	vel := w.Velocity(id)
	if vel.Y >= 0 {
		t.Errorf("gravity should pull velocity down, got %f", vel.Y)
	}
	pos := w.Position(id)
	if pos.Y >= 0 {
		t.Errorf("body should have fallen, got y=%f", pos.Y)
	}
}

func TestStaticBodiesDoNotMove(t *testing.T) {
	w := NewWorld(Vec2{Y: -100})
	id := w.CreateBody(BodyDef{Type: Static, Pos: Vec2{Y: 5}, HalfExtents: Vec2{X: 1, Y: 1}})

	for i := 0; i < 10; i++ {
		w.Step(dt)
	}

	if got := w.Position(id); got != (Vec2{Y: 5}) {
		t.Errorf("static body moved to %+v", got)
	}
}

func TestApplyImpulse(t *testing.T) {
	w := NewWorld(Vec2{})
	id := w.CreateBody(BodyDef{Type: Dynamic, Mass: 2, HalfExtents: Vec2{X: 1, Y: 1}})

	w.ApplyImpulse(id, Vec2{Y: 10})

	if got := w.Velocity(id).Y; got != 5 {
		t.Errorf("impulse 10 on mass 2 should give velocity 5, got %f", got)
	}
}

func TestContinuousForce(t *testing.T) {
	w := NewWorld(Vec2{})
	id := w.CreateBody(BodyDef{Type: Dynamic, HalfExtents: Vec2{X: 1, Y: 1}, Force: Vec2{X: 60}})

	w.Step(dt)
	v1 := w.Velocity(id).X
	w.Step(dt)
	v2 := w.Velocity(id).X

	if v1 <= 0 || v2 <= v1 {
		t.Errorf("continuous force should keep accelerating: v1=%f v2=%f", v1, v2)
	}
}

func TestSensorBeginEndEvents(t *testing.T) {
	w := NewWorld(Vec2{})
	// Body moving right at 60 u/s crosses a thin sensor at x=2.
	mover := w.CreateBody(BodyDef{Type: Dynamic, Vel: Vec2{X: 60}, HalfExtents: Vec2{X: 0.5, Y: 0.5}})
	sensor := w.CreateBody(BodyDef{Type: Static, Pos: Vec2{X: 2}, HalfExtents: Vec2{X: 0.5, Y: 5}, Sensor: true})

	begins, ends := 0, 0
	for i := 0; i < 60; i++ {
		collisions, _ := w.Step(dt)
		for _, ev := range collisions {
			switch ev.Kind {
			case OverlapBegin:
				begins++
				if (ev.A != mover && ev.B != mover) || (ev.A != sensor && ev.B != sensor) {
					t.Errorf("event should name both participants, got %+v", ev)
				}
			case OverlapEnd:
				ends++
			}
		}
	}

	if begins != 1 {
		t.Errorf("expected exactly 1 begin event for one crossing, got %d", begins)
	}
	if ends != 1 {
		t.Errorf("expected exactly 1 end event for one crossing, got %d", ends)
	}
}

func TestSensorDoesNotBlockMotion(t *testing.T) {
	w := NewWorld(Vec2{})
	mover := w.CreateBody(BodyDef{Type: Dynamic, Vel: Vec2{X: 60}, HalfExtents: Vec2{X: 0.5, Y: 0.5}})
	w.CreateBody(BodyDef{Type: Static, Pos: Vec2{X: 2}, HalfExtents: Vec2{X: 0.5, Y: 5}, Sensor: true})

	for i := 0; i < 60; i++ {
		w.Step(dt)
	}

	if got := w.Position(mover).X; got < 50 {
		t.Errorf("sensor should not slow the mover, reached only x=%f", got)
	}
	if got := w.Velocity(mover).X; got != 60 {
		t.Errorf("velocity should be unchanged by sensor, got %f", got)
	}
}

func TestSolidContactEmitsForceEvent(t *testing.T) {
	w := NewWorld(Vec2{Y: -500})
	faller := w.CreateBody(BodyDef{
		Type:              Dynamic,
		Pos:               Vec2{Y: 5},
		HalfExtents:       Vec2{X: 1, Y: 1},
		EmitContactForces: true,
	})
	floor := w.CreateBody(BodyDef{Type: Static, Pos: Vec2{Y: -5}, HalfExtents: Vec2{X: 100, Y: 1}})

	var got *ContactForceEvent
	for i := 0; i < 120 && got == nil; i++ {
		_, contacts := w.Step(dt)
		if len(contacts) > 0 {
			ev := contacts[0]
			got = &ev
		}
	}

	if got == nil {
		t.Fatal("falling onto a floor should produce a contact-force event")
	}
	if got.Force <= 0 {
		t.Errorf("contact force should be positive, got %f", got.Force)
	}
	if (got.A != faller && got.B != faller) || (got.A != floor && got.B != floor) {
		t.Errorf("event should name both participants, got %+v", got)
	}
	// Resolution must have pushed the body back above the floor.
	if pos := w.Position(faller); pos.Y < -4 {
		t.Errorf("body should rest on the floor, got y=%f", pos.Y)
	}
}

func TestRestitutionBounces(t *testing.T) {
	w := NewWorld(Vec2{})
	ball := w.CreateBody(BodyDef{
		Type:        Dynamic,
		Pos:         Vec2{Y: 3},
		Vel:         Vec2{Y: -60},
		HalfExtents: Vec2{X: 1, Y: 1},
		Restitution: 1.0,
	})
	w.CreateBody(BodyDef{Type: Static, Pos: Vec2{Y: -2}, HalfExtents: Vec2{X: 100, Y: 1}})

	for i := 0; i < 10; i++ {
		w.Step(dt)
	}

	if got := w.Velocity(ball).Y; got <= 0 {
		t.Errorf("full restitution should reflect velocity upward, got %f", got)
	}
}

func TestGroupStrippingDisablesInteraction(t *testing.T) {
	w := NewWorld(Vec2{})
	mover := w.CreateBody(BodyDef{Type: Dynamic, Vel: Vec2{X: 60}, HalfExtents: Vec2{X: 0.5, Y: 0.5}})
	w.CreateBody(BodyDef{Type: Static, Pos: Vec2{X: 2}, HalfExtents: Vec2{X: 0.5, Y: 5}, Sensor: true})
	w.CreateBody(BodyDef{Type: Static, Pos: Vec2{X: 5}, HalfExtents: Vec2{X: 0.5, Y: 5}})

	w.SetGroups(mover, CollisionGroups{Memberships: GroupNone, Filters: GroupNone})

	for i := 0; i < 60; i++ {
		collisions, contacts := w.Step(dt)
		if len(collisions) != 0 || len(contacts) != 0 {
			t.Fatal("a body with no collision groups should produce no events")
		}
	}

	// It should also pass straight through the solid wall.
	if got := w.Position(mover).X; got < 10 {
		t.Errorf("stripped body should pass through the wall, reached x=%f", got)
	}
}

func TestTimeScaleZeroFreezes(t *testing.T) {
	w := NewWorld(Vec2{Y: -100})
	id := w.CreateBody(BodyDef{Type: Dynamic, Pos: Vec2{Y: 10}, HalfExtents: Vec2{X: 1, Y: 1}})

	w.SetTimeScale(0)
	for i := 0; i < 10; i++ {
		collisions, contacts := w.Step(dt)
		if len(collisions) != 0 || len(contacts) != 0 {
			t.Fatal("frozen world should emit no events")
		}
	}

	if got := w.Position(id); got != (Vec2{Y: 10}) {
		t.Errorf("frozen body moved to %+v", got)
	}

	w.SetTimeScale(1)
	w.Step(dt)
	if w.Position(id).Y >= 10 {
		t.Error("unfreezing should resume integration")
	}
}

func TestDestroyDuringOverlapDropsPair(t *testing.T) {
	w := NewWorld(Vec2{})
	w.CreateBody(BodyDef{Type: Dynamic, Pos: Vec2{X: 2}, HalfExtents: Vec2{X: 0.5, Y: 0.5}})
	sensor := w.CreateBody(BodyDef{Type: Static, Pos: Vec2{X: 2}, HalfExtents: Vec2{X: 0.5, Y: 5}, Sensor: true})

	collisions, _ := w.Step(dt)
	if len(collisions) != 1 || collisions[0].Kind != OverlapBegin {
		t.Fatalf("expected a single begin event, got %+v", collisions)
	}

	w.DestroyBody(sensor)

	// No end event is synthesized for destroyed bodies, and the pair must
	// not linger in the overlap set.
	collisions, _ = w.Step(dt)
	if len(collisions) != 0 {
		t.Errorf("expected no events after sensor destruction, got %+v", collisions)
	}
}

func TestStepDeterminism(t *testing.T) {
	run := func() Vec2 {
		w := NewWorld(Vec2{Y: -441.45})
		id := w.CreateBody(BodyDef{Type: Dynamic, HalfExtents: Vec2{X: 25, Y: 25}, Force: Vec2{X: 40}})
		for i := 0; i < 300; i++ {
			if i%30 == 0 {
				w.SetVelocity(id, Vec2{X: w.Velocity(id).X})
				w.ApplyImpulse(id, Vec2{Y: 320})
			}
			w.Step(dt)
		}
		return w.Position(id)
	}

	p1, p2 := run(), run()
	if math.Abs(p1.X-p2.X) > 1e-12 || math.Abs(p1.Y-p2.Y) > 1e-12 {
		t.Errorf("identical runs diverged: %+v vs %+v", p1, p2)
	}
}
