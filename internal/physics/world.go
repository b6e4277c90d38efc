package physics

import "math"

// World owns all bodies and advances the simulation. Bodies live in a slot
// arena addressed by generational BodyIDs, so destroyed handles can never
// alias a recycled slot.
type World struct {
	gravity   Vec2
	timeScale float64
	slots     []slot
	free      []uint32
	overlaps  map[pairKey][2]BodyID
}

type slot struct {
	b    body
	gen  uint32
	live bool
}

// NewWorld creates an empty world with the given gravity.
func NewWorld(gravity Vec2) *World {
	return &World{
		gravity:   gravity,
		timeScale: 1.0,
		overlaps:  make(map[pairKey][2]BodyID),
	}
}

// CreateBody adds a body to the world and returns its handle.
func (w *World) CreateBody(def BodyDef) BodyID {
	if def.Mass <= 0 {
		def.Mass = 1.0
	}
	if def.Groups == (CollisionGroups{}) {
		def.Groups = CollisionGroups{Memberships: GroupAll, Filters: GroupAll}
	}

	b := body{def: def, pos: def.Pos, vel: def.Vel, mass: def.Mass}

	var index uint32
	if n := len(w.free); n > 0 {
		index = w.free[n-1]
		w.free = w.free[:n-1]
		w.slots[index].b = b
		w.slots[index].live = true
	} else {
		index = uint32(len(w.slots))
		w.slots = append(w.slots, slot{b: b, gen: 1, live: true})
	}

	return BodyID{index: index, gen: w.slots[index].gen}
}

// DestroyBody removes a body. Overlaps involving the body are dropped
// without emitting end events; the handle becomes permanently invalid.
// Destroying an already-invalid handle is a no-op.
func (w *World) DestroyBody(id BodyID) {
	if w.lookup(id) == nil {
		return
	}
	s := &w.slots[id.index]
	s.live = false
	s.gen++
	w.free = append(w.free, id.index)

	for key, ids := range w.overlaps {
		if ids[0] == id || ids[1] == id {
			delete(w.overlaps, key)
		}
	}
}

// Valid reports whether the handle still refers to a live body.
func (w *World) Valid(id BodyID) bool {
	return w.lookup(id) != nil
}

// Count returns the number of live bodies.
func (w *World) Count() int {
	n := 0
	for i := range w.slots {
		if w.slots[i].live {
			n++
		}
	}
	return n
}

// Position returns a body's center position, or the zero vector for a
// stale handle.
func (w *World) Position(id BodyID) Vec2 {
	if b := w.lookup(id); b != nil {
		return b.pos
	}
	return Vec2{}
}

// Velocity returns a body's linear velocity, or the zero vector for a
// stale handle.
func (w *World) Velocity(id BodyID) Vec2 {
	if b := w.lookup(id); b != nil {
		return b.vel
	}
	return Vec2{}
}

// SetPosition teleports a body. Used for geometry that tracks a reference
// point, like the play-field bounds following the flyer.
func (w *World) SetPosition(id BodyID, pos Vec2) {
	if b := w.lookup(id); b != nil {
		b.pos = pos
	}
}

// SetVelocity replaces a body's linear velocity.
func (w *World) SetVelocity(id BodyID, vel Vec2) {
	if b := w.lookup(id); b != nil {
		b.vel = vel
	}
}

// ApplyImpulse applies an instantaneous impulse to a dynamic body.
func (w *World) ApplyImpulse(id BodyID, impulse Vec2) {
	if b := w.lookup(id); b != nil && b.def.Type == Dynamic {
		b.vel = b.vel.Add(impulse.Scale(1.0 / b.mass))
	}
}

// SetForce replaces the continuous force applied to a body every step.
func (w *World) SetForce(id BodyID, force Vec2) {
	if b := w.lookup(id); b != nil {
		b.def.Force = force
	}
}

// SetGroups replaces a body's collision groups.
func (w *World) SetGroups(id BodyID, groups CollisionGroups) {
	if b := w.lookup(id); b != nil {
		b.def.Groups = groups
	}
}

// SetTimeScale sets the global time-scale. Zero freezes the simulation:
// Step integrates nothing and emits no events.
func (w *World) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	w.timeScale = scale
}

// TimeScale returns the current global time-scale.
func (w *World) TimeScale() float64 {
	return w.timeScale
}

func (w *World) lookup(id BodyID) *body {
	if id.IsZero() || int(id.index) >= len(w.slots) {
		return nil
	}
	s := &w.slots[id.index]
	if !s.live || s.gen != id.gen {
		return nil
	}
	return &s.b
}

// Step advances the simulation by dt seconds (scaled by the time-scale)
// and returns this tick's sensor-overlap and contact-force events. The
// returned slices are freshly allocated; callers own them.
func (w *World) Step(dt float64) ([]CollisionEvent, []ContactForceEvent) {
	scaled := dt * w.timeScale
	if scaled <= 0 {
		return nil, nil
	}

	// Integration phase: gravity, continuous forces, velocity.
	for i := range w.slots {
		s := &w.slots[i]
		if !s.live || s.b.def.Type != Dynamic {
			continue
		}
		accel := w.gravity.Add(s.b.def.Force.Scale(1.0 / s.b.mass))
		s.b.vel = s.b.vel.Add(accel.Scale(scaled))
		s.b.pos = s.b.pos.Add(s.b.vel.Scale(scaled))
	}

	var collisions []CollisionEvent
	var contacts []ContactForceEvent
	newOverlaps := make(map[pairKey][2]BodyID, len(w.overlaps))

	// Narrow phase: every live pair with at least one non-static body and
	// compatible groups. Body counts stay small (flyer, bounds, a handful
	// of gates), so the quadratic scan is fine.
	for i := range w.slots {
		si := &w.slots[i]
		if !si.live {
			continue
		}
		for j := i + 1; j < len(w.slots); j++ {
			sj := &w.slots[j]
			if !sj.live {
				continue
			}
			if si.b.def.Type == Static && sj.b.def.Type == Static {
				continue
			}
			if !si.b.def.Groups.InteractsWith(sj.b.def.Groups) {
				continue
			}
			if !aabbOverlap(&si.b, &sj.b) {
				continue
			}

			idA := BodyID{index: uint32(i), gen: si.gen}
			idB := BodyID{index: uint32(j), gen: sj.gen}

			if si.b.def.Sensor || sj.b.def.Sensor {
				key := makePair(idA, idB)
				newOverlaps[key] = [2]BodyID{idA, idB}
				if _, seen := w.overlaps[key]; !seen {
					collisions = append(collisions, CollisionEvent{Kind: OverlapBegin, A: idA, B: idB})
				}
				continue
			}

			if force, hit := w.resolveSolid(&si.b, &sj.b); hit {
				if si.b.def.EmitContactForces || sj.b.def.EmitContactForces {
					contacts = append(contacts, ContactForceEvent{A: idA, B: idB, Force: force / dt})
				}
			}
		}
	}

	// Overlaps present last tick but not this one have ended.
	for key, ids := range w.overlaps {
		if _, still := newOverlaps[key]; !still {
			collisions = append(collisions, CollisionEvent{Kind: OverlapEnd, A: ids[0], B: ids[1]})
		}
	}
	w.overlaps = newOverlaps

	return collisions, contacts
}

func aabbOverlap(a, b *body) bool {
	return math.Abs(a.pos.X-b.pos.X) < a.def.HalfExtents.X+b.def.HalfExtents.X &&
		math.Abs(a.pos.Y-b.pos.Y) < a.def.HalfExtents.Y+b.def.HalfExtents.Y
}

// resolveSolid separates a dynamic body from solid geometry along the axis
// of least penetration and reflects its velocity with restitution. Returns
// the impulse magnitude applied to the dynamic body.
func (w *World) resolveSolid(a, b *body) (impulse float64, hit bool) {
	dyn, other := a, b
	if dyn.def.Type != Dynamic {
		dyn, other = b, a
	}

	dx := dyn.pos.X - other.pos.X
	dy := dyn.pos.Y - other.pos.Y
	px := dyn.def.HalfExtents.X + other.def.HalfExtents.X - math.Abs(dx)
	py := dyn.def.HalfExtents.Y + other.def.HalfExtents.Y - math.Abs(dy)
	if px <= 0 || py <= 0 {
		return 0, false
	}

	restitution := math.Max(dyn.def.Restitution, other.def.Restitution)

	if px < py {
		dyn.pos.X += math.Copysign(px, dx)
		if math.Signbit(dyn.vel.X) != math.Signbit(dx) && dyn.vel.X != 0 {
			before := dyn.vel.X
			dyn.vel.X = -before * restitution
			impulse = math.Abs(before-dyn.vel.X) * dyn.mass
		}
	} else {
		dyn.pos.Y += math.Copysign(py, dy)
		if math.Signbit(dyn.vel.Y) != math.Signbit(dy) && dyn.vel.Y != 0 {
			before := dyn.vel.Y
			dyn.vel.Y = -before * restitution
			impulse = math.Abs(before-dyn.vel.Y) * dyn.mass
		}
	}

	return impulse, impulse > 0
}
