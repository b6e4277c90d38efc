package physics

// BodyType distinguishes integrated bodies from fixed geometry.
type BodyType int

const (
	// Static bodies never move on their own; walls, bounds, sensors.
	Static BodyType = iota
	// Dynamic bodies are integrated under gravity, forces and impulses.
	Dynamic
)

// Group is a collision-group bitmask.
type Group uint32

const (
	GroupNone Group = 0
	GroupAll  Group = 0xffffffff
)

// CollisionGroups controls which body pairs interact. Two bodies interact
// when each one's memberships intersect the other's filters. Setting both
// fields to GroupNone removes a body from collision entirely while leaving
// it in the world.
type CollisionGroups struct {
	Memberships Group
	Filters     Group
}

// InteractsWith reports whether bodies carrying these two group sets may
// collide or overlap.
func (g CollisionGroups) InteractsWith(o CollisionGroups) bool {
	return g.Memberships&o.Filters != 0 && o.Memberships&g.Filters != 0
}

// BodyDef describes a body to create.
type BodyDef struct {
	Type        BodyType
	Pos         Vec2 // Center position
	Vel         Vec2 // Initial linear velocity (dynamic only)
	HalfExtents Vec2 // AABB collider half width/height
	Mass        float64
	Restitution float64 // Bounce factor applied on solid contact
	Sensor      bool    // Sensors report overlaps but never block motion
	Groups      CollisionGroups
	Force       Vec2 // Continuous force applied every step
	// EmitContactForces enables contact-force events for solid impacts
	// involving this body.
	EmitContactForces bool
}

// BodyID is a stable generational handle to a body. The zero value refers
// to no body. Handles stay invalid after their body is destroyed, even if
// the slot is reused.
type BodyID struct {
	index uint32
	gen   uint32
}

// NoBody is the zero handle.
var NoBody = BodyID{}

// IsZero reports whether the handle is the zero handle.
func (id BodyID) IsZero() bool {
	return id == NoBody
}

// pack returns a total order key, used to canonicalize event pairs.
func (id BodyID) pack() uint64 {
	return uint64(id.index)<<32 | uint64(id.gen)
}

type body struct {
	def  BodyDef
	pos  Vec2
	vel  Vec2
	mass float64
}
