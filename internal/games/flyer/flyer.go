package flyer

import (
	"math"

	"github.com/vovakirdan/tui-flyer/internal/config"
	"github.com/vovakirdan/tui-flyer/internal/physics"
)

// FlyerController owns the flyer body and its alive flag. While dead the
// body keeps falling under gravity but no longer responds to input and no
// longer collides with anything.
type FlyerController struct {
	world *physics.World
	body  physics.BodyID
	alive bool

	jumpImpulse float64
}

// newFlyerController spawns the flyer at the world origin with its
// continuous forward thrust applied. By default it starts at rest; the
// configured initial speed gives it a head start if set.
func newFlyerController(world *physics.World, phys config.FlyerPhysics, player config.FlyerPlayer) *FlyerController {
	body := world.CreateBody(physics.BodyDef{
		Type:              physics.Dynamic,
		Pos:               physics.Vec2{},
		Vel:               physics.Vec2{X: phys.InitialSpeed},
		HalfExtents:       physics.Vec2{X: player.HalfSize, Y: player.HalfSize},
		Mass:              player.Mass,
		Restitution:       phys.Restitution,
		Force:             physics.Vec2{X: phys.ForwardForce},
		EmitContactForces: true,
	})

	return &FlyerController{
		world:       world,
		body:        body,
		alive:       true,
		jumpImpulse: phys.JumpImpulse,
	}
}

// Jump zeroes vertical velocity and applies the upward impulse.
// Ignored while dead: a dead flyer stops responding to input.
func (f *FlyerController) Jump() {
	if !f.alive {
		return
	}
	vel := f.world.Velocity(f.body)
	f.world.SetVelocity(f.body, physics.Vec2{X: vel.X})
	f.world.ApplyImpulse(f.body, physics.Vec2{Y: f.jumpImpulse})
}

// Kill flips the flyer to dead and strips its collision participation so
// it falls through geometry without generating further contact events.
// Idempotent: repeated lethal events in one tick change nothing.
func (f *FlyerController) Kill() {
	if !f.alive {
		return
	}
	f.alive = false
	f.world.SetGroups(f.body, physics.CollisionGroups{
		Memberships: physics.GroupNone,
		Filters:     physics.GroupNone,
	})
}

// Alive reports whether the flyer still responds to input.
func (f *FlyerController) Alive() bool {
	return f.alive
}

// Body returns the flyer's physics handle.
func (f *FlyerController) Body() physics.BodyID {
	return f.body
}

// Position returns the flyer's world position.
func (f *FlyerController) Position() physics.Vec2 {
	return f.world.Position(f.body)
}

// Velocity returns the flyer's linear velocity.
func (f *FlyerController) Velocity() physics.Vec2 {
	return f.world.Velocity(f.body)
}

// Rotation derives the visual orientation from the velocity, in radians.
// Zero when the flyer isn't moving. Purely cosmetic.
func (f *FlyerController) Rotation() float64 {
	vel := f.world.Velocity(f.body)
	if vel.Length() == 0 {
		return 0
	}
	r := math.Atan2(vel.Y, vel.X)
	if math.IsNaN(r) {
		return 0
	}
	return r
}

// destroy removes the flyer body from the world.
func (f *FlyerController) destroy() {
	f.world.DestroyBody(f.body)
	f.body = physics.NoBody
	f.alive = false
}
