// Package physics implements the small rigid-body facade the flyer game
// simulates on: an arena of AABB bodies with impulses, continuous forces,
// sensors, collision groups and a global time-scale. Step produces an
// explicit per-tick list of overlap and contact-force events that the game
// consumes exactly once.
//
// This is not a general physics engine. It covers only the contract the
// game needs: dynamic bodies fall and bounce off static geometry, sensors
// report begin/end overlaps, and solid impacts report the impulse applied.
package physics

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Length returns the vector magnitude.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}
