// Package geom provides the vector and axis-aligned rectangle primitives
// used by the simulation. All collision in the game is AABB overlap.
package geom

import "math"

// Vec2 is a 2D vector. Used for positions and velocities.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Len returns the vector length.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Rect is an axis-aligned rectangle with a top-left origin.
// Entity bodies are Rects whose origin is the integer-truncated copy of
// the entity's floating position.
type Rect struct {
	X, Y, W, H int
}

// Overlaps reports whether a and b overlap. The test uses strict
// inequalities: rectangles that merely touch at an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// sameLevelThreshold is the vertical-velocity magnitude below which two
// combatants are considered to be on the same level, forcing the fixed
// upward pop instead of the scaled vertical component.
const sameLevelThreshold = 10

// Knockback computes the impulse velocity for an entity at pos hit from
// origin. The direction is normalize(pos-origin) scaled by horizontal on
// both axes; if the resulting vertical component is smaller than the
// same-level threshold it is overridden to the fixed vertical constant.
// When pos and origin coincide the direction is undefined and ok is
// false; the caller leaves the entity's velocity unchanged.
func Knockback(pos, origin Vec2, horizontal, vertical float64) (vel Vec2, ok bool) {
	dir := pos.Sub(origin)
	length := dir.Len()
	if length == 0 {
		return Vec2{}, false
	}

	vel.X = dir.X / length * horizontal
	vel.Y = dir.Y / length * horizontal
	if math.Abs(vel.Y) < sameLevelThreshold {
		vel.Y = vertical
	}
	return vel, true
}
