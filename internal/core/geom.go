// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in field units. Positions and velocities use float64
// so entities move with sub-cell precision on the character grid.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference of v and other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v multiplied by a scalar factor.
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Wrap maps a position onto a toroidal field of the given size. Each
// component is reduced with a non-negative modulo, so the result is always
// in [0, w) x [0, h) no matter how far outside the field the input lies.
func Wrap(v Vec2, w, h float64) Vec2 {
	return Vec2{X: wrapCoord(v.X, w), Y: wrapCoord(v.Y, h)}
}

// wrapCoord reduces a single coordinate into [0, limit). math.Mod keeps the
// sign of the dividend, so a shift and second mod handle negative inputs.
func wrapCoord(val, limit float64) float64 {
	return math.Mod(math.Mod(val, limit)+limit, limit)
}

// FromHeading converts a heading in degrees to a unit direction vector.
// Heading 0 points up on screen and positive headings rotate
// counter-clockwise; screen y grows downward, hence the negated components.
// Thrust, muzzle offset, projectile velocity and the facing glyph all share
// this one basis.
func FromHeading(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{X: -math.Sin(rad), Y: -math.Cos(rad)}
}

// NormalizeDeg reduces an angle in degrees into [0, 360).
func NormalizeDeg(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}

// Box is an axis-aligned bounding box in field space, used for entity
// collision. Screen-space drawing keeps using the integer Rect.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// BoxAround builds a box of the given size centered on a point.
func BoxAround(center Vec2, w, h float64) Box {
	return Box{X: center.X - w/2, Y: center.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps returns true if this box overlaps with another.
// Touching edges do not count as overlap, mirroring Rect.Intersects.
func (b Box) Overlaps(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Rect represents an axis-aligned bounding box used for screen-space drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
