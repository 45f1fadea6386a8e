// Package core provides fundamental types shared by the simulation and the
// platform layers. It has no external dependencies (especially no Bubble Tea)
// so that game logic stays pure and testable.
package core

import "math"

// Vector is an immutable 2D point or size measured in tiles.
// Operations return new values and never modify the receiver.
type Vector struct {
	X, Y float64
}

// V is shorthand for Vector{X: x, Y: y}.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Plus returns the component-wise sum of v and other.
func (v Vector) Plus(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Times returns v scaled by factor.
func (v Vector) Times(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// IsFinite reports whether both components are finite numbers.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Overlaps reports whether the box at pos with size overlaps the box at
// otherPos with otherSize. Edges that merely touch do not overlap.
func Overlaps(pos, size, otherPos, otherSize Vector) bool {
	return pos.X+size.X > otherPos.X &&
		pos.X < otherPos.X+otherSize.X &&
		pos.Y+size.Y > otherPos.Y &&
		pos.Y < otherPos.Y+otherSize.Y
}

// Rect represents an axis-aligned rectangle of screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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
