// Package core provides fundamental types and utilities for the gem swap board.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an integer rectangle in terminal cells, used for drawing.
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

// RectF is an axis-aligned bounding box in board pixels.
type RectF struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRectF creates a new float rectangle with the given position and dimensions.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// RectAround returns a w×h rectangle centred on (cx, cy).
func RectAround(cx, cy, w, h float64) RectF {
	return RectF{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Center returns the center point of the rectangle.
func (r RectF) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains returns true if the point (x, y) is inside this rectangle.
// Edges are inclusive.
func (r RectF) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Overlaps reports whether two rectangles intersect.
// The centres must be closer than the combined half extents on both axes,
// so rectangles that only share an edge do not overlap.
func (r RectF) Overlaps(other RectF) bool {
	ax, ay := r.Center()
	bx, by := other.Center()

	combinedHalfW := r.W/2 + other.W/2
	combinedHalfH := r.H/2 + other.H/2

	if AbsF(ax-bx) >= combinedHalfW {
		return false
	}
	return AbsF(ay-by) < combinedHalfH
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

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
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
