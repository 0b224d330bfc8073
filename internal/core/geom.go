// Package core provides fundamental types and utilities shared by the game
// and the platform. It contains no terminal dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
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

// Centered returns a w×h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Camera projects world coordinates (y up) onto screen cells (y down).
// A terminal cell is roughly twice as tall as it is wide, so one row covers
// twice the world height of one column.
type Camera struct {
	X, Y             float64 // world point shown at the screen anchor
	Scale            float64 // columns per world unit
	W, H             int     // screen size in cells
	AnchorX, AnchorY float64 // anchor as a fraction of the screen (0..1)
}

// NewCamera creates a camera for a w×h screen.
func NewCamera(w, h int, scale float64) Camera {
	return Camera{Scale: scale, W: w, H: h, AnchorX: 0.3, AnchorY: 0.55}
}

// Follow centers the anchor on a world point.
func (c *Camera) Follow(x, y float64) {
	c.X, c.Y = x, y
}

// ToScreen converts a world point to a cell.
func (c Camera) ToScreen(x, y float64) (int, int) {
	sx := (x-c.X)*c.Scale + c.AnchorX*float64(c.W)
	sy := -(y-c.Y)*c.Scale/2 + c.AnchorY*float64(c.H)
	return int(math.Floor(sx)), int(math.Floor(sy))
}

// ToWorldX converts a screen column to a world x coordinate at its left edge.
func (c Camera) ToWorldX(col int) float64 {
	return (float64(col)-c.AnchorX*float64(c.W))/c.Scale + c.X
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

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
