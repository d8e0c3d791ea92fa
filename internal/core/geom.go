// Package core provides the types shared by games and the platform layer.
// It has no Bubble Tea dependency so game logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Wrap maps val into [0, n), wrapping negative values around.
func Wrap(val, n int) int {
	if n <= 0 {
		return 0
	}
	return ((val % n) + n) % n
}
