package math3d

import "math"

// Vec2 is a screen-space position in pixels.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Round returns the nearest integer pixel coordinates.
func (a Vec2) Round() (int, int) {
	return int(math.Round(a.X)), int(math.Round(a.Y))
}
