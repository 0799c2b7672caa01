package sim

import (
	"math"

	"github.com/taigrr/painter/pkg/math3d"
)

// Bounds is an axis-aligned box an actor may not leave. A zero Bounds
// does not constrain.
type Bounds struct {
	Min, Max math3d.Vec3
}

// Clamp returns p moved inside b.
func (b Bounds) Clamp(p math3d.Vec3) math3d.Vec3 {
	if b == (Bounds{}) {
		return p
	}
	return p.Max(b.Min).Min(b.Max)
}

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p math3d.Vec3) bool {
	return b.Clamp(p) == p
}

// RoomBounds keeps people inside the house: x and z in [-8, 8], y in
// [0, 8].
var RoomBounds = Bounds{Min: math3d.V3(-8, 0, -8), Max: math3d.V3(8, 8, 8)}

// YawForward is the ground direction a camera with this yaw faces.
func YawForward(yaw float64) math3d.Vec3 {
	return math3d.V3(-math.Sin(yaw), 0, math.Cos(yaw))
}

// YawRight is the ground direction to the right of a camera with this yaw.
func YawRight(yaw float64) math3d.Vec3 {
	return math3d.V3(math.Cos(yaw), 0, math.Sin(yaw))
}

// Mover is an actor that steps around on discrete key presses.
type Mover struct {
	Position math3d.Vec3
	Speed    float64
	Bounds   Bounds
}

// Step moves by forward, right and up multiples of Speed. Horizontal
// motion is relative to yaw. It reports whether the actor moved.
func (m *Mover) Step(forward, right, up, yaw float64) bool {
	if forward == 0 && right == 0 && up == 0 {
		return false
	}
	d := YawForward(yaw).Scale(forward).
		Add(YawRight(yaw).Scale(right)).
		Add(math3d.V3(0, up, 0)).
		Scale(m.Speed)
	next := m.Bounds.Clamp(m.Position.Add(d))
	moved := next != m.Position
	m.Position = next
	return moved
}
