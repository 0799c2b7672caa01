// Package render turns a scene into an ordered list of 2D fills and
// strokes: camera transform, perspective projection, back-to-front sort
// and per-face shading. Output goes to any Canvas.
package render

import (
	"math"

	"github.com/taigrr/painter/pkg/math3d"
)

// MaxPitch is the largest upward or downward tilt Turn allows.
const MaxPitch = math.Pi / 2

// Camera is a viewpoint. Rotation.X is pitch, Rotation.Y is yaw and
// Rotation.Z is roll; they apply in that order after the translation.
type Camera struct {
	Position math3d.Vec3
	Rotation math3d.Euler
}

// NewCamera creates an unrotated camera at pos.
func NewCamera(pos math3d.Vec3) *Camera {
	return &Camera{Position: pos}
}

// SetRotation replaces pitch, yaw and roll.
func (c *Camera) SetRotation(pitch, yaw, roll float64) {
	c.Rotation = math3d.Euler{X: pitch, Y: yaw, Z: roll}
}

// Turn adds to pitch and yaw, keeping pitch within ±MaxPitch.
func (c *Camera) Turn(dPitch, dYaw float64) {
	c.Rotation.X = clampf(c.Rotation.X+dPitch, -MaxPitch, MaxPitch)
	c.Rotation.Y += dYaw
}

// ToCamera maps a world point into camera space: relative to the camera
// position, then rotated X, Y, Z. +Z points away from the viewer.
func (c *Camera) ToCamera(p math3d.Vec3) math3d.Vec3 {
	return p.Sub(c.Position).RotateXYZ(c.Rotation)
}

// Forward returns the world direction that maps to camera-space +Z.
func (c *Camera) Forward() math3d.Vec3 {
	return c.fromCamera(math3d.V3(0, 0, 1))
}

// Right returns the world direction that maps to camera-space +X.
func (c *Camera) Right() math3d.Vec3 {
	return c.fromCamera(math3d.V3(1, 0, 0))
}

func (c *Camera) fromCamera(d math3d.Vec3) math3d.Vec3 {
	return math3d.EulerXYZ(c.Rotation).Transpose().MulVec3Dir(d)
}

// Move translates the camera along its own forward and right axes and the
// world up axis.
func (c *Camera) Move(forward, right, up float64) {
	c.Position = c.Position.
		Add(c.Forward().Scale(forward)).
		Add(c.Right().Scale(right)).
		Add(math3d.V3(0, up, 0))
}

func clampf(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
