package math3d

import "math"

// Euler holds rotation angles in radians about the X, Y and Z axes.
// Rotations always apply X first, then Y, then Z.
type Euler struct {
	X, Y, Z float64
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// EulerDeg builds an Euler from angles given in degrees.
func EulerDeg(x, y, z float64) Euler {
	return Euler{Deg2Rad(x), Deg2Rad(y), Deg2Rad(z)}
}

// IsZero reports whether no rotation is applied.
func (e Euler) IsZero() bool {
	return e == Euler{}
}

// RotateX rotates p about the X axis.
func (p Vec3) RotateX(a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{p.X, p.Y*c - p.Z*s, p.Y*s + p.Z*c}
}

// RotateY rotates p about the Y axis.
func (p Vec3) RotateY(a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{p.X*c + p.Z*s, p.Y, -p.X*s + p.Z*c}
}

// RotateZ rotates p about the Z axis.
func (p Vec3) RotateZ(a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{p.X*c - p.Y*s, p.X*s + p.Y*c, p.Z}
}

// RotateXYZ applies e to p: X, then Y, then Z. The order is not
// interchangeable.
func (p Vec3) RotateXYZ(e Euler) Vec3 {
	if e.IsZero() {
		return p
	}
	return p.RotateX(e.X).RotateY(e.Y).RotateZ(e.Z)
}

// EulerXYZ returns the matrix equivalent of Vec3.RotateXYZ.
func EulerXYZ(e Euler) Mat4 {
	return RotateZ(e.Z).Mul(RotateY(e.Y)).Mul(RotateX(e.X))
}
