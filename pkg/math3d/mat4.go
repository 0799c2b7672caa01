package math3d

import "math"

// Mat4 is a 4x4 affine transform stored column by column: the images of
// the X, Y and Z axes, then the translation.
type Mat4 [16]float64

// Affine builds a matrix whose first three columns are x, y and z and
// whose last column is the translation t.
func Affine(x, y, z, t Vec3) Mat4 {
	return Mat4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		t.X, t.Y, t.Z, 1,
	}
}

// Column returns the first three entries of column i.
func (m Mat4) Column(i int) Vec3 {
	return Vec3{m[i*4], m[i*4+1], m[i*4+2]}
}

var (
	unitX = Vec3{X: 1}
	unitY = Vec3{Y: 1}
	unitZ = Vec3{Z: 1}
)

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Affine(unitX, unitY, unitZ, Vec3{})
}

// Translate returns a translation by v.
func Translate(v Vec3) Mat4 {
	return Affine(unitX, unitY, unitZ, v)
}

// Scale returns a per-axis scale by v.
func Scale(v Vec3) Mat4 {
	return Affine(unitX.Scale(v.X), unitY.Scale(v.Y), unitZ.Scale(v.Z), Vec3{})
}

// RotateX, RotateY and RotateZ turn by angle radians with the same sign
// conventions as Vec3.RotateX, RotateY and RotateZ.
func RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Affine(unitX, Vec3{0, c, s}, Vec3{0, -s, c}, Vec3{})
}

// RotateY returns a rotation about the Y axis.
func RotateY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Affine(Vec3{c, 0, -s}, unitY, Vec3{s, 0, c}, Vec3{})
}

// RotateZ returns a rotation about the Z axis.
func RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Affine(Vec3{c, s, 0}, Vec3{-s, c, 0}, unitZ, Vec3{})
}

// Mul returns a * b. Applied to a vector, b acts first.
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for col := range 4 {
		bc := b[col*4 : col*4+4]
		for row := range 4 {
			m[col*4+row] = a[row]*bc[0] + a[4+row]*bc[1] + a[8+row]*bc[2] + a[12+row]*bc[3]
		}
	}
	return m
}

// MulVec3 transforms v as a point. The bottom row is assumed to be
// (0, 0, 0, 1).
func (m Mat4) MulVec3(v Vec3) Vec3 {
	return m.MulVec3Dir(v).Add(m.Column(3))
}

// MulVec3Dir transforms v as a direction, ignoring translation.
func (m Mat4) MulVec3Dir(v Vec3) Vec3 {
	return m.Column(0).Scale(v.X).
		Add(m.Column(1).Scale(v.Y)).
		Add(m.Column(2).Scale(v.Z))
}

// Transpose swaps rows and columns. For a pure rotation this is the inverse.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for col := range 4 {
		for row := range 4 {
			t[row*4+col] = m[col*4+row]
		}
	}
	return t
}
