package scene

import "github.com/taigrr/painter/pkg/math3d"

// BoxCorners returns the eight corners of an axis-aligned box. Corners 0-3
// lie on the -Z side counter-clockwise from bottom left, 4-7 repeat them
// on the +Z side.
func BoxCorners(center, size math3d.Vec3) [8]math3d.Vec3 {
	h := size.Scale(0.5)
	c := center
	return [8]math3d.Vec3{
		{X: c.X - h.X, Y: c.Y - h.Y, Z: c.Z - h.Z},
		{X: c.X + h.X, Y: c.Y - h.Y, Z: c.Z - h.Z},
		{X: c.X + h.X, Y: c.Y + h.Y, Z: c.Z - h.Z},
		{X: c.X - h.X, Y: c.Y + h.Y, Z: c.Z - h.Z},
		{X: c.X - h.X, Y: c.Y - h.Y, Z: c.Z + h.Z},
		{X: c.X + h.X, Y: c.Y - h.Y, Z: c.Z + h.Z},
		{X: c.X + h.X, Y: c.Y + h.Y, Z: c.Z + h.Z},
		{X: c.X - h.X, Y: c.Y + h.Y, Z: c.Z + h.Z},
	}
}

// boxFaces lists each face as four corner indices: front, back, top,
// bottom, left, right.
var boxFaces = [6][4]int{
	{0, 1, 2, 3},
	{5, 4, 7, 6},
	{3, 2, 6, 7},
	{4, 5, 1, 0},
	{4, 0, 3, 7},
	{1, 5, 6, 2},
}

// boxTriangles splits boxFaces into the twelve triangles of a closed box.
var boxTriangles = [12][3]int{
	{0, 1, 2}, {0, 2, 3},
	{5, 4, 7}, {5, 7, 6},
	{3, 2, 6}, {3, 6, 7},
	{4, 5, 1}, {4, 1, 0},
	{4, 0, 3}, {4, 3, 7},
	{1, 5, 6}, {1, 6, 2},
}

// Box returns the six quad faces of an axis-aligned box.
func Box(center, size math3d.Vec3, c Color) []Primitive {
	k := BoxCorners(center, size)
	prims := make([]Primitive, 0, len(boxFaces))
	for _, f := range boxFaces {
		prims = append(prims, NewQuad(c, k[f[0]], k[f[1]], k[f[2]], k[f[3]]))
	}
	return prims
}

// Cube returns a Box with equal edges.
func Cube(center math3d.Vec3, edge float64, c Color) []Primitive {
	return Box(center, math3d.V3(edge, edge, edge), c)
}

// BoxTriangles returns an axis-aligned box as twelve triangles.
func BoxTriangles(center, size math3d.Vec3, c Color) []Primitive {
	k := BoxCorners(center, size)
	prims := make([]Primitive, 0, len(boxTriangles))
	for _, t := range boxTriangles {
		prims = append(prims, NewTriangle(k[t[0]], k[t[1]], k[t[2]], c))
	}
	return prims
}

// Block returns the three camera-facing faces of a box resting on base:
// the front in c, the top brighter and the right side darker. It suits a
// viewer looking down +Z from the left of the block.
func Block(base math3d.Vec3, w, h, d float64, c Color) []Primitive {
	x0, x1 := base.X-w/2, base.X+w/2
	y0, y1 := base.Y, base.Y+h
	z0, z1 := base.Z-d/2, base.Z+d/2

	bfl := math3d.V3(x0, y0, z0)
	bfr := math3d.V3(x1, y0, z0)
	bbr := math3d.V3(x1, y0, z1)
	tfl := math3d.V3(x0, y1, z0)
	tfr := math3d.V3(x1, y1, z0)
	tbr := math3d.V3(x1, y1, z1)
	tbl := math3d.V3(x0, y1, z1)

	return []Primitive{
		NewQuad(c, bfl, bfr, tfr, tfl),
		NewQuad(Brighter(c), tfl, tfr, tbr, tbl),
		NewQuad(Darker(c), bfr, bbr, tbr, tfr),
	}
}
