package scene

import "github.com/taigrr/painter/pkg/math3d"

// Axes returns red, green and blue lines along +X, +Y and +Z.
func Axes(length float64) []Primitive {
	var o math3d.Vec3
	return []Primitive{
		NewLine(o, math3d.V3(length, 0, 0), ColorRed),
		NewLine(o, math3d.V3(0, length, 0), ColorGreen),
		NewLine(o, math3d.V3(0, 0, length), ColorBlue),
	}
}

// Grid returns lines covering the rectangle [x1,x2]×[z1,z2] at height y,
// spaced step apart along both axes.
func Grid(x1, z1, x2, z2, y, step float64, c Color) []Primitive {
	if step <= 0 {
		return nil
	}
	var prims []Primitive
	for x := x1; x <= x2; x += step {
		prims = append(prims, NewLine(math3d.V3(x, y, z1), math3d.V3(x, y, z2), c))
	}
	for z := z1; z <= z2; z += step {
		prims = append(prims, NewLine(math3d.V3(x1, y, z), math3d.V3(x2, y, z), c))
	}
	return prims
}

// WireBox returns the twelve edges of the box spanning lo to hi.
func WireBox(lo, hi math3d.Vec3, c Color) []Primitive {
	k := BoxCorners(lo.Add(hi).Scale(0.5), hi.Sub(lo))
	edges := [12][2]int{
		{0, 1}, {1, 5}, {5, 4}, {4, 0},
		{0, 3}, {1, 2}, {5, 6}, {4, 7},
		{3, 2}, {2, 6}, {6, 7}, {7, 3},
	}
	prims := make([]Primitive, 0, len(edges))
	for _, e := range edges {
		prims = append(prims, NewLine(k[e[0]], k[e[1]], c))
	}
	return prims
}

// Window returns a framed window with a cross between two opposite
// corners of a vertical rectangle.
func Window(a, b math3d.Vec3, c Color) []Primitive {
	midY := (a.Y + b.Y) / 2
	midZ := (a.Z + b.Z) / 2
	return []Primitive{
		NewLine(math3d.V3(a.X, a.Y, a.Z), math3d.V3(b.X, a.Y, b.Z), c),
		NewLine(math3d.V3(b.X, a.Y, b.Z), math3d.V3(b.X, b.Y, b.Z), c),
		NewLine(math3d.V3(b.X, b.Y, b.Z), math3d.V3(a.X, b.Y, a.Z), c),
		NewLine(math3d.V3(a.X, b.Y, a.Z), math3d.V3(a.X, a.Y, a.Z), c),
		NewLine(math3d.V3(a.X, midY, a.Z), math3d.V3(b.X, midY, b.Z), c),
		NewLine(math3d.V3(a.X, a.Y, midZ), math3d.V3(b.X, b.Y, midZ), c),
	}
}

// WireTable returns a table outline: the top rectangle at corner pos with
// extent w×d and four legs of height h hanging below it.
func WireTable(pos math3d.Vec3, w, h, d float64, c Color) []Primitive {
	x, y, z := pos.X, pos.Y, pos.Z
	corners := []math3d.Vec3{
		math3d.V3(x, y, z),
		math3d.V3(x+w, y, z),
		math3d.V3(x+w, y, z+d),
		math3d.V3(x, y, z+d),
	}
	prims := make([]Primitive, 0, 8)
	for i, p := range corners {
		prims = append(prims, NewLine(p, corners[(i+1)%len(corners)], c))
	}
	for _, p := range corners {
		prims = append(prims, NewLine(math3d.V3(p.X, p.Y-h, p.Z), p, c))
	}
	return prims
}

// Stairs returns a wireframe staircase of steps rising 0.5 per step toward
// -Z from z = 5, with a handrail on both sides.
func Stairs(steps int) []Primitive {
	var prims []Primitive
	for i := range steps {
		y := float64(i) * 0.5
		z := 5 - float64(i)*0.5
		a := math3d.V3(-2, y, z)
		b := math3d.V3(2, y, z)
		bb := math3d.V3(2, y, z-0.5)
		ab := math3d.V3(-2, y, z-0.5)
		prims = append(prims,
			NewLine(a, b, ColorDarkWood),
			NewLine(b, bb, ColorDarkWood),
			NewLine(bb, ab, ColorDarkWood),
			NewLine(ab, a, ColorDarkWood),
			NewLine(ab, ab.Add(math3d.V3(0, 0.5, 0)), ColorBrown),
			NewLine(bb, bb.Add(math3d.V3(0, 0.5, 0)), ColorBrown),
		)
	}
	for i := range steps {
		y := float64(i)*0.5 + 1
		z := 5 - float64(i)*0.5
		for _, x := range []float64{-2.5, 2.5} {
			prims = append(prims, NewLine(math3d.V3(x, y, z), math3d.V3(x, y+0.5, z-0.5), ColorDarkWood))
		}
	}
	return prims
}
