package scene

import (
	"math"

	"github.com/taigrr/painter/pkg/math3d"
)

// Limb names a posable part of a Figure.
type Limb uint8

const (
	LeftArm Limb = iota
	RightArm
	LeftLeg
	RightLeg
	limbCount
)

// rig is the contiguous vertex range moved by one limb and the joint it
// turns about.
type rig struct {
	pivot      math3d.Vec3
	start, end int
}

// Figure is a low-poly human about 4.5 units tall, centred on the origin
// with the feet near y = -1.6. Limbs swing in the XY plane about the
// shoulders and hips.
type Figure struct {
	Color Color

	rest  []math3d.Vec3
	posed []math3d.Vec3
	tris  [][3]int
	rigs  [limbCount]rig
}

// NewFigure builds the figure in its rest pose.
func NewFigure(c Color) *Figure {
	var b meshBuilder
	v := math3d.V3

	b.sphere(v(0, 2.5, 0), 0.4, 12, 12)
	torso := v(0, 1.3, 0)
	b.band(
		ring(torso.Add(v(0, 0.75, 0)), 0.8, 12, true),
		ring(torso.Add(v(0, -0.75, 0)), 0.8*0.7, 12, true),
	)

	f := &Figure{Color: c}
	limb := func(l Limb, pivot math3d.Vec3, build func()) {
		start := len(b.verts)
		build()
		f.rigs[l] = rig{pivot: pivot, start: start, end: len(b.verts)}
	}
	segment := func(a, z math3d.Vec3, r float64) {
		b.band(ring(a, r, 8, false), ring(z, r, 8, false))
	}

	for _, side := range []struct {
		arm, leg Limb
		x        float64
	}{{LeftArm, LeftLeg, -1}, {RightArm, RightLeg, 1}} {
		x := side.x
		limb(side.arm, v(0.8*x, 1.8, 0), func() {
			segment(v(0.8*x, 1.8, 0), v(1.2*x, 1.0, 0), 0.15)
			segment(v(1.2*x, 1.0, 0), v(1.2*x, 0.2, 0), 0.12)
			b.sphere(v(1.2*x, 0.1, 0), 0.12, 8, 8)
		})
		limb(side.leg, v(0.3*x, 0.5, 0), func() {
			segment(v(0.3*x, 0.5, 0), v(0.3*x, -0.5, 0), 0.2)
			segment(v(0.3*x, -0.5, 0), v(0.3*x, -1.5, 0), 0.15)
			b.box(v(0.3*x, -1.6, 0.1), v(0.2, 0.1, 0.4))
		})
	}

	f.rest = b.verts
	f.tris = b.tris
	f.posed = append([]math3d.Vec3(nil), b.verts...)
	return f
}

// Pose resets the figure to rest and swings the legs by ±leg and the arms
// by ±arm radians, left and right in opposite directions.
func (f *Figure) Pose(leg, arm float64) {
	copy(f.posed, f.rest)
	f.turn(LeftLeg, leg)
	f.turn(RightLeg, -leg)
	f.turn(LeftArm, arm)
	f.turn(RightArm, -arm)
}

func (f *Figure) turn(l Limb, angle float64) {
	if angle == 0 {
		return
	}
	r := f.rigs[l]
	s, c := math.Sincos(angle)
	for i := r.start; i < r.end; i++ {
		d := f.rest[i].Sub(r.pivot)
		f.posed[i] = math3d.V3(
			r.pivot.X+d.X*c-d.Y*s,
			r.pivot.Y+d.X*s+d.Y*c,
			f.rest[i].Z,
		)
	}
}

// LimbRange returns the vertex indices [start, end) moved by l.
func (f *Figure) LimbRange(l Limb) (int, int) {
	return f.rigs[l].start, f.rigs[l].end
}

// Pivot returns the joint l swings about.
func (f *Figure) Pivot(l Limb) math3d.Vec3 {
	return f.rigs[l].pivot
}

// VertexCount returns the number of vertices.
func (f *Figure) VertexCount() int { return len(f.posed) }

// TriangleCount returns the number of triangles.
func (f *Figure) TriangleCount() int { return len(f.tris) }

// GetVertex returns posed vertex i.
func (f *Figure) GetVertex(i int) math3d.Vec3 { return f.posed[i] }

// GetFace returns the vertex indices of triangle i.
func (f *Figure) GetFace(i int) [3]int { return f.tris[i] }

// Triangles returns the posed figure moved by offset.
func (f *Figure) Triangles(offset math3d.Vec3) []Primitive {
	prims := FromMesh(f, f.Color)
	if offset.IsZero() {
		return prims
	}
	for i := range prims {
		prims[i] = prims[i].Translated(offset)
	}
	return prims
}
