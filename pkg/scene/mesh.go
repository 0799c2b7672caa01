package scene

import (
	"math"

	"github.com/taigrr/painter/pkg/math3d"
)

// MeshSource is an indexed triangle mesh such as a loaded glTF model or a
// posed Figure.
type MeshSource interface {
	VertexCount() int
	TriangleCount() int
	GetVertex(i int) math3d.Vec3
	GetFace(i int) [3]int
}

// faceColorer is implemented by meshes that carry per-face material colours.
type faceColorer interface {
	FaceColor(i int) (Color, bool)
}

// FromMesh converts every face of m into a Triangle primitive. Faces use
// their own material colour when m provides one, c otherwise.
func FromMesh(m MeshSource, c Color) []Primitive {
	fc, hasColors := m.(faceColorer)
	prims := make([]Primitive, 0, m.TriangleCount())
	for i := range m.TriangleCount() {
		f := m.GetFace(i)
		col := c
		if hasColors {
			if mc, ok := fc.FaceColor(i); ok {
				col = mc
			}
		}
		prims = append(prims, NewTriangle(m.GetVertex(f[0]), m.GetVertex(f[1]), m.GetVertex(f[2]), col))
	}
	return prims
}

// meshBuilder accumulates shared vertices and triangle indices.
type meshBuilder struct {
	verts []math3d.Vec3
	tris  [][3]int
}

func (b *meshBuilder) add(pts ...math3d.Vec3) int {
	base := len(b.verts)
	b.verts = append(b.verts, pts...)
	return base
}

// sphere adds a UV sphere with lat+1 rings of lon+1 points.
func (b *meshBuilder) sphere(c math3d.Vec3, r float64, lat, lon int) {
	base := len(b.verts)
	for i := 0; i <= lat; i++ {
		theta := float64(i) * math.Pi / float64(lat)
		st, ct := math.Sincos(theta)
		for j := 0; j <= lon; j++ {
			phi := float64(j) * 2 * math.Pi / float64(lon)
			sp, cp := math.Sincos(phi)
			b.add(math3d.V3(c.X+r*st*cp, c.Y+r*ct, c.Z+r*st*sp))
		}
	}
	for i := range lat {
		for j := range lon {
			cur := base + i*(lon+1) + j
			below := cur + lon + 1
			b.tris = append(b.tris,
				[3]int{cur, cur + 1, below},
				[3]int{cur + 1, below + 1, below},
			)
		}
	}
}

// band joins two rings of equal length with a strip of triangles.
func (b *meshBuilder) band(upper, lower []math3d.Vec3) {
	u := b.add(upper...)
	l := b.add(lower...)
	for i := range len(upper) - 1 {
		b.tris = append(b.tris,
			[3]int{u + i, u + i + 1, l + i},
			[3]int{u + i + 1, l + i + 1, l + i},
		)
	}
}

// ring returns segments+1 points around c; the last repeats the first.
// horizontal rings lie in the XZ plane, others in the XY plane.
func ring(c math3d.Vec3, r float64, segments int, horizontal bool) []math3d.Vec3 {
	pts := make([]math3d.Vec3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		s, co := math.Sincos(float64(i) * 2 * math.Pi / float64(segments))
		if horizontal {
			pts = append(pts, math3d.V3(c.X+r*co, c.Y, c.Z+r*s))
		} else {
			pts = append(pts, math3d.V3(c.X+r*co, c.Y+r*s, c.Z))
		}
	}
	return pts
}

func (b *meshBuilder) box(c, size math3d.Vec3) {
	k := BoxCorners(c, size)
	base := b.add(k[:]...)
	for _, t := range boxTriangles {
		b.tris = append(b.tris, [3]int{base + t[0], base + t[1], base + t[2]})
	}
}
