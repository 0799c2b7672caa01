// Package models loads triangle meshes from disk for use as painter scenes.
package models

import (
	"image/color"

	"github.com/taigrr/painter/pkg/math3d"
)

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face
	// Colors is the material palette referenced by Face.Color.
	Colors []color.RGBA

	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is one triangle.
type Face struct {
	V     [3]int // indices into Mesh.Vertices
	Color int    // index into Mesh.Colors, -1 for none
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// AddTriangle appends a face over three existing vertex indices.
func (m *Mesh) AddTriangle(a, b, c, colorIdx int) {
	m.Faces = append(m.Faces, Face{V: [3]int{a, b, c}, Color: colorIdx})
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// Fit recenters the mesh on the origin and scales it uniformly so its
// largest dimension equals extent.
func (m *Mesh) Fit(extent float64) {
	m.CalculateBounds()
	size := m.Size()
	largest := max(size.X, size.Y, size.Z)
	if largest == 0 {
		return
	}
	center := m.Center()
	k := extent / largest
	m.Transform(math3d.Scale(math3d.V3(k, k, k)).Mul(math3d.Translate(center.Negate())))
}

// Transform applies mat to every vertex and refreshes the bounds.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		Colors:    make([]color.RGBA, len(m.Colors)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	copy(clone.Colors, m.Colors)
	return clone
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// GetVertex returns the position of vertex i.
func (m *Mesh) GetVertex(i int) math3d.Vec3 {
	return m.Vertices[i]
}

// GetFace returns the vertex indices of face i.
func (m *Mesh) GetFace(i int) [3]int {
	return m.Faces[i].V
}

// FaceColor returns the material colour of face i, if it has one.
func (m *Mesh) FaceColor(i int) (color.RGBA, bool) {
	idx := m.Faces[i].Color
	if idx < 0 || idx >= len(m.Colors) {
		return color.RGBA{}, false
	}
	return m.Colors[idx], true
}
