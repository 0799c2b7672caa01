package models

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taigrr/painter/pkg/math3d"
)

func quadMesh() *Mesh {
	m := NewMesh("quad")
	m.Vertices = []math3d.Vec3{{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 4}, {X: 2, Y: 4}}
	m.Colors = []color.RGBA{{255, 0, 0, 255}}
	m.AddTriangle(0, 1, 2, 0)
	m.AddTriangle(0, 2, 3, -1)
	return m
}

func TestMeshFit(t *testing.T) {
	m := quadMesh()
	m.Fit(2)

	assert.InDelta(t, 2, m.Size().X, 1e-12)
	assert.InDelta(t, 1, m.Size().Y, 1e-12)
	assert.InDelta(t, 0, m.Center().X, 1e-12)
	assert.InDelta(t, 0, m.Center().Y, 1e-12)
}

func TestMeshFaceColor(t *testing.T) {
	m := quadMesh()
	c, ok := m.FaceColor(0)
	assert.True(t, ok)
	assert.Equal(t, uint8(255), c.R)

	_, ok = m.FaceColor(1)
	assert.False(t, ok)
	assert.Equal(t, [3]int{0, 2, 3}, m.GetFace(1))
}

func TestMeshClone(t *testing.T) {
	m := quadMesh()
	c := m.Clone()
	c.Vertices[0].X = 100
	c.Faces[0].Color = -1
	assert.Equal(t, 2.0, m.Vertices[0].X)
	assert.Equal(t, m.TriangleCount(), c.TriangleCount())

	_, ok := m.FaceColor(0)
	assert.True(t, ok)
	_, ok = c.FaceColor(0)
	assert.False(t, ok)
}
