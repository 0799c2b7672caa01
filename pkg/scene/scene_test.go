package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/painter/pkg/math3d"
)

func TestPrimitiveValidate(t *testing.T) {
	v := math3d.V3
	tests := []struct {
		name    string
		p       Primitive
		wantErr bool
	}{
		{"line", NewLine(v(0, 0, 0), v(1, 0, 0), ColorRed), false},
		{"quad of four", NewQuad(ColorRed, v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0)), false},
		{"quad of three", NewQuad(ColorRed, v(0, 0, 0), v(1, 0, 0), v(1, 1, 0)), false},
		{"quad of two", NewQuad(ColorRed, v(0, 0, 0), v(1, 0, 0)), true},
		{"triangle", NewTriangle(v(0, 0, 0), v(1, 0, 0), v(0, 1, 0), ColorRed), false},
		{"bad kind", Primitive{Kind: Kind(9)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr {
				assert.Error(t, tt.p.Validate())
			} else {
				assert.NoError(t, tt.p.Validate())
			}
		})
	}
}

func TestTranslatedCopies(t *testing.T) {
	p := NewLine(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), ColorRed)
	q := p.Translated(math3d.V3(0, 2, 0))

	assert.Equal(t, math3d.V3(0, 0, 0), p.Verts[0])
	assert.Equal(t, math3d.V3(1, 2, 0), q.Verts[1])
}

func TestSceneCloneIsDeep(t *testing.T) {
	s := New(Cube(math3d.V3(0, 0, 0), 1, ColorBlue)...)
	c := s.Clone()
	c.Translate(math3d.V3(5, 0, 0))

	assert.Equal(t, 6, s.Len())
	assert.InDelta(t, -0.5, s.Prims[0].Verts[0].X, 1e-12)
	assert.InDelta(t, 4.5, c.Prims[0].Verts[0].X, 1e-12)
	assert.NoError(t, s.Validate())
}

func TestSceneValidateJoinsErrors(t *testing.T) {
	s := New(Primitive{Kind: Line}, Primitive{Kind: Triangle})
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line")
	assert.Contains(t, err.Error(), "triangle")
}

func TestBoxCornersSymmetric(t *testing.T) {
	k := BoxCorners(math3d.V3(0, 0, 0), math3d.V3(1, 1, 1))
	var sum math3d.Vec3
	for _, c := range k {
		assert.InDelta(t, 0.5, math.Abs(c.X), 1e-12)
		assert.InDelta(t, 0.5, math.Abs(c.Y), 1e-12)
		assert.InDelta(t, 0.5, math.Abs(c.Z), 1e-12)
		sum = sum.Add(c)
	}
	assert.True(t, sum.IsZero())
}

func TestBoxTrianglesCoverFaces(t *testing.T) {
	tris := BoxTriangles(math3d.V3(1, 2, 3), math3d.V3(2, 2, 2), ColorRed)
	require.Len(t, tris, 12)
	for _, tr := range tris {
		n := tr.Verts[1].Sub(tr.Verts[0]).Cross(tr.Verts[2].Sub(tr.Verts[0]))
		assert.InDelta(t, 4.0, n.Len(), 1e-12, "every triangle is half a 2x2 face")
	}
}

func TestBlockShades(t *testing.T) {
	c := RGB(100, 50, 0)
	b := Block(math3d.V3(0, 0, 10), 1.5, 2, 1.5, c)
	require.Len(t, b, 3)
	assert.Equal(t, c, b[0].Color)
	assert.Equal(t, RGB(142, 71, 0), b[1].Color)
	assert.Equal(t, RGB(70, 35, 0), b[2].Color)
	assert.InDelta(t, 2.0, b[1].Verts[0].Y, 1e-12)
}

func TestBrighterDarker(t *testing.T) {
	assert.Equal(t, RGB(3, 3, 3), Brighter(ColorBlack))
	assert.Equal(t, ColorRed, Brighter(ColorRed))
	assert.Equal(t, RGB(4, 0, 0), Brighter(RGB(1, 0, 0)))
	assert.Equal(t, RGB(178, 0, 0), Darker(ColorRed))
}

func TestRoom(t *testing.T) {
	r := Room(DefaultRoomOptions())
	require.Equal(t, 5+1+16, r.Len())
	require.NoError(t, r.Validate())

	floor := r.Prims[0]
	assert.Equal(t, Floor, floor.Surface)
	for _, v := range floor.Verts {
		assert.Equal(t, -150.0, v.Y)
	}
	for _, p := range r.Prims[1:] {
		assert.Equal(t, Wall, p.Surface)
	}

	bare := Room(RoomOptions{Size: 10, Height: 5})
	assert.Equal(t, 5, bare.Len())
}

func TestHouseIsWireframe(t *testing.T) {
	h := House()
	require.NoError(t, h.Validate())
	assert.Greater(t, h.Len(), 100)
	for _, p := range h.Prims {
		assert.Equal(t, Line, p.Kind)
	}
}

func TestGrid(t *testing.T) {
	assert.Len(t, Grid(-10, -10, 10, 10, 0, 2, ColorBrown), 22)
	assert.Nil(t, Grid(0, 0, 1, 1, 0, 0, ColorBrown))
}

func TestPerson(t *testing.T) {
	p := Person(math3d.V3(1, 0, 2), 1.8, ColorBlue)
	require.Len(t, p, 7)
	assert.Equal(t, math3d.V3(1, 1.8, 2), p[0].Verts[1])
}

func TestFromMeshUsesFaceColors(t *testing.T) {
	f := NewFigure(ColorWhite)
	prims := FromMesh(f, ColorRed)
	require.Len(t, prims, f.TriangleCount())
	assert.Equal(t, ColorRed, prims[0].Color)
}
