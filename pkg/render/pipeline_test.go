package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/scene"
)

func square(z float64, c scene.Color) scene.Primitive {
	v := math3d.V3
	return scene.NewQuad(c, v(-1, -1, z), v(1, -1, z), v(1, 1, z), v(-1, 1, z))
}

func pinholeRenderer() *Renderer {
	p := Projector{Width: 800, Height: 600, Focal: 500, PixelsPerUnit: 1, Mode: Pinhole, Near: 0.1}
	return NewRenderer(p, Unlit{})
}

func TestRenderNilScene(t *testing.T) {
	r := pinholeRenderer()
	_, err := r.Render(nil, NewCamera(math3d.Vec3{}), &DrawList{})
	assert.ErrorIs(t, err, ErrNilScene)
	assert.Nil(t, r.Transform(nil, nil))
}

func TestRenderCubeSilhouetteSymmetric(t *testing.T) {
	p := NewProjector(800, 600, 500)
	p.PixelsPerUnit = 100
	r := NewRenderer(p, DefaultLambert())
	cam := NewCamera(math3d.V3(0, 0, -10))
	sc := scene.New(scene.BoxTriangles(math3d.Vec3{}, math3d.V3(1, 1, 1), scene.ColorWhite)...)

	var list DrawList
	stats, err := r.Render(sc, cam, &list)
	require.NoError(t, err)
	assert.Equal(t, Stats{Primitives: 12, Drawn: 12}, stats)
	assert.Len(t, list.Commands, 24)

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, corner := range scene.BoxCorners(math3d.Vec3{}, math3d.V3(1, 1, 1)) {
		pt, ok := p.Project(cam.ToCamera(corner))
		require.True(t, ok)
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}
	assert.InDelta(t, 400-minX, maxX-400, 1e-9)
	assert.InDelta(t, 300-minY, maxY-300, 1e-9)
	// the near face at z = 9.5 sets the silhouette
	assert.InDelta(t, 0.5*500/(500+9.5)*100, maxX-400, 1e-9)
}

func TestRenderBackToFront(t *testing.T) {
	r := pinholeRenderer()
	sc := scene.New(
		square(5, scene.ColorRed),
		square(20, scene.ColorBlue),
		square(10, scene.ColorGreen),
	)

	var list DrawList
	_, err := r.Render(sc, NewCamera(math3d.Vec3{}), &list)
	require.NoError(t, err)

	fills := list.Fills()
	require.Len(t, fills, 3)
	assert.Equal(t, scene.ColorBlue, fills[0].Color)
	assert.Equal(t, scene.ColorGreen, fills[1].Color)
	assert.Equal(t, scene.ColorRed, fills[2].Color)
}

func TestRenderOutlineFollowsFill(t *testing.T) {
	r := pinholeRenderer()
	sc := scene.New(square(10, scene.ColorRed))

	var list DrawList
	_, err := r.Render(sc, NewCamera(math3d.Vec3{}), &list)
	require.NoError(t, err)
	require.Len(t, list.Commands, 2)

	fill, stroke := list.Commands[0], list.Commands[1]
	assert.Equal(t, OpFill, fill.Op)
	assert.Equal(t, OpStroke, stroke.Op)
	assert.Equal(t, scene.ColorBlack, stroke.Color)
	assert.True(t, stroke.Closed)
	assert.Equal(t, fill.Points, stroke.Points)

	r.Outline = false
	list.Reset()
	_, err = r.Render(sc, NewCamera(math3d.Vec3{}), &list)
	require.NoError(t, err)
	assert.Len(t, list.Commands, 1)
}

func TestRenderPartialVisibility(t *testing.T) {
	v := math3d.V3
	r := pinholeRenderer()
	r.Outline = false

	threeVisible := scene.NewQuad(scene.ColorRed, v(-1, -1, 5), v(1, -1, 5), v(1, 1, 5), v(-1, 1, -5))
	twoVisible := scene.NewQuad(scene.ColorBlue, v(-1, -1, 5), v(1, -1, 5), v(1, 1, -5), v(-1, 1, -5))
	halfLine := scene.NewLine(v(0, 0, 5), v(0, 0, -5), scene.ColorGreen)
	line := scene.NewLine(v(0, 0, 5), v(1, 0, 5), scene.ColorGreen)

	var list DrawList
	stats, err := r.Render(scene.New(threeVisible, twoVisible, halfLine, line), NewCamera(math3d.Vec3{}), &list)
	require.NoError(t, err)
	assert.Equal(t, Stats{Primitives: 4, Drawn: 2, Skipped: 2}, stats)

	require.Len(t, list.Commands, 2)
	var fill, stroke Command
	for _, c := range list.Commands {
		if c.Op == OpFill {
			fill = c
		} else {
			stroke = c
		}
	}
	assert.Equal(t, scene.ColorRed, fill.Color)
	assert.Len(t, fill.Points, 3)
	assert.Equal(t, scene.ColorGreen, stroke.Color)
	assert.False(t, stroke.Closed)
}

func TestRenderDoesNotMutateScene(t *testing.T) {
	r := pinholeRenderer()
	sc := scene.New(square(10, scene.ColorRed))
	before := sc.Clone()

	cam := NewCamera(math3d.V3(1, 2, -3))
	cam.SetRotation(0.3, 0.2, 0.1)
	_, err := r.Render(sc, cam, &DrawList{})
	require.NoError(t, err)
	assert.Equal(t, before, sc)
}

func TestTransformKeepsVertexOrder(t *testing.T) {
	r := pinholeRenderer()
	sc := scene.New(square(10, scene.ColorRed), square(3, scene.ColorBlue))
	cam := NewCamera(math3d.V3(0, 0, -2))

	ts := r.Transform(sc, cam)
	require.Len(t, ts, 2)
	assert.Equal(t, 0, ts[0].Index)
	for _, tr := range ts {
		require.Len(t, tr.View, len(tr.Prim.Verts))
		for i, v := range tr.Prim.Verts {
			assert.Equal(t, cam.ToCamera(v), tr.View[i])
		}
	}
	assert.Equal(t, 12.0, ts[0].Depth)
}

func TestDrawListReplay(t *testing.T) {
	var src, dst DrawList
	pts := []math3d.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	src.FillPolygon(pts, scene.ColorRed)
	src.StrokePolyline(pts, scene.ColorBlack, true)
	pts[0].X = 9

	src.Replay(&dst)
	assert.Equal(t, src.Commands, dst.Commands)
	assert.Equal(t, 0.0, dst.Commands[0].Points[0].X)
}

func BenchmarkRenderFigure(b *testing.B) {
	p := NewProjector(1200, 800, 10)
	p.PixelsPerUnit = 100
	r := NewRenderer(p, DefaultLambert())
	sc := scene.New(scene.NewFigure(scene.ColorWhite).Triangles(math3d.Vec3{})...)
	cam := NewCamera(math3d.V3(0, 0, -8))
	var list DrawList

	for b.Loop() {
		list.Reset()
		_, _ = r.Render(sc, cam, &list)
	}
}
