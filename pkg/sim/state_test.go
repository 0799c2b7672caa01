package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
	"github.com/taigrr/painter/pkg/scene"
)

func newTestState(t *testing.T, s Scenario) *State {
	t.Helper()
	st, err := NewState(Options{
		Scenario: s,
		Width:    400,
		Height:   300,
		Runner:   DefaultRunnerConfig(),
		Model:    scene.New(scene.Cube(math3d.Vec3{}, 2, scene.ColorGreen)...),
	})
	require.NoError(t, err)
	return st
}

func TestParseScenario(t *testing.T) {
	for _, s := range Scenarios {
		got, err := ParseScenario(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.NotEmpty(t, s.Describe())
	}
	_, err := ParseScenario("tetris")
	assert.Error(t, err)
}

func TestModelNeedsMesh(t *testing.T) {
	_, err := NewState(Options{Scenario: ScenarioModel, Width: 10, Height: 10})
	assert.Error(t, err)
}

func TestEveryScenarioRenders(t *testing.T) {
	for _, s := range Scenarios {
		t.Run(string(s), func(t *testing.T) {
			st := newTestState(t, s)
			for range 5 {
				st.Advance(Input{Yaw: 0.01}, tick)
			}

			fb := render.NewFramebuffer(400, 300)
			st.Paint(fb)
			r := render.NewRenderer(st.Projector, st.Shader)
			stats, err := r.Render(st.Scene(), st.Camera, fb)
			require.NoError(t, err)
			assert.Positive(t, stats.Drawn)
			assert.NotEmpty(t, st.Status())
		})
	}
}

func TestHouseSelectAndMove(t *testing.T) {
	st := newTestState(t, ScenarioHouse)
	st.Advance(Input{Select: 2}, tick)
	assert.Equal(t, 1, st.Selected)

	for range 100 {
		st.Advance(Input{Move: math3d.V3(1, 1, 0)}, tick)
	}
	assert.Equal(t, math3d.V3(8, 8, 5), st.People[1].Position)
	assert.Equal(t, math3d.V3(-5, 0, -5), st.People[0].Position)
}

func TestFigureWalksWhileMoving(t *testing.T) {
	st := newTestState(t, ScenarioFigure)
	st.Advance(Input{Move: math3d.V3(0, 0, 1)}, tick)
	assert.True(t, st.Walk.Walking)
	assert.InDelta(t, WalkStep, st.Walk.Phase, 1e-12)

	for range walkHoldTicks + 1 {
		st.Advance(Input{}, tick)
	}
	assert.False(t, st.Walk.Walking)
}

func TestFigureJump(t *testing.T) {
	st := newTestState(t, ScenarioFigure)
	st.Advance(Input{Jump: true}, tick)
	assert.True(t, st.Jump.Active)
	assert.Positive(t, st.Jump.Height)

	for range 120 {
		st.Advance(Input{}, tick)
	}
	assert.False(t, st.Jump.Active)
}

// figureParts splits a figure scene into the lowest figure vertex and the
// floor grid lines.
func figureParts(sc *scene.Scene) (float64, []scene.Primitive) {
	lowest := math.Inf(1)
	var grid []scene.Primitive
	for _, p := range sc.Prims {
		if p.Kind == scene.Line {
			grid = append(grid, p)
			continue
		}
		for _, v := range p.Verts {
			lowest = min(lowest, v.Y)
		}
	}
	return lowest, grid
}

func TestFigureJumpLeavesFloor(t *testing.T) {
	st := newTestState(t, ScenarioFigure)
	feet, grid := figureParts(st.Scene())
	require.NotEmpty(t, grid)
	floor := grid[0].Verts[0].Y

	st.Advance(Input{Jump: true}, tick)
	require.Positive(t, st.Jump.Height)

	jumped, grid2 := figureParts(st.Scene())
	assert.InDelta(t, floor, grid2[0].Verts[0].Y, 1e-12)
	assert.InDelta(t, feet-floor+st.Jump.Height, jumped-floor, 1e-9)
}

func TestFigureWalksOverFixedFloor(t *testing.T) {
	st := newTestState(t, ScenarioFigure)
	_, before := figureParts(st.Scene())
	for range 30 {
		st.Advance(Input{Move: math3d.V3(0, 0, 1)}, tick)
	}
	require.Greater(t, st.Actor.Position.Z, 0.0)

	_, after := figureParts(st.Scene())
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].Verts, after[i].Verts)
	}

	head := scene.New(st.Figure.Triangles(math3d.Vec3{})...)
	moved := st.Scene()
	assert.InDelta(t, head.Prims[0].Verts[0].Z+st.Actor.Position.Z, moved.Prims[0].Verts[0].Z, 1e-9)
}

func TestRunnerInput(t *testing.T) {
	st := newTestState(t, ScenarioRunner)
	st.Advance(Input{Left: true}, tick)
	assert.Equal(t, 0, st.Runner.Lane)
	assert.Equal(t, st.Runner.X, st.Camera.Position.X)

	st.Runner.Over = true
	st.Advance(Input{Restart: true}, tick)
	assert.False(t, st.Runner.Over)
	assert.Equal(t, 1, st.Runner.Lane)
}

func TestResizeKeepsFit(t *testing.T) {
	st := newTestState(t, ScenarioRoom)
	ppu := st.Projector.PixelsPerUnit
	st.Resize(800, 600)
	assert.Equal(t, 800, st.Projector.Width)
	assert.InDelta(t, ppu*2, st.Projector.PixelsPerUnit, 1e-12)
}

func TestSetView(t *testing.T) {
	st := newTestState(t, ScenarioRoom)
	st.SetView(3, 0.5)
	assert.Equal(t, math3d.Euler{X: math.Pi / 2, Y: 0.5}, st.Orbit.Euler())

	house := newTestState(t, ScenarioHouse)
	house.SetView(0.2, 0.4)
	assert.Equal(t, math3d.Euler{X: 0.2, Y: 0.4}, house.Camera.Rotation)
}
