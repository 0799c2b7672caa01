package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taigrr/painter/pkg/scene"
)

func TestSwing(t *testing.T) {
	leg, arm := Swing(math.Pi / 2)
	assert.InDelta(t, 0.5, leg, 1e-12)
	assert.InDelta(t, -0.3, arm, 1e-12)

	leg, arm = Swing(0)
	assert.Zero(t, leg)
	assert.Zero(t, arm)
}

func TestSwingPeriodic(t *testing.T) {
	for _, p := range []float64{0, 0.3, 1, 2.5, 4} {
		l1, a1 := Swing(p)
		l2, a2 := Swing(p + 2*math.Pi)
		assert.InDelta(t, l1, l2, 1e-9)
		assert.InDelta(t, a1, a2, 1e-9)
	}
}

func TestWalkStep(t *testing.T) {
	var w Walk
	w.Step()
	assert.Zero(t, w.Phase)

	w.Walking = true
	for range 10 {
		w.Step()
	}
	assert.InDelta(t, 1.0, w.Phase, 1e-9)
}

func TestWalkApplyPeriodic(t *testing.T) {
	f := scene.NewFigure(scene.ColorWhite)
	start, end := f.LimbRange(scene.LeftLeg)

	w := Walk{Phase: 1}
	w.Apply(f)
	first := f.GetVertex(end - 1)

	w.Phase += 2 * math.Pi
	w.Apply(f)
	again := f.GetVertex(end - 1)

	assert.InDelta(t, first.X, again.X, 1e-9)
	assert.InDelta(t, first.Y, again.Y, 1e-9)
	assert.InDelta(t, first.Z, again.Z, 1e-9)

	rest := scene.NewFigure(scene.ColorWhite)
	w.Phase = 0
	w.Apply(f)
	for i := start; i < end; i++ {
		assert.InDelta(t, rest.GetVertex(i).X, f.GetVertex(i).X, 1e-9)
		assert.InDelta(t, rest.GetVertex(i).Y, f.GetVertex(i).Y, 1e-9)
	}
}
