// Package sim holds the per-frame state the renderer consumes: actor
// poses, jump arcs, the rail runner game and the fixed-tick driver that
// advances them.
package sim

import (
	"math"

	"github.com/taigrr/painter/pkg/scene"
)

const (
	// WalkStep is the phase added per tick while walking.
	WalkStep = 0.1
	// LegAmplitude and ArmAmplitude are the peak swings in radians.
	LegAmplitude = 0.5
	ArmAmplitude = 0.3
)

// Walk is a walking cycle driven by an accumulating phase.
type Walk struct {
	Phase   float64
	Walking bool
}

// Step advances the phase by one tick while walking.
func (w *Walk) Step() {
	if w.Walking {
		w.Phase += WalkStep
	}
}

// Swing returns the leg and arm angles at phase. Arms swing against the
// legs. Swing(p) == Swing(p + 2π).
func Swing(phase float64) (leg, arm float64) {
	s := math.Sin(phase)
	return s * LegAmplitude, -s * ArmAmplitude
}

// Apply poses f for the current phase. The pose is rebuilt from rest each
// time, so repeated calls never drift.
func (w *Walk) Apply(f *scene.Figure) {
	f.Pose(Swing(w.Phase))
}
