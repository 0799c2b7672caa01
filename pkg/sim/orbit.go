package sim

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/painter/pkg/math3d"
)

// axis tracks one rotation angle whose velocity springs back to rest.
type axis struct {
	Angle    float64
	Velocity float64
	spring   harmonica.Spring
	accel    float64
}

func newAxis(fps int) axis {
	// Critically damped so a flick coasts to a stop without overshoot.
	return axis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *axis) step() {
	a.Angle += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// Orbit turns an object in response to impulses and lets it coast.
type Orbit struct {
	Pitch, Yaw axis
	fps        int
}

// NewOrbit creates an orbit updated fps times per second.
func NewOrbit(fps int) *Orbit {
	return &Orbit{Pitch: newAxis(fps), Yaw: newAxis(fps), fps: fps}
}

// Impulse adds angular velocity in radians per tick.
func (o *Orbit) Impulse(pitch, yaw float64) {
	o.Pitch.Velocity += pitch
	o.Yaw.Velocity += yaw
}

// Step advances one tick. Pitch stops dead at ±π/2.
func (o *Orbit) Step() {
	o.Pitch.step()
	o.Yaw.step()
	if math.Abs(o.Pitch.Angle) > math.Pi/2 {
		o.Pitch.Angle = math.Copysign(math.Pi/2, o.Pitch.Angle)
		o.Pitch.Velocity, o.Pitch.accel = 0, 0
	}
}

// Euler returns the current pitch and yaw.
func (o *Orbit) Euler() math3d.Euler {
	return math3d.Euler{X: o.Pitch.Angle, Y: o.Yaw.Angle}
}

// Reset stops and re-centres the orbit.
func (o *Orbit) Reset() {
	o.Pitch = newAxis(o.fps)
	o.Yaw = newAxis(o.fps)
}
