package sim

// Jump integrates a vertical hop above the ground at height zero.
type Jump struct {
	Height   float64
	Velocity float64
	Active   bool
}

// Trigger starts a jump with upward speed impulse. It does nothing while
// already airborne and reports whether a jump started.
func (j *Jump) Trigger(impulse float64) bool {
	if j.Active {
		return false
	}
	j.Active = true
	j.Velocity = impulse
	return true
}

// Step applies gravity for dt, then moves by the new velocity. Landing
// clamps height to zero and ends the jump.
func (j *Jump) Step(gravity, dt float64) {
	if !j.Active {
		return
	}
	j.Velocity -= gravity * dt
	j.Height += j.Velocity * dt
	if j.Height <= 0 {
		j.Height = 0
		j.Velocity = 0
		j.Active = false
	}
}

// Reset puts the actor back on the ground.
func (j *Jump) Reset() {
	*j = Jump{}
}
