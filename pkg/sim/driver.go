package sim

import (
	"context"
	"time"
)

// DefaultInterval is one tick at roughly 60 frames per second.
const DefaultInterval = 16 * time.Millisecond

// Driver runs update then render on a fixed tick from a single goroutine,
// so the two never overlap.
type Driver struct {
	Interval time.Duration
	Update   func(dt float64)
	Render   func() error
}

// Step runs one tick synchronously.
func (d *Driver) Step() error {
	if d.Update != nil {
		d.Update(d.interval().Seconds())
	}
	if d.Render != nil {
		return d.Render()
	}
	return nil
}

func (d *Driver) interval() time.Duration {
	if d.Interval <= 0 {
		return DefaultInterval
	}
	return d.Interval
}

// Run ticks until ctx is done or Render fails. Ticks missed while a frame
// was slow are dropped rather than queued.
func (d *Driver) Run(ctx context.Context) error {
	t := time.NewTicker(d.interval())
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := d.Step(); err != nil {
				return err
			}
		}
	}
}
