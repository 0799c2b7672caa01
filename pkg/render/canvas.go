package render

import (
	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/scene"
)

// Canvas is a 2D drawing surface. Calls arrive in painter's order, so
// later calls overdraw earlier ones.
type Canvas interface {
	FillPolygon(pts []math3d.Vec2, c scene.Color)
	StrokePolyline(pts []math3d.Vec2, c scene.Color, closed bool)
}

// Op is the kind of a recorded draw call.
type Op uint8

const (
	// OpFill is a FillPolygon call.
	OpFill Op = iota
	// OpStroke is a StrokePolyline call.
	OpStroke
)

// Command is one recorded draw call.
type Command struct {
	Op     Op
	Points []math3d.Vec2
	Color  scene.Color
	Closed bool
}

// DrawList is a Canvas that records calls for later replay or inspection.
type DrawList struct {
	Commands []Command
}

// FillPolygon implements Canvas.
func (d *DrawList) FillPolygon(pts []math3d.Vec2, c scene.Color) {
	d.Commands = append(d.Commands, Command{Op: OpFill, Points: append([]math3d.Vec2(nil), pts...), Color: c})
}

// StrokePolyline implements Canvas.
func (d *DrawList) StrokePolyline(pts []math3d.Vec2, c scene.Color, closed bool) {
	d.Commands = append(d.Commands, Command{Op: OpStroke, Points: append([]math3d.Vec2(nil), pts...), Color: c, Closed: closed})
}

// Reset drops recorded calls, keeping capacity.
func (d *DrawList) Reset() {
	d.Commands = d.Commands[:0]
}

// Fills returns only the fill commands in order.
func (d *DrawList) Fills() []Command {
	var out []Command
	for _, c := range d.Commands {
		if c.Op == OpFill {
			out = append(out, c)
		}
	}
	return out
}

// Replay issues every recorded call on dst in order.
func (d *DrawList) Replay(dst Canvas) {
	for _, c := range d.Commands {
		switch c.Op {
		case OpFill:
			dst.FillPolygon(c.Points, c.Color)
		case OpStroke:
			dst.StrokePolyline(c.Points, c.Color, c.Closed)
		}
	}
}
