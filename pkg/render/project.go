package render

import (
	"fmt"

	"github.com/taigrr/painter/pkg/math3d"
)

// Mode selects the perspective divide.
type Mode uint8

const (
	// Offset scales by Focal/(Focal+z). The eye sits Focal units behind
	// the camera origin, so points with small negative z stay visible.
	Offset Mode = iota
	// Pinhole scales by Focal/z and rejects z <= Near.
	Pinhole
)

func (m Mode) String() string {
	switch m {
	case Offset:
		return "offset"
	case Pinhole:
		return "pinhole"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode converts a config name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "offset", "":
		return Offset, nil
	case "pinhole":
		return Pinhole, nil
	default:
		return 0, fmt.Errorf("render: unknown projection mode %q", s)
	}
}

// Projector maps camera-space points to pixels.
type Projector struct {
	Width, Height int
	Focal         float64
	PixelsPerUnit float64
	Mode          Mode
	// Near is the closest visible depth in Pinhole mode.
	Near float64
	// Far rejects deeper points when > 0.
	Far float64
	// CullOffscreen rejects points more than Margin pixels outside the
	// screen.
	CullOffscreen bool
	Margin        float64
}

// NewProjector returns an Offset projector at one pixel per unit.
func NewProjector(width, height int, focal float64) Projector {
	return Projector{
		Width:         width,
		Height:        height,
		Focal:         focal,
		PixelsPerUnit: 1,
		Near:          0.1,
		Margin:        100,
	}
}

// Project maps camera-space v to screen coordinates. ok is false when the
// point is behind or too close to the eye, beyond Far, or culled off screen.
func (p Projector) Project(v math3d.Vec3) (math3d.Vec2, bool) {
	if p.Far > 0 && v.Z > p.Far {
		return math3d.Vec2{}, false
	}

	var scale float64
	switch p.Mode {
	case Pinhole:
		if v.Z <= p.Near {
			return math3d.Vec2{}, false
		}
		scale = p.Focal / v.Z
	default:
		d := p.Focal + v.Z
		if d <= 0 {
			return math3d.Vec2{}, false
		}
		scale = p.Focal / d
	}

	s := scale * p.PixelsPerUnit
	pt := math3d.V2(
		float64(p.Width)/2+v.X*s,
		float64(p.Height)/2-v.Y*s,
	)

	if p.CullOffscreen {
		m := p.Margin
		if pt.X < -m || pt.X > float64(p.Width)+m || pt.Y < -m || pt.Y > float64(p.Height)+m {
			return math3d.Vec2{}, false
		}
	}
	return pt, true
}
