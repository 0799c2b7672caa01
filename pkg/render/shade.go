package render

import (
	"math"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/scene"
)

// Shader picks the fill colour of a face. Lines are always drawn in their
// own colour and never reach a Shader.
type Shader interface {
	Shade(t *Transformed) scene.Color
}

// Unlit fills every face with its base colour.
type Unlit struct{}

// Shade implements Shader.
func (Unlit) Shade(t *Transformed) scene.Color {
	return t.Prim.Color
}

// Flat scales the base colour by a per-surface factor and adds a bias:
// channel = min(255, c*factor + bias).
type Flat struct {
	FloorFactor float64
	WallFactor  float64
	Bias        [3]float64
}

// DefaultFlat lights floors at 0.8 and walls at 0.6 under a warm bias.
func DefaultFlat() Flat {
	return Flat{FloorFactor: 0.8, WallFactor: 0.6, Bias: [3]float64{50, 50, 30}}
}

// Shade implements Shader.
func (f Flat) Shade(t *Transformed) scene.Color {
	k := f.WallFactor
	if t.Prim.Surface == scene.Floor {
		k = f.FloorFactor
	}
	c := t.Prim.Color
	return scene.RGB(
		clamp8(float64(c.R)*k+f.Bias[0]),
		clamp8(float64(c.G)*k+f.Bias[1]),
		clamp8(float64(c.B)*k+f.Bias[2]),
	)
}

// Lambert is ambient plus diffuse lighting from a fixed direction:
// channel = clamp(ambient + max(0, n·light)*diffuse, 0, 255).
// The normal comes from the world-space vertices, so lighting stays fixed
// to the scene as the camera moves.
type Lambert struct {
	Ambient scene.Color
	Diffuse scene.Color
	// Light must be normalized.
	Light math3d.Vec3
	// Tint multiplies the diffuse term by the primitive colour.
	Tint bool
}

// DefaultLambert is a grey ambient 50 and diffuse 200 lit along (-1,-1,-1).
func DefaultLambert() Lambert {
	return Lambert{
		Ambient: scene.RGB(50, 50, 50),
		Diffuse: scene.RGB(200, 200, 200),
		Light:   math3d.V3(-1, -1, -1).Normalize(),
	}
}

// Shade implements Shader. Degenerate faces get ambient only.
func (l Lambert) Shade(t *Transformed) scene.Color {
	w := t.World()
	if len(w) < 3 {
		return l.Ambient
	}
	return l.Color(FaceNormal(w[0], w[1], w[2]), t.Prim.Color)
}

// Color lights a face with unit normal n and base colour base.
func (l Lambert) Color(n math3d.Vec3, base scene.Color) scene.Color {
	d := math.Max(0, n.Dot(l.Light))
	dr, dg, db := float64(l.Diffuse.R), float64(l.Diffuse.G), float64(l.Diffuse.B)
	if l.Tint {
		dr *= float64(base.R) / 255
		dg *= float64(base.G) / 255
		db *= float64(base.B) / 255
	}
	return scene.RGB(
		clamp8(float64(l.Ambient.R)+d*dr),
		clamp8(float64(l.Ambient.G)+d*dg),
		clamp8(float64(l.Ambient.B)+d*db),
	)
}

// FaceNormal returns normalize((b-a) × (c-a)), or the zero vector for a
// degenerate face.
func FaceNormal(a, b, c math3d.Vec3) math3d.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// clamp8 truncates v to a channel value in [0, 255].
func clamp8(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
