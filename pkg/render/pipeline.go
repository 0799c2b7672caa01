package render

import (
	"errors"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/scene"
)

// ErrNilScene is returned when Render is called without a scene.
var ErrNilScene = errors.New("render: nil scene")

// Stats counts the outcome of one render pass.
type Stats struct {
	Primitives int
	Drawn      int
	// Skipped primitives had too few visible vertices.
	Skipped int
}

// Renderer runs the transform, project, sort, shade and draw stages.
// It reuses scratch buffers between frames and is not safe for concurrent
// use.
type Renderer struct {
	Projector Projector
	Shader    Shader
	// Outline strokes each filled face in OutlineColor.
	Outline      bool
	OutlineColor scene.Color

	ts   []Transformed
	view []math3d.Vec3
	pts  []math3d.Vec2
}

// NewRenderer creates a renderer with black outlines.
func NewRenderer(p Projector, s Shader) *Renderer {
	return &Renderer{
		Projector:    p,
		Shader:       s,
		Outline:      true,
		OutlineColor: scene.ColorBlack,
	}
}

// Render draws sc as seen from cam onto dst, farthest primitive first.
func (r *Renderer) Render(sc *scene.Scene, cam *Camera, dst Canvas) (Stats, error) {
	if sc == nil {
		return Stats{}, ErrNilScene
	}
	if cam == nil {
		cam = &Camera{}
	}

	stats := Stats{Primitives: sc.Len()}
	r.transform(sc, cam)
	SortBackToFront(r.ts)

	for i := range r.ts {
		if r.draw(&r.ts[i], dst) {
			stats.Drawn++
		} else {
			stats.Skipped++
		}
	}
	return stats, nil
}

// Transform returns the camera-space primitives of sc sorted back to
// front, without drawing. The slice is reused by the next call.
func (r *Renderer) Transform(sc *scene.Scene, cam *Camera) []Transformed {
	if sc == nil {
		return nil
	}
	if cam == nil {
		cam = &Camera{}
	}
	r.transform(sc, cam)
	SortBackToFront(r.ts)
	return r.ts
}

func (r *Renderer) transform(sc *scene.Scene, cam *Camera) {
	total := 0
	for i := range sc.Prims {
		total += len(sc.Prims[i].Verts)
	}
	if cap(r.view) < total {
		r.view = make([]math3d.Vec3, total)
	}
	r.view = r.view[:total]
	r.ts = r.ts[:0]

	off := 0
	for i := range sc.Prims {
		p := &sc.Prims[i]
		view := r.view[off : off+len(p.Verts) : off+len(p.Verts)]
		off += len(p.Verts)
		for j, v := range p.Verts {
			view[j] = cam.ToCamera(v)
		}
		r.ts = append(r.ts, Transformed{
			Prim:  p,
			Index: i,
			View:  view,
			Depth: DepthKey(view),
		})
	}
}

// draw projects and emits one primitive. It reports false when too few
// vertices are visible.
func (r *Renderer) draw(t *Transformed, dst Canvas) bool {
	r.pts = r.pts[:0]
	for _, v := range t.View {
		if pt, ok := r.Projector.Project(v); ok {
			r.pts = append(r.pts, pt)
		}
	}

	if t.Prim.Kind == scene.Line {
		if len(r.pts) < 2 {
			return false
		}
		dst.StrokePolyline(r.pts, t.Prim.Color, false)
		return true
	}

	if len(r.pts) < 3 {
		return false
	}
	shader := r.Shader
	if shader == nil {
		shader = Unlit{}
	}
	dst.FillPolygon(r.pts, shader.Shade(t))
	if r.Outline {
		dst.StrokePolyline(r.pts, r.OutlineColor, true)
	}
	return true
}
