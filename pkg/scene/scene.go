package scene

import (
	"errors"

	"github.com/taigrr/painter/pkg/math3d"
)

// Scene is an unordered collection of primitives. The renderer reads it
// without mutating it.
type Scene struct {
	Prims []Primitive
}

// New creates a scene holding prims.
func New(prims ...Primitive) *Scene {
	return &Scene{Prims: prims}
}

// Add appends primitives.
func (s *Scene) Add(prims ...Primitive) {
	s.Prims = append(s.Prims, prims...)
}

// Extend appends every primitive of o.
func (s *Scene) Extend(o *Scene) {
	if o == nil {
		return
	}
	s.Prims = append(s.Prims, o.Prims...)
}

// Len returns the number of primitives.
func (s *Scene) Len() int {
	return len(s.Prims)
}

// Translate moves every primitive by d in place.
func (s *Scene) Translate(d math3d.Vec3) {
	for i := range s.Prims {
		s.Prims[i] = s.Prims[i].Translated(d)
	}
}

// Rotate turns every vertex about the origin by e, X then Y then Z.
func (s *Scene) Rotate(e math3d.Euler) {
	if e.IsZero() {
		return
	}
	m := math3d.EulerXYZ(e)
	for i := range s.Prims {
		for j, v := range s.Prims[i].Verts {
			s.Prims[i].Verts[j] = m.MulVec3(v)
		}
	}
}

// Clone returns a deep copy.
func (s *Scene) Clone() *Scene {
	c := &Scene{Prims: make([]Primitive, len(s.Prims))}
	for i, p := range s.Prims {
		p.Verts = append([]math3d.Vec3(nil), p.Verts...)
		c.Prims[i] = p
	}
	return c
}

// Validate checks every primitive and joins the failures.
func (s *Scene) Validate() error {
	var errs []error
	for _, p := range s.Prims {
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
