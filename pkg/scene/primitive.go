// Package scene describes what gets drawn: flat lists of lines, quads and
// triangles in world space, plus builders for the stock scenes.
package scene

import (
	"fmt"

	"github.com/taigrr/painter/pkg/math3d"
)

// Kind selects how a primitive is rasterized.
type Kind uint8

const (
	// Line is a two-vertex stroked segment.
	Line Kind = iota
	// Quad is a filled face of three or four vertices.
	Quad
	// Triangle is a filled three-vertex face with a lighting normal.
	Triangle
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Quad:
		return "quad"
	case Triangle:
		return "triangle"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Surface tags faces that flat shading treats differently.
type Surface uint8

const (
	// Wall is the default surface.
	Wall Surface = iota
	// Floor faces are lit more strongly by Flat.
	Floor
)

// Primitive is one drawable shape. Vertex order is fixed at construction
// and survives every pipeline stage.
type Primitive struct {
	Kind    Kind
	Verts   []math3d.Vec3
	Color   Color
	Surface Surface
}

// NewLine creates a line segment from a to b.
func NewLine(a, b math3d.Vec3, c Color) Primitive {
	return Primitive{Kind: Line, Verts: []math3d.Vec3{a, b}, Color: c}
}

// NewQuad creates a face from three or four vertices.
func NewQuad(c Color, verts ...math3d.Vec3) Primitive {
	return Primitive{Kind: Quad, Verts: verts, Color: c}
}

// NewFloor creates a quad tagged as floor.
func NewFloor(c Color, verts ...math3d.Vec3) Primitive {
	p := NewQuad(c, verts...)
	p.Surface = Floor
	return p
}

// NewTriangle creates a triangle a, b, c.
func NewTriangle(a, b, c math3d.Vec3, col Color) Primitive {
	return Primitive{Kind: Triangle, Verts: []math3d.Vec3{a, b, c}, Color: col}
}

// Validate reports whether the vertex count matches the kind.
func (p Primitive) Validate() error {
	n := len(p.Verts)
	switch p.Kind {
	case Line:
		if n != 2 {
			return fmt.Errorf("scene: line needs 2 vertices, has %d", n)
		}
	case Quad:
		if n != 3 && n != 4 {
			return fmt.Errorf("scene: quad needs 3 or 4 vertices, has %d", n)
		}
	case Triangle:
		if n != 3 {
			return fmt.Errorf("scene: triangle needs 3 vertices, has %d", n)
		}
	default:
		return fmt.Errorf("scene: unknown %v", p.Kind)
	}
	return nil
}

// Translated returns a copy of p moved by d.
func (p Primitive) Translated(d math3d.Vec3) Primitive {
	verts := make([]math3d.Vec3, len(p.Verts))
	for i, v := range p.Verts {
		verts[i] = v.Add(d)
	}
	p.Verts = verts
	return p
}
