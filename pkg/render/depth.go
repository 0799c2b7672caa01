package render

import (
	"slices"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/scene"
)

// Transformed is a primitive after the camera transform. It lives for a
// single render pass.
type Transformed struct {
	Prim *scene.Primitive
	// Index is the primitive's position in the scene.
	Index int
	// View holds the camera-space vertices in primitive order.
	View []math3d.Vec3
	// Depth is the mean camera-space Z.
	Depth float64
}

// World returns the untransformed vertices.
func (t *Transformed) World() []math3d.Vec3 {
	return t.Prim.Verts
}

// DepthKey returns the mean Z of verts.
func DepthKey(verts []math3d.Vec3) float64 {
	if len(verts) == 0 {
		return 0
	}
	var sum float64
	for _, v := range verts {
		sum += v.Z
	}
	return sum / float64(len(verts))
}

// SortBackToFront orders ts farthest first by descending Depth. Equal
// depths keep their scene order.
func SortBackToFront(ts []Transformed) {
	slices.SortStableFunc(ts, func(a, b Transformed) int {
		switch {
		case a.Depth > b.Depth:
			return -1
		case a.Depth < b.Depth:
			return 1
		default:
			return 0
		}
	})
}
