package models

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/painter/pkg/math3d"
)

// ErrNoMeshes is returned when a document holds no triangle geometry.
var ErrNoMeshes = errors.New("models: no triangle meshes")

// GLTFLoader loads glTF/GLB documents into a Mesh.
type GLTFLoader struct {
	// FitExtent rescales the loaded mesh around the origin when > 0.
	FitExtent float64
	// DefaultColor is used for faces whose material has no base colour.
	DefaultColor color.RGBA
}

// NewGLTFLoader creates a loader that keeps the document's own scale.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		DefaultColor: color.RGBA{200, 200, 200, 255},
	}
}

// LoadGLB loads a glTF or GLB file with default options.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load reads path and returns every triangle primitive merged into one Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("models: open %s: %w", path, err)
	}

	mesh := NewMesh(filepath.Base(path))
	mesh.Colors = l.palette(doc)

	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("models: mesh %q: %w", m.Name, err)
		}
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("models: %s: %w", path, ErrNoMeshes)
	}

	if l.FitExtent > 0 {
		mesh.Fit(l.FitExtent)
	} else {
		mesh.CalculateBounds()
	}
	return mesh, nil
}

// palette converts material base colours. The last entry is the default colour.
func (l *GLTFLoader) palette(doc *gltf.Document) []color.RGBA {
	colors := make([]color.RGBA, 0, len(doc.Materials)+1)
	for _, mat := range doc.Materials {
		c := l.DefaultColor
		if mat.PBRMetallicRoughness != nil && mat.PBRMetallicRoughness.BaseColorFactor != nil {
			f := *mat.PBRMetallicRoughness.BaseColorFactor
			c = color.RGBA{unit8(f[0]), unit8(f[1]), unit8(f[2]), 255}
		}
		colors = append(colors, c)
	}
	return append(colors, l.DefaultColor)
}

func unit8(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255))
}

func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		colorIdx := len(mesh.Colors) - 1
		if prim.Material != nil && *prim.Material < len(mesh.Colors)-1 {
			colorIdx = *prim.Material
		}

		base := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, positions...)

		if prim.Indices == nil {
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.AddTriangle(base+i, base+i+1, base+i+2, colorIdx)
			}
			continue
		}

		indices, err := readIndices(doc, *prim.Indices)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			if a >= len(positions) || b >= len(positions) || c >= len(positions) {
				return fmt.Errorf("index out of range at triangle %d", i/3)
			}
			mesh.AddTriangle(base+a, base+b, base+c, colorIdx)
		}
	}
	return nil
}

func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v/%v", accessor.Type, accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	out := make([]math3d.Vec3, accessor.Count)
	for i := range out {
		off := i * stride
		out[i] = math3d.V3(
			float64(readFloat32(data[off:])),
			float64(readFloat32(data[off+4:])),
			float64(readFloat32(data[off+8:])),
		)
	}
	return out, nil
}

func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unsupported index component %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	out := make([]int, accessor.Count)
	for i := range out {
		off := i * stride
		switch size {
		case 1:
			out[i] = int(data[off])
		case 2:
			out[i] = int(binary.LittleEndian.Uint16(data[off:]))
		default:
			out[i] = int(binary.LittleEndian.Uint32(data[off:]))
		}
	}
	return out, nil
}

// accessorBytes returns the buffer slice starting at the accessor's first
// element together with the element stride.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, errors.New("accessor has no buffer view")
	}
	view := doc.BufferViews[*accessor.BufferView]
	buf := doc.Buffers[view.Buffer]
	if len(buf.Data) == 0 {
		return nil, 0, errors.New("buffer has no data")
	}

	stride := view.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	start := view.ByteOffset + accessor.ByteOffset
	end := start + stride*(accessor.Count-1) + elemSize
	if accessor.Count == 0 {
		end = start
	}
	if end > len(buf.Data) {
		return nil, 0, fmt.Errorf("accessor overruns buffer (%d > %d)", end, len(buf.Data))
	}
	return buf.Data[start:end], stride, nil
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
