package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taigrr/painter/pkg/math3d"
)

func TestProjectCenter(t *testing.T) {
	for _, mode := range []Mode{Offset, Pinhole} {
		t.Run(mode.String(), func(t *testing.T) {
			p := NewProjector(800, 600, 500)
			p.Mode = mode
			cam := NewCamera(math3d.V3(0, 0, 0))

			pt, ok := p.Project(cam.ToCamera(math3d.V3(0, 0, 500)))
			assert.True(t, ok)
			assert.Equal(t, math3d.V2(400, 300), pt)
		})
	}
}

func TestProjectScale(t *testing.T) {
	tests := []struct {
		name string
		p    Projector
		v    math3d.Vec3
		want math3d.Vec2
	}{
		{
			name: "offset halves at focal depth",
			p:    NewProjector(800, 600, 500),
			v:    math3d.V3(100, 50, 500),
			want: math3d.V2(450, 275),
		},
		{
			name: "offset at origin is unscaled",
			p:    NewProjector(800, 600, 500),
			v:    math3d.V3(-100, -100, 0),
			want: math3d.V2(300, 400),
		},
		{
			name: "pinhole rails camera",
			p:    Projector{Width: 800, Height: 600, Focal: 8, PixelsPerUnit: 50, Mode: Pinhole, Near: 0.1},
			v:    math3d.V3(3, 2, 8),
			want: math3d.V2(550, 200),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.p.Project(tt.v)
			assert.True(t, ok)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestProjectVisibility(t *testing.T) {
	pin := Projector{Width: 800, Height: 600, Focal: 500, PixelsPerUnit: 1, Mode: Pinhole, Near: 0.1}
	off := NewProjector(800, 600, 500)

	tests := []struct {
		name string
		p    Projector
		z    float64
		want bool
	}{
		{"pinhole behind", pin, -5, false},
		{"pinhole at eye", pin, 0, false},
		{"pinhole inside near", pin, 0.1, false},
		{"pinhole just past near", pin, 0.2, true},
		{"offset at eye plane", off, -500, false},
		{"offset behind eye", off, -600, false},
		{"offset just ahead of eye", off, -499, true},
		{"offset negative z ahead of eye", off, -100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.p.Project(math3d.V3(0, 0, tt.z))
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestProjectFarAndMargin(t *testing.T) {
	p := Projector{Width: 800, Height: 600, Focal: 8, PixelsPerUnit: 50, Mode: Pinhole, Near: 0.1, Far: 100}

	_, ok := p.Project(math3d.V3(0, 0, 100))
	assert.True(t, ok)
	_, ok = p.Project(math3d.V3(0, 0, 100.5))
	assert.False(t, ok)

	// x = 400 + 10*50 = 900: inside the 100px margin
	_, ok = p.Project(math3d.V3(10, 0, 8))
	assert.True(t, ok)

	p.CullOffscreen = true
	p.Margin = 100
	_, ok = p.Project(math3d.V3(10, 0, 8))
	assert.True(t, ok)
	// x = 400 + 11*50 = 950: beyond it
	_, ok = p.Project(math3d.V3(11, 0, 8))
	assert.False(t, ok)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("pinhole")
	assert.NoError(t, err)
	assert.Equal(t, Pinhole, m)

	m, err = ParseMode("")
	assert.NoError(t, err)
	assert.Equal(t, Offset, m)

	_, err = ParseMode("fisheye")
	assert.Error(t, err)
}
