package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/scene"
	"golang.org/x/image/vector"
)

// Framebuffer is an RGBA image that implements Canvas. Polygons are
// filled with anti-aliased coverage, strokes are one-pixel Bresenham
// lines.
type Framebuffer struct {
	Width  int
	Height int

	img *image.RGBA
	ras *vector.Rasterizer
}

// NewFramebuffer creates a framebuffer of the given size. For terminal
// output the height should be twice the number of rows.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:    vector.NewRasterizer(width, height),
	}
}

// Resize reallocates the buffer when the size changes.
func (fb *Framebuffer) Resize(width, height int) {
	if width == fb.Width && height == fb.Height {
		return
	}
	*fb = *NewFramebuffer(width, height)
}

// Image returns the backing image. It is overwritten by later draws.
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// Clear fills the framebuffer with a solid colour.
func (fb *Framebuffer) Clear(c color.RGBA) {
	draw.Draw(fb.img, fb.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Gradient fills rows [y0, y1) blending from top to bottom.
func (fb *Framebuffer) Gradient(y0, y1 int, top, bottom color.RGBA) {
	span := y1 - y0
	if span <= 0 {
		return
	}
	for y := y0; y < y1; y++ {
		t := float64(y-y0) / float64(span)
		c := color.RGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 255,
		}
		fb.FillRect(0, y, fb.Width, 1, c)
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// FillRect fills a w×h rectangle at (x, y), clipped to the buffer.
func (fb *Framebuffer) FillRect(x, y, w, h int, c color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(fb.img.Bounds())
	draw.Draw(fb.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// SetPixel sets a pixel. Out of bounds writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.img.SetRGBA(x, y, c)
}

// GetPixel returns the colour at (x, y), or transparent black out of
// bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.img.RGBAAt(x, y)
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's
// algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// FillPolygon implements Canvas.
func (fb *Framebuffer) FillPolygon(pts []math3d.Vec2, c scene.Color) {
	if len(pts) < 3 {
		return
	}
	fb.ras.Reset(fb.Width, fb.Height)
	fb.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		fb.ras.LineTo(float32(p.X), float32(p.Y))
	}
	fb.ras.ClosePath()
	fb.ras.Draw(fb.img, fb.img.Bounds(), image.NewUniform(c), image.Point{})
}

// StrokePolyline implements Canvas.
func (fb *Framebuffer) StrokePolyline(pts []math3d.Vec2, c scene.Color, closed bool) {
	for i := 1; i < len(pts); i++ {
		fb.strokeSegment(pts[i-1], pts[i], c)
	}
	if closed && len(pts) > 2 {
		fb.strokeSegment(pts[len(pts)-1], pts[0], c)
	}
}

func (fb *Framebuffer) strokeSegment(a, b math3d.Vec2, c scene.Color) {
	x0, y0 := a.Round()
	x1, y1 := b.Round()
	fb.DrawLine(x0, y0, x1, y1, c)
}
