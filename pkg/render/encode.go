package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Format is an output image encoding.
type Format string

const (
	// FormatPNG is lossless PNG.
	FormatPNG Format = "png"
	// FormatWebP is lossless WebP.
	FormatWebP Format = "webp"
)

// FormatFromPath picks a format by file extension, defaulting to PNG.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		return FormatWebP
	}
	return FormatPNG
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG, "":
		return png.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	default:
		return fmt.Errorf("render: unsupported format %q", f)
	}
}

// SaveImage writes img to path, choosing the format from the extension.
func SaveImage(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", path, cerr)
		}
	}()

	if err := Encode(f, img, FormatFromPath(path)); err != nil {
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return nil
}

// Downsample shrinks img by an integer factor with Catmull-Rom filtering,
// for rendering at a multiple of the output size.
func Downsample(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()/factor, b.Dy()/factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
