package render

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/painter/pkg/scene"
	"golang.org/x/image/webp"
)

func testImage() *image.RGBA {
	fb := NewFramebuffer(8, 8)
	fb.Clear(scene.ColorSky)
	fb.FillRect(0, 4, 8, 4, scene.ColorGrass)
	return fb.Image()
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatWebP, FormatFromPath("out/frame.WEBP"))
	assert.Equal(t, FormatPNG, FormatFromPath("frame.png"))
	assert.Equal(t, FormatPNG, FormatFromPath("frame"))
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testImage(), FormatPNG))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	r, g, b, _ := img.At(1, 6).RGBA()
	assert.Equal(t, []uint32{34, 139, 34}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestEncodeWebP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testImage(), FormatWebP))

	img, err := webp.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, []uint32{135, 206, 235}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestEncodeUnknownFormat(t *testing.T) {
	assert.Error(t, Encode(&bytes.Buffer{}, testImage(), Format("bmp")))
}

func TestSaveImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, SaveImage(path, testImage()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, SaveImage(filepath.Join(t.TempDir(), "missing", "x.png"), testImage()))
}

func TestDownsample(t *testing.T) {
	img := testImage()
	assert.Same(t, img, Downsample(img, 1))

	half := Downsample(img, 2)
	assert.Equal(t, image.Rect(0, 0, 4, 4), half.Bounds())
	sky, grass := half.RGBAAt(1, 0), half.RGBAAt(1, 3)
	assert.Greater(t, sky.B, uint8(200))
	assert.Less(t, grass.B, uint8(100))
	assert.Greater(t, grass.G, grass.R)
}
