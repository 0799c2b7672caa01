package scene

import "image/color"

// Color is an opaque RGB colour; alpha is kept at 255.
type Color = color.RGBA

// RGB creates an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

var (
	ColorBlack     = RGB(0, 0, 0)
	ColorWhite     = RGB(255, 255, 255)
	ColorRed       = RGB(255, 0, 0)
	ColorGreen     = RGB(0, 255, 0)
	ColorBlue      = RGB(0, 0, 255)
	ColorYellow    = RGB(255, 255, 0)
	ColorMagenta   = RGB(255, 128, 255)
	ColorDarkGray  = RGB(64, 64, 64)
	ColorLightGray = RGB(192, 192, 192)
	ColorSky       = RGB(135, 206, 235)
	ColorGrass     = RGB(34, 139, 34)
	ColorBrown     = RGB(139, 69, 19)
	ColorSaddle    = RGB(160, 82, 45)
	ColorDarkWood  = RGB(101, 67, 33)
)

const shadeFactor = 0.7

// Darker scales every channel by 0.7.
func Darker(c Color) Color {
	return RGB(
		uint8(float64(c.R)*shadeFactor),
		uint8(float64(c.G)*shadeFactor),
		uint8(float64(c.B)*shadeFactor),
	)
}

// Brighter divides every channel by 0.7, capped at 255. Non-zero channels
// below 3 are lifted to 3 first, and pure black becomes (3, 3, 3).
func Brighter(c Color) Color {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		v := uint8(3)
		return RGB(v, v, v)
	}
	lift := func(v uint8) uint8 {
		if v == 0 {
			return 0
		}
		f := float64(max(v, 3)) / shadeFactor
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return RGB(lift(c.R), lift(c.G), lift(c.B))
}
