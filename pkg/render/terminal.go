package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw paints the framebuffer onto a terminal screen. Each cell shows two
// pixel rows as an upper half block with the top pixel as foreground and
// the bottom pixel as background, so the framebuffer should be twice as
// tall as area.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		y := (row - area.Min.Y) * 2
		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: opaque(fb.GetPixel(x, y)),
					Bg: opaque(fb.GetPixel(x, y+1)),
				},
			})
		}
	}
}

// opaque maps fully transparent pixels to the terminal default colour.
func opaque(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}
