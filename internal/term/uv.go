package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/painter/pkg/render"
)

// UV presents through an ultraviolet terminal in the alternate screen.
type UV struct {
	term       *uv.Terminal
	cols, rows int
}

// NewUV takes over the controlling terminal.
func NewUV() (*UV, error) {
	t := uv.DefaultTerminal()
	cols, rows, err := t.GetSize()
	if err != nil {
		return nil, fmt.Errorf("term: get size: %w", err)
	}
	if err := t.Start(); err != nil {
		return nil, fmt.Errorf("term: start: %w", err)
	}
	t.EnterAltScreen()
	t.HideCursor()
	if err := t.Resize(cols, rows); err != nil {
		return nil, fmt.Errorf("term: resize: %w", err)
	}
	return &UV{term: t, cols: cols, rows: rows}, nil
}

// Size returns the frame size in pixels, two per terminal row.
func (p *UV) Size() (int, int) {
	return PixelSize(p.cols, p.rows)
}

// Listen forwards resizes and bound keys to h until ctx is done.
func (p *UV) Listen(ctx context.Context, h Handler) {
	events := p.term.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				p.cols, p.rows = ev.Width, ev.Height
				p.term.Erase()
				_ = p.term.Resize(ev.Width, ev.Height)
				h.resize(ev.Width, ev.Height)
			case uv.KeyPressEvent:
				for _, b := range bindings {
					if ev.MatchString(b.keys...) {
						h.press(b.action)
						break
					}
				}
			}
		}
	}
}

// Present draws fb and the status line, then flushes the screen.
func (p *UV) Present(fb *render.Framebuffer, status string) error {
	p.term.Draw(Frame(fb, status))
	if err := p.term.Display(); err != nil {
		return fmt.Errorf("term: display: %w", err)
	}
	return nil
}

// Close restores the terminal.
func (p *UV) Close() error {
	p.term.ExitAltScreen()
	p.term.ShowCursor()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return p.term.Shutdown(ctx)
}

var (
	statusFg = color.RGBA{255, 255, 255, 255}
	statusBg = color.RGBA{0, 0, 0, 255}
)

// Frame draws fb in half blocks with status on the top row.
func Frame(fb *render.Framebuffer, status string) uv.Drawable {
	return uv.DrawableFunc(func(scr uv.Screen, area uv.Rectangle) {
		fb.Draw(scr, area)
		if status == "" {
			return
		}
		x := area.Min.X
		for _, r := range " " + status + " " {
			if x >= area.Max.X {
				break
			}
			scr.SetCell(x, area.Min.Y, &uv.Cell{
				Content: string(r),
				Width:   1,
				Style:   uv.Style{Fg: statusFg, Bg: statusBg},
			})
			x++
		}
	})
}
