package term

import (
	"context"
	"fmt"
	"time"

	"github.com/taigrr/painter/pkg/render"
)

// Handler receives what a presenter's event loop sees.
type Handler struct {
	Keys *Collector
	// Quit is called once when a quit key is pressed.
	Quit func()
	// Resize gets the new framebuffer size in pixels.
	Resize func(width, height int)
}

func (h Handler) press(a Action) {
	if a == Quit {
		if h.Quit != nil {
			h.Quit()
		}
		return
	}
	if h.Keys != nil {
		h.Keys.Press(a)
	}
}

func (h Handler) resize(cols, rows int) {
	if h.Resize != nil {
		h.Resize(PixelSize(cols, rows))
	}
}

// Presenter shows frames and reports input.
type Presenter interface {
	// Size is the framebuffer size in pixels that fills the terminal.
	Size() (width, height int)
	// Listen handles events until ctx is done or the terminal closes.
	Listen(ctx context.Context, h Handler)
	Present(fb *render.Framebuffer, status string) error
	Close() error
}

// PixelSize is the framebuffer size for a cols×rows terminal. Each cell
// holds two pixels stacked vertically.
func PixelSize(cols, rows int) (int, int) {
	return cols, rows * 2
}

// Open starts the named backend.
func Open(backend string) (Presenter, error) {
	switch backend {
	case "uv", "":
		return NewUV()
	case "tcell":
		return NewTcell()
	default:
		return nil, fmt.Errorf("term: unknown backend %q", backend)
	}
}

// FPS measures frame rate over one second windows.
type FPS struct {
	frames int
	since  time.Time
	rate   float64
}

// Tick counts a frame at now and returns the latest rate.
func (f *FPS) Tick(now time.Time) float64 {
	if f.since.IsZero() {
		f.since = now
	}
	f.frames++
	if elapsed := now.Sub(f.since); elapsed >= time.Second {
		f.rate = float64(f.frames) / elapsed.Seconds()
		f.frames = 0
		f.since = now
	}
	return f.rate
}
