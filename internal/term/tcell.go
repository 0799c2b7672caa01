package term

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/taigrr/painter/pkg/render"
)

// Tcell presents through a tcell screen.
type Tcell struct {
	screen tcell.Screen
	once   sync.Once
}

// NewTcell initialises the terminal screen.
func NewTcell() (*Tcell, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: screen init: %w", err)
	}
	return newTcell(s)
}

func newTcell(s tcell.Screen) (*Tcell, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: screen start: %w", err)
	}
	s.HideCursor()
	return &Tcell{screen: s}, nil
}

// Size returns the frame size in pixels, two per terminal row.
func (p *Tcell) Size() (int, int) {
	return PixelSize(p.screen.Size())
}

// Listen polls until the screen is finalised. PollEvent blocks, so
// cancelling ctx only takes effect at the next event.
func (p *Tcell) Listen(ctx context.Context, h Handler) {
	for ctx.Err() == nil {
		switch ev := p.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			p.screen.Sync()
			h.resize(ev.Size())
		case *tcell.EventKey:
			if a, ok := Lookup(keyName(ev)); ok {
				h.press(a)
			}
		}
	}
}

// keyName spells a tcell key the way the bindings do.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdown"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "space"
		}
		return string(ev.Rune())
	default:
		return ""
	}
}

// Present draws fb and the status line, then flushes the screen.
func (p *Tcell) Present(fb *render.Framebuffer, status string) error {
	cols, rows := p.screen.Size()
	for row := range rows {
		for col := range min(cols, fb.Width) {
			st := tcell.StyleDefault.
				Foreground(tcell.FromImageColor(fb.GetPixel(col, row*2))).
				Background(tcell.FromImageColor(fb.GetPixel(col, row*2+1)))
			p.screen.SetContent(col, row, '▀', nil, st)
		}
	}
	if status != "" {
		st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
		x := 0
		for _, r := range " " + status + " " {
			if x >= cols {
				break
			}
			p.screen.SetContent(x, 0, r, nil, st)
			x++
		}
	}
	p.screen.Show()
	return nil
}

// Close restores the terminal.
func (p *Tcell) Close() error {
	p.once.Do(p.screen.Fini)
	return nil
}
