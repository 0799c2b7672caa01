package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/taigrr/painter/internal/config"
	"github.com/taigrr/painter/internal/term"
	"github.com/taigrr/painter/pkg/render"
	"github.com/taigrr/painter/pkg/sim"
)

func newViewCmd(opts *options) *cobra.Command {
	var backend string
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Run a scene interactively in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return view(cmd.Context(), cfg, backend)
		},
	}
	cmd.Flags().StringVar(&backend, "backend", "uv", "terminal backend: uv or tcell")
	cmd.Flags().IntVar(&opts.flags.FPS, "fps", 0, "target frames per second")
	return cmd
}

type size struct{ w, h int }

func view(ctx context.Context, cfg config.Config, backend string) error {
	p, err := term.Open(backend)
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(); err != nil {
			slog.Warn("terminal close", "err", err)
		}
	}()

	width, height := p.Size()
	st, r, err := build(cfg, width, height)
	if err != nil {
		return err
	}
	fb := render.NewFramebuffer(width, height)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Events arrive on their own goroutine; sizes are handed to the tick
	// loop so the framebuffer is only touched there.
	var keys term.Collector
	resized := make(chan size, 1)
	go p.Listen(ctx, term.Handler{
		Keys: &keys,
		Quit: cancel,
		Resize: func(w, h int) {
			select {
			case <-resized:
			default:
			}
			resized <- size{w, h}
		},
	})

	var fps term.FPS
	d := &sim.Driver{
		Interval: time.Second / time.Duration(cfg.Screen.FPS),
		Update: func(dt float64) {
			select {
			case sz := <-resized:
				fb.Resize(sz.w, sz.h)
				st.Resize(sz.w, sz.h)
				slog.Debug("resized", "width", sz.w, "height", sz.h)
			default:
			}
			st.Advance(keys.Take(), dt)
		},
		Render: func() error {
			st.Paint(fb)
			r.Projector = st.Projector
			if _, err := r.Render(st.Scene(), st.Camera, fb); err != nil {
				return err
			}
			status := fmt.Sprintf("%s  %s  %.0f fps", st.Scenario, st.Status(), fps.Tick(time.Now()))
			return p.Present(fb, status)
		},
	}

	slog.Info("view started", "backend", backend, "fps", cfg.Screen.FPS)
	if err := d.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
