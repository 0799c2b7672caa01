// Command painter draws the built-in painter's-algorithm scenes to image
// files or interactively in the terminal.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/painter/internal/config"
	"github.com/taigrr/painter/internal/logging"
)

var version = "dev"

// options are the flags shared by every command.
type options struct {
	configPath string
	flags      config.Flags
	vv, v, q   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "painter",
		Short:         "Software 3D renderer using the painter's algorithm",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	pf.StringVarP(&opts.flags.Scenario, "scenario", "s", "", "scene to draw (see `painter scenes`)")
	pf.StringVarP(&opts.flags.Model, "model", "m", "", "glTF/GLB file for the model scenario")
	pf.StringVar(&opts.flags.Shader, "shader", "", "override shading: unlit, flat or lambert")
	pf.Uint64Var(&opts.flags.Seed, "seed", 0, "runner course seed")
	pf.BoolVar(&opts.vv, "vv", false, "debug logging")
	pf.BoolVar(&opts.v, "verbose", false, "info logging")
	pf.BoolVarP(&opts.q, "quiet", "q", false, "errors only")

	root.AddCommand(newRenderCmd(opts), newViewCmd(opts), newScenesCmd())
	return root
}

// load reads the config file if any, applies flags, sets up logging and
// validates the result.
func (o *options) load() (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}
	cfg.Resolve(o.flags)

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = slog.LevelWarn
	}
	logging.Setup(os.Stderr, logging.LevelFromFlags(o.vv, o.v, o.q, level))

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	slog.Debug("config resolved", "scenario", cfg.Scene.Scenario, "file", o.configPath)
	return cfg, nil
}

func main() {
	err := fang.Execute(context.Background(), newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
