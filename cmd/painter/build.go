package main

import (
	"fmt"
	"log/slog"

	"github.com/taigrr/painter/internal/config"
	"github.com/taigrr/painter/pkg/models"
	"github.com/taigrr/painter/pkg/render"
	"github.com/taigrr/painter/pkg/scene"
	"github.com/taigrr/painter/pkg/sim"
)

// modelExtent is the size glTF models are fitted to.
const modelExtent = 4

// build creates the simulation state and a renderer for a width×height
// frame.
func build(cfg config.Config, width, height int) (*sim.State, *render.Renderer, error) {
	scenario, err := sim.ParseScenario(cfg.Scene.Scenario)
	if err != nil {
		return nil, nil, err
	}

	opts := sim.Options{
		Scenario: scenario,
		Width:    width,
		Height:   height,
		FPS:      cfg.Screen.FPS,
		Runner:   cfg.RunnerConfig(),
	}
	if scenario == sim.ScenarioModel {
		if opts.Model, err = loadModel(cfg.Scene.Model); err != nil {
			return nil, nil, err
		}
	}

	st, err := sim.NewState(opts)
	if err != nil {
		return nil, nil, err
	}
	st.Projector = cfg.ApplyProjection(st.Projector)
	st.Shader = cfg.Shader(st.Shader)

	r := render.NewRenderer(st.Projector, st.Shader)
	r.Outline = cfg.Outline()
	slog.Info("scene ready", "scenario", scenario, "mode", st.Projector.Mode, "width", width, "height", height)
	return st, r, nil
}

func loadModel(path string) (*scene.Scene, error) {
	loader := models.NewGLTFLoader()
	loader.FitExtent = modelExtent
	mesh, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	slog.Info("model loaded", "path", path, "vertices", mesh.VertexCount(), "triangles", mesh.TriangleCount())
	return scene.New(scene.FromMesh(mesh, loader.DefaultColor)...), nil
}
