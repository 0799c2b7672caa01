package sim

import (
	"fmt"
	"math"
	"slices"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
	"github.com/taigrr/painter/pkg/scene"
)

// Scenario names a built-in demo scene.
type Scenario string

const (
	ScenarioRoom   Scenario = "room"
	ScenarioHouse  Scenario = "house"
	ScenarioFigure Scenario = "figure"
	ScenarioRunner Scenario = "runner"
	ScenarioModel  Scenario = "model"
)

// Scenarios lists the scenarios in display order.
var Scenarios = []Scenario{ScenarioRoom, ScenarioHouse, ScenarioFigure, ScenarioRunner, ScenarioModel}

// Describe returns a one-line summary of s.
func (s Scenario) Describe() string {
	switch s {
	case ScenarioRoom:
		return "furnished room with flat shading, turned by the arrow keys"
	case ScenarioHouse:
		return "wireframe two-storey house with two people moved by WASD"
	case ScenarioFigure:
		return "lit walking figure, WASD to walk, space to jump"
	case ScenarioRunner:
		return "three-lane rail runner, A/D to switch lanes, space to jump"
	case ScenarioModel:
		return "glTF model with Lambert shading"
	default:
		return ""
	}
}

// ParseScenario validates a scenario name.
func ParseScenario(name string) (Scenario, error) {
	s := Scenario(name)
	if !slices.Contains(Scenarios, s) {
		return "", fmt.Errorf("sim: unknown scenario %q", name)
	}
	return s, nil
}

// Input is what the user asked for during one tick. Move is in steps:
// X right, Y up, Z forward. Pitch and Yaw are turn requests in radians.
type Input struct {
	Move       math3d.Vec3
	Pitch, Yaw float64
	Jump       bool
	Left       bool
	Right      bool
	Faster     bool
	Slower     bool
	Restart    bool
	// Select picks person 1 or 2 in the house; 0 keeps the selection.
	Select int
}

// Options configure a new State.
type Options struct {
	Scenario      Scenario
	Width, Height int
	FPS           int
	Runner        RunnerConfig
	// Model is drawn by ScenarioModel, centred on the origin.
	Model *scene.Scene
}

// Per-scenario tuning.
const (
	peopleSpeed   = 0.5
	figureSpeed   = 0.1
	walkHoldTicks = 15
	figureImpulse = 12.0
	figureGravity = 30.0
)

// State is everything that changes between frames.
type State struct {
	Scenario  Scenario
	Camera    *render.Camera
	Projector render.Projector
	Shader    render.Shader
	// Background clears the frame before drawing.
	Background scene.Color
	Tick       int

	Orbit    *Orbit
	Walk     Walk
	Jump     Jump
	Figure   *scene.Figure
	Actor    Mover
	People   []Mover
	Selected int
	Runner   *Runner

	base     *scene.Scene
	walkHold int
}

// NewState builds the scene, camera and projection for o.Scenario.
func NewState(o Options) (*State, error) {
	if o.FPS <= 0 {
		o.FPS = 60
	}
	st := &State{
		Scenario:   o.Scenario,
		Orbit:      NewOrbit(o.FPS),
		Background: scene.ColorBlack,
	}
	w, h := o.Width, o.Height

	switch o.Scenario {
	case ScenarioRoom:
		st.base = scene.Room(scene.DefaultRoomOptions())
		st.Camera = render.NewCamera(math3d.Vec3{})
		st.Projector = fitted(render.NewProjector(w, h, 500), 1, 600)
		st.Shader = render.DefaultFlat()
	case ScenarioHouse:
		st.base = scene.House()
		st.Camera = render.NewCamera(math3d.V3(0, 5, 15))
		st.Projector = fitted(render.NewProjector(w, h, 400), 20, 600)
		st.Shader = render.Unlit{}
		st.Background = scene.ColorDarkGray
		st.People = []Mover{
			{Position: math3d.V3(-5, 0, -5), Speed: peopleSpeed, Bounds: RoomBounds},
			{Position: math3d.V3(5, 4, 5), Speed: peopleSpeed, Bounds: RoomBounds},
		}
	case ScenarioFigure:
		st.Figure = scene.NewFigure(scene.ColorLightGray)
		st.base = scene.New(scene.Grid(-6, -6, 6, 6, -1.65, 1, scene.ColorDarkGray)...)
		st.Camera = render.NewCamera(math3d.V3(0, 0, -8))
		st.Projector = fitted(render.NewProjector(w, h, 10), 100, 800)
		st.Shader = render.DefaultLambert()
		st.Actor = Mover{Speed: figureSpeed}
	case ScenarioRunner:
		st.Runner = NewRunner(o.Runner)
		st.Projector = RunnerProjector(w, h)
		st.Projector.PixelsPerUnit *= float64(h) / 700
		st.Shader = render.Unlit{}
		st.Camera = st.Runner.Camera()
	case ScenarioModel:
		if o.Model == nil {
			return nil, fmt.Errorf("sim: scenario %s needs a model", o.Scenario)
		}
		st.base = o.Model
		st.Camera = render.NewCamera(math3d.V3(0, 0, -8))
		st.Projector = fitted(render.NewProjector(w, h, 10), 100, 800)
		lambert := render.DefaultLambert()
		lambert.Tint = true
		st.Shader = lambert
	default:
		return nil, fmt.Errorf("sim: unknown scenario %q", o.Scenario)
	}
	return st, nil
}

// fitted sets pixels per unit so a frame designed designHeight pixels
// tall fills p.Height.
func fitted(p render.Projector, ppu float64, designHeight int) render.Projector {
	p.PixelsPerUnit = ppu * float64(p.Height) / float64(designHeight)
	return p
}

// SetView points the scenario at a pitch and yaw in radians: the orbit
// for room, figure and model, the camera for the house. The runner keeps
// its chase camera.
func (st *State) SetView(pitch, yaw float64) {
	switch st.Scenario {
	case ScenarioHouse:
		st.Camera.SetRotation(0, 0, 0)
		st.Camera.Turn(pitch, yaw)
	case ScenarioRunner:
	default:
		st.Orbit.Reset()
		st.Orbit.Pitch.Angle = max(-math.Pi/2, min(math.Pi/2, pitch))
		st.Orbit.Yaw.Angle = yaw
	}
}

// Resize keeps the projection fitted to a new frame size.
func (st *State) Resize(width, height int) {
	if height <= 0 || st.Projector.Height <= 0 {
		return
	}
	scale := float64(height) / float64(st.Projector.Height)
	st.Projector.Width, st.Projector.Height = width, height
	st.Projector.PixelsPerUnit *= scale
}

// Advance applies one tick of input and simulation.
func (st *State) Advance(in Input, dt float64) {
	st.Tick++
	switch st.Scenario {
	case ScenarioRoom, ScenarioModel:
		st.Orbit.Impulse(in.Pitch, in.Yaw)
		st.Orbit.Step()
	case ScenarioHouse:
		st.Camera.Turn(in.Pitch, in.Yaw)
		if in.Select >= 1 && in.Select <= len(st.People) {
			st.Selected = in.Select - 1
		}
		// Forward walks toward the back wall at -Z.
		p := &st.People[st.Selected]
		d := math3d.V3(in.Move.X, in.Move.Y, -in.Move.Z).Scale(p.Speed)
		p.Position = p.Bounds.Clamp(p.Position.Add(d))
	case ScenarioFigure:
		st.advanceFigure(in, dt)
	case ScenarioRunner:
		st.advanceRunner(in, dt)
	}
}

func (st *State) advanceFigure(in Input, dt float64) {
	st.Orbit.Impulse(in.Pitch, in.Yaw)
	st.Orbit.Step()

	if st.Actor.Step(in.Move.Z, in.Move.X, 0, st.Orbit.Yaw.Angle) {
		st.walkHold = walkHoldTicks
	} else if st.walkHold > 0 {
		st.walkHold--
	}
	st.Walk.Walking = st.walkHold > 0
	st.Walk.Step()
	st.Walk.Apply(st.Figure)

	if in.Jump {
		st.Jump.Trigger(figureImpulse)
	}
	st.Jump.Step(figureGravity, dt)
}

func (st *State) advanceRunner(in Input, dt float64) {
	r := st.Runner
	switch {
	case in.Restart && r.Over:
		r.Restart()
	case in.Left:
		r.MoveLeft()
	case in.Right:
		r.MoveRight()
	}
	if in.Jump {
		r.JumpUp()
	}
	if in.Faster {
		r.Faster()
	}
	if in.Slower {
		r.Slower()
	}
	r.Step(dt)
	st.Camera = r.Camera()
}

// Scene returns the world-space primitives for the current tick.
func (st *State) Scene() *scene.Scene {
	switch st.Scenario {
	case ScenarioRoom, ScenarioModel:
		sc := st.base.Clone()
		sc.Rotate(st.Orbit.Euler())
		return sc
	case ScenarioHouse:
		sc := st.base.Clone()
		for i, p := range st.People {
			c := scene.ColorBlue
			if i == 1 {
				c = scene.ColorRed
			}
			sc.Add(scene.Person(p.Position, 1.8, c)...)
		}
		return sc
	case ScenarioFigure:
		// The actor moves over a fixed floor; the orbit turns both.
		at := st.Actor.Position.Add(math3d.V3(0, st.Jump.Height, 0))
		sc := scene.New(st.Figure.Triangles(at)...)
		sc.Extend(st.base)
		sc.Rotate(st.Orbit.Euler())
		return sc
	case ScenarioRunner:
		return st.Runner.Scene()
	default:
		return scene.New()
	}
}

// Paint clears fb to the scenario backdrop.
func (st *State) Paint(fb *render.Framebuffer) {
	if st.Scenario == ScenarioRunner {
		PaintBackdrop(fb)
		return
	}
	fb.Clear(st.Background)
}

// Status is a short line describing the tick, for a HUD.
func (st *State) Status() string {
	switch st.Scenario {
	case ScenarioRunner:
		r := st.Runner
		if r.Over {
			return fmt.Sprintf("GAME OVER  score %d  (r to restart)", r.Score())
		}
		return fmt.Sprintf("score %d  lives %d  speed %.1f", r.Score(), r.Lives, r.Speed*100)
	case ScenarioHouse:
		p := st.People[st.Selected].Position
		return fmt.Sprintf("person %d at (%.1f, %.1f, %.1f)", st.Selected+1, p.X, p.Y, p.Z)
	case ScenarioFigure:
		return fmt.Sprintf("phase %.1f  height %.2f", math.Mod(st.Walk.Phase, 2*math.Pi), st.Jump.Height)
	default:
		e := st.Orbit.Euler()
		return fmt.Sprintf("pitch %.0f°  yaw %.0f°", e.X*180/math.Pi, e.Y*180/math.Pi)
	}
}
