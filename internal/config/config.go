// Package config loads painter settings from TOML and overlays command
// line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
	"github.com/taigrr/painter/pkg/scene"
	"github.com/taigrr/painter/pkg/sim"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all settings. Zero numeric fields in the projection and
// lighting sections keep the scenario defaults.
type Config struct {
	Scene      Scene      `toml:"scene"`
	Screen     Screen     `toml:"screen"`
	Projection Projection `toml:"projection"`
	Lighting   Lighting   `toml:"lighting"`
	Output     Output     `toml:"output"`
	Log        Log        `toml:"log"`
	Runner     Runner     `toml:"runner"`
}

// Scene selects what gets drawn.
type Scene struct {
	Scenario string `toml:"scenario"`
	// Model is a .glb file drawn by the model scenario.
	Model string `toml:"model"`
}

// Screen is the output frame size and tick rate.
type Screen struct {
	Width       int `toml:"width"`
	Height      int `toml:"height"`
	Supersample int `toml:"supersample"`
	FPS         int `toml:"fps"`
}

// Projection overrides the scenario projector when set.
type Projection struct {
	Mode          string  `toml:"mode"`
	Focal         float64 `toml:"focal"`
	PixelsPerUnit float64 `toml:"pixels_per_unit"`
	Near          float64 `toml:"near"`
	Far           float64 `toml:"far"`
	CullOffscreen bool    `toml:"cull_offscreen"`
	Margin        float64 `toml:"margin"`
}

// Lighting picks and tunes the face shader.
type Lighting struct {
	// Shader is "unlit", "flat" or "lambert"; empty keeps the scenario's.
	Shader  string     `toml:"shader"`
	Ambient [3]uint8   `toml:"ambient"`
	Diffuse [3]uint8   `toml:"diffuse"`
	Light   [3]float64 `toml:"light"`
	Tint    bool       `toml:"tint"`
	Outline *bool      `toml:"outline"`
}

// Output is where render writes its image.
type Output struct {
	Path string `toml:"path"`
}

// Log sets the default log level.
type Log struct {
	Level string `toml:"level"`
}

// Runner tunes the rail runner game.
type Runner struct {
	Seed        uint64  `toml:"seed"`
	Lives       int     `toml:"lives"`
	Speed       float64 `toml:"speed"`
	JumpImpulse float64 `toml:"jump_impulse"`
	Gravity     float64 `toml:"gravity"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	rc := sim.DefaultRunnerConfig()
	return Config{
		Scene:  Scene{Scenario: string(sim.ScenarioRoom)},
		Screen: Screen{Width: 800, Height: 600, Supersample: 1, FPS: 60},
		Output: Output{Path: "frame.png"},
		Log:    Log{Level: "warn"},
		Runner: Runner{
			Lives:       rc.Lives,
			Speed:       rc.Speed,
			JumpImpulse: rc.JumpImpulse,
			Gravity:     rc.Gravity,
		},
	}
}

// Load reads a TOML file over Default. Keys missing from the file keep
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Flags holds command line values that override the file.
type Flags struct {
	Scenario    string
	Model       string
	Width       int
	Height      int
	Supersample int
	FPS         int
	Output      string
	Seed        uint64
	Shader      string
}

// Resolve applies non-zero flags, then fills anything still unset.
func (c *Config) Resolve(f Flags) {
	if f.Scenario != "" {
		c.Scene.Scenario = f.Scenario
	}
	if f.Model != "" {
		c.Scene.Model = f.Model
		if f.Scenario == "" {
			c.Scene.Scenario = string(sim.ScenarioModel)
		}
	}
	if f.Width > 0 {
		c.Screen.Width = f.Width
	}
	if f.Height > 0 {
		c.Screen.Height = f.Height
	}
	if f.Supersample > 0 {
		c.Screen.Supersample = f.Supersample
	}
	if f.FPS > 0 {
		c.Screen.FPS = f.FPS
	}
	if f.Output != "" {
		c.Output.Path = f.Output
	}
	if f.Seed != 0 {
		c.Runner.Seed = f.Seed
	}
	if f.Shader != "" {
		c.Lighting.Shader = f.Shader
	}

	if c.Scene.Scenario == "" {
		c.Scene.Scenario = string(sim.ScenarioRoom)
	}
	if c.Screen.Supersample <= 0 {
		c.Screen.Supersample = 1
	}
	if c.Screen.FPS <= 0 {
		c.Screen.FPS = 60
	}
}

// Validate reports every problem at once, each wrapping ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if _, err := sim.ParseScenario(c.Scene.Scenario); err != nil {
		bad("scene.scenario %q", c.Scene.Scenario)
	}
	if c.Scene.Scenario == string(sim.ScenarioModel) && c.Scene.Model == "" {
		bad("scene.model is required for the model scenario")
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		bad("screen size %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.Supersample < 1 || c.Screen.Supersample > 8 {
		bad("screen.supersample %d not in [1, 8]", c.Screen.Supersample)
	}
	if _, err := render.ParseMode(c.Projection.Mode); err != nil {
		bad("projection.mode %q", c.Projection.Mode)
	}
	if c.Projection.Focal < 0 || c.Projection.PixelsPerUnit < 0 || c.Projection.Near < 0 || c.Projection.Far < 0 {
		bad("projection values must not be negative")
	}
	switch strings.ToLower(c.Lighting.Shader) {
	case "", "unlit", "flat", "lambert":
	default:
		bad("lighting.shader %q", c.Lighting.Shader)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		bad("log.level %q", c.Log.Level)
	}
	if c.Runner.Lives < 0 || c.Runner.Speed < 0 || c.Runner.Gravity < 0 {
		bad("runner values must not be negative")
	}
	return errors.Join(errs...)
}

// RunnerConfig merges the runner section over the game defaults.
func (c Config) RunnerConfig() sim.RunnerConfig {
	rc := sim.DefaultRunnerConfig()
	rc.Seed = c.Runner.Seed
	if c.Runner.Lives > 0 {
		rc.Lives = c.Runner.Lives
	}
	if c.Runner.Speed > 0 {
		rc.Speed = c.Runner.Speed
	}
	if c.Runner.JumpImpulse > 0 {
		rc.JumpImpulse = c.Runner.JumpImpulse
	}
	if c.Runner.Gravity > 0 {
		rc.Gravity = c.Runner.Gravity
	}
	return rc
}

// ApplyProjection overrides the set fields of p. The mode only changes
// when one is named.
func (c Config) ApplyProjection(p render.Projector) render.Projector {
	pc := c.Projection
	if pc.Mode != "" {
		if m, err := render.ParseMode(pc.Mode); err == nil {
			p.Mode = m
		}
	}
	if pc.Focal > 0 {
		p.Focal = pc.Focal
	}
	if pc.PixelsPerUnit > 0 {
		p.PixelsPerUnit = pc.PixelsPerUnit
	}
	if pc.Near > 0 {
		p.Near = pc.Near
	}
	if pc.Far > 0 {
		p.Far = pc.Far
	}
	if pc.CullOffscreen {
		p.CullOffscreen = true
	}
	if pc.Margin > 0 {
		p.Margin = pc.Margin
	}
	return p
}

// Shader returns the configured shader, or def when none is named.
func (c Config) Shader(def render.Shader) render.Shader {
	lc := c.Lighting
	switch strings.ToLower(lc.Shader) {
	case "unlit":
		return render.Unlit{}
	case "flat":
		return render.DefaultFlat()
	case "lambert":
		l := render.DefaultLambert()
		if lc.Ambient != [3]uint8{} {
			l.Ambient = scene.RGB(lc.Ambient[0], lc.Ambient[1], lc.Ambient[2])
		}
		if lc.Diffuse != [3]uint8{} {
			l.Diffuse = scene.RGB(lc.Diffuse[0], lc.Diffuse[1], lc.Diffuse[2])
		}
		if lc.Light != [3]float64{} {
			l.Light = math3d.V3(lc.Light[0], lc.Light[1], lc.Light[2]).Normalize()
		}
		l.Tint = lc.Tint
		return l
	default:
		return def
	}
}

// Outline reports whether faces get a stroke, defaulting to true.
func (c Config) Outline() bool {
	return c.Lighting.Outline == nil || *c.Lighting.Outline
}
