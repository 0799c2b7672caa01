package sim

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
	"github.com/taigrr/painter/pkg/scene"
)

// Runner layout and scoring constants.
const (
	Lanes        = 3
	LaneSpacing  = 3.0
	laneEase     = 0.2
	laneSnap     = 0.1
	hitRadius    = 0.8
	pickupReach  = hitRadius + 2
	clearHeight  = 2.0
	coinPoints   = 50
	powerPoints  = 100
	powerSlow    = 0.8
	spawnSlots   = 50
	spawnLow     = 30
	trackSpacing = 4.0
	trackAhead   = 100.0
	trackBehind  = 50.0
	objectBehind = 20.0
)

// ObjectKind tells obstacles from pickups.
type ObjectKind uint8

const (
	Obstacle ObjectKind = iota
	Coin
	PowerUp
)

func (k ObjectKind) String() string {
	switch k {
	case Obstacle:
		return "obstacle"
	case Coin:
		return "coin"
	case PowerUp:
		return "power-up"
	default:
		return "unknown"
	}
}

// Object is something on the track.
type Object struct {
	Kind ObjectKind
	Pos  math3d.Vec3
}

// RunnerConfig tunes a rail run.
type RunnerConfig struct {
	Seed        uint64
	Lives       int
	Speed       float64 // units per tick at the start
	Accel       float64 // speed added per tick
	MaxSpeed    float64
	MinSpeed    float64
	JumpImpulse float64 // units per second
	Gravity     float64 // units per second squared
	// CameraBack places the camera behind the player so the player block
	// is in front of the near plane.
	CameraBack   float64
	CameraHeight float64
}

// DefaultRunnerConfig returns the classic three-lane settings.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Lives:        3,
		Speed:        0.2,
		Accel:        0.001,
		MaxSpeed:     1.0,
		MinSpeed:     0.05,
		JumpImpulse:  12,
		Gravity:      30,
		CameraBack:   4,
		CameraHeight: 2,
	}
}

// LaneX is the x coordinate of lane 0, 1 or 2.
func LaneX(lane int) float64 {
	return float64(lane-1) * LaneSpacing
}

// Runner is an endless three-lane rail run. The player moves toward +Z at
// a growing speed, dodging obstacles and collecting coins and power-ups.
type Runner struct {
	Config RunnerConfig

	Lane     int
	X        float64
	Jump     Jump
	Distance float64
	Speed    float64
	Lives    int
	// Bonus is the score earned from pickups.
	Bonus   int
	Over    bool
	Objects []Object
	Tracks  []float64
	// Spin turns coins, in radians.
	Spin float64

	rng *rand.Rand
}

// NewRunner starts a run.
func NewRunner(cfg RunnerConfig) *Runner {
	r := &Runner{Config: cfg}
	r.Restart()
	return r
}

// Restart resets the run. The same seed always spawns the same course.
func (r *Runner) Restart() {
	cfg := r.Config
	*r = Runner{
		Config:  cfg,
		Lane:    1,
		Speed:   cfg.Speed,
		Lives:   cfg.Lives,
		Objects: r.Objects[:0],
		Tracks:  r.Tracks[:0],
		rng:     rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
	for i := range 200 {
		r.Tracks = append(r.Tracks, float64(i)*trackSpacing)
	}
	r.spawn()
}

// Score is the distance score plus pickups.
func (r *Runner) Score() int {
	return int(r.Distance*10) + r.Bonus
}

// Height is the player's jump height.
func (r *Runner) Height() float64 {
	return r.Jump.Height
}

// MoveLeft steps one lane to the left if there is one.
func (r *Runner) MoveLeft() {
	if !r.Over && r.Lane > 0 {
		r.Lane--
	}
}

// MoveRight steps one lane to the right.
func (r *Runner) MoveRight() {
	if !r.Over && r.Lane < Lanes-1 {
		r.Lane++
	}
}

// Faster multiplies speed by 1.5 up to MaxSpeed.
func (r *Runner) Faster() {
	r.Speed = math.Min(r.Speed*1.5, r.Config.MaxSpeed)
}

// Slower multiplies speed by 0.7 down to MinSpeed.
func (r *Runner) Slower() {
	r.Speed = math.Max(r.Speed*0.7, r.Config.MinSpeed)
}

// JumpUp starts a jump when the player is on the rails.
func (r *Runner) JumpUp() bool {
	if r.Over {
		return false
	}
	return r.Jump.Trigger(r.Config.JumpImpulse)
}

// Step advances one tick of dt seconds. A finished run does not move.
func (r *Runner) Step(dt float64) {
	if r.Over {
		return
	}
	r.Distance += r.Speed
	r.Speed += r.Config.Accel
	r.Spin = math.Mod(r.Spin+dt*math.Pi, 2*math.Pi)

	target := LaneX(r.Lane)
	if math.Abs(r.X-target) > laneSnap {
		r.X += (target - r.X) * laneEase
	} else {
		r.X = target
	}
	r.Jump.Step(r.Config.Gravity, dt)

	r.collide()
	r.cleanup()
}

// collide handles at most one obstacle hit per tick, then every pickup in
// reach.
func (r *Runner) collide() {
	for i, o := range r.Objects {
		if o.Kind != Obstacle {
			continue
		}
		if math.Abs(o.Pos.X-r.X) < hitRadius &&
			math.Abs(o.Pos.Z-r.Distance) < hitRadius &&
			r.Height() < clearHeight {
			r.Objects = slices.Delete(r.Objects, i, i+1)
			r.Lives--
			if r.Lives <= 0 {
				r.Over = true
			}
			break
		}
	}

	r.Objects = slices.DeleteFunc(r.Objects, func(o Object) bool {
		if o.Kind == Obstacle ||
			math.Abs(o.Pos.X-r.X) >= hitRadius ||
			math.Abs(o.Pos.Z-r.Distance) >= pickupReach {
			return false
		}
		switch o.Kind {
		case Coin:
			r.Bonus += coinPoints
		case PowerUp:
			r.Bonus += powerPoints
			r.Speed *= powerSlow
		}
		return true
	})
}

func (r *Runner) cleanup() {
	behind := r.Distance - objectBehind
	r.Objects = slices.DeleteFunc(r.Objects, func(o Object) bool {
		return o.Pos.Z < behind
	})
	if r.count(Obstacle) < spawnLow {
		r.spawn()
	}

	for r.Tracks[len(r.Tracks)-1] < r.Distance+trackAhead {
		r.Tracks = append(r.Tracks, r.Tracks[len(r.Tracks)-1]+trackSpacing)
	}
	r.Tracks = slices.DeleteFunc(r.Tracks, func(z float64) bool {
		return z < r.Distance-trackBehind
	})
}

func (r *Runner) count(k ObjectKind) int {
	n := 0
	for _, o := range r.Objects {
		if o.Kind == k {
			n++
		}
	}
	return n
}

// spawn scatters a batch of objects over the course ahead.
func (r *Runner) spawn() {
	for i := range spawnSlots {
		z := r.Distance + 20 + float64(i)*15 + r.rng.Float64()*10
		if r.rng.Float64() < 0.3 {
			r.place(Obstacle, 0, z)
		}
		if r.rng.Float64() < 0.4 {
			r.place(Coin, 1, z+5)
		}
		if r.rng.Float64() < 0.1 {
			r.place(PowerUp, 0.5, z+8)
		}
	}
}

func (r *Runner) place(k ObjectKind, y, z float64) {
	x := LaneX(r.rng.IntN(Lanes))
	r.Objects = append(r.Objects, Object{Kind: k, Pos: math3d.V3(x, y, z)})
}

var (
	railColor    = scene.ColorLightGray
	coinColor    = scene.ColorYellow
	powerColor   = scene.ColorMagenta
	obstacleTint = scene.ColorRed
	playerColor  = scene.ColorBlue
)

// Scene builds the track, objects and player in world space.
func (r *Runner) Scene() *scene.Scene {
	sc := scene.New()
	for _, z := range r.Tracks {
		sc.Add(scene.NewFloor(scene.ColorBrown,
			math3d.V3(-4, -0.1, z), math3d.V3(4, -0.1, z),
			math3d.V3(4, 0.1, z), math3d.V3(-4, 0.1, z)))
		for lane := range Lanes {
			x := LaneX(lane)
			sc.Add(scene.NewFloor(railColor,
				math3d.V3(x-0.1, 0, z), math3d.V3(x+0.1, 0, z),
				math3d.V3(x+0.1, 0, z+trackSpacing), math3d.V3(x-0.1, 0, z+trackSpacing)))
		}
	}
	for _, o := range r.Objects {
		switch o.Kind {
		case Obstacle:
			sc.Add(scene.Block(o.Pos, 1.5, 2, 1.5, obstacleTint)...)
		case Coin:
			sc.Add(r.coin(o.Pos))
		case PowerUp:
			sc.Add(scene.Cube(o.Pos, 0.5, powerColor)...)
		}
	}
	sc.Add(scene.Block(math3d.V3(r.X, r.Height()+1, r.Distance), 0.8, 1.8, 0.8, playerColor)...)
	return sc
}

// coin is a flat diamond turned about the vertical axis by Spin.
func (r *Runner) coin(p math3d.Vec3) scene.Primitive {
	const half = 0.4
	dx, dz := half*math.Cos(r.Spin), half*math.Sin(r.Spin)
	return scene.NewQuad(coinColor,
		p.Add(math3d.V3(0, half, 0)),
		p.Add(math3d.V3(dx, 0, dz)),
		p.Add(math3d.V3(0, -half, 0)),
		p.Add(math3d.V3(-dx, 0, -dz)),
	)
}

// Camera follows the player's lane from behind at a fixed height.
func (r *Runner) Camera() *render.Camera {
	return render.NewCamera(math3d.V3(r.X, r.Config.CameraHeight, r.Distance-r.Config.CameraBack))
}

// RunnerProjector is the pinhole projection the run is drawn with.
func RunnerProjector(width, height int) render.Projector {
	p := render.NewProjector(width, height, 8)
	p.Mode = render.Pinhole
	p.PixelsPerUnit = 50
	p.Far = trackAhead
	p.CullOffscreen = true
	return p
}

// Sky and ground colours painted behind the run.
var (
	SkyTop    = scene.RGB(135, 206, 250)
	SkyBottom = scene.RGB(25, 25, 112)
	Ground    = scene.ColorGrass
)

// PaintBackdrop fills the upper half of fb with the sky gradient and the
// lower half with grass.
func PaintBackdrop(fb *render.Framebuffer) {
	mid := fb.Height / 2
	fb.Gradient(0, mid, SkyTop, SkyBottom)
	fb.FillRect(0, mid, fb.Width, fb.Height-mid, Ground)
}
