// Package term presents frames in a terminal and turns key presses into
// simulation input. Two backends are offered: ultraviolet and tcell.
package term

import (
	"slices"
	"sync"

	"github.com/taigrr/painter/pkg/sim"
)

// Action is something a key asks for.
type Action uint8

const (
	Forward Action = iota
	Back
	StrafeLeft
	StrafeRight
	Rise
	Sink
	LookLeft
	LookRight
	LookUp
	LookDown
	Jump
	Restart
	SelectFirst
	SelectSecond
	Quit
)

// TurnStep is the turn requested by one arrow key press, in radians.
const TurnStep = 0.05

type binding struct {
	action Action
	keys   []string
}

// Key names follow ultraviolet's MatchString spelling.
var bindings = []binding{
	{Forward, []string{"w"}},
	{Back, []string{"s"}},
	{StrafeLeft, []string{"a"}},
	{StrafeRight, []string{"d"}},
	{Rise, []string{"e", "pgup"}},
	{Sink, []string{"c", "pgdown"}},
	{LookLeft, []string{"left"}},
	{LookRight, []string{"right"}},
	{LookUp, []string{"up"}},
	{LookDown, []string{"down"}},
	{Jump, []string{"space"}},
	{Restart, []string{"r"}},
	{SelectFirst, []string{"1"}},
	{SelectSecond, []string{"2"}},
	{Quit, []string{"q", "escape", "ctrl+c"}},
}

// Lookup finds the action bound to a key name.
func Lookup(name string) (Action, bool) {
	for _, b := range bindings {
		if slices.Contains(b.keys, name) {
			return b.action, true
		}
	}
	return 0, false
}

// Collector folds key presses arriving from an event goroutine into the
// Input for the next tick.
type Collector struct {
	mu sync.Mutex
	in sim.Input
}

// Press records a. Quit is not an input and is ignored here.
func (c *Collector) Press(a Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	in := &c.in
	switch a {
	case Forward:
		in.Move.Z++
		in.Faster = true
	case Back:
		in.Move.Z--
		in.Slower = true
	case StrafeLeft:
		in.Move.X--
		in.Left = true
	case StrafeRight:
		in.Move.X++
		in.Right = true
	case Rise:
		in.Move.Y++
	case Sink:
		in.Move.Y--
	case LookLeft:
		in.Yaw -= TurnStep
		in.Left = true
	case LookRight:
		in.Yaw += TurnStep
		in.Right = true
	case LookUp:
		in.Pitch -= TurnStep
	case LookDown:
		in.Pitch += TurnStep
	case Jump:
		in.Jump = true
	case Restart:
		in.Restart = true
	case SelectFirst:
		in.Select = 1
	case SelectSecond:
		in.Select = 2
	}
}

// Take returns the input gathered since the last call and clears it.
func (c *Collector) Take() sim.Input {
	c.mu.Lock()
	defer c.mu.Unlock()
	in := c.in
	c.in = sim.Input{}
	return in
}
