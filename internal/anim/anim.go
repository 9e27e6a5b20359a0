// Package anim holds the built-in animations. Each animation is a
// finite sequence of frame buffer mutations separated by holds; the
// holds are where the buttons get polled, and a mode change aborts
// the animation at that checkpoint, leaving whatever is lit lit.
package anim

import (
	"time"

	"github.com/safforddr/icubesmart/internal/cube"
	"github.com/safforddr/icubesmart/internal/input"
)

// Waiter holds an animation between steps while keeping the buttons
// polled. A ModeReset or ModeAdvanced return is the cue to abort.
type Waiter interface {
	Hold(d time.Duration) input.Event
}

// Animation renders one finite, non-restartable sequence. Run returns
// true if a mode change interrupted it before completion.
type Animation interface {
	Name() string
	Run(fb *cube.Buffer, w Waiter) (interrupted bool)
}

// Holds carries the fixed per-step hold durations.
type Holds struct {
	Blink     time.Duration
	Plane     time.Duration
	Point     time.Duration
	TextRow   time.Duration
	TextFlash time.Duration
}

// DefaultHolds mirrors the stock firmware's software delay counts
// (5us units: 60000, 10000, 1000, 5000, 30000).
func DefaultHolds() Holds {
	return Holds{
		Blink:     300 * time.Millisecond,
		Plane:     50 * time.Millisecond,
		Point:     5 * time.Millisecond,
		TextRow:   25 * time.Millisecond,
		TextFlash: 150 * time.Millisecond,
	}
}

// Registry maps animation modes to animations.
type Registry struct{ m map[int]Animation }

func NewRegistry() *Registry { return &Registry{m: map[int]Animation{}} }

func (r *Registry) Register(mode int, a Animation) {
	if a == nil {
		return
	}
	r.m[mode] = a
}

func (r *Registry) Get(mode int) (Animation, bool) { a, ok := r.m[mode]; return a, ok }

func (r *Registry) Modes() int { return len(r.m) }

// Default builds the stock mode table:
// 0 scroll text, 1 points, 2 planes, 3 blink, 4 combo.
func Default(h Holds) *Registry {
	r := NewRegistry()
	r.Register(0, NewScrollText(h))
	r.Register(1, NewPoints(h))
	r.Register(2, NewPlanes(h))
	r.Register(3, NewBlink(h))
	r.Register(4, NewCombo(NewScrollText(h), NewPoints(h), NewPlanes(h), NewBlink(h)))
	return r
}
