package anim

import (
	"time"

	"github.com/safforddr/icubesmart/internal/cube"
	"github.com/safforddr/icubesmart/internal/input"
)

// Planes sweeps a lit plane across each axis in turn: X indices 0..7
// on-then-off, then Y, then Z.
type Planes struct {
	hold time.Duration
}

func NewPlanes(h Holds) *Planes { return &Planes{hold: h.Plane} }

func (p *Planes) Name() string { return "planes" }

func (p *Planes) Run(fb *cube.Buffer, w Waiter) bool {
	fb.SetAll(false)
	for _, axis := range []cube.Axis{cube.AxisX, cube.AxisY, cube.AxisZ} {
		for i := 0; i < cube.Size; i++ {
			fb.SetPlane(axis, i, true)
			if w.Hold(p.hold) != input.None {
				return true
			}
			fb.SetPlane(axis, i, false)
		}
	}
	return false
}
