package anim

import (
	"time"

	"github.com/safforddr/icubesmart/internal/cube"
	"github.com/safforddr/icubesmart/internal/input"
)

// Points walks every voxel in the cube, X outer, Y middle, Z inner,
// lighting each briefly. An interruption leaves the current point lit.
type Points struct {
	hold time.Duration
}

func NewPoints(h Holds) *Points { return &Points{hold: h.Point} }

func (p *Points) Name() string { return "points" }

func (p *Points) Run(fb *cube.Buffer, w Waiter) bool {
	fb.SetAll(false)
	for x := 0; x < cube.Size; x++ {
		for y := 0; y < cube.Size; y++ {
			for z := 0; z < cube.Size; z++ {
				fb.SetPoint(x, y, z, true)
				if w.Hold(p.hold) != input.None {
					return true
				}
				fb.SetPoint(x, y, z, false)
			}
		}
	}
	return false
}
