package anim

import (
	"time"

	"github.com/safforddr/icubesmart/internal/cube"
	"github.com/safforddr/icubesmart/internal/input"
)

// ScrollText pushes each letter of "DAVE" through the cube front to
// back, one Y cross-section at a time, then flashes the whole cube.
type ScrollText struct {
	row   time.Duration
	flash time.Duration
}

func NewScrollText(h Holds) *ScrollText {
	return &ScrollText{row: h.TextRow, flash: h.TextFlash}
}

func (s *ScrollText) Name() string { return "scrolltext" }

func (s *ScrollText) Run(fb *cube.Buffer, w Waiter) bool {
	fb.SetAll(false)
	for c := range font {
		for y := 0; y < cube.Size; y++ {
			fb.LoadRow(y, font[c])
			if w.Hold(s.row) != input.None {
				return true
			}
			fb.SetPlane(cube.AxisY, y, false)
		}
	}
	fb.SetAll(true)
	return w.Hold(s.flash) != input.None
}
