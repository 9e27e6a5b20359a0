package anim

import (
	"time"

	"github.com/safforddr/icubesmart/internal/cube"
	"github.com/safforddr/icubesmart/internal/input"
)

// Blink flashes the whole cube on then off.
type Blink struct {
	hold time.Duration
}

func NewBlink(h Holds) *Blink { return &Blink{hold: h.Blink} }

func (b *Blink) Name() string { return "blink" }

func (b *Blink) Run(fb *cube.Buffer, w Waiter) bool {
	fb.SetAll(true)
	if w.Hold(b.hold) != input.None {
		return true
	}
	fb.SetAll(false)
	return w.Hold(b.hold) != input.None
}
