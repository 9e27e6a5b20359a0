package anim

import "github.com/safforddr/icubesmart/internal/cube"

// Combo chains other animations in order. The first interruption
// aborts the whole chain; no position is remembered, so re-entering
// the mode starts over from the first link.
type Combo struct {
	chain []Animation
}

func NewCombo(chain ...Animation) *Combo { return &Combo{chain: chain} }

func (c *Combo) Name() string { return "combo" }

func (c *Combo) Run(fb *cube.Buffer, w Waiter) bool {
	for _, a := range c.chain {
		if a.Run(fb, w) {
			return true
		}
	}
	return false
}
