// Package dispatch owns the outer mode loop: run the animation the
// current mode selects, and when it returns, for whatever reason,
// re-read the mode and go again.
package dispatch

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/safforddr/icubesmart/internal/anim"
	"github.com/safforddr/icubesmart/internal/cube"
	"github.com/safforddr/icubesmart/internal/input"
)

type Dispatcher struct {
	fb  *cube.Buffer
	st  *input.State
	w   anim.Waiter
	reg *anim.Registry
	log zerolog.Logger
}

func New(fb *cube.Buffer, st *input.State, w anim.Waiter, reg *anim.Registry, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{fb: fb, st: st, w: w, reg: reg, log: log}
}

// Run loops until ctx is canceled. Cancellation is only noticed
// between animations; a running animation finishes its sequence (or
// gets interrupted by a mode change) first.
func (d *Dispatcher) Run(ctx context.Context) {
	for ctx.Err() == nil {
		mode := d.st.Mode
		a, ok := d.reg.Get(mode)
		if !ok {
			d.log.Warn().Int("mode", mode).Msg("no animation for mode, resetting")
			d.st.Mode = 0
			continue
		}
		d.log.Debug().Int("mode", mode).Str("animation", a.Name()).Msg("running animation")
		if a.Run(d.fb, d.w) {
			d.log.Debug().
				Int("mode", d.st.Mode).
				Str("animation", a.Name()).
				Msg("animation interrupted")
		}
	}
}
