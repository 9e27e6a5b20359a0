package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/safforddr/icubesmart/internal/anim"
	"github.com/safforddr/icubesmart/internal/cube"
	"github.com/safforddr/icubesmart/internal/input"
)

type nopWaiter struct{}

func (nopWaiter) Hold(time.Duration) input.Event { return input.None }

// stepAnim records runs and drives the control state from inside the
// animation, standing in for button presses that land mid-run.
type stepAnim struct {
	name string
	log  *[]string
	step func()
}

func (s *stepAnim) Name() string { return s.name }
func (s *stepAnim) Run(fb *cube.Buffer, w anim.Waiter) bool {
	*s.log = append(*s.log, s.name)
	if s.step != nil {
		s.step()
	}
	return false
}

func TestRunReReadsModeAfterEachAnimation(t *testing.T) {
	var log []string
	st := &input.State{}
	ctx, cancel := context.WithCancel(context.Background())

	reg := anim.NewRegistry()
	reg.Register(0, &stepAnim{name: "first", log: &log, step: func() { st.Mode = 1 }})
	reg.Register(1, &stepAnim{name: "second", log: &log, step: cancel})

	d := New(cube.New(), st, nopWaiter{}, reg, zerolog.Nop())
	d.Run(ctx)

	assert.Equal(t, []string{"first", "second"}, log)
}

func TestRunResetsUnknownMode(t *testing.T) {
	var log []string
	st := &input.State{Mode: 3}
	ctx, cancel := context.WithCancel(context.Background())

	reg := anim.NewRegistry()
	reg.Register(0, &stepAnim{name: "home", log: &log, step: cancel})

	d := New(cube.New(), st, nopWaiter{}, reg, zerolog.Nop())
	d.Run(ctx)

	assert.Equal(t, []string{"home"}, log)
	assert.Equal(t, 0, st.Mode)
}
