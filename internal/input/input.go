// Package input turns the three raw button lines into debounced edge
// events and owns the shared control state (pause flag and animation
// mode). Everything here runs on the cooperative main goroutine;
// animations call Hold between steps, which is where the buttons
// actually get polled.
package input

import "time"

// Event is a debounced button edge. At most one event is produced per
// Poll call.
type Event int

const (
	None Event = iota
	PauseToggled
	ModeReset
	ModeAdvanced
)

func (e Event) String() string {
	switch e {
	case PauseToggled:
		return "pause-toggled"
	case ModeReset:
		return "mode-reset"
	case ModeAdvanced:
		return "mode-advanced"
	}
	return "none"
}

// ModeCount is the number of animation modes the advance button
// cycles through.
const ModeCount = 5

// State is the shared control state. It is written only by the
// Controller and read by the dispatcher and animations, all on the
// same goroutine, so it needs no locking.
type State struct {
	Paused bool
	Mode   int
}

// Buttons samples the raw button levels; true means pressed.
type Buttons interface {
	ReadButtons() (pause, reset, advance bool)
}

const (
	btnPause = iota
	btnReset
	btnAdvance
)

// Controller debounces the buttons. Each button carries a new-press
// latch: the first sample that sees the button down fires the event
// and sets the latch, the controller then sleeps out a fixed debounce
// hold, and no repeat fires until the button is seen released.
//
// The clock and sleep functions are swappable so tests can run on a
// fake timeline.
type Controller struct {
	buttons  Buttons
	state    *State
	debounce time.Duration
	slice    time.Duration // poll interval inside Hold and the pause loop

	latched [3]bool

	now   func() time.Time
	sleep func(time.Duration)
}

func NewController(b Buttons, st *State, debounce, slice time.Duration) *Controller {
	return &Controller{
		buttons:  b,
		state:    st,
		debounce: debounce,
		slice:    slice,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Poll samples the buttons once and returns at most one event.
//
// Pause is special, and deliberately so: when the state is already
// paused, Poll stays in an inner loop that watches only the pause
// button until it is toggled off again. Mode presses made while
// paused are never observed. This matches the stock firmware's
// pause() routine.
func (c *Controller) Poll() Event {
	for {
		pause, _, _ := c.buttons.ReadButtons()
		if pause {
			if !c.latched[btnPause] {
				c.latched[btnPause] = true
				c.state.Paused = !c.state.Paused
				c.sleep(c.debounce)
				return PauseToggled
			}
		} else {
			c.latched[btnPause] = false
		}
		if !c.state.Paused {
			break
		}
		c.sleep(c.slice)
	}

	_, reset, advance := c.buttons.ReadButtons()
	if reset {
		if !c.latched[btnReset] {
			c.latched[btnReset] = true
			c.state.Mode = 0
			c.sleep(c.debounce)
			return ModeReset
		}
	} else {
		c.latched[btnReset] = false
	}
	if advance {
		if !c.latched[btnAdvance] {
			c.latched[btnAdvance] = true
			c.state.Mode = (c.state.Mode + 1) % ModeCount
			c.sleep(c.debounce)
			return ModeAdvanced
		}
	} else {
		c.latched[btnAdvance] = false
	}
	return None
}

// Hold delays the caller for d while keeping the buttons polled every
// slice. It returns early with the first ModeReset or ModeAdvanced
// event, which is the animation's cue to abort. Time spent paused
// inside Poll does not count against the hold, so a paused animation
// resumes its step where it left off.
func (c *Controller) Hold(d time.Duration) Event {
	remain := d
	for {
		start := c.now()
		switch ev := c.Poll(); ev {
		case ModeReset, ModeAdvanced:
			return ev
		case PauseToggled:
			// blocked time excluded from the hold
		default:
			remain -= c.now().Sub(start)
		}
		if remain <= 0 {
			return None
		}
		step := c.slice
		if remain < step {
			step = remain
		}
		c.sleep(step)
		remain -= step
	}
}
