package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDebounce = 20 * time.Millisecond
	testSlice    = time.Millisecond
)

// sim runs a Controller on a fake timeline: sleep advances the clock,
// and button levels are a pure function of elapsed time.
type sim struct {
	elapsed time.Duration
	levels  func(at time.Duration) (pause, reset, advance bool)
}

func (s *sim) ReadButtons() (bool, bool, bool) {
	if s.levels == nil {
		return false, false, false
	}
	return s.levels(s.elapsed)
}

func newSim(levels func(at time.Duration) (bool, bool, bool)) (*sim, *State, *Controller) {
	s := &sim{levels: levels}
	st := &State{}
	c := NewController(s, st, testDebounce, testSlice)
	c.now = func() time.Time { return time.Time{}.Add(s.elapsed) }
	c.sleep = func(d time.Duration) { s.elapsed += d }
	return s, st, c
}

func within(at, from, to time.Duration) bool { return at >= from && at < to }

func TestPressBetweenPollsIsDropped(t *testing.T) {
	// The press fits entirely inside one poll slice, so no sample
	// ever sees the button down.
	_, st, c := newSim(func(at time.Duration) (bool, bool, bool) {
		return false, false, within(at, 200*time.Microsecond, 800*time.Microsecond)
	})

	ev := c.Hold(10 * time.Millisecond)

	assert.Equal(t, None, ev)
	assert.Equal(t, 0, st.Mode)
}

func TestHeldPressFiresExactlyOnce(t *testing.T) {
	// Held well past the debounce window, then released; pressed
	// again later.
	_, st, c := newSim(func(at time.Duration) (bool, bool, bool) {
		pressed := within(at, 2*time.Millisecond, 60*time.Millisecond) ||
			within(at, 80*time.Millisecond, 90*time.Millisecond)
		return false, false, pressed
	})

	ev := c.Hold(100 * time.Millisecond)
	require.Equal(t, ModeAdvanced, ev)
	assert.Equal(t, 1, st.Mode)

	// Continuing to hold produces nothing; the release and second
	// press produce exactly one more event.
	ev = c.Hold(100 * time.Millisecond)
	require.Equal(t, ModeAdvanced, ev)
	assert.Equal(t, 2, st.Mode)

	ev = c.Hold(100 * time.Millisecond)
	assert.Equal(t, None, ev)
	assert.Equal(t, 2, st.Mode)
}

func TestModeResetReturnsToZero(t *testing.T) {
	_, st, c := newSim(func(at time.Duration) (bool, bool, bool) {
		return false, within(at, time.Millisecond, 30*time.Millisecond), false
	})
	st.Mode = 3

	ev := c.Hold(50 * time.Millisecond)

	assert.Equal(t, ModeReset, ev)
	assert.Equal(t, 0, st.Mode)
}

func TestModeAdvanceCyclesAndResets(t *testing.T) {
	// Four advance presses cycle 0 -> 1 -> 2 -> 3 -> 4, then a reset
	// returns to 0. Presses are spaced beyond the debounce window.
	_, st, c := newSim(func(at time.Duration) (bool, bool, bool) {
		slot := at / (50 * time.Millisecond)
		pressed := at%(50*time.Millisecond) < 25*time.Millisecond
		if slot < 4 {
			return false, false, pressed
		}
		return false, pressed, false
	})

	for want := 1; want <= 4; want++ {
		ev := c.Hold(50 * time.Millisecond)
		require.Equal(t, ModeAdvanced, ev)
		require.Equal(t, want%ModeCount, st.Mode)
	}
	assert.Equal(t, 4, st.Mode)

	ev := c.Hold(50 * time.Millisecond)
	require.Equal(t, ModeReset, ev)
	assert.Equal(t, 0, st.Mode)
}

func TestAdvanceWrapsModulo(t *testing.T) {
	_, st, c := newSim(func(at time.Duration) (bool, bool, bool) {
		return false, false, within(at, time.Millisecond, 30*time.Millisecond)
	})
	st.Mode = ModeCount - 1

	ev := c.Hold(50 * time.Millisecond)

	assert.Equal(t, ModeAdvanced, ev)
	assert.Equal(t, 0, st.Mode)
}

func TestPauseBlocksModeButtons(t *testing.T) {
	// Pause pressed at the first sample, released at 30ms. While
	// paused, both mode buttons are hammered; they must not be
	// observed. A second pause press at 200ms unpauses.
	s, st, c := newSim(func(at time.Duration) (bool, bool, bool) {
		pause := within(at, 0, 30*time.Millisecond) ||
			within(at, 200*time.Millisecond, 230*time.Millisecond)
		modes := within(at, 50*time.Millisecond, 180*time.Millisecond)
		return pause, modes, modes
	})

	ev := c.Poll()
	require.Equal(t, PauseToggled, ev)
	require.True(t, st.Paused)

	// This Poll blocks on the fake timeline until the second pause
	// press, never reporting the mode presses in between.
	ev = c.Poll()
	require.Equal(t, PauseToggled, ev)
	assert.False(t, st.Paused)
	assert.Equal(t, 0, st.Mode)
	assert.GreaterOrEqual(t, s.elapsed, 200*time.Millisecond)

	// Mode buttons are long released; nothing latent fires.
	assert.Equal(t, None, c.Poll())
	assert.Equal(t, 0, st.Mode)
}

func TestHoldExcludesPausedTime(t *testing.T) {
	// Pause from 5ms to 100ms in the middle of a 50ms hold. The hold
	// must still deliver its full 50ms of unpaused time.
	s, st, c := newSim(func(at time.Duration) (bool, bool, bool) {
		pause := within(at, 5*time.Millisecond, 10*time.Millisecond) ||
			within(at, 100*time.Millisecond, 130*time.Millisecond)
		return pause, false, false
	})

	ev := c.Hold(50 * time.Millisecond)

	assert.Equal(t, None, ev)
	assert.False(t, st.Paused)
	// 50ms of hold plus the ~95ms spent paused plus debounce holds.
	assert.GreaterOrEqual(t, s.elapsed, 150*time.Millisecond)
}

func TestHoldRunsFullDurationWithoutInput(t *testing.T) {
	s, _, c := newSim(nil)

	ev := c.Hold(40 * time.Millisecond)

	assert.Equal(t, None, ev)
	assert.Equal(t, 40*time.Millisecond, s.elapsed)
}
