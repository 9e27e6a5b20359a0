// Package mux refreshes the cube by time multiplexing: one Z layer is
// lit per tick, so the full cube refreshes every 8 ticks. Keep the
// tick at or under ~2.5ms so the aggregate refresh stays above the
// ~50Hz flicker threshold.
package mux

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/safforddr/icubesmart/internal/cube"
	"github.com/safforddr/icubesmart/internal/hw"
)

// Scanner scans the frame buffer out to the board one layer per Scan
// call. The layer cursor is private to the scan goroutine; nothing
// else touches it. Scan never fails: a buffer caught mid-update is
// rendered as a partial frame, not reported.
type Scanner struct {
	fb     *cube.Buffer
	bus    hw.Bus
	settle time.Duration
	layer  int
}

func NewScanner(fb *cube.Buffer, bus hw.Bus, settle time.Duration) *Scanner {
	return &Scanner{fb: fb, bus: bus, settle: settle}
}

// Layer returns the layer the next Scan will light.
func (s *Scanner) Layer() int { return s.layer }

// Scan drives one layer:
//
//  1. blank all anode lines so the previous layer cannot ghost onto
//     the new column data,
//  2. load the 8 row bytes into the cathode latches, with a settle
//     gap between latch select and data strobe,
//  3. enable exactly the current layer (active-low one-hot),
//  4. advance the layer cursor mod 8.
func (s *Scanner) Scan() {
	s.bus.WriteAnodes(0xff)
	for y := 0; y < cube.Size; y++ {
		s.bus.SelectLatch(1 << y)
		s.wait()
		s.bus.WriteData(s.fb.Row(s.layer, y))
		s.wait()
	}
	s.bus.WriteAnodes(^(byte(1) << s.layer))
	s.layer = (s.layer + 1) % cube.Size
}

// Blank turns every anode line off.
func (s *Scanner) Blank() {
	s.bus.WriteAnodes(0xff)
}

// Run scans on every tick until ctx is canceled, then blanks the
// cube. This is the periodic timer context; everything else in the
// process is cooperative.
func (s *Scanner) Run(ctx context.Context, tick time.Duration, log zerolog.Logger) {
	t := time.NewTicker(tick)
	defer t.Stop()
	log.Info().Dur("tick", tick).Msg("scan loop started")
	for {
		select {
		case <-ctx.Done():
			s.Blank()
			log.Info().Msg("scan loop stopped")
			return
		case <-t.C:
			s.Scan()
		}
	}
}

// wait spins out the latch settle gap. It is a few microseconds, well
// below timer sleep granularity, so sleeping is not an option here.
func (s *Scanner) wait() {
	if s.settle <= 0 {
		return
	}
	for end := time.Now().Add(s.settle); time.Now().Before(end); {
	}
}
