// cubesim runs the animation stack against a recorded fake bus and
// renders the frame buffer to the terminal, one 8x8 grid per Z layer.
// Useful for eyeballing animations without a cube on the desk.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/safforddr/icubesmart/internal/anim"
	"github.com/safforddr/icubesmart/internal/cube"
	"github.com/safforddr/icubesmart/internal/dispatch"
	"github.com/safforddr/icubesmart/internal/hw"
	"github.com/safforddr/icubesmart/internal/input"
	"github.com/safforddr/icubesmart/internal/mux"
)

func main() {
	var (
		mode     = flag.Int("mode", 0, "starting animation mode 0..4")
		duration = flag.Duration("duration", 10*time.Second, "how long to run")
		advance  = flag.Duration("advance-every", 0, "simulate a mode advance press at this interval (0 disables)")
		render   = flag.Duration("render-every", 200*time.Millisecond, "terminal render interval")
		tick     = flag.Duration("tick", 2*time.Millisecond, "scan tick")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	bus := hw.NewRecordingBus()
	fb := cube.New()
	st := &input.State{Mode: *mode}
	ctl := input.NewController(bus, st, 20*time.Millisecond, time.Millisecond)
	reg := anim.Default(anim.DefaultHolds())
	scanner := mux.NewScanner(fb, bus, 0)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	go scanner.Run(ctx, *tick, log.Logger)

	if *advance > 0 {
		go func() {
			t := time.NewTicker(*advance)
			defer t.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-t.C:
					// Hold the button for a few poll slices.
					bus.SetButtons(false, false, true)
					time.Sleep(5 * time.Millisecond)
					bus.SetButtons(false, false, false)
				}
			}
		}()
	}

	go func() {
		t := time.NewTicker(*render)
		defer t.Stop()
		frame := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				frame++
				draw(fb, st, frame)
			}
		}
	}()

	go dispatch.New(fb, st, ctl, reg, log.Logger).Run(ctx)

	<-ctx.Done()
	ops := bus.Ops()
	log.Info().Int("port_writes", len(ops)).Msg("simulation done")
}

// draw prints the cube as 8 side-by-side layer grids, bottom layer
// first, '#' for lit.
func draw(fb *cube.Buffer, st *input.State, frame int) {
	rows := fb.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "frame %d mode %d paused %v\n", frame, st.Mode, st.Paused)
	for y := cube.Size - 1; y >= 0; y-- {
		for z := 0; z < cube.Size; z++ {
			for x := 0; x < cube.Size; x++ {
				if rows[z][y]&(byte(128)>>x) == 0 {
					b.WriteByte('#')
				} else {
					b.WriteByte('.')
				}
			}
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}
