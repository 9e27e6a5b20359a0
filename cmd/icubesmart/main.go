// icubesmart drives an 8x8x8 monochrome LED cube (icubesmart 3D8S or
// compatible) and plays the built-in animations, selectable and
// pausable with the board's three buttons.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/host/v3"

	"github.com/safforddr/icubesmart/internal/anim"
	"github.com/safforddr/icubesmart/internal/config"
	"github.com/safforddr/icubesmart/internal/cube"
	"github.com/safforddr/icubesmart/internal/dispatch"
	"github.com/safforddr/icubesmart/internal/hw"
	"github.com/safforddr/icubesmart/internal/input"
	"github.com/safforddr/icubesmart/internal/monitor"
	"github.com/safforddr/icubesmart/internal/mux"
)

func main() {
	var (
		configPath = flag.String("config", "cube.yaml", "path to config file (missing file means defaults)")
		driver     = flag.String("driver", "", "override driver: gpio | serial | sim")
		addr       = flag.String("addr", "", "monitor listen address (overrides config; empty keeps config)")
		dev        = flag.String("dev", "", "serial device (overrides config)")
		debug      = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("config")
	}
	if *driver != "" {
		cfg.Driver = *driver
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *dev != "" {
		cfg.Serial.Dev = *dev
	}

	bus, err := openBus(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Driver).Msg("open bus")
	}
	log.Info().Str("driver", cfg.Driver).Msg("bus ready")

	fb := cube.New()
	st := &input.State{}
	ctl := input.NewController(bus, st, cfg.Timing.Debounce(), cfg.Timing.PollSlice())
	reg := anim.Default(anim.Holds{
		Blink:     cfg.Holds.Blink(),
		Plane:     cfg.Holds.Plane(),
		Point:     cfg.Holds.Point(),
		TextRow:   cfg.Holds.TextRow(),
		TextFlash: cfg.Holds.TextFlash(),
	})
	scanner := mux.NewScanner(fb, bus, cfg.Timing.Settle())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go scanner.Run(ctx, cfg.Timing.Tick(), log.Logger)

	if cfg.Addr != "" {
		mon := monitor.New(fb, st, 50*time.Millisecond, log.Logger)
		go mon.Run(ctx)
		go func() {
			log.Info().Str("addr", cfg.Addr).Msg("monitor listening")
			srv := &http.Server{Addr: cfg.Addr, Handler: mon.Handler()}
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("monitor server")
			}
		}()
	}

	// The dispatcher may sit inside a hold (or a pause) indefinitely,
	// so it runs detached and the process exits around it.
	go dispatch.New(fb, st, ctl, reg, log.Logger).Run(ctx)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	s := <-ch
	log.Info().Str("signal", s.String()).Msg("shutting down")
	cancel()

	// Give the scan loop a moment to blank the cube.
	time.Sleep(2 * cfg.Timing.Tick())
	scanner.Blank()
}

func openBus(cfg *config.Config) (hw.Bus, error) {
	switch cfg.Driver {
	case "serial":
		return hw.OpenSerialBus(cfg.Serial.Dev, cfg.Serial.Baud)
	case "sim":
		return hw.NewRecordingBus(), nil
	default:
		if _, err := host.Init(); err != nil {
			return nil, err
		}
		return hw.NewGPIOBus(hw.Pins(cfg.Pins))
	}
}
