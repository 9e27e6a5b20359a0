// Package config loads the controller configuration. Every knob has a
// compiled-in default matching the stock firmware's timing constants;
// the YAML file only overrides.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Timing struct {
	TickUs      int `yaml:"tick_us"`       // scan tick; full refresh is 8 ticks
	SettleUs    int `yaml:"settle_us"`     // latch select to data strobe gap
	DebounceMs  int `yaml:"debounce_ms"`   // hold after an accepted press
	PollSliceMs int `yaml:"poll_slice_ms"` // button poll interval inside holds
}

type Holds struct {
	BlinkMs     int `yaml:"blink_ms"`
	PlaneMs     int `yaml:"plane_ms"`
	PointMs     int `yaml:"point_ms"`
	TextRowMs   int `yaml:"text_row_ms"`
	TextFlashMs int `yaml:"text_flash_ms"`
}

type Pins struct {
	Anodes  [8]string `yaml:"anodes"`
	Latch   [8]string `yaml:"latch"`
	Data    [8]string `yaml:"data"`
	Buttons [3]string `yaml:"buttons"`
}

type Serial struct {
	Dev  string `yaml:"dev"`  // e.g. /dev/ttyUSB0
	Baud int    `yaml:"baud"` // e.g. 115200
}

type Config struct {
	Driver string `yaml:"driver"`         // "gpio" | "serial" | "sim"
	Addr   string `yaml:"addr,omitempty"` // monitor listen address; empty disables

	Timing Timing `yaml:"timing"`
	Holds  Holds  `yaml:"holds"`
	Pins   Pins   `yaml:"pins,omitempty"`
	Serial Serial `yaml:"serial,omitempty"`
}

// Default returns the stock configuration: 2ms scan tick (62.5Hz full
// cube), hold durations matching the original firmware's delay
// counts, and the 3D8S serial device defaults.
func Default() *Config {
	return &Config{
		Driver: "gpio",
		Timing: Timing{
			TickUs:      2000,
			SettleUs:    15,
			DebounceMs:  20,
			PollSliceMs: 1,
		},
		Holds: Holds{
			BlinkMs:     300,
			PlaneMs:     50,
			PointMs:     5,
			TextRowMs:   25,
			TextFlashMs: 150,
		},
		Serial: Serial{
			Dev:  "/dev/ttyUSB0",
			Baud: 115200,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error;
// it just means the compiled-in configuration.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	return errors.Wrap(os.WriteFile(path, b, 0644), "write config")
}

func (t Timing) Tick() time.Duration      { return time.Duration(t.TickUs) * time.Microsecond }
func (t Timing) Settle() time.Duration    { return time.Duration(t.SettleUs) * time.Microsecond }
func (t Timing) Debounce() time.Duration  { return time.Duration(t.DebounceMs) * time.Millisecond }
func (t Timing) PollSlice() time.Duration { return time.Duration(t.PollSliceMs) * time.Millisecond }

func (h Holds) Blink() time.Duration     { return time.Duration(h.BlinkMs) * time.Millisecond }
func (h Holds) Plane() time.Duration     { return time.Duration(h.PlaneMs) * time.Millisecond }
func (h Holds) Point() time.Duration     { return time.Duration(h.PointMs) * time.Millisecond }
func (h Holds) TextRow() time.Duration   { return time.Duration(h.TextRowMs) * time.Millisecond }
func (h Holds) TextFlash() time.Duration { return time.Duration(h.TextFlashMs) * time.Millisecond }
