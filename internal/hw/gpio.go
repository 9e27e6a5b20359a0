package hw

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Pins names the GPIO lines for each port, LSB first. Button lines
// are active-low with internal pull-ups, like the stock controller's
// P4 port.
type Pins struct {
	Anodes  [8]string
	Latch   [8]string
	Data    [8]string
	Buttons [3]string
}

// GPIOBus drives the cube through discrete GPIO lines, eight per
// output port. periph's host must be initialized before opening.
type GPIOBus struct {
	anodes  [8]gpio.PinIO
	latch   [8]gpio.PinIO
	data    [8]gpio.PinIO
	buttons [3]gpio.PinIO
}

var _ Bus = (*GPIOBus)(nil)

// NewGPIOBus resolves every named pin, configures outputs high
// (everything deasserted) and button inputs with pull-ups.
func NewGPIOBus(p Pins) (*GPIOBus, error) {
	b := &GPIOBus{}
	out := func(name string) (gpio.PinIO, error) {
		pin := gpioreg.ByName(name)
		if pin == nil {
			return nil, errors.Errorf("no such pin %q", name)
		}
		if err := pin.Out(gpio.High); err != nil {
			return nil, errors.Wrapf(err, "pin %s", name)
		}
		return pin, nil
	}
	for i := 0; i < 8; i++ {
		var err error
		if b.anodes[i], err = out(p.Anodes[i]); err != nil {
			return nil, errors.Wrap(err, "anode port")
		}
		if b.latch[i], err = out(p.Latch[i]); err != nil {
			return nil, errors.Wrap(err, "latch select port")
		}
		if b.data[i], err = out(p.Data[i]); err != nil {
			return nil, errors.Wrap(err, "data port")
		}
	}
	for i := 0; i < 3; i++ {
		pin := gpioreg.ByName(p.Buttons[i])
		if pin == nil {
			return nil, errors.Errorf("no such pin %q", p.Buttons[i])
		}
		if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, errors.Wrapf(err, "button pin %s", p.Buttons[i])
		}
		b.buttons[i] = pin
	}
	return b, nil
}

func writePort(pins *[8]gpio.PinIO, b byte) {
	for i := 0; i < 8; i++ {
		_ = pins[i].Out(gpio.Level(b&(1<<i) != 0))
	}
}

func (g *GPIOBus) WriteAnodes(b byte) { writePort(&g.anodes, b) }
func (g *GPIOBus) SelectLatch(b byte) { writePort(&g.latch, b) }
func (g *GPIOBus) WriteData(b byte)   { writePort(&g.data, b) }

// ReadButtons samples the button lines. Pressed pulls the line low.
func (g *GPIOBus) ReadButtons() (pause, reset, advance bool) {
	return g.buttons[0].Read() == gpio.Low,
		g.buttons[1].Read() == gpio.Low,
		g.buttons[2].Read() == gpio.Low
}
