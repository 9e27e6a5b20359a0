package hw

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

// Wire opcodes for a tethered cube. Each write is a 2-byte packet
// [op, value]; opButtons requests a single reply byte with the three
// button levels in bits 0..2 (1 = pressed).
const (
	opAnodes  = 0x41 // 'A'
	opLatch   = 0x4c // 'L'
	opData    = 0x44 // 'D'
	opButtons = 0x42 // 'B'
)

// SerialBus drives a cube whose controller sits on the far side of a
// USB serial link and mirrors port writes it receives.
type SerialBus struct {
	mu   sync.Mutex
	port serial.Port

	// last levels returned when a button poll times out, so a dropped
	// reply reads as "no change" rather than "all released"
	levels byte
}

var _ Bus = (*SerialBus)(nil)

// OpenSerialBus opens the device and applies a short read timeout so
// a wedged controller cannot stall the poll loop.
func OpenSerialBus(device string, baud int) (*SerialBus, error) {
	port, err := serial.Open(device, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", device)
	}
	if err := port.SetReadTimeout(20 * time.Millisecond); err != nil {
		port.Close()
		return nil, errors.Wrap(err, "set read timeout")
	}
	return &SerialBus{port: port}, nil
}

func (s *SerialBus) Close() error {
	return s.port.Close()
}

func (s *SerialBus) write(op, v byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Write errors are swallowed: the scan loop has no failure path,
	// and a dead link simply leaves the cube dark.
	_, _ = s.port.Write([]byte{op, v})
}

func (s *SerialBus) WriteAnodes(b byte) { s.write(opAnodes, b) }
func (s *SerialBus) SelectLatch(b byte) { s.write(opLatch, b) }
func (s *SerialBus) WriteData(b byte)   { s.write(opData, b) }

func (s *SerialBus) ReadButtons() (pause, reset, advance bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.port.Write([]byte{opButtons, 0}); err == nil {
		var buf [1]byte
		if n, err := s.port.Read(buf[:]); err == nil && n == 1 {
			s.levels = buf[0]
		}
	}
	return s.levels&1 != 0, s.levels&2 != 0, s.levels&4 != 0
}
