// Package hw isolates the raw digital I/O of the cube board: the
// anode layer-select port, the cathode latch subsystem, and the three
// buttons. Everything above this package works in port bytes and
// logical button levels and never touches a pin directly.
package hw

// Bus is one cube board. All output ports are active-low at the pin
// level; callers pass the raw byte to put on the port.
type Bus interface {
	// WriteAnodes drives the 8 layer anode lines. Active-low one-hot:
	// 0xff blanks the whole cube.
	WriteAnodes(b byte)
	// SelectLatch drives the one-hot cathode latch select lines.
	SelectLatch(b byte)
	// WriteData puts a row byte on the cathode data bus.
	WriteData(b byte)
	// ReadButtons samples the three buttons. true means pressed.
	ReadButtons() (pause, reset, advance bool)
}
