package cube

// Size is the cube edge length in voxels.
const Size = 8

// Axis selects the orientation of a plane for SetPlane.
type Axis int

const (
	AxisX Axis = iota // left to right
	AxisY             // front to back
	AxisZ             // bottom to top
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Buffer holds the LED state for the whole cube as 8 Z layers of 8 Y
// rows, one bit per X position with x=0 in the most significant bit.
// Storage matches the latch hardware, which is active-low: a cleared
// bit sinks (lights) the LED.
//
// The buffer is shared live between the animation code and the scan
// goroutine with no locking. A scan that lands in the middle of a
// multi-row update shows a partial frame for one refresh period, which
// persistence of vision hides. Callers guarantee indices are in
// [0, Size); there is no bounds checking.
type Buffer struct {
	rows [Size][Size]byte // [z][y]
}

// New returns an all-off buffer.
func New() *Buffer {
	b := &Buffer{}
	b.SetAll(false)
	return b
}

// SetAll turns every LED in the cube on or off.
func (b *Buffer) SetAll(on bool) {
	v := byte(0xff)
	if on {
		v = 0
	}
	for z := range b.rows {
		for y := range b.rows[z] {
			b.rows[z][y] = v
		}
	}
}

// SetPlane turns all 64 LEDs of one plane on or off.
func (b *Buffer) SetPlane(axis Axis, index int, on bool) {
	switch axis {
	case AxisX:
		mask := byte(128) >> index
		for z := 0; z < Size; z++ {
			for y := 0; y < Size; y++ {
				if on {
					b.rows[z][y] &^= mask
				} else {
					b.rows[z][y] |= mask
				}
			}
		}
	case AxisY:
		v := byte(0xff)
		if on {
			v = 0
		}
		for z := 0; z < Size; z++ {
			b.rows[z][index] = v
		}
	case AxisZ:
		v := byte(0xff)
		if on {
			v = 0
		}
		for y := 0; y < Size; y++ {
			b.rows[index][y] = v
		}
	}
}

// SetPoint turns the single LED at (x, y, z) on or off.
func (b *Buffer) SetPoint(x, y, z int, on bool) {
	mask := byte(128) >> x
	if on {
		b.rows[z][y] &^= mask
	} else {
		b.rows[z][y] |= mask
	}
}

// Point reports whether the LED at (x, y, z) is on.
func (b *Buffer) Point(x, y, z int) bool {
	return b.rows[z][y]&(byte(128)>>x) == 0
}

// LoadRow loads a full Y cross-section from an 8-byte positive-logic
// bitmap, one byte per Z layer bottom to top. The bitmap is inverted
// into the buffer's active-low storage.
func (b *Buffer) LoadRow(y int, pattern [Size]byte) {
	for z := 0; z < Size; z++ {
		b.rows[z][y] = ^pattern[z]
	}
}

// Row returns the raw active-low data byte for Y row y of Z layer z,
// exactly as it goes to the cathode latch.
func (b *Buffer) Row(z, y int) byte {
	return b.rows[z][y]
}

// Snapshot copies out the raw layer data, Z-major.
func (b *Buffer) Snapshot() [Size][Size]byte {
	return b.rows
}
