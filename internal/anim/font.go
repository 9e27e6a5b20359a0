package anim

import "github.com/safforddr/icubesmart/internal/cube"

// font holds the scroll text bitmaps, positive logic, one byte per Z
// layer bottom to top, x=0 in the most significant bit.
var font = [...][cube.Size]byte{
	{0xf8, 0xfc, 0xc6, 0xc3, 0xc3, 0xc6, 0xfc, 0xf8}, // D
	{0xc3, 0xc3, 0xff, 0xff, 0xc3, 0x66, 0x3c, 0x18}, // A
	{0x18, 0x3c, 0x66, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3}, // V
	{0xff, 0xff, 0xc0, 0xf8, 0xf8, 0xc0, 0xff, 0xff}, // E
}
