package mux_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safforddr/icubesmart/internal/cube"
	"github.com/safforddr/icubesmart/internal/hw"
	"github.com/safforddr/icubesmart/internal/mux"
)

func TestScanSelectsEachLayerOnce(t *testing.T) {
	fb := cube.New()
	bus := hw.NewRecordingBus()
	s := mux.NewScanner(fb, bus, 0)

	seen := map[int]int{}
	for i := 0; i < cube.Size; i++ {
		bus.Reset()
		s.Scan()

		anodes := bus.Writes(hw.PortAnodes)
		require.Len(t, anodes, 2)
		// Blank first, then exactly one line asserted low.
		assert.Equal(t, byte(0xff), anodes[0])
		enabled := ^anodes[1]
		require.Equal(t, 1, bits.OnesCount8(enabled), "anode enable %#02x not one-hot", anodes[1])
		seen[bits.TrailingZeros8(enabled)]++
	}

	for layer := 0; layer < cube.Size; layer++ {
		assert.Equal(t, 1, seen[layer], "layer %d", layer)
	}
	// Cursor wrapped back to the start.
	assert.Equal(t, 0, s.Layer())
}

func TestScanLoadsRowsInLatchOrder(t *testing.T) {
	fb := cube.New()
	// Distinct byte per row of layer 0.
	for y := 0; y < cube.Size; y++ {
		fb.LoadRow(y, [cube.Size]byte{byte(y + 1)})
	}

	bus := hw.NewRecordingBus()
	s := mux.NewScanner(fb, bus, 0)
	s.Scan()

	latches := bus.Writes(hw.PortLatch)
	data := bus.Writes(hw.PortData)
	require.Len(t, latches, cube.Size)
	require.Len(t, data, cube.Size)
	for y := 0; y < cube.Size; y++ {
		assert.Equal(t, byte(1)<<y, latches[y], "latch select %d", y)
		assert.Equal(t, fb.Row(0, y), data[y], "row data %d", y)
	}

	// Each latch select is followed by its data write, after the
	// blank and before the layer enable.
	ops := bus.Ops()
	require.Equal(t, hw.PortAnodes, ops[0].Port)
	require.Equal(t, hw.PortAnodes, ops[len(ops)-1].Port)
	for i := 1; i < len(ops)-1; i += 2 {
		assert.Equal(t, hw.PortLatch, ops[i].Port)
		assert.Equal(t, hw.PortData, ops[i+1].Port)
	}
}
