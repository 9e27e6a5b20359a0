package monitor

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safforddr/icubesmart/internal/cube"
	"github.com/safforddr/icubesmart/internal/input"
)

func TestSnapshotEncodesLayersZMajor(t *testing.T) {
	fb := cube.New()
	fb.SetPoint(0, 0, 0, true) // layer 0, row 0, MSB cleared
	fb.SetPlane(cube.AxisZ, 7, true)
	st := &input.State{Mode: 2, Paused: true}

	s := New(fb, st, 50*time.Millisecond, zerolog.Nop())
	f := s.snapshot()

	assert.Equal(t, "frame", f.Type)
	assert.Equal(t, 2, f.Mode)
	assert.True(t, f.Paused)

	raw, err := base64.StdEncoding.DecodeString(f.Layers)
	require.NoError(t, err)
	require.Len(t, raw, 64)
	assert.Equal(t, byte(0x7f), raw[0]) // (0,0,0) lit, stored active-low
	for y := 0; y < cube.Size; y++ {
		assert.Equal(t, byte(0x00), raw[7*8+y], "top layer row %d", y)
	}
	// Everything else dark.
	for i := 1; i < 56; i++ {
		assert.Equal(t, byte(0xff), raw[i], "byte %d", i)
	}
}
