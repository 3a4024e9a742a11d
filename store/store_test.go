package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tag uint16

func TestWidth(t *testing.T) {
	assert.Equal(t, uint(8), Width[uint8]())
	assert.Equal(t, uint(16), Width[uint16]())
	assert.Equal(t, uint(32), Width[uint32]())
	assert.Equal(t, uint(64), Width[uint64]())
	assert.Equal(t, uint(16), Width[tag]())
	assert.Equal(t, uintptr(2), Size[tag]())
}

func TestTestWrite(t *testing.T) {
	var e uint8
	e = Write(e, 0, true)
	e = Write(e, 7, true)
	assert.Equal(t, uint8(0b1000_0001), e)
	assert.True(t, Test(e, 0))
	assert.False(t, Test(e, 1))
	assert.True(t, Test(e, 7))

	e = Write(e, 0, false)
	assert.Equal(t, uint8(0b1000_0000), e)

	// writing does not touch the other bits
	e = Write(e, 3, false)
	assert.Equal(t, uint8(0b1000_0000), e)
}

func TestMaskRange(t *testing.T) {
	tests := map[string]struct {
		from, to uint
		expected uint8
	}{
		"empty":      {3, 3, 0},
		"full":       {0, 8, 0xff},
		"low":        {0, 3, 0b0000_0111},
		"high":       {5, 8, 0b1110_0000},
		"middle":     {2, 6, 0b0011_1100},
		"single_top": {7, 8, 0b1000_0000},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaskRange[uint8](tc.from, tc.to))
		})
	}

	assert.Equal(t, ^uint64(0), MaskRange[uint64](0, 64))
	assert.Equal(t, uint64(1)<<63, MaskRange[uint64](63, 64))
	assert.Equal(t, tag(0xff00), MaskRange[tag](8, 16))
}

func TestName(t *testing.T) {
	assert.Equal(t, "uint8", Name[uint8]())
	assert.Equal(t, "uint64", Name[uint64]())
}
