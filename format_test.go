package bitmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	m := New(3)
	m.Set(0)
	m.Set(8)

	// Only the last two bytes show, most significant first, with an
	// ellipsis marking the truncation.
	assert.Equal(t, "[24 bits] ...00000001 00000001", m.String())

	assert.Equal(t, "[8 bits] 00000000", New(1).String())
	assert.Equal(t, "[16 bits] 00000000 00000001", New(2).Set(0).String())
	assert.Equal(t, "[0 bits] ", New(0).String())
}

func TestRangeString(t *testing.T) {
	m := FromUint(2, uint16(0b_011_11001100))

	s, err := m.RangeString(2, 11)
	require.NoError(t, err)
	assert.Equal(t, "011 110011", s)

	s, err = m.RangeString(4, 10)
	require.NoError(t, err)
	assert.Equal(t, "11 1100", s)

	m2 := FromUint(2, uint16(0b_01_10000000))
	s, err = m2.RangeString(4, 10)
	require.NoError(t, err)
	assert.Equal(t, "01 1000", s)
}

func TestRangeStringSingleBits(t *testing.T) {
	m := New(2)
	m.Set(1).Set(5).Set(12)

	s, err := m.RangeString(5, 6)
	require.NoError(t, err)
	assert.Equal(t, "1", s)

	s, err = m.RangeString(7, 8)
	require.NoError(t, err)
	assert.Equal(t, "0", s)

	// Crossing the byte boundary inserts the separator.
	s, err = m.RangeString(7, 9)
	require.NoError(t, err)
	assert.Equal(t, "0 0", s)
}

func TestRangeStringInvalid(t *testing.T) {
	m := FromUint(2, uint16(0b_011_11001100))

	tests := []struct {
		name       string
		start, end int
	}{
		{name: "empty", start: 0, end: 0},
		{name: "inverted", start: 2, end: 1},
		{name: "end out of bounds", start: 0, end: 100},
		{name: "start out of bounds", start: 100, end: 101},
		{name: "negative start", start: -1, end: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.RangeString(tt.start, tt.end)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}
