package bitmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFromMasks(t *testing.T) {
	m := NewFromMasks(48, 1, 0b100000)
	assert.Equal(t, 48, m.BitLen())
	assert.True(t, m.Test(0))
	assert.True(t, m.Test(5))
	assert.Equal(t, 2, m.Count())

	a := uint64(1) << 34
	b := uint64(1) << 47
	m = NewFromMasks(48, a, b)
	assert.True(t, m.Test(34))
	assert.True(t, m.Test(47))

	// Mask bits beyond the rounded-up capacity are dropped.
	m = NewFromMasks(8, uint64(1)<<40)
	assert.Equal(t, 0, m.Count())
}

func TestNewFromIndexes(t *testing.T) {
	m := NewFromIndexes(5, 1, 4)
	assert.Equal(t, 8, m.BitLen()) // rounded up
	assert.True(t, m.Test(1))
	assert.True(t, m.Test(4))
	assert.Equal(t, 2, m.Count())

	assert.Equal(t, 0, NewFromIndexes(16).Count())

	// Indices past the rounded capacity fail like Set.
	assert.Panics(t, func() { NewFromIndexes(8, 8) })
}
