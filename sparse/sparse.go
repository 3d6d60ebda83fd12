package sparse

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitmap"
)

// ToRoaring returns a Roaring bitmap holding the index of every set bit
// of m.
func ToRoaring(m *bitmap.Bitmap) *roaring.Bitmap {
	rb := roaring.New()
	forEachSetBit(m, func(i int) {
		rb.Add(uint32(i))
	})
	return rb
}

// FromRoaring returns a dense Bitmap of nbytes bytes with every index of
// rb set. Indices beyond the map's capacity are dropped.
func FromRoaring(nbytes int, rb *roaring.Bitmap) *bitmap.Bitmap {
	m := bitmap.New(nbytes)
	it := rb.Iterator()
	for it.HasNext() {
		if i := int(it.Next()); i < m.BitLen() {
			m.Set(i)
		}
	}
	return m
}

// ToBitSet returns a word-based BitSet of the same bit length as m with
// the same bits set.
func ToBitSet(m *bitmap.Bitmap) *bitset.BitSet {
	bs := bitset.New(uint(m.BitLen()))
	forEachSetBit(m, func(i int) {
		bs.Set(uint(i))
	})
	return bs
}

// FromBitSet returns a dense Bitmap of nbytes bytes with every set index
// of bs set. Indices beyond the map's capacity are dropped.
func FromBitSet(nbytes int, bs *bitset.BitSet) *bitmap.Bitmap {
	m := bitmap.New(nbytes)
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if int(i) < m.BitLen() {
			m.Set(int(i))
		}
	}
	return m
}

// forEachSetBit visits the set bits of m in increasing index order by
// stripping the lowest set bit of each byte.
func forEachSetBit(m *bitmap.Bitmap, fn func(i int)) {
	for by, b := range m.Bytes() {
		for b != 0 {
			fn(by*8 + bits.TrailingZeros8(b))
			b &= b - 1
		}
	}
}
