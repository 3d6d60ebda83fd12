package bitmap

// NewFromMasks returns a Bitmap of at least nbits bits (rounded up to a
// byte boundary) with every mask ORed into its low-order bytes. Mask
// bits beyond the map's capacity are ignored, matching OrAssign.
func NewFromMasks(nbits int, masks ...uint64) *Bitmap {
	m := NewBits(nbits)
	for _, mask := range masks {
		OrAssignUint(m, mask)
	}
	return m
}

// NewFromIndexes returns a Bitmap of at least nbits bits (rounded up to
// a byte boundary) with the given bit indices set. It panics if an index
// is out of range for the rounded-up capacity, exactly as Set does.
func NewFromIndexes(nbits int, indexes ...int) *Bitmap {
	m := NewBits(nbits)
	for _, index := range indexes {
		m.Set(index)
	}
	return m
}
