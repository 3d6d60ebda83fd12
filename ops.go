package bitmap

// And returns the bitwise AND of the map's leading bytes with src,
// without mutating the map. The result has the length of src. When src
// is longer than the map, the bytes past the overlap are zero-filled.
func (m *Bitmap) And(src []byte) []byte {
	m.ensureUnborrowed()
	out := make([]byte, len(src))
	n := min(len(m.bits), len(src))
	for i := 0; i < n; i++ {
		out[i] = m.bits[i] & src[i]
	}
	return out
}

// AndAssign ANDs src into the map in place and returns the receiver for
// chaining. Map bytes past the end of src are zeroed: AND-assign treats
// missing operand bytes as all-zero, unlike And, which copies them into
// the output. Bytes of src past the map's capacity are ignored.
func (m *Bitmap) AndAssign(src []byte) *Bitmap {
	m.ensureUnborrowed()
	n := min(len(m.bits), len(src))
	for i := 0; i < n; i++ {
		m.bits[i] &= src[i]
	}
	clear(m.bits[n:])
	return m
}

// OrAssign ORs src into the map in place and returns the receiver for
// chaining. Only the overlapping bytes are touched; the rest of the map
// keeps its content, and bytes of src past the map's capacity are
// ignored.
func (m *Bitmap) OrAssign(src []byte) *Bitmap {
	m.ensureUnborrowed()
	n := min(len(m.bits), len(src))
	for i := 0; i < n; i++ {
		m.bits[i] |= src[i]
	}
	return m
}

// FillPrefix overwrites the map's leading bytes with src, leaving the
// remainder untouched, and returns the receiver for chaining. It is a
// copy, not an OR or AND: the existing prefix content is replaced.
func (m *Bitmap) FillPrefix(src []byte) *Bitmap {
	m.ensureUnborrowed()
	copy(m.bits, src)
	return m
}

// AndUint is the fixed-width integer overload of And: v is reinterpreted
// as its little-endian bytes, ANDed against the map, and the result is
// reinterpreted back into T.
func AndUint[T Unsigned](m *Bitmap, v T) T {
	return uintFromLE[T](m.And(uintToLE(v)))
}

// AndAssignUint is the fixed-width integer overload of AndAssign. As
// with the byte-slice form, map bytes past the width of T are zeroed.
func AndAssignUint[T Unsigned](m *Bitmap, v T) *Bitmap {
	return m.AndAssign(uintToLE(v))
}

// OrAssignUint is the fixed-width integer overload of OrAssign.
func OrAssignUint[T Unsigned](m *Bitmap, v T) *Bitmap {
	return m.OrAssign(uintToLE(v))
}

// FillPrefixUint is the fixed-width integer overload of FillPrefix.
func FillPrefixUint[T Unsigned](m *Bitmap, v T) *Bitmap {
	return m.FillPrefix(uintToLE(v))
}
