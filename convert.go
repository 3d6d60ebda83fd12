package bitmap

// Unsigned constrains the fixed-width integer overloads of the
// conversion and bitwise-interop functions. Platform-sized types (uint,
// uintptr) are excluded on purpose: the byte layout of a map must not
// depend on the build target.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FromBytes returns a Bitmap of nbytes bytes seeded from src. If the map
// is smaller than src, only the low-order nbytes bytes are copied. If it
// is larger, the remaining high-order bytes stay zero. A zero capacity
// yields the empty map regardless of src. FromBytes panics if nbytes is
// negative.
func FromBytes(nbytes int, src []byte) *Bitmap {
	m := New(nbytes)
	copy(m.bits, src)
	return m
}

// FromUint returns a Bitmap of nbytes bytes seeded from the little-endian
// byte representation of v, applying the same truncate/zero-fill rules as
// FromBytes.
func FromUint[T Unsigned](nbytes int, v T) *Bitmap {
	return FromBytes(nbytes, uintToLE(v))
}

// uintToLE encodes v as its little-endian byte representation, one byte
// per 8 bits of the value's width.
func uintToLE[T Unsigned](v T) []byte {
	buf := make([]byte, uintWidth(v))
	u := uint64(v)
	for i := range buf {
		buf[i] = byte(u >> (8 * i))
	}
	return buf
}

// uintFromLE decodes a little-endian byte slice back into T. Bytes past
// the width of T must not be present.
func uintFromLE[T Unsigned](buf []byte) T {
	var u uint64
	for i, b := range buf {
		u |= uint64(b) << (8 * i)
	}
	return T(u)
}

// uintWidth returns the storage width of T in bytes.
func uintWidth[T Unsigned](v T) int {
	switch {
	case uint64(^T(0)) == 0xff:
		return 1
	case uint64(^T(0)) == 0xffff:
		return 2
	case uint64(^T(0)) == 0xffffffff:
		return 4
	default:
		return 8
	}
}
