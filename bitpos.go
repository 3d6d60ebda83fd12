package bitmap

// byteOf returns the storage byte holding logical bit index i.
func byteOf(i int) int { return i >> 3 }

// bitOf returns the position of logical bit index i within its byte.
func bitOf(i int) int { return i & 7 }

// splitIndex maps a linear bit index to (byte offset, bit offset).
func splitIndex(i int) (int, int) { return byteOf(i), bitOf(i) }

// outOfRange reports whether bit index i addresses a byte at or past
// nbytes. Negative indices are out of range by definition.
func outOfRange(nbytes, i int) bool { return i < 0 || byteOf(i) >= nbytes }

// popcount8 counts the set bits of one byte with a parallel-bits
// reduction: pairwise 2-bit sums, then 4-bit groups, then the byte fold.
func popcount8(b byte) int {
	b = (b & 0x55) + ((b >> 1) & 0x55)
	b = (b & 0x33) + ((b >> 2) & 0x33)
	b = (b & 0x0f) + ((b >> 4) & 0x0f)
	return int(b)
}

// lowBitPos maps an isolated single-bit byte (a power of two) to its bit
// position. All non-power-of-two entries are unused.
var lowBitPos = [256]uint8{
	1 << 0: 0,
	1 << 1: 1,
	1 << 2: 2,
	1 << 3: 3,
	1 << 4: 4,
	1 << 5: 5,
	1 << 6: 6,
	1 << 7: 7,
}
