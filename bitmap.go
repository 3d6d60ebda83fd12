package bitmap

import "fmt"

// Bitmap is an ordered, fixed-length sequence of boolean flags packed
// eight per byte. Bit k of byte b represents logical bit index b*8 + k.
//
// The byte capacity is fixed at construction; no resizing operation
// exists. A zero-capacity map is legal: it has no addressable bits,
// whole-map operations on it are no-ops and scans find nothing.
//
// A Bitmap is not safe for concurrent use.
type Bitmap struct {
	bits []byte

	// mut points at the outstanding exclusive bit reference, if any.
	// While non-nil, every other access to the map panics.
	mut *BitRefMut
}

// New returns an all-zero Bitmap backed by nbytes bytes of storage.
// nbytes may be zero. New panics if nbytes is negative.
func New(nbytes int) *Bitmap {
	if nbytes < 0 {
		panic(fmt.Sprintf("bitmap: negative capacity %d", nbytes))
	}
	return &Bitmap{bits: make([]byte, nbytes)}
}

// NewBits returns an all-zero Bitmap able to hold at least nbits bits.
// The capacity is rounded up to the next byte boundary, so the resulting
// map may address up to 7 more bits than requested. NewBits panics if
// nbits is negative.
func NewBits(nbits int) *Bitmap {
	if nbits < 0 {
		panic(fmt.Sprintf("bitmap: negative bit length %d", nbits))
	}
	return New((nbits + 7) >> 3)
}

// Wrap returns a Bitmap that uses buf directly as its backing storage,
// without copying. Mutations through the map are visible in buf and vice
// versa, which lets a Bitmap live at a controlled position inside a
// larger buffer. The caller must not change the length of buf while the
// map is in use.
func Wrap(buf []byte) *Bitmap {
	return &Bitmap{bits: buf}
}

// BitLen returns the capacity of the map in bits.
func (m *Bitmap) BitLen() int { return len(m.bits) * 8 }

// ByteLen returns the capacity of the map in bytes.
func (m *Bitmap) ByteLen() int { return len(m.bits) }

// GetBool returns the value of the bit at index.
// It panics if index is out of range or the map is mutably borrowed.
func (m *Bitmap) GetBool(index int) bool {
	m.ensureUnborrowed()
	if outOfRange(len(m.bits), index) {
		panicOutOfRange("get", len(m.bits), index)
	}
	return m.getBit(index)
}

// Get01 returns the bit at index as 0 or 1.
// It panics under the same conditions as GetBool.
func (m *Bitmap) Get01(index int) byte {
	if m.GetBool(index) {
		return 1
	}
	return 0
}

// Test reports whether the bit at index is set. It is an alias for
// GetBool and panics under the same conditions.
func (m *Bitmap) Test(index int) bool { return m.GetBool(index) }

// Set sets the bit at index to 1 and returns the receiver for chaining.
// The map is mutated in place. It panics if index is out of range or the
// map is mutably borrowed.
func (m *Bitmap) Set(index int) *Bitmap {
	m.ensureUnborrowed()
	if outOfRange(len(m.bits), index) {
		panicOutOfRange("set", len(m.bits), index)
	}
	by, bit := splitIndex(index)
	m.bits[by] |= 1 << bit
	return m
}

// Reset sets the bit at index to 0 and returns the receiver for
// chaining. It panics under the same conditions as Set.
func (m *Bitmap) Reset(index int) *Bitmap {
	m.ensureUnborrowed()
	if outOfRange(len(m.bits), index) {
		panicOutOfRange("reset", len(m.bits), index)
	}
	by, bit := splitIndex(index)
	m.bits[by] &^= 1 << bit
	return m
}

// Flip toggles the bit at index and returns the receiver for chaining.
// It panics under the same conditions as Set.
func (m *Bitmap) Flip(index int) *Bitmap {
	m.ensureUnborrowed()
	if outOfRange(len(m.bits), index) {
		panicOutOfRange("flip", len(m.bits), index)
	}
	by, bit := splitIndex(index)
	m.bits[by] ^= 1 << bit
	return m
}

// SetAll sets every bit of the map to 1 and returns the receiver.
// It never fails; on a zero-capacity map it is a no-op.
func (m *Bitmap) SetAll() *Bitmap {
	m.ensureUnborrowed()
	for i := range m.bits {
		m.bits[i] = 0xff
	}
	return m
}

// ResetAll sets every bit of the map to 0 and returns the receiver.
// It never fails; on a zero-capacity map it is a no-op.
func (m *Bitmap) ResetAll() *Bitmap {
	m.ensureUnborrowed()
	clear(m.bits)
	return m
}

// FlipAll toggles every bit of the map and returns the receiver.
// It never fails; on a zero-capacity map it is a no-op.
func (m *Bitmap) FlipAll() *Bitmap {
	m.ensureUnborrowed()
	for i := range m.bits {
		m.bits[i] = ^m.bits[i]
	}
	return m
}

// Count returns the number of set bits across the whole map.
func (m *Bitmap) Count() int {
	m.ensureUnborrowed()
	n := 0
	for _, b := range m.bits {
		n += popcount8(b)
	}
	return n
}

// FindFirstOne returns the lowest index whose bit is set. The second
// return value is false if the map is all-zero.
func (m *Bitmap) FindFirstOne() (int, bool) {
	m.ensureUnborrowed()
	for i, b := range m.bits {
		if b == 0 {
			continue
		}
		// Two's-complement lowest-set-bit isolation.
		return i*8 + int(lowBitPos[b&-b]), true
	}
	return 0, false
}

// FindFirstZero returns the lowest index whose bit is clear. The second
// return value is false if the map is all-ones.
func (m *Bitmap) FindFirstZero() (int, bool) {
	m.ensureUnborrowed()
	for i, b := range m.bits {
		if b == 0xff {
			continue
		}
		return i*8 + int(lowBitPos[(b+1)&^b]), true
	}
	return 0, false
}

// Any reports whether at least one bit is set.
func (m *Bitmap) Any() bool {
	_, ok := m.FindFirstOne()
	return ok
}

// None reports whether no bit is set.
func (m *Bitmap) None() bool { return !m.Any() }

// All reports whether every bit is set. It is vacuously true for a
// zero-capacity map.
func (m *Bitmap) All() bool {
	_, ok := m.FindFirstZero()
	return !ok
}

// Bytes returns the map's backing storage as a live view. The slice
// aliases the map: writing through it changes the map and vice versa.
// The caller must uphold the same exclusivity discipline as for any
// other mutation.
func (m *Bitmap) Bytes() []byte {
	m.ensureUnborrowed()
	return m.bits
}

// Clone returns a deep copy of the map with its own storage.
func (m *Bitmap) Clone() *Bitmap {
	m.ensureUnborrowed()
	c := New(len(m.bits))
	copy(c.bits, m.bits)
	return c
}

// ensureUnborrowed panics if an exclusive bit reference is outstanding.
func (m *Bitmap) ensureUnborrowed() {
	if m.mut != nil {
		panic("bitmap: map is mutably borrowed")
	}
}

// getBit reads one bit without bounds or borrow checks.
func (m *Bitmap) getBit(index int) bool {
	by, bit := splitIndex(index)
	return m.bits[by]&(1<<bit) != 0
}

// get01 reads one bit as 0/1 without bounds or borrow checks.
func (m *Bitmap) get01(index int) byte {
	if m.getBit(index) {
		return 1
	}
	return 0
}
