// Package bitmap provides a fixed-capacity, byte-packed bit vector.
//
// A Bitmap is a compact container of individually addressable boolean
// flags, sized once at construction and never resized. It targets dense
// boolean state tracking with minimal memory overhead: resource
// allocation tables, flag registries, embedded state masks.
//
// # Quick Start
//
//	m := bitmap.New(2) // 2 bytes, 16 bits, all zero
//	m.Set(1).Set(5).Set(12)
//
//	m.GetBool(5)       // true
//	m.Count()          // 3
//	m.FindFirstOne()   // 1, true
//
//	s, _ := m.RangeString(0, 16) // "00010000 00100010"
//
// # Construction
//
// Bitmaps can be built from a byte count, a bit count (rounded up to a
// byte boundary), existing bytes, fixed-width unsigned integers or a set
// of initial masks/indices:
//
//	m := bitmap.NewBits(35)                  // 5 bytes
//	m := bitmap.FromBytes(4, []byte{0xff})   // low byte set, rest zero
//	m := bitmap.FromUint(2, uint16(0x8001))  // little-endian layout
//	m := bitmap.NewFromIndexes(8, 1, 2)      // bits 1 and 2 set
//
// Wrap aliases caller-supplied storage without copying, which lets a
// Bitmap act as a self-describing occupancy header embedded in a larger
// buffer (see the arena subpackage):
//
//	m := bitmap.Wrap(buf[:8])
//
// # Single-Bit References
//
// At and AtMut return value wrappers around one addressed bit. A
// BitRefMut holds exclusive access to the map until released; any other
// access in between panics:
//
//	r := m.AtMut(3)
//	r.Set().Flip()
//	r.Release()
//
// # Errors
//
// Out-of-range indices and exclusivity violations are contract errors
// and panic. Range rendering fails gracefully with ErrInvalidRange.
//
// The Bitmap is a plain value with no internal synchronization;
// multi-threaded use of a single map requires external locking by the
// caller.
package bitmap
