// Package sparse converts between the dense fixed-capacity Bitmap and
// the sparse or word-based bitmap types common in the Go ecosystem:
// Roaring bitmaps (github.com/RoaringBitmap/roaring) and BitSets
// (github.com/bits-and-blooms/bitset).
//
// Conversions are by set-bit index. Converting out of a Bitmap carries
// every set bit over; converting into a Bitmap drops indices beyond the
// target capacity, since the dense side cannot grow.
package sparse
