package bitmap

import (
	"fmt"
	"strings"
)

// String renders a diagnostic summary of the map: the bit length in
// brackets followed by up to two bytes of content in binary, most
// significant byte first. Longer maps show only the low-order two bytes
// behind an ellipsis marker. The output is not a lossless serialization.
//
//	[24 bits] ...00000001 00000001
func (m *Bitmap) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d bits] ", m.BitLen())
	n := min(2, len(m.bits))
	if len(m.bits) > n {
		sb.WriteString("...")
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08b", m.bits[n-i-1])
	}
	return sb.String()
}

// RangeString renders the bits of the half-open range [start, end) in
// binary, highest index first, with a space at every byte boundary
// crossed. It returns ErrInvalidRange (wrapped) if the range is empty or
// either endpoint addresses a byte beyond the map's capacity.
func (m *Bitmap) RangeString(start, end int) (string, error) {
	m.ensureUnborrowed()
	if start >= end || outOfRange(len(m.bits), start) || outOfRange(len(m.bits), end-1) {
		return "", fmt.Errorf("%w: [%d, %d) of %d bits", ErrInvalidRange, start, end, m.BitLen())
	}

	var sb strings.Builder
	i := end - 1
	// Whole bytes are emitted in aligned 8-bit chunks; the unaligned
	// edges of the range fall back to single-bit emission.
	for byteOf(i) > byteOf(start) {
		if bitOf(i) == 7 {
			fmt.Fprintf(&sb, "%08b", m.bits[byteOf(i)])
			sb.WriteByte(' ')
			i -= 8
			continue
		}
		sb.WriteByte('0' + m.get01(i))
		if bitOf(i) == 0 {
			sb.WriteByte(' ')
		}
		i--
	}
	for ; i > start; i-- {
		sb.WriteByte('0' + m.get01(i))
	}
	sb.WriteByte('0' + m.get01(i))

	return sb.String(), nil
}
