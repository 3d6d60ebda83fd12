package bitmap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned by RangeString when the requested bit
	// range is empty or addresses bits outside the map.
	ErrInvalidRange = errors.New("invalid bit range")
)

// panicOutOfRange reports an out-of-range index. Indexing past the map's
// capacity is a contract violation, not a recoverable condition: the
// index is never clamped or wrapped.
func panicOutOfRange(op string, nbytes, index int) {
	panic(fmt.Sprintf("bitmap: %s index %d out of range [0, %d)", op, index, nbytes*8))
}
