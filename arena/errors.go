package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfSpace is returned by Alloc when every line is taken.
	ErrOutOfSpace = errors.New("arena: out of space")

	// ErrNotAllocated is returned by Free when the line is not
	// currently allocated (including double frees).
	ErrNotAllocated = errors.New("arena: line not allocated")

	// ErrInvalidLineSize is returned by New for a non-positive line
	// size.
	ErrInvalidLineSize = errors.New("arena: line size must be positive")

	// ErrBufferTooSmall is returned by New when the buffer cannot hold
	// the occupancy header plus at least one allocatable line.
	ErrBufferTooSmall = errors.New("arena: buffer too small")
)

// ErrLineOutOfRange indicates a line that does not belong to the
// manager's allocatable region. Index is the raw line index computed
// from the pointer offset and may be negative.
type ErrLineOutOfRange struct {
	Index int
}

func (e *ErrLineOutOfRange) Error() string {
	return fmt.Sprintf("arena: line index %d out of range", e.Index)
}
