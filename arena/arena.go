package arena

import (
	"io"
	"log/slog"
	"unsafe"

	"github.com/hupe1980/bitmap"
)

// DefaultLineSize is the line granularity used unless WithLineSize is
// given. 64 bytes matches the cacheline size of common CPUs.
const DefaultLineSize = 64

// Option configures a Manager.
type Option func(*Manager)

// WithLineSize sets the line granularity in bytes.
func WithLineSize(n int) Option {
	return func(m *Manager) {
		m.lineSize = n
	}
}

// WithLogger sets the logger for allocation diagnostics. The default
// discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// Manager allocates fixed-size lines out of a caller-supplied buffer.
// The occupancy bitmap lives in the buffer's leading bytes, one bit per
// line; reserved header lines and the padding bits past the last line
// are preset so they are never handed out.
type Manager struct {
	buf       []byte
	lineSize  int
	occupancy *bitmap.Bitmap
	nlines    int
	reserved  int
	logger    *slog.Logger
}

// New returns a Manager over buf. The buffer must hold the occupancy
// header plus at least one allocatable line.
func New(buf []byte, opts ...Option) (*Manager, error) {
	m := &Manager{
		buf:      buf,
		lineSize: DefaultLineSize,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.lineSize <= 0 {
		return nil, ErrInvalidLineSize
	}

	m.nlines = len(buf) / m.lineSize

	mapBytes := (m.nlines + 7) / 8
	m.reserved = (mapBytes + m.lineSize - 1) / m.lineSize

	if m.nlines-m.reserved < 1 {
		return nil, ErrBufferTooSmall
	}

	// The occupancy header is embedded at the start of the managed
	// buffer itself.
	m.occupancy = bitmap.Wrap(buf[:mapBytes])
	m.occupancy.ResetAll()
	for i := 0; i < m.reserved; i++ {
		m.occupancy.Set(i)
	}
	for i := m.nlines; i < m.occupancy.BitLen(); i++ {
		m.occupancy.Set(i)
	}

	m.logger.Debug("arena initialized",
		slog.Int("lines", m.Lines()),
		slog.Int("line_size", m.lineSize),
		slog.Int("reserved", m.reserved),
	)

	return m, nil
}

// Alloc returns the lowest-indexed free line. The returned slice has
// exactly one line's length and capacity. It fails with ErrOutOfSpace
// when every line is taken.
func (m *Manager) Alloc() ([]byte, error) {
	idx, ok := m.occupancy.FindFirstZero()
	if !ok {
		return nil, ErrOutOfSpace
	}

	m.occupancy.Set(idx)
	m.logger.Debug("line allocated", slog.Int("index", idx))

	off := idx * m.lineSize

	return m.buf[off : off+m.lineSize : off+m.lineSize], nil
}

// Free returns a line to the manager. The line must have been handed
// out by Alloc on this manager and still be allocated.
func (m *Manager) Free(line []byte) error {
	idx, err := m.Index(line)
	if err != nil {
		return err
	}

	if !m.occupancy.Test(idx) {
		return ErrNotAllocated
	}

	m.occupancy.Reset(idx)
	m.logger.Debug("line freed", slog.Int("index", idx))

	return nil
}

// Index returns the line index of a slice inside the managed buffer,
// computed from its pointer offset. Reserved header lines and pointers
// outside the buffer yield ErrLineOutOfRange.
func (m *Manager) Index(line []byte) (int, error) {
	if len(line) == 0 {
		return 0, &ErrLineOutOfRange{Index: -1}
	}

	off := int(uintptr(unsafe.Pointer(unsafe.SliceData(line))) -
		uintptr(unsafe.Pointer(unsafe.SliceData(m.buf))))

	idx := off / m.lineSize
	if off < 0 {
		idx = (off - m.lineSize + 1) / m.lineSize
	}

	if idx < m.reserved || idx >= m.nlines {
		return 0, &ErrLineOutOfRange{Index: idx}
	}

	return idx, nil
}

// Lines returns the number of allocatable lines.
func (m *Manager) Lines() int { return m.nlines - m.reserved }

// LineSize returns the line granularity in bytes.
func (m *Manager) LineSize() int { return m.lineSize }

// Allocated returns the number of lines currently handed out.
func (m *Manager) Allocated() int {
	padding := m.occupancy.BitLen() - m.nlines
	return m.occupancy.Count() - m.reserved - padding
}

// Occupancy exposes the embedded occupancy bitmap. Mutating it directly
// corrupts the manager's bookkeeping; it is meant for inspection and
// diagnostics (e.g. RangeString dumps).
func (m *Manager) Occupancy() *bitmap.Bitmap { return m.occupancy }
