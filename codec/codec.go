// Package codec encodes Bitmap snapshots to bytes and back.
//
// Snapshot selection is a compatibility boundary: bytes written by one
// codec only decode with the same codec, so persisted snapshots should
// record the codec name (see ByName).
package codec

import (
	"fmt"

	"github.com/hupe1980/bitmap"
)

// Codec encodes and decodes Bitmap snapshots.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(m *bitmap.Bitmap) ([]byte, error)
	Unmarshal(data []byte) (*bitmap.Bitmap, error)
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "raw":
		return Raw{}, true
	case "lz4":
		return LZ4{}, true
	case "s2":
		return S2{}, true
	default:
		return nil, false
	}
}

// Default is the codec used when none is chosen explicitly.
var Default Codec = Raw{}

// Raw stores the map's backing bytes verbatim. The decoded capacity is
// the snapshot length.
type Raw struct{}

// Marshal returns a copy of the map's backing bytes.
func (Raw) Marshal(m *bitmap.Bitmap) ([]byte, error) {
	return m.Clone().Bytes(), nil
}

// Unmarshal rebuilds a map whose capacity and content equal the
// snapshot.
func (Raw) Unmarshal(data []byte) (*bitmap.Bitmap, error) {
	return bitmap.FromBytes(len(data), data), nil
}

// Name returns the unique name of the codec ("raw").
func (Raw) Name() string { return "raw" }

// MustMarshal is a helper for internal tests and benchmarks.
func MustMarshal(c Codec, m *bitmap.Bitmap) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(m)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
