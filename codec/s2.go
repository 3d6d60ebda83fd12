package codec

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/hupe1980/bitmap"
)

// S2 compresses snapshots with S2 block encoding (an extended Snappy).
// The encoded block is self-describing, so no extra framing is needed.
type S2 struct{}

// Marshal encodes the map's backing bytes as an S2 block.
func (S2) Marshal(m *bitmap.Bitmap) ([]byte, error) {
	return s2.Encode(nil, m.Bytes()), nil
}

// Unmarshal decodes an S2 snapshot back into a map.
func (S2) Unmarshal(data []byte) (*bitmap.Bitmap, error) {
	buf, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompress: %w", err)
	}
	return bitmap.FromBytes(len(buf), buf), nil
}

// Name returns the unique name of the codec ("s2").
func (S2) Name() string { return "s2" }
