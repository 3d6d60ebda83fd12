package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/bitmap"
)

// lz4 snapshot layout: 4-byte little-endian uncompressed length, one
// flag byte (0 = stored, 1 = compressed), then the block.
const (
	lz4HeaderSize = 5

	lz4Stored     = 0
	lz4Compressed = 1
)

// LZ4 compresses snapshots with LZ4 block encoding. Incompressible maps
// fall back to stored blocks.
type LZ4 struct{}

// Marshal encodes the map's backing bytes as an LZ4 block.
func (LZ4) Marshal(m *bitmap.Bitmap) ([]byte, error) {
	src := m.Bytes()

	dst := make([]byte, lz4HeaderSize+lz4.CompressBlockBound(len(src)))
	binary.LittleEndian.PutUint32(dst, uint32(len(src)))

	var c lz4.Compressor
	n, err := c.CompressBlock(src, dst[lz4HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if n == 0 {
		// Incompressible; store verbatim.
		dst[4] = lz4Stored
		return append(dst[:lz4HeaderSize], src...), nil
	}

	dst[4] = lz4Compressed

	return dst[:lz4HeaderSize+n], nil
}

// Unmarshal decodes an LZ4 snapshot back into a map.
func (LZ4) Unmarshal(data []byte) (*bitmap.Bitmap, error) {
	if len(data) < lz4HeaderSize {
		return nil, fmt.Errorf("lz4 snapshot too short: %d bytes", len(data))
	}

	size := int(binary.LittleEndian.Uint32(data))
	block := data[lz4HeaderSize:]

	switch data[4] {
	case lz4Stored:
		if len(block) != size {
			return nil, fmt.Errorf("lz4 stored block length %d, want %d", len(block), size)
		}
		return bitmap.FromBytes(size, block), nil
	case lz4Compressed:
		// LZ4 blocks expand at most ~255x; anything claiming more is a
		// corrupt length header, not a valid snapshot.
		if uint64(size) > uint64(len(block))*255+16 {
			return nil, fmt.Errorf("lz4 snapshot: implausible uncompressed length %d", size)
		}
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(block, buf)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		if n != size {
			return nil, fmt.Errorf("lz4 decompressed %d bytes, want %d", n, size)
		}
		return bitmap.Wrap(buf), nil
	default:
		return nil, fmt.Errorf("lz4 snapshot: unknown block flag %d", data[4])
	}
}

// Name returns the unique name of the codec ("lz4").
func (LZ4) Name() string { return "lz4" }
