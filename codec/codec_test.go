package codec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitmap"
)

func codecs() []Codec {
	return []Codec{Raw{}, LZ4{}, S2{}}
}

func TestRoundTrip(t *testing.T) {
	fixtures := map[string]*bitmap.Bitmap{
		"zero capacity": bitmap.New(0),
		"empty":         bitmap.New(32),
		"all ones":      bitmap.New(32).SetAll(),
		"sparse":        bitmap.NewFromIndexes(256, 0, 17, 255),
		"prefix":        bitmap.New(64).FillPrefix([]byte{0b11, 0b110, 0b101, 0b1010}),
	}

	for _, c := range codecs() {
		for name, m := range fixtures {
			t.Run(c.Name()+"/"+name, func(t *testing.T) {
				data, err := c.Marshal(m)
				require.NoError(t, err)

				got, err := c.Unmarshal(data)
				require.NoError(t, err)

				assert.Equal(t, m.ByteLen(), got.ByteLen())
				assert.Equal(t, m.Bytes(), got.Bytes())
			})
		}
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, c := range codecs() {
		t.Run(c.Name(), func(t *testing.T) {
			for trial := 0; trial < 25; trial++ {
				buf := make([]byte, rng.Intn(4096))
				rng.Read(buf)
				m := bitmap.FromBytes(len(buf), buf)

				data, err := c.Marshal(m)
				require.NoError(t, err)

				got, err := c.Unmarshal(data)
				require.NoError(t, err)
				require.Equal(t, m.Bytes(), got.Bytes())
			}
		})
	}
}

func TestMarshalDoesNotAliasMap(t *testing.T) {
	for _, c := range codecs() {
		t.Run(c.Name(), func(t *testing.T) {
			m := bitmap.New(8).Set(3)

			data, err := c.Marshal(m)
			require.NoError(t, err)

			m.SetAll()

			got, err := c.Unmarshal(data)
			require.NoError(t, err)
			assert.Equal(t, 1, got.Count())
		})
	}
}

func TestByName(t *testing.T) {
	for _, c := range codecs() {
		got, ok := ByName(c.Name())
		require.True(t, ok)
		assert.Equal(t, c.Name(), got.Name())
	}

	_, ok := ByName("zstd")
	assert.False(t, ok)
}

func TestUnmarshalCorrupt(t *testing.T) {
	_, err := LZ4{}.Unmarshal([]byte{1, 2})
	assert.Error(t, err)

	_, err = LZ4{}.Unmarshal([]byte{0xff, 0xff, 0xff, 0xff, 1, 0})
	assert.Error(t, err)

	_, err = S2{}.Unmarshal([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)
}
