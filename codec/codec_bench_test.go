package codec

import (
	"math/rand"
	"testing"

	"github.com/hupe1980/bitmap"
)

func benchFixture(nbytes int, density int) *bitmap.Bitmap {
	rng := rand.New(rand.NewSource(42))
	m := bitmap.New(nbytes)
	for i := 0; i < m.BitLen(); i++ {
		if rng.Intn(100) < density {
			m.Set(i)
		}
	}
	return m
}

func benchmarkCodecMarshal(b *testing.B, c Codec, m *bitmap.Bitmap) {
	b.Helper()
	b.ReportAllocs()

	warm := MustMarshal(c, m)
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = MustMarshal(c, m)
	}
	_ = sink
}

func benchmarkCodecUnmarshal(b *testing.B, c Codec, data []byte) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Unmarshal(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCodec_Marshal(b *testing.B) {
	m := benchFixture(4096, 5)

	for _, c := range codecs() {
		b.Run(c.Name(), func(b *testing.B) {
			benchmarkCodecMarshal(b, c, m)
		})
	}
}

func BenchmarkCodec_Unmarshal(b *testing.B) {
	m := benchFixture(4096, 5)

	for _, c := range codecs() {
		b.Run(c.Name(), func(b *testing.B) {
			benchmarkCodecUnmarshal(b, c, MustMarshal(c, m))
		})
	}
}
