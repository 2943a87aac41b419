package hexconv

import (
	"strings"
	"testing"
)

func BenchmarkDecode(b *testing.B) {
	bench := func(b *testing.B, str string) {
		dst := make([]byte, DecodedLen(len(str)))
		b.SetBytes(int64(len(str)))
		b.ResetTimer()

		for range b.N {
			_, _ = DecodeString(str, dst)
		}
	}

	b.Run("short", func(b *testing.B) {
		bench(b, "0123456789abcdef")
	})

	b.Run("long", func(b *testing.B) {
		bench(b, strings.Repeat("0123456789abcdef", 100))
	})
}
