package urlencoded

import (
	"strings"
	"testing"
)

func BenchmarkDecode(b *testing.B) {
	bench := func(b *testing.B, segment string) {
		str := []byte("/" + strings.Repeat(segment, 4095/len(segment)))
		buff := make([]byte, len(str)+1)
		b.SetBytes(int64(len(str)))
		b.ResetTimer()

		for range b.N {
			_, _ = Decode(str, buff)
		}
	}

	b.Run("4kb unescaped", func(b *testing.B) {
		bench(b, "a")
	})

	b.Run("4kb slightly escaped", func(b *testing.B) {
		// one urlencoded part per 10 decoded characters
		bench(b, "%5faaaaaaaaa")
	})

	b.Run("4kb half escaped", func(b *testing.B) {
		bench(b, "%5fa")
	})

	b.Run("4kb only escaped", func(b *testing.B) {
		bench(b, "%5f")
	})
}
