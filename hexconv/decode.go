package hexconv

import (
	"github.com/indigo-web/strparser/status"
	"github.com/indigo-web/utils/uf"
)

// DecodedLen returns the exact number of bytes n hex digits decode into.
func DecodedLen(n int) int {
	return n / 2
}

// Decode decodes pairs of hex digits from src into dst and returns the number of bytes
// written, which is always len(src)/2 on success. The required capacity is checked before
// anything is written. If an invalid digit is met, bytes decoded so far are zeroed and
// 0 is returned. No terminator is appended.
func Decode(src, dst []byte) (n int, err error) {
	if len(src)%2 != 0 {
		return 0, status.ErrOddLength
	}

	if DecodedLen(len(src)) > len(dst) {
		return 0, status.ErrCapacityExceeded
	}

	for i := 1; i < len(src); i += 2 {
		a, b := Halfbyte[src[i-1]], Halfbyte[src[i]]
		if a|b > 0x0f {
			clear(dst[:n])
			return 0, status.ErrInvalidDigit
		}

		dst[n] = a<<4 | b
		n++
	}

	return n, nil
}

// DecodeString is Decode for string input. The string is not copied.
func DecodeString(src string, dst []byte) (int, error) {
	return Decode(uf.S2B(src), dst)
}
