// Package urlencoded decodes percent-encoded data, treating '+' as a space.
//
// Decoding is lenient: a '%' that isn't followed by two hex digits is kept as is instead
// of failing the whole input.
package urlencoded

import (
	"github.com/indigo-web/strparser/hexconv"
	"github.com/indigo-web/strparser/status"
	"github.com/indigo-web/utils/uf"
)

// escape reports whether src[i] starts a well-formed %XX sequence and returns its value.
func escape(src []byte, i int) (byte, bool) {
	if src[i] != '%' || len(src)-i < 3 {
		return 0, false
	}

	a, b := hexconv.Halfbyte[src[i+1]], hexconv.Halfbyte[src[i+2]]
	if a|b > 0x0f {
		return 0, false
	}

	return a<<4 | b, true
}

// Decode decodes src into dst and terminates the output with a zero byte, hence dst must
// have at least one spare byte past the longest possible output. The returned n doesn't
// include the terminator. Capacity is checked before every write, including the terminator
// one, so nothing past len(dst) is ever touched; if it doesn't fit, status.ErrCapacityExceeded
// is returned.
func Decode(src, dst []byte) (n int, err error) {
	if len(dst) == 0 {
		return 0, status.ErrInvalidArgument
	}

	for i := 0; i < len(src); i++ {
		if n >= len(dst)-1 {
			return n, status.ErrCapacityExceeded
		}

		c := src[i]
		if char, ok := escape(src, i); ok {
			c = char
			i += 2
		} else if c == '+' {
			c = ' '
		}

		dst[n] = c
		n++
	}

	dst[n] = 0

	return n, nil
}

// DecodeString is Decode for strings. The returned string is a view into dst and doesn't
// include the terminator.
func DecodeString(src string, dst []byte) (string, error) {
	n, err := Decode(uf.S2B(src), dst)
	if err != nil {
		return "", err
	}

	return uf.B2S(dst[:n]), nil
}

// Append decodes src by the same rules as Decode, but appends the result to dst growing it
// as needed. No terminator is appended.
func Append(dst, src []byte) []byte {
	for i := 0; i < len(src); i++ {
		c := src[i]
		if char, ok := escape(src, i); ok {
			c = char
			i += 2
		} else if c == '+' {
			c = ' '
		}

		dst = append(dst, c)
	}

	return dst
}

// DecodedLen returns the exact number of bytes src decodes into, not counting the
// terminator Decode appends.
func DecodedLen(src []byte) (n int) {
	for i := 0; i < len(src); i++ {
		if _, ok := escape(src, i); ok {
			i += 2
		}

		n++
	}

	return n
}
