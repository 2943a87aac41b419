package split

import (
	"iter"

	"github.com/indigo-web/strparser/status"
	"github.com/indigo-web/utils/uf"
)

// Iter walks the tokens of data separated by sep, left to right. Empty tokens are yielded
// as well: before a leading separator, between consecutive ones and after a trailing one.
// Empty data yields no tokens at all, whereas a lone separator yields two empty ones.
//
// Every token is a subslice of data with its capacity capped at its length, so appending
// to a token never overwrites the bytes following it.
func Iter(data []byte, sep byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		if len(data) == 0 {
			return
		}

		var offset int

		for i := 0; i < len(data); i++ {
			if data[i] == sep {
				if !yield(data[offset:i:i]) {
					return
				}

				offset = i + 1
			}
		}

		yield(data[offset:len(data):len(data)])
	}
}

// Bytes splits data by sep into the into slice, whose length is the maximal number
// of tokens. It returns how many tokens were written. The bound is checked before each
// write, so if there are more tokens than into can fit, status.ErrCapacityExceeded is
// returned without ever writing past len(into).
func Bytes(data []byte, sep byte, into [][]byte) (n int, err error) {
	if len(into) == 0 {
		return 0, status.ErrInvalidArgument
	}

	for token := range Iter(data, sep) {
		if n >= len(into) {
			return n, status.ErrCapacityExceeded
		}

		into[n] = token
		n++
	}

	return n, nil
}

// String is Bytes for strings. Tokens are substrings of str.
func String(str string, sep byte, into []string) (n int, err error) {
	if len(into) == 0 {
		return 0, status.ErrInvalidArgument
	}

	for token := range Iter(uf.S2B(str), sep) {
		if n >= len(into) {
			return n, status.ErrCapacityExceeded
		}

		into[n] = uf.B2S(token)
		n++
	}

	return n, nil
}

// Count returns the number of tokens Bytes would produce, so the output can be sized
// in advance.
func Count(data []byte, sep byte) int {
	if len(data) == 0 {
		return 0
	}

	n := 1
	for _, c := range data {
		if c == sep {
			n++
		}
	}

	return n
}
