// Package kv parses key=value pairs and delimiter-separated lists of them.
//
// Keys and values are subslices of the input, trimmed of surrounding ASCII whitespace.
// Nothing is copied, so they remain valid only as long as the input is left unmodified.
package kv

import (
	"bytes"

	"github.com/indigo-web/strparser/internal/ascii"
	"github.com/indigo-web/strparser/split"
	"github.com/indigo-web/strparser/status"
	"github.com/indigo-web/utils/uf"
)

type Pair struct {
	Key, Value []byte
}

// Parse splits data on the first '=' and trims both parts. Either of them may end up
// empty, which isn't an error. If there's no '=' at all, status.ErrMissingSeparator is
// returned.
func Parse(data []byte) (Pair, error) {
	eq := bytes.IndexByte(data, '=')
	if eq == -1 {
		return Pair{}, status.ErrMissingSeparator
	}

	klo, khi := ascii.TrimSpace(data, 0, eq)
	vlo, vhi := ascii.TrimSpace(data, eq+1, len(data))

	return Pair{
		Key:   data[klo:khi:khi],
		Value: data[vlo:vhi:vhi],
	}, nil
}

// ParseString is Parse for strings. The key and value are substrings of str.
func ParseString(str string) (key, value string, err error) {
	pair, err := Parse(uf.S2B(str))
	if err != nil {
		return "", "", err
	}

	return uf.B2S(pair.Key), uf.B2S(pair.Value), nil
}

// ParseList splits data by sep and parses every token as a pair, writing them into the
// into slice. Tokens without '=' are skipped silently and don't fail the call. The total
// number of tokens, including skipped ones, must not exceed len(into), otherwise
// status.ErrCapacityExceeded is returned.
func ParseList(data []byte, sep byte, into []Pair) (n int, err error) {
	if len(into) == 0 {
		return 0, status.ErrInvalidArgument
	}

	var tokens int

	for token := range split.Iter(data, sep) {
		if tokens >= len(into) {
			return n, status.ErrCapacityExceeded
		}

		tokens++

		pair, err := Parse(token)
		if err != nil {
			continue
		}

		into[n] = pair
		n++
	}

	return n, nil
}
