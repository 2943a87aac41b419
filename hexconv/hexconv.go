package hexconv

import "github.com/indigo-web/strparser/status"

// Halfbyte maps every byte to its hex nibble value. Non-hex bytes are mapped to 0xFF, so
// a pair of lookups can be validated at once by checking a|b > 0x0f.
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = 0xFF
	}

	for c := byte('0'); c <= '9'; c++ {
		table[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		table[c] = c - 'a' + 10
		table[c-0x20] = c - 'a' + 10
	}

	return table
}()

// Is tells whether the char is an ASCII hex digit.
func Is(char byte) bool {
	return Halfbyte[char] != 0xFF
}

// Value returns the nibble value of a hex digit.
func Value(char byte) (byte, error) {
	v := Halfbyte[char]
	if v > 0x0f {
		return 0, status.ErrInvalidDigit
	}

	return v, nil
}
