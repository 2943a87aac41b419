package ascii

// IsSpace reports the same set as C isspace in the default locale.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

func IsDigit(c byte) bool {
	return c-'0' <= 9
}

// SkipSpace returns the index of the first non-space byte at or after pos.
func SkipSpace(data []byte, pos int) int {
	for pos < len(data) && IsSpace(data[pos]) {
		pos++
	}

	return pos
}

// TrimSpace returns bounds of data[lo:hi] with leading and trailing whitespace excluded.
// For an all-space input lo == hi.
func TrimSpace(data []byte, lo, hi int) (int, int) {
	for lo < hi && IsSpace(data[lo]) {
		lo++
	}

	for hi > lo && IsSpace(data[hi-1]) {
		hi--
	}

	return lo, hi
}
