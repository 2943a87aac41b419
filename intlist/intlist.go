// Package intlist parses comma-separated lists of signed decimal integers.
//
// Whitespace is permitted around every number and separator, and a single trailing comma
// is tolerated. The parse is atomic: either every element is returned, or none is.
package intlist

import (
	"math"

	"github.com/indigo-web/strparser/internal/ascii"
	"github.com/indigo-web/strparser/status"
	"github.com/indigo-web/utils/uf"
)

const initialCap = 8

// Parser parses integer lists with an optional limit on the number of elements.
type Parser struct {
	// MaxElements bounds the size of a parsed list. A list growing beyond the limit is
	// rejected with status.ErrAllocationFailure. Zero disables the limit.
	MaxElements int
}

var unbounded Parser

// Parse returns integers of the list in order of appearance. Empty or whitespace-only
// input results in a nil slice and no error.
func Parse(data []byte) ([]int, error) {
	return unbounded.Parse(data)
}

func ParseString(str string) ([]int, error) {
	return unbounded.Parse(uf.S2B(str))
}

// Append parses data and appends the integers to dst. On failure dst is returned
// unchanged, so nothing partially parsed is ever observable.
func Append(dst []int, data []byte) ([]int, error) {
	return unbounded.Append(dst, data)
}

func (p Parser) Parse(data []byte) ([]int, error) {
	list, err := p.Append(nil, data)
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (p Parser) Append(dst []int, data []byte) ([]int, error) {
	orig, head := dst, len(dst)

	for i := ascii.SkipSpace(data, 0); i < len(data); i = ascii.SkipSpace(data, i) {
		value, next, err := parseInt(data, i)
		if err != nil {
			return orig, err
		}

		if p.MaxElements > 0 && len(dst)-head >= p.MaxElements {
			return orig, status.ErrAllocationFailure
		}

		dst = grow(dst)
		dst = append(dst, value)

		i = ascii.SkipSpace(data, next)
		if i < len(data) {
			if data[i] != ',' {
				return orig, status.ErrInvalidFormat
			}

			i++
		}
	}

	return dst, nil
}

// grow keeps the growth policy explicit: the first allocation holds 8 elements, each
// following one doubles the capacity.
func grow(dst []int) []int {
	if len(dst) < cap(dst) {
		return dst
	}

	newCap := 2 * cap(dst)
	if newCap < initialCap {
		newCap = initialCap
	}

	grown := make([]int, len(dst), newCap)
	copy(grown, dst)

	return grown
}

// parseInt parses an optionally negative number starting at data[i]. At least one digit
// is required. Values that don't fit into int are rejected with status.ErrOverflow.
func parseInt(data []byte, i int) (value int, next int, err error) {
	negative := data[i] == '-'
	if negative {
		i++
	}

	if i >= len(data) || !ascii.IsDigit(data[i]) {
		return 0, i, status.ErrInvalidFormat
	}

	// accumulate the magnitude in uint64 to fit -math.MinInt, which is one past math.MaxInt
	const limit = uint64(math.MaxInt) + 1
	var num uint64

	for ; i < len(data); i++ {
		char := data[i] - '0'
		if char > 9 {
			break
		}

		if num > (limit-uint64(char))/10 {
			return 0, i, status.ErrOverflow
		}

		num = num*10 + uint64(char)
	}

	if !negative {
		if num == limit {
			return 0, i, status.ErrOverflow
		}

		return int(num), i, nil
	}

	if num == 0 {
		return 0, i, nil
	}

	return -int(num-1) - 1, i, nil
}
