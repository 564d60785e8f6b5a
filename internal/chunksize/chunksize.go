// Package chunksize parses and validates the chunk-size policy encoded in
// an algorithm id's size token.
package chunksize

import (
	"errors"
	"fmt"
)

// AverageMin is the smallest average chunk size the underlying CDC
// splitter accepts.
const AverageMin = 64

var (
	ErrBadSizeToken = errors.New("chunksize: malformed size token")
	ErrSizeTooSmall = errors.New("chunksize: average below minimum")
	ErrSizeUnaligned = errors.New("chunksize: average not a multiple of 4")
)

// Size is the (min, avg, max) triple a CDC splitter is configured with.
type Size struct {
	Avg, Min, Max int
}

// New builds a Size from a raw average, deriving Min = Avg/4 and Max = Avg*4.
func New(avg int) (Size, error) {
	if avg < AverageMin {
		return Size{}, fmt.Errorf("%w: %d < %d", ErrSizeTooSmall, avg, AverageMin)
	}
	if avg%4 != 0 {
		return Size{}, fmt.Errorf("%w: %d", ErrSizeUnaligned, avg)
	}
	return Size{Avg: avg, Min: avg / 4, Max: avg * 4}, nil
}

var unitBase = map[byte]int{
	'k': 1024, 'K': 1024,
	'm': 1024 * 1024, 'M': 1024 * 1024,
	'g': 1024 * 1024 * 1024, 'G': 1024 * 1024 * 1024,
}

// Parse decodes a two-character size token (unit letter + power digit) of
// the form "k4", "m0", "G9" into a Size. The average is
// base(unit) * 2^power.
func Parse(token string) (Size, error) {
	if len(token) != 2 {
		return Size{}, fmt.Errorf("%w: %q", ErrBadSizeToken, token)
	}
	base, ok := unitBase[token[0]]
	if !ok {
		return Size{}, fmt.Errorf("%w: unit %q", ErrBadSizeToken, token[0])
	}
	power := token[1]
	if power < '0' || power > '9' {
		return Size{}, fmt.Errorf("%w: power %q", ErrBadSizeToken, token[1])
	}
	avg := base * (1 << (power - '0'))
	return New(avg)
}
