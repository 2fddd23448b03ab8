// Package codec converts text to and from message units, one unit per
// Unicode code point.
//
// Each code point is encrypted on its own, so a key whose modulus is not
// larger than the biggest code point in the text cannot carry it. Check
// reports that case before encryption.
package codec

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/hsiuhsiu/mprsa-go/pkg/mprsa"
)

// ErrInvalidCodePoint is returned by ToString for units that are not valid
// Unicode scalar values.
var ErrInvalidCodePoint = errors.New("unit is not a valid code point")

// FromString returns one unit per code point of s. Invalid UTF-8 bytes become
// utf8.RuneError.
func FromString(s string) []*big.Int {
	units := make([]*big.Int, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		units = append(units, big.NewInt(int64(r)))
	}
	return units
}

// ToString is the inverse of FromString.
func ToString(units []*big.Int) (string, error) {
	var b strings.Builder
	b.Grow(len(units))
	for i, u := range units {
		if u == nil || !u.IsInt64() {
			return "", fmt.Errorf("unit %d: %w", i, ErrInvalidCodePoint)
		}
		v := u.Int64()
		if v < 0 || v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
			return "", fmt.Errorf("unit %d: %w", i, ErrInvalidCodePoint)
		}
		b.WriteRune(rune(v))
	}
	return b.String(), nil
}

// Check reports the first unit that does not fit modulus n, wrapped in
// mprsa.ErrMessageOutOfRange.
func Check(units []*big.Int, n *big.Int) error {
	if n == nil {
		return fmt.Errorf("%w: nil modulus", mprsa.ErrInvalidArgument)
	}
	for i, u := range units {
		if u == nil || u.Sign() < 0 || u.Cmp(n) >= 0 {
			return fmt.Errorf("unit %d: %w for a %d-bit modulus", i, mprsa.ErrMessageOutOfRange, n.BitLen())
		}
	}
	return nil
}
