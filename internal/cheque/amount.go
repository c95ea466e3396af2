// Package cheque renders monetary amounts as Hong Kong cheque wording, in
// Traditional Chinese financial-uppercase numerals and in English words
// following the British/HK convention.
package cheque

import (
	"errors"
	"strings"

	"github.com/govalues/decimal"
)

// ErrInvalidAmount is returned for amounts that cannot appear on a cheque:
// negative values, non-numeric input, or more than two decimal digits.
var ErrInvalidAmount = errors.New("invalid amount")

// maxDollars is one quadrillion. The scale vocabularies stop at 兆 and
// "trillion", so anything at or above this has no wording.
const maxDollars = 1_000_000_000_000_000

// Amount is a parsed cheque amount. Dollars and Cents are both
// non-negative; Cents is always below 100. Construct via ParseAmount,
// which also enforces the renderable upper bound.
type Amount struct {
	Dollars uint64
	Cents   int
}

// ParseAmount validates s and splits it into whole dollars and cents.
// Thousands separators are accepted ("1,234.50"). Inputs with fewer than
// two decimal digits are zero-padded; inputs with more are rejected, never
// rounded.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+") {
		return Amount{}, ErrInvalidAmount
	}
	// Strip thousands separators before handing off to the decimal parser.
	s = strings.ReplaceAll(s, ",", "")

	d, err := decimal.Parse(s)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	if d.IsNeg() {
		return Amount{}, ErrInvalidAmount
	}
	if d.MinScale() > 2 {
		return Amount{}, ErrInvalidAmount
	}

	whole, frac, ok := d.Int64(2)
	if !ok || whole < 0 {
		return Amount{}, ErrInvalidAmount
	}
	if uint64(whole) >= maxDollars {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{Dollars: uint64(whole), Cents: int(frac)}, nil
}
