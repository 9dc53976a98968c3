package widemath

import (
	"math"
	"math/bits"

	"github.com/cockroachdb/errors"
	"github.com/holiman/uint256"
)

// Mul64 returns the full 128-bit product a * b.
func Mul64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{Hi: hi, Lo: lo}
}

// MulDiv64 returns floor(a * b / c) computed through a 128-bit intermediate.
// A zero divisor or a quotient wider than 64 bits is an invariant violation.
func MulDiv64(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, errors.AssertionFailedf("muldiv: division by zero (%d * %d / 0)", a, b)
	}

	hi, lo := bits.Mul64(a, b)

	// bits.Div64 panics when the quotient overflows; report it instead.
	if hi >= c {
		return 0, errors.AssertionFailedf("muldiv: quotient of %d * %d / %d exceeds 64 bits", a, b, c)
	}

	quo, _ := bits.Div64(hi, lo, c)

	return quo, nil
}

// Mul128 returns the full 256-bit product a * b.
func Mul128(a, b Uint128) *uint256.Int {
	return new(uint256.Int).Mul(a.U256(), b.U256())
}

// MulDiv128 returns floor(a * b / c) computed through a 256-bit intermediate.
// A zero divisor or a quotient wider than 128 bits is an invariant violation.
func MulDiv128(a, b, c Uint128) (Uint128, error) {
	if c.IsZero() {
		return Zero, errors.AssertionFailedf("muldiv: division by zero (%s * %s / 0)", a, b)
	}

	q := new(uint256.Int).Div(Mul128(a, b), c.U256())

	return Narrow128(q)
}

// Narrow128 narrows a 256-bit value, rejecting anything that does not fit.
func Narrow128(x *uint256.Int) (Uint128, error) {
	if x[2] != 0 || x[3] != 0 {
		return Zero, errors.AssertionFailedf("narrow: %s does not fit in 128 bits", x.Dec())
	}

	return Uint128{Hi: x[1], Lo: x[0]}, nil
}

// Narrow64 narrows a 256-bit value, rejecting anything that does not fit.
func Narrow64(x *uint256.Int) (uint64, error) {
	if !x.IsUint64() {
		return 0, errors.AssertionFailedf("narrow: %s does not fit in 64 bits", x.Dec())
	}

	return x.Uint64(), nil
}

// NarrowInt64 narrows a 256-bit value to a non-negative signed 64-bit amount.
func NarrowInt64(x *uint256.Int) (int64, error) {
	if !x.IsUint64() || x.Uint64() > math.MaxInt64 {
		return 0, errors.AssertionFailedf("narrow: %s does not fit in a signed 64-bit amount", x.Dec())
	}

	return int64(x.Uint64()), nil
}

// Uint64Of narrows a 128-bit value, rejecting anything that does not fit.
func Uint64Of(u Uint128) (uint64, error) {
	if !u.IsUint64() {
		return 0, errors.AssertionFailedf("narrow: %s does not fit in 64 bits", u)
	}

	return u.Lo, nil
}
