package widemath

import "math/bits"

const (
	// log2MantissaBits is the mantissa width of the log2 layout (128-bit word, 1 exponent bit).
	log2MantissaBits = 127

	// invLog2Of10Q1Dot31 is 1/log2(10) in Q1.31 fixed point.
	invLog2Of10Q1Dot31 = 0x268826a1
)

// FindMSB returns the index of the most significant set bit.
// FindMSB(0) is 0, same as FindMSB(1).
func FindMSB(u Uint128) uint8 {
	if u.Hi != 0 {
		return uint8(64 + bits.Len64(u.Hi) - 1)
	}

	if u.Lo == 0 {
		return 0
	}

	return uint8(bits.Len64(u.Lo) - 1)
}

// ApproxSqrt returns a bit-level approximation of sqrt(x).
// The exponent is halved and the mantissa bits below the MSB are shifted into place;
// odd exponents contribute a half bit. Exact on even powers of two.
func ApproxSqrt(x Uint128) uint64 {
	if x.IsZero() {
		return 0
	}

	msbX := FindMSB(x)
	msbZ := msbX >> 1

	msbXBit := One.Lsh(uint(msbX))
	msbZBit := uint64(1) << msbZ

	mantissaMask, _ := msbXBit.Sub(One)
	mantissaX := x.And(mantissaMask)

	var mantissaZHi uint64
	if msbX&1 != 0 {
		mantissaZHi = msbZBit
	}

	mantissaZLo := mantissaX.Rsh(uint(msbX - msbZ)).Lo
	mantissaZ := (mantissaZHi | mantissaZLo) >> 1

	return msbZBit | mantissaZ
}

// ApproxLog2 returns a fixed-point approximation of log2(x).
// The result packs the MSB index above a 127-bit normalized mantissa in a 128-bit word;
// exponent bits that do not fit the word are discarded. Values 0 and 1 map to themselves.
func ApproxLog2(x Uint128) Uint128 {
	if x.Hi == 0 && x.Lo <= 1 {
		return x
	}

	mantissaMask, _ := One.Lsh(log2MantissaBits).Sub(One)

	msb := FindMSB(x)
	mantissaShift := uint(log2MantissaBits - msb)

	exponent := From64(uint64(msb)).Lsh(log2MantissaBits)
	mantissa := x.Lsh(mantissaShift).And(mantissaMask)

	return exponent.Or(mantissa)
}

// ApproxLog10 returns ApproxLog2(x) scaled by 1/log2(10), in 128-bit wrapping arithmetic.
func ApproxLog10(x Uint128) Uint128 {
	return ApproxLog2(x).MulWrap(From64(invLog2Of10Q1Dot31)).Rsh(31)
}
