package reward

import (
	"github.com/holiman/uint256"

	"VoteChain/internal/chain"
	"VoteChain/internal/logger"
	"VoteChain/internal/protocol"
	"VoteChain/internal/widemath"
)

// Evaluate maps rshares to a claim under the given curve with content constant s.
// Detect and unknown kinds are invariant violations: callers resolve Detect first.
func Evaluate(rshares widemath.Uint128, kind protocol.CurveKind, s widemath.Uint128) (widemath.Uint128, error) {
	switch kind {
	case protocol.CurveQuadratic:
		return quadratic(rshares, s)

	case protocol.CurveQuadraticCuration:
		return boundedFraction(rshares, s), nil

	case protocol.CurveLinear:
		return rshares, nil

	case protocol.CurveLog2:
		return widemath.ApproxLog2(rshares), nil

	case protocol.CurveLog10:
		return widemath.ApproxLog10(rshares), nil

	case protocol.CurveSquareRoot:
		return widemath.From64(widemath.ApproxSqrt(rshares)), nil

	default:
		return widemath.Zero, protocol.Invariantf("unknown reward curve %v", kind)
	}
}

// quadratic returns (r + s)^2 - s^2, computed in 256 bits and narrowed to 128.
func quadratic(r, s widemath.Uint128) (widemath.Uint128, error) {
	sum := new(uint256.Int).Add(r.U256(), s.U256())

	square, overflow := new(uint256.Int).MulOverflow(sum, sum)
	if overflow {
		return widemath.Zero, protocol.Invariantf("quadratic curve overflow for rshares %s", r)
	}

	square.Sub(square, widemath.Mul128(s, s))

	return widemath.Narrow128(square)
}

// boundedFraction returns r / (2s + r) as a Q64 fraction: (r.lo * 2^64) / (2s + r).
// The result is at most 2^64, reached only when s == 0.
func boundedFraction(r, s widemath.Uint128) widemath.Uint128 {
	denom := new(uint256.Int).Lsh(s.U256(), 1)
	denom.Add(denom, r.U256())

	if denom.IsZero() {
		return widemath.Zero
	}

	num := widemath.Uint128{Hi: r.Lo}
	q := new(uint256.Int).Div(num.U256(), denom)

	// q <= num, so it always fits 128 bits
	return widemath.Uint128{Hi: q[1], Lo: q[0]}
}

// EvaluateFund evaluates a curve using the fund's content constant.
// A fund of unknown kind is a configuration problem, not a protocol one:
// it is logged and contributes nothing.
func EvaluateFund(rshares widemath.Uint128, kind protocol.CurveKind, fund chain.RewardFund) (widemath.Uint128, error) {
	if fund.Kind == protocol.FundUnknown {
		logger.Warn("unknown reward fund type", "fund", fund.Name)
		return widemath.Zero, nil
	}

	return Evaluate(rshares, kind, fund.ContentConstant)
}

// CalculateClaims returns the quadratic claim of rshares against the fund.
func CalculateClaims(rshares widemath.Uint128, fund chain.RewardFund) (widemath.Uint128, error) {
	return EvaluateFund(rshares, protocol.CurveQuadratic, fund)
}
