package protocol

import "fmt"

// CurveKind selects the function mapping rshares to a claim.
type CurveKind uint8

const (
	CurveQuadratic         CurveKind = iota // (r + S)^2 - S^2
	CurveQuadraticCuration                  // r / (2S + r) in Q64 fixed point
	CurveLinear                             // r
	CurveLog2                               // approx_log2(r)
	CurveLog10                              // approx_log10(r)
	CurveSquareRoot                         // approx_sqrt(r)

	// CurveDetect defers the choice to the chain's fork state.
	CurveDetect CurveKind = 100
)

var curveNames = map[CurveKind]string{
	CurveQuadratic:         "quadratic",
	CurveQuadraticCuration: "quadratic_curation",
	CurveLinear:            "linear",
	CurveLog2:              "log2",
	CurveLog10:             "log10",
	CurveSquareRoot:        "square_root",
	CurveDetect:            "detect",
}

// String implements fmt.Stringer.
func (k CurveKind) String() string {
	if name, ok := curveNames[k]; ok {
		return name
	}

	return fmt.Sprintf("curve(%d)", uint8(k))
}

// Valid reports whether k is a concrete curve (not Detect, not unknown).
func (k CurveKind) Valid() bool {
	return k <= CurveSquareRoot
}

// ParseCurveKind parses a curve name as produced by String.
func ParseCurveKind(s string) (CurveKind, error) {
	for k, name := range curveNames {
		if name == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown curve %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k CurveKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *CurveKind) UnmarshalText(text []byte) error {
	parsed, err := ParseCurveKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// ForkState is the part of the hardfork/witness schedule that affects curve selection.
type ForkState struct {
	// CurationForkActive is true once the hardfork letting witnesses pick the curation curve applies.
	CurationForkActive bool

	// WitnessCurationCurve is the median curve configured by witnesses.
	WitnessCurationCurve CurveKind
}

// ResolveCurve maps Detect to a concrete curve using the fork state.
// Before the fork the curve is the fund curve when that one is concrete, quadratic otherwise.
// Concrete kinds pass through unchanged.
func ResolveCurve(k, fund CurveKind, fork ForkState) CurveKind {
	if k != CurveDetect {
		return k
	}

	if fork.CurationForkActive {
		return fork.WitnessCurationCurve
	}

	if fund != CurveDetect {
		return fund
	}

	return CurveQuadratic
}

// FundKind identifies a reward fund by the role its name designates.
type FundKind uint8

const (
	FundUnknown FundKind = iota
	FundPost
	FundComment
)

// ParseFundKind resolves a reward fund name once, at fund construction.
func ParseFundKind(name string) FundKind {
	switch name {
	case PostRewardFundName:
		return FundPost
	case CommentRewardFundName:
		return FundComment
	default:
		return FundUnknown
	}
}

// String implements fmt.Stringer.
func (k FundKind) String() string {
	switch k {
	case FundPost:
		return PostRewardFundName
	case FundComment:
		return CommentRewardFundName
	default:
		return "unknown"
	}
}

// AuctionDestination decides who receives the weight decayed away in the auction window.
type AuctionDestination uint8

const (
	ToRewardFund AuctionDestination = iota // returned to the pool
	ToCurators                             // shared among curators outside the window
	ToAuthor                               // added to the author's tokens
)

// String implements fmt.Stringer.
func (d AuctionDestination) String() string {
	switch d {
	case ToRewardFund:
		return "reward_fund"
	case ToCurators:
		return "curators"
	case ToAuthor:
		return "author"
	default:
		return fmt.Sprintf("destination(%d)", uint8(d))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d AuctionDestination) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *AuctionDestination) UnmarshalText(text []byte) error {
	switch string(text) {
	case "reward_fund":
		*d = ToRewardFund
	case "curators":
		*d = ToCurators
	case "author":
		*d = ToAuthor
	default:
		return fmt.Errorf("unknown auction destination %q", text)
	}

	return nil
}
