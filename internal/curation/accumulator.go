package curation

import (
	"math/bits"

	"VoteChain/internal/chain"
	"VoteChain/internal/protocol"
	"VoteChain/internal/reward"
	"VoteChain/internal/widemath"
)

// Accumulator is the running state of one content's curation pass.
// It is a value: Process returns the next state and leaves the receiver untouched,
// so the order in which votes are folded is explicit at the call site.
//
// For quadratic and square-root curves a vote's weight is W(R_n) - W(R_n-1), where R is
// the running rshares total. The weights telescope to W(R_N) - W(0), which bounds
// TotalVoteWeight by the curve's value at the final total.
type Accumulator struct {
	Curve             protocol.CurveKind // Curve is the resolved curation curve
	ContentConstant   widemath.Uint128   // ContentConstant is the curve parameter S
	AuctionWindowSize uint32             // AuctionWindowSize is the content's window in seconds
	AllowCuration     bool               // AllowCuration is false when the author disabled curation rewards

	VoteRshares                widemath.Uint128 // VoteRshares sums accepted orig_rshares
	OldVoteWeight              uint64           // OldVoteWeight is the last curve total (delta curves only)
	TotalVoteWeight            uint64
	AuctionWindowWeight        uint64 // AuctionWindowWeight is the weight decayed away by the window
	VotesInAuctionWindowWeight uint64 // VotesInAuctionWindowWeight is what in-window voters kept
}

// NewAccumulator starts a pass over the votes of content using the resolved curve.
func NewAccumulator(content *chain.Content, curve protocol.CurveKind, contentConstant widemath.Uint128) Accumulator {
	return Accumulator{
		Curve:             curve,
		ContentConstant:   contentConstant,
		AuctionWindowSize: content.AuctionWindowSize,
		AllowCuration:     content.AllowCurationRewards,
	}
}

// Process folds one vote into the state and returns the voter's curation weight.
//
// Votes with non-positive orig_rshares are skipped without touching the state.
// Inside the auction window the weight is scaled by auction_time / window and the
// difference is credited to the pool totals. Changed votes keep nothing for the voter,
// but the part decayed away by the window is still credited.
func (a Accumulator) Process(v chain.Vote) (Accumulator, uint64, error) {
	if v.OrigRshares <= 0 || !a.AllowCuration {
		return a, 0, nil
	}

	next := a

	var overflow bool
	next.VoteRshares, overflow = a.VoteRshares.Add(widemath.From64(uint64(v.OrigRshares)))
	if overflow {
		return a, 0, protocol.Invariantf("vote rshares overflow at voter %s", v.Voter)
	}

	weight, err := next.curveWeight(v)
	if err != nil {
		return a, 0, err
	}

	changed := v.Changed()

	if weight > 0 && v.AuctionTime != a.AuctionWindowSize {
		if v.AuctionTime > a.AuctionWindowSize {
			return a, 0, protocol.Invariantf("auction time %d exceeds window %d for voter %s",
				v.AuctionTime, a.AuctionWindowSize, v.Voter)
		}

		decayed, err := widemath.MulDiv64(weight, uint64(v.AuctionTime), uint64(a.AuctionWindowSize))
		if err != nil {
			return a, 0, err
		}

		auctionPortion := weight - decayed
		weight = decayed

		if next.TotalVoteWeight, err = addWeight(next.TotalVoteWeight, auctionPortion); err != nil {
			return a, 0, err
		}

		if next.AuctionWindowWeight, err = addWeight(next.AuctionWindowWeight, auctionPortion); err != nil {
			return a, 0, err
		}

		if !changed {
			if next.VotesInAuctionWindowWeight, err = addWeight(next.VotesInAuctionWindowWeight, weight); err != nil {
				return a, 0, err
			}
		}
	}

	if changed {
		return next, 0, nil
	}

	if next.TotalVoteWeight, err = addWeight(next.TotalVoteWeight, weight); err != nil {
		return a, 0, err
	}

	return next, weight, nil
}

// curveWeight derives the undecayed weight of v. It updates OldVoteWeight for delta curves,
// so it must run on the state that will be returned.
func (a *Accumulator) curveWeight(v chain.Vote) (uint64, error) {
	switch a.Curve {
	case protocol.CurveQuadratic, protocol.CurveSquareRoot:
		total, err := reward.Evaluate(a.VoteRshares, a.Curve, a.ContentConstant)
		if err != nil {
			return 0, err
		}

		newWeight, err := widemath.Uint64Of(total)
		if err != nil {
			return 0, err
		}

		if newWeight < a.OldVoteWeight {
			return 0, protocol.Invariantf("%v curve decreased from %d to %d", a.Curve, a.OldVoteWeight, newWeight)
		}

		weight := newWeight - a.OldVoteWeight
		a.OldVoteWeight = newWeight

		return weight, nil

	case protocol.CurveLinear:
		if v.Rshares <= 0 {
			return 0, nil
		}

		return uint64(v.Rshares), nil

	default:
		w, err := reward.Evaluate(widemath.From64(uint64(v.OrigRshares)), a.Curve, a.ContentConstant)
		if err != nil {
			return 0, err
		}

		return widemath.Uint64Of(w)
	}
}

// addWeight returns a + b, rejecting a wrap past 64 bits.
func addWeight(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, protocol.Invariantf("vote weight overflow: %d + %d", a, b)
	}

	return sum, nil
}
