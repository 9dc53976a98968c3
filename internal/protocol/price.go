package protocol

import (
	"VoteChain/internal/widemath"
)

// Price is an exchange rate: Base and Quote are equivalent amounts of two symbols.
// The median feed is expressed as SBD per STEEM.
type Price struct {
	Base  Asset
	Quote Asset
}

// IsNull reports whether the price cannot convert anything (no feed yet).
func (p Price) IsNull() bool {
	return p.Base.Amount == 0 || p.Quote.Amount == 0
}

// Convert converts an asset of either side of the price into the other side.
// Rounds toward zero through a 128-bit intermediate.
func (p Price) Convert(a Asset) (Asset, error) {
	if p.Base.Amount < 0 || p.Quote.Amount < 0 {
		return Asset{}, Invariantf("negative price %d/%d", p.Base.Amount, p.Quote.Amount)
	}

	if a.Amount < 0 {
		return Asset{}, Invariantf("cannot convert negative amount %d", a.Amount)
	}

	var from, to Asset
	switch a.Symbol {
	case p.Base.Symbol:
		from, to = p.Base, p.Quote
	case p.Quote.Symbol:
		from, to = p.Quote, p.Base
	default:
		return Asset{}, Invariantf("asset %s does not match price %s/%s", a.Symbol, p.Base.Symbol, p.Quote.Symbol)
	}

	amount, err := widemath.MulDiv64(uint64(a.Amount), uint64(to.Amount), uint64(from.Amount))
	if err != nil {
		return Asset{}, err
	}

	if amount > 1<<63-1 {
		return Asset{}, Invariantf("converted amount %d overflows", amount)
	}

	return Asset{Amount: int64(amount), Symbol: to.Symbol}, nil
}

// ToSBD converts a STEEM amount at the given price. A null price yields 0 SBD.
func ToSBD(p Price, steem Asset) (Asset, error) {
	if steem.Symbol != SteemSymbol {
		return Asset{}, Invariantf("expected %s, got %s", SteemSymbol, steem.Symbol)
	}

	if p.IsNull() {
		return SBD(0), nil
	}

	return p.Convert(steem)
}

// ToSteem converts an SBD amount at the given price. A null price yields 0 STEEM.
func ToSteem(p Price, sbd Asset) (Asset, error) {
	if sbd.Symbol != SBDSymbol {
		return Asset{}, Invariantf("expected %s, got %s", SBDSymbol, sbd.Symbol)
	}

	if p.IsNull() {
		return Steem(0), nil
	}

	return p.Convert(sbd)
}

// IsPayoutDust reports whether a STEEM payout is worth less than MinPayoutSBD.
func IsPayoutDust(p Price, steemPayout uint64) (bool, error) {
	if steemPayout > 1<<63-1 {
		return false, Invariantf("payout %d overflows a signed amount", steemPayout)
	}

	sbd, err := ToSBD(p, Steem(int64(steemPayout)))
	if err != nil {
		return false, err
	}

	return sbd.Amount < MinPayoutSBD, nil
}
