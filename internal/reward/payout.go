package reward

import (
	"github.com/holiman/uint256"

	"VoteChain/internal/protocol"
	"VoteChain/internal/widemath"
)

// RewardContext holds everything needed to turn a content's rshares into a payout.
type RewardContext struct {
	Rshares            int64              // Rshares is the content's net rshares
	RewardWeight       uint16             // RewardWeight scales the claim, in basis points
	MaxPayout          protocol.Asset     // MaxPayout caps the payout, in SBD
	TotalRewardShares2 widemath.Uint128   // TotalRewardShares2 is the fund's claim total
	RewardFund         protocol.Asset     // RewardFund is the pool, in STEEM
	CurrentPrice       protocol.Price     // CurrentPrice is the median feed
	Curve              protocol.CurveKind // Curve is the author reward curve
	ContentConstant    widemath.Uint128   // ContentConstant is the curve parameter S
}

// RshareReward converts a content's rshares into a STEEM payout drawn from the pool.
//
// payout = pool * (curve(rshares) * weight / 100%) / total_reward_shares2
//
// The result is zeroed when it is dust at the current price and capped by MaxPayout.
// Non-positive rshares, an empty claim total and overflowing payouts are invariant violations.
func RshareReward(ctx RewardContext) (uint64, error) {
	if ctx.Rshares <= 0 {
		return 0, protocol.Invariantf("rshare reward requires positive rshares, got %d", ctx.Rshares)
	}

	if ctx.TotalRewardShares2.IsZero() {
		return 0, protocol.Invariantf("rshare reward requires positive total reward shares")
	}

	if ctx.RewardFund.Amount < 0 {
		return 0, protocol.Invariantf("negative reward fund %d", ctx.RewardFund.Amount)
	}

	claim, err := Evaluate(widemath.From64(uint64(ctx.Rshares)), ctx.Curve, ctx.ContentConstant)
	if err != nil {
		return 0, err
	}

	weighted := new(uint256.Int).Mul(claim.U256(), uint256.NewInt(uint64(ctx.RewardWeight)))
	weighted.Div(weighted, uint256.NewInt(protocol.Percent100))

	payoutWide := new(uint256.Int).Mul(uint256.NewInt(uint64(ctx.RewardFund.Amount)), weighted)
	payoutWide.Div(payoutWide, ctx.TotalRewardShares2.U256())

	signed, err := widemath.NarrowInt64(payoutWide)
	if err != nil {
		return 0, err
	}

	payout := uint64(signed)

	dust, err := protocol.IsPayoutDust(ctx.CurrentPrice, payout)
	if err != nil {
		return 0, err
	}

	if dust {
		payout = 0
	}

	maxSteem, err := protocol.ToSteem(ctx.CurrentPrice, ctx.MaxPayout)
	if err != nil {
		return 0, err
	}

	return min(payout, uint64(maxSteem.Amount)), nil
}

// PendingPayout values a content subtree's claims (children_rshares2) in SBD.
// Returns 0 SBD while the fund has no claims.
func PendingPayout(childrenRshares2 widemath.Uint128, totalRewardShares2 widemath.Uint128, pool protocol.Asset, price protocol.Price) (protocol.Asset, error) {
	if totalRewardShares2.IsZero() {
		return protocol.SBD(0), nil
	}

	if pool.Amount < 0 {
		return protocol.Asset{}, protocol.Invariantf("negative reward fund %d", pool.Amount)
	}

	tpp := new(uint256.Int).Mul(childrenRshares2.U256(), uint256.NewInt(uint64(pool.Amount)))
	tpp.Div(tpp, totalRewardShares2.U256())

	amount, err := widemath.NarrowInt64(tpp)
	if err != nil {
		return protocol.Asset{}, err
	}

	return protocol.ToSBD(price, protocol.Asset{Amount: amount, Symbol: pool.Symbol})
}
