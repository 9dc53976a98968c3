package cashout

import (
	"fmt"

	"VoteChain/internal/chain"
	"VoteChain/internal/curation"
	"VoteChain/internal/logger"
	"VoteChain/internal/protocol"
	"VoteChain/internal/reward"
	"VoteChain/internal/widemath"
)

// Input is everything needed to pay out one content.
type Input struct {
	Content *chain.Content
	Votes   chain.VoteSource
	Fund    chain.RewardFund
	Price   protocol.Price     // Price is the median SBD/STEEM feed
	Fork    protocol.ForkState // Fork resolves the curation curve
}

// BeneficiaryPayout is one beneficiary's cut of the author tokens.
type BeneficiaryPayout struct {
	Account string
	Tokens  int64
}

// Report is the division of a content's reward, in STEEM.
// RewardTokens == AuthorTokens + FundTokens + sum(Curators) + sum(Beneficiaries).
type Report struct {
	ContentID chain.ContentID

	RewardTokens   int64 // RewardTokens is the capped payout drawn from the fund
	CurationTokens int64 // CurationTokens is the curators' share before the auction split
	AuthorTokens   int64 // AuthorTokens is what the author keeps after beneficiaries
	FundTokens     int64 // FundTokens return to the reward fund

	Curators      []curation.CuratorClaim
	Beneficiaries []BeneficiaryPayout

	Curation    *curation.Result
	PayoutValue protocol.Asset // PayoutValue is RewardTokens in SBD
}

// Compute divides the reward of in.Content between curators, beneficiaries and the author.
// Content with non-positive net rshares, or drawing from an unknown fund, earns nothing.
func Compute(in Input) (*Report, error) {
	c := in.Content
	rep := &Report{ContentID: c.ID, PayoutValue: protocol.SBD(0)}
	log := logger.With("content", c.ID)

	if c.NetRshares <= 0 {
		return rep, nil
	}

	if in.Fund.Kind == protocol.FundUnknown {
		log.Warn("unknown reward fund type", "fund", in.Fund.Name)
		return rep, nil
	}

	if c.CurationRewardsPercent > protocol.Percent100 {
		return nil, protocol.Invariantf("curation percent %d above 100%% for content %d", c.CurationRewardsPercent, c.ID)
	}

	payout, err := reward.RshareReward(reward.RewardContext{
		Rshares:            c.NetRshares,
		RewardWeight:       c.RewardWeight,
		MaxPayout:          c.MaxAcceptedPayout,
		TotalRewardShares2: in.Fund.TotalRewardShares2,
		RewardFund:         in.Fund.RewardBalance,
		CurrentPrice:       in.Price,
		Curve:              in.Fund.AuthorCurve,
		ContentConstant:    in.Fund.ContentConstant,
	})
	if err != nil {
		return nil, fmt.Errorf("reward of content %d:\n%w", c.ID, err)
	}

	// RshareReward narrows to int64 before capping
	rep.RewardTokens = int64(payout)

	if c.AllowCurationRewards {
		curationTokens, err := widemath.MulDiv64(payout, uint64(c.CurationRewardsPercent), protocol.Percent100)
		if err != nil {
			return nil, err
		}

		rep.CurationTokens = int64(curationTokens)
	}

	rep.AuthorTokens = rep.RewardTokens - rep.CurationTokens

	if err := payCurators(rep, in); err != nil {
		return nil, err
	}

	if err := payBeneficiaries(rep, c); err != nil {
		return nil, err
	}

	rep.PayoutValue, err = protocol.ToSBD(in.Price, protocol.Steem(rep.RewardTokens))
	if err != nil {
		return nil, err
	}

	log.Debug("content cashout",
		"reward", rep.RewardTokens,
		"curation", rep.CurationTokens,
		"author", rep.AuthorTokens,
	)

	return rep, nil
}

// payCurators splits CurationTokens by curation weight. Unclaimed remainders go to the author.
func payCurators(rep *Report, in Input) error {
	env := curation.Env{Fork: in.Fork, FundCurve: in.Fund.CurationCurve, ContentConstant: in.Fund.ContentConstant}

	res, err := curation.Build(in.Content, in.Votes, env, true)
	if err != nil {
		return fmt.Errorf("curation of content %d:\n%w", in.Content.ID, err)
	}

	rep.Curation = res

	split, err := curation.DistributeAuction(res, rep.CurationTokens, in.Content.AuctionDestination)
	if err != nil {
		return err
	}

	claims, unclaimed, err := curation.SplitCurators(res, split.CuratorTokens)
	if err != nil {
		return err
	}

	rep.Curators = claims
	rep.FundTokens = split.FundTokens
	rep.AuthorTokens += split.AuthorTokens + unclaimed

	return nil
}

// payBeneficiaries routes each beneficiary's weight of the author tokens, rounded down.
func payBeneficiaries(rep *Report, c *chain.Content) error {
	if len(c.Beneficiaries) > protocol.MaxBeneficiaries {
		return protocol.Invariantf("content %d has %d beneficiaries, max %d", c.ID, len(c.Beneficiaries), protocol.MaxBeneficiaries)
	}

	var weights uint32
	for _, b := range c.Beneficiaries {
		weights += uint32(b.Weight)
	}

	if weights > protocol.Percent100 {
		return protocol.Invariantf("beneficiary weights %d above 100%% for content %d", weights, c.ID)
	}

	if rep.AuthorTokens < 0 {
		return protocol.Invariantf("negative author tokens %d for content %d", rep.AuthorTokens, c.ID)
	}

	base := uint64(rep.AuthorTokens)
	var paid int64

	for _, b := range c.Beneficiaries {
		tokens, err := widemath.MulDiv64(base, uint64(b.Weight), protocol.Percent100)
		if err != nil {
			return err
		}

		rep.Beneficiaries = append(rep.Beneficiaries, BeneficiaryPayout{Account: b.Account, Tokens: int64(tokens)})
		paid += int64(tokens)
	}

	rep.AuthorTokens -= paid

	return nil
}

// ContentPendingPayout values the claim of the content itself against the fund, in SBD.
// Non-positive net rshares claim nothing.
func ContentPendingPayout(c *chain.Content, fund chain.RewardFund, price protocol.Price) (protocol.Asset, error) {
	claims, err := reward.CalculateClaims(widemath.From64(uint64(max(c.NetRshares, 0))), fund)
	if err != nil {
		return protocol.Asset{}, fmt.Errorf("claims of content %d:\n%w", c.ID, err)
	}

	if claims.IsZero() {
		return protocol.SBD(0), nil
	}

	return reward.PendingPayout(claims, fund.TotalRewardShares2, fund.RewardBalance, price)
}

// TotalPendingPayout values the claims of a content subtree against the fund, in SBD.
func TotalPendingPayout(childrenRshares2 widemath.Uint128, fund chain.RewardFund, price protocol.Price) (protocol.Asset, error) {
	if fund.Kind == protocol.FundUnknown {
		logger.Warn("unknown reward fund type", "fund", fund.Name)
		return protocol.SBD(0), nil
	}

	return reward.PendingPayout(childrenRshares2, fund.TotalRewardShares2, fund.RewardBalance, price)
}
