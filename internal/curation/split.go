package curation

import (
	"VoteChain/internal/protocol"
	"VoteChain/internal/widemath"
)

// AuctionSplit divides a content's curation tokens between curators, the author
// and the reward fund.
type AuctionSplit struct {
	CuratorTokens int64 // CuratorTokens are shared among voters by weight
	AuthorTokens  int64 // AuthorTokens go to the author on top of the author reward
	FundTokens    int64 // FundTokens return to the reward fund
}

// DistributeAuction routes the auction window share of curationTokens.
//
// The auction share is curationTokens * AuctionWindowWeight / TotalVoteWeight. Curators
// only receive it when someone voted after the window; otherwise it goes back to the fund.
// Content without any vote weight gives all curation tokens to the author.
func DistributeAuction(res *Result, curationTokens int64, dest protocol.AuctionDestination) (AuctionSplit, error) {
	if curationTokens < 0 {
		return AuctionSplit{}, protocol.Invariantf("negative curation tokens %d", curationTokens)
	}

	if res.TotalVoteWeight == 0 {
		return AuctionSplit{AuthorTokens: curationTokens}, nil
	}

	auction, err := widemath.MulDiv64(uint64(curationTokens), res.AuctionWindowWeight, res.TotalVoteWeight)
	if err != nil {
		return AuctionSplit{}, err
	}

	reward := int64(auction)
	split := AuctionSplit{CuratorTokens: curationTokens - reward}

	switch dest {
	case protocol.ToAuthor:
		split.AuthorTokens = reward

	case protocol.ToCurators:
		if res.VotesAfterAuctionWindowWeight > 0 {
			split.CuratorTokens += reward
		} else {
			split.FundTokens = reward
		}

	case protocol.ToRewardFund:
		split.FundTokens = reward

	default:
		return AuctionSplit{}, protocol.Invariantf("unknown auction destination %v", dest)
	}

	return split, nil
}

// CuratorClaim is one voter's share of the curator tokens.
type CuratorClaim struct {
	Voter  string
	Weight uint64
	Tokens int64
}

// SplitCurators shares tokens among the weighted votes of res, in result order.
// Each claim is tokens * weight / sum(weights), rounded down; the remainder is
// returned as unclaimed.
func SplitCurators(res *Result, tokens int64) ([]CuratorClaim, int64, error) {
	if tokens < 0 {
		return nil, 0, protocol.Invariantf("negative curator tokens %d", tokens)
	}

	var total uint64
	for _, vw := range res.Votes {
		var err error
		if total, err = addWeight(total, vw.Weight); err != nil {
			return nil, 0, err
		}
	}

	if total == 0 {
		return nil, tokens, nil
	}

	claims := make([]CuratorClaim, 0, len(res.Votes))
	unclaimed := tokens

	for _, vw := range res.Votes {
		if vw.Weight == 0 {
			continue
		}

		share, err := widemath.MulDiv64(uint64(tokens), vw.Weight, total)
		if err != nil {
			return nil, 0, err
		}

		claims = append(claims, CuratorClaim{
			Voter:  vw.Vote.Voter,
			Weight: vw.Weight,
			Tokens: int64(share),
		})
		unclaimed -= int64(share)
	}

	return claims, unclaimed, nil
}
