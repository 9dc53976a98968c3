package curation

import (
	"cmp"
	"fmt"
	"slices"

	"VoteChain/internal/chain"
	"VoteChain/internal/logger"
	"VoteChain/internal/protocol"
	"VoteChain/internal/widemath"
)

// Env is the chain state a curation pass depends on besides the content and its votes.
type Env struct {
	Fork            protocol.ForkState // Fork resolves CurveDetect
	FundCurve       protocol.CurveKind // FundCurve replaces the pre-fork default when concrete
	ContentConstant widemath.Uint128   // ContentConstant is the curve parameter S
}

// VoteWeight pairs a vote with its curation weight.
type VoteWeight struct {
	Vote   chain.Vote
	Weight uint64 // Weight is 0 for skipped, changed or fully decayed votes
}

// Result is the curation view of one content: weighted votes plus aggregate totals.
// TotalVoteWeight == VotesInAuctionWindowWeight + AuctionWindowWeight + VotesAfterAuctionWindowWeight.
type Result struct {
	ContentID chain.ContentID
	Curve     protocol.CurveKind // Curve is the resolved curation curve

	// Votes is sorted by weight descending, then voter ascending.
	Votes []VoteWeight

	TotalVoteWeight               uint64
	AuctionWindowWeight           uint64
	VotesInAuctionWindowWeight    uint64
	VotesAfterAuctionWindowWeight uint64
}

// Build computes the curation result of content from its votes.
//
// When full is false, votes with zero weight are left out and content that was already
// paid out yields an empty result. Votes are folded in canonical order; a source that
// yields them out of order is rejected.
func Build(content *chain.Content, votes chain.VoteSource, env Env, full bool) (*Result, error) {
	curve := protocol.ResolveCurve(content.CurationCurve, env.FundCurve, env.Fork)

	res := &Result{
		ContentID: content.ID,
		Curve:     curve,
	}

	if content.PaidOut() && !full {
		return res, nil
	}

	if !curve.Valid() {
		return nil, protocol.Invariantf("unknown curation curve %v for content %d", curve, content.ID)
	}

	acc := NewAccumulator(content, curve, env.ContentConstant)
	res.Votes = make([]VoteWeight, 0, content.TotalVotes)

	var prev *chain.Vote

	for v, err := range votes.Votes(content.ID) {
		if err != nil {
			return nil, fmt.Errorf("read votes of content %d:\n%w", content.ID, err)
		}

		if v.Comment != content.ID {
			return nil, protocol.Invariantf("vote by %s belongs to content %d, not %d", v.Voter, v.Comment, content.ID)
		}

		if prev != nil && !prev.Before(&v) {
			return nil, protocol.Invariantf("votes of content %d out of order at %s", content.ID, v.Voter)
		}

		var weight uint64
		acc, weight, err = acc.Process(v)
		if err != nil {
			return nil, fmt.Errorf("weigh vote by %s on content %d:\n%w", v.Voter, content.ID, err)
		}

		if weight > 0 || full {
			res.Votes = append(res.Votes, VoteWeight{Vote: v, Weight: weight})
		}

		current := v
		prev = &current
	}

	res.TotalVoteWeight = acc.TotalVoteWeight
	res.AuctionWindowWeight = acc.AuctionWindowWeight
	res.VotesInAuctionWindowWeight = acc.VotesInAuctionWindowWeight

	kept := acc.VotesInAuctionWindowWeight + acc.AuctionWindowWeight
	if kept < acc.AuctionWindowWeight || kept > acc.TotalVoteWeight {
		return nil, protocol.Invariantf("curation totals inconsistent for content %d", content.ID)
	}
	res.VotesAfterAuctionWindowWeight = acc.TotalVoteWeight - kept

	slices.SortFunc(res.Votes, compareVoteWeights)

	logger.Debug("curation built",
		"content", content.ID,
		"curve", curve,
		"votes", len(res.Votes),
		"total_weight", res.TotalVoteWeight,
	)

	return res, nil
}

// compareVoteWeights orders by weight descending, then voter ascending.
func compareVoteWeights(a, b VoteWeight) int {
	if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
		return c
	}

	return cmp.Compare(a.Vote.Voter, b.Vote.Voter)
}
