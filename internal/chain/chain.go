package chain

import (
	"iter"

	"VoteChain/internal/protocol"
	"VoteChain/internal/widemath"
)

// ContentID identifies a post or comment.
type ContentID uint64

// Beneficiary receives a share of the author's tokens.
type Beneficiary struct {
	Account string // Account is the receiving account name
	Weight  uint16 // Weight is the share in basis points of the author tokens
}

// Content is a post or comment as seen by the reward engine.
// It is a read-only copy; the chain state machine owns the real object.
type Content struct {
	ID       ContentID
	Author   string
	Permlink string

	NetRshares        int64              // NetRshares is the signed aggregate vote weight
	ChildrenRshares2  widemath.Uint128   // ChildrenRshares2 aggregates descendant claims
	AuctionWindowSize uint32             // AuctionWindowSize is the auction window in seconds
	CurationCurve     protocol.CurveKind // CurationCurve may be CurveDetect
	TotalVotes        uint32

	LastPayout  int64 // LastPayout is the unix time of the last payout, 0 if never paid
	CashoutTime int64 // CashoutTime is the unix time of the scheduled payout

	AllowCurationRewards   bool
	CurationRewardsPercent uint16                      // CurationRewardsPercent is the curators' share in basis points
	RewardWeight           uint16                      // RewardWeight scales the claim, in basis points
	MaxAcceptedPayout      protocol.Asset              // MaxAcceptedPayout caps the payout, in SBD
	AuctionDestination     protocol.AuctionDestination // AuctionDestination routes the auction window reward
	Beneficiaries          []Beneficiary
}

// PaidOut reports whether the content has been paid out at least once.
func (c *Content) PaidOut() bool {
	return c.LastPayout != 0
}

// Vote is one voter's vote on one content.
type Vote struct {
	Comment ContentID
	Voter   string

	OrigRshares int64  // OrigRshares is the rshares when the vote was cast
	Rshares     int64  // Rshares is the current stored magnitude
	VotePercent int16  // VotePercent is the vote strength in basis points, negative for downvotes
	AuctionTime uint32 // AuctionTime is the vote's time within the auction window, in seconds
	NumChanges  int8   // NumChanges is 0 if never changed, -1 if marked for removal
	LastUpdate  int64  // LastUpdate is the unix time of the last change
}

// Changed reports whether the voter altered the vote after casting it.
func (v *Vote) Changed() bool {
	return v.NumChanges != 0 && v.NumChanges != -1
}

// Before reports whether v precedes w in canonical order (comment, then voter).
func (v *Vote) Before(w *Vote) bool {
	if v.Comment != w.Comment {
		return v.Comment < w.Comment
	}

	return v.Voter < w.Voter
}

// RewardFund is a named pool from which content payouts are drawn pro rata.
type RewardFund struct {
	Name string
	Kind protocol.FundKind // Kind is resolved from Name at construction

	ContentConstant    widemath.Uint128 // ContentConstant is the curve parameter S
	TotalRewardShares2 widemath.Uint128 // TotalRewardShares2 sums the claims of all pending content
	RewardBalance      protocol.Asset   // RewardBalance is the pool, in STEEM

	AuthorCurve   protocol.CurveKind
	CurationCurve protocol.CurveKind // CurationCurve resolves pre-fork Detect content unless it is Detect itself
}

// NewRewardFund creates a fund, resolving its kind from the name once.
func NewRewardFund(name string, contentConstant widemath.Uint128, totalRewardShares2 widemath.Uint128, balance protocol.Asset) RewardFund {
	return RewardFund{
		Name:               name,
		Kind:               protocol.ParseFundKind(name),
		ContentConstant:    contentConstant,
		TotalRewardShares2: totalRewardShares2,
		RewardBalance:      balance,
		AuthorCurve:        protocol.CurveQuadratic,
		CurationCurve:      protocol.CurveDetect,
	}
}

// VoteSource yields the votes of one content in canonical order (by voter, ascending).
type VoteSource interface {
	// A non-nil error ends the sequence.
	Votes(id ContentID) iter.Seq2[Vote, error]
}
