package protocol

const (
	// Percent100 is the basis point denominator (100% = 10000).
	Percent100 = 10000

	// Percent1 is one percent in basis points.
	Percent1 = Percent100 / 100

	// MinPayoutSBD is the smallest payout worth distributing, in milli-SBD.
	// Anything below it is dust and gets zeroed.
	MinPayoutSBD = 20

	// ContentConstantHF0 is the curve parameter S used before reward funds carried their own.
	ContentConstantHF0 = 2_000_000_000_000

	// ReverseAuctionWindowSeconds is the default auction window for new content (30 minutes).
	ReverseAuctionWindowSeconds = 60 * 30

	// DefaultCurationRewardsPercent is the curators' share of a content reward (25%).
	DefaultCurationRewardsPercent = 25 * Percent1

	// MaxBeneficiaries bounds the beneficiary list of a single content.
	MaxBeneficiaries = 8
)

// Reward fund names known to the protocol.
const (
	PostRewardFundName    = "post"
	CommentRewardFundName = "comment"
)
