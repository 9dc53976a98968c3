package cashout

import (
	"testing"

	"VoteChain/internal/chain"
	"VoteChain/internal/protocol"
	"VoteChain/internal/widemath"
)

var parity = protocol.Price{Base: protocol.SBD(1000), Quote: protocol.Steem(1000)}

// testInput pays 500.000 STEEM with a 25% curation share and one 10% beneficiary.
func testInput(t *testing.T) Input {
	t.Helper()

	fund := chain.NewRewardFund(protocol.PostRewardFundName,
		widemath.From64(protocol.ContentConstantHF0), widemath.From64(2_000_000), protocol.Steem(1_000_000))
	fund.AuthorCurve = protocol.CurveLinear

	content := &chain.Content{
		ID:                     7,
		Author:                 "author",
		Permlink:               "post",
		NetRshares:             1_000_000,
		AuctionWindowSize:      1800,
		CurationCurve:          protocol.CurveLinear,
		TotalVotes:             2,
		CashoutTime:            1_700_000_000,
		AllowCurationRewards:   true,
		CurationRewardsPercent: protocol.DefaultCurationRewardsPercent,
		RewardWeight:           protocol.Percent100,
		MaxAcceptedPayout:      protocol.SBD(1_000_000_000),
		AuctionDestination:     protocol.ToCurators,
		Beneficiaries:          []chain.Beneficiary{{Account: "carol", Weight: 10 * protocol.Percent1}},
	}

	votes := chain.NewSliceVotes([]chain.Vote{
		{Comment: 7, Voter: "alice", OrigRshares: 500, Rshares: 500, AuctionTime: 900},
		{Comment: 7, Voter: "bob", OrigRshares: 500, Rshares: 500, AuctionTime: 1800},
	})

	return Input{Content: content, Votes: votes, Fund: fund, Price: parity}
}

// checkBalanced verifies that every reward token is accounted for.
func checkBalanced(t *testing.T, rep *Report) {
	t.Helper()

	sum := rep.AuthorTokens + rep.FundTokens
	for _, c := range rep.Curators {
		sum += c.Tokens
	}
	for _, b := range rep.Beneficiaries {
		sum += b.Tokens
	}

	if sum != rep.RewardTokens {
		t.Errorf("distributed %d of %d reward tokens", sum, rep.RewardTokens)
	}
}

func TestCompute(t *testing.T) {
	rep, err := Compute(testInput(t))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if rep.RewardTokens != 500_000 || rep.CurationTokens != 125_000 {
		t.Errorf("reward/curation: got %d/%d, want 500000/125000", rep.RewardTokens, rep.CurationTokens)
	}

	if len(rep.Curators) != 2 {
		t.Fatalf("curators: got %d, want 2", len(rep.Curators))
	}

	if rep.Curators[0].Voter != "bob" || rep.Curators[0].Tokens != 83_333 {
		t.Errorf("bob: got %+v, want 83333 tokens", rep.Curators[0])
	}

	if rep.Curators[1].Voter != "alice" || rep.Curators[1].Tokens != 41_666 {
		t.Errorf("alice: got %+v, want 41666 tokens", rep.Curators[1])
	}

	if len(rep.Beneficiaries) != 1 || rep.Beneficiaries[0].Tokens != 37_500 {
		t.Errorf("beneficiaries: got %+v, want carol 37500", rep.Beneficiaries)
	}

	// 375000 author share + 1 unclaimed - 37500 beneficiary
	if rep.AuthorTokens != 337_501 {
		t.Errorf("author: got %d, want 337501", rep.AuthorTokens)
	}

	if rep.PayoutValue != protocol.SBD(500_000) {
		t.Errorf("payout value: got %v, want 500.000 SBD", rep.PayoutValue)
	}

	checkBalanced(t, rep)
}

func TestCompute_AuctionToFund(t *testing.T) {
	in := testInput(t)
	in.Content.AuctionDestination = protocol.ToRewardFund

	rep, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// 125000 * 250 / 1000
	if rep.FundTokens != 31_250 {
		t.Errorf("fund: got %d, want 31250", rep.FundTokens)
	}

	if rep.Curators[0].Tokens != 62_500 || rep.Curators[1].Tokens != 31_250 {
		t.Errorf("curators: got %d/%d, want 62500/31250", rep.Curators[0].Tokens, rep.Curators[1].Tokens)
	}

	checkBalanced(t, rep)
}

func TestCompute_CurationDisabled(t *testing.T) {
	in := testInput(t)
	in.Content.AllowCurationRewards = false
	in.Content.Beneficiaries = nil

	rep, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if rep.CurationTokens != 0 || len(rep.Curators) != 0 {
		t.Errorf("curation: got %d tokens, %d curators", rep.CurationTokens, len(rep.Curators))
	}

	if rep.AuthorTokens != 500_000 {
		t.Errorf("author: got %d, want 500000", rep.AuthorTokens)
	}
}

func TestCompute_NothingToPay(t *testing.T) {
	in := testInput(t)
	in.Content.NetRshares = -10

	rep, err := Compute(in)
	if err != nil || rep.RewardTokens != 0 || rep.Curation != nil {
		t.Errorf("negative rshares: got %+v, %v", rep, err)
	}

	in = testInput(t)
	in.Fund = chain.NewRewardFund("bogus", widemath.One, widemath.One, protocol.Steem(1))

	rep, err = Compute(in)
	if err != nil || rep.RewardTokens != 0 {
		t.Errorf("unknown fund: got %+v, %v", rep, err)
	}
}

func TestCompute_InvalidBeneficiaries(t *testing.T) {
	in := testInput(t)
	in.Content.Beneficiaries = []chain.Beneficiary{
		{Account: "carol", Weight: 6000},
		{Account: "dave", Weight: 5000},
	}

	if _, err := Compute(in); !protocol.IsInvariant(err) {
		t.Errorf("expected invariant violation, got %v", err)
	}

	in = testInput(t)
	in.Content.Beneficiaries = make([]chain.Beneficiary, protocol.MaxBeneficiaries+1)

	if _, err := Compute(in); !protocol.IsInvariant(err) {
		t.Errorf("too many beneficiaries: expected invariant violation, got %v", err)
	}
}

func TestTotalPendingPayout(t *testing.T) {
	fund := chain.NewRewardFund(protocol.CommentRewardFundName, widemath.One, widemath.From64(1000), protocol.Steem(10_000))

	got, err := TotalPendingPayout(widemath.From64(500), fund, parity)
	if err != nil {
		t.Fatalf("TotalPendingPayout: %v", err)
	}

	if got != protocol.SBD(5_000) {
		t.Errorf("pending: got %v, want 5.000 SBD", got)
	}
}

func TestContentPendingPayout(t *testing.T) {
	fund := chain.NewRewardFund(protocol.CommentRewardFundName, widemath.One, widemath.From64(1000), protocol.Steem(10_000))
	c := &chain.Content{ID: 3, NetRshares: 9}

	// (9 + 1)^2 - 1 = 99 claims of 1000
	got, err := ContentPendingPayout(c, fund, parity)
	if err != nil {
		t.Fatalf("ContentPendingPayout: %v", err)
	}

	if got != protocol.SBD(990) {
		t.Errorf("pending: got %v, want 0.990 SBD", got)
	}

	c.NetRshares = -5
	if got, err = ContentPendingPayout(c, fund, parity); err != nil || got != protocol.SBD(0) {
		t.Errorf("negative rshares: got %v, %v, want 0 SBD", got, err)
	}

	bogus := chain.NewRewardFund("bogus", widemath.One, widemath.From64(1000), protocol.Steem(10_000))
	c.NetRshares = 9
	if got, err = ContentPendingPayout(c, bogus, parity); err != nil || got != protocol.SBD(0) {
		t.Errorf("unknown fund: got %v, %v, want 0 SBD", got, err)
	}
}
