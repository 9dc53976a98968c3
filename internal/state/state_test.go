package state

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"VoteChain/internal/chain"
	"VoteChain/internal/protocol"
	"VoteChain/internal/storage"
	"VoteChain/internal/widemath"
)

// newTestState opens a state over a temp-dir store.
func newTestState(t *testing.T) *State {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "db"), 0)
	if err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return New(db)
}

// collectVotes drains a vote sequence.
func collectVotes(t *testing.T, src chain.VoteSource, id chain.ContentID) []chain.Vote {
	t.Helper()

	var votes []chain.Vote
	for v, err := range src.Votes(id) {
		if err != nil {
			t.Fatalf("Votes: %v", err)
		}
		votes = append(votes, v)
	}

	return votes
}

func testContent() chain.Content {
	return chain.Content{
		ID:                     42,
		Author:                 "alice",
		Permlink:               "hello-world",
		NetRshares:             -17,
		ChildrenRshares2:       widemath.Uint128{Hi: 3, Lo: 9},
		AuctionWindowSize:      1800,
		CurationCurve:          protocol.CurveDetect,
		TotalVotes:             3,
		LastPayout:             0,
		CashoutTime:            1_700_000_000,
		AllowCurationRewards:   false,
		CurationRewardsPercent: 2500,
		RewardWeight:           protocol.Percent100,
		MaxAcceptedPayout:      protocol.SBD(1_000_000),
		AuctionDestination:     protocol.ToAuthor,
		Beneficiaries: []chain.Beneficiary{
			{Account: "bob", Weight: 500},
			{Account: "carol", Weight: 1000},
		},
	}
}

func TestContentRoundTrip(t *testing.T) {
	s := newTestState(t)
	want := testContent()

	if err := s.PutContent(&want); err != nil {
		t.Fatalf("PutContent: %v", err)
	}

	got, err := s.Content(want.ID)
	if err != nil {
		t.Fatalf("Content: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if _, err := s.Content(7); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing content: got %v, want ErrNotFound", err)
	}
}

func TestContents(t *testing.T) {
	s := newTestState(t)

	for _, id := range []chain.ContentID{300, 2, 256} {
		c := testContent()
		c.ID = id
		if err := s.PutContent(&c); err != nil {
			t.Fatalf("PutContent: %v", err)
		}
	}

	got, err := s.Contents()
	if err != nil {
		t.Fatalf("Contents: %v", err)
	}

	if len(got) != 3 || got[0].ID != 2 || got[1].ID != 256 || got[2].ID != 300 {
		t.Errorf("contents not in ID order: %v", got)
	}
}

func TestVotesCanonicalOrder(t *testing.T) {
	s := newTestState(t)

	votes := []chain.Vote{
		{Comment: 1, Voter: "carol", OrigRshares: 3, Rshares: 3, NumChanges: -1},
		{Comment: 1, Voter: "alice", OrigRshares: 1, Rshares: -1, VotePercent: -100},
		{Comment: 2, Voter: "aaron", OrigRshares: 9},
		{Comment: 1, Voter: "bob", OrigRshares: 2, AuctionTime: 900, LastUpdate: 5},
	}

	if err := s.PutVotes(votes); err != nil {
		t.Fatalf("PutVotes: %v", err)
	}

	got := collectVotes(t, s, 1)
	if len(got) != 3 {
		t.Fatalf("got %d votes, want 3", len(got))
	}

	for i, voter := range []string{"alice", "bob", "carol"} {
		if got[i].Voter != voter {
			t.Errorf("vote %d: got %s, want %s", i, got[i].Voter, voter)
		}
	}

	if !reflect.DeepEqual(got[1], votes[3]) {
		t.Errorf("bob: got %+v, want %+v", got[1], votes[3])
	}

	if err := s.DeleteVote(1, "bob"); err != nil {
		t.Fatalf("DeleteVote: %v", err)
	}

	if got := collectVotes(t, s, 1); len(got) != 2 {
		t.Errorf("after delete: got %d votes, want 2", len(got))
	}
}

func TestVotesEarlyBreak(t *testing.T) {
	s := newTestState(t)

	votes := []chain.Vote{{Comment: 1, Voter: "a"}, {Comment: 1, Voter: "b"}}
	if err := s.PutVotes(votes); err != nil {
		t.Fatalf("PutVotes: %v", err)
	}

	n := 0
	for _, err := range s.Votes(1) {
		if err != nil {
			t.Fatalf("Votes: %v", err)
		}
		n++
		break
	}

	if n != 1 {
		t.Errorf("got %d iterations, want 1", n)
	}
}

func TestFundAndProps(t *testing.T) {
	s := newTestState(t)

	fund := chain.NewRewardFund(protocol.PostRewardFundName,
		widemath.From64(protocol.ContentConstantHF0), widemath.Uint128{Hi: 1, Lo: 2}, protocol.Steem(12_345))
	fund.CurationCurve = protocol.CurveSquareRoot

	if err := s.PutFund(&fund); err != nil {
		t.Fatalf("PutFund: %v", err)
	}

	gotFund, err := s.Fund(protocol.PostRewardFundName)
	if err != nil {
		t.Fatalf("Fund: %v", err)
	}

	if gotFund != fund {
		t.Errorf("fund: got %+v, want %+v", gotFund, fund)
	}

	if _, err := s.Props(); !errors.Is(err, ErrNotFound) {
		t.Errorf("props before write: got %v, want ErrNotFound", err)
	}

	props := Props{
		Price:    protocol.Price{Base: protocol.SBD(1_000), Quote: protocol.Steem(4_000)},
		Fork:     protocol.ForkState{CurationForkActive: true, WitnessCurationCurve: protocol.CurveLinear},
		HeadTime: 1_700_000_123,
	}

	if err := s.PutProps(&props); err != nil {
		t.Fatalf("PutProps: %v", err)
	}

	gotProps, err := s.Props()
	if err != nil {
		t.Fatalf("Props: %v", err)
	}

	if gotProps != props {
		t.Errorf("props: got %+v, want %+v", gotProps, props)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := newTestState(t)

	if err := s.PutVotes([]chain.Vote{{Comment: 1, Voter: "alice", OrigRshares: 1}}); err != nil {
		t.Fatalf("PutVotes: %v", err)
	}

	snap, closeSnap := s.Snapshot()
	defer closeSnap()

	if err := s.PutVotes([]chain.Vote{{Comment: 1, Voter: "bob", OrigRshares: 1}}); err != nil {
		t.Fatalf("PutVotes: %v", err)
	}

	if got := collectVotes(t, snap, 1); len(got) != 1 {
		t.Errorf("snapshot: got %d votes, want 1", len(got))
	}

	if got := collectVotes(t, s, 1); len(got) != 2 {
		t.Errorf("live: got %d votes, want 2", len(got))
	}
}

func TestDecodeShortRecord(t *testing.T) {
	if _, err := decodeVote([]byte{1, 2}); err == nil {
		t.Error("expected error for short vote record")
	}
}
