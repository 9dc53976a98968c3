package chain

import (
	"testing"

	"VoteChain/internal/protocol"
	"VoteChain/internal/widemath"
)

func TestVoteChanged(t *testing.T) {
	tests := []struct {
		numChanges int8
		want       bool
	}{
		{0, false},
		{-1, false},
		{1, true},
		{5, true},
	}

	for _, tt := range tests {
		v := Vote{NumChanges: tt.numChanges}
		if got := v.Changed(); got != tt.want {
			t.Errorf("Changed(%d): got %v, want %v", tt.numChanges, got, tt.want)
		}
	}
}

func TestVoteBefore(t *testing.T) {
	a := Vote{Comment: 1, Voter: "zed"}
	b := Vote{Comment: 2, Voter: "amy"}
	c := Vote{Comment: 2, Voter: "bob"}

	if !a.Before(&b) || b.Before(&a) {
		t.Error("content ID must order first")
	}

	if !b.Before(&c) || c.Before(&b) {
		t.Error("voter must order within a content")
	}

	if b.Before(&b) {
		t.Error("a vote must not precede itself")
	}
}

func TestSliceVotes(t *testing.T) {
	src := NewSliceVotes([]Vote{
		{Comment: 1, Voter: "carol"},
		{Comment: 2, Voter: "dave"},
		{Comment: 1, Voter: "alice"},
		{Comment: 1, Voter: "bob"},
	})

	var voters []string
	for v, err := range src.Votes(1) {
		if err != nil {
			t.Fatalf("Votes: %v", err)
		}
		voters = append(voters, v.Voter)
	}

	if len(voters) != 3 || voters[0] != "alice" || voters[1] != "bob" || voters[2] != "carol" {
		t.Errorf("got %v, want [alice bob carol]", voters)
	}

	for range src.Votes(3) {
		t.Error("content without votes must yield nothing")
	}
}

func TestNewRewardFund(t *testing.T) {
	f := NewRewardFund(protocol.CommentRewardFundName, widemath.One, widemath.Zero, protocol.Steem(5))

	if f.Kind != protocol.FundComment {
		t.Errorf("kind: got %v, want comment", f.Kind)
	}

	if f.AuthorCurve != protocol.CurveQuadratic || f.CurationCurve != protocol.CurveDetect {
		t.Errorf("curves: got %v/%v, want quadratic/detect", f.AuthorCurve, f.CurationCurve)
	}

	if NewRewardFund("other", widemath.One, widemath.Zero, protocol.Steem(5)).Kind != protocol.FundUnknown {
		t.Error("unexpected kind for unknown fund name")
	}
}

func TestContentPaidOut(t *testing.T) {
	c := Content{}
	if c.PaidOut() {
		t.Error("new content must not be paid out")
	}

	c.LastPayout = 1
	if !c.PaidOut() {
		t.Error("content with a last payout must be paid out")
	}
}
