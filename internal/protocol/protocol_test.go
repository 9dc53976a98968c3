package protocol

import (
	"fmt"
	"testing"
)

func TestSymbol(t *testing.T) {
	if got := SteemSymbol.Ticker(); got != "STEEM" {
		t.Errorf("ticker: got %q, want STEEM", got)
	}

	if got := SBDSymbol.Precision(); got != 3 {
		t.Errorf("precision: got %d, want 3", got)
	}

	if got := Steem(1234).String(); got != "1.234 STEEM" {
		t.Errorf("asset string: got %q", got)
	}

	if got := SBD(-5).String(); got != "-0.005 SBD" {
		t.Errorf("negative asset string: got %q", got)
	}
}

func TestPriceConvert(t *testing.T) {
	// 1 STEEM = 0.250 SBD
	p := Price{Base: SBD(250), Quote: Steem(1000)}

	sbd, err := ToSBD(p, Steem(4000))
	if err != nil {
		t.Fatalf("ToSBD: %v", err)
	}
	if sbd != SBD(1000) {
		t.Errorf("ToSBD: got %v, want 1.000 SBD", sbd)
	}

	steem, err := ToSteem(p, SBD(1000))
	if err != nil {
		t.Fatalf("ToSteem: %v", err)
	}
	if steem != Steem(4000) {
		t.Errorf("ToSteem: got %v, want 4.000 STEEM", steem)
	}
}

func TestPriceConvert_WrongSymbol(t *testing.T) {
	p := Price{Base: SBD(1), Quote: Steem(1)}

	_, err := p.Convert(Asset{Amount: 1, Symbol: NewSymbol("VESTS", 6)})
	if !IsInvariant(err) {
		t.Errorf("expected invariant violation, got %v", err)
	}

	if _, err := ToSBD(p, SBD(1)); !IsInvariant(err) {
		t.Errorf("ToSBD with SBD input: expected invariant violation, got %v", err)
	}
}

func TestNullPrice(t *testing.T) {
	var p Price

	sbd, err := ToSBD(p, Steem(1_000_000))
	if err != nil || sbd.Amount != 0 {
		t.Errorf("ToSBD(null): got %v, %v", sbd, err)
	}

	dust, err := IsPayoutDust(p, 1_000_000)
	if err != nil {
		t.Fatalf("IsPayoutDust: %v", err)
	}
	if !dust {
		t.Error("any payout is dust without a feed")
	}
}

func TestIsPayoutDust(t *testing.T) {
	p := Price{Base: SBD(1000), Quote: Steem(1000)}

	dust, _ := IsPayoutDust(p, MinPayoutSBD-1)
	if !dust {
		t.Error("19 milli-SBD should be dust")
	}

	dust, _ = IsPayoutDust(p, MinPayoutSBD)
	if dust {
		t.Error("20 milli-SBD should not be dust")
	}
}

func TestResolveCurve(t *testing.T) {
	pre := ForkState{}
	post := ForkState{CurationForkActive: true, WitnessCurationCurve: CurveSquareRoot}

	if got := ResolveCurve(CurveDetect, CurveDetect, pre); got != CurveQuadratic {
		t.Errorf("pre-fork detect: got %v, want quadratic", got)
	}

	if got := ResolveCurve(CurveDetect, CurveQuadraticCuration, pre); got != CurveQuadraticCuration {
		t.Errorf("pre-fork fund curve: got %v, want quadratic_curation", got)
	}

	if got := ResolveCurve(CurveDetect, CurveQuadraticCuration, post); got != CurveSquareRoot {
		t.Errorf("post-fork detect: got %v, want square_root", got)
	}

	if got := ResolveCurve(CurveLinear, CurveQuadraticCuration, post); got != CurveLinear {
		t.Errorf("explicit curve: got %v, want linear", got)
	}
}

func TestCurveKindText(t *testing.T) {
	for _, k := range []CurveKind{CurveQuadratic, CurveQuadraticCuration, CurveLinear, CurveLog2, CurveLog10, CurveSquareRoot, CurveDetect} {
		var parsed CurveKind
		if err := parsed.UnmarshalText([]byte(k.String())); err != nil {
			t.Fatalf("UnmarshalText(%v): %v", k, err)
		}
		if parsed != k {
			t.Errorf("round trip: got %v, want %v", parsed, k)
		}
	}

	if CurveDetect.Valid() || CurveKind(42).Valid() {
		t.Error("detect and unknown kinds must not be valid")
	}
}

func TestParseFundKind(t *testing.T) {
	if got := ParseFundKind("post"); got != FundPost {
		t.Errorf("post: got %v", got)
	}

	if got := ParseFundKind("comment"); got != FundComment {
		t.Errorf("comment: got %v", got)
	}

	if got := ParseFundKind("bogus"); got != FundUnknown {
		t.Errorf("bogus: got %v", got)
	}
}

func TestIsInvariant_Wrapped(t *testing.T) {
	err := fmt.Errorf("apply block:\n%w", Invariantf("bad %d", 1))
	if !IsInvariant(err) {
		t.Error("wrapped invariant should be detected")
	}

	if IsInvariant(fmt.Errorf("plain")) {
		t.Error("plain error is not an invariant violation")
	}

	if IsInvariant(nil) {
		t.Error("nil is not an invariant violation")
	}
}
