package rolling

import (
	"testing"

	"github.com/theirongolddev/alphawin/internal/ledger"
	"github.com/theirongolddev/alphawin/internal/model"
)

func TestSearchInvalidThreshold(t *testing.T) {
	c := calcWith(t, DefaultParams(), nil)

	for _, bad := range []int{0, -5} {
		res := c.FindCrossings(anchor, bad, 100)
		if res.Kind != model.OutcomeInvalidThreshold {
			t.Fatalf("threshold %d: kind = %s, want invalid-threshold", bad, res.Kind)
		}
		if len(res.Hits) != 0 {
			t.Fatalf("invalid threshold produced hits: %v", res.Hits)
		}
	}
}

func TestSearchAlreadySatisfied(t *testing.T) {
	// Empty ledger at 17/day: window = 255 >= 200.
	c := calcWith(t, Params{DefaultScore: 17}, nil)

	res := c.FindCrossings(anchor, 200, 100)
	if res.Kind != model.OutcomeAlreadySatisfied {
		t.Fatalf("kind = %s, want already-satisfied", res.Kind)
	}
	if res.CurrentWindow != 255 {
		t.Fatalf("CurrentWindow = %d, want 255", res.CurrentWindow)
	}
	if len(res.Hits) != 0 {
		t.Fatal("short-circuit still produced hits")
	}
}

func TestSearchUnreachableWithinHorizon(t *testing.T) {
	// At 10/day with no claims the window never exceeds 150, so 500 is
	// out of reach no matter how far forward we scan.
	c := calcWith(t, Params{DefaultScore: 10, Threshold: 500}, nil)

	res := c.FindCrossings(anchor, 500, 100)
	if res.Kind != model.OutcomeUnreachable {
		t.Fatalf("kind = %s, want unreachable", res.Kind)
	}
	if len(res.Advice) == 0 {
		t.Fatal("unreachable outcome carries no advice")
	}
}

func TestSearchFindsRecoveryAfterClaims(t *testing.T) {
	// Heavy claiming yesterday drags the window below 200; with 17/day
	// going forward it recovers within the horizon.
	c := calcWith(t, Params{DefaultScore: 17}, func(l *ledger.Ledger) {
		l.SetClaim(ledger.AddDays(anchor, -1), 6) // -90 points
	})

	res := c.FindCrossings(anchor, 200, 100)
	if res.Kind != model.OutcomeFound {
		t.Fatalf("kind = %s, want found", res.Kind)
	}
	if res.CurrentWindow != 255-90 {
		t.Fatalf("CurrentWindow = %d, want 165", res.CurrentWindow)
	}

	first := res.Hits[0]
	if first.DayOffset < 1 {
		t.Fatalf("first hit offset = %d, want >= 1", first.DayOffset)
	}
	if first.Score < 200 {
		t.Fatalf("first hit score = %d, below threshold", first.Score)
	}
	// The claim day leaves the window 15 days after it, at the latest.
	if first.DayOffset > 15 {
		t.Fatalf("recovery took %d days, expected within 15", first.DayOffset)
	}
}

func TestSearchHitsAscending(t *testing.T) {
	c := calcWith(t, Params{DefaultScore: 17}, func(l *ledger.Ledger) {
		l.SetClaim(ledger.AddDays(anchor, -1), 5)
		// A claim burst after the first crossing makes the sum dip back
		// below the threshold before recovering again.
		l.SetClaim(ledger.AddDays(anchor, 20), 8)
	})

	res := c.FindCrossings(anchor, 200, 60)
	if res.Kind != model.OutcomeFound {
		t.Fatalf("kind = %s, want found", res.Kind)
	}
	for i := 1; i < len(res.Hits); i++ {
		prev, cur := res.Hits[i-1], res.Hits[i]
		if cur.DayOffset <= prev.DayOffset {
			t.Fatalf("offsets not strictly increasing: %d then %d", prev.DayOffset, cur.DayOffset)
		}
		if cur.Date <= prev.Date {
			t.Fatalf("dates not ascending: %s then %s", prev.Date, cur.Date)
		}
	}
	// Non-monotonic check: with the dip there must be a gap in offsets.
	contiguous := true
	for i := 1; i < len(res.Hits); i++ {
		if res.Hits[i].DayOffset != res.Hits[i-1].DayOffset+1 {
			contiguous = false
			break
		}
	}
	if contiguous && len(res.Hits) > 1 {
		t.Fatal("expected a below-threshold gap between hit runs")
	}
}

func TestSearchRespectsMaxDays(t *testing.T) {
	// Window recovers on day 15 only; a 5-day horizon must miss it.
	c := calcWith(t, Params{DefaultScore: 17}, func(l *ledger.Ledger) {
		l.SetClaim(ledger.AddDays(anchor, -1), 6)
	})

	res := c.FindCrossings(anchor, 250, 5)
	if res.Kind != model.OutcomeUnreachable {
		t.Fatalf("kind = %s, want unreachable at short horizon", res.Kind)
	}

	res = c.FindCrossings(anchor, 250, 0) // falls back to HorizonDays
	if res.Kind != model.OutcomeFound {
		t.Fatalf("kind = %s, want found at default horizon", res.Kind)
	}
}

func TestMaxClaimable(t *testing.T) {
	c := calcWith(t, Params{DefaultScore: 17, Threshold: 200}, nil)
	// window 255: (255-200)/15 + 1 = 4
	if got := c.MaxClaimable(anchor); got != 4 {
		t.Fatalf("MaxClaimable = %d, want 4", got)
	}

	c2 := calcWith(t, Params{DefaultScore: 10, Threshold: 200}, nil)
	if got := c2.MaxClaimable(anchor); got != 0 {
		t.Fatalf("MaxClaimable below threshold = %d, want 0", got)
	}
}

func TestAdviseWarnsOnTomorrowDrop(t *testing.T) {
	// Exactly at threshold today; a claim today pulls tomorrow below.
	c := calcWith(t, Params{DefaultScore: 17, Threshold: 255}, func(l *ledger.Ledger) {
		l.SetClaim(anchor, 2)
	})

	if !c.Eligible(anchor) {
		t.Fatal("expected eligibility at exact threshold")
	}
	advice := c.Advise(anchor)
	found := false
	for _, a := range advice {
		if a == "warning: tomorrow's window drops below the target" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing tomorrow warning in advice: %v", advice)
	}
}

func TestAdviseReportsPointsNeeded(t *testing.T) {
	c := calcWith(t, Params{DefaultScore: 10, Threshold: 200}, nil)

	advice := c.Advise(anchor)
	if len(advice) == 0 {
		t.Fatal("no advice for ineligible state")
	}
	if advice[0] != "not yet eligible: 50 more points needed" {
		t.Fatalf("advice[0] = %q", advice[0])
	}
}
