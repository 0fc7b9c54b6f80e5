package rolling

import (
	"reflect"
	"testing"

	"github.com/theirongolddev/alphawin/internal/ledger"
)

const anchor = "2025-06-15"

func calcWith(t *testing.T, p Params, fill func(l *ledger.Ledger)) *Calculator {
	t.Helper()
	l := ledger.New()
	if fill != nil {
		fill(l)
	}
	return New(l, p)
}

func TestEmptyLedgerWindowIsFifteenTimesDefault(t *testing.T) {
	c := calcWith(t, Params{DefaultScore: 17}, nil)

	for _, date := range []string{anchor, "2024-01-01", "2030-12-31"} {
		if got := c.WindowSum(date); got != 15*17 {
			t.Fatalf("WindowSum(%s) = %d, want 255", date, got)
		}
	}
}

func TestWindowSumMatchesManualFifteenDaySum(t *testing.T) {
	c := calcWith(t, DefaultParams(), func(l *ledger.Ledger) {
		l.SetRaw("2025-06-03", 40)
		l.SetClaim("2025-06-07", 2)
		l.SetRaw("2025-06-14", 0)
	})

	sum := 0
	days := 0
	for d := ledger.AddDays(anchor, -15); d != anchor; d = ledger.AddDays(d, 1) {
		sum += c.AccountedScore(d)
		days++
	}
	if days != 15 {
		t.Fatalf("window spans %d days, want exactly 15", days)
	}
	if got := c.WindowSum(anchor); got != sum {
		t.Fatalf("WindowSum = %d, manual sum = %d", got, sum)
	}
}

func TestWindowExcludesAnchorDay(t *testing.T) {
	c := calcWith(t, Params{DefaultScore: 17}, func(l *ledger.Ledger) {
		l.SetRaw(anchor, 1000)
	})

	if got := c.WindowSum(anchor); got != 255 {
		t.Fatalf("anchor day leaked into its own window: %d, want 255", got)
	}
}

func TestClaimDeductionScenario(t *testing.T) {
	// One claim on each of the 15 days ending yesterday: every day scores
	// 17 - 15 = 2, so the window is 30.
	c := calcWith(t, Params{DefaultScore: 17}, func(l *ledger.Ledger) {
		for d := ledger.AddDays(anchor, -15); d != anchor; d = ledger.AddDays(d, 1) {
			l.SetClaim(d, 1)
		}
	})

	if got := c.AccountedScore(ledger.AddDays(anchor, -1)); got != 2 {
		t.Fatalf("AccountedScore = %d, want 2", got)
	}
	if got := c.WindowSum(anchor); got != 30 {
		t.Fatalf("WindowSum = %d, want 30", got)
	}
}

func TestAccountedScoreNegative(t *testing.T) {
	c := calcWith(t, DefaultParams(), func(l *ledger.Ledger) {
		l.SetRaw("2025-06-10", 10)
		l.SetClaim("2025-06-10", 2)
	})
	if got := c.AccountedScore("2025-06-10"); got != -20 {
		t.Fatalf("AccountedScore = %d, want -20", got)
	}
}

func TestParamsNormalization(t *testing.T) {
	c := New(nil, Params{})
	p := c.Params()
	if p.DefaultScore != 17 || p.Threshold != 200 || p.ClaimDeduction != 15 ||
		p.WindowDays != 15 || p.HorizonDays != 100 {
		t.Fatalf("zero params not normalized: %+v", p)
	}
}

func TestHistoryTableCoversWindow(t *testing.T) {
	c := calcWith(t, DefaultParams(), func(l *ledger.Ledger) {
		l.SetRaw("2025-06-05", 30)
	})

	rows := c.HistoryTable(anchor)
	if len(rows) != 15 {
		t.Fatalf("history rows = %d, want 15", len(rows))
	}
	if rows[0].Date != "2025-05-31" {
		t.Fatalf("first row = %s, want 2025-05-31", rows[0].Date)
	}
	if rows[14].Date != "2025-06-14" {
		t.Fatalf("last row = %s, want 2025-06-14", rows[14].Date)
	}

	// The accounted scores of these rows are exactly anchor's window.
	sum := 0
	for _, r := range rows {
		sum += r.AccountedScore
	}
	if sum != c.WindowSum(anchor) {
		t.Fatalf("history accounted sum = %d, window = %d", sum, c.WindowSum(anchor))
	}

	// Explicit marking
	for _, r := range rows {
		want := r.Date == "2025-06-05"
		if r.Explicit != want {
			t.Fatalf("row %s Explicit = %v, want %v", r.Date, r.Explicit, want)
		}
	}
}

func TestForwardTableStartsAtAnchor(t *testing.T) {
	c := calcWith(t, DefaultParams(), nil)

	rows := c.ForwardTable(anchor, 5)
	if len(rows) != 5 {
		t.Fatalf("forward rows = %d, want 5", len(rows))
	}
	if rows[0].Date != anchor {
		t.Fatalf("first forward row = %s, want %s", rows[0].Date, anchor)
	}
	if rows[0].WindowSum != c.WindowSum(anchor) {
		t.Fatalf("anchor row window = %d, want %d", rows[0].WindowSum, c.WindowSum(anchor))
	}
	if rows[4].Date != ledger.AddDays(anchor, 4) {
		t.Fatalf("last forward row = %s", rows[4].Date)
	}
}

func TestForwardTableDefaultLength(t *testing.T) {
	c := calcWith(t, DefaultParams(), nil)
	if got := len(c.ForwardTable(anchor, 0)); got != 15 {
		t.Fatalf("default forward length = %d, want 15", got)
	}
}

func TestTablesAreIdempotent(t *testing.T) {
	c := calcWith(t, DefaultParams(), func(l *ledger.Ledger) {
		l.SetRaw("2025-06-08", 50)
		l.SetClaim("2025-06-16", 1)
	})

	h1, h2 := c.HistoryTable(anchor), c.HistoryTable(anchor)
	if !reflect.DeepEqual(h1, h2) {
		t.Fatal("HistoryTable differs between calls with no edits")
	}
	f1, f2 := c.ForwardTable(anchor, 15), c.ForwardTable(anchor, 15)
	if !reflect.DeepEqual(f1, f2) {
		t.Fatal("ForwardTable differs between calls with no edits")
	}
}

func TestFutureEditsShiftForwardWindows(t *testing.T) {
	c := calcWith(t, Params{DefaultScore: 17}, nil)

	before := c.WindowSum(ledger.AddDays(anchor, 3))
	// A hypothetical heavy claim day inside the window of anchor+3.
	c.SetDay(ledger.AddDays(anchor, 1), "claim", "2")
	after := c.WindowSum(ledger.AddDays(anchor, 3))

	if after != before-30 {
		t.Fatalf("future claim edit: window went %d -> %d, want %d", before, after, before-30)
	}
	// Days whose window ends before the edited day are unaffected.
	if got := c.WindowSum(ledger.AddDays(anchor, 1)); got != 255 {
		t.Fatalf("window before edited day changed: %d, want 255", got)
	}
}

// The incremental recurrence window(d+1) = window(d) + accounted(d) -
// accounted(d-15) must agree with full recomputation for every ledger
// shape, including gaps and negative days.
func TestIncrementalRecurrenceMatchesRecompute(t *testing.T) {
	c := calcWith(t, DefaultParams(), func(l *ledger.Ledger) {
		l.SetRaw("2025-06-01", 0)
		l.SetRaw("2025-06-04", 80)
		l.SetClaim("2025-06-04", 3)
		l.SetClaim("2025-06-18", 1)
		l.SetRaw("2025-07-02", 5)
	})

	day := "2025-05-20"
	window := c.WindowSum(day)
	for i := 0; i < 60; i++ {
		next := ledger.AddDays(day, 1)
		window += c.AccountedScore(day) - c.AccountedScore(ledger.AddDays(day, -15))
		if got := c.WindowSum(next); got != window {
			t.Fatalf("recurrence diverged at %s: incremental %d, recomputed %d", next, window, got)
		}
		day = next
	}
}

func TestSnapshotRestorePreservesComputation(t *testing.T) {
	c := calcWith(t, DefaultParams(), func(l *ledger.Ledger) {
		l.SetRaw("2025-06-05", 44)
		l.SetClaim("2025-06-09", 2)
	})

	restored := New(ledger.FromSnapshot(c.Ledger().Snapshot()), c.Params())

	day := "2025-06-01"
	for i := 0; i < 30; i++ {
		if restored.AccountedScore(day) != c.AccountedScore(day) {
			t.Fatalf("AccountedScore(%s) differs after restore", day)
		}
		if restored.WindowSum(day) != c.WindowSum(day) {
			t.Fatalf("WindowSum(%s) differs after restore", day)
		}
		day = ledger.AddDays(day, 1)
	}
}
