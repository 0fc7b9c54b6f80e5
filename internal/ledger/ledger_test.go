package ledger

import "testing"

func TestSetDayCoercesMalformedInputToZero(t *testing.T) {
	l := New()
	l.SetDay("2025-06-01", FieldRaw, "not-a-number")

	rec, ok := l.Get("2025-06-01")
	if !ok {
		t.Fatal("record not created for malformed input")
	}
	if rec.RawScore == nil || *rec.RawScore != 0 {
		t.Fatalf("malformed raw input stored as %v, want 0", rec.RawScore)
	}

	l.SetDay("2025-06-01", FieldClaim, "")
	rec, _ = l.Get("2025-06-01")
	if rec.ClaimCount == nil || *rec.ClaimCount != 0 {
		t.Fatalf("empty claim input stored as %v, want 0", rec.ClaimCount)
	}
}

func TestSetDayParsesAndOverwrites(t *testing.T) {
	l := New()
	l.SetDay("2025-06-01", FieldRaw, " 42 ")
	l.SetDay("2025-06-01", FieldRaw, "7")
	l.SetDay("2025-06-01", FieldClaim, "2")

	rec, _ := l.Get("2025-06-01")
	if rec.RawScore == nil || *rec.RawScore != 7 {
		t.Fatalf("raw = %v, want 7", rec.RawScore)
	}
	if rec.ClaimCount == nil || *rec.ClaimCount != 2 {
		t.Fatalf("claim = %v, want 2", rec.ClaimCount)
	}
}

func TestSetDayIgnoresUnknownField(t *testing.T) {
	l := New()
	l.SetDay("2025-06-01", "bogus", "5")
	if l.Len() != 0 {
		t.Fatalf("unknown field created an entry, len = %d", l.Len())
	}
}

func TestEffectiveDefaults(t *testing.T) {
	l := New()
	if got := l.EffectiveRaw("2025-06-01", 17); got != 17 {
		t.Fatalf("EffectiveRaw on empty ledger = %d, want 17", got)
	}
	if got := l.EffectiveClaim("2025-06-01"); got != 0 {
		t.Fatalf("EffectiveClaim on empty ledger = %d, want 0", got)
	}

	l.SetClaim("2025-06-01", 3)
	// raw still absent, claim explicit
	if got := l.EffectiveRaw("2025-06-01", 17); got != 17 {
		t.Fatalf("EffectiveRaw with claim-only entry = %d, want 17", got)
	}
	if got := l.EffectiveClaim("2025-06-01"); got != 3 {
		t.Fatalf("EffectiveClaim = %d, want 3", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	l := New()
	l.SetRaw("2025-06-01", 25)
	l.SetClaim("2025-06-01", 1)
	l.SetRaw("2025-06-10", 0)

	restored := FromSnapshot(l.Snapshot())
	if restored.Len() != l.Len() {
		t.Fatalf("restored len = %d, want %d", restored.Len(), l.Len())
	}
	for _, date := range l.Dates() {
		if restored.EffectiveRaw(date, 17) != l.EffectiveRaw(date, 17) {
			t.Fatalf("EffectiveRaw mismatch for %s after round trip", date)
		}
		if restored.EffectiveClaim(date) != l.EffectiveClaim(date) {
			t.Fatalf("EffectiveClaim mismatch for %s after round trip", date)
		}
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	l := New()
	l.SetRaw("2025-06-01", 10)

	snap := l.Snapshot()
	*snap["2025-06-01"].RawScore = 99

	if got := l.EffectiveRaw("2025-06-01", 17); got != 10 {
		t.Fatalf("mutating snapshot changed ledger: raw = %d, want 10", got)
	}
}

func TestPruneAfter(t *testing.T) {
	l := New()
	l.SetRaw("2025-06-01", 10)
	l.SetRaw("2025-06-20", 10)
	l.SetRaw("2025-07-05", 10)

	removed := l.PruneAfter("2025-06-20")
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, ok := l.Get("2025-06-20"); !ok {
		t.Fatal("entry at cutoff was removed")
	}
	if _, ok := l.Get("2025-07-05"); ok {
		t.Fatal("entry past cutoff survived")
	}
}

func TestAddDays(t *testing.T) {
	if got := AddDays("2025-06-01", 1); got != "2025-06-02" {
		t.Fatalf("AddDays +1 = %s", got)
	}
	if got := AddDays("2025-06-01", -1); got != "2025-05-31" {
		t.Fatalf("AddDays -1 = %s", got)
	}
	// month and year boundaries
	if got := AddDays("2025-12-31", 1); got != "2026-01-01" {
		t.Fatalf("AddDays year boundary = %s", got)
	}
	if got := AddDays("2024-02-28", 1); got != "2024-02-29" {
		t.Fatalf("AddDays leap day = %s", got)
	}
	// malformed keys pass through
	if got := AddDays("garbage", 3); got != "garbage" {
		t.Fatalf("AddDays on malformed key = %s", got)
	}
}

func TestDatesSorted(t *testing.T) {
	l := New()
	l.SetRaw("2025-06-10", 1)
	l.SetRaw("2025-06-01", 1)
	l.SetRaw("2025-05-30", 1)

	dates := l.Dates()
	for i := 1; i < len(dates); i++ {
		if dates[i-1] >= dates[i] {
			t.Fatalf("dates not ascending: %v", dates)
		}
	}
}
