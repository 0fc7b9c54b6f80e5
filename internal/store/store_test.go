package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/alphawin/internal/ledger"
	"github.com/theirongolddev/alphawin/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "profiles.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenCreatesDefaultProfile(t *testing.T) {
	s := openTestStore(t)

	p, err := s.GetProfile(model.DefaultProfileName)
	if err != nil {
		t.Fatalf("default profile missing: %v", err)
	}
	if p.DailyScore != 17 || p.Threshold != 200 {
		t.Fatalf("default profile settings = %d/%d, want 17/200", p.DailyScore, p.Threshold)
	}
}

func TestCreateListDeleteProfile(t *testing.T) {
	s := openTestStore(t)

	if err := s.CreateProfile("alt", 20, 180); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if err := s.CreateProfile("alt", 20, 180); !errors.Is(err, ErrProfileExists) {
		t.Fatalf("duplicate create: %v, want ErrProfileExists", err)
	}

	profiles, err := s.ListProfiles()
	if err != nil {
		t.Fatalf("ListProfiles: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("profiles = %d, want 2", len(profiles))
	}

	if err := s.DeleteProfile("alt"); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}
	if err := s.DeleteProfile("alt"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("delete missing: %v, want ErrProfileNotFound", err)
	}
	if err := s.DeleteProfile(model.DefaultProfileName); !errors.Is(err, ErrDefaultProfile) {
		t.Fatalf("delete default: %v, want ErrDefaultProfile", err)
	}
}

func TestRenameProfileMigratesEntries(t *testing.T) {
	s := openTestStore(t)

	if err := s.CreateProfile("old", 17, 200); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	raw := 30
	if err := s.SaveDay("old", "2025-06-01", model.DailyRecord{RawScore: &raw}); err != nil {
		t.Fatalf("SaveDay: %v", err)
	}

	if err := s.RenameProfile("old", "new"); err != nil {
		t.Fatalf("RenameProfile: %v", err)
	}
	if _, err := s.GetProfile("old"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("old profile still present: %v", err)
	}

	l, err := s.LoadLedger("new")
	if err != nil {
		t.Fatalf("LoadLedger: %v", err)
	}
	if got := l.EffectiveRaw("2025-06-01", 17); got != 30 {
		t.Fatalf("migrated entry raw = %d, want 30", got)
	}

	if err := s.RenameProfile(model.DefaultProfileName, "x"); !errors.Is(err, ErrDefaultProfile) {
		t.Fatalf("rename default: %v, want ErrDefaultProfile", err)
	}
}

func TestSaveDayNullFieldsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	claim := 2
	if err := s.SaveDay("default", "2025-06-03", model.DailyRecord{ClaimCount: &claim}); err != nil {
		t.Fatalf("SaveDay: %v", err)
	}

	l, err := s.LoadLedger("default")
	if err != nil {
		t.Fatalf("LoadLedger: %v", err)
	}
	rec, ok := l.Get("2025-06-03")
	if !ok {
		t.Fatal("entry missing after save")
	}
	if rec.RawScore != nil {
		t.Fatalf("raw should be absent, got %d", *rec.RawScore)
	}
	if rec.ClaimCount == nil || *rec.ClaimCount != 2 {
		t.Fatalf("claim = %v, want 2", rec.ClaimCount)
	}
}

func TestSaveDayEmptyRecordDeletes(t *testing.T) {
	s := openTestStore(t)

	raw := 5
	if err := s.SaveDay("default", "2025-06-03", model.DailyRecord{RawScore: &raw}); err != nil {
		t.Fatalf("SaveDay: %v", err)
	}
	if err := s.SaveDay("default", "2025-06-03", model.DailyRecord{}); err != nil {
		t.Fatalf("SaveDay empty: %v", err)
	}

	l, _ := s.LoadLedger("default")
	if _, ok := l.Get("2025-06-03"); ok {
		t.Fatal("empty record should have deleted the entry")
	}
}

func TestSaveLedgerRoundTrip(t *testing.T) {
	s := openTestStore(t)

	l := ledger.New()
	l.SetRaw("2025-06-01", 40)
	l.SetClaim("2025-06-02", 1)
	l.SetRaw("2025-06-02", 0)

	if err := s.SaveLedger("default", l); err != nil {
		t.Fatalf("SaveLedger: %v", err)
	}
	restored, err := s.LoadLedger("default")
	if err != nil {
		t.Fatalf("LoadLedger: %v", err)
	}

	if restored.Len() != l.Len() {
		t.Fatalf("restored len = %d, want %d", restored.Len(), l.Len())
	}
	for _, date := range l.Dates() {
		if restored.EffectiveRaw(date, 17) != l.EffectiveRaw(date, 17) ||
			restored.EffectiveClaim(date) != l.EffectiveClaim(date) {
			t.Fatalf("entry %s differs after round trip", date)
		}
	}
}

func TestUpdateSettings(t *testing.T) {
	s := openTestStore(t)

	if err := s.UpdateSettings("default", 25, 300); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	p, _ := s.GetProfile("default")
	if p.DailyScore != 25 || p.Threshold != 300 {
		t.Fatalf("settings = %d/%d, want 25/300", p.DailyScore, p.Threshold)
	}

	if err := s.UpdateSettings("ghost", 1, 1); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("update missing: %v, want ErrProfileNotFound", err)
	}
}
