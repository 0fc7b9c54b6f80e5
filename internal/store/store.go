// Package store provides the SQLite-backed profile and ledger store.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/alphawin/internal/ledger"
	"github.com/theirongolddev/alphawin/internal/model"
	"github.com/theirongolddev/alphawin/internal/rolling"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store persists profiles and their day entries. The calculator core
// never touches it; the CLI and TUI load a ledger snapshot from here and
// save edits back.
type Store struct {
	db *sql.DB
}

// Sentinel errors for profile operations.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
	ErrDefaultProfile  = errors.New("the default profile cannot be renamed or deleted")
)

// Open opens or creates the database at the given path and ensures the
// default profile exists.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening profile db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureDefault(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureDefault() error {
	_, err := s.db.Exec(`INSERT OR IGNORE INTO profiles
		(name, daily_score, threshold, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		model.DefaultProfileName, rolling.DefaultDailyScore, rolling.DefaultThreshold,
		nowStamp(), nowStamp())
	return err
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ListProfiles returns all profiles in name order, with entry counts.
func (s *Store) ListProfiles() ([]model.Profile, error) {
	rows, err := s.db.Query(`SELECT
		p.name, p.daily_score, p.threshold, p.created_at, p.updated_at,
		COUNT(e.date)
		FROM profiles p LEFT JOIN day_entries e ON e.profile = p.name
		GROUP BY p.name ORDER BY p.name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var profiles []model.Profile
	for rows.Next() {
		var p model.Profile
		var created, updated string
		if err := rows.Scan(&p.Name, &p.DailyScore, &p.Threshold, &created, &updated, &p.EntryCount); err != nil {
			return nil, err
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, created)
		p.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// GetProfile returns one profile by name.
func (s *Store) GetProfile(name string) (model.Profile, error) {
	var p model.Profile
	var created, updated string
	err := s.db.QueryRow(`SELECT name, daily_score, threshold, created_at, updated_at
		FROM profiles WHERE name = ?`, name).
		Scan(&p.Name, &p.DailyScore, &p.Threshold, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrProfileNotFound
	}
	if err != nil {
		return p, err
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, created)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return p, nil
}

// CreateProfile adds a new profile with the given scoring settings.
func (s *Store) CreateProfile(name string, dailyScore, threshold int) error {
	if name == "" {
		return errors.New("profile name must not be empty")
	}
	if dailyScore <= 0 {
		dailyScore = rolling.DefaultDailyScore
	}
	if threshold <= 0 {
		threshold = rolling.DefaultThreshold
	}
	_, err := s.db.Exec(`INSERT INTO profiles
		(name, daily_score, threshold, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		name, dailyScore, threshold, nowStamp(), nowStamp())
	if err != nil {
		if isUniqueViolation(err) {
			return ErrProfileExists
		}
		return err
	}
	return nil
}

// RenameProfile renames a profile and migrates its day entries. The
// default profile is protected, as is renaming onto an existing name.
func (s *Store) RenameProfile(oldName, newName string) error {
	if oldName == model.DefaultProfileName || newName == model.DefaultProfileName {
		return ErrDefaultProfile
	}
	if newName == "" || newName == oldName {
		return errors.New("invalid new profile name")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`UPDATE profiles SET name = ?, updated_at = ? WHERE name = ?`,
		newName, nowStamp(), oldName)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrProfileExists
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProfileNotFound
	}

	// ON UPDATE is not declared on the FK, migrate entries explicitly.
	if _, err := tx.Exec(`UPDATE day_entries SET profile = ? WHERE profile = ?`,
		newName, oldName); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteProfile removes a profile and its entries.
func (s *Store) DeleteProfile(name string) error {
	if name == model.DefaultProfileName {
		return ErrDefaultProfile
	}
	res, err := s.db.Exec(`DELETE FROM profiles WHERE name = ?`, name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// UpdateSettings stores a profile's scoring settings.
func (s *Store) UpdateSettings(name string, dailyScore, threshold int) error {
	res, err := s.db.Exec(`UPDATE profiles SET daily_score = ?, threshold = ?, updated_at = ?
		WHERE name = ?`, dailyScore, threshold, nowStamp(), name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// SaveDay upserts one day entry. Nil fields are stored as NULL so that
// "absent" survives the round trip.
func (s *Store) SaveDay(profile, date string, rec model.DailyRecord) error {
	if !rec.HasData() {
		_, err := s.db.Exec(`DELETE FROM day_entries WHERE profile = ? AND date = ?`,
			profile, date)
		return err
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO day_entries
		(profile, date, raw_score, claim_count) VALUES (?, ?, ?, ?)`,
		profile, date, nullable(rec.RawScore), nullable(rec.ClaimCount))
	if err == nil {
		_, err = s.db.Exec(`UPDATE profiles SET updated_at = ? WHERE name = ?`,
			nowStamp(), profile)
	}
	return err
}

// SaveLedger replaces all of a profile's entries with the snapshot.
func (s *Store) SaveLedger(profile string, l *ledger.Ledger) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM day_entries WHERE profile = ?`, profile); err != nil {
		return err
	}
	for date, rec := range l.Snapshot() {
		if !rec.HasData() {
			continue
		}
		if _, err := tx.Exec(`INSERT INTO day_entries
			(profile, date, raw_score, claim_count) VALUES (?, ?, ?, ?)`,
			profile, date, nullable(rec.RawScore), nullable(rec.ClaimCount)); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(`UPDATE profiles SET updated_at = ? WHERE name = ?`,
		nowStamp(), profile); err != nil {
		return err
	}
	return tx.Commit()
}

// LoadLedger reads all of a profile's entries into a fresh ledger.
func (s *Store) LoadLedger(profile string) (*ledger.Ledger, error) {
	if _, err := s.GetProfile(profile); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT date, raw_score, claim_count
		FROM day_entries WHERE profile = ?`, profile)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	snap := make(map[string]model.DailyRecord)
	for rows.Next() {
		var date string
		var raw, claim sql.NullInt64
		if err := rows.Scan(&date, &raw, &claim); err != nil {
			return nil, err
		}
		var rec model.DailyRecord
		if raw.Valid {
			v := int(raw.Int64)
			rec.RawScore = &v
		}
		if claim.Valid {
			v := int(claim.Int64)
			rec.ClaimCount = &v
		}
		snap[date] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ledger.FromSnapshot(snap), nil
}

func nullable(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func isUniqueViolation(err error) bool {
	// modernc.org/sqlite reports constraint failures in the error text;
	// there is no exported error code type to match on.
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}
