// Package ledger implements the sparse per-date record of raw scores and
// claim counts, with default fallback for unset days.
package ledger

import (
	"sort"
	"strconv"
	"strings"

	"github.com/theirongolddev/alphawin/internal/model"
)

// Field names accepted by SetDay.
const (
	FieldRaw   = "raw"
	FieldClaim = "claim"
)

// Ledger maps date keys to daily records. Most days are absent, meaning
// "use defaults". One ledger spans past, present, and future hypothetical
// days uniformly; only the caller's horizon distinguishes them.
type Ledger struct {
	days map[string]model.DailyRecord
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{days: make(map[string]model.DailyRecord)}
}

// FromSnapshot builds a ledger from a persisted snapshot. The snapshot is
// deep-copied so later edits don't alias the caller's map.
func FromSnapshot(snap map[string]model.DailyRecord) *Ledger {
	l := New()
	for date, rec := range snap {
		cp := rec
		if rec.RawScore != nil {
			v := *rec.RawScore
			cp.RawScore = &v
		}
		if rec.ClaimCount != nil {
			v := *rec.ClaimCount
			cp.ClaimCount = &v
		}
		l.days[date] = cp
	}
	return l
}

// ParseAmount coerces user input to an integer. Malformed input becomes 0
// rather than an error; this permissive behavior is part of the contract
// and is relied on by the edit paths in the CLI and TUI.
func ParseAmount(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

// SetDay stores one field of the record for date, creating the record if
// absent. value goes through ParseAmount. Unknown field names are ignored.
func (l *Ledger) SetDay(date, field, value string) {
	rec := l.days[date]
	n := ParseAmount(value)
	switch field {
	case FieldRaw:
		rec.RawScore = &n
	case FieldClaim:
		rec.ClaimCount = &n
	default:
		return
	}
	l.days[date] = rec
}

// SetRaw stores an explicit raw score for date.
func (l *Ledger) SetRaw(date string, score int) {
	rec := l.days[date]
	rec.RawScore = &score
	l.days[date] = rec
}

// SetClaim stores an explicit claim count for date.
func (l *Ledger) SetClaim(date string, count int) {
	rec := l.days[date]
	rec.ClaimCount = &count
	l.days[date] = rec
}

// Get returns the record for date and whether one exists.
func (l *Ledger) Get(date string) (model.DailyRecord, bool) {
	rec, ok := l.days[date]
	return rec, ok
}

// Clear removes the record for date.
func (l *Ledger) Clear(date string) {
	delete(l.days, date)
}

// EffectiveRaw resolves the raw score for date: the stored value if
// present, else defaultScore.
func (l *Ledger) EffectiveRaw(date string, defaultScore int) int {
	if rec, ok := l.days[date]; ok && rec.RawScore != nil {
		return *rec.RawScore
	}
	return defaultScore
}

// EffectiveClaim resolves the claim count for date: the stored value if
// present, else 0.
func (l *Ledger) EffectiveClaim(date string) int {
	if rec, ok := l.days[date]; ok && rec.ClaimCount != nil {
		return *rec.ClaimCount
	}
	return 0
}

// Len returns the number of explicit entries.
func (l *Ledger) Len() int {
	return len(l.days)
}

// Dates returns all explicit entry dates in ascending order.
func (l *Ledger) Dates() []string {
	dates := make([]string, 0, len(l.days))
	for d := range l.days {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Snapshot returns a deep copy of the ledger contents for persistence.
func (l *Ledger) Snapshot() map[string]model.DailyRecord {
	snap := make(map[string]model.DailyRecord, len(l.days))
	for date, rec := range l.days {
		cp := rec
		if rec.RawScore != nil {
			v := *rec.RawScore
			cp.RawScore = &v
		}
		if rec.ClaimCount != nil {
			v := *rec.ClaimCount
			cp.ClaimCount = &v
		}
		snap[date] = cp
	}
	return snap
}

// PruneAfter removes hypothetical entries dated strictly after cutoff.
// Called on day rollover to drop stale future edits; key order makes the
// comparison a plain string compare.
func (l *Ledger) PruneAfter(cutoff string) int {
	removed := 0
	for date := range l.days {
		if date > cutoff {
			delete(l.days, date)
			removed++
		}
	}
	return removed
}
