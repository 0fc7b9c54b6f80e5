// Package rolling computes accounted scores, trailing-window sums, and
// forward threshold predictions over a daily ledger.
package rolling

import (
	"github.com/theirongolddev/alphawin/internal/ledger"
	"github.com/theirongolddev/alphawin/internal/model"
)

// Calculator owns one ledger and one rule set. Construct one per profile;
// instances share nothing. All methods are synchronous and side-effect
// free except SetDay, which the calculator forwards to its ledger.
type Calculator struct {
	ledger *ledger.Ledger
	params Params
}

// New returns a calculator over the given ledger. A nil ledger gets an
// empty one.
func New(l *ledger.Ledger, p Params) *Calculator {
	if l == nil {
		l = ledger.New()
	}
	return &Calculator{ledger: l, params: p.normalized()}
}

// Ledger exposes the underlying ledger for persistence round-tripping.
func (c *Calculator) Ledger() *ledger.Ledger {
	return c.ledger
}

// Params returns the normalized rule set in effect.
func (c *Calculator) Params() Params {
	return c.params
}

// SetDay forwards an edit to the ledger. Malformed values become 0.
func (c *Calculator) SetDay(date, field, value string) {
	c.ledger.SetDay(date, field, value)
}

// AccountedScore returns a day's raw score minus the per-claim deduction.
// Absent days resolve to the default score with zero claims; the day's
// position relative to today is irrelevant.
func (c *Calculator) AccountedScore(date string) int {
	raw := c.ledger.EffectiveRaw(date, c.params.DefaultScore)
	claims := c.ledger.EffectiveClaim(date)
	return raw - c.params.ClaimDeduction*claims
}

// WindowSum returns the sum of accounted scores over the WindowDays
// calendar days strictly before date. The full window is recomputed from
// the ledger on every call; with a 15-day window over a small map that is
// cheaper than keeping an incremental total correct across edits.
func (c *Calculator) WindowSum(date string) int {
	sum := 0
	day := ledger.AddDays(date, -c.params.WindowDays)
	for i := 0; i < c.params.WindowDays; i++ {
		sum += c.AccountedScore(day)
		day = ledger.AddDays(day, 1)
	}
	return sum
}

// row builds one table row for a date.
func (c *Calculator) row(date string) model.DayRow {
	rec, ok := c.ledger.Get(date)
	return model.DayRow{
		Date:           date,
		RawScore:       c.ledger.EffectiveRaw(date, c.params.DefaultScore),
		ClaimCount:     c.ledger.EffectiveClaim(date),
		AccountedScore: c.AccountedScore(date),
		WindowSum:      c.WindowSum(date),
		Explicit:       ok && rec.HasData(),
	}
}

// HistoryTable returns rows for the WindowDays days ending the day before
// anchor, oldest first. These are the days that make up anchor's window.
func (c *Calculator) HistoryTable(anchor string) []model.DayRow {
	rows := make([]model.DayRow, 0, c.params.WindowDays)
	day := ledger.AddDays(anchor, -c.params.WindowDays)
	for i := 0; i < c.params.WindowDays; i++ {
		rows = append(rows, c.row(day))
		day = ledger.AddDays(day, 1)
	}
	return rows
}

// ForwardTable returns rows for anchor through anchor+days-1. Each row's
// WindowSum is the trailing sum ending the day before that row, so the
// anchor row shows the window as of "today" and later rows show how edits
// to hypothetical days would shift eligibility. days <= 0 uses WindowDays.
func (c *Calculator) ForwardTable(anchor string, days int) []model.DayRow {
	if days <= 0 {
		days = c.params.WindowDays
	}
	rows := make([]model.DayRow, 0, days)
	day := anchor
	for i := 0; i < days; i++ {
		rows = append(rows, c.row(day))
		day = ledger.AddDays(day, 1)
	}
	return rows
}
