// Package model defines domain types for alphawin ledgers and predictions.
package model

// DailyRecord holds the user-entered values for one calendar day.
// A nil field means "not set": RawScore falls back to the configured
// default daily score, ClaimCount falls back to zero.
type DailyRecord struct {
	RawScore   *int `json:"raw,omitempty"`
	ClaimCount *int `json:"claim,omitempty"`
}

// HasData reports whether the record carries at least one explicit value.
func (r DailyRecord) HasData() bool {
	return r.RawScore != nil || r.ClaimCount != nil
}

// DayRow is one rendered row of a history or forward table.
type DayRow struct {
	Date           string
	RawScore       int
	ClaimCount     int
	AccountedScore int
	WindowSum      int
	Explicit       bool // true if the ledger has an entry for this day
}

// PredictionHit marks one future day whose rolling window meets the target.
type PredictionHit struct {
	Date      string
	Score     int
	DayOffset int // days strictly after the anchor date, >= 1
}
