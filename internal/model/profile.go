package model

import "time"

// Profile describes one named user profile stored on disk.
// Each profile owns its own ledger and scoring settings.
type Profile struct {
	Name       string
	DailyScore int
	Threshold  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	EntryCount int
}

// DefaultProfileName is the profile that always exists and cannot be
// renamed or deleted.
const DefaultProfileName = "default"
