package ledger

import "time"

// dateLayout is the canonical key format. Lexicographic order on keys in
// this layout matches chronological order, which the store and the table
// builders rely on.
const dateLayout = "2006-01-02"

// FormatDate renders a time as a canonical YYYY-MM-DD key.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses a canonical date key in the local time zone.
func ParseDate(key string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, key, time.Local)
}

// Today returns the current local date as a key.
func Today() string {
	return FormatDate(time.Now())
}

// AddDays returns the key n calendar days after (or before, for negative n)
// the given key. Invalid keys are returned unchanged so that a malformed
// date surfaces in output rather than silently shifting the window.
func AddDays(key string, n int) string {
	t, err := ParseDate(key)
	if err != nil {
		return key
	}
	return FormatDate(t.AddDate(0, 0, n))
}

// Weekday returns the weekday of a date key, defaulting to Sunday for
// malformed keys.
func Weekday(key string) time.Weekday {
	t, err := ParseDate(key)
	if err != nil {
		return time.Sunday
	}
	return t.Weekday()
}
