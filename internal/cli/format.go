// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"time"
)

// FormatScore renders a point total with an explicit sign for negatives
// kept by strconv; positive values carry no sign.
func FormatScore(n int) string {
	return strconv.Itoa(n)
}

// FormatSigned renders a point delta with a leading + for non-negatives.
func FormatSigned(n int) string {
	if n >= 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// FormatDayOfWeek returns a 3-letter day abbreviation.
func FormatDayOfWeek(d time.Weekday) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if d >= 0 && int(d) < 7 {
		return days[d]
	}
	return "???"
}

// FormatRelativeDay labels a day offset from today: "today", "tomorrow",
// or "in N days".
func FormatRelativeDay(offset int) string {
	switch {
	case offset == 0:
		return "today"
	case offset == 1:
		return "tomorrow"
	case offset > 1:
		return fmt.Sprintf("in %d days", offset)
	case offset == -1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", -offset)
	}
}

// FormatCount adds comma separators to an integer count.
func FormatCount(n int) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	out := ""
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	return out
}
