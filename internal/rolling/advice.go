package rolling

import (
	"fmt"

	"github.com/theirongolddev/alphawin/internal/ledger"
)

// Eligible reports whether the anchor-day window meets the threshold.
func (c *Calculator) Eligible(anchor string) bool {
	return c.WindowSum(anchor) >= c.params.Threshold
}

// MaxClaimable returns how many claims could be made on anchor day while
// keeping the window at or above the threshold: each claim costs
// ClaimDeduction, and the first claim is allowed at exactly the threshold.
func (c *Calculator) MaxClaimable(anchor string) int {
	window := c.WindowSum(anchor)
	if window < c.params.Threshold {
		return 0
	}
	return (window-c.params.Threshold)/c.params.ClaimDeduction + 1
}

// Advise produces strategy suggestions for the anchor day: points still
// needed, pace to reach the target, claim headroom, and a warning when
// tomorrow's window would drop below the threshold.
func (c *Calculator) Advise(anchor string) []string {
	var out []string

	window := c.WindowSum(anchor)
	threshold := c.params.Threshold
	todayScore := c.AccountedScore(anchor)
	todayClaims := c.ledger.EffectiveClaim(anchor)

	if window < threshold {
		needed := threshold - window
		out = append(out, fmt.Sprintf("not yet eligible: %d more points needed", needed))
		rate := c.ledger.EffectiveRaw(anchor, c.params.DefaultScore)
		if rate > 0 {
			days := (needed + rate - 1) / rate
			out = append(out, fmt.Sprintf("about %d day(s) at %d points/day", days, rate))
		}
	} else {
		if todayClaims == 0 {
			out = append(out, "eligible to claim today")
		} else {
			out = append(out, fmt.Sprintf("%d claim(s) recorded today", todayClaims))
		}
		if max := c.MaxClaimable(anchor); max > todayClaims {
			out = append(out, fmt.Sprintf("up to %d claim(s) possible today", max))
		}
		// Tomorrow's window gains today's score and loses the day that
		// rolls off the back.
		tomorrow := ledger.AddDays(anchor, 1)
		if c.WindowSum(tomorrow) < threshold {
			out = append(out, "warning: tomorrow's window drops below the target")
		}
	}

	if todayScore < 0 {
		out = append(out, fmt.Sprintf("today's accounted score is negative (%d)", todayScore))
	}

	return out
}
