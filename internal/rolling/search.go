package rolling

import (
	"fmt"

	"github.com/theirongolddev/alphawin/internal/ledger"
	"github.com/theirongolddev/alphawin/internal/model"
)

// FindCrossings scans the days after anchor and collects every one whose
// trailing window meets or exceeds threshold. The rolling sum is not
// monotonic (a heavy claim day pushes it back down), so all hits within
// the horizon are returned, not just the first.
//
// Terminal states, in check order:
//   - threshold <= 0: invalid input, nothing scanned
//   - anchor window already >= threshold: already satisfied, nothing scanned
//   - one or more hits in (anchor, anchor+maxDays]: found
//   - otherwise: unreachable within the horizon, with advice attached
//
// maxDays <= 0 falls back to the calculator's HorizonDays.
func (c *Calculator) FindCrossings(anchor string, threshold, maxDays int) model.SearchResult {
	if threshold <= 0 {
		return model.SearchResult{Kind: model.OutcomeInvalidThreshold}
	}
	if maxDays <= 0 {
		maxDays = c.params.HorizonDays
	}

	current := c.WindowSum(anchor)
	if current >= threshold {
		return model.SearchResult{
			Kind:          model.OutcomeAlreadySatisfied,
			CurrentWindow: current,
		}
	}

	var hits []model.PredictionHit
	day := anchor
	for offset := 1; offset <= maxDays; offset++ {
		day = ledger.AddDays(day, 1)
		sum := c.WindowSum(day)
		if sum >= threshold {
			hits = append(hits, model.PredictionHit{
				Date:      day,
				Score:     sum,
				DayOffset: offset,
			})
		}
	}

	if len(hits) == 0 {
		return model.SearchResult{
			Kind:          model.OutcomeUnreachable,
			CurrentWindow: current,
			Advice:        c.unreachableAdvice(threshold, maxDays),
		}
	}

	return model.SearchResult{
		Kind:          model.OutcomeFound,
		CurrentWindow: current,
		Hits:          hits,
	}
}

// unreachableAdvice explains why the target cannot be reached and what
// would move it. With no claims, a full window tops out at
// WindowDays * DefaultScore, so the ceiling is easy to state.
func (c *Calculator) unreachableAdvice(threshold, maxDays int) []string {
	advice := []string{
		fmt.Sprintf("target %d not reachable within %d days", threshold, maxDays),
	}
	ceiling := c.params.WindowDays * c.params.DefaultScore
	if threshold > ceiling {
		advice = append(advice, fmt.Sprintf(
			"at %d points/day the window tops out at %d; raise the daily score",
			c.params.DefaultScore, ceiling))
	} else {
		advice = append(advice, "raise the daily score or reduce claims to recover faster")
	}
	return advice
}
