package model

// OutcomeKind classifies the terminal state of a threshold search.
type OutcomeKind int

const (
	// OutcomeInvalidThreshold means the caller supplied a threshold <= 0.
	OutcomeInvalidThreshold OutcomeKind = iota
	// OutcomeAlreadySatisfied means the anchor-day window already meets
	// the target; no forward days were evaluated.
	OutcomeAlreadySatisfied
	// OutcomeFound means at least one day within the horizon qualifies.
	OutcomeFound
	// OutcomeUnreachable means no day within the horizon qualifies.
	OutcomeUnreachable
)

// String returns a short label for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeInvalidThreshold:
		return "invalid-threshold"
	case OutcomeAlreadySatisfied:
		return "already-satisfied"
	case OutcomeFound:
		return "found"
	case OutcomeUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// SearchResult is the single terminal result of one threshold search.
// Hits is populated only for OutcomeFound; Advice only for OutcomeUnreachable.
type SearchResult struct {
	Kind          OutcomeKind
	CurrentWindow int
	Hits          []PredictionHit
	Advice        []string
}
