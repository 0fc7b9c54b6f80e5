package rolling

// Documented fallback values. Callers that pass zero or negative settings
// get these instead of an error.
const (
	DefaultDailyScore     = 17
	DefaultThreshold      = 200
	DefaultClaimDeduction = 15
	DefaultWindowDays     = 15
	DefaultHorizonDays    = 100
)

// Params holds the scoring rules for one calculator. All fields are
// caller-supplied; non-positive values fall back to the documented
// defaults so a partially filled config still computes sensibly.
type Params struct {
	DefaultScore   int // points assumed for a day with no explicit raw score
	Threshold      int // rolling-window target for eligibility
	ClaimDeduction int // points deducted per claim made on a day
	WindowDays     int // size of the trailing window
	HorizonDays    int // forward search bound
}

// DefaultParams returns the standard rule set.
func DefaultParams() Params {
	return Params{
		DefaultScore:   DefaultDailyScore,
		Threshold:      DefaultThreshold,
		ClaimDeduction: DefaultClaimDeduction,
		WindowDays:     DefaultWindowDays,
		HorizonDays:    DefaultHorizonDays,
	}
}

// normalized returns a copy with non-positive fields replaced by defaults.
func (p Params) normalized() Params {
	if p.DefaultScore <= 0 {
		p.DefaultScore = DefaultDailyScore
	}
	if p.Threshold <= 0 {
		p.Threshold = DefaultThreshold
	}
	if p.ClaimDeduction <= 0 {
		p.ClaimDeduction = DefaultClaimDeduction
	}
	if p.WindowDays <= 0 {
		p.WindowDays = DefaultWindowDays
	}
	if p.HorizonDays <= 0 {
		p.HorizonDays = DefaultHorizonDays
	}
	return p
}
