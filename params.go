package alns

// Default score-adaptation constants. They reward a new record an order of
// magnitude stronger than a merely accepted candidate, with improving
// candidates in between; decay 0.9 makes a score remember roughly the last
// ten rewarded iterations.
const (
	DefaultScoreDecay             = 0.9
	DefaultNewBestMultiplier      = 10.0
	DefaultNewImprovingMultiplier = 4.0
	DefaultNewAcceptedMultiplier  = 1.5
)

// Params groups the constants that govern operator-score adaptation.
//
// After every accepted iteration the two chosen operators are rewarded with
//
//	score = score*ScoreDecay + (1-ScoreDecay)*multiplier
//
// where the multiplier reflects the iteration outcome. Rejected iterations
// leave scores untouched.
//
// Fields:
//
//	– ScoreDecay             – smoothing factor of the moving average,
//	                           strictly between 0 and 1. Values close to 1
//	                           adapt slowly; values close to 0 chase the
//	                           latest outcome.
//	– NewBestMultiplier      – reward when the candidate sets a new best.
//	– NewImprovingMultiplier – reward when the candidate beats current but
//	                           not best.
//	– NewAcceptedMultiplier  – reward when the candidate was accepted
//	                           without improving on current.
//
// Multipliers must be positive. They are usually ordered
// NewBest > NewImproving > NewAccepted so that record-setting operators
// gain probability mass fastest, but the engine does not require it.
type Params struct {
	ScoreDecay             float64
	NewBestMultiplier      float64
	NewImprovingMultiplier float64
	NewAcceptedMultiplier  float64
}

// DefaultParams returns the reference parameter set:
// decay 0.9, multipliers 10 / 4 / 1.5.
func DefaultParams() Params {
	return Params{
		ScoreDecay:             DefaultScoreDecay,
		NewBestMultiplier:      DefaultNewBestMultiplier,
		NewImprovingMultiplier: DefaultNewImprovingMultiplier,
		NewAcceptedMultiplier:  DefaultNewAcceptedMultiplier,
	}
}

// Validate checks the parameter invariants.
// It returns ErrBadScoreDecay or ErrBadMultiplier on the first violation,
// nil otherwise. NaN fails both checks.
func (p Params) Validate() error {
	if !(p.ScoreDecay > 0 && p.ScoreDecay < 1) {
		return ErrBadScoreDecay
	}
	if !(p.NewBestMultiplier > 0) || !(p.NewImprovingMultiplier > 0) || !(p.NewAcceptedMultiplier > 0) {
		return ErrBadMultiplier
	}

	return nil
}
