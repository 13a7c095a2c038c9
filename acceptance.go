// Package alns - acceptance criteria.
//
// An acceptance criterion decides, once per iteration, whether the freshly
// repaired candidate may replace the current solution. It runs before any
// solution or score is touched, so it sees the state exactly as the end of
// the previous iteration left it.
package alns

import "time"

// Acceptance decides whether the candidate replaces the current solution.
//
// Accept is consulted once per iteration with the live run status
// (candidate already rebuilt, counters still at the previous iteration).
// Implementations may keep internal state across calls, like the cooling
// temperature of SimulatedAnnealing; such criteria are as single-threaded
// as the Solver that owns them.
type Acceptance[S Solution[S]] interface {
	Accept(st *Status[S]) bool
}

// AcceptanceFunc adapts a plain function to the Acceptance interface.
type AcceptanceFunc[S Solution[S]] func(st *Status[S]) bool

// Accept calls f(st).
func (f AcceptanceFunc[S]) Accept(st *Status[S]) bool { return f(st) }

// AcceptAll accepts every candidate. It is the Solver's default criterion
// and turns the engine into a pure random walk steered only by the
// operators themselves.
type AcceptAll[S Solution[S]] struct{}

// Accept always reports true.
func (AcceptAll[S]) Accept(*Status[S]) bool { return true }

// TerminationCriterion selects which budget drives the linear threshold
// decay of LinearRecordToRecordTravel.
type TerminationCriterion int

const (
	// ByIterations decays the threshold over IterationsLimit iterations.
	ByIterations TerminationCriterion = iota

	// ByTime decays the threshold over TimeLimit of wall-clock time.
	ByTime
)

// Defaults for LinearRecordToRecordTravel.
const (
	DefaultIterationsLimit = 1_000_000
	DefaultTimeLimit       = time.Hour
	DefaultStartThreshold  = 0.1
	DefaultEndThreshold    = 0.0
)

// LinearRecordToRecordTravel accepts a candidate while its relative gap to
// the best solution (the record) stays within a threshold that decays
// linearly from StartThreshold to EndThreshold over the configured budget:
//
//	threshold(progress) = StartThreshold + (EndThreshold-StartThreshold)*progress
//	accept              ⇔ (candidate-best)/candidate <= threshold
//
// where progress is Iteration/IterationsLimit or Elapsed/TimeLimit,
// clamped to [0,1]. Early on the search roams (any candidate within
// StartThreshold of the record passes); as the budget runs out it tightens
// toward EndThreshold. The usual configuration ends at 0, where only
// candidates at least matching the record remain acceptable.
//
// The relative gap divides by the candidate cost. When that cost is zero or
// negative the division would flip or explode the sign, so the criterion
// falls back to the absolute gap candidate-best for such candidates.
//
// Fields may be set directly; NewLinearRecordToRecordTravel fills in the
// defaults (ByIterations, 1e6 iterations, 1h, 0.1 → 0.0). A non-positive
// limit for the selected budget is treated as an exhausted budget
// (threshold pinned at EndThreshold). Note that the threshold never decays
// during a run whose visitor, not the budget, is the real stop condition
// unless the limits here roughly match the visitor's.
type LinearRecordToRecordTravel[S Solution[S]] struct {
	// Criterion picks the budget that drives the decay.
	Criterion TerminationCriterion

	// IterationsLimit is the iteration budget used by ByIterations.
	IterationsLimit int

	// TimeLimit is the wall-clock budget used by ByTime.
	TimeLimit time.Duration

	// StartThreshold is the accepted relative gap at the start of the run.
	StartThreshold float64

	// EndThreshold is the accepted relative gap once the budget is spent.
	EndThreshold float64
}

// NewLinearRecordToRecordTravel returns the criterion with the reference
// defaults: iteration budget of one million, threshold 0.1 decaying to 0.
func NewLinearRecordToRecordTravel[S Solution[S]]() *LinearRecordToRecordTravel[S] {
	return &LinearRecordToRecordTravel[S]{
		Criterion:       ByIterations,
		IterationsLimit: DefaultIterationsLimit,
		TimeLimit:       DefaultTimeLimit,
		StartThreshold:  DefaultStartThreshold,
		EndThreshold:    DefaultEndThreshold,
	}
}

// Accept reports whether the candidate's gap to the record is within the
// current threshold.
func (a *LinearRecordToRecordTravel[S]) Accept(st *Status[S]) bool {
	var candidate, gap float64
	candidate = st.candidate.Cost()
	gap = candidate - st.best.Cost()
	if candidate > 0 {
		gap /= candidate
	}

	return gap <= a.threshold(st)
}

// threshold interpolates between StartThreshold and EndThreshold according
// to the consumed share of the configured budget.
func (a *LinearRecordToRecordTravel[S]) threshold(st *Status[S]) float64 {
	var progress float64
	switch a.Criterion {
	case ByTime:
		if a.TimeLimit > 0 {
			progress = float64(st.elapsed) / float64(a.TimeLimit)
		} else {
			progress = 1
		}
	default:
		if a.IterationsLimit > 0 {
			progress = float64(st.iteration) / float64(a.IterationsLimit)
		} else {
			progress = 1
		}
	}
	if progress > 1 {
		progress = 1
	}

	return a.StartThreshold + (a.EndThreshold-a.StartThreshold)*progress
}
