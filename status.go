package alns

import (
	"math/rand"
	"time"
)

// Outcome classifies how the most recent iteration ended. Visitors read it
// through Status.LastOutcome, e.g. to tally acceptance statistics.
type Outcome int

const (
	// OutcomeNone means no iteration has completed yet (fresh or reset run).
	OutcomeNone Outcome = iota

	// OutcomeRejected means the acceptance criterion refused the candidate;
	// solutions and scores were left untouched.
	OutcomeRejected

	// OutcomeAccepted means the candidate replaced current without
	// improving on it.
	OutcomeAccepted

	// OutcomeImproving means the candidate beat current but not best.
	OutcomeImproving

	// OutcomeNewBest means the candidate set a new overall record.
	OutcomeNewBest
)

// Status carries the complete state of a search run: the solution triad,
// the operator pools with their scores, the iteration and time counters and
// the run's private random generator.
//
// The engine hands the same *Status to acceptance criteria and visitors on
// every iteration. Reads are always safe; writes through Best, Current and
// Candidate are the supported way for a visitor to inject side improvements
// (e.g. a local-search polish of the current solution).
//
// A Status is bound to one Solver and inherits its single-threaded
// discipline: never touch it from another goroutine while Solve runs.
type Status[S Solution[S]] struct {
	rng *rand.Rand

	iteration int
	elapsed   time.Duration

	destroy scoredPool[Destroyer[S]]
	repair  scoredPool[Repairer[S]]

	best      S
	current   S
	candidate S

	lastDestroy int
	lastRepair  int
	lastOutcome Outcome
}

// newStatus seeds the triad with independent copies of initial and marks
// the operator history as empty.
func newStatus[S Solution[S]](initial S, rng *rand.Rand) *Status[S] {
	return &Status[S]{
		rng:         rng,
		best:        initial.Copy(),
		current:     initial.Copy(),
		candidate:   initial.Copy(),
		lastDestroy: -1,
		lastRepair:  -1,
		lastOutcome: OutcomeNone,
	}
}

// Iteration returns the number of completed iterations across all Solve
// calls since construction or the last Reset.
func (st *Status[S]) Iteration() int { return st.iteration }

// Elapsed returns the wall-clock time spent in the current Solve call, as
// of the end of the last completed iteration. It restarts at zero on every
// Solve call.
func (st *Status[S]) Elapsed() time.Duration { return st.elapsed }

// Best returns a pointer to the best solution found so far.
func (st *Status[S]) Best() *S { return &st.best }

// Current returns a pointer to the solution the next iteration starts from.
func (st *Status[S]) Current() *S { return &st.current }

// Candidate returns a pointer to the most recent destroy+repair product,
// whether or not it was accepted.
func (st *Status[S]) Candidate() *S { return &st.candidate }

// BestCost is shorthand for the cost of the best solution.
func (st *Status[S]) BestCost() float64 { return st.best.Cost() }

// CurrentCost is shorthand for the cost of the current solution.
func (st *Status[S]) CurrentCost() float64 { return st.current.Cost() }

// CandidateCost is shorthand for the cost of the candidate solution.
func (st *Status[S]) CandidateCost() float64 { return st.candidate.Cost() }

// DestroyScores returns an independent copy of the destroy-operator scores,
// indexed by registration order.
func (st *Status[S]) DestroyScores() []float64 { return st.destroy.snapshot() }

// RepairScores returns an independent copy of the repair-operator scores,
// indexed by registration order.
func (st *Status[S]) RepairScores() []float64 { return st.repair.snapshot() }

// LastDestroy returns the registration index of the destroy operator used
// in the last iteration, or -1 if none ran yet.
func (st *Status[S]) LastDestroy() int { return st.lastDestroy }

// LastRepair returns the registration index of the repair operator used in
// the last iteration, or -1 if none ran yet.
func (st *Status[S]) LastRepair() int { return st.lastRepair }

// LastOutcome returns how the last completed iteration ended.
func (st *Status[S]) LastOutcome() Outcome { return st.lastOutcome }

// selectDestroy draws the destroy operator for this iteration and records
// its index.
func (st *Status[S]) selectDestroy() Destroyer[S] {
	st.lastDestroy = st.destroy.selectIndex(st.rng)

	return st.destroy.at(st.lastDestroy)
}

// selectRepair draws the repair operator for this iteration and records
// its index.
func (st *Status[S]) selectRepair() Repairer[S] {
	st.lastRepair = st.repair.selectIndex(st.rng)

	return st.repair.at(st.lastRepair)
}

// updateScores rewards the operator pair chosen this iteration. Called only
// after an accepted candidate.
func (st *Status[S]) updateScores(multiplier, decay float64) {
	st.destroy.updateScore(st.lastDestroy, multiplier, decay)
	st.repair.updateScore(st.lastRepair, multiplier, decay)
}

// reset rewinds counters, scores, outcome and the solution triad for a
// fresh run. Registered operators and the random generator stay in place,
// so a reset run remains reproducible under the original seed policy.
func (st *Status[S]) reset(initial S) {
	st.iteration = 0
	st.elapsed = 0
	st.best = initial.Copy()
	st.current = initial.Copy()
	st.candidate = initial.Copy()
	st.destroy.resetScores()
	st.repair.resetScores()
	st.lastDestroy = -1
	st.lastRepair = -1
	st.lastOutcome = OutcomeNone
}
