package alns

import "time"

// Solver drives the adaptive large neighbourhood search. Build one with New,
// register at least one destroy and one repair operator, install a visitor
// that eventually stops the run, then call Solve.
//
// A Solver is single-threaded: no internal goroutines, no locks, at most one
// Solve call at a time. Solve can be called again after it returns and
// resumes from the reached state; Reset rewinds to a fresh initial solution
// while keeping the registered operators.
type Solver[S Solution[S]] struct {
	params     Params
	acceptance Acceptance[S]
	visitor    Visitor[S]
	status     *Status[S]
}

// New creates a Solver whose best, current and candidate slots all start as
// independent copies of initial.
//
// Defaults: AcceptAll acceptance, a never-stopping visitor, and a generator
// seeded from OS entropy. Pass WithSeed or WithRand for reproducible runs.
//
// Errors: ErrBadScoreDecay or ErrBadMultiplier for invalid params,
// ErrNilRand for WithRand(nil).
func New[S Solution[S]](params Params, initial S, opts ...Option) (*Solver[S], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var cfg rngConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	rng, err := cfg.build()
	if err != nil {
		return nil, err
	}

	return &Solver[S]{
		params:     params,
		acceptance: AcceptAll[S]{},
		visitor:    neverStop[S]{},
		status:     newStatus(initial, rng),
	}, nil
}

// RegisterDestroy adds a destroy operator to the pool with the initial score
// and returns its stable index (the position of its score in DestroyScores
// and the value reported by LastDestroy).
// Returns ErrNilOperator for a nil operator.
func (s *Solver[S]) RegisterDestroy(op Destroyer[S]) (int, error) {
	if op == nil {
		return 0, ErrNilOperator
	}

	return s.status.destroy.register(op), nil
}

// RegisterRepair adds a repair operator to the pool with the initial score
// and returns its stable index.
// Returns ErrNilOperator for a nil operator.
func (s *Solver[S]) RegisterRepair(op Repairer[S]) (int, error) {
	if op == nil {
		return 0, ErrNilOperator
	}

	return s.status.repair.register(op), nil
}

// SetAcceptance replaces the acceptance criterion. Passing nil restores the
// default AcceptAll. Takes effect from the next iteration, so it may be
// called between Solve calls or from a visitor.
func (s *Solver[S]) SetAcceptance(a Acceptance[S]) {
	if a == nil {
		s.acceptance = AcceptAll[S]{}

		return
	}
	s.acceptance = a
}

// SetVisitor replaces the visitor invoked at the end of every iteration.
// Passing nil restores the default visitor, which never stops the run.
func (s *Solver[S]) SetVisitor(v Visitor[S]) {
	if v == nil {
		s.visitor = neverStop[S]{}

		return
	}
	s.visitor = v
}

// Params returns the score-adaptation parameters currently in effect.
func (s *Solver[S]) Params() Params { return s.params }

// SetParams replaces the score-adaptation parameters, e.g. to switch the
// reward profile between Solve calls. Existing scores are not rescaled.
// Returns ErrBadScoreDecay or ErrBadMultiplier and leaves the previous
// parameters in place if p is invalid.
func (s *Solver[S]) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.params = p

	return nil
}

// Status exposes the live run state. The pointer stays valid and identical
// across Solve, Reset and registration calls; read it between runs or from
// a visitor, not from other goroutines while Solve runs.
func (s *Solver[S]) Status() *Status[S] { return s.status }

// Reset rewinds the solver to a fresh run seeded with initial: iteration
// and elapsed counters to zero, all operator scores to their initial value,
// best/current/candidate to copies of initial. Registered operators, the
// acceptance criterion, the visitor and the random generator are kept.
func (s *Solver[S]) Reset(initial S) {
	s.status.reset(initial)
}

// Solve runs destroy/repair iterations until the visitor stops the run.
//
// Each iteration selects one destroy and one repair operator by roulette
// wheel, rebuilds the candidate from current, applies destroy then repair,
// consults the acceptance criterion, adapts scores on acceptance, updates
// the counters and finally invokes the visitor. The visitor's return value
// is the only stop signal; with the default visitor Solve never returns.
//
// The loop body always runs at least once per call. Calling Solve again
// resumes: the iteration counter and scores continue, elapsed restarts.
//
// Errors: ErrNoDestroyOperators or ErrNoRepairOperators if the respective
// pool is empty; both are checked before any solution is touched. Panics
// from operators, the acceptance criterion or the visitor propagate
// unchanged.
func (s *Solver[S]) Solve() error {
	st := s.status
	if st.destroy.size() == 0 {
		return ErrNoDestroyOperators
	}
	if st.repair.size() == 0 {
		return ErrNoRepairOperators
	}

	var start time.Time
	start = time.Now()

	for {
		destroy := st.selectDestroy()
		repair := st.selectRepair()

		// The candidate is always rebuilt from current, never recycled,
		// so a rejected candidate leaves no trace on the next iteration.
		st.candidate = st.current.Copy()
		destroy.Destroy(&st.candidate)
		repair.Repair(&st.candidate)

		if s.acceptance.Accept(st) {
			s.acceptCandidate(st)
		} else {
			st.lastOutcome = OutcomeRejected
		}

		// Counters advance before the visitor runs: a visitor observing
		// Iteration()==n has seen exactly n completed iterations.
		st.elapsed = time.Since(start)
		st.iteration++

		if !s.visitor.OnIteration(st) {
			return nil
		}
	}
}

// acceptCandidate classifies the accepted candidate against current and
// best, rewards the chosen operator pair accordingly and promotes the
// candidate to current (and to best on a new record).
//
// The comparison nests current-first: a candidate only competes for the
// record once it improves on current. This matters when a visitor has
// polished current below best through the Status pointers.
func (s *Solver[S]) acceptCandidate(st *Status[S]) {
	var candidateCost float64
	candidateCost = st.candidate.Cost()

	if candidateCost < st.current.Cost() {
		if candidateCost < st.best.Cost() {
			st.best = st.candidate.Copy()
			st.lastOutcome = OutcomeNewBest
			st.updateScores(s.params.NewBestMultiplier, s.params.ScoreDecay)
		} else {
			st.lastOutcome = OutcomeImproving
			st.updateScores(s.params.NewImprovingMultiplier, s.params.ScoreDecay)
		}
	} else {
		st.lastOutcome = OutcomeAccepted
		st.updateScores(s.params.NewAcceptedMultiplier, s.params.ScoreDecay)
	}

	st.current = st.candidate.Copy()
}
