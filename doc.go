// Package alns provides a problem-agnostic Adaptive Large Neighbourhood
// Search (ALNS) engine.
//
// ALNS is a local-search metaheuristic that improves an incumbent solution
// by repeatedly destroying part of it and repairing the damage, choosing
// among several destroy and repair operators with probability proportional
// to how well each operator performed so far.
//
// One iteration of Solve performs, in order:
//
//  1. Select one destroy and one repair operator by roulette-wheel draw
//     over the operator scores.
//  2. Copy the current solution into the candidate slot.
//  3. Apply the destroy operator, then the repair operator, to the candidate.
//  4. Ask the acceptance criterion whether the candidate may replace the
//     current solution.
//  5. If accepted: update the best solution when the candidate sets a new
//     record, reward both chosen operators, and promote the candidate to
//     current. If rejected: leave solutions and scores untouched.
//  6. Update the iteration counter and elapsed time, then invoke the
//     visitor. The visitor's boolean return is the engine's only stop
//     signal.
//
// Operator scores follow an exponential moving average. After an accepted
// iteration both chosen operators receive
//
//	score = score*ScoreDecay + (1-ScoreDecay)*multiplier
//
// where the multiplier depends on the outcome: NewBestMultiplier for a new
// record, NewImprovingMultiplier for a candidate better than current, and
// NewAcceptedMultiplier otherwise. Every operator starts at score 1.
//
// The engine is generic over the solution type. A solution only has to
// report its scalar cost (lower is better) and produce independent copies:
//
//	type Solution[S any] interface {
//	    Cost() float64
//	    Copy() S
//	}
//
// Contracts:
//
//	– Operators mutate the candidate in place and may assume exclusive access.
//	– The engine never inspects solution internals; Cost and Copy are the
//	  entire surface it relies on.
//	– A Solver is single-threaded: one Solve call at a time, no internal
//	  goroutines. Run independent Solver instances for parallel searches.
//	– Solve resumes: a second call continues from the reached state with
//	  iteration counter and scores intact (elapsed time restarts).
//	  Reset rewinds counters, scores and solutions but keeps the operators.
//
// Acceptance criteria shipped with the package:
//
//	– AcceptAll (default): every candidate replaces current.
//	– LinearRecordToRecordTravel: accept while the relative gap to the best
//	  solution stays under a threshold that decays linearly over an
//	  iteration or wall-clock budget.
//	– SimulatedAnnealing: Metropolis rule with geometric cooling.
//
// Termination is owned by the caller through the Visitor: combine
// StopAfterIterations, StopAfterDuration, StopWhenCancelled and your own
// VisitorFunc with ChainVisitors. The default visitor never stops, so a
// bounded run must install one.
//
// Determinism: all randomness flows through a single *rand.Rand owned by
// the run status. By default it is seeded from the operating system's
// entropy source; pass WithSeed (or WithRand) to New for reproducible runs.
//
// Errors (sentinel):
//
//	– ErrNoDestroyOperators / ErrNoRepairOperators if Solve starts with an
//	  empty operator pool.
//	– ErrNilOperator if a nil operator is registered.
//	– ErrBadScoreDecay / ErrBadMultiplier for invalid Params.
//	– ErrNilRand if WithRand is given a nil generator.
//	– ErrBadTemperature / ErrBadCooling for invalid annealing settings.
//
// No logging, no panics on user input - only sentinel errors. Panics raised
// inside operators, acceptance criteria or visitors propagate unchanged to
// the Solve caller.
//
// Example usage:
//
//	solver, err := alns.New(alns.DefaultParams(), initial, alns.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	if _, err = solver.RegisterDestroy(randomRemove); err != nil {
//	    return err
//	}
//	if _, err = solver.RegisterRepair(greedyInsert); err != nil {
//	    return err
//	}
//	solver.SetAcceptance(alns.NewLinearRecordToRecordTravel[Route]())
//	solver.SetVisitor(alns.StopAfterIterations[Route](10_000))
//	if err = solver.Solve(); err != nil {
//	    return err
//	}
//	best := solver.Status().Best()
package alns
