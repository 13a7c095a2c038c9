// Package alns - core contracts and sentinel errors shared by the engine.
//
// Solution is the only contract a problem has to satisfy; everything else
// (operators, acceptance, visitors) is expressed in terms of it.
package alns

import "errors"

// Solution is the constraint every problem-specific solution type must meet.
//
// The engine treats solutions as opaque values: it never reads fields,
// never compares identity, and relies exclusively on Cost and Copy.
//
// Contracts:
//
//	– Cost returns the scalar objective value; the engine minimises, so a
//	  lower cost is a better solution. It must be cheap: Solve calls it
//	  several times per iteration. Cache it inside the type if computing
//	  it is expensive.
//	– Copy returns a fully independent copy. Mutating the copy (or the
//	  original) must never affect the other; deep-copy any slices, maps or
//	  pointers the type holds. The engine's best/current/candidate slots
//	  are only isolated from each other if Copy honours this.
type Solution[S any] interface {
	Cost() float64
	Copy() S
}

// Sentinel errors returned by the engine. Test with errors.Is.
var (
	// ErrNoDestroyOperators indicates that Solve was called before any
	// destroy operator was registered.
	ErrNoDestroyOperators = errors.New("alns: no destroy operators registered")

	// ErrNoRepairOperators indicates that Solve was called before any
	// repair operator was registered.
	ErrNoRepairOperators = errors.New("alns: no repair operators registered")

	// ErrNilOperator indicates that a nil operator was passed to
	// RegisterDestroy or RegisterRepair.
	ErrNilOperator = errors.New("alns: operator must not be nil")

	// ErrBadScoreDecay indicates a ScoreDecay outside the open interval
	// (0,1); the score moving average is unstable outside that range.
	ErrBadScoreDecay = errors.New("alns: ScoreDecay must be strictly between 0 and 1")

	// ErrBadMultiplier indicates a zero, negative or NaN score multiplier.
	ErrBadMultiplier = errors.New("alns: score multipliers must be positive")

	// ErrNilRand indicates that WithRand was given a nil generator.
	ErrNilRand = errors.New("alns: random generator must not be nil")

	// ErrBadTemperature indicates a non-positive (or NaN) initial
	// temperature passed to NewSimulatedAnnealing.
	ErrBadTemperature = errors.New("alns: initial temperature must be positive")

	// ErrBadCooling indicates a cooling rate outside the half-open
	// interval (0,1] passed to NewSimulatedAnnealing.
	ErrBadCooling = errors.New("alns: cooling rate must be in (0,1]")
)
