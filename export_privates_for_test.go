package alns

// Test-Bridge (White-Box) for the roulette wheel, the score update and
// fabricated run states.
//
// Purpose:
//   - Expose the unexported selection/score kernels to alns_test ONLY,
//     without widening the production API.
//   - Let acceptance-criterion tests probe exact (iteration, elapsed,
//     best, current, candidate) points of a run without driving a Solve
//     loop into that state.
//
// Provided Surface:
//   - RouletteDraw_TestOnly: one selectIndex draw over a given score vector.
//   - UpdateScore_TestOnly:  one EMA update on a single score.
//   - StatusAt_TestOnly:     a Status frozen at a chosen instant of a run.
//   - NewRand_TestOnly:      the engine's seed-to-generator mapping.
//   - EntropySeed_TestOnly:  the OS-entropy seed source.
//
// Behavior & Determinism:
//   - Thin pass-throughs; no side effects beyond the wrapped calls.

import (
	"math/rand"
	"time"
)

// RouletteDraw_TestOnly performs one roulette-wheel selection over scores
// using rng and returns the drawn index.
func RouletteDraw_TestOnly(scores []float64, rng *rand.Rand) int {
	var p scoredPool[struct{}]
	for range scores {
		p.register(struct{}{})
	}
	copy(p.scores, scores)

	return p.selectIndex(rng)
}

// UpdateScore_TestOnly applies one exponential-moving-average update to
// score and returns the result.
func UpdateScore_TestOnly(score, multiplier, decay float64) float64 {
	p := scoredPool[struct{}]{ops: []struct{}{{}}, scores: []float64{score}}
	p.updateScore(0, multiplier, decay)

	return p.scores[0]
}

// StatusAt_TestOnly fabricates a Status frozen at a given instant of a run:
// the triad holds independent copies of the three solutions and the
// counters read iteration/elapsed.
func StatusAt_TestOnly[S Solution[S]](best, current, candidate S, iteration int, elapsed time.Duration) *Status[S] {
	st := newStatus(best, newRand(defaultRNGSeed))
	st.current = current.Copy()
	st.candidate = candidate.Copy()
	st.iteration = iteration
	st.elapsed = elapsed

	return st
}

// NewRand_TestOnly returns the deterministic generator the engine builds
// for seed.
func NewRand_TestOnly(seed int64) *rand.Rand { return newRand(seed) }

// EntropySeed_TestOnly exposes the OS-entropy seed source.
func EntropySeed_TestOnly() int64 { return entropySeed() }
