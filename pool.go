package alns

import "math/rand"

// initialScore is the score every operator starts with (and returns to on
// reset). With all scores equal the first roulette draws are uniform.
const initialScore = 1.0

// scoredPool pairs registered operators with their adaptive scores.
//
// Invariants:
//
//	– len(ops) == len(scores) at all times.
//	– Indices are stable: an operator keeps its registration index for the
//	  pool's lifetime; reset touches scores only.
//	– Scores stay positive as long as updates use a decay in (0,1) and
//	  positive multipliers (enforced by Params.Validate).
type scoredPool[O any] struct {
	ops    []O
	scores []float64
}

// register appends op with the initial score and returns its stable index.
func (p *scoredPool[O]) register(op O) int {
	p.ops = append(p.ops, op)
	p.scores = append(p.scores, initialScore)

	return len(p.ops) - 1
}

// selectIndex draws an operator index with probability proportional to its
// score: u is uniform in [0, sum(scores)) and the first index whose running
// cumulative sum reaches u wins. The final index absorbs any floating-point
// shortfall in the accumulation.
//
// The pool must be non-empty; Solve guards this with its preconditions.
//
// Complexity: O(n) per draw.
func (p *scoredPool[O]) selectIndex(rng *rand.Rand) int {
	var total float64
	for _, s := range p.scores {
		total += s
	}

	var (
		u   float64
		acc float64
	)
	u = rng.Float64() * total
	for i, s := range p.scores {
		acc += s
		if u <= acc {
			return i
		}
	}

	return len(p.scores) - 1
}

// updateScore folds a reward multiplier into the score at index i using an
// exponential moving average with the given decay.
func (p *scoredPool[O]) updateScore(i int, multiplier, decay float64) {
	p.scores[i] = p.scores[i]*decay + (1-decay)*multiplier
}

// resetScores returns every score to initialScore, keeping the operators.
func (p *scoredPool[O]) resetScores() {
	for i := range p.scores {
		p.scores[i] = initialScore
	}
}

// snapshot returns an independent copy of the score vector.
func (p *scoredPool[O]) snapshot() []float64 {
	return append([]float64(nil), p.scores...)
}

// size reports the number of registered operators.
func (p *scoredPool[O]) size() int { return len(p.ops) }

// at returns the operator registered at index i.
func (p *scoredPool[O]) at(i int) O { return p.ops[i] }
