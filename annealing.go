package alns

import (
	"math"
	"math/rand"
)

// SimulatedAnnealing is a Metropolis acceptance criterion with geometric
// cooling. An improving or equal candidate is always accepted; a worsening
// one is accepted with probability
//
//	exp(-(candidate-current)/temperature)
//
// and the temperature is multiplied by the cooling rate after every
// decision, improving or not. Cooling 1 keeps the temperature constant.
//
// Worse-candidate draws come from the criterion's own generator, so an
// annealer and a solver given distinct seeds form two independent streams.
// The criterion is stateful: reuse across runs continues cooling from the
// reached temperature. Construct a fresh one per run for identical
// schedules.
type SimulatedAnnealing[S Solution[S]] struct {
	temperature float64
	cooling     float64
	rng         *rand.Rand
}

// NewSimulatedAnnealing returns a Metropolis criterion starting at
// initialTemp with the given geometric cooling rate.
//
// initialTemp must be positive and cooling must lie in (0,1]; otherwise
// ErrBadTemperature or ErrBadCooling is returned. The generator defaults to
// OS entropy; pass WithSeed or WithRand for reproducible decisions
// (ErrNilRand for WithRand(nil)).
func NewSimulatedAnnealing[S Solution[S]](initialTemp, cooling float64, opts ...Option) (*SimulatedAnnealing[S], error) {
	if !(initialTemp > 0) {
		return nil, ErrBadTemperature
	}
	if !(cooling > 0 && cooling <= 1) {
		return nil, ErrBadCooling
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

	return &SimulatedAnnealing[S]{
		temperature: initialTemp,
		cooling:     cooling,
		rng:         rng,
	}, nil
}

// Accept applies the Metropolis rule against the current solution and then
// cools the temperature.
func (a *SimulatedAnnealing[S]) Accept(st *Status[S]) bool {
	var delta float64
	delta = st.candidate.Cost() - st.current.Cost()

	// The generator is consumed only when the candidate worsens current.
	accept := delta <= 0 || a.rng.Float64() < math.Exp(-delta/a.temperature)
	a.temperature *= a.cooling

	return accept
}

// Temperature returns the current temperature. It shrinks by the cooling
// factor on every Accept call and stays positive.
func (a *SimulatedAnnealing[S]) Temperature() float64 { return a.temperature }
