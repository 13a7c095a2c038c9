// Package alns_test - shared fixtures for the engine tests.
//
// Two solution types cover the contract surface:
//   - price: a bare scalar; Copy is the value itself. The cheapest possible
//     Solution, used wherever only costs matter.
//   - route: carries a slice, so Copy must deep-copy. Used to verify that
//     the engine's best/current/candidate slots never alias.
//
// Operator helpers build deterministic DestroyFunc/RepairFunc values whose
// effect on the cost is known in advance, so test outcomes do not depend on
// the random operator selection (single-operator pools) or on operator
// internals.
package alns_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alns"
)

// price is a minimal solution: the cost is the stored value.
type price struct {
	value float64
}

func (p price) Cost() float64 { return p.value }

func (p price) Copy() price { return p }

// route is a slice-backed solution; Copy deep-copies the stops.
type route struct {
	stops  []int
	length float64
}

func (r route) Cost() float64 { return r.length }

func (r route) Copy() route {
	return route{stops: append([]int(nil), r.stops...), length: r.length}
}

// destroyAdd returns a destroy operator shifting the price by delta.
func destroyAdd(delta float64) alns.DestroyFunc[price] {
	return func(p *price) { p.value += delta }
}

// repairAdd returns a repair operator shifting the price by delta.
func repairAdd(delta float64) alns.RepairFunc[price] {
	return func(p *price) { p.value += delta }
}

// newPriceSolver builds a solver over price with default params and a fixed
// seed, failing the test on construction errors.
func newPriceSolver(t *testing.T, initial float64, opts ...alns.Option) *alns.Solver[price] {
	t.Helper()

	if len(opts) == 0 {
		opts = []alns.Option{alns.WithSeed(1)}
	}
	s, err := alns.New(alns.DefaultParams(), price{value: initial}, opts...)
	require.NoError(t, err)

	return s
}

// registerUnitOps registers one destroy (+2) and one repair (-3) operator,
// a pair that improves the price by exactly 1 per iteration.
func registerUnitOps(t *testing.T, s *alns.Solver[price]) {
	t.Helper()

	_, err := s.RegisterDestroy(destroyAdd(+2))
	require.NoError(t, err)
	_, err = s.RegisterRepair(repairAdd(-3))
	require.NoError(t, err)
}
