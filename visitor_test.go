package alns_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/alns"
)

func TestStopAfterIterations_Exact(t *testing.T) {
	s := newPriceSolver(t, 100)
	registerUnitOps(t, s)
	s.SetVisitor(alns.StopAfterIterations[price](5))

	require.NoError(t, s.Solve())
	assert.Equal(t, 5, s.Status().Iteration())
}

// TestStopAfterIterations_NonPositive: the loop body runs before the
// visitor, so even n<1 admits one iteration.
func TestStopAfterIterations_NonPositive(t *testing.T) {
	s := newPriceSolver(t, 100)
	registerUnitOps(t, s)
	s.SetVisitor(alns.StopAfterIterations[price](0))

	require.NoError(t, s.Solve())
	assert.Equal(t, 1, s.Status().Iteration())
}

func TestStopAfterDuration_ZeroStopsAfterFirstIteration(t *testing.T) {
	s := newPriceSolver(t, 100)
	registerUnitOps(t, s)
	s.SetVisitor(alns.StopAfterDuration[price](0))

	require.NoError(t, s.Solve())
	assert.Equal(t, 1, s.Status().Iteration())
}

// TestStopAfterDuration_ElapsedRestartsPerSolve: the first run must spend
// its wall-clock budget; a second, one-iteration run restarts the clock and
// finishes far inside it.
func TestStopAfterDuration_ElapsedRestartsPerSolve(t *testing.T) {
	const budget = 100 * time.Millisecond

	s := newPriceSolver(t, 100)
	registerUnitOps(t, s)

	s.SetVisitor(alns.StopAfterDuration[price](budget))
	require.NoError(t, s.Solve())
	assert.GreaterOrEqual(t, s.Status().Elapsed(), budget)
	assert.GreaterOrEqual(t, s.Status().Iteration(), 1)

	s.SetVisitor(alns.StopAfterIterations[price](s.Status().Iteration() + 1))
	require.NoError(t, s.Solve())
	assert.Less(t, s.Status().Elapsed(), budget, "elapsed did not restart")
}

func TestStopWhenCancelled_PreCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newPriceSolver(t, 100)
	registerUnitOps(t, s)
	s.SetVisitor(alns.StopWhenCancelled[price](ctx))

	require.NoError(t, s.Solve(), "cancellation stops the run, it is not an error")
	assert.Equal(t, 1, s.Status().Iteration())
}

func TestStopWhenCancelled_MidRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newPriceSolver(t, 100)
	registerUnitOps(t, s)

	cancelAtFive := alns.VisitorFunc[price](func(st *alns.Status[price]) bool {
		if st.Iteration() == 5 {
			cancel()
		}

		return true
	})
	s.SetVisitor(alns.ChainVisitors(cancelAtFive, alns.StopWhenCancelled[price](ctx)))

	require.NoError(t, s.Solve())
	assert.Equal(t, 5, s.Status().Iteration())
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

// TestChainVisitors_OrderAndShortCircuit: visitors run in order and the
// chain stops calling later ones in the iteration where an earlier one
// votes to stop.
func TestChainVisitors_OrderAndShortCircuit(t *testing.T) {
	s := newPriceSolver(t, 100)
	registerUnitOps(t, s)

	var first, second []int
	recordFirst := alns.VisitorFunc[price](func(st *alns.Status[price]) bool {
		first = append(first, st.Iteration())

		return st.Iteration() < 3
	})
	recordSecond := alns.VisitorFunc[price](func(st *alns.Status[price]) bool {
		second = append(second, st.Iteration())

		return true
	})
	s.SetVisitor(alns.ChainVisitors(recordFirst, recordSecond))

	require.NoError(t, s.Solve())

	assert.Equal(t, []int{1, 2, 3}, first)
	assert.Equal(t, []int{1, 2}, second, "stopped iteration skips later visitors")
}

func TestChainVisitors_NilEntriesIgnored(t *testing.T) {
	s := newPriceSolver(t, 100)
	registerUnitOps(t, s)
	s.SetVisitor(alns.ChainVisitors[price](nil, alns.StopAfterIterations[price](2), nil))

	require.NoError(t, s.Solve())
	assert.Equal(t, 2, s.Status().Iteration())
}

// TestCollectStats_CountsEveryOutcome scripts a run covering all four
// outcomes and checks that the tallies add up.
func TestCollectStats_CountsEveryOutcome(t *testing.T) {
	s := newPriceSolver(t, 100)

	// 100 -> 101 accepted-worse -> 99 record -> 100 accepted-worse
	// -> 99.5 improving -> 104.5 rejected by the criterion below.
	script := []float64{+1, -2, +1, -0.5, +5}
	var call int
	_, err := s.RegisterDestroy(alns.DestroyFunc[price](func(p *price) {
		p.value += script[call]
		call++
	}))
	require.NoError(t, err)
	_, err = s.RegisterRepair(repairAdd(0))
	require.NoError(t, err)

	s.SetAcceptance(alns.AcceptanceFunc[price](func(st *alns.Status[price]) bool {
		return st.CandidateCost() < 104
	}))

	var stats alns.Stats
	s.SetVisitor(alns.ChainVisitors(
		alns.CollectStats[price](&stats),
		alns.StopAfterIterations[price](len(script)),
	))

	require.NoError(t, s.Solve())

	assert.Equal(t, 5, stats.Iterations)
	assert.Equal(t, 1, stats.NewBest)
	assert.Equal(t, 1, stats.Improving)
	assert.Equal(t, 2, stats.AcceptedWorse)
	assert.Equal(t, 1, stats.Rejected)
	assert.Equal(t, stats.Iterations,
		stats.NewBest+stats.Improving+stats.AcceptedWorse+stats.Rejected)
	assert.Equal(t, []int{5}, stats.DestroySelections)
	assert.Equal(t, []int{5}, stats.RepairSelections)
}

// TestCollectStats_SelectionsFollowLateRegistration: operators registered
// between runs are tallied under their new index; the total still matches
// the iteration count.
func TestCollectStats_SelectionsFollowLateRegistration(t *testing.T) {
	s := newPriceSolver(t, 100)
	registerUnitOps(t, s)

	var stats alns.Stats
	s.SetVisitor(alns.ChainVisitors(
		alns.CollectStats[price](&stats),
		alns.StopAfterIterations[price](5),
	))
	require.NoError(t, s.Solve())
	assert.Equal(t, []int{5}, stats.DestroySelections)

	idx, err := s.RegisterDestroy(destroyAdd(+2))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	s.SetVisitor(alns.ChainVisitors(
		alns.CollectStats[price](&stats),
		alns.StopAfterIterations[price](12),
	))
	require.NoError(t, s.Solve())

	var total int
	for _, n := range stats.DestroySelections {
		total += n
	}
	assert.Equal(t, 12, total)
	assert.Equal(t, 12, stats.Iterations)
}

func TestCollectStats_NilStatsIsNoop(t *testing.T) {
	s := newPriceSolver(t, 100)
	registerUnitOps(t, s)
	s.SetVisitor(alns.ChainVisitors(
		alns.CollectStats[price](nil),
		alns.StopAfterIterations[price](3),
	))

	require.NoError(t, s.Solve())
	assert.Equal(t, 3, s.Status().Iteration())
}
