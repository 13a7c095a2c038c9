// Package alns - visitors: per-iteration observation and termination.
//
// The engine has no built-in stopping rule. A visitor runs at the end of
// every iteration and its boolean return is the only stop signal, which
// keeps progress reporting, iteration/time limits, target costs and
// cancellation composable instead of hard-wired into the loop.
package alns

import (
	"context"
	"time"
)

// Visitor observes the status once per completed iteration and steers
// termination: return true to continue, false to stop Solve.
//
// When OnIteration runs, Iteration and Elapsed already include the pass
// that just finished, and LastOutcome/LastDestroy/LastRepair describe it.
// A visitor may mutate the solutions through the Status pointers; a panic
// inside a visitor propagates to the Solve caller.
type Visitor[S Solution[S]] interface {
	OnIteration(st *Status[S]) bool
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc[S Solution[S]] func(st *Status[S]) bool

// OnIteration calls f(st).
func (f VisitorFunc[S]) OnIteration(st *Status[S]) bool { return f(st) }

// neverStop is the default visitor: it always continues. Bounded runs must
// install a stopping visitor before calling Solve.
type neverStop[S Solution[S]] struct{}

func (neverStop[S]) OnIteration(*Status[S]) bool { return true }

// StopAfterIterations stops the run once n iterations have completed, as
// counted since construction or the last Reset (not per Solve call).
// Because the loop body always runs before the visitor, n < 1 still admits
// one iteration.
func StopAfterIterations[S Solution[S]](n int) Visitor[S] {
	return VisitorFunc[S](func(st *Status[S]) bool {
		return st.Iteration() < n
	})
}

// StopAfterDuration stops the run once the elapsed wall-clock time of the
// current Solve call reaches d. The check runs between iterations, so a
// slow operator can overrun the budget by up to one iteration.
func StopAfterDuration[S Solution[S]](d time.Duration) Visitor[S] {
	return VisitorFunc[S](func(st *Status[S]) bool {
		return st.Elapsed() < d
	})
}

// StopWhenCancelled stops the run at the end of the first iteration that
// finds ctx done. It bridges context cancellation into the visitor
// contract; Solve still returns nil in that case, and the caller can
// consult ctx.Err for the cause.
func StopWhenCancelled[S Solution[S]](ctx context.Context) Visitor[S] {
	return VisitorFunc[S](func(*Status[S]) bool {
		return ctx.Err() == nil
	})
}

// ChainVisitors combines visitors into one that invokes them in order and
// stops the run as soon as any of them returns false; later visitors are
// then skipped for that iteration. Nil entries are ignored. Chaining an
// observer (say, CollectStats) before a stop condition keeps the observer
// running up to and including the final iteration.
func ChainVisitors[S Solution[S]](visitors ...Visitor[S]) Visitor[S] {
	return VisitorFunc[S](func(st *Status[S]) bool {
		for _, v := range visitors {
			if v == nil {
				continue
			}
			if !v.OnIteration(st) {
				return false
			}
		}

		return true
	})
}
