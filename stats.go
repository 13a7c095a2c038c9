package alns

// Stats accumulates per-run counters. Fill it through the CollectStats
// visitor; the zero value is ready to use.
//
// Iterations always equals the sum of the four outcome counters once the
// run is over. Selection slices are indexed by operator registration index
// and grow on demand, so operators registered mid-run are still counted.
type Stats struct {
	// Iterations is the number of completed iterations observed.
	Iterations int

	// NewBest counts iterations whose candidate set a new overall record.
	NewBest int

	// Improving counts accepted candidates that beat current but not best.
	Improving int

	// AcceptedWorse counts accepted candidates that did not beat current.
	AcceptedWorse int

	// Rejected counts candidates refused by the acceptance criterion.
	Rejected int

	// DestroySelections counts, per destroy operator, how often the
	// roulette wheel chose it.
	DestroySelections []int

	// RepairSelections counts, per repair operator, how often the roulette
	// wheel chose it.
	RepairSelections []int
}

// CollectStats returns a visitor that tallies every iteration into stats.
// It never stops the run; chain it (first) with a stop condition:
//
//	var stats alns.Stats
//	solver.SetVisitor(alns.ChainVisitors(
//	    alns.CollectStats[Route](&stats),
//	    alns.StopAfterIterations[Route](10_000),
//	))
//
// A nil stats yields a no-op visitor.
func CollectStats[S Solution[S]](stats *Stats) Visitor[S] {
	return VisitorFunc[S](func(st *Status[S]) bool {
		if stats == nil {
			return true
		}

		stats.Iterations++
		switch st.LastOutcome() {
		case OutcomeNewBest:
			stats.NewBest++
		case OutcomeImproving:
			stats.Improving++
		case OutcomeAccepted:
			stats.AcceptedWorse++
		case OutcomeRejected:
			stats.Rejected++
		}
		stats.DestroySelections = bumpCount(stats.DestroySelections, st.LastDestroy())
		stats.RepairSelections = bumpCount(stats.RepairSelections, st.LastRepair())

		return true
	})
}

// bumpCount increments counts[i], growing the slice as needed.
// Negative indices (no operator recorded yet) are ignored.
func bumpCount(counts []int, i int) []int {
	if i < 0 {
		return counts
	}
	for len(counts) <= i {
		counts = append(counts, 0)
	}
	counts[i]++

	return counts
}
