package alns

// Destroyer removes or perturbs part of a solution in place, typically
// leaving it incomplete or worse; a Repairer restores it afterwards.
// The engine always applies a destroy operator first, a repair operator
// second, to a private candidate copy.
//
// Contracts:
//
//	– Destroy may assume exclusive access to *sol for the duration of the
//	  call; the engine never aliases the candidate while an operator runs.
//	– Destroy must not retain *sol (or interior slices/maps) past the call.
//	– A panic inside Destroy propagates unchanged to the Solve caller.
//
// Distinct method names keep the two roles nominal: a Repairer cannot be
// registered as a destroy operator by accident.
type Destroyer[S Solution[S]] interface {
	Destroy(sol *S)
}

// Repairer rebuilds a destroyed solution in place, producing the candidate
// the acceptance criterion judges. The same contracts as Destroyer apply.
type Repairer[S Solution[S]] interface {
	Repair(sol *S)
}

// DestroyFunc adapts a plain function to the Destroyer interface.
type DestroyFunc[S Solution[S]] func(sol *S)

// Destroy calls f(sol).
func (f DestroyFunc[S]) Destroy(sol *S) { f(sol) }

// RepairFunc adapts a plain function to the Repairer interface.
type RepairFunc[S Solution[S]] func(sol *S)

// Repair calls f(sol).
func (f RepairFunc[S]) Repair(sol *S) { f(sol) }
