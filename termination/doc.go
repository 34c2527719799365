// Package termination provides composable stopping rules for improving
// heuristics.
//
// Two primitives are provided:
//
//   - IterationTerminator — trips on exactly the n-th Terminate call. The
//     counter increments before the comparison, so n calls are required to
//     trip; this off-by-one-sensitive contract is pinned by tests.
//   - TimeTerminator — trips once wall-clock time reaches a deadline fixed
//     at construction. Poll-based: it is only consulted at round boundaries
//     and never interrupts an in-flight iteration.
//
// Primitives compose through AndTerminator / OrTerminator. Because a
// criterion may carry side effects (the iteration counter), composites
// evaluate every sub-criterion unconditionally — no short-circuiting — so
// counters stay consistent regardless of ordering in the list.
//
// The Builder assembles a criteria list with one aggregation mode
// (defaulting to Any, i.e. logical OR):
//
//	criteria, err := termination.NewBuilder().
//		Iterations(10_000).
//		MaxDuration(5 * time.Second).
//		Build()
//
// Termination checks mutate criterion state through the ordinary pointer
// receiver; criteria are built once per run and owned by one algorithm
// instance.
package termination
