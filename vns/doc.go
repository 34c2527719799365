// Package vns implements Variable Neighborhood Search.
//
// VNS explores increasingly distant neighborhood structures of the
// incumbent: each round, the selector picks one operator from the pool, the
// operator's neighborhood is exhaustively enumerated, and the best neighbor
// becomes the candidate. A candidate is accepted only on strict
// improvement. With the sequential selector this is the textbook VNS rule:
// restart from the first neighborhood structure on any improvement,
// escalate on stagnation.
//
// # Adaptive variant
//
// The round classification (improved-best / accepted / rejected) is always
// forwarded to the selector; wiring a selector.Adaptive therefore yields
// adaptive VNS with no further configuration — the selector learns which
// neighborhood structures pay off.
//
// # Construction
//
//	search, err := vns.NewBuilder[MySolution]().
//		Operator(opSwap).
//		Operator(opReverse).
//		Selector(seq).
//		Terminator(criteria).
//		Build()
//	best := search.Optimize(initial)
//
// Build fails with a sentinel when a mandatory component is missing. An
// operator whose neighborhood is empty, or a selector returning an index
// outside the pool, is a caller defect and panics during the run (see
// package core).
package vns
