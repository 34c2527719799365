// Package core - operator capabilities and neighborhood search.
//
// Operators bind a problem's move definition to the loop. The two
// capabilities are independently optional: an operator used by VNS needs
// ConstructNeighborhood, one used by SA needs Shake, and a single type may
// provide both.
package core

import "iter"

// Operator produces the neighborhood of a solution: the finite sequence of
// candidates reachable under one move definition.
//
// Contracts:
//   - Restartable: each ConstructNeighborhood call yields a fresh,
//     independent sequence; sequences are not resumable across calls.
//   - Deterministic: for a fixed solution and operator configuration the
//     enumeration order is fixed (required for seed-reproducible runs even
//     though enumeration itself draws no randomness).
//   - Solutions are received by value and returned newly constructed; an
//     operator owns no solution.
type Operator[S Evaluable] interface {
	// ConstructNeighborhood returns a lazy, finite sequence of neighbors
	// of solution.
	ConstructNeighborhood(solution S) iter.Seq[S]
}

// StochasticOperator draws a single random neighbor ("shake") using the
// caller-supplied randomness source. Implementations must not re-seed or
// cache draws across calls; all nondeterminism flows through rng.
type StochasticOperator[S Evaluable] interface {
	// Shake returns one randomly drawn neighbor of solution.
	Shake(solution S, rng Rand) S
}

// FindBestNeighbor exhaustively enumerates op's neighborhood of solution and
// returns the element with the lowest fitness. Ties keep the earliest
// element in enumeration order.
//
// An empty neighborhood is a defect in the supplied operator, not a runtime
// condition: FindBestNeighbor panics rather than inventing a default value.
//
// Complexity: O(k) evaluations for a neighborhood of k candidates.
func FindBestNeighbor[S Evaluable](op Operator[S], solution S) S {
	var (
		best      S
		bestValue float64
		found     bool
	)
	for candidate := range op.ConstructNeighborhood(solution) {
		value := candidate.Evaluate()
		if !found || value < bestValue {
			best, bestValue = candidate, value
			found = true
		}
	}
	if !found {
		panic("core: FindBestNeighbor called on an empty neighborhood")
	}

	return best
}
