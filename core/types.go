// Package core - shared vocabulary types for improving heuristics.
package core

import "time"

// Evaluable is the one capability every solution type must expose: a scalar
// fitness. Lower is better throughout the module. The library never inspects
// a solution beyond this method; solutions are treated as opaque copyable
// values.
type Evaluable interface {
	// Evaluate returns the objective value of the solution. It must be a
	// pure function of the solution's state.
	Evaluate() float64
}

// Rand is the abstract source of uniform randomness consumed by the module.
// *math/rand.Rand satisfies it. Implementations need not be goroutine-safe;
// each run owns its Rand exclusively.
//
// Determinism contract: for a fixed seed, the sequence of Float64/Intn calls
// an algorithm makes is part of that algorithm's behavior — injected fixed
// sequences are a supported testing technique.
type Rand interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64

	// Intn returns a uniform draw in [0, n). It panics if n <= 0, matching
	// math/rand semantics.
	Intn(n int) int
}

// ProposalEvaluation classifies the outcome of one loop round. It is fed
// back into selection policies; the adaptive selector is the only built-in
// consumer with cross-round memory.
type ProposalEvaluation uint8

const (
	// ImprovedBest - the candidate strictly improved on the best solution
	// seen so far. Implies the candidate was accepted under every built-in
	// acceptance rule.
	ImprovedBest ProposalEvaluation = iota

	// Accepted - the candidate became the new incumbent without improving
	// the best seen (possible under SA's probabilistic acceptance).
	Accepted

	// Rejected - the candidate was discarded; the incumbent stands.
	Rejected
)

// String returns a stable human-readable name for the classification.
func (p ProposalEvaluation) String() string {
	switch p {
	case ImprovedBest:
		return "improved-best"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome is the result of a timed optimization run: the best solution seen
// and the wall-clock time the run took. Immutable by convention.
type Outcome[S Evaluable] struct {
	// Solution is the best-seen solution of the run.
	Solution S

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}
