// Package core - the shared improving-heuristic control loop.
package core

import "time"

// Heuristic is the algorithm-specific face of the improving loop. Every
// concrete algorithm in this module implements exactly these four hooks;
// the loop itself contains no algorithm knowledge.
type Heuristic[S Evaluable] interface {
	// ProposeCandidate derives one candidate from the incumbent.
	ProposeCandidate(incumbent S) S

	// AcceptCandidate decides whether candidate replaces the incumbent.
	// Strict-improvement rules (VNS, LNS) compare fitness; SA may accept a
	// worsening candidate probabilistically.
	AcceptCandidate(candidate, incumbent S) bool

	// ShouldTerminate reports whether the search must stop, given the
	// current incumbent. Checked once per round, after acceptance.
	ShouldTerminate(incumbent S) bool

	// Feedback receives the classification of the last round. Called
	// exactly once per round; implementations without adaptive state
	// ignore it.
	Feedback(outcome ProposalEvaluation)
}

// Optimize runs the improving loop from initial until the heuristic's
// termination criteria fire, and returns the best solution observed.
//
// Invariants upheld by the loop:
//   - The best-seen solution is monotonically non-worsening: it is replaced
//     only on strict improvement.
//   - The incumbent may worsen over time (probabilistic acceptance), but
//     best.Evaluate() <= incumbent.Evaluate() at every round boundary.
//   - Exactly one Feedback emission per round, with precedence
//     ImprovedBest > Accepted > Rejected.
//
// A rejected candidate is a normal outcome; the loop never retries a
// proposal — "retry" is simply the next round.
func Optimize[S Evaluable](h Heuristic[S], initial S) S {
	incumbent := initial
	best := initial
	bestValue := initial.Evaluate()

	for {
		candidate := h.ProposeCandidate(incumbent)

		improved := false
		if value := candidate.Evaluate(); value < bestValue {
			best, bestValue = candidate, value
			improved = true
		}

		accepted := h.AcceptCandidate(candidate, incumbent)
		if accepted {
			incumbent = candidate
		}

		switch {
		case improved:
			h.Feedback(ImprovedBest)
		case accepted:
			h.Feedback(Accepted)
		default:
			h.Feedback(Rejected)
		}

		if h.ShouldTerminate(incumbent) {
			return best
		}
	}
}

// OptimizeTimed wraps Optimize with wall-clock measurement and returns the
// best solution together with the elapsed duration.
func OptimizeTimed[S Evaluable](h Heuristic[S], initial S) Outcome[S] {
	start := time.Now()
	best := Optimize(h, initial)

	return Outcome[S]{Solution: best, Elapsed: time.Since(start)}
}
