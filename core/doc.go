// Package core defines the contracts shared by every improving heuristic in
// this module, plus the control loop that drives them.
//
// # The improving loop
//
// All algorithms (vns, sa, lns) are expressed as four hooks — the Heuristic
// interface — driven by one fixed-point iteration:
//
//  1. candidate := h.ProposeCandidate(incumbent)
//  2. if candidate improves on the best seen, best = candidate
//  3. if h.AcceptCandidate(candidate, incumbent), incumbent = candidate
//  4. h.Feedback(classification of this round)
//  5. if h.ShouldTerminate(incumbent), return best
//
// The split between ProposeCandidate and AcceptCandidate is what lets one
// loop express both strict-improvement search (VNS, LNS) and probabilistic
// acceptance of worsening candidates (SA) without algorithm branches inside
// the loop.
//
// # Contracts
//
//   - Solutions are opaque copyable values; the loop only calls Evaluate().
//     Lower is better, always.
//   - Operator neighborhoods are lazy, finite and restartable: every
//     ConstructNeighborhood call yields an independent sequence, enumerated
//     in a deterministic order for a fixed solution and configuration.
//   - Randomness is threaded explicitly (the Rand interface) through every
//     call that draws; for a fixed seed, two runs of the same configuration
//     are bit-identical.
//   - An empty neighborhood handed to FindBestNeighbor is a bug in the
//     caller-supplied operator and panics; a rejected candidate is a normal
//     outcome, never an error.
//
// # Concurrency
//
// Single-threaded and synchronous by design. An algorithm instance, its
// strategies and its Rand are owned by one run; nothing here is safe for
// concurrent use.
package core
