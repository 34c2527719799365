// Package selector - contract and sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Constructors validate and return sentinels; selection itself never
//     returns errors — an impossible selection is a contract violation and
//     panics.
package selector

import (
	"errors"

	"github.com/DaPurr/Netaheuristics/core"
)

// OperatorSelector picks, per round, the index of the operator to apply
// next. Pool size is fixed at construction; returned indices are always in
// [0, pool size).
type OperatorSelector interface {
	// Select returns the index of the next operator, given the incumbent.
	Select(incumbent core.Evaluable) int

	// Feedback reports the classification of the round driven by the last
	// Select call. Policies without adaptive state ignore it.
	Feedback(outcome core.ProposalEvaluation)
}

// ErrNoOperators indicates a selector was constructed over an empty pool.
// Usage: if errors.Is(err, ErrNoOperators) { /* supply >= 1 operator */ }.
var ErrNoOperators = errors.New("selector: operator pool is empty")

// ErrNilRand indicates a stochastic selector was constructed without a
// randomness source.
// Usage: if errors.Is(err, ErrNilRand) { /* supply a seeded Rand */ }.
var ErrNilRand = errors.New("selector: rand source is required")

// ErrBadDecay indicates an adaptive decay factor outside [0, 1].
// Usage: if errors.Is(err, ErrBadDecay) { /* fix decay */ }.
var ErrBadDecay = errors.New("selector: decay factor out of range")

// ErrNegativeReward indicates a negative adaptive reward, which would break
// the non-negative-weights invariant.
// Usage: if errors.Is(err, ErrNegativeReward) { /* use rewards >= 0 */ }.
var ErrNegativeReward = errors.New("selector: rewards must be non-negative")
