package selector

import "github.com/DaPurr/Netaheuristics/core"

// Random draws an operator index uniformly from the pool on every call.
// It keeps no state beyond its randomness source.
type Random struct {
	size int
	rng  core.Rand
}

// NewRandom returns a Random selector over a pool of operatorCount
// operators, drawing from rng.
func NewRandom(operatorCount int, rng core.Rand) (*Random, error) {
	if operatorCount < 1 {
		return nil, ErrNoOperators
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	return &Random{size: operatorCount, rng: rng}, nil
}

// Select returns a uniform index in [0, pool size).
//
// Complexity: O(1); consumes exactly one draw.
func (r *Random) Select(core.Evaluable) int {
	return r.rng.Intn(r.size)
}

// Feedback is a no-op; Random is stateless across rounds.
func (r *Random) Feedback(core.ProposalEvaluation) {}
