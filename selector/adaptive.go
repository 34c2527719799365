package selector

import "github.com/DaPurr/Netaheuristics/core"

// Rewards maps each round classification to the reward fed into the
// adaptive weight update. All rewards must be non-negative.
type Rewards struct {
	ImprovedBest float64
	Accepted     float64
	Rejected     float64
}

// DefaultRewards returns the standard reward scheme: improving the best
// solution pays 3, a merely accepted candidate pays 1, a rejected one pays
// nothing.
func DefaultRewards() Rewards {
	return Rewards{ImprovedBest: 3, Accepted: 1, Rejected: 0}
}

// Adaptive learns which operators perform well from round feedback. Every
// operator carries a floating weight (initially 1); selection is a roulette
// wheel over the weights and Feedback exponentially shifts only the weight
// of the last-selected operator:
//
//	w ← (1−decay)·w + decay·reward
//
// With decay 0 the weights never move; with decay 1 a single feedback fully
// replaces the weight with the reward.
//
// Invariant: weights are non-negative at all times (initial weight 1,
// rewards >= 0, decay in [0,1]), so the roulette denominator never goes
// negative.
type Adaptive struct {
	weights []float64
	decay   float64
	rewards Rewards
	rng     core.Rand

	// lastSelection is the index the previous Select returned, or -1 before
	// the first selection. Feedback before any selection is a no-op.
	lastSelection int
}

// NewAdaptive returns an Adaptive selector over a pool of operatorCount
// operators with the default reward scheme.
func NewAdaptive(operatorCount int, decay float64, rng core.Rand) (*Adaptive, error) {
	return NewAdaptiveWithRewards(operatorCount, decay, DefaultRewards(), rng)
}

// NewAdaptiveWithRewards is NewAdaptive with a custom reward scheme.
func NewAdaptiveWithRewards(operatorCount int, decay float64, rewards Rewards, rng core.Rand) (*Adaptive, error) {
	if operatorCount < 1 {
		return nil, ErrNoOperators
	}
	if decay < 0 || decay > 1 {
		return nil, ErrBadDecay
	}
	if rewards.ImprovedBest < 0 || rewards.Accepted < 0 || rewards.Rejected < 0 {
		return nil, ErrNegativeReward
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	weights := make([]float64, operatorCount)
	for i := range weights {
		weights[i] = 1
	}

	return &Adaptive{
		weights:       weights,
		decay:         decay,
		rewards:       rewards,
		rng:           rng,
		lastSelection: -1,
	}, nil
}

// Select draws a uniform value in [0, Σweights) and returns the first
// operator whose cumulative weight interval meets or exceeds the draw.
// Ties break in scan order. Exhausting the scan without a winner would mean
// the draw escaped the cumulative sum — a broken-invariant state — and
// panics.
//
// Complexity: O(n) linear scan; consumes exactly one draw.
func (a *Adaptive) Select(core.Evaluable) int {
	var total float64
	for _, w := range a.weights {
		total += w
	}

	r := a.rng.Float64() * total

	var sum float64
	for i, w := range a.weights {
		sum += w
		if r <= sum {
			a.lastSelection = i

			return i
		}
	}

	panic("selector: adaptive roulette exhausted without a selection")
}

// Feedback applies the exponential update to the weight of the operator the
// last Select returned. Called before any selection, it does nothing.
func (a *Adaptive) Feedback(outcome core.ProposalEvaluation) {
	if a.lastSelection < 0 {
		return
	}

	var reward float64
	switch outcome {
	case core.ImprovedBest:
		reward = a.rewards.ImprovedBest
	case core.Accepted:
		reward = a.rewards.Accepted
	case core.Rejected:
		reward = a.rewards.Rejected
	}

	w := a.weights[a.lastSelection]
	a.weights[a.lastSelection] = (1-a.decay)*w + a.decay*reward
}

// Weights returns a copy of the current weight vector, for diagnostics and
// tests. The relative order of the weights is determined solely by the
// accumulated feedback history.
func (a *Adaptive) Weights() []float64 {
	out := make([]float64, len(a.weights))
	copy(out, a.weights)

	return out
}
