package selector

import (
	"math"

	"github.com/DaPurr/Netaheuristics/core"
)

// Sequential iterates through the pool consecutively, starting from index 0.
// Whenever the incumbent improves on the best objective this selector has
// seen, the iteration restarts from the beginning; otherwise it escalates
// to the next operator, wrapping around. No operator is ever skipped
// permanently.
//
// This mirrors the classical VNS neighborhood-change rule: return to the
// first (cheapest) neighborhood structure on improvement, escalate on
// stagnation.
type Sequential struct {
	size          int
	cursor        int
	objectiveBest float64
}

// NewSequential returns a Sequential selector over a pool of operatorCount
// operators. The best objective starts at +Inf, so the very first call
// counts as an improvement and selects index 0.
func NewSequential(operatorCount int) (*Sequential, error) {
	if operatorCount < 1 {
		return nil, ErrNoOperators
	}

	return &Sequential{
		size:          operatorCount,
		objectiveBest: math.Inf(1),
	}, nil
}

// Select advances the cursor according to the restart-on-improvement rule
// and returns it.
//
// Complexity: O(1).
func (s *Sequential) Select(incumbent core.Evaluable) int {
	objective := incumbent.Evaluate()
	if objective < s.objectiveBest {
		s.objectiveBest = objective
		s.cursor = 0
	} else {
		s.cursor = (s.cursor + 1) % s.size
	}

	return s.cursor
}

// Feedback is a no-op; Sequential adapts through objective values alone.
func (s *Sequential) Feedback(core.ProposalEvaluation) {}
