package core_test

import (
	"iter"

	"github.com/DaPurr/Netaheuristics/core"
)

// number is the minimal solution fixture: fitness is the value itself.
type number struct {
	index int
	value float64
}

func (n number) Evaluate() float64 { return n.value }

// listOperator yields a fixed slice of neighbors regardless of the input
// solution. An empty list models the empty-neighborhood contract violation.
type listOperator struct {
	neighbors []number
}

func (o listOperator) ConstructNeighborhood(_ number) iter.Seq[number] {
	return func(yield func(number) bool) {
		for _, n := range o.neighbors {
			if !yield(n) {
				return
			}
		}
	}
}

// scriptedHeuristic drives the loop with a predetermined proposal sequence
// and a fixed acceptance rule, recording every feedback emission. It
// terminates after the scripted proposals are exhausted.
type scriptedHeuristic struct {
	proposals    []number
	acceptWorse  bool // accept everything instead of strict improvement
	round        int
	feedback     []core.ProposalEvaluation
	incumbentLog []number
}

func (h *scriptedHeuristic) ProposeCandidate(_ number) number {
	p := h.proposals[h.round]
	h.round++

	return p
}

func (h *scriptedHeuristic) AcceptCandidate(candidate, incumbent number) bool {
	if h.acceptWorse {
		return true
	}

	return candidate.Evaluate() < incumbent.Evaluate()
}

func (h *scriptedHeuristic) ShouldTerminate(incumbent number) bool {
	h.incumbentLog = append(h.incumbentLog, incumbent)

	return h.round >= len(h.proposals)
}

func (h *scriptedHeuristic) Feedback(outcome core.ProposalEvaluation) {
	h.feedback = append(h.feedback, outcome)
}
