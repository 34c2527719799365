// Package vns - algorithm type and builder.
package vns

import (
	"errors"
	"fmt"

	"github.com/DaPurr/Netaheuristics/core"
	"github.com/DaPurr/Netaheuristics/selector"
	"github.com/DaPurr/Netaheuristics/termination"
)

// ErrMissingSelector indicates Build was called without an operator
// selector.
var ErrMissingSelector = errors.New("vns: no operator selector specified")

// ErrMissingTerminator indicates Build was called without termination
// criteria.
var ErrMissingTerminator = errors.New("vns: no termination criteria specified")

// ErrNoOperators indicates Build was called with an empty operator pool.
var ErrNoOperators = errors.New("vns: no operators specified")

// VariableNeighborhoodSearch owns an operator pool, a selection policy and
// termination criteria for the duration of one run. Construct through
// NewBuilder; the zero value is not usable.
type VariableNeighborhoodSearch[S core.Evaluable] struct {
	operators  []core.Operator[S]
	selector   selector.OperatorSelector
	terminator termination.TerminationCriteria
}

// Builder assembles a VariableNeighborhoodSearch. All fields are mandatory:
// at least one operator, a selector and a terminator.
type Builder[S core.Evaluable] struct {
	operators  []core.Operator[S]
	selector   selector.OperatorSelector
	terminator termination.TerminationCriteria
}

// NewBuilder returns an empty builder.
func NewBuilder[S core.Evaluable]() *Builder[S] {
	return &Builder[S]{}
}

// Operator appends an operator to the pool. Pool order is selection order:
// selector indices refer to the order operators were added.
func (b *Builder[S]) Operator(op core.Operator[S]) *Builder[S] {
	b.operators = append(b.operators, op)

	return b
}

// Selector sets the operator-selection policy.
func (b *Builder[S]) Selector(sel selector.OperatorSelector) *Builder[S] {
	b.selector = sel

	return b
}

// Terminator sets the termination criteria.
func (b *Builder[S]) Terminator(t termination.TerminationCriteria) *Builder[S] {
	b.terminator = t

	return b
}

// Build validates that every mandatory component is present and returns the
// search. Missing components surface here, before any optimization begins.
func (b *Builder[S]) Build() (*VariableNeighborhoodSearch[S], error) {
	if len(b.operators) == 0 {
		return nil, ErrNoOperators
	}
	if b.selector == nil {
		return nil, ErrMissingSelector
	}
	if b.terminator == nil {
		return nil, ErrMissingTerminator
	}

	return &VariableNeighborhoodSearch[S]{
		operators:  b.operators,
		selector:   b.selector,
		terminator: b.terminator,
	}, nil
}

// Optimize runs the improving loop from initial and returns the best
// solution observed.
func (v *VariableNeighborhoodSearch[S]) Optimize(initial S) S {
	return core.Optimize[S](v, initial)
}

// OptimizeTimed is Optimize with wall-clock measurement.
func (v *VariableNeighborhoodSearch[S]) OptimizeTimed(initial S) core.Outcome[S] {
	return core.OptimizeTimed[S](v, initial)
}

// ProposeCandidate selects an operator and returns the best neighbor of the
// incumbent under full enumeration.
func (v *VariableNeighborhoodSearch[S]) ProposeCandidate(incumbent S) S {
	index := v.selector.Select(incumbent)
	if index < 0 || index >= len(v.operators) {
		panic(fmt.Sprintf("vns: selector returned operator index %d outside pool of %d", index, len(v.operators)))
	}

	return core.FindBestNeighbor(v.operators[index], incumbent)
}

// AcceptCandidate accepts iff the candidate strictly improves on the
// incumbent.
func (v *VariableNeighborhoodSearch[S]) AcceptCandidate(candidate, incumbent S) bool {
	return candidate.Evaluate() < incumbent.Evaluate()
}

// ShouldTerminate delegates to the termination criteria.
func (v *VariableNeighborhoodSearch[S]) ShouldTerminate(incumbent S) bool {
	return v.terminator.Terminate(incumbent)
}

// Feedback forwards the round classification to the selector; adaptive
// selectors learn from it, the others ignore it.
func (v *VariableNeighborhoodSearch[S]) Feedback(outcome core.ProposalEvaluation) {
	v.selector.Feedback(outcome)
}
