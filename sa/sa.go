// Package sa - algorithm type and builder.
package sa

import (
	"errors"
	"fmt"
	"math"

	"github.com/DaPurr/Netaheuristics/core"
	"github.com/DaPurr/Netaheuristics/selector"
	"github.com/DaPurr/Netaheuristics/termination"
)

// ErrMissingSelector indicates Build was called without an operator
// selector.
var ErrMissingSelector = errors.New("sa: no operator selector specified")

// ErrMissingTerminator indicates Build was called without termination
// criteria.
var ErrMissingTerminator = errors.New("sa: no termination criteria specified")

// ErrMissingRand indicates Build was called without a randomness source.
var ErrMissingRand = errors.New("sa: no rand source specified")

// ErrMissingTemperature indicates Build was called without a temperature:
// set either Temperature or CoolingSchedule.
var ErrMissingTemperature = errors.New("sa: no temperature or cooling schedule specified")

// ErrNoOperators indicates Build was called with an empty operator pool.
var ErrNoOperators = errors.New("sa: no operators specified")

// SimulatedAnnealing owns a stochastic-operator pool, a selection policy,
// termination criteria, a randomness source and a temperature source for
// the duration of one run. Construct through NewBuilder; the zero value is
// not usable.
type SimulatedAnnealing[S core.Evaluable] struct {
	operators  []core.StochasticOperator[S]
	selector   selector.OperatorSelector
	terminator termination.TerminationCriteria
	rng        core.Rand
	schedule   CoolingSchedule
}

// Builder assembles a SimulatedAnnealing. Mandatory: at least one operator,
// a selector, a terminator, a rand source and a temperature source (fixed
// or schedule).
type Builder[S core.Evaluable] struct {
	operators  []core.StochasticOperator[S]
	selector   selector.OperatorSelector
	terminator termination.TerminationCriteria
	rng        core.Rand
	schedule   CoolingSchedule
}

// NewBuilder returns an empty builder.
func NewBuilder[S core.Evaluable]() *Builder[S] {
	return &Builder[S]{}
}

// Operator appends a stochastic operator to the pool. Pool order is
// selection order.
func (b *Builder[S]) Operator(op core.StochasticOperator[S]) *Builder[S] {
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

// Rand sets the randomness source used for shakes and acceptance draws.
func (b *Builder[S]) Rand(rng core.Rand) *Builder[S] {
	b.rng = rng

	return b
}

// Temperature fixes the temperature for the whole run. Equivalent to
// CoolingSchedule(FixedTemperature(t)).
func (b *Builder[S]) Temperature(t float64) *Builder[S] {
	b.schedule = FixedTemperature(t)

	return b
}

// CoolingSchedule sets a mutable temperature source. The last of
// Temperature/CoolingSchedule wins.
func (b *Builder[S]) CoolingSchedule(schedule CoolingSchedule) *Builder[S] {
	b.schedule = schedule

	return b
}

// Build validates that every mandatory component is present and returns the
// annealer. Missing components surface here, before any optimization
// begins.
func (b *Builder[S]) Build() (*SimulatedAnnealing[S], error) {
	if len(b.operators) == 0 {
		return nil, ErrNoOperators
	}
	if b.selector == nil {
		return nil, ErrMissingSelector
	}
	if b.terminator == nil {
		return nil, ErrMissingTerminator
	}
	if b.rng == nil {
		return nil, ErrMissingRand
	}
	if b.schedule == nil {
		return nil, ErrMissingTemperature
	}

	return &SimulatedAnnealing[S]{
		operators:  b.operators,
		selector:   b.selector,
		terminator: b.terminator,
		rng:        b.rng,
		schedule:   b.schedule,
	}, nil
}

// Optimize runs the improving loop from initial and returns the best
// solution observed.
func (s *SimulatedAnnealing[S]) Optimize(initial S) S {
	return core.Optimize[S](s, initial)
}

// OptimizeTimed is Optimize with wall-clock measurement.
func (s *SimulatedAnnealing[S]) OptimizeTimed(initial S) core.Outcome[S] {
	return core.OptimizeTimed[S](s, initial)
}

// ProposeCandidate selects an operator and draws one random neighbor of the
// incumbent.
func (s *SimulatedAnnealing[S]) ProposeCandidate(incumbent S) S {
	index := s.selector.Select(incumbent)
	if index < 0 || index >= len(s.operators) {
		panic(fmt.Sprintf("sa: selector returned operator index %d outside pool of %d", index, len(s.operators)))
	}

	return s.operators[index].Shake(incumbent, s.rng)
}

// AcceptCandidate accepts an improving candidate unconditionally and a
// worsening one with the Metropolis probability at the current temperature.
// One uniform draw is consumed per call, before the improvement branch, so
// the randomness stream does not depend on the comparison's outcome. The
// schedule cools after the decision: this round used the pre-cooling
// temperature.
func (s *SimulatedAnnealing[S]) AcceptCandidate(candidate, incumbent S) bool {
	r := s.rng.Float64()
	temperature := s.schedule.Temperature()

	accept := false
	if candidate.Evaluate() < incumbent.Evaluate() {
		accept = true
	} else if r <= acceptanceProbability(candidate.Evaluate()-incumbent.Evaluate(), temperature) {
		accept = true
	}
	s.schedule.Cool()

	return accept
}

// ShouldTerminate delegates to the termination criteria.
func (s *SimulatedAnnealing[S]) ShouldTerminate(incumbent S) bool {
	return s.terminator.Terminate(incumbent)
}

// Feedback forwards the round classification to the selector.
func (s *SimulatedAnnealing[S]) Feedback(outcome core.ProposalEvaluation) {
	s.selector.Feedback(outcome)
}

// acceptanceProbability returns exp(−delta/temperature) for a worsening
// delta >= 0. A negative delta means an improving candidate, accepted with
// probability 1; the caller normally short-circuits that case.
func acceptanceProbability(delta, temperature float64) float64 {
	if delta < 0 {
		return 1
	}

	return math.Exp(-delta / temperature)
}
