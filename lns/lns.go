// Package lns - roles, algorithm type and builder.
package lns

import (
	"errors"
	"fmt"

	"github.com/DaPurr/Netaheuristics/core"
	"github.com/DaPurr/Netaheuristics/selector"
	"github.com/DaPurr/Netaheuristics/termination"
)

// ErrNoDestroyers indicates Build was called with an empty destroyer pool.
var ErrNoDestroyers = errors.New("lns: no destroyers specified")

// ErrNoRepairers indicates Build was called with an empty repairer pool.
var ErrNoRepairers = errors.New("lns: no repairers specified")

// ErrMissingDestroyerSelector indicates Build was called without a selector
// for the destroyer pool.
var ErrMissingDestroyerSelector = errors.New("lns: no destroyer selector specified")

// ErrMissingRepairerSelector indicates Build was called without a selector
// for the repairer pool.
var ErrMissingRepairerSelector = errors.New("lns: no repairer selector specified")

// ErrMissingTerminator indicates Build was called without termination
// criteria.
var ErrMissingTerminator = errors.New("lns: no termination criteria specified")

// ErrMissingRand indicates Build was called without a randomness source.
var ErrMissingRand = errors.New("lns: no rand source specified")

// Destroyer removes part of a solution, producing a partial solution for a
// Repairer to complete. All randomness flows through rng.
type Destroyer[S core.Evaluable] interface {
	// Destroy returns a partially destroyed copy of solution.
	Destroy(solution S, rng core.Rand) S
}

// Repairer reconstructs a complete candidate from a partial solution.
type Repairer[S core.Evaluable] interface {
	// Repair returns a complete candidate built from partial.
	Repair(partial S, rng core.Rand) S
}

// LargeNeighborhoodSearch owns independent destroyer and repairer pools,
// one selection policy per pool, termination criteria and a randomness
// source for the duration of one run. Construct through NewBuilder; the
// zero value is not usable.
type LargeNeighborhoodSearch[S core.Evaluable] struct {
	destroyers   []Destroyer[S]
	repairers    []Repairer[S]
	destroyerSel selector.OperatorSelector
	repairerSel  selector.OperatorSelector
	terminator   termination.TerminationCriteria
	rng          core.Rand
}

// Builder assembles a LargeNeighborhoodSearch. Mandatory: at least one
// destroyer and one repairer, a selector per pool, a terminator and a rand
// source.
type Builder[S core.Evaluable] struct {
	destroyers   []Destroyer[S]
	repairers    []Repairer[S]
	destroyerSel selector.OperatorSelector
	repairerSel  selector.OperatorSelector
	terminator   termination.TerminationCriteria
	rng          core.Rand
}

// NewBuilder returns an empty builder.
func NewBuilder[S core.Evaluable]() *Builder[S] {
	return &Builder[S]{}
}

// Destroyer appends a destroyer to its pool. Pool order is selection order.
func (b *Builder[S]) Destroyer(d Destroyer[S]) *Builder[S] {
	b.destroyers = append(b.destroyers, d)

	return b
}

// Repairer appends a repairer to its pool. Pool order is selection order.
func (b *Builder[S]) Repairer(r Repairer[S]) *Builder[S] {
	b.repairers = append(b.repairers, r)

	return b
}

// DestroyerSelector sets the selection policy over the destroyer pool.
func (b *Builder[S]) DestroyerSelector(sel selector.OperatorSelector) *Builder[S] {
	b.destroyerSel = sel

	return b
}

// RepairerSelector sets the selection policy over the repairer pool.
func (b *Builder[S]) RepairerSelector(sel selector.OperatorSelector) *Builder[S] {
	b.repairerSel = sel

	return b
}

// Terminator sets the termination criteria.
func (b *Builder[S]) Terminator(t termination.TerminationCriteria) *Builder[S] {
	b.terminator = t

	return b
}

// Rand sets the randomness source threaded through destroy and repair.
func (b *Builder[S]) Rand(rng core.Rand) *Builder[S] {
	b.rng = rng

	return b
}

// Build validates that every mandatory component is present and returns the
// search. Missing components surface here, before any optimization begins.
func (b *Builder[S]) Build() (*LargeNeighborhoodSearch[S], error) {
	if len(b.destroyers) == 0 {
		return nil, ErrNoDestroyers
	}
	if len(b.repairers) == 0 {
		return nil, ErrNoRepairers
	}
	if b.destroyerSel == nil {
		return nil, ErrMissingDestroyerSelector
	}
	if b.repairerSel == nil {
		return nil, ErrMissingRepairerSelector
	}
	if b.terminator == nil {
		return nil, ErrMissingTerminator
	}
	if b.rng == nil {
		return nil, ErrMissingRand
	}

	return &LargeNeighborhoodSearch[S]{
		destroyers:   b.destroyers,
		repairers:    b.repairers,
		destroyerSel: b.destroyerSel,
		repairerSel:  b.repairerSel,
		terminator:   b.terminator,
		rng:          b.rng,
	}, nil
}

// Optimize runs the improving loop from initial and returns the best
// solution observed.
func (l *LargeNeighborhoodSearch[S]) Optimize(initial S) S {
	return core.Optimize[S](l, initial)
}

// OptimizeTimed is Optimize with wall-clock measurement.
func (l *LargeNeighborhoodSearch[S]) OptimizeTimed(initial S) core.Outcome[S] {
	return core.OptimizeTimed[S](l, initial)
}

// ProposeCandidate selects one destroyer and one repairer independently,
// then applies destroy followed by repair. Both selections happen before
// either role runs, so selection order never depends on the destroy
// outcome.
func (l *LargeNeighborhoodSearch[S]) ProposeCandidate(incumbent S) S {
	di := l.destroyerSel.Select(incumbent)
	if di < 0 || di >= len(l.destroyers) {
		panic(fmt.Sprintf("lns: destroyer selector returned index %d outside pool of %d", di, len(l.destroyers)))
	}
	ri := l.repairerSel.Select(incumbent)
	if ri < 0 || ri >= len(l.repairers) {
		panic(fmt.Sprintf("lns: repairer selector returned index %d outside pool of %d", ri, len(l.repairers)))
	}

	partial := l.destroyers[di].Destroy(incumbent, l.rng)

	return l.repairers[ri].Repair(partial, l.rng)
}

// AcceptCandidate accepts iff the candidate strictly improves on the
// incumbent.
func (l *LargeNeighborhoodSearch[S]) AcceptCandidate(candidate, incumbent S) bool {
	return candidate.Evaluate() < incumbent.Evaluate()
}

// ShouldTerminate delegates to the termination criteria.
func (l *LargeNeighborhoodSearch[S]) ShouldTerminate(incumbent S) bool {
	return l.terminator.Terminate(incumbent)
}

// Feedback forwards the round classification to both selectors; each
// updates only its own last pick.
func (l *LargeNeighborhoodSearch[S]) Feedback(outcome core.ProposalEvaluation) {
	l.destroyerSel.Feedback(outcome)
	l.repairerSel.Feedback(outcome)
}
