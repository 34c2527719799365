// Package termination - contract and sentinel errors.
package termination

import (
	"errors"

	"github.com/DaPurr/Netaheuristics/core"
)

// TerminationCriteria decides, from the current incumbent, whether the
// search must stop. A check may mutate internal counters; callers must
// invoke Terminate exactly once per round.
type TerminationCriteria interface {
	// Terminate reports whether the search must stop now.
	Terminate(incumbent core.Evaluable) bool
}

// ErrNoCriteria indicates Build was called on a builder with an empty
// criteria list.
// Usage: if errors.Is(err, ErrNoCriteria) { /* add >= 1 criterion */ }.
var ErrNoCriteria = errors.New("termination: no criteria specified")

// ErrBadIterationLimit indicates an iteration limit below 1.
// Usage: if errors.Is(err, ErrBadIterationLimit) { /* use n >= 1 */ }.
var ErrBadIterationLimit = errors.New("termination: iteration limit must be >= 1")

// ErrNilCriterion indicates a nil criterion was handed to the builder or a
// composite.
// Usage: if errors.Is(err, ErrNilCriterion) { /* supply a criterion */ }.
var ErrNilCriterion = errors.New("termination: nil criterion")
