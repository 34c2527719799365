package termination

import "github.com/DaPurr/Netaheuristics/core"

// OrTerminator trips when at least one sub-criterion trips.
//
// Sub-criteria may carry side effects (iteration counters), so every one of
// them is evaluated unconditionally on every check — no short-circuiting.
// This keeps counters consistent across differently ordered criteria lists.
type OrTerminator struct {
	criteria []TerminationCriteria
}

// NewOrTerminator composes criteria under logical OR.
func NewOrTerminator(criteria ...TerminationCriteria) (*OrTerminator, error) {
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}

	return &OrTerminator{criteria: criteria}, nil
}

// Terminate evaluates all sub-criteria and reports whether any tripped.
func (t *OrTerminator) Terminate(incumbent core.Evaluable) bool {
	stop := false
	for _, c := range t.criteria {
		if c.Terminate(incumbent) {
			stop = true
		}
	}

	return stop
}

// AndTerminator trips when all sub-criteria trip, with the same
// unconditional-evaluation rule as OrTerminator.
type AndTerminator struct {
	criteria []TerminationCriteria
}

// NewAndTerminator composes criteria under logical AND.
func NewAndTerminator(criteria ...TerminationCriteria) (*AndTerminator, error) {
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}

	return &AndTerminator{criteria: criteria}, nil
}

// Terminate evaluates all sub-criteria and reports whether every one
// tripped.
func (t *AndTerminator) Terminate(incumbent core.Evaluable) bool {
	stop := true
	for _, c := range t.criteria {
		if !c.Terminate(incumbent) {
			stop = false
		}
	}

	return stop
}

func validateCriteria(criteria []TerminationCriteria) error {
	if len(criteria) == 0 {
		return ErrNoCriteria
	}
	for _, c := range criteria {
		if c == nil {
			return ErrNilCriterion
		}
	}

	return nil
}
