package termination

import "time"

// Aggregation selects how a Builder combines its criteria.
type Aggregation uint8

const (
	// Any aggregates under logical OR: stop when at least one criterion
	// trips. This is the builder default.
	Any Aggregation = iota

	// All aggregates under logical AND: stop only when every criterion
	// tripped.
	All
)

// Builder assembles a list of termination criteria and one aggregation
// mode. Validation errors stick to the builder and surface from Build, so
// call chains stay fluent:
//
//	criteria, err := termination.NewBuilder().
//		Iterations(100).
//		MaxDuration(time.Second).
//		All().
//		Build()
type Builder struct {
	criteria    []TerminationCriteria
	aggregation Aggregation
	err         error
}

// NewBuilder returns an empty builder aggregating under Any.
func NewBuilder() *Builder {
	return &Builder{aggregation: Any}
}

// Criterion appends a caller-supplied criterion.
func (b *Builder) Criterion(c TerminationCriteria) *Builder {
	if b.err != nil {
		return b
	}
	if c == nil {
		b.err = ErrNilCriterion

		return b
	}
	b.criteria = append(b.criteria, c)

	return b
}

// Iterations appends an IterationTerminator with the given limit.
func (b *Builder) Iterations(n int) *Builder {
	if b.err != nil {
		return b
	}
	c, err := NewIterationTerminator(n)
	if err != nil {
		b.err = err

		return b
	}
	b.criteria = append(b.criteria, c)

	return b
}

// MaxDuration appends a TimeTerminator with deadline now+budget. The
// deadline is fixed when MaxDuration is called, not when Build runs.
func (b *Builder) MaxDuration(budget time.Duration) *Builder {
	if b.err != nil {
		return b
	}
	b.criteria = append(b.criteria, NewTimeTerminator(budget))

	return b
}

// Any sets OR aggregation (the default).
func (b *Builder) Any() *Builder {
	b.aggregation = Any

	return b
}

// All sets AND aggregation.
func (b *Builder) All() *Builder {
	b.aggregation = All

	return b
}

// Build returns the composed criteria, or the first validation error
// recorded during the chain. An empty criteria list is ErrNoCriteria.
func (b *Builder) Build() (TerminationCriteria, error) {
	if b.err != nil {
		return nil, b.err
	}

	switch b.aggregation {
	case All:
		return NewAndTerminator(b.criteria...)
	default:
		return NewOrTerminator(b.criteria...)
	}
}
