package termination

import "github.com/DaPurr/Netaheuristics/core"

// IterationTerminator trips on exactly the n-th Terminate call. The counter
// starts at 0 and increments before the comparison: n calls are required to
// trip, not n iterations elapsed before the first check.
type IterationTerminator struct {
	limit     int
	iteration int
}

// NewIterationTerminator returns a terminator tripping on the n-th call.
func NewIterationTerminator(n int) (*IterationTerminator, error) {
	if n < 1 {
		return nil, ErrBadIterationLimit
	}

	return &IterationTerminator{limit: n}, nil
}

// Terminate increments the counter, then reports whether it reached the
// limit. The solution is not consulted.
func (t *IterationTerminator) Terminate(core.Evaluable) bool {
	t.iteration++

	return t.iteration == t.limit
}
