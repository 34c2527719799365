package termination

import (
	"time"

	"github.com/DaPurr/Netaheuristics/core"
)

// TimeTerminator trips once wall-clock time reaches a deadline fixed at
// construction. This is soft, poll-based cancellation: a long round runs to
// completion and the deadline is only observed at the next check.
type TimeTerminator struct {
	deadline time.Time
}

// NewTimeTerminator returns a terminator whose deadline is now+budget.
// A zero or negative budget yields a terminator that trips on its first
// check.
func NewTimeTerminator(budget time.Duration) *TimeTerminator {
	return &TimeTerminator{deadline: time.Now().Add(budget)}
}

// Terminate reports whether the deadline has been reached.
func (t *TimeTerminator) Terminate(core.Evaluable) bool {
	return !time.Now().Before(t.deadline)
}
