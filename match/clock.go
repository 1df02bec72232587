package match

import "context"

// Clock is the cooperative cancellation check threaded through one
// rewrite call's matchers (spec §7). Matchers consult it between match
// attempts instead of plumbing a context.Context through every
// combinator signature; a nil *Clock always reports "not timed out" so
// matcher code can be exercised in tests without constructing one.
type Clock struct {
	done <-chan struct{}
}

// NewClock derives a Clock from ctx. When ctx carries a deadline (for
// example one the caller of Rewrite set with context.WithTimeout), the
// returned Clock starts reporting TimedOut once the deadline passes.
func NewClock(ctx context.Context) *Clock {
	if ctx == nil {
		return nil
	}
	return &Clock{done: ctx.Done()}
}

// TimedOut reports whether the deadline backing this Clock has elapsed.
func (c *Clock) TimedOut() bool {
	if c == nil || c.done == nil {
		return false
	}
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
