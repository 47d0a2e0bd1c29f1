package loop

import "sync/atomic"

// Cancellable is an opaque handle for a scheduled one-shot task.
// Cancel is idempotent and safe from any goroutine; a task observes
// cancellation before it starts, never mid-run.
type Cancellable struct {
	key       string
	cancelled atomic.Bool
	stop      func() bool
}

// Key returns the schedule's name.
func (c *Cancellable) Key() string {
	return c.key
}

// Cancel prevents the task from running if it has not started yet.
func (c *Cancellable) Cancel() {
	if c == nil {
		return
	}
	if c.cancelled.Swap(true) {
		return
	}
	if c.stop != nil {
		c.stop()
	}
}

// Cancelled reports whether Cancel has been called.
func (c *Cancellable) Cancelled() bool {
	if c == nil {
		return false
	}
	return c.cancelled.Load()
}
