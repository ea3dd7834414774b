// File: tevent/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options for EventContext construction.

package tevent

// Option customizes a new EventContext.
type Option func(*EventContext)

// WithMaxPending bounds the immediate-event queue. ScheduleImmediate
// fails with ErrTooManyPending once the bound is reached. Zero or
// negative means unbounded (the default).
func WithMaxPending(n int) Option {
	return func(ec *EventContext) {
		ec.maxPending = n
	}
}
