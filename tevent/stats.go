// File: tevent/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-context dispatch counters for runtime introspection.

package tevent

// Stats holds dispatch counters for one EventContext.
type Stats struct {
	Iterations uint64 // loop iterations run
	Dispatched uint64 // immediate events dispatched
}

// Stats returns a snapshot of the context counters.
func (ec *EventContext) Stats() Stats {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return ec.stats
}
