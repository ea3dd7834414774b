// File: tevent/tevent.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// EventContext holds the dispatch state: a FIFO of immediate events and
// per-context counters. Loop primitives return integer status codes, 0 on
// success, so callers keep the tevent-style contract.

package tevent

import (
	"sync"

	"github.com/eapache/queue"
)

// immediateEvent is a run-once callback queued for the next loop iteration.
type immediateEvent struct {
	fn func()
}

// EventContext is an opaque handle over the dispatch state. Contexts share
// nothing; each owns its queue and counters.
type EventContext struct {
	mu         sync.Mutex
	pending    *queue.Queue
	maxPending int
	closed     bool
	stats      Stats
}

// NewEventContext creates a fresh context with an empty event queue.
// It never returns nil.
func NewEventContext(opts ...Option) *EventContext {
	ec := &EventContext{
		pending: queue.New(),
	}
	for _, opt := range opts {
		opt(ec)
	}
	return ec
}

// ScheduleImmediate queues fn to run on a subsequent loop iteration.
// Events run in FIFO order, one per iteration.
func (ec *EventContext) ScheduleImmediate(fn func()) error {
	if fn == nil {
		return ErrNilCallback
	}
	ec.mu.Lock()
	defer ec.mu.Unlock()
	if ec.closed {
		return ErrContextClosed
	}
	if ec.maxPending > 0 && ec.pending.Length() >= ec.maxPending {
		return ErrTooManyPending
	}
	ec.pending.Add(immediateEvent{fn: fn})
	return nil
}

// Pending returns the number of queued immediate events.
func (ec *EventContext) Pending() int {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return ec.pending.Length()
}

// LoopOnce runs one bounded dispatch iteration: the oldest pending
// immediate event if any, otherwise a single zero-timeout kernel poll
// step. It never blocks. Returns StatusOK (0) on success.
func (ec *EventContext) LoopOnce() int {
	ec.mu.Lock()
	if ec.closed {
		ec.mu.Unlock()
		return StatusClosed
	}
	ec.stats.Iterations++
	var ev immediateEvent
	dispatch := ec.pending.Length() > 0
	if dispatch {
		ev = ec.pending.Remove().(immediateEvent)
	}
	ec.mu.Unlock()

	if !dispatch {
		return pollOnce()
	}

	// Callback runs outside the lock so it may schedule further events.
	ev.fn()

	ec.mu.Lock()
	ec.stats.Dispatched++
	ec.mu.Unlock()
	return StatusOK
}

// LoopWait dispatches pending events until none remain, then returns
// StatusOK (0). A fresh context with zero event sources returns 0
// immediately.
func (ec *EventContext) LoopWait() int {
	for {
		ec.mu.Lock()
		if ec.closed {
			ec.mu.Unlock()
			return StatusClosed
		}
		drained := ec.pending.Length() == 0
		ec.mu.Unlock()

		if drained {
			return StatusOK
		}
		if st := ec.LoopOnce(); st != StatusOK {
			return st
		}
	}
}

// Close releases the context. Pending events are discarded without
// running; further operations fail.
func (ec *EventContext) Close() error {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	if ec.closed {
		return ErrContextClosed
	}
	ec.closed = true
	for ec.pending.Length() > 0 {
		ec.pending.Remove()
	}
	return nil
}
