// Package tevent
// Author: momentics <momentics@gmail.com>
//
// Minimal event-context dispatch layer modeled on Samba's tevent surface.
// An EventContext owns a FIFO of immediate events and exposes bounded
// loop primitives (LoopOnce, LoopWait) that keep tevent's integer-status
// contract: 0 means "no error, nothing left to dispatch".
//
// No file descriptor, timer or signal sources can be registered; the
// context dispatches queued immediates and performs a single zero-timeout
// kernel poll step per empty iteration. All state is per-context.
package tevent
