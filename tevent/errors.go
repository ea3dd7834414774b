// File: tevent/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error values and loop status codes for the tevent package.

package tevent

import "fmt"

// Errors returned by context operations.
var (
	ErrContextClosed  = fmt.Errorf("event context is closed")
	ErrNilCallback    = fmt.Errorf("nil immediate callback")
	ErrTooManyPending = fmt.Errorf("pending event queue is full")
)

// Status codes returned by the loop primitives. Zero is success, matching
// the tevent convention.
const (
	StatusOK = iota
	StatusClosed
	StatusPollFailed
)
