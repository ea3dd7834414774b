//go:build !linux
// +build !linux

// File: tevent/poll_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Poll step stub for platforms without poll(2); the dispatch step is
// purely queue-driven there.

package tevent

func pollOnce() int {
	return StatusOK
}
