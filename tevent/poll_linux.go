//go:build linux
// +build linux

// File: tevent/poll_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux poll(2) step for empty loop iterations.

package tevent

import "golang.org/x/sys/unix"

// pollOnce performs one zero-timeout poll with no descriptors registered,
// so it returns without blocking. EINTR counts as a clean pass.
func pollOnce() int {
	for {
		_, err := unix.Poll(nil, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return StatusPollFailed
		}
		return StatusOK
	}
}
