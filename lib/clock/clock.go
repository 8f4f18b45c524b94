// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts time reads for testability. Production code injects
// Real(); tests inject Fake() with deterministic time control.
//
// Every production function that calls time.Now or time.Since should
// accept a Clock parameter (or be a method on a struct with a Clock
// field) instead of calling the time package directly. The sweeper
// never sleeps or schedules, so the interface is read-only.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Since returns the time elapsed since t. Equivalent to
	// Now().Sub(t).
	Since(t time.Time) time.Duration
}
