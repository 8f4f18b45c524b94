// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for testability.
//
// Production code accepts a Clock interface parameter instead of calling
// time.Now or time.Since directly. In production, Real() provides the
// standard library behavior. In tests, Fake() provides a deterministic
// clock that moves only when Advance or Set is called.
//
// Add a Clock field to structs that read time:
//
//	type Planner struct {
//	    Clock clock.Clock
//	    // ...
//	}
//
// In production:
//
//	p := &Planner{Clock: clock.Real()}
//
// In tests:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	p := &Planner{Clock: c}
//	c.Advance(30 * 24 * time.Hour)
package clock
