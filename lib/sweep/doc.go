// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

// Package sweep removes cache artifacts that a retention plan no
// longer keeps. The Sweeper applies one plan to one profile, the
// Runner drives discovery, planning, and sweeping for a whole cache
// root, and the stamp functions persist a reference point in time so
// a later sweep can target everything untouched since.
package sweep
