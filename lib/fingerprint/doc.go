// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

// Package fingerprint reads the per-unit metadata cargo writes under a
// profile's .fingerprint directory.
//
// Each compiled unit owns one subdirectory there, named with the
// unit's identity hash. Inside it, cargo stores a small JSON record
// whose rustc field is the 64-bit identity of the toolchain that built
// the unit. Many legitimate outputs lack a parseable record; loading
// reports [ErrNoRecord] for those and callers retain the unit rather
// than treating the absence as a failure.
//
// The package also derives a unit's last-used time: the most recent
// access time among the entries of its fingerprint subdirectory, which
// cargo touches on every build that consults the unit.
package fingerprint
