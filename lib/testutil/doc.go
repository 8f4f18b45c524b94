// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for cachesweep
// packages: filesystem tree scaffolding with sized files and pinned
// access times, for building fake build profiles in t.TempDir().
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no cachesweep-internal dependencies.
package testutil
