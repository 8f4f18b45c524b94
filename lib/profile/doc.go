// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

// Package profile models cargo build profiles on disk and the disk
// usage accounting over them.
//
// A profile is any directory that owns a .fingerprint marker
// subdirectory — target/debug and target/release in the common case.
// [Locate] finds every profile under a root, [Projects] finds cargo
// project roots for recursive runs, and [SizeIndex] attributes the
// bytes in a profile's tracked directories to unit identities so
// policies can weigh eviction candidates.
package profile
