// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

// Package artifact defines the unit identity embedded in cargo build
// artifact names and the codec that extracts it.
//
// A compiled unit leaves fragments in several sibling directories of a
// build profile (.fingerprint metadata, build script output, deps
// libraries, loose files at the profile root). All fragments share a
// 16-character hexadecimal suffix in their filenames; [ExtractIdentity]
// recovers it so the fragments can be correlated into one logical unit.
package artifact
