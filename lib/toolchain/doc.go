// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

// Package toolchain resolves installed Rust toolchains to the
// compiler identity hashes recorded in build fingerprints. It wraps
// the rustc and rustup binaries behind a Runner interface so tests
// can substitute canned process output.
package toolchain
