// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

// Package stablehash computes the 64-bit toolchain identities cargo
// records in fingerprint files.
//
// A fingerprint names the toolchain that built a unit by hashing the
// toolchain's verbose version string. Two hashing schemes exist in the
// wild: fingerprints written before Rust 1.85 used the standard
// library's SipHash-2-4 with zero keys ([Legacy]), later ones use
// rustc's stable hasher, SipHash-1-3 with the reference 128-bit
// finalization truncated to its first word ([Current]). Artifacts on
// disk may have been written by either scheme, so callers hash with
// both and match against both results.
//
// Both schemes hash the version string the way Rust hashes a str: the
// raw bytes followed by a single 0xFF terminator byte.
package stablehash
