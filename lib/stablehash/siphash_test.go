// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package stablehash

import "testing"

// Reference vector from the SipHash paper's test suite: SipHash-2-4
// of the empty input under the key 0x0f0e0d0c0b0a09080706050403020100.
func TestSip24ReferenceVector(t *testing.T) {
	const k0 = 0x0706050403020100
	const k1 = 0x0f0e0d0c0b0a0908

	got := sip24(k0, k1, nil)
	const want = uint64(0x726fdb47dd0e0e31)
	if got != want {
		t.Errorf("sip24(reference key, empty) = %#x, want %#x", got, want)
	}
}

// Golden values computed with the Rust implementations cargo uses:
// std::hash::SipHasher for the legacy scheme and
// rustc_stable_hash::StableSipHasher128 (Hasher::finish folds the two
// output words as first*3 + second) for the current one, both hashing
// the banner as a str.
func TestSchemesMatchRustReference(t *testing.T) {
	const banner = "rustc 1.85.0 (4d91de4e4 2025-02-17)\nbinary: rustc\n"

	if got, want := Legacy(banner), uint64(0x737cd1321f9a3bd8); got != want {
		t.Errorf("Legacy(banner) = %#x, want %#x", got, want)
	}
	if got, want := Current(banner), uint64(0xb00fd6196aaf9879); got != want {
		t.Errorf("Current(banner) = %#x, want %#x", got, want)
	}
}

func TestSchemesAreDeterministic(t *testing.T) {
	const input = "rustc 1.85.0 (4d91de4e4 2025-02-17)\nbinary: rustc\n"

	if Legacy(input) != Legacy(input) {
		t.Error("Legacy is not deterministic")
	}
	if Current(input) != Current(input) {
		t.Error("Current is not deterministic")
	}
}

func TestSchemesDiffer(t *testing.T) {
	// The two historical schemes must not collide on real version
	// strings, otherwise checking both would be pointless.
	const input = "rustc 1.85.0 (4d91de4e4 2025-02-17)\nbinary: rustc\n"
	if Legacy(input) == Current(input) {
		t.Errorf("Legacy and Current agree on %q", input)
	}
}

func TestDistinctInputsDistinctHashes(t *testing.T) {
	inputs := []string{
		"",
		"rustc 1.84.0\n",
		"rustc 1.85.0\n",
		"rustc 1.85.0",
		"rustc 1.85.1\n",
	}

	legacySeen := make(map[uint64]string)
	currentSeen := make(map[uint64]string)
	for _, input := range inputs {
		if prior, dup := legacySeen[Legacy(input)]; dup {
			t.Errorf("Legacy collision between %q and %q", prior, input)
		}
		legacySeen[Legacy(input)] = input

		if prior, dup := currentSeen[Current(input)]; dup {
			t.Errorf("Current collision between %q and %q", prior, input)
		}
		currentSeen[Current(input)] = input
	}
}

func TestTerminatorSeparatesPrefixes(t *testing.T) {
	// The 0xFF terminator makes "ab" hash differently from "ab" as a
	// prefix of longer data fed in one write. Directly: hashing "a"
	// must differ from hashing "a\xff" without the convention applied.
	if Legacy("a") == sip24(0, 0, []byte("a")) {
		t.Error("terminator byte had no effect on Legacy")
	}
	first, second := sip13x128(0, 0, []byte("a"))
	if Current("a") == first*3+second {
		t.Error("terminator byte had no effect on Current")
	}
}

func TestSip13x128BothWordsPopulated(t *testing.T) {
	first, second := sip13x128(0, 0, []byte("input"))
	if first == second {
		t.Errorf("finalization produced identical words %#x", first)
	}
}
