// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package artifact

// Identity is the 16-character hexadecimal content hash cargo embeds
// in the names of the files and directories belonging to one compiled
// unit. Everything carrying the same Identity across a profile's
// tracked directories belongs to the same unit and is kept or evicted
// as a group.
type Identity string

// Sentinel is the identity that hashes to numeric zero. Fingerprints
// written for build-script outputs claim to have been built by a
// toolchain that hashes to zero, so this identity is retained by every
// policy rather than swept as stale.
const Sentinel Identity = "0000000000000000"

// identityLength is the exact hash length cargo uses. Shorter or
// longer hex runs are project names with unfortunate spelling, not
// artifacts.
const identityLength = 16

// ExtractIdentity pulls the unit identity out of an artifact filename
// of the form ({prefix}-)?{name}-{16 char hex hash}(.{extension})?.
// It reports false for names that do not follow the form: extraction
// requires a dash actually separating the hash from a non-empty
// preceding name, exactly 16 characters after that dash, and every
// one of them a hex digit.
//
// Absence is an expected outcome, not an error — build directories
// are full of entries (markers, stamp files, final binaries) that are
// not tracked artifacts and must never be touched.
func ExtractIdentity(filename string) (Identity, bool) {
	// Cut everything from the first dot onward. Multi-dot names keep
	// only the leading segment, matching how cargo names the files it
	// tracks.
	stem := filename
	for i := 0; i < len(stem); i++ {
		if stem[i] == '.' {
			stem = stem[:i]
			break
		}
	}

	// The candidate hash is the text after the last dash. If no dash
	// is found the whole stem would be the candidate, which is never
	// an artifact.
	dash := -1
	for i := len(stem) - 1; i >= 0; i-- {
		if stem[i] == '-' {
			dash = i
			break
		}
	}
	if dash <= 0 {
		return "", false
	}

	candidate := stem[dash+1:]
	if len(candidate) != identityLength {
		return "", false
	}
	for i := 0; i < len(candidate); i++ {
		if !isHexDigit(candidate[i]) {
			return "", false
		}
	}
	return Identity(candidate), true
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
