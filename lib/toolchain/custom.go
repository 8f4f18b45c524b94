// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package toolchain

import "strings"

// IsCustom reports whether a toolchain name looks like a locally
// linked toolchain rather than one distributed through release
// channels. Distributed names start with a channel (stable, beta,
// nightly) or a version number like "1.74" or "1.74.0", optionally
// followed by a date or host triple. Anything else is assumed to be
// custom, and a custom toolchain is allowed to fail version queries:
// local builds come and go without the cache caring.
func IsCustom(name string) bool {
	if name == "" {
		// Unsure is not custom: an empty name gets no failure
		// tolerance.
		return false
	}
	channel, _, _ := strings.Cut(name, "-")
	switch channel {
	case "stable", "beta", "nightly":
		return false
	}
	return !isVersion(channel)
}

// isVersion matches two or three dot-separated runs of digits.
func isVersion(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 2 && len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}
