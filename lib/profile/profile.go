// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import "path/filepath"

// MarkerName is the directory name that makes its parent a build
// profile. Cargo creates it per profile (debug, release, custom) to
// track unit fingerprints.
const MarkerName = ".fingerprint"

// Tracked sibling directories of a profile. examples and incremental
// are not fingerprint-tracked and are deliberately absent; native has
// not been generated since Rust 1.37 but old trees still carry it.
const (
	buildDirName  = "build"
	depsDirName   = "deps"
	nativeDirName = "native"
)

// Profile is one build configuration's output directory: the immediate
// parent of a .fingerprint marker directory. Profiles are discovered,
// never created; the struct is a path with the layout contract
// attached.
type Profile struct {
	// Root is the profile directory (e.g. target/debug).
	Root string
}

// MarkerDir returns the profile's fingerprint-tracking directory.
func (p *Profile) MarkerDir() string {
	return filepath.Join(p.Root, MarkerName)
}

// TrackedDirs lists every directory whose hashed entries belong to the
// profile's units: build script outputs, deps artifacts, the legacy
// native directory, loose files at the profile root, and the marker
// directory itself. The marker comes last so that a sweep interrupted
// midway still has metadata for the units whose artifacts survived.
func (p *Profile) TrackedDirs() []string {
	return []string{
		filepath.Join(p.Root, buildDirName),
		filepath.Join(p.Root, depsDirName),
		filepath.Join(p.Root, nativeDirName),
		p.Root,
		p.MarkerDir(),
	}
}
