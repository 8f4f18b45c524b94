// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package fingerprint

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cachesweep/cachesweep/lib/artifact"
)

// ErrNoRecord reports that a unit directory holds no parseable
// fingerprint record. Callers must treat this as "retain the unit by
// default", never as a failure that aborts a scan.
var ErrNoRecord = errors.New("no fingerprint record")

// record mirrors the slice of cargo's fingerprint JSON this tool
// cares about. Every other field is ignored.
type record struct {
	Rustc *uint64 `json:"rustc"`
}

// LoadRecord returns the toolchain identity recorded for the unit
// whose fingerprint directory is unitDir. Candidate files are the
// directory's immediate .json entries; the first one that parses with
// a rustc field wins. When none does, the error wraps [ErrNoRecord].
func LoadRecord(unitDir string) (uint64, error) {
	entries, err := os.ReadDir(unitDir)
	if err != nil {
		return 0, fmt.Errorf("reading unit directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		contents, err := os.ReadFile(filepath.Join(unitDir, entry.Name()))
		if err != nil {
			continue
		}
		var rec record
		if err := json.Unmarshal(contents, &rec); err != nil || rec.Rustc == nil {
			continue
		}
		return *rec.Rustc, nil
	}

	return 0, fmt.Errorf("%w in %s", ErrNoRecord, unitDir)
}

// Unit is one compiled unit's fingerprint directory together with the
// identity extracted from the directory name.
type Unit struct {
	// Dir is the unit's subdirectory under the profile's marker
	// directory.
	Dir string

	// Identity is the hash shared by every on-disk fragment of the
	// unit.
	Identity artifact.Identity
}

// Units enumerates the compiled units tracked under markerDir: the
// immediate subdirectories whose names carry an extractable identity.
// Entries without one are not units and are skipped.
func Units(markerDir string) ([]Unit, error) {
	entries, err := os.ReadDir(markerDir)
	if err != nil {
		return nil, fmt.Errorf("reading fingerprint directory: %w", err)
	}

	var units []Unit
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		identity, ok := artifact.ExtractIdentity(entry.Name())
		if !ok {
			continue
		}
		units = append(units, Unit{
			Dir:      filepath.Join(markerDir, entry.Name()),
			Identity: identity,
		})
	}
	return units, nil
}
