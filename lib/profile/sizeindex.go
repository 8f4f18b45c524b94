// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cachesweep/cachesweep/lib/artifact"
)

// SizeIndex computes the aggregate byte count per unit identity across
// all of the profile's tracked directories. A file contributes its own
// length, a directory the recursive sum of the regular files beneath
// it. Entries without an extractable identity are ignored. Missing
// optional tracked directories are skipped; an unreadable one is a
// profile-fatal error.
func SizeIndex(p *Profile) (map[artifact.Identity]uint64, error) {
	index := make(map[artifact.Identity]uint64)
	for _, dir := range p.TrackedDirs() {
		if err := indexDir(dir, index); err != nil {
			return nil, err
		}
	}
	return index, nil
}

func indexDir(dir string, index map[artifact.Identity]uint64) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("sizing %s: %w", dir, err)
	}

	for _, entry := range entries {
		identity, ok := artifact.ExtractIdentity(entry.Name())
		if !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			index[identity] += TreeSize(path)
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		index[identity] += uint64(info.Size())
	}
	return nil
}

// TreeSize returns the total byte count of the regular files under
// dir, recursively. Entries that vanish or cannot be read mid-walk
// are counted as zero — the figure feeds a threshold decision, not an
// audit.
func TreeSize(dir string) uint64 {
	var total uint64
	_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.Type().IsRegular() {
			if info, err := entry.Info(); err == nil {
				total += uint64(info.Size())
			}
		}
		return nil
	})
	return total
}
