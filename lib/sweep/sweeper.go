// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package sweep

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cachesweep/cachesweep/lib/artifact"
	"github.com/cachesweep/cachesweep/lib/policy"
	"github.com/cachesweep/cachesweep/lib/profile"
)

// Sweeper applies a keep-set to a profile: every entry in a tracked
// directory whose extracted identity is outside the keep-set is
// removed (or, in dry-run mode, only counted). Entries with no
// extractable identity are never touched, whatever the keep-set says.
type Sweeper struct {
	// Log receives removal diagnostics and deletion-failure warnings.
	// Nil discards them.
	Log *slog.Logger

	// DryRun counts bytes without deleting anything.
	DryRun bool
}

// Sweep processes every tracked directory of the profile and returns
// the bytes that were (or would be) freed. A deletion failure on one
// entry is logged and does not abort the rest of the sweep; an
// unreadable tracked directory does, leaving remaining profiles to
// the caller.
func (s *Sweeper) Sweep(p *profile.Profile, keep policy.KeepSet) (uint64, error) {
	var freed uint64
	for _, dir := range p.TrackedDirs() {
		n, err := s.sweepDir(dir, keep)
		if err != nil {
			return freed, err
		}
		freed += n
	}
	return freed, nil
}

func (s *Sweeper) sweepDir(dir string, keep policy.KeepSet) (uint64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("sweeping %s: %w", dir, err)
	}

	var freed uint64
	for _, entry := range entries {
		identity, ok := artifact.ExtractIdentity(entry.Name())
		if !ok || keep.Contains(identity) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		var size uint64
		if entry.IsDir() {
			size = profile.TreeSize(path)
		} else {
			info, err := entry.Info()
			if err != nil {
				s.logger().Warn("failed to stat", "path", path, "error", err)
				continue
			}
			size = uint64(info.Size())
		}
		freed += size

		if s.DryRun {
			s.logger().Debug("would remove", "path", path, "bytes", size)
			continue
		}

		if entry.IsDir() {
			err = os.RemoveAll(path)
		} else {
			err = os.Remove(path)
		}
		if err != nil {
			s.logger().Warn("failed to remove", "path", path, "error", err)
			continue
		}
		s.logger().Debug("removed", "path", path, "bytes", size)
	}
	return freed, nil
}

func (s *Sweeper) logger() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.New(slog.DiscardHandler)
}
