// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package fingerprint

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cachesweep/cachesweep/lib/clock"
)

// neverUsed is the elapsed time reported for a unit directory with no
// entries at all: a century, old enough that every age- or size-based
// policy treats the unit as maximally stale.
const neverUsed = 100 * 365 * 24 * time.Hour

// LastUsed returns how long ago the unit in unitDir was last consulted
// by a build: the minimum elapsed-since-access over the directory's
// immediate entries. An access in the future (clock skew, fake clocks)
// clamps to zero rather than going negative.
func LastUsed(clk clock.Clock, unitDir string) (time.Duration, error) {
	entries, err := os.ReadDir(unitDir)
	if err != nil {
		return 0, fmt.Errorf("reading unit directory: %w", err)
	}

	best := neverUsed
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return 0, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		elapsed := clk.Since(accessTime(filepath.Join(unitDir, entry.Name()), info))
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed < best {
			best = elapsed
		}
	}
	return best, nil
}
