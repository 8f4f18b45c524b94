// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"github.com/cachesweep/cachesweep/lib/fingerprint"
	"github.com/cachesweep/cachesweep/lib/profile"
)

// planToolchain keeps every unit whose fingerprint names a retained
// toolchain. Units with no loadable record are kept: files without
// the data we need are not ours to reclaim.
func (pl *Planner) planToolchain(pol ByToolchain, p *profile.Profile) (KeepSet, error) {
	units, err := fingerprint.Units(p.MarkerDir())
	if err != nil {
		return nil, err
	}

	keep := NewKeepSet()
	for _, unit := range units {
		toolchain, err := fingerprint.LoadRecord(unit.Dir)
		if err != nil {
			pl.logger().Debug("no usable fingerprint record, keeping unit",
				"unit", unit.Dir, "error", err)
			keep.Add(unit.Identity)
			continue
		}
		if _, retained := pol.Identities[toolchain]; retained {
			keep.Add(unit.Identity)
		}
	}
	pl.logger().Debug("planned by toolchain", "profile", p.Root, "kept", len(keep))
	return keep, nil
}
