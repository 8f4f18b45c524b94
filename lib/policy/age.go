// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"github.com/cachesweep/cachesweep/lib/fingerprint"
	"github.com/cachesweep/cachesweep/lib/profile"
)

// planAge keeps every unit touched more recently than the cutoff.
// The comparison is strict: with a zero cutoff nothing qualifies,
// since no elapsed time is ever below zero.
func (pl *Planner) planAge(pol ByAge, p *profile.Profile) (KeepSet, error) {
	units, err := fingerprint.Units(p.MarkerDir())
	if err != nil {
		return nil, err
	}

	keep := NewKeepSet()
	for _, unit := range units {
		lastUsed, err := fingerprint.LastUsed(pl.clock(), unit.Dir)
		if err != nil {
			return nil, err
		}
		if lastUsed < pol.Cutoff {
			keep.Add(unit.Identity)
		}
	}
	pl.logger().Debug("planned by age", "profile", p.Root, "cutoff", pol.Cutoff, "kept", len(keep))
	return keep, nil
}
