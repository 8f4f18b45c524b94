// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"slices"
	"time"

	"github.com/cachesweep/cachesweep/lib/artifact"
	"github.com/cachesweep/cachesweep/lib/fingerprint"
	"github.com/cachesweep/cachesweep/lib/profile"
)

// staleUnit is one eviction candidate in the global ordering: a unit,
// its staleness, its aggregate size, and the plan it belongs to.
type staleUnit struct {
	elapsed  time.Duration
	size     uint64
	marker   string
	identity artifact.Identity
	plan     int
}

// planSize computes keep-sets for the global size budget. The total is
// measured over the whole root tree before any sweep, so every profile
// sees the same pre-eviction baseline. Units are ordered stalest-first
// and marked for eviction (by omission from their profile's keep-set)
// until the accumulated savings would cover the excess; every unit
// more recent than that point is kept.
//
// Ties in staleness break by size, then marker path, then identity.
// The ordering carries no meaning beyond determinism.
func (pl *Planner) planSize(pol BySize, root string, profiles []*profile.Profile) []ProfilePlan {
	total := profile.TreeSize(root)
	if total <= pol.TargetBytes {
		pl.logger().Debug("tree within size budget",
			"root", root, "total", total, "target", pol.TargetBytes)
		return nil
	}
	excess := total - pol.TargetBytes
	pl.logger().Debug("tree over size budget",
		"root", root, "total", total, "target", pol.TargetBytes, "excess", excess)

	// Every surviving profile starts with an empty keep-set: units
	// not explicitly retained below are evicted.
	var plans []ProfilePlan
	var candidates []staleUnit
	for _, p := range profiles {
		sizes, err := profile.SizeIndex(p)
		if err != nil {
			pl.logger().Error("skipping profile", "profile", p.Root, "error", err)
			continue
		}
		units, err := fingerprint.Units(p.MarkerDir())
		if err != nil {
			pl.logger().Error("skipping profile", "profile", p.Root, "error", err)
			continue
		}

		planIndex := len(plans)
		plans = append(plans, ProfilePlan{Profile: p, Keep: NewKeepSet()})
		skipped := false
		for _, unit := range units {
			elapsed, err := fingerprint.LastUsed(pl.clock(), unit.Dir)
			if err != nil {
				pl.logger().Error("skipping profile", "profile", p.Root, "error", err)
				skipped = true
				break
			}
			candidates = append(candidates, staleUnit{
				elapsed:  elapsed,
				size:     sizes[unit.Identity],
				marker:   p.MarkerDir(),
				identity: unit.Identity,
				plan:     planIndex,
			})
		}
		if skipped {
			// Drop the half-built plan and its candidates so the
			// profile is left untouched rather than swept empty.
			candidates = candidates[:firstCandidateOf(candidates, planIndex)]
			plans = plans[:planIndex]
		}
	}

	slices.SortFunc(candidates, func(a, b staleUnit) int {
		if a.elapsed != b.elapsed {
			if a.elapsed < b.elapsed {
				return -1
			}
			return 1
		}
		if a.size != b.size {
			if a.size < b.size {
				return -1
			}
			return 1
		}
		if a.marker != b.marker {
			if a.marker < b.marker {
				return -1
			}
			return 1
		}
		if a.identity != b.identity {
			if a.identity < b.identity {
				return -1
			}
			return 1
		}
		return 0
	})

	// Walk from the stalest end. Units are evicted while the running
	// total still falls short of the excess; the first unit whose
	// size would reach it is kept, along with everything fresher.
	var freed uint64
	for i := len(candidates) - 1; i >= 0; i-- {
		candidate := candidates[i]
		if freed+candidate.size < excess {
			freed += candidate.size
			pl.logger().Debug("marking unit for eviction",
				"identity", candidate.identity, "size", candidate.size,
				"last_used", candidate.elapsed)
			continue
		}
		plans[candidate.plan].Keep.Add(candidate.identity)
	}
	return plans
}

// firstCandidateOf returns the index of the first candidate belonging
// to planIndex, or len(candidates) when none does.
func firstCandidateOf(candidates []staleUnit, planIndex int) int {
	for i, candidate := range candidates {
		if candidate.plan == planIndex {
			return i
		}
	}
	return len(candidates)
}
