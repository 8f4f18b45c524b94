// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cachesweep/cachesweep/lib/artifact"
	"github.com/cachesweep/cachesweep/lib/clock"
	"github.com/cachesweep/cachesweep/lib/profile"
)

// KeepSet is the set of unit identities one sweep retains in one
// profile. Produced fresh per run, never persisted.
type KeepSet map[artifact.Identity]struct{}

// NewKeepSet returns a keep-set seeded with the sentinel identity,
// which no policy may evict.
func NewKeepSet() KeepSet {
	return KeepSet{artifact.Sentinel: {}}
}

// Add marks an identity as retained.
func (k KeepSet) Add(identity artifact.Identity) { k[identity] = struct{}{} }

// Contains reports whether the identity is retained.
func (k KeepSet) Contains(identity artifact.Identity) bool {
	_, ok := k[identity]
	return ok
}

// Policy selects which units a sweep retains. The three variants form
// a sealed union: [Planner.Plan] type-switches over them exhaustively,
// so adding a variant is a compile-visible change in exactly one
// place.
type Policy interface {
	isPolicy()
}

// ByToolchain retains units whose fingerprint records a toolchain in
// Identities, and units whose record cannot be loaded (fail-open).
type ByToolchain struct {
	// Identities holds the 64-bit toolchain hashes to keep, under
	// both historical hashing schemes, plus the zero sentinel.
	Identities map[uint64]struct{}
}

// ByAge retains units last used more recently than Cutoff.
type ByAge struct {
	Cutoff time.Duration
}

// BySize evicts the stalest units across every profile under a root
// until the tree fits within TargetBytes. Granularity is per-unit,
// not byte-exact.
type BySize struct {
	TargetBytes uint64
}

func (ByToolchain) isPolicy() {}
func (ByAge) isPolicy()       {}
func (BySize) isPolicy()      {}

// ProfilePlan pairs one profile with the keep-set a policy computed
// for it. The sweeper deletes everything outside the keep-set.
type ProfilePlan struct {
	Profile *profile.Profile
	Keep    KeepSet
}

// Planner computes keep-sets. It only classifies; deletion is the
// sweeper's job.
type Planner struct {
	// Log receives per-profile failures and planning diagnostics.
	// Nil discards them.
	Log *slog.Logger

	// Clock supplies the present for elapsed-time computations.
	// Nil means the real clock.
	Clock clock.Clock
}

// Plan computes one ProfilePlan per profile under root. A profile
// whose tracked directories cannot be read is reported and skipped —
// its artifacts are left alone — while the remaining profiles are
// still planned. BySize may return no plans at all when the tree is
// already within budget.
func (pl *Planner) Plan(pol Policy, root string, profiles []*profile.Profile) []ProfilePlan {
	switch pol := pol.(type) {
	case ByToolchain:
		return pl.planPerProfile(profiles, func(p *profile.Profile) (KeepSet, error) {
			return pl.planToolchain(pol, p)
		})
	case ByAge:
		return pl.planPerProfile(profiles, func(p *profile.Profile) (KeepSet, error) {
			return pl.planAge(pol, p)
		})
	case BySize:
		return pl.planSize(pol, root, profiles)
	default:
		panic(fmt.Sprintf("policy: unknown policy variant %T", pol))
	}
}

// planPerProfile applies an independent per-profile planner, skipping
// profiles that fail with a report.
func (pl *Planner) planPerProfile(profiles []*profile.Profile, plan func(*profile.Profile) (KeepSet, error)) []ProfilePlan {
	plans := make([]ProfilePlan, 0, len(profiles))
	for _, p := range profiles {
		keep, err := plan(p)
		if err != nil {
			pl.logger().Error("skipping profile", "profile", p.Root, "error", err)
			continue
		}
		plans = append(plans, ProfilePlan{Profile: p, Keep: keep})
	}
	return plans
}

func (pl *Planner) clock() clock.Clock {
	if pl.Clock != nil {
		return pl.Clock
	}
	return clock.Real()
}

func (pl *Planner) logger() *slog.Logger {
	if pl.Log != nil {
		return pl.Log
	}
	return slog.New(slog.DiscardHandler)
}
