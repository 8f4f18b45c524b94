// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package sweep

import (
	"log/slog"

	"github.com/cachesweep/cachesweep/lib/clock"
	"github.com/cachesweep/cachesweep/lib/policy"
	"github.com/cachesweep/cachesweep/lib/profile"
)

// Runner ties discovery, planning, and sweeping together for a single
// cache root.
type Runner struct {
	// Log receives per-profile diagnostics. Nil discards them.
	Log *slog.Logger

	// Clock supplies elapsed-time measurements for age planning.
	// Nil means the real clock.
	Clock clock.Clock

	// DryRun plans and reports without deleting anything.
	DryRun bool
}

// Run locates every build profile under root, plans it against the
// policy, and sweeps each plan. A profile that fails to sweep is
// logged and skipped; the remaining profiles still run. The returned
// count is the total bytes freed (or, in dry-run mode, that would
// have been freed).
func (r *Runner) Run(root string, pol policy.Policy) (uint64, error) {
	profiles, err := profile.Locate(root)
	if err != nil {
		return 0, err
	}

	planner := &policy.Planner{Log: r.Log, Clock: r.Clock}
	plans := planner.Plan(pol, root, profiles)

	sweeper := &Sweeper{Log: r.Log, DryRun: r.DryRun}
	var freed uint64
	for _, plan := range plans {
		n, err := sweeper.Sweep(plan.Profile, plan.Keep)
		freed += n
		if err != nil {
			r.logger().Error("profile sweep failed", "profile", plan.Profile.Root, "error", err)
		}
	}
	return freed, nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.New(slog.DiscardHandler)
}
