// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package sweep

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cachesweep/cachesweep/lib/artifact"
	"github.com/cachesweep/cachesweep/lib/clock"
	"github.com/cachesweep/cachesweep/lib/policy"
	"github.com/cachesweep/cachesweep/lib/profile"
	"github.com/cachesweep/cachesweep/lib/testutil"
)

const record = `{"rustc":1}`

// addUnit scaffolds one unit under the profile: a fingerprint
// directory holding a record, touched at the given instant, plus a
// deps artifact of the given size.
func addUnit(t *testing.T, p *profile.Profile, name string, identity artifact.Identity, touched time.Time, depsSize int) {
	t.Helper()
	recordPath := filepath.Join(p.MarkerDir(), name+"-"+string(identity), "lib-"+name+".json")
	testutil.WriteFileString(t, recordPath, record)
	testutil.SetTimes(t, recordPath, touched)
	testutil.WriteFile(t, filepath.Join(p.Root, "deps", "lib"+name+"-"+string(identity)+".rlib"), depsSize)
}

func newProfile(t *testing.T, root, name string) *profile.Profile {
	t.Helper()
	p := &profile.Profile{Root: filepath.Join(root, "target", name)}
	testutil.MkdirAll(t, p.MarkerDir())
	return p
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestSweepRemovesEvictedUnits(t *testing.T) {
	root := t.TempDir()
	p := newProfile(t, root, "debug")
	now := time.Now()

	addUnit(t, p, "kept", "aaaaaaaaaaaaaaaa", now, 10)
	addUnit(t, p, "gone", "bbbbbbbbbbbbbbbb", now, 20)

	keep := policy.NewKeepSet()
	keep.Add("aaaaaaaaaaaaaaaa")

	sweeper := &Sweeper{}
	freed, err := sweeper.Sweep(p, keep)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	want := uint64(20 + len(record))
	if freed != want {
		t.Errorf("freed = %d, want %d", freed, want)
	}

	if !exists(filepath.Join(p.Root, "deps", "libkept-aaaaaaaaaaaaaaaa.rlib")) {
		t.Error("kept artifact was removed")
	}
	if exists(filepath.Join(p.Root, "deps", "libgone-bbbbbbbbbbbbbbbb.rlib")) {
		t.Error("evicted artifact survived")
	}
	if exists(filepath.Join(p.MarkerDir(), "gone-bbbbbbbbbbbbbbbb")) {
		t.Error("evicted fingerprint directory survived")
	}
}

func TestSweepLeavesNonIdentityEntries(t *testing.T) {
	root := t.TempDir()
	p := newProfile(t, root, "debug")
	addUnit(t, p, "gone", "bbbbbbbbbbbbbbbb", time.Now(), 20)

	tag := filepath.Join(p.Root, "deps", "CACHEDIR.TAG")
	testutil.WriteFileString(t, tag, "Signature: 8a477f597d28d172789f06886806bc55")
	lock := filepath.Join(p.Root, ".cargo-lock")
	testutil.WriteFileString(t, lock, "")

	sweeper := &Sweeper{}
	if _, err := sweeper.Sweep(p, policy.NewKeepSet()); err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	if !exists(tag) {
		t.Error("entry without an identity suffix was removed")
	}
	if !exists(lock) {
		t.Error("lock file was removed")
	}
}

func TestSweepDryRunParity(t *testing.T) {
	root := t.TempDir()
	p := newProfile(t, root, "debug")
	now := time.Now()
	addUnit(t, p, "kept", "aaaaaaaaaaaaaaaa", now, 10)
	addUnit(t, p, "gone", "bbbbbbbbbbbbbbbb", now, 20)

	keep := policy.NewKeepSet()
	keep.Add("aaaaaaaaaaaaaaaa")

	dry := &Sweeper{DryRun: true}
	dryFreed, err := dry.Sweep(p, keep)
	if err != nil {
		t.Fatalf("dry-run Sweep: %v", err)
	}
	if !exists(filepath.Join(p.Root, "deps", "libgone-bbbbbbbbbbbbbbbb.rlib")) {
		t.Fatal("dry run deleted an artifact")
	}

	live := &Sweeper{}
	liveFreed, err := live.Sweep(p, keep)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if dryFreed != liveFreed {
		t.Errorf("dry-run freed %d bytes, live sweep freed %d", dryFreed, liveFreed)
	}
}

func TestRunByAge(t *testing.T) {
	root := t.TempDir()
	p := newProfile(t, root, "debug")
	now := time.Now()

	addUnit(t, p, "fresh", "aaaaaaaaaaaaaaaa", now, 10)
	addUnit(t, p, "old", "bbbbbbbbbbbbbbbb", now.Add(-100*24*time.Hour), 20)

	runner := &Runner{Clock: clock.Real()}
	freed, err := runner.Run(root, policy.ByAge{Cutoff: 30 * 24 * time.Hour})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := uint64(20 + len(record))
	if freed != want {
		t.Errorf("freed = %d, want %d", freed, want)
	}

	// A second pass finds nothing left to evict.
	freed, err = runner.Run(root, policy.ByAge{Cutoff: 30 * 24 * time.Hour})
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if freed != 0 {
		t.Errorf("second run freed %d bytes, want 0", freed)
	}
	if !exists(filepath.Join(p.Root, "deps", "libfresh-aaaaaaaaaaaaaaaa.rlib")) {
		t.Error("fresh artifact was removed")
	}
}

func TestRunDefaultsToRealClock(t *testing.T) {
	root := t.TempDir()
	p := newProfile(t, root, "debug")
	addUnit(t, p, "fresh", "aaaaaaaaaaaaaaaa", time.Now(), 10)
	addUnit(t, p, "old", "bbbbbbbbbbbbbbbb", time.Now().Add(-100*24*time.Hour), 20)

	// The zero Runner carries no Clock; age planning must still run.
	runner := &Runner{}
	freed, err := runner.Run(root, policy.ByAge{Cutoff: 30 * 24 * time.Hour})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if want := uint64(20 + len(record)); freed != want {
		t.Errorf("freed = %d, want %d", freed, want)
	}
}

func TestRunMissingRoot(t *testing.T) {
	runner := &Runner{}
	if _, err := runner.Run(filepath.Join(t.TempDir(), "absent"), policy.ByAge{Cutoff: time.Hour}); err == nil {
		t.Fatal("Run on a missing root succeeded")
	}
}

func TestStampRoundTrip(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	clk := clock.Fake(now)

	if err := WriteStamp(root, clk); err != nil {
		t.Fatalf("WriteStamp: %v", err)
	}
	clk.Advance(90 * time.Minute)

	elapsed, err := LoadStamp(root, clk)
	if err != nil {
		t.Fatalf("LoadStamp: %v", err)
	}
	if elapsed != 90*time.Minute {
		t.Errorf("elapsed = %v, want 90m", elapsed)
	}
	if exists(filepath.Join(root, StampName)) {
		t.Error("stamp file survived LoadStamp")
	}
	if _, err := LoadStamp(root, clk); err == nil {
		t.Error("second LoadStamp succeeded on a consumed stamp")
	}
}

func TestStampFromFutureClampsToZero(t *testing.T) {
	root := t.TempDir()
	clk := clock.Fake(time.Now())

	if err := WriteStamp(root, clk); err != nil {
		t.Fatalf("WriteStamp: %v", err)
	}
	clk.Advance(-time.Hour)

	elapsed, err := LoadStamp(root, clk)
	if err != nil {
		t.Fatalf("LoadStamp: %v", err)
	}
	if elapsed != 0 {
		t.Errorf("elapsed = %v, want 0", elapsed)
	}
}
