// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cachesweep/cachesweep/lib/testutil"
)

// scaffold builds a minimal cache with one fresh and one stale unit
// and returns the project root.
func scaffold(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	marker := filepath.Join(root, "target", "debug", ".fingerprint")

	fresh := filepath.Join(marker, "fresh-aaaaaaaaaaaaaaaa", "lib-fresh.json")
	testutil.WriteFileString(t, fresh, `{"rustc":1}`)
	testutil.WriteFile(t, filepath.Join(root, "target", "debug", "deps", "libfresh-aaaaaaaaaaaaaaaa.rlib"), 10)

	stale := filepath.Join(marker, "stale-bbbbbbbbbbbbbbbb", "lib-stale.json")
	testutil.WriteFileString(t, stale, `{"rustc":1}`)
	testutil.SetTimes(t, stale, time.Now().Add(-100*24*time.Hour))
	testutil.WriteFile(t, filepath.Join(root, "target", "debug", "deps", "libstale-bbbbbbbbbbbbbbbb.rlib"), 20)

	return root
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestSweepByAge(t *testing.T) {
	t.Setenv("CACHESWEEP_CONFIG", "")
	root := scaffold(t)

	if err := SweepCommand().Execute([]string{"--time", "30", root}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if exists(filepath.Join(root, "target", "debug", "deps", "libstale-bbbbbbbbbbbbbbbb.rlib")) {
		t.Error("stale artifact survived")
	}
	if !exists(filepath.Join(root, "target", "debug", "deps", "libfresh-aaaaaaaaaaaaaaaa.rlib")) {
		t.Error("fresh artifact was removed")
	}
}

func TestSweepDryRunDeletesNothing(t *testing.T) {
	t.Setenv("CACHESWEEP_CONFIG", "")
	root := scaffold(t)

	if err := SweepCommand().Execute([]string{"--dry-run", "--time", "30", root}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !exists(filepath.Join(root, "target", "debug", "deps", "libstale-bbbbbbbbbbbbbbbb.rlib")) {
		t.Error("dry run deleted an artifact")
	}
}

func TestSweepRejectsCombinedCriteria(t *testing.T) {
	t.Setenv("CACHESWEEP_CONFIG", "")
	err := SweepCommand().Execute([]string{"--time", "7", "--maxsize", "10GB", t.TempDir()})
	if err == nil {
		t.Fatal("combined criteria accepted")
	}
	if !strings.Contains(err.Error(), "mutually exclusive") {
		t.Errorf("err = %v, want mutual-exclusion message", err)
	}
}

func TestSweepStampThenFile(t *testing.T) {
	t.Setenv("CACHESWEEP_CONFIG", "")
	root := scaffold(t)

	if err := SweepCommand().Execute([]string{"--stamp", root}); err != nil {
		t.Fatalf("Execute(--stamp): %v", err)
	}
	stamp := filepath.Join(root, "sweep.timestamp")
	if !exists(stamp) {
		t.Fatal("timestamp file not written")
	}

	// Simulate a build touching the fresh unit after the stamp.
	testutil.SetTimes(t,
		filepath.Join(root, "target", "debug", ".fingerprint", "fresh-aaaaaaaaaaaaaaaa", "lib-fresh.json"),
		time.Now())

	if err := SweepCommand().Execute([]string{"--file", root}); err != nil {
		t.Fatalf("Execute(--file): %v", err)
	}
	if exists(stamp) {
		t.Error("timestamp file survived the sweep")
	}
	if exists(filepath.Join(root, "target", "debug", "deps", "libstale-bbbbbbbbbbbbbbbb.rlib")) {
		t.Error("artifact unused since the stamp survived")
	}
	if !exists(filepath.Join(root, "target", "debug", "deps", "libfresh-aaaaaaaaaaaaaaaa.rlib")) {
		t.Error("recently used artifact was removed")
	}
}

func TestSweepBySize(t *testing.T) {
	t.Setenv("CACHESWEEP_CONFIG", "")
	root := scaffold(t)

	// A one-byte budget cannot hold either unit, but the boundary rule
	// keeps the freshest one.
	if err := SweepCommand().Execute([]string{"--maxsize", "1B", root}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if exists(filepath.Join(root, "target", "debug", "deps", "libstale-bbbbbbbbbbbbbbbb.rlib")) {
		t.Error("stalest artifact survived a tiny size budget")
	}
}

func TestSweepRecursive(t *testing.T) {
	t.Setenv("CACHESWEEP_CONFIG", "")
	work := t.TempDir()
	root := scaffold(t)
	project := filepath.Join(work, "project")
	if err := os.Rename(root, project); err != nil {
		t.Fatalf("moving scaffold: %v", err)
	}
	testutil.WriteFileString(t, filepath.Join(project, "Cargo.toml"), "[package]\nname = \"project\"\n")

	if err := SweepCommand().Execute([]string{"--recursive", "--time", "30", work}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if exists(filepath.Join(project, "target", "debug", "deps", "libstale-bbbbbbbbbbbbbbbb.rlib")) {
		t.Error("stale artifact in discovered project survived")
	}
}

func TestParseMaxSize(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
		ok    bool
	}{
		{"10", 10 * 1024 * 1024, true},
		{"1GiB", 1 << 30, true},
		{"1GB", 1_000_000_000, true},
		{"512KiB", 512 * 1024, true},
		{"plenty", 0, false},
	}
	for _, tt := range tests {
		got, err := parseMaxSize(tt.input)
		if tt.ok != (err == nil) {
			t.Errorf("parseMaxSize(%q) error = %v, want ok=%v", tt.input, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("parseMaxSize(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
