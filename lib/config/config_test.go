// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"path/filepath"
	"testing"

	"github.com/cachesweep/cachesweep/lib/testutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Sweep.Days != 30 {
		t.Errorf("Days = %d, want 30", cfg.Sweep.Days)
	}
	if cfg.Sweep.MaxSize != "" || cfg.Sweep.Recursive || cfg.Sweep.Hidden {
		t.Error("non-zero defaults outside Days")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cachesweep.yaml")
	testutil.WriteFileString(t, path, "sweep:\n  days: 7\n  max_size: 10GB\n  recursive: true\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Sweep.Days != 7 {
		t.Errorf("Days = %d, want 7", cfg.Sweep.Days)
	}
	if cfg.Sweep.MaxSize != "10GB" {
		t.Errorf("MaxSize = %q, want 10GB", cfg.Sweep.MaxSize)
	}
	if !cfg.Sweep.Recursive {
		t.Error("Recursive = false, want true")
	}
	if cfg.Sweep.Hidden {
		t.Error("Hidden defaulted to true")
	}
}

func TestLoadFileRejectsBadSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cachesweep.yaml")
	testutil.WriteFileString(t, path, "sweep:\n  max_size: plenty\n")

	if _, err := LoadFile(path); err == nil {
		t.Fatal("unparseable max_size accepted")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing config file accepted")
	}
}

func TestLoadWithoutEnv(t *testing.T) {
	t.Setenv("CACHESWEEP_CONFIG", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sweep.Days != 30 {
		t.Errorf("Days = %d, want default 30", cfg.Sweep.Days)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cachesweep.yaml")
	testutil.WriteFileString(t, path, "sweep:\n  days: 90\n")
	t.Setenv("CACHESWEEP_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sweep.Days != 90 {
		t.Errorf("Days = %d, want 90", cfg.Sweep.Days)
	}
}
