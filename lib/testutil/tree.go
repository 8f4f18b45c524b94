// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteFile creates the file at path with exactly size bytes of
// content, creating parent directories as needed.
func WriteFile(t *testing.T, path string, size int) {
	t.Helper()
	WriteFileString(t, path, string(bytes.Repeat([]byte{'x'}, size)))
}

// WriteFileString creates the file at path with the given contents,
// creating parent directories as needed.
func WriteFileString(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// MkdirAll creates the directory at path with parents.
func MkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

// SetTimes pins both the access and modification time of path. Tests
// use it to make units look recently touched or long stale.
func SetTimes(t *testing.T, path string, when time.Time) {
	t.Helper()
	if err := os.Chtimes(path, when, when); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}
