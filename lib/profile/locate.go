// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Locate walks the tree under root and returns a Profile for every
// directory that owns a .fingerprint marker. The marker's own subtree
// is not descended into — nothing below it can be another profile.
// Unreadable subtrees are skipped; only an unreadable root is an
// error.
func Locate(root string) ([]*Profile, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("locating profiles: %w", err)
	}

	var profiles []*Profile
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !entry.IsDir() || path == root {
			return nil
		}
		if entry.Name() == MarkerName {
			profiles = append(profiles, &Profile{Root: filepath.Dir(path)})
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("locating profiles under %s: %w", root, err)
	}
	return profiles, nil
}

// Projects walks the tree under root and returns the directories that
// look like cargo projects: they contain a Cargo.toml. A project's
// subtree is skipped once found, since nested manifests belong to the
// same workspace. Dot-directories are skipped unless hidden is set —
// .git and friends are unlikely to contain a project of their own.
func Projects(root string, hidden bool) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("discovering projects: %w", err)
	}

	var projects []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && !hidden && strings.HasPrefix(entry.Name(), ".") {
			return fs.SkipDir
		}
		if _, err := os.Stat(filepath.Join(path, "Cargo.toml")); err == nil {
			projects = append(projects, path)
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering projects under %s: %w", root, err)
	}
	return projects, nil
}
