// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package toolchain

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/cachesweep/cachesweep/lib/stablehash"
)

// Resolver turns toolchain names into the set of compiler identity
// hashes that fingerprint records carry. Each toolchain is queried
// with "rustc [+name] -vV" and the verbose version banner is hashed
// under both schemes in use across compiler generations, so artifacts
// written by either generation match.
type Resolver struct {
	// Log receives warnings about tolerated toolchain failures.
	// Nil discards them.
	Log *slog.Logger

	// Runner executes rustc and rustup. Nil means ExecRunner.
	Runner Runner
}

// query is one pending rustc invocation. Tolerant queries may fail
// without aborting resolution.
type query struct {
	name     string
	args     []string
	tolerant bool
}

// Identities resolves the named toolchains to their identity hashes.
// The zero hash is always a member: the compiler writes it into
// records it has no identity for, and such artifacts must survive
// every toolchain sweep.
//
// With explicit names, each must be installed; an unknown name is a
// hard error listing the installed alternatives. With no names, every
// installed toolchain is queried, falling back to the bare rustc on
// PATH when rustup is unavailable. A query failure is tolerated, with
// a warning, only for custom (locally linked) toolchains.
func (r *Resolver) Identities(ctx context.Context, names []string) (map[uint64]struct{}, error) {
	queries, err := r.queries(ctx, names)
	if err != nil {
		return nil, err
	}

	ids := map[uint64]struct{}{0: {}}
	for _, q := range queries {
		out, err := r.runner().Run(ctx, "rustc", q.args...)
		if err != nil {
			return nil, fmt.Errorf("running rustc for %s: %w", q.name, err)
		}
		if !out.Success {
			msg := strings.TrimSpace(string(out.Stdout))
			if msg == "" {
				msg = strings.TrimSpace(string(out.Stderr))
			}
			if q.tolerant {
				r.logger().Warn("skipping custom toolchain", "toolchain", q.name, "output", msg)
				continue
			}
			return nil, fmt.Errorf("querying toolchain %s: %s", q.name, msg)
		}
		if len(out.Stderr) > 0 {
			r.logger().Warn("rustc wrote to stderr", "toolchain", q.name,
				"stderr", strings.TrimSpace(string(out.Stderr)))
		}
		banner := string(out.Stdout)
		ids[stablehash.Legacy(banner)] = struct{}{}
		ids[stablehash.Current(banner)] = struct{}{}
	}
	return ids, nil
}

func (r *Resolver) queries(ctx context.Context, names []string) ([]query, error) {
	if len(names) > 0 {
		installed, err := r.installed(ctx)
		if err != nil {
			return nil, err
		}
		var queries []query
		for _, name := range names {
			if _, ok := installed[name]; !ok {
				return nil, fmt.Errorf("toolchain %q is not installed (installed: %s)",
					name, strings.Join(sortedKeys(installed), ", "))
			}
			queries = append(queries, query{
				name:     name,
				args:     []string{"+" + name, "-vV"},
				tolerant: IsCustom(name),
			})
		}
		return queries, nil
	}

	installed, err := r.installed(ctx)
	if err != nil {
		// No rustup: fall back to whatever rustc is on PATH.
		r.logger().Debug("rustup unavailable, using bare rustc", "error", err)
		return []query{{name: "rustc", args: []string{"-vV"}}}, nil
	}
	var queries []query
	for _, name := range sortedKeys(installed) {
		queries = append(queries, query{
			name:     name,
			args:     []string{"+" + name, "-vV"},
			tolerant: IsCustom(name),
		})
	}
	return queries, nil
}

// installed lists the toolchains rustup knows about. The first field
// of each listing line is the toolchain name; decorations like
// "(default)" follow in later fields.
func (r *Resolver) installed(ctx context.Context) (map[string]struct{}, error) {
	out, err := r.runner().Run(ctx, "rustup", "toolchain", "list")
	if err != nil {
		return nil, fmt.Errorf("running rustup: %w", err)
	}
	if !out.Success {
		return nil, fmt.Errorf("listing toolchains: %s", strings.TrimSpace(string(out.Stderr)))
	}

	installed := make(map[string]struct{})
	for _, line := range strings.Split(string(out.Stdout), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		installed[fields[0]] = struct{}{}
	}
	return installed, nil
}

func sortedKeys(m map[string]struct{}) []string {
	return slices.Sorted(maps.Keys(m))
}

func (r *Resolver) runner() Runner {
	if r.Runner != nil {
		return r.Runner
	}
	return ExecRunner{}
}

func (r *Resolver) logger() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.New(slog.DiscardHandler)
}
