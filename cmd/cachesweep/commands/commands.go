// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the cachesweep CLI command tree.
package commands

import (
	"fmt"

	"github.com/cachesweep/cachesweep/cmd/cachesweep/cli"
	"github.com/cachesweep/cachesweep/lib/version"
)

// Root builds and returns the complete cachesweep command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "cachesweep",
		Description: `Cachesweep: clean stale artifacts out of incremental build caches.

Sweeps target directories by artifact age, total size, or the set of
installed compiler toolchains, without disturbing artifacts a current
build still needs.`,
		Subcommands: []*cli.Command{
			SweepCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("cachesweep %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
