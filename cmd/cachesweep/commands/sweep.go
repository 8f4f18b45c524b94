// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/cachesweep/cachesweep/cmd/cachesweep/cli"
	"github.com/cachesweep/cachesweep/lib/clock"
	"github.com/cachesweep/cachesweep/lib/config"
	"github.com/cachesweep/cachesweep/lib/policy"
	"github.com/cachesweep/cachesweep/lib/profile"
	"github.com/cachesweep/cachesweep/lib/sweep"
	"github.com/cachesweep/cachesweep/lib/toolchain"
)

// sweepOptions holds the flag state for one sweep invocation.
type sweepOptions struct {
	days       uint64
	installed  bool
	toolchains []string
	maxSize    string
	stamp      bool
	file       bool
	dryRun     bool
	recursive  bool
	hidden     bool
	verbosity  int
	configPath string

	// flags is the FlagSet from the most recent Flags() call, kept so
	// Run can ask which flags were set explicitly.
	flags *pflag.FlagSet
}

// SweepCommand returns the "sweep" subcommand.
func SweepCommand() *cli.Command {
	options := &sweepOptions{}
	return &cli.Command{
		Name:    "sweep",
		Summary: "Remove stale artifacts from build caches",
		Description: `Remove stale artifacts from build caches.

Exactly one criterion selects what "stale" means: an age cutoff
(--time), a total size budget (--maxsize), toolchains no longer
installed (--installed), specific toolchains (--toolchains), or a
previously written timestamp file (--file). Without a criterion the
age cutoff from the configuration applies (30 days by default).

Artifacts whose state cannot be read are always retained.`,
		Usage: "cachesweep sweep [flags] [path...]",
		Examples: []cli.Example{
			{Description: "remove artifacts unused for 30 days", Command: "cachesweep sweep --time 30"},
			{Description: "shrink every cache under ~/work to 10 GiB", Command: "cachesweep sweep --recursive --maxsize 10GiB ~/work"},
			{Description: "drop artifacts of uninstalled toolchains", Command: "cachesweep sweep --installed"},
			{Description: "preview without deleting", Command: "cachesweep sweep --dry-run --time 7"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("sweep", pflag.ContinueOnError)
			flagSet.Uint64VarP(&options.days, "time", "t", 30, "remove artifacts unused for this many days")
			flagSet.BoolVarP(&options.installed, "installed", "i", false, "keep only artifacts of installed toolchains")
			flagSet.StringSliceVar(&options.toolchains, "toolchains", nil, "keep only artifacts of these toolchains")
			flagSet.StringVarP(&options.maxSize, "maxsize", "m", "", "shrink each cache to this size (e.g. 10GiB; bare numbers are MiB)")
			flagSet.BoolVarP(&options.stamp, "stamp", "s", false, "write a timestamp file for a later --file sweep")
			flagSet.BoolVarP(&options.file, "file", "f", false, "sweep artifacts unused since the timestamp file")
			flagSet.BoolVarP(&options.dryRun, "dry-run", "d", false, "report what would be removed without removing it")
			flagSet.BoolVarP(&options.recursive, "recursive", "r", false, "search the given paths for projects to sweep")
			flagSet.BoolVar(&options.hidden, "hidden", false, "include hidden directories in recursive searches")
			flagSet.CountVarP(&options.verbosity, "verbose", "v", "increase log detail (repeatable)")
			flagSet.StringVar(&options.configPath, "config", "", "path to a configuration file")
			options.flags = flagSet
			return flagSet
		},
		Run: options.run,
	}
}

func (o *sweepOptions) run(args []string) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	log := cli.NewLogger(o.verbosity)

	if err := o.checkCriteria(); err != nil {
		return err
	}

	roots, err := o.resolveRoots(args, cfg, log)
	if err != nil {
		return err
	}

	clk := clock.Real()
	if o.stamp {
		for _, root := range roots {
			if err := sweep.WriteStamp(root, clk); err != nil {
				return err
			}
			fmt.Printf("Timestamp file written in %s\n", root)
		}
		return nil
	}

	pol, err := o.policy(cfg, log)
	if err != nil {
		return err
	}

	runner := &sweep.Runner{Log: log, Clock: clk, DryRun: o.dryRun}
	var total uint64
	failures := 0
	for _, root := range roots {
		rootPol := pol
		if o.file {
			elapsed, err := sweep.LoadStamp(root, clk)
			if err != nil {
				log.Error("no usable timestamp file", "path", root, "error", err)
				failures++
				continue
			}
			rootPol = policy.ByAge{Cutoff: elapsed}
		}

		freed, err := runner.Run(root, rootPol)
		if err != nil {
			log.Error("sweep failed", "path", root, "error", err)
			failures++
			continue
		}
		total += freed
		if o.dryRun {
			fmt.Printf("Would clean: %s from %s\n", humanize.IBytes(freed), root)
		} else {
			fmt.Printf("Cleaned %s from %s\n", humanize.IBytes(freed), root)
		}
	}

	if len(roots) > 1 {
		if o.dryRun {
			fmt.Printf("Would clean: %s in total\n", humanize.IBytes(total))
		} else {
			fmt.Printf("Cleaned %s in total\n", humanize.IBytes(total))
		}
	}
	if failures > 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

func (o *sweepOptions) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFile(o.configPath)
	}
	return config.Load()
}

// checkCriteria rejects combinations of sweep criteria. Each criterion
// computes a different keep-set; applying two at once would remove the
// union of what either would remove alone, which is never what the
// user spelled out.
func (o *sweepOptions) checkCriteria() error {
	chosen := 0
	for _, set := range []bool{
		o.flags.Changed("time"),
		o.installed,
		len(o.toolchains) > 0,
		o.maxSize != "",
		o.stamp,
		o.file,
	} {
		if set {
			chosen++
		}
	}
	if chosen > 1 {
		return fmt.Errorf("--time, --installed, --toolchains, --maxsize, --stamp, and --file are mutually exclusive")
	}
	return nil
}

// resolveRoots expands the positional arguments into the cache roots
// to sweep: the paths themselves, or with --recursive every project
// found below them.
func (o *sweepOptions) resolveRoots(args []string, cfg *config.Config, log *slog.Logger) ([]string, error) {
	paths := args
	if len(paths) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		paths = []string{cwd}
	}

	if !o.recursive && !cfg.Sweep.Recursive {
		return paths, nil
	}

	hidden := o.hidden || cfg.Sweep.Hidden
	var roots []string
	for _, path := range paths {
		projects, err := profile.Projects(path, hidden)
		if err != nil {
			return nil, err
		}
		if len(projects) == 0 {
			log.Warn("no projects found", "path", path)
		}
		roots = append(roots, projects...)
	}
	return roots, nil
}

// policy builds the retention policy from the selected criterion.
// With --file the policy is per-root and built later; the age cutoff
// returned here is a placeholder that never runs.
func (o *sweepOptions) policy(cfg *config.Config, log *slog.Logger) (policy.Policy, error) {
	switch {
	case o.installed:
		return o.toolchainPolicy(log, nil)
	case len(o.toolchains) > 0:
		return o.toolchainPolicy(log, o.toolchains)
	case o.maxSize != "":
		target, err := parseMaxSize(o.maxSize)
		if err != nil {
			return nil, err
		}
		return policy.BySize{TargetBytes: target}, nil
	case o.flags.Changed("time") || o.file:
		return policy.ByAge{Cutoff: time.Duration(o.days) * 24 * time.Hour}, nil
	case cfg.Sweep.MaxSize != "":
		target, err := parseMaxSize(cfg.Sweep.MaxSize)
		if err != nil {
			return nil, err
		}
		return policy.BySize{TargetBytes: target}, nil
	default:
		return policy.ByAge{Cutoff: time.Duration(cfg.Sweep.Days) * 24 * time.Hour}, nil
	}
}

func (o *sweepOptions) toolchainPolicy(log *slog.Logger, names []string) (policy.Policy, error) {
	resolver := &toolchain.Resolver{Log: log}
	ids, err := resolver.Identities(context.Background(), names)
	if err != nil {
		return nil, err
	}
	return policy.ByToolchain{Identities: ids}, nil
}

// parseMaxSize interprets a size budget. A bare number is mebibytes;
// anything else goes through the usual size suffixes ("10GB",
// "512MiB").
func parseMaxSize(s string) (uint64, error) {
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n * 1024 * 1024, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return n, nil
}
