// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command dispatch framework for the
// cachesweep binary: a Command tree with pflag parsing, structured
// help output, typo suggestions for unknown commands and flags, and
// logger construction shared by every command.
package cli
