// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

// Package policy decides which build-cache units to retain.
//
// The three retention policies — [ByToolchain], [ByAge], [BySize] —
// form a sealed union consumed by [Planner.Plan], which turns a policy
// and a set of discovered profiles into one keep-set per profile.
// Policies only classify; applying a keep-set (deleting what is
// outside it) belongs to the sweep package.
//
// ByToolchain and ByAge treat each profile independently. BySize is
// global: the byte budget spans every profile under a root, and the
// baseline is measured once before any sweep so later profiles do not
// see an already-shrunk tree and under-evict.
package policy
