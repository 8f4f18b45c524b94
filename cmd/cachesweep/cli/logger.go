// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates a structured logger for command operations at a
// verbosity chosen by repeated -v flags: 0 shows only warnings and
// errors, 1 adds debug detail (every removal), and 2 or more opens
// the level all the way.
//
// When stderr is a terminal, uses slog.TextHandler for human-readable
// output. When stderr is piped or redirected (CI, scripts), uses
// slog.JSONHandler for machine-parseable output.
func NewLogger(verbosity int) *slog.Logger {
	var level slog.Level
	switch {
	case verbosity <= 0:
		level = slog.LevelWarn
	case verbosity == 1:
		level = slog.LevelDebug
	default:
		level = slog.Level(-8)
	}

	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
