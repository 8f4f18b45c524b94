// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Output is the captured result of one subprocess invocation. Success
// reports whether the process ran to completion with a zero exit
// status; stdout and stderr are captured either way.
type Output struct {
	Stdout  []byte
	Stderr  []byte
	Success bool
}

// Runner executes external commands. The error return is reserved for
// failures to run the process at all (binary missing, context
// canceled); a process that starts and exits nonzero yields a nil
// error with Success false, so callers can decide how much a failing
// toolchain matters.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Output, error)
}

// ExecRunner runs commands with os/exec, resolving the binary through
// PATH.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (Output, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{
		Stdout:  stdout.Bytes(),
		Stderr:  stderr.Bytes(),
		Success: err == nil,
	}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return out, err
	}
	return out, nil
}
