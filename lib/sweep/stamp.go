// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package sweep

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cachesweep/cachesweep/lib/clock"
)

// StampName is the filename of the timestamp marker written next to a
// cache root by WriteStamp.
const StampName = "sweep.timestamp"

type stamp struct {
	Secs  int64 `json:"secs_since_epoch"`
	Nanos int64 `json:"nanos_since_epoch"`
}

// WriteStamp records the current time in a timestamp file at root. A
// later LoadStamp turns the file back into an age cutoff, so a sweep
// can remove exactly the artifacts untouched since the stamp.
func WriteStamp(root string, clk clock.Clock) error {
	now := clk.Now()
	data, err := json.Marshal(stamp{
		Secs:  now.Unix(),
		Nanos: int64(now.Nanosecond()),
	})
	if err != nil {
		return fmt.Errorf("encoding timestamp: %w", err)
	}
	path := filepath.Join(root, StampName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LoadStamp reads the timestamp file at root, removes it, and returns
// the time elapsed since it was written. A stamp from the future
// clamps to zero.
func LoadStamp(root string, clk clock.Clock) (time.Duration, error) {
	path := filepath.Join(root, StampName)
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	var st stamp
	if err := json.Unmarshal(data, &st); err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		return 0, fmt.Errorf("removing %s: %w", path, err)
	}
	elapsed := clk.Since(time.Unix(st.Secs, st.Nanos))
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed, nil
}
