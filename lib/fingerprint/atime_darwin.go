// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package fingerprint

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// accessTime returns the last access time of the file at path. See
// the linux variant for the fallback rationale.
func accessTime(path string, info os.FileInfo) time.Time {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return info.ModTime()
	}
	return time.Unix(stat.Atimespec.Unix())
}
