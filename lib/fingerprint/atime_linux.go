// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

package fingerprint

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// accessTime returns the last access time of the file at path. Access
// times are not part of the portable os.FileInfo surface, so this
// reads the stat structure directly. On failure the modification time
// stands in, which only ever makes a unit look more recently used.
func accessTime(path string, info os.FileInfo) time.Time {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return info.ModTime()
	}
	return time.Unix(stat.Atim.Unix())
}
