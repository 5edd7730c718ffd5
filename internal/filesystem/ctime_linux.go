//go:build linux

package filesystem

import (
	"io/fs"
	"syscall"
	"time"
)

// Linux exposes no birth time through stat(2); ctime is the closest stamp.
func platformCreationTime(info fs.FileInfo) (time.Time, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec)), true
}
