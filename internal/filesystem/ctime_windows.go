//go:build windows

package filesystem

import (
	"io/fs"
	"syscall"
	"time"
)

func platformCreationTime(info fs.FileInfo) (time.Time, bool) {
	d, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, d.CreationTime.Nanoseconds()), true
}
