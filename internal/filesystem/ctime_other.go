//go:build !linux && !darwin && !windows

package filesystem

import (
	"io/fs"
	"time"
)

func platformCreationTime(fs.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
