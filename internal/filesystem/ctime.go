package filesystem

import (
	"io/fs"
	"time"
)

// creationTimer is implemented by FileInfo.Sys() values that know their own
// creation time, such as the entries of MockFileSystem.
type creationTimer interface {
	CreationTime() time.Time
}

// CreationTime returns the creation timestamp recorded for info. Platforms
// without a creation time fall back to the modification time.
func CreationTime(info fs.FileInfo) time.Time {
	if c, ok := info.Sys().(creationTimer); ok {
		return c.CreationTime()
	}
	if t, ok := platformCreationTime(info); ok {
		return t
	}
	return info.ModTime()
}
