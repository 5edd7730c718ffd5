package pathier

import (
	"fmt"
	"io/fs"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jakoblorz/go-pathier/internal/filesystem"
)

var sizeUnits = []string{"bytes", "kb", "mb", "gb", "tb", "pb"}

func (p *Path) stat() (fs.FileInfo, bool) {
	info, err := p.fs.Stat(p.raw)
	return info, err == nil
}

// CreationTime returns when p was created. On Linux this is the inode change
// time, the closest stamp stat(2) offers.
func (p *Path) CreationTime() (time.Time, bool) {
	info, ok := p.stat()
	if !ok {
		return time.Time{}, false
	}
	return filesystem.CreationTime(info), true
}

// Age returns how long ago p was created.
func (p *Path) Age() (time.Duration, bool) {
	created, ok := p.CreationTime()
	if !ok {
		return 0, false
	}
	return now().Sub(created), true
}

// ModTime returns when p was last modified.
func (p *Path) ModTime() (time.Time, bool) {
	info, ok := p.stat()
	if !ok {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// ModAge returns how long ago p was last modified.
func (p *Path) ModAge() (time.Duration, bool) {
	mod, ok := p.ModTime()
	if !ok {
		return 0, false
	}
	return now().Sub(mod), true
}

// Size returns the size of p in bytes, or 0 when p does not exist.
//
// For a directory it sums the regular files found recursively whose name
// contains a dot. Files without an extension do not count.
func (p *Path) Size() int64 {
	info, ok := p.stat()
	if !ok {
		return 0
	}
	if !info.IsDir() {
		return info.Size()
	}

	var total int64
	_ = p.fs.WalkDir(p.raw, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.Contains(d.Name(), ".") {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if fi, err := d.Info(); err == nil {
			total += fi.Size()
		}
		return nil
	})
	return total
}

// FormattedSize is FormatSize(p.Size()).
func (p *Path) FormattedSize() string {
	return FormatSize(p.Size())
}

// FormatSize renders size scaled by 1000 into bytes, kb, mb, gb, tb or pb,
// rounded to two decimals. 1234 renders as "1.23 kb".
func FormatSize(size int64) string {
	if size < 1000 {
		return strconv.FormatInt(size, 10) + " " + sizeUnits[0]
	}

	value := float64(size) * 0.001
	unit := 1
	for value >= 1000 && unit < len(sizeUnits)-1 {
		value *= 0.001
		unit++
	}

	s := strconv.FormatFloat(math.Round(value*100)/100, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + " " + sizeUnits[unit]
}

// IsLarger reports whether p is larger than other.
func (p *Path) IsLarger(other *Path) (bool, error) {
	if !p.Exists() || !other.Exists() {
		return false, missingMetadata(p, other)
	}
	return p.Size() > other.Size(), nil
}

// IsOlder reports whether p was created before other.
func (p *Path) IsOlder(other *Path) (bool, error) {
	a, aok := p.CreationTime()
	b, bok := other.CreationTime()
	if !aok || !bok {
		return false, missingMetadata(p, other)
	}
	return a.Before(b), nil
}

// ModifiedMoreRecently reports whether p was modified after other.
func (p *Path) ModifiedMoreRecently(other *Path) (bool, error) {
	a, aok := p.ModTime()
	b, bok := other.ModTime()
	if !aok || !bok {
		return false, missingMetadata(p, other)
	}
	return a.After(b), nil
}

func missingMetadata(paths ...*Path) error {
	for _, p := range paths {
		if !p.Exists() {
			return fmt.Errorf("%w: %s", ErrNoMetadata, p)
		}
	}
	return ErrNoMetadata
}
