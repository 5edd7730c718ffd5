// Package pathier extends a filesystem path with shortcuts for structured
// read/write, metadata queries, segment navigation and bulk operations.
package pathier

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/jakoblorz/go-pathier/internal/filesystem"
)

const (
	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644
)

var defaultFS filesystem.FileSystem = filesystem.NewOSFileSystem()

// Path is a handle on a filesystem location. Its segments never change once
// constructed; every navigation method returns a fresh handle.
type Path struct {
	raw string
	fs  filesystem.FileSystem

	// lastRead is stamped by reads made through this handle only.
	lastRead time.Time
}

// New joins segments into a Path backed by the OS filesystem.
func New(segments ...string) *Path {
	return newPath(defaultFS, segments...)
}

// Cwd returns a handle on the current working directory.
func Cwd() (*Path, error) {
	wd, err := defaultFS.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return New(wd), nil
}

func newPath(fsys filesystem.FileSystem, segments ...string) *Path {
	return &Path{raw: filepath.Clean(filepath.Join(segments...)), fs: fsys}
}

// derive creates a handle on the same filesystem with no read history.
func (p *Path) derive(segments ...string) *Path {
	return newPath(p.fs, segments...)
}

// WithFileSystem returns a copy of p that operates on fsys.
func (p *Path) WithFileSystem(fsys filesystem.FileSystem) *Path {
	return newPath(fsys, p.raw)
}

// String returns the cleaned, platform-native form of the path.
func (p *Path) String() string {
	return p.raw
}

// Parts returns the segments of the path. An anchor (volume and root
// separator) is kept as the first segment, so "/a/b" yields ["/", "a", "b"].
func (p *Path) Parts() []string {
	return splitParts(p.raw)
}

func splitParts(raw string) []string {
	if raw == "." || raw == "" {
		return nil
	}

	sep := string(filepath.Separator)
	vol := filepath.VolumeName(raw)
	rest := raw[len(vol):]

	var parts []string
	switch {
	case strings.HasPrefix(rest, sep):
		parts = append(parts, vol+sep)
		rest = strings.TrimLeft(rest, sep)
	case vol != "":
		parts = append(parts, vol)
	}

	for _, segment := range strings.Split(rest, sep) {
		if segment != "" {
			parts = append(parts, segment)
		}
	}
	return parts
}

// Join appends segments to p.
func (p *Path) Join(segments ...string) *Path {
	return p.derive(append([]string{p.raw}, segments...)...)
}

// Parent returns the directory containing p. The parent of the root is the root.
func (p *Path) Parent() *Path {
	return p.derive(filepath.Dir(p.raw))
}

// Up walks n parent levels up from p.
func (p *Path) Up(n int) *Path {
	dir := p.raw
	for i := 0; i < n; i++ {
		dir = filepath.Dir(dir)
	}
	return p.derive(dir)
}

// Name returns the final segment.
func (p *Path) Name() string {
	parts := p.Parts()
	if len(parts) == 0 {
		return ""
	}
	last := parts[len(parts)-1]
	if len(parts) == 1 && last == filepath.VolumeName(p.raw)+string(filepath.Separator) {
		return ""
	}
	return last
}

// Ext returns the extension of the final segment, including the dot.
func (p *Path) Ext() string {
	return filepath.Ext(p.Name())
}

// Stem returns the final segment without its extension.
func (p *Path) Stem() string {
	name := p.Name()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// WithName returns p with its final segment replaced.
func (p *Path) WithName(name string) *Path {
	return p.derive(filepath.Dir(p.raw), name)
}

// WithStem returns p with its final segment's stem replaced.
func (p *Path) WithStem(stem string) *Path {
	return p.WithName(stem + p.Ext())
}

// WithExt returns p with its extension replaced. ext may omit the leading dot.
func (p *Path) WithExt(ext string) *Path {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return p.WithName(p.Stem() + ext)
}

// Abs resolves p against the working directory of its filesystem.
func (p *Path) Abs() (*Path, error) {
	if filepath.IsAbs(p.raw) {
		return p.derive(p.raw), nil
	}
	wd, err := p.fs.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return p.derive(wd, p.raw), nil
}

// Exists reports whether anything exists at p.
func (p *Path) Exists() bool {
	return p.fs.Exists(p.raw)
}

// IsFile reports whether p is an existing regular file.
func (p *Path) IsFile() bool {
	info, err := p.fs.Stat(p.raw)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether p is an existing directory.
func (p *Path) IsDir() bool {
	info, err := p.fs.Stat(p.raw)
	return err == nil && info.IsDir()
}

// Mkdir creates p and any missing parents. An existing directory is not an error.
func (p *Path) Mkdir() error {
	if err := p.fs.MkdirAll(p.raw, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p, err)
	}
	return nil
}

// Touch creates p as an empty file when missing, creating parents as needed.
// An existing file keeps its content.
func (p *Path) Touch() error {
	if err := p.Parent().Mkdir(); err != nil {
		return err
	}
	if err := p.fs.AppendFile(p.raw, nil, filePerm); err != nil {
		return fmt.Errorf("failed to touch %s: %w", p, err)
	}
	return nil
}

// Glob returns the entries below p matching pattern.
func (p *Path) Glob(pattern string) ([]*Path, error) {
	matches, err := p.fs.Glob(filepath.Join(p.raw, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	paths := make([]*Path, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, p.derive(m))
	}
	return paths, nil
}
