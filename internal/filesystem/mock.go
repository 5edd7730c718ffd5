package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var _ FileSystem = (*MockFileSystem)(nil)

// MockFileSystem provides in-memory filesystem for testing
type MockFileSystem struct {
	files      map[string]*MockFile
	currentDir string
}

// MockFile represents a file in the mock filesystem
type MockFile struct {
	Content []byte
	Mode    fs.FileMode
	ModTime time.Time
	Created time.Time
	IsDir   bool
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	created time.Time
	isDir   bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return m }

// CreationTime lets CreationTime read the mock's own creation stamp.
func (m *mockFileInfo) CreationTime() time.Time { return m.created }

// mockDirEntry implements fs.DirEntry
type mockDirEntry struct {
	info fs.FileInfo
}

func (m *mockDirEntry) Name() string               { return m.info.Name() }
func (m *mockDirEntry) IsDir() bool                { return m.info.IsDir() }
func (m *mockDirEntry) Type() fs.FileMode          { return m.info.Mode().Type() }
func (m *mockDirEntry) Info() (fs.FileInfo, error) { return m.info, nil }

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:      make(map[string]*MockFile),
		currentDir: "/workspace",
	}
}

// AddFile adds a file to the mock filesystem, creating missing parents
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	now := time.Now()
	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: now,
		Created: now,
		IsDir:   false,
	}
	mfs.addParents(cleanPath)
}

// AddDir adds a directory to the mock filesystem, creating missing parents
func (mfs *MockFileSystem) AddDir(path string) {
	cleanPath := filepath.Clean(path)
	if _, exists := mfs.files[cleanPath]; !exists {
		now := time.Now()
		mfs.files[cleanPath] = &MockFile{
			Mode:    0755 | fs.ModeDir,
			ModTime: now,
			Created: now,
			IsDir:   true,
		}
	}
	mfs.addParents(cleanPath)
}

// SetTimes overrides the creation and modification stamps of an entry
func (mfs *MockFileSystem) SetTimes(path string, created, modified time.Time) {
	if file, exists := mfs.files[filepath.Clean(path)]; exists {
		file.Created = created
		file.ModTime = modified
	}
}

func (mfs *MockFileSystem) addParents(cleanPath string) {
	dir := filepath.Dir(cleanPath)
	for !isTop(dir) && dir != cleanPath {
		if _, exists := mfs.files[dir]; !exists {
			mfs.AddDir(dir)
		}
		dir = filepath.Dir(dir)
	}
}

func isTop(dir string) bool {
	return dir == "." || dir == filepath.Dir(dir)
}

// parentIsDir reports whether the parent of cleanPath is an existing directory.
func (mfs *MockFileSystem) parentIsDir(cleanPath string) bool {
	dir := filepath.Dir(cleanPath)
	if isTop(dir) {
		return true
	}
	parent, exists := mfs.files[dir]
	return exists && parent.IsDir
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	file, exists := mfs.files[filepath.Clean(path)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return nil, errors.New("is a directory")
	}
	return append([]byte(nil), file.Content...), nil
}

func (mfs *MockFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)

	if !mfs.parentIsDir(cleanPath) {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	now := time.Now()
	created := now
	if existing, exists := mfs.files[cleanPath]; exists {
		if existing.IsDir {
			return &fs.PathError{Op: "open", Path: path, Err: errors.New("is a directory")}
		}
		created = existing.Created
		perm = existing.Mode
	}

	mfs.files[cleanPath] = &MockFile{
		Content: append([]byte(nil), data...),
		Mode:    perm,
		ModTime: now,
		Created: created,
		IsDir:   false,
	}
	return nil
}

func (mfs *MockFileSystem) AppendFile(path string, data []byte, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)

	existing, exists := mfs.files[cleanPath]
	if !exists {
		return mfs.WriteFile(path, data, perm)
	}
	if existing.IsDir {
		return &fs.PathError{Op: "open", Path: path, Err: errors.New("is a directory")}
	}

	existing.Content = append(existing.Content, data...)
	existing.ModTime = time.Now()
	return nil
}

func (mfs *MockFileSystem) Remove(path string) error {
	cleanPath := filepath.Clean(path)
	if _, exists := mfs.files[cleanPath]; !exists {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	for p := range mfs.files {
		if p != cleanPath && isWithin(p, cleanPath) {
			return &fs.PathError{Op: "remove", Path: path, Err: errors.New("directory not empty")}
		}
	}
	delete(mfs.files, cleanPath)
	return nil
}

func (mfs *MockFileSystem) RemoveAll(path string) error {
	cleanPath := filepath.Clean(path)
	for p := range mfs.files {
		if isWithin(p, cleanPath) {
			delete(mfs.files, p)
		}
	}
	return nil
}

func (mfs *MockFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	cleanPath := filepath.Clean(path)

	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if !file.IsDir {
		return nil, errors.New("not a directory")
	}

	var entries []fs.DirEntry
	for p, f := range mfs.files {
		if p != cleanPath && filepath.Dir(p) == cleanPath {
			entries = append(entries, &mockDirEntry{info: newInfo(p, f)})
		}
	}

	// Sort entries by name for consistent ordering
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

func (mfs *MockFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)

	var missing []string
	for dir := cleanPath; !isTop(dir); dir = filepath.Dir(dir) {
		if file, exists := mfs.files[dir]; exists {
			if !file.IsDir {
				return &fs.PathError{Op: "mkdir", Path: dir, Err: errors.New("not a directory")}
			}
			break
		}
		missing = append(missing, dir)
	}

	now := time.Now()
	for _, dir := range missing {
		mfs.files[dir] = &MockFile{
			Mode:    perm | fs.ModeDir,
			ModTime: now,
			Created: now,
			IsDir:   true,
		}
	}
	return nil
}

func (mfs *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	cleanPath := filepath.Clean(path)
	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return newInfo(cleanPath, file), nil
}

func (mfs *MockFileSystem) Exists(path string) bool {
	_, exists := mfs.files[filepath.Clean(path)]
	return exists
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	return mfs.currentDir, nil
}

func (mfs *MockFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	cleanRoot := filepath.Clean(root)

	if _, exists := mfs.files[cleanRoot]; !exists {
		return fn(root, nil, &fs.PathError{Op: "lstat", Path: root, Err: fs.ErrNotExist})
	}

	// Collect all paths that are under root
	var paths []string
	for p := range mfs.files {
		if isWithin(p, cleanRoot) {
			paths = append(paths, p)
		}
	}

	// Sort paths for consistent ordering
	sort.Strings(paths)

	var skipped []string
	for _, p := range paths {
		if withinAny(p, skipped) {
			continue
		}

		file := mfs.files[p]
		entry := &mockDirEntry{info: newInfo(p, file)}

		if err := fn(p, entry, nil); err != nil {
			if errors.Is(err, fs.SkipDir) {
				if file.IsDir {
					skipped = append(skipped, p)
					continue
				}
				skipped = append(skipped, filepath.Dir(p))
				continue
			}
			if errors.Is(err, fs.SkipAll) {
				return nil
			}
			return err
		}
	}

	return nil
}

func (mfs *MockFileSystem) Glob(pattern string) ([]string, error) {
	var matches []string

	for p := range mfs.files {
		matched, err := filepath.Match(pattern, p)
		if err != nil {
			return nil, err
		}
		if matched {
			matches = append(matches, p)
		}
	}

	sort.Strings(matches)
	return matches, nil
}

// SetCurrentDir sets the current working directory for the mock
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.currentDir = dir
}

func newInfo(p string, f *MockFile) *mockFileInfo {
	return &mockFileInfo{
		name:    filepath.Base(p),
		size:    int64(len(f.Content)),
		mode:    f.Mode,
		modTime: f.ModTime,
		created: f.Created,
		isDir:   f.IsDir,
	}
}

// isWithin reports whether p is root or lies below it.
func isWithin(p, root string) bool {
	if p == root {
		return true
	}
	if root == "." {
		return !filepath.IsAbs(p)
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(p, prefix)
}

func withinAny(p string, roots []string) bool {
	for _, root := range roots {
		if isWithin(p, root) {
			return true
		}
	}
	return false
}
