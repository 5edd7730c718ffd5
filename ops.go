package pathier

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Copy copies p to dst and returns dst.
//
// A directory is copied recursively, merging into dst, when overwrite is set
// or dst does not exist. Otherwise only the files directly inside p whose
// name is absent from dst are copied; subdirectories are left alone.
// A file is copied when overwrite is set or dst does not exist.
// Copying a missing path does nothing.
func (p *Path) Copy(dst *Path, overwrite bool) (*Path, error) {
	info, err := p.fs.Stat(p.raw)
	if errors.Is(err, fs.ErrNotExist) {
		return dst, nil
	}
	if err != nil {
		return dst, fmt.Errorf("failed to copy %s: %w", p, err)
	}

	switch {
	case info.IsDir():
		if within(dst.raw, p.raw) {
			return dst, fmt.Errorf("failed to copy %s: destination %s is inside the source", p, dst)
		}
		if overwrite || !dst.Exists() {
			err = p.copyTree(dst)
		} else {
			err = p.mergeShallow(dst)
		}
	case info.Mode().IsRegular():
		if overwrite || !dst.Exists() {
			err = copyFile(p, dst, info.Mode().Perm())
		} else {
			log().Debug("destination exists, not copying", "path", p.raw, "destination", dst.raw)
		}
	}
	if err != nil {
		return dst, fmt.Errorf("failed to copy %s to %s: %w", p, dst, err)
	}
	return dst, nil
}

func (p *Path) copyTree(dst *Path) error {
	var merr *multierror.Error

	walkErr := p.fs.WalkDir(p.raw, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			merr = multierror.Append(merr, err)
			return nil
		}

		rel, err := filepath.Rel(p.raw, path)
		if err != nil {
			return err
		}
		target := dst.Join(rel)

		if d.IsDir() {
			if err := target.Mkdir(); err != nil {
				merr = multierror.Append(merr, err)
				return fs.SkipDir
			}
			return nil
		}

		info, err := p.fs.Stat(path)
		if err != nil {
			merr = multierror.Append(merr, err)
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if err := copyFile(p.derive(path), target, info.Mode().Perm()); err != nil {
			merr = multierror.Append(merr, err)
		}
		return nil
	})
	if walkErr != nil {
		merr = multierror.Append(merr, walkErr)
	}
	return merr.ErrorOrNil()
}

func (p *Path) mergeShallow(dst *Path) error {
	entries, err := p.fs.ReadDir(p.raw)
	if err != nil {
		return err
	}

	var merr *multierror.Error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		target := dst.Join(entry.Name())
		if target.Exists() {
			log().Debug("destination exists, not copying", "path", entry.Name(), "destination", target.raw)
			continue
		}

		info, err := entry.Info()
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if err := copyFile(p.Join(entry.Name()), target, info.Mode().Perm()); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr.ErrorOrNil()
}

func copyFile(src, dst *Path, perm fs.FileMode) error {
	data, err := src.fs.ReadFile(src.raw)
	if err != nil {
		return err
	}
	return dst.fs.WriteFile(dst.raw, data, perm)
}

// within reports whether p is root or lies below it.
func within(p, root string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Delete removes p; a directory is removed with everything below it. A missing
// path is only an error when missingOK is false.
func (p *Path) Delete(missingOK bool) error {
	info, err := p.fs.Stat(p.raw)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && missingOK {
			return nil
		}
		return fmt.Errorf("failed to delete %s: %w", p, err)
	}

	if info.IsDir() {
		err = p.fs.RemoveAll(p.raw)
	} else {
		err = p.fs.Remove(p.raw)
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", p, err)
	}
	return nil
}
