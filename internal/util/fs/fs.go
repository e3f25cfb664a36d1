package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// MkdirP creates path recursively with 0755 permissions (like `mkdir -p`).
// An existing directory is not an error.
func MkdirP(fsys afero.Fs, path string) error {
	if path == "" {
		return fmt.Errorf("path is empty")
	}
	return fsys.MkdirAll(path, 0o755)
}

// RemoveTree deletes path and everything beneath it.
// A tree that is already gone, fully or in part, is not an error.
func RemoveTree(fsys afero.Fs, path string) error {
	if path == "" {
		return fmt.Errorf("path is empty")
	}
	if err := fsys.RemoveAll(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return err
	}
	return nil
}

// CleanupDir removes everything inside dir.
// The directory itself stays.
func CleanupDir(fsys afero.Fs, dir string) error {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		if err := fsys.RemoveAll(p); err != nil {
			return err
		}
	}
	return nil
}

// ListNames returns the names of the immediate entries of dir.
func ListNames(fsys afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}
