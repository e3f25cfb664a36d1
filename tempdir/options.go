package tempdir

import (
	"log/slog"

	"github.com/spf13/afero"

	fsutil "github.com/vbp1/dirfixture/internal/util/fs"
)

// Allocator creates a fresh, uniquely named directory and returns its path.
type Allocator func() (string, error)

// Remover deletes path and everything beneath it.
type Remover func(path string) error

// Option configures Open, Run, New and Wrap.
type Option func(*options)

type options struct {
	ignore   []string
	path     string
	allocate Allocator
	remove   Remover
	lock     bool
	logger   *slog.Logger
}

func defaultOptions() options {
	osfs := afero.NewOsFs()
	return options{
		allocate: func() (string, error) { return afero.TempDir(osfs, "", "tempdir") },
		remove:   func(path string) error { return fsutil.RemoveTree(osfs, path) },
	}
}

// WithIgnore sets names excluded from Compare and Check results.
// Matching is exact: an entry is dropped when its name equals one of names.
func WithIgnore(names ...string) Option {
	return func(o *options) { o.ignore = append([]string(nil), names...) }
}

// WithPath reuses an existing directory instead of allocating one.
// The directory is neither created nor removed by the fixture.
func WithPath(path string) Option {
	return func(o *options) { o.path = path }
}

// WithAllocator replaces the function used to create owned directories.
func WithAllocator(a Allocator) Option {
	return func(o *options) { o.allocate = a }
}

// WithRemover replaces the function used to delete owned directories.
func WithRemover(r Remover) Option {
	return func(o *options) { o.remove = r }
}

// WithLock holds an exclusive file lock keyed by the directory path until
// teardown. Useful when several test binaries share one WithPath directory.
func WithLock() Option {
	return func(o *options) { o.lock = true }
}

// WithLogger sets the logger for lifecycle debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// CompareOption adjusts a single Compare or Check call.
type CompareOption func(*compareOptions)

type compareOptions struct {
	at     []string
	ignore []string
}

// At inspects the subdirectory named by segments instead of the root.
func At(segments ...string) CompareOption {
	return func(o *compareOptions) { o.at = segments }
}

// Ignoring overrides the fixture's ignore names for one call.
// Ignoring() with no names ignores nothing.
func Ignoring(names ...string) CompareOption {
	return func(o *compareOptions) { o.ignore = names }
}
