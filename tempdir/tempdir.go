// Package tempdir provides a test fixture that manages one real temporary
// directory: writing files into it, asserting on its listing and removing it
// when the scope that acquired it ends.
package tempdir

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/vbp1/dirfixture/internal/lock"
	"github.com/vbp1/dirfixture/internal/seqcmp"
	fsutil "github.com/vbp1/dirfixture/internal/util/fs"
)

var (
	// ErrOutsideRoot is returned for path segments that would resolve
	// outside the fixture directory.
	ErrOutsideRoot = errors.New("tempdir: path escapes directory")
	// ErrNotDir is returned by Open when WithPath names something other
	// than a directory.
	ErrNotDir = errors.New("tempdir: not a directory")
)

// Dir is a handle on one managed directory.
// A Dir must not be shared between goroutines.
type Dir struct {
	path   string
	owned  bool
	ignore []string

	fs     afero.Fs
	remove Remover
	lock   *lock.FileLock
	log    *slog.Logger
	t      TB
	torn   bool
}

// Open acquires a directory. With WithPath the given directory is wrapped
// as is; otherwise a fresh one is allocated and owned by the returned Dir.
// Callers must call Teardown.
func Open(opts ...Option) (*Dir, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	d := &Dir{ignore: o.ignore, remove: o.remove, log: logger}
	osfs := afero.NewOsFs()

	if o.path != "" {
		abs, err := filepath.Abs(o.path)
		if err != nil {
			return nil, fmt.Errorf("tempdir: %w", err)
		}
		info, err := osfs.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("tempdir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrNotDir, abs)
		}
		d.path = abs
		logger.Debug("tempdir: using existing directory", "path", abs)
	} else {
		p, err := o.allocate()
		if err != nil {
			return nil, fmt.Errorf("tempdir: allocate: %w", err)
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("tempdir: %w", err), o.remove(p))
		}
		d.path = abs
		d.owned = true
		logger.Debug("tempdir: allocated", "path", abs)
	}

	if o.lock {
		l := lock.New(d.path)
		if err := l.Lock(); err != nil {
			return nil, multierr.Append(fmt.Errorf("tempdir: lock %s: %w", d.path, err), d.Teardown())
		}
		d.lock = l
	}

	d.fs = afero.NewBasePathFs(osfs, d.path)
	return d, nil
}

// Path joins the directory with elem. Without elem it returns the directory.
func (d *Dir) Path(elem ...string) string {
	return filepath.Join(append([]string{d.path}, elem...)...)
}

// Owned reports whether the directory was allocated by the fixture and will
// be removed on teardown.
func (d *Dir) Owned() bool { return d.owned }

// Teardown removes an owned directory. A directory that is already gone is
// fine. Unowned directories are left untouched. Only the first call has any
// effect.
func (d *Dir) Teardown() error {
	if d.torn {
		return nil
	}
	d.torn = true

	var err error
	if d.owned {
		if rerr := d.remove(d.path); rerr != nil && !errors.Is(rerr, iofs.ErrNotExist) {
			err = fmt.Errorf("tempdir: remove %s: %w", d.path, rerr)
		} else {
			d.log.Debug("tempdir: removed", "path", d.path)
		}
	} else {
		d.log.Debug("tempdir: leaving existing directory", "path", d.path)
	}
	if d.lock != nil {
		err = multierr.Append(err, d.lock.Unlock())
	}
	return err
}

// Write stores content in the file named by segments, creating missing
// intermediate directories and replacing any previous content.
func (d *Dir) Write(segments []string, content []byte) error {
	name, err := local(segments)
	if err != nil {
		return err
	}
	if parent := filepath.Dir(name); parent != "." {
		if err := fsutil.MkdirP(d.fs, parent); err != nil {
			return err
		}
	}
	return afero.WriteFile(d.fs, name, content, 0o644)
}

// WriteFile is Write for a file directly under the root.
func (d *Dir) WriteFile(name string, content []byte) error {
	return d.Write([]string{name}, content)
}

// Read returns the content of the file named by segments.
func (d *Dir) Read(segments ...string) ([]byte, error) {
	name, err := local(segments)
	if err != nil {
		return nil, err
	}
	return afero.ReadFile(d.fs, name)
}

// MakeDir creates the directory named by segments along with its parents.
func (d *Dir) MakeDir(segments ...string) error {
	name, err := local(segments)
	if err != nil {
		return err
	}
	return fsutil.MkdirP(d.fs, name)
}

// Clear removes everything inside the directory, keeping the directory.
func (d *Dir) Clear() error {
	return fsutil.CleanupDir(d.fs, ".")
}

// Check lists the immediate entries of the root (or of At's subdirectory),
// drops ignored names and compares the sorted result with sorted expected.
// On difference it returns a *seqcmp.MismatchError whose First side is the
// actual listing and Second side is expected.
func (d *Dir) Check(expected []string, opts ...CompareOption) error {
	co := compareOptions{ignore: d.ignore}
	for _, opt := range opts {
		opt(&co)
	}

	dir := "."
	if len(co.at) > 0 {
		var err error
		if dir, err = local(co.at); err != nil {
			return err
		}
	}
	names, err := fsutil.ListNames(d.fs, dir)
	if err != nil {
		return err
	}

	actual := names[:0]
	for _, n := range names {
		if !slices.Contains(co.ignore, n) {
			actual = append(actual, n)
		}
	}
	slices.Sort(actual)

	want := slices.Clone(expected)
	slices.Sort(want)
	return seqcmp.Compare(actual, want)
}

// Compare is Check reported as a test failure on the TB the Dir is bound to
// (see New and Wrap). A Dir obtained from Open or Run has no TB; Compare
// panics with the error instead.
func (d *Dir) Compare(expected []string, opts ...CompareOption) {
	err := d.Check(expected, opts...)
	if err == nil {
		return
	}
	if d.t == nil {
		panic(err)
	}
	d.t.Helper()
	require.Fail(d.t, err.Error())
}

func local(segments []string) (string, error) {
	if len(segments) == 0 {
		return "", fmt.Errorf("%w: no path segments", ErrOutsideRoot)
	}
	name := filepath.Join(segments...)
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, segments)
	}
	return name, nil
}
