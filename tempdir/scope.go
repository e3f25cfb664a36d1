package tempdir

import (
	"go.uber.org/multierr"
)

// TB is the part of testing.TB the fixture needs.
type TB interface {
	Helper()
	Cleanup(func())
	Errorf(format string, args ...any)
	FailNow()
}

// Run opens a directory, calls fn with it and tears the directory down
// however fn exits. fn's error is returned; a teardown error is appended to
// it. A panic in fn propagates after teardown.
func Run(fn func(d *Dir) error, opts ...Option) (err error) {
	d, err := Open(opts...)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, d.Teardown())
	}()
	return fn(d)
}

// New opens a directory bound to t and tears it down in t.Cleanup.
func New(t TB, opts ...Option) *Dir {
	t.Helper()
	d, err := Open(opts...)
	if err != nil {
		t.Errorf("%v", err)
		t.FailNow()
		return nil
	}
	d.t = t
	t.Cleanup(func() {
		if err := d.Teardown(); err != nil {
			t.Errorf("%v", err)
		}
	})
	return d
}

// Wrap turns fn into a test function that receives its own directory on
// every call. The directory is torn down when fn returns, fails the test or
// panics.
//
//	t.Run("writes", tempdir.Wrap(func(t *testing.T, d *tempdir.Dir) {
//		...
//	}, tempdir.WithIgnore(".svn")))
func Wrap[T TB](fn func(t T, d *Dir), opts ...Option) func(T) {
	return func(t T) {
		t.Helper()
		d, err := Open(opts...)
		if err != nil {
			t.Errorf("%v", err)
			t.FailNow()
			return
		}
		d.t = t
		defer func() {
			if err := d.Teardown(); err != nil {
				t.Errorf("%v", err)
			}
		}()
		fn(t, d)
	}
}
