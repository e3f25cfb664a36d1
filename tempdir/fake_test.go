package tempdir

import (
	"fmt"
	"testing"
)

// fakeT records failures instead of stopping the test.
type fakeT struct {
	*testing.T

	failed   bool
	errors   []string
	cleanups []func()
}

func (t *fakeT) Errorf(format string, args ...any) {
	t.failed = true
	t.errors = append(t.errors, fmt.Sprintf(format, args...))
}

func (t *fakeT) FailNow() { t.failed = true }

func (t *fakeT) Cleanup(f func()) {
	t.cleanups = append(t.cleanups, f)
}

func (t *fakeT) runCleanup() {
	for _, f := range t.cleanups {
		defer f()
	}
}
