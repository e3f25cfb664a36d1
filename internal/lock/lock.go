package lock

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileLock wraps gofrs/flock for a fixture directory.
type FileLock struct {
	fl   *flock.Flock
	path string
}

// New returns lock at <tmp>/dirfixture_<hash>.lock.
// The lock file lives outside dir so the directory contents are never touched.
func New(dir string) *FileLock {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = filepath.Clean(dir)
	}
	sum := sha256.Sum256([]byte(abs))
	name := filepath.Join(os.TempDir(), fmt.Sprintf("dirfixture_%s.lock", hex.EncodeToString(sum[:8])))
	return &FileLock{fl: flock.New(name), path: name}
}

// Path of the lock file.
func (l *FileLock) Path() string { return l.path }

// Lock blocks until the lock is held.
func (l *FileLock) Lock() error {
	return l.fl.Lock()
}

// TryLock attempts non-blocking lock.
func (l *FileLock) TryLock() (bool, error) {
	return l.fl.TryLock()
}

// Unlock releases. The lock file is kept: removing it would let a waiter
// holding the old inode and a newcomer creating a new one both succeed.
func (l *FileLock) Unlock() error {
	return l.fl.Unlock()
}
