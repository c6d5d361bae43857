package fsstore

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// withFileLock runs fn while holding an exclusive advisory flock on the
// given lock file, serializing read-check-write sequences across
// concurrent processes. The lock file itself is left in place.
func withFileLock(path string, fn func() error) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("opening lock file: %w", err)
	}
	defer f.Close()

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	defer unix.Flock(int(f.Fd()), unix.LOCK_UN)

	return fn()
}
