package batch

import (
	"fmt"

	"github.com/gofrs/flock"
)

// Lock serializes access to a task snapshot across hlsgrab processes.
type Lock struct {
	lock *flock.Flock
}

// NewLock builds a lock guarding the given task file.
func NewLock(taskFile string) *Lock {
	return &Lock{lock: flock.New(taskFile + ".lock")}
}

// Acquire takes the lock or reports which process holds it.
func (l *Lock) Acquire() error {
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire task lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("another hlsgrab run holds %s", l.lock.Path())
	}
	return nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	return l.lock.Unlock()
}
