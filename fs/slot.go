// Package fs provides file-based storage and audio input for vocanote.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/vocanote"
	"github.com/gofrs/flock"
	"github.com/spf13/afero"
)

// lockRetryDelay is how often a contended write lock is retried.
const lockRetryDelay = 50 * time.Millisecond

// Ensure Slot implements vocanote.Slot at compile time.
var _ vocanote.Slot = (*Slot)(nil)

// Locker is an exclusive cross-process lock.
type Locker interface {
	TryLockContext(ctx context.Context, retryDelay time.Duration) (bool, error)
	Unlock() error
}

// Slot implements vocanote.Slot as a single JSON file in a directory.
// Writes replace the file atomically while holding a sibling lock file.
type Slot struct {
	// NewLocker returns the lock guarding writes to path. Defaults to a
	// flock when fsys is an *afero.OsFs, and to a no-op lock otherwise,
	// since other filesystems are not shared between processes.
	NewLocker func(path string) Locker

	fs  afero.Fs
	dir string
	key string
}

// NewSlot creates a Slot storing key under dir on fsys.
func NewSlot(fsys afero.Fs, dir, key string) *Slot {
	newLocker := func(string) Locker { return nopLocker{} }
	if _, ok := fsys.(*afero.OsFs); ok {
		newLocker = func(path string) Locker { return flock.New(path) }
	}
	return &Slot{
		NewLocker: newLocker,
		fs:        fsys,
		dir:       dir,
		key:       key,
	}
}

// nopLocker always acquires.
type nopLocker struct{}

func (nopLocker) TryLockContext(context.Context, time.Duration) (bool, error) {
	return true, nil
}

func (nopLocker) Unlock() error {
	return nil
}

// Path returns the file backing the slot.
func (s *Slot) Path() string {
	return filepath.Join(s.dir, s.key+".json")
}

// Read returns the file contents. ok is false when the file does not exist.
func (s *Slot) Read(ctx context.Context) (string, bool, error) {
	data, err := afero.ReadFile(s.fs, s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", s.Path(), err)
	}
	return string(data), true, nil
}

// Write atomically replaces the file contents.
func (s *Slot) Write(ctx context.Context, value string) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", s.dir, err)
	}

	lock := s.NewLocker(s.Path() + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", s.Path(), err)
	}
	if !locked {
		return vocanote.Errorf(vocanote.ECONFLICT, "%s is locked by another process", s.Path())
	}
	defer lock.Unlock()

	return writeFileAtomic(s.fs, s.Path(), []byte(value))
}
