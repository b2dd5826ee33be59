package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/vocanote"
	"github.com/fwojciec/vocanote/fs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLocker records lock usage without touching the OS.
type fakeLocker struct {
	locked   bool
	err      error
	unlocked bool
}

func (l *fakeLocker) TryLockContext(context.Context, time.Duration) (bool, error) {
	return l.locked, l.err
}

func (l *fakeLocker) Unlock() error {
	l.unlocked = true
	return nil
}

func newMemSlot(t *testing.T) (*fs.Slot, afero.Fs, *fakeLocker) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	slot := fs.NewSlot(fsys, "/data", vocanote.NotesKey)
	lock := &fakeLocker{locked: true}
	slot.NewLocker = func(string) fs.Locker { return lock }
	return slot, fsys, lock
}

func TestSlot_Read(t *testing.T) {
	t.Parallel()

	t.Run("reports absent value when file is missing", func(t *testing.T) {
		t.Parallel()

		slot, _, _ := newMemSlot(t)

		value, ok, err := slot.Read(context.Background())

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("returns file contents", func(t *testing.T) {
		t.Parallel()

		slot, fsys, _ := newMemSlot(t)
		require.NoError(t, afero.WriteFile(fsys, "/data/notes.json", []byte(`[]`), 0o644))

		value, ok, err := slot.Read(context.Background())

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[]`, value)
	})
}

func TestSlot_Write(t *testing.T) {
	t.Parallel()

	t.Run("creates directory and writes value", func(t *testing.T) {
		t.Parallel()

		slot, fsys, lock := newMemSlot(t)

		err := slot.Write(context.Background(), `{"version":1,"notes":[]}`)

		require.NoError(t, err)
		data, err := afero.ReadFile(fsys, "/data/notes.json")
		require.NoError(t, err)
		assert.Equal(t, `{"version":1,"notes":[]}`, string(data))
		assert.True(t, lock.unlocked)
	})

	t.Run("overwrites previous value wholesale", func(t *testing.T) {
		t.Parallel()

		slot, _, _ := newMemSlot(t)
		ctx := context.Background()
		require.NoError(t, slot.Write(ctx, "a much longer first value"))

		require.NoError(t, slot.Write(ctx, "short"))

		value, ok, err := slot.Read(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "short", value)
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		slot, fsys, _ := newMemSlot(t)
		require.NoError(t, slot.Write(context.Background(), "value"))

		entries, err := afero.ReadDir(fsys, "/data")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "notes.json", entries[0].Name())
	})

	t.Run("returns ECONFLICT when lock is held elsewhere", func(t *testing.T) {
		t.Parallel()

		slot, fsys, lock := newMemSlot(t)
		lock.locked = false

		err := slot.Write(context.Background(), "value")

		require.Error(t, err)
		assert.Equal(t, vocanote.ECONFLICT, vocanote.ErrorCode(err))
		_, statErr := fsys.Stat("/data/notes.json")
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("returns lock error", func(t *testing.T) {
		t.Parallel()

		slot, _, lock := newMemSlot(t)
		lock.err = errors.New("bad descriptor")

		err := slot.Write(context.Background(), "value")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad descriptor")
	})
}

func TestSlot_OnDisk(t *testing.T) {
	t.Parallel()

	// Given a slot on the real filesystem with the default flock
	dir := filepath.Join(t.TempDir(), "vocanote")
	slot := fs.NewSlot(afero.NewOsFs(), dir, vocanote.NotesKey)
	ctx := context.Background()

	// When I write and read back
	require.NoError(t, slot.Write(ctx, `[{"id":"a"}]`))
	value, ok, err := slot.Read(ctx)

	// Then the value round-trips
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, value)
	assert.Equal(t, filepath.Join(dir, "notes.json"), slot.Path())
}

func TestSlot_DefaultLocker(t *testing.T) {
	t.Parallel()

	t.Run("in-memory filesystem leaves the real disk untouched", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "vocanote")
		fsys := afero.NewMemMapFs()
		slot := fs.NewSlot(fsys, dir, vocanote.NotesKey)

		require.NoError(t, slot.Write(context.Background(), "[]"))

		_, err := os.Stat(dir)
		assert.ErrorIs(t, err, os.ErrNotExist)
		ok, err := afero.Exists(fsys, slot.Path())
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("os filesystem locks beside the slot file", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "vocanote")
		slot := fs.NewSlot(afero.NewOsFs(), dir, vocanote.NotesKey)

		require.NoError(t, slot.Write(context.Background(), "[]"))

		_, err := os.Stat(slot.Path() + ".lock")
		assert.NoError(t, err)
	})
}
