package slog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/vocanote"
	"github.com/fwojciec/vocanote/mock"
	locslog "github.com/fwojciec/vocanote/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingNoteService_CreateNote(t *testing.T) {
	t.Parallel()

	t.Run("logs created note id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.NoteService{
			CreateNoteFn: func(_ context.Context, content string) (*vocanote.Note, error) {
				return &vocanote.Note{ID: "abc", Content: content}, nil
			},
		}

		note, err := locslog.NewLoggingNoteService(inner, newLogger(&buf)).CreateNote(context.Background(), "hello")

		require.NoError(t, err)
		assert.Equal(t, "abc", note.ID)
		output := buf.String()
		assert.Contains(t, output, "create note")
		assert.Contains(t, output, "id=abc")
		assert.Contains(t, output, "length=5")
	})

	t.Run("logs rejection", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.NoteService{
			CreateNoteFn: func(context.Context, string) (*vocanote.Note, error) {
				return nil, vocanote.Errorf(vocanote.EINVALID, "note content required")
			},
		}

		_, err := locslog.NewLoggingNoteService(inner, newLogger(&buf)).CreateNote(context.Background(), "")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "note content required")
	})
}

func TestLoggingNoteService_Notes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.NoteService{
		NotesFn: func(context.Context) ([]*vocanote.Note, error) {
			return []*vocanote.Note{{ID: "1"}, {ID: "2"}}, nil
		},
	}

	notes, err := locslog.NewLoggingNoteService(inner, newLogger(&buf)).Notes(context.Background())

	require.NoError(t, err)
	assert.Len(t, notes, 2)
	assert.Contains(t, buf.String(), "count=2")
}

func TestLoggingNoteService_DeleteNote(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var deleted string
	inner := &mock.NoteService{
		DeleteNoteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	err := locslog.NewLoggingNoteService(inner, newLogger(&buf)).DeleteNote(context.Background(), "xyz")

	require.NoError(t, err)
	assert.Equal(t, "xyz", deleted)
	output := buf.String()
	assert.Contains(t, output, "delete note")
	assert.Contains(t, output, "id=xyz")
}
