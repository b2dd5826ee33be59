package store_test

import (
	"testing"
	"time"

	"github.com/fwojciec/vocanote"
	"github.com/fwojciec/vocanote/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a collection", func(t *testing.T) {
		t.Parallel()

		notes := []*vocanote.Note{
			{ID: "b", CreatedAt: time.Date(2024, 1, 30, 12, 0, 1, 500, time.UTC), Content: "second"},
			{ID: "a", CreatedAt: time.Date(2024, 1, 30, 12, 0, 0, 0, time.UTC), Content: "first\nline two"},
		}

		value, err := store.Encode(notes)
		require.NoError(t, err)

		got, err := store.Decode(value)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for i := range notes {
			assert.Equal(t, notes[i].ID, got[i].ID)
			assert.Equal(t, notes[i].Content, got[i].Content)
			assert.True(t, notes[i].CreatedAt.Equal(got[i].CreatedAt))
		}
	})

	t.Run("round-trips the empty collection", func(t *testing.T) {
		t.Parallel()

		value, err := store.Encode(nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{"version":1,"notes":[]}`, value)

		got, err := store.Decode(value)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("accepts legacy bare array", func(t *testing.T) {
		t.Parallel()

		got, err := store.Decode(`[{"id":"x1","date":"2024-01-30T12:00:00.000Z","content":"Buy milk"}]`)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "x1", got[0].ID)
		assert.Equal(t, "Buy milk", got[0].Content)
		assert.Equal(t, time.Date(2024, 1, 30, 12, 0, 0, 0, time.UTC), got[0].CreatedAt.UTC())
	})

	t.Run("keeps first occurrence of duplicate IDs", func(t *testing.T) {
		t.Parallel()

		got, err := store.Decode(`{"version":1,"notes":[
			{"id":"dup","date":"2024-01-30T12:00:01Z","content":"newer"},
			{"id":"dup","date":"2024-01-30T12:00:00Z","content":"older"}
		]}`)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "newer", got[0].Content)
	})

	tests := []struct {
		name  string
		value string
	}{
		{"empty value", ""},
		{"not json", "not json at all"},
		{"truncated json", `{"version":1,"notes":[{"id":"a"`},
		{"missing version", `{"notes":[]}`},
		{"future version", `{"version":2,"notes":[]}`},
		{"missing id", `{"version":1,"notes":[{"date":"2024-01-30T12:00:00Z","content":"x"}]}`},
		{"bad date", `{"version":1,"notes":[{"id":"a","date":"yesterday","content":"x"}]}`},
		{"wrong shape", `"just a string"`},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := store.Decode(tt.value)

			require.Error(t, err)
			assert.Equal(t, vocanote.EINVALID, vocanote.ErrorCode(err))
		})
	}
}
