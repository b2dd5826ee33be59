package vocanote

import (
	"context"
	"time"
)

// Note represents a user-authored text record.
// Notes are immutable once created.
type Note struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"date"`
	Content   string    `json:"content"`
}

// Validate returns an error if the note contains invalid fields.
// Only exact-empty content is rejected; whitespace is kept as-is.
func (n *Note) Validate() error {
	if n.ID == "" {
		return Errorf(EINVALID, "note ID required")
	}
	if n.Content == "" {
		return Errorf(EINVALID, "note content required")
	}
	return nil
}

// NoteService represents a service for managing the note collection.
type NoteService interface {
	// Notes returns the collection, newest first.
	Notes(ctx context.Context) ([]*Note, error)

	// CreateNote prepends a new note with a fresh ID and the current time.
	// Returns EINVALID if content is empty.
	CreateNote(ctx context.Context, content string) (*Note, error)

	// DeleteNote removes the note with the given ID.
	// Deleting an ID that is not present is not an error.
	DeleteNote(ctx context.Context, id string) error
}
