package vocanote

import "context"

// NotesKey is the storage slot holding the serialized note collection.
const NotesKey = "notes"

// Slot is a single local key-value slot holding text.
type Slot interface {
	// Read returns the stored value. ok is false when nothing is stored.
	Read(ctx context.Context) (value string, ok bool, err error)

	// Write replaces the stored value.
	Write(ctx context.Context, value string) error
}
