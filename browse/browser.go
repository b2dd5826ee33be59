// Package browse holds the note list view: a search query and the subset
// of notes it selects.
package browse

import (
	"context"
	"sync"

	"github.com/fwojciec/vocanote"
)

// Browser filters the note collection by a search query. The visible set
// is derived on every call, so it always reflects the latest query and the
// latest collection.
type Browser struct {
	notes vocanote.NoteService

	mu    sync.Mutex
	query string
}

// New creates a Browser with an empty query.
func New(notes vocanote.NoteService) *Browser {
	return &Browser{notes: notes}
}

// SetQuery replaces the search query.
func (b *Browser) SetQuery(q string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.query = q
}

// Query returns the current search query.
func (b *Browser) Query() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.query
}

// Visible returns the notes matching the current query, in store order.
func (b *Browser) Visible(ctx context.Context) ([]*vocanote.Note, error) {
	notes, err := b.notes.Notes(ctx)
	if err != nil {
		return nil, err
	}
	return vocanote.FilterNotes(notes, b.Query()), nil
}

// Delete removes a note. Deleting an unknown id is not an error.
func (b *Browser) Delete(ctx context.Context, id string) error {
	return b.notes.DeleteNote(ctx, id)
}

// Watch calls render with the filtered view of each collection received
// from updates. It returns when ctx is done or updates is closed.
func (b *Browser) Watch(ctx context.Context, updates <-chan []*vocanote.Note, render func([]*vocanote.Note)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case notes, ok := <-updates:
			if !ok {
				return nil
			}
			render(vocanote.FilterNotes(notes, b.Query()))
		}
	}
}
