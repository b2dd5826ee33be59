package vocanote

import (
	"strings"

	"golang.org/x/text/cases"
)

// FilterNotes returns the notes whose content contains query, ignoring case.
// An empty query returns all notes. Order is preserved.
func FilterNotes(notes []*Note, query string) []*Note {
	if query == "" {
		return notes
	}

	// Casers are stateful, so one is created per call.
	fold := cases.Fold()
	needle := fold.String(query)

	matched := make([]*Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(fold.String(n.Content), needle) {
			matched = append(matched, n)
		}
	}
	return matched
}
