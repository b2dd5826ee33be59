package vocanote

import "strings"

// FormatNotes formats notes for terminal display.
// Each note gets a header with its ID and creation time.
// Notes are separated by blank lines.
func FormatNotes(notes []*Note) string {
	if len(notes) == 0 {
		return ""
	}

	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		header := "## " + n.ID + " (" + n.CreatedAt.Format("2006-01-02 15:04") + ")"
		parts = append(parts, header+"\n"+n.Content)
	}

	return strings.Join(parts, "\n\n")
}
