package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/vocanote"
)

// SchemaVersion is the version written into every persisted collection.
const SchemaVersion = 1

// record is the persisted form of a note.
type record struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// envelope is the versioned persisted collection.
type envelope struct {
	Version int      `json:"version"`
	Notes   []record `json:"notes"`
}

// Encode serializes a collection for storage in a slot.
func Encode(notes []*vocanote.Note) (string, error) {
	env := envelope{Version: SchemaVersion, Notes: make([]record, 0, len(notes))}
	for _, n := range notes {
		env.Notes = append(env.Notes, record{
			ID:      n.ID,
			Date:    n.CreatedAt.UTC().Format(time.RFC3339Nano),
			Content: n.Content,
		})
	}

	b, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("failed to encode notes: %w", err)
	}
	return string(b), nil
}

// Decode parses a persisted collection. It accepts the versioned envelope
// and the legacy bare array of records. Returns EINVALID when value cannot
// be parsed or was written by a newer schema.
func Decode(value string) ([]*vocanote.Note, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, vocanote.Errorf(vocanote.EINVALID, "empty notes value")
	}

	var records []record
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal([]byte(trimmed), &records); err != nil {
			return nil, vocanote.Errorf(vocanote.EINVALID, "malformed legacy notes: %v", err)
		}
	} else {
		var env envelope
		if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
			return nil, vocanote.Errorf(vocanote.EINVALID, "malformed notes: %v", err)
		}
		if env.Version < 1 || env.Version > SchemaVersion {
			return nil, vocanote.Errorf(vocanote.EINVALID, "unsupported notes schema version %d", env.Version)
		}
		records = env.Notes
	}

	notes := make([]*vocanote.Note, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, vocanote.Errorf(vocanote.EINVALID, "note %d has no id", i)
		}
		createdAt, err := time.Parse(time.RFC3339Nano, r.Date)
		if err != nil {
			return nil, vocanote.Errorf(vocanote.EINVALID, "note %q has invalid date %q", r.ID, r.Date)
		}

		// Newest first, so the first occurrence of a duplicate ID wins.
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}

		notes = append(notes, &vocanote.Note{
			ID:        r.ID,
			CreatedAt: createdAt,
			Content:   r.Content,
		})
	}
	return notes, nil
}
