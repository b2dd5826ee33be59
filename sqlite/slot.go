package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/vocanote"
)

// Compile-time interface verification.
var _ vocanote.Slot = (*Slot)(nil)

// Slot implements vocanote.Slot as a row in the slots table.
type Slot struct {
	db  *DB
	key string
}

// NewSlot creates a Slot for key.
func NewSlot(db *DB, key string) *Slot {
	return &Slot{db: db, key: key}
}

// Read returns the stored value. ok is false when the row does not exist.
func (s *Slot) Read(ctx context.Context) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read slot %q: %w", s.key, err)
	}
	return value, true, nil
}

// Write replaces the stored value.
func (s *Slot) Write(ctx context.Context, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", s.key, err)
	}
	return nil
}
