package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_note_store.go -package=mocks angertrack/internal/storage NoteStore

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// NoteStore defines the interface for anger note storage operations.
type NoteStore interface {
	// Insert stores a new note and returns its ID.
	Insert(ctx context.Context, ts int64, text string) (int64, error)
	// List returns all notes, newest first.
	List(ctx context.Context) ([]Note, error)
	// ListInRange returns notes with start <= ts <= end, newest first.
	ListInRange(ctx context.Context, start, end time.Time) ([]Note, error)
	// Count returns the number of stored notes.
	Count(ctx context.Context) (int, error)
	// Delete removes a note. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id int64) error
	// DeleteAll removes every note and returns how many were removed.
	DeleteAll(ctx context.Context) (int, error)
}

// NoteRepo provides methods for note operations.
// It implements the NoteStore interface.
type NoteRepo struct {
	db *sqlx.DB
}

// NewNoteRepo creates a new NoteRepo.
func NewNoteRepo(db *sqlx.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

// Insert stores a new note and returns its ID.
// The caller is responsible for trimming and validating text.
func (r *NoteRepo) Insert(ctx context.Context, ts int64, text string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO anger_notes (ts, note) VALUES (?, ?)",
		ts, text,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read note id: %w", err)
	}
	return id, nil
}

// List returns all notes, newest first.
func (r *NoteRepo) List(ctx context.Context) ([]Note, error) {
	notes := []Note{}
	err := r.db.SelectContext(ctx, &notes,
		"SELECT id, ts, note FROM anger_notes ORDER BY ts DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// ListInRange returns notes with start <= ts <= end, newest first.
func (r *NoteRepo) ListInRange(ctx context.Context, start, end time.Time) ([]Note, error) {
	notes := []Note{}
	err := r.db.SelectContext(ctx, &notes,
		"SELECT id, ts, note FROM anger_notes WHERE ts BETWEEN ? AND ? ORDER BY ts DESC, id DESC",
		Millis(start), Millis(end),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes in range: %w", err)
	}
	return notes, nil
}

// Count returns the number of stored notes.
func (r *NoteRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM anger_notes"); err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return n, nil
}

// Delete removes a note. Deleting a missing ID is not an error.
func (r *NoteRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM anger_notes WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

// DeleteAll removes every note and returns how many were removed.
func (r *NoteRepo) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM anger_notes")
	if err != nil {
		return 0, fmt.Errorf("failed to delete notes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted notes: %w", err)
	}
	return int(n), nil
}
