package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_entry_store.go -package=mocks angertrack/internal/storage EntryStore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// EntryStore defines the interface for entry storage operations.
type EntryStore interface {
	// Insert stores a new entry and returns its ID.
	Insert(ctx context.Context, ts int64, intensity int) (int64, error)
	// List returns all entries, newest first.
	List(ctx context.Context) ([]Entry, error)
	// ListInRange returns entries with start <= ts <= end, newest first.
	ListInRange(ctx context.Context, start, end time.Time) ([]Entry, error)
	// StatsInRange returns count and average intensity for start <= ts <= end.
	StatsInRange(ctx context.Context, start, end time.Time) (RangeStats, error)
	// Bounds returns the oldest and newest timestamps. ok is false when empty.
	Bounds(ctx context.Context) (oldest, newest int64, ok bool, err error)
	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)
	// Delete removes an entry. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id int64) error
	// DeleteAll removes every entry and returns how many were removed.
	DeleteAll(ctx context.Context) (int, error)
}

// EntryRepo provides methods for entry operations.
// It implements the EntryStore interface.
type EntryRepo struct {
	db *sqlx.DB
}

// NewEntryRepo creates a new EntryRepo.
func NewEntryRepo(db *sqlx.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// Insert stores a new entry and returns its ID.
func (r *EntryRepo) Insert(ctx context.Context, ts int64, intensity int) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO entries (ts, intensity) VALUES (?, ?)",
		ts, intensity,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read entry id: %w", err)
	}
	return id, nil
}

// List returns all entries, newest first.
func (r *EntryRepo) List(ctx context.Context) ([]Entry, error) {
	entries := []Entry{}
	err := r.db.SelectContext(ctx, &entries,
		"SELECT id, ts, intensity FROM entries ORDER BY ts DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// ListInRange returns entries with start <= ts <= end, newest first.
func (r *EntryRepo) ListInRange(ctx context.Context, start, end time.Time) ([]Entry, error) {
	entries := []Entry{}
	err := r.db.SelectContext(ctx, &entries,
		"SELECT id, ts, intensity FROM entries WHERE ts BETWEEN ? AND ? ORDER BY ts DESC, id DESC",
		Millis(start), Millis(end),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries in range: %w", err)
	}
	return entries, nil
}

// StatsInRange returns count and average intensity for start <= ts <= end.
// The average is left nil when no entries match.
func (r *EntryRepo) StatsInRange(ctx context.Context, start, end time.Time) (RangeStats, error) {
	var row struct {
		Count int             `db:"cnt"`
		Avg   sql.NullFloat64 `db:"avg"`
	}
	err := r.db.GetContext(ctx, &row,
		"SELECT COUNT(*) AS cnt, AVG(intensity) AS avg FROM entries WHERE ts BETWEEN ? AND ?",
		Millis(start), Millis(end),
	)
	if err != nil {
		return RangeStats{}, fmt.Errorf("failed to query entry stats: %w", err)
	}

	stats := RangeStats{Count: row.Count}
	if row.Avg.Valid && row.Count > 0 {
		avg := row.Avg.Float64
		stats.Average = &avg
	}
	return stats, nil
}

// Bounds returns the oldest and newest timestamps. ok is false when empty.
func (r *EntryRepo) Bounds(ctx context.Context) (int64, int64, bool, error) {
	var row struct {
		Min sql.NullInt64 `db:"min_ts"`
		Max sql.NullInt64 `db:"max_ts"`
	}
	err := r.db.GetContext(ctx, &row, "SELECT MIN(ts) AS min_ts, MAX(ts) AS max_ts FROM entries")
	if err != nil {
		return 0, 0, false, fmt.Errorf("failed to query entry bounds: %w", err)
	}
	if !row.Min.Valid || !row.Max.Valid {
		return 0, 0, false, nil
	}
	return row.Min.Int64, row.Max.Int64, true, nil
}

// Count returns the number of stored entries.
func (r *EntryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM entries"); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

// Delete removes an entry. Deleting a missing ID is not an error.
func (r *EntryRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

// DeleteAll removes every entry and returns how many were removed.
func (r *EntryRepo) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM entries")
	if err != nil {
		return 0, fmt.Errorf("failed to delete entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted entries: %w", err)
	}
	return int(n), nil
}
