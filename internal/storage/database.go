package storage

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// The pool is capped at a single connection: the tracker has one user and
// one writer, and ":memory:" databases only exist per connection.
func New(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(30 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Concurrent readers while the HTTP server writes
	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates the entries, anger_notes and tools tables and their indexes.
// It is idempotent and can be run multiple times safely. Schema changes must stay
// additive: there is no migration version table.
func Migrate(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ts INTEGER NOT NULL,
			intensity INTEGER NOT NULL CHECK (intensity BETWEEN 1 AND 10)
		);`,
		`CREATE TABLE IF NOT EXISTS anger_notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ts INTEGER NOT NULL,
			note TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS tools (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT,
			createdAt INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_entries_ts ON entries (ts);`,
		`CREATE INDEX IF NOT EXISTS idx_anger_notes_ts ON anger_notes (ts);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
