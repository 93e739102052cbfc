package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_tool_store.go -package=mocks angertrack/internal/storage ToolStore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ToolStore defines the interface for coping tool storage operations.
type ToolStore interface {
	// Insert stores a new tool and returns its ID.
	Insert(ctx context.Context, name, description string, createdAt int64) (int64, error)
	// InsertMany stores tools atomically, in slice order.
	InsertMany(ctx context.Context, tools []Tool) error
	// List returns all tools in creation order.
	List(ctx context.Context) ([]Tool, error)
	// Delete removes a tool. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id int64) error
	// DeleteAll removes every tool.
	DeleteAll(ctx context.Context) error
}

// ToolRepo provides methods for tool operations.
// It implements the ToolStore interface.
type ToolRepo struct {
	db *sqlx.DB
}

// NewToolRepo creates a new ToolRepo.
func NewToolRepo(db *sqlx.DB) *ToolRepo {
	return &ToolRepo{db: db}
}

// Insert stores a new tool and returns its ID.
func (r *ToolRepo) Insert(ctx context.Context, name, description string, createdAt int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO tools (name, description, createdAt) VALUES (?, ?, ?)",
		name, description, createdAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert tool: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read tool id: %w", err)
	}
	return id, nil
}

// InsertMany stores tools atomically, in slice order. IDs on the input are ignored.
func (r *ToolRepo) InsertMany(ctx context.Context, tools []Tool) error {
	return WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for _, t := range tools {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO tools (name, description, createdAt) VALUES (?, ?, ?)",
				t.Name, t.Description, t.CreatedAt,
			); err != nil {
				return fmt.Errorf("failed to insert tool %q: %w", t.Name, err)
			}
		}
		return nil
	})
}

// List returns all tools in creation order. Tools created in the same
// millisecond keep their insertion order.
func (r *ToolRepo) List(ctx context.Context) ([]Tool, error) {
	tools := []Tool{}
	err := r.db.SelectContext(ctx, &tools,
		"SELECT id, name, COALESCE(description, '') AS description, createdAt FROM tools ORDER BY createdAt ASC, id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return tools, nil
}

// Delete removes a tool. Deleting a missing ID is not an error.
func (r *ToolRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM tools WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete tool: %w", err)
	}
	return nil
}

// DeleteAll removes every tool.
func (r *ToolRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM tools"); err != nil {
		return fmt.Errorf("failed to delete tools: %w", err)
	}
	return nil
}
