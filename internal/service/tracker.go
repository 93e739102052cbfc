package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_tracker.go -package=mocks angertrack/internal/service Tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"

	"angertrack/internal/contextutil"
	"angertrack/internal/storage"
)

const (
	MinIntensity = 1
	MaxIntensity = 10

	MaxToolNameLength        = 50
	MaxToolDescriptionLength = 200
)

// DefaultTools are seeded, in this order, when the tool list is empty at load time.
var DefaultTools = []storage.Tool{
	{Name: "💧 Beber agua con hielo", Description: "Toma un vaso de agua fría con hielo para refrescarte y calmarte"},
	{Name: "🌧️ Técnica RAIN", Description: "Reconoce, Acepta, Investiga, No te identifiques con la emoción"},
	{Name: "🧘 Respiración profunda", Description: "Inhala por 4 segundos, mantén por 4, exhala por 4"},
	{Name: "🚶 Caminar 5 minutos", Description: "Da un paseo breve para cambiar tu entorno y perspectiva"},
}

// Tracker is the write/list surface over entries, notes and tools.
// Inputs are validated before anything is persisted, and every storage
// failure is returned as a *StorageError.
type Tracker interface {
	// Initialize creates the schema if needed. Safe to call repeatedly.
	Initialize(ctx context.Context) error

	InsertEntry(ctx context.Context, intensity int) (storage.Entry, error)
	ListEntries(ctx context.Context) ([]storage.Entry, error)
	CountEntries(ctx context.Context) (int, error)
	DeleteEntry(ctx context.Context, id int64) error
	DeleteAllEntries(ctx context.Context) (int, error)

	InsertNote(ctx context.Context, text string) (storage.Note, error)
	ListNotes(ctx context.Context) ([]storage.Note, error)
	CountNotes(ctx context.Context) (int, error)
	DeleteNote(ctx context.Context, id int64) error
	DeleteAllNotes(ctx context.Context) (int, error)

	InsertTool(ctx context.Context, name, description string) (storage.Tool, error)
	// ListTools seeds DefaultTools when the collection is empty, then lists.
	ListTools(ctx context.Context) ([]storage.Tool, error)
	DeleteTool(ctx context.Context, id int64) error
	DeleteAllTools(ctx context.Context) error
}

// Stores groups the repositories a Tracker writes to.
type Stores struct {
	Entries storage.EntryStore
	Notes   storage.NoteStore
	Tools   storage.ToolStore
}

// NewStores builds SQLite-backed stores over db.
func NewStores(db *sqlx.DB) Stores {
	return Stores{
		Entries: storage.NewEntryRepo(db),
		Notes:   storage.NewNoteRepo(db),
		Tools:   storage.NewToolRepo(db),
	}
}

// tracker implements Tracker.
type tracker struct {
	db     *sqlx.DB
	stores Stores
	now    func() time.Time
}

// NewTracker creates a new Tracker. db is only used by Initialize and may be
// nil when the schema is managed elsewhere. now defaults to time.Now.
func NewTracker(db *sqlx.DB, stores Stores, now func() time.Time) Tracker {
	if now == nil {
		now = time.Now
	}
	return &tracker{
		db:     db,
		stores: stores,
		now:    now,
	}
}

func (t *tracker) Initialize(ctx context.Context) error {
	if t.db == nil {
		return &StorageError{Op: "initialize", Err: errors.New("no database handle")}
	}
	if err := storage.Migrate(t.db); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "schema migration failed", "error", err)
		return NewStorageError("initialize", err)
	}
	return nil
}

func (t *tracker) InsertEntry(ctx context.Context, intensity int) (storage.Entry, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if intensity < MinIntensity || intensity > MaxIntensity {
		logger.WarnContext(ctx, "rejected entry", "intensity", intensity)
		return storage.Entry{}, &ValidationError{
			Field:   "intensity",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinIntensity, MaxIntensity, intensity),
		}
	}

	ts := storage.Millis(t.now())
	id, err := t.stores.Entries.Insert(ctx, ts, intensity)
	if err != nil {
		logger.ErrorContext(ctx, "failed to insert entry", "error", err)
		return storage.Entry{}, NewStorageError("insert entry", err)
	}

	logger.InfoContext(ctx, "entry logged", "id", id, "intensity", intensity)
	return storage.Entry{ID: id, TS: ts, Intensity: intensity}, nil
}

func (t *tracker) ListEntries(ctx context.Context) ([]storage.Entry, error) {
	entries, err := t.stores.Entries.List(ctx)
	if err != nil {
		return nil, NewStorageError("list entries", err)
	}
	return entries, nil
}

func (t *tracker) CountEntries(ctx context.Context) (int, error) {
	n, err := t.stores.Entries.Count(ctx)
	if err != nil {
		return 0, NewStorageError("count entries", err)
	}
	return n, nil
}

func (t *tracker) DeleteEntry(ctx context.Context, id int64) error {
	if err := t.stores.Entries.Delete(ctx, id); err != nil {
		return NewStorageError("delete entry", err)
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "entry deleted", "id", id)
	return nil
}

func (t *tracker) DeleteAllEntries(ctx context.Context) (int, error) {
	n, err := t.stores.Entries.DeleteAll(ctx)
	if err != nil {
		return 0, NewStorageError("delete all entries", err)
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "all entries deleted", "count", n)
	return n, nil
}

func (t *tracker) InsertNote(ctx context.Context, text string) (storage.Note, error) {
	logger := contextutil.LoggerFromContext(ctx)

	text = strings.TrimSpace(text)
	if text == "" {
		logger.WarnContext(ctx, "rejected empty note")
		return storage.Note{}, &ValidationError{
			Field:   "text",
			Message: "cannot be empty",
		}
	}

	ts := storage.Millis(t.now())
	id, err := t.stores.Notes.Insert(ctx, ts, text)
	if err != nil {
		logger.ErrorContext(ctx, "failed to insert note", "error", err)
		return storage.Note{}, NewStorageError("insert note", err)
	}

	logger.InfoContext(ctx, "note saved", "id", id, "length", utf8.RuneCountInString(text))
	return storage.Note{ID: id, TS: ts, Text: text}, nil
}

func (t *tracker) ListNotes(ctx context.Context) ([]storage.Note, error) {
	notes, err := t.stores.Notes.List(ctx)
	if err != nil {
		return nil, NewStorageError("list notes", err)
	}
	return notes, nil
}

func (t *tracker) CountNotes(ctx context.Context) (int, error) {
	n, err := t.stores.Notes.Count(ctx)
	if err != nil {
		return 0, NewStorageError("count notes", err)
	}
	return n, nil
}

func (t *tracker) DeleteNote(ctx context.Context, id int64) error {
	if err := t.stores.Notes.Delete(ctx, id); err != nil {
		return NewStorageError("delete note", err)
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "note deleted", "id", id)
	return nil
}

func (t *tracker) DeleteAllNotes(ctx context.Context) (int, error) {
	n, err := t.stores.Notes.DeleteAll(ctx)
	if err != nil {
		return 0, NewStorageError("delete all notes", err)
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "all notes deleted", "count", n)
	return n, nil
}

func (t *tracker) InsertTool(ctx context.Context, name, description string) (storage.Tool, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if err := validateTool(name, description); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "rejected tool", "error", err)
		return storage.Tool{}, err
	}

	createdAt := storage.Millis(t.now())
	id, err := t.stores.Tools.Insert(ctx, name, description, createdAt)
	if err != nil {
		return storage.Tool{}, NewStorageError("insert tool", err)
	}
	return storage.Tool{ID: id, Name: name, Description: description, CreatedAt: createdAt}, nil
}

func validateTool(name, description string) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if n := utf8.RuneCountInString(name); n > MaxToolNameLength {
		return &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("must be at most %d characters, got %d", MaxToolNameLength, n),
		}
	}
	if n := utf8.RuneCountInString(description); n > MaxToolDescriptionLength {
		return &ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("must be at most %d characters, got %d", MaxToolDescriptionLength, n),
		}
	}
	return nil
}

// ListTools lists tools, seeding DefaultTools first if the collection is
// empty. The check runs on every load, so deleting every tool brings the
// defaults back on the next load.
func (t *tracker) ListTools(ctx context.Context) ([]storage.Tool, error) {
	tools, err := t.stores.Tools.List(ctx)
	if err != nil {
		return nil, NewStorageError("list tools", err)
	}
	if len(tools) > 0 {
		return tools, nil
	}

	createdAt := storage.Millis(t.now())
	seed := make([]storage.Tool, len(DefaultTools))
	for i, d := range DefaultTools {
		seed[i] = storage.Tool{Name: d.Name, Description: d.Description, CreatedAt: createdAt}
	}
	if err := t.stores.Tools.InsertMany(ctx, seed); err != nil {
		return nil, NewStorageError("seed tools", err)
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "seeded default tools", "count", len(seed))

	tools, err = t.stores.Tools.List(ctx)
	if err != nil {
		return nil, NewStorageError("list tools", err)
	}
	return tools, nil
}

func (t *tracker) DeleteTool(ctx context.Context, id int64) error {
	if err := t.stores.Tools.Delete(ctx, id); err != nil {
		return NewStorageError("delete tool", err)
	}
	return nil
}

func (t *tracker) DeleteAllTools(ctx context.Context) error {
	if err := t.stores.Tools.DeleteAll(ctx); err != nil {
		return NewStorageError("delete all tools", err)
	}
	return nil
}
