package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/mock/gomock"

	"angertrack/internal/service"
	"angertrack/internal/storage"
	"angertrack/internal/storage/mocks"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var fixedNow = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local)

func newTestTracker(t *testing.T) (service.Tracker, *sqlx.DB) {
	t.Helper()

	db, err := storage.New(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	tr := service.NewTracker(db, service.NewStores(db), func() time.Time { return fixedNow })
	if err := tr.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return tr, db
}

func TestTracker_Initialize_Idempotent(t *testing.T) {
	tr, _ := newTestTracker(t)

	for i := 0; i < 3; i++ {
		if err := tr.Initialize(context.Background()); err != nil {
			t.Fatalf("Initialize() call %d error = %v", i+2, err)
		}
	}
}

func TestTracker_Initialize_NoDB(t *testing.T) {
	tr := service.NewTracker(nil, service.Stores{}, nil)

	err := tr.Initialize(context.Background())
	if !errors.Is(err, service.ErrStorage) {
		t.Errorf("Initialize() error = %v, want StorageError", err)
	}
}

func TestTracker_InsertEntry(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	for n := service.MinIntensity; n <= service.MaxIntensity; n++ {
		before, err := tr.ListEntries(ctx)
		if err != nil {
			t.Fatalf("ListEntries() error = %v", err)
		}

		entry, err := tr.InsertEntry(ctx, n)
		if err != nil {
			t.Fatalf("InsertEntry(%d) error = %v", n, err)
		}
		if entry.TS != fixedNow.UnixMilli() {
			t.Errorf("InsertEntry(%d) TS = %d, want %d", n, entry.TS, fixedNow.UnixMilli())
		}

		after, err := tr.ListEntries(ctx)
		if err != nil {
			t.Fatalf("ListEntries() error = %v", err)
		}
		if len(after) != len(before)+1 {
			t.Fatalf("ListEntries() len = %d, want %d", len(after), len(before)+1)
		}

		found := 0
		for _, e := range after {
			if e.ID == entry.ID {
				found++
				if e.Intensity != n {
					t.Errorf("stored intensity = %d, want %d", e.Intensity, n)
				}
			}
		}
		if found != 1 {
			t.Errorf("entry %d found %d times, want 1", entry.ID, found)
		}
	}
}

func TestTracker_InsertEntry_Validation(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		intensity int
	}{
		{name: "zero", intensity: 0},
		{name: "eleven", intensity: 11},
		{name: "negative", intensity: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tr.InsertEntry(ctx, tt.intensity)

			var ve *service.ValidationError
			if !errors.As(err, &ve) || ve.Field != "intensity" {
				t.Fatalf("InsertEntry(%d) error = %v, want ValidationError on intensity", tt.intensity, err)
			}

			n, err := tr.CountEntries(ctx)
			if err != nil {
				t.Fatalf("CountEntries() error = %v", err)
			}
			if n != 0 {
				t.Errorf("CountEntries() = %d after rejected insert, want 0", n)
			}
		})
	}
}

func TestTracker_DeleteEntry_Idempotent(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	keep, err := tr.InsertEntry(ctx, 3)
	if err != nil {
		t.Fatalf("InsertEntry() error = %v", err)
	}
	drop, err := tr.InsertEntry(ctx, 8)
	if err != nil {
		t.Fatalf("InsertEntry() error = %v", err)
	}

	if err := tr.DeleteEntry(ctx, drop.ID); err != nil {
		t.Fatalf("DeleteEntry() error = %v", err)
	}
	afterFirst, err := tr.ListEntries(ctx)
	if err != nil {
		t.Fatalf("ListEntries() error = %v", err)
	}

	if err := tr.DeleteEntry(ctx, drop.ID); err != nil {
		t.Fatalf("DeleteEntry() second call error = %v", err)
	}
	afterSecond, err := tr.ListEntries(ctx)
	if err != nil {
		t.Fatalf("ListEntries() error = %v", err)
	}

	if len(afterFirst) != 1 || len(afterSecond) != 1 || afterSecond[0].ID != keep.ID {
		t.Errorf("entries after deletes = %+v / %+v, want only %d", afterFirst, afterSecond, keep.ID)
	}
}

func TestTracker_DeleteAllEntries(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	for _, n := range []int{2, 4, 6} {
		if _, err := tr.InsertEntry(ctx, n); err != nil {
			t.Fatalf("InsertEntry() error = %v", err)
		}
	}
	deleted, err := tr.DeleteAllEntries(ctx)
	if err != nil {
		t.Fatalf("DeleteAllEntries() error = %v", err)
	}
	if deleted != 3 {
		t.Errorf("DeleteAllEntries() = %d, want 3", deleted)
	}
	if deleted, err := tr.DeleteAllEntries(ctx); err != nil || deleted != 0 {
		t.Errorf("DeleteAllEntries() on empty = %d, %v; want 0, nil", deleted, err)
	}

	entries, err := tr.ListEntries(ctx)
	if err != nil {
		t.Fatalf("ListEntries() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("ListEntries() returned %d entries after DeleteAllEntries", len(entries))
	}
}

func TestTracker_InsertNote(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		text     string
		wantErr  bool
		wantText string
	}{
		{name: "trimmed", text: "  me gritaron  \n", wantText: "me gritaron"},
		{name: "empty", text: "", wantErr: true},
		{name: "whitespace only", text: " \t\n ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note, err := tr.InsertNote(ctx, tt.text)
			if tt.wantErr {
				if !errors.Is(err, service.ErrInvalidInput) {
					t.Errorf("InsertNote() error = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("InsertNote() error = %v", err)
			}
			if note.Text != tt.wantText {
				t.Errorf("InsertNote() text = %q, want %q", note.Text, tt.wantText)
			}
		})
	}

	notes, err := tr.ListNotes(ctx)
	if err != nil {
		t.Fatalf("ListNotes() error = %v", err)
	}
	if len(notes) != 1 {
		t.Errorf("ListNotes() returned %d notes, want 1", len(notes))
	}
}

func TestTracker_Notes_Delete(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	note, err := tr.InsertNote(ctx, "uno")
	if err != nil {
		t.Fatalf("InsertNote() error = %v", err)
	}
	if _, err := tr.InsertNote(ctx, "dos"); err != nil {
		t.Fatalf("InsertNote() error = %v", err)
	}

	if err := tr.DeleteNote(ctx, note.ID); err != nil {
		t.Fatalf("DeleteNote() error = %v", err)
	}
	if err := tr.DeleteNote(ctx, note.ID); err != nil {
		t.Fatalf("DeleteNote() second call error = %v", err)
	}
	if n, err := tr.CountNotes(ctx); err != nil || n != 1 {
		t.Errorf("CountNotes() = %d, %v; want 1, nil", n, err)
	}

	if deleted, err := tr.DeleteAllNotes(ctx); err != nil || deleted != 1 {
		t.Fatalf("DeleteAllNotes() = %d, %v; want 1, nil", deleted, err)
	}
	if n, err := tr.CountNotes(ctx); err != nil || n != 0 {
		t.Errorf("CountNotes() = %d, %v; want 0, nil", n, err)
	}
}

func TestTracker_ListTools_SeedsDefaults(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tools, err := tr.ListTools(ctx)
	if err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}
	if len(tools) != len(service.DefaultTools) {
		t.Fatalf("ListTools() returned %d tools, want %d", len(tools), len(service.DefaultTools))
	}
	for i, tool := range tools {
		if tool.Name != service.DefaultTools[i].Name {
			t.Errorf("ListTools()[%d].Name = %q, want %q", i, tool.Name, service.DefaultTools[i].Name)
		}
	}

	// A second load of a non-empty collection does not seed again
	again, err := tr.ListTools(ctx)
	if err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}
	if len(again) != len(service.DefaultTools) {
		t.Errorf("ListTools() second load returned %d tools, want %d", len(again), len(service.DefaultTools))
	}
}

func TestTracker_ListTools_ReseedsWhenEmptyAtLoad(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	if _, err := tr.ListTools(ctx); err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}
	if err := tr.DeleteAllTools(ctx); err != nil {
		t.Fatalf("DeleteAllTools() error = %v", err)
	}

	tools, err := tr.ListTools(ctx)
	if err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}
	if len(tools) != len(service.DefaultTools) {
		t.Errorf("ListTools() after DeleteAllTools returned %d tools, want %d", len(tools), len(service.DefaultTools))
	}
}

func TestTracker_InsertTool(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		toolName    string
		description string
		wantField   string
	}{
		{name: "valid", toolName: "  Contar hasta diez ", description: " despacio "},
		{name: "no description", toolName: "Escuchar música"},
		{name: "empty name", toolName: "   ", wantField: "name"},
		{name: "name too long", toolName: strings.Repeat("a", service.MaxToolNameLength+1), wantField: "name"},
		{name: "name at limit", toolName: strings.Repeat("ñ", service.MaxToolNameLength)},
		{name: "description too long", toolName: "ok", description: strings.Repeat("b", service.MaxToolDescriptionLength+1), wantField: "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool, err := tr.InsertTool(ctx, tt.toolName, tt.description)
			if tt.wantField != "" {
				var ve *service.ValidationError
				if !errors.As(err, &ve) || ve.Field != tt.wantField {
					t.Errorf("InsertTool() error = %v, want ValidationError on %s", err, tt.wantField)
				}
				return
			}
			if err != nil {
				t.Fatalf("InsertTool() error = %v", err)
			}
			if tool.Name != strings.TrimSpace(tt.toolName) || tool.Description != strings.TrimSpace(tt.description) {
				t.Errorf("InsertTool() = %+v, want trimmed fields", tool)
			}
			if tool.CreatedAt != fixedNow.UnixMilli() {
				t.Errorf("InsertTool() CreatedAt = %d, want %d", tool.CreatedAt, fixedNow.UnixMilli())
			}
		})
	}
}

func TestTracker_StorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := mocks.NewMockEntryStore(ctrl)
	notes := mocks.NewMockNoteStore(ctrl)
	tools := mocks.NewMockToolStore(ctrl)
	tr := service.NewTracker(nil, service.Stores{Entries: entries, Notes: notes, Tools: tools}, func() time.Time { return fixedNow })

	diskErr := errors.New("disk I/O error")
	ctx := context.Background()

	tests := []struct {
		name      string
		mockSetup func()
		call      func() error
	}{
		{
			name: "insert entry",
			mockSetup: func() {
				entries.EXPECT().Insert(gomock.Any(), fixedNow.UnixMilli(), 5).Return(int64(0), diskErr)
			},
			call: func() error {
				_, err := tr.InsertEntry(ctx, 5)
				return err
			},
		},
		{
			name: "list notes",
			mockSetup: func() {
				notes.EXPECT().List(gomock.Any()).Return(nil, diskErr)
			},
			call: func() error {
				_, err := tr.ListNotes(ctx)
				return err
			},
		},
		{
			name: "delete entry",
			mockSetup: func() {
				entries.EXPECT().Delete(gomock.Any(), int64(7)).Return(diskErr)
			},
			call: func() error {
				return tr.DeleteEntry(ctx, 7)
			},
		},
		{
			name: "seed tools",
			mockSetup: func() {
				tools.EXPECT().List(gomock.Any()).Return([]storage.Tool{}, nil)
				tools.EXPECT().InsertMany(gomock.Any(), gomock.Len(len(service.DefaultTools))).Return(diskErr)
			},
			call: func() error {
				_, err := tr.ListTools(ctx)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := tt.call()
			var se *service.StorageError
			if !errors.As(err, &se) {
				t.Fatalf("error = %v, want *StorageError", err)
			}
			if !errors.Is(err, diskErr) {
				t.Errorf("error = %v, want it to wrap the store error", err)
			}
		})
	}
}
