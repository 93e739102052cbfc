package handlers

import (
	"net/http"

	"angertrack/internal/service"
)

// NoteHandler handles HTTP requests for anger notes.
type NoteHandler struct {
	tracker service.Tracker
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(tracker service.Tracker) *NoteHandler {
	return &NoteHandler{tracker: tracker}
}

// CreateNoteRequest represents the HTTP request payload for saving a note.
type CreateNoteRequest struct {
	Text string `json:"text"`
}

// Create saves a note at the current time.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, ctx, err, "Invalid request body")
		return
	}

	note, err := h.tracker.InsertNote(ctx, req.Text)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to save note")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, note)
}

// List returns all notes, newest first.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notes, err := h.tracker.ListNotes(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list notes")
		return
	}

	writeJSON(w, ctx, http.StatusOK, notes)
}

// Delete removes one note.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid id")
		return
	}

	if err := h.tracker.DeleteNote(ctx, id); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete note")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAll removes every note and reports how many were removed.
func (h *NoteHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := h.tracker.DeleteAllNotes(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to delete notes")
		return
	}

	writeJSON(w, ctx, http.StatusOK, DeleteAllResponse{Deleted: n})
}
