package handlers

import (
	"net/http"

	"angertrack/internal/service"
)

// EntryHandler handles HTTP requests for intensity entries.
type EntryHandler struct {
	tracker service.Tracker
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(tracker service.Tracker) *EntryHandler {
	return &EntryHandler{tracker: tracker}
}

// CreateEntryRequest represents the HTTP request payload for logging an entry.
type CreateEntryRequest struct {
	Intensity int `json:"intensity"`
}

// DeleteAllResponse reports how many records a bulk delete removed.
type DeleteAllResponse struct {
	Deleted int `json:"deleted"`
}

// Create logs a new entry at the current time.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, ctx, err, "Invalid request body")
		return
	}

	entry, err := h.tracker.InsertEntry(ctx, req.Intensity)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to save entry")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, entry)
}

// List returns all entries, newest first.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.tracker.ListEntries(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list entries")
		return
	}

	writeJSON(w, ctx, http.StatusOK, entries)
}

// Delete removes one entry. Unknown IDs succeed.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid id")
		return
	}

	if err := h.tracker.DeleteEntry(ctx, id); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAll removes every entry and reports how many were removed.
func (h *EntryHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := h.tracker.DeleteAllEntries(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to delete entries")
		return
	}

	writeJSON(w, ctx, http.StatusOK, DeleteAllResponse{Deleted: n})
}
