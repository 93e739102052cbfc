package handlers

import (
	"net/http"

	"angertrack/internal/service"
)

// ToolHandler handles HTTP requests for coping tools.
type ToolHandler struct {
	tracker service.Tracker
}

// NewToolHandler creates a new ToolHandler.
func NewToolHandler(tracker service.Tracker) *ToolHandler {
	return &ToolHandler{tracker: tracker}
}

// CreateToolRequest represents the HTTP request payload for adding a tool.
type CreateToolRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create adds a tool.
func (h *ToolHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateToolRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, ctx, err, "Invalid request body")
		return
	}

	tool, err := h.tracker.InsertTool(ctx, req.Name, req.Description)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to save tool")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, tool)
}

// List returns all tools, oldest first, seeding the defaults when there are none.
func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tools, err := h.tracker.ListTools(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list tools")
		return
	}

	writeJSON(w, ctx, http.StatusOK, tools)
}

// Delete removes one tool.
func (h *ToolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid id")
		return
	}

	if err := h.tracker.DeleteTool(ctx, id); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete tool")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAll removes every tool. The defaults come back on the next List.
func (h *ToolHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.tracker.DeleteAllTools(ctx); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete tools")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
