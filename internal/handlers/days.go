package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"angertrack/internal/daydetail"
)

// DayHandler serves the detail of one calendar day as JSON.
type DayHandler struct {
	resolver *daydetail.Resolver
}

// NewDayHandler creates a new DayHandler.
func NewDayHandler(resolver *daydetail.Resolver) *DayHandler {
	return &DayHandler{resolver: resolver}
}

// DayResponse is a day detail plus an explicit empty flag.
type DayResponse struct {
	daydetail.Detail
	Empty bool `json:"empty"`
}

// ServeHTTP handles GET /api/days/{date} with date as YYYY-MM-DD.
func (h *DayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	date, err := h.resolver.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid date")
		return
	}

	detail, err := h.resolver.Resolve(ctx, date)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load day")
		return
	}

	writeJSON(w, ctx, http.StatusOK, DayResponse{Detail: detail, Empty: detail.Empty()})
}
