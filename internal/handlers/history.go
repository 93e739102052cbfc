package handlers

import (
	"net/http"
	"sync"
	"time"

	"angertrack/internal/history"
)

// HistoryHandler exposes a single shared history navigator over HTTP.
// Requests are serialized because the navigator is not safe for concurrent use.
type HistoryHandler struct {
	mu  sync.Mutex
	nav *history.Navigator
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(nav *history.Navigator) *HistoryHandler {
	return &HistoryHandler{nav: nav}
}

// View returns the navigator's current state.
func (h *HistoryHandler) View(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	v := h.nav.View()
	h.mu.Unlock()

	writeJSON(w, r.Context(), http.StatusOK, v)
}

// Open resets the navigator to the list of years.
func (h *HistoryHandler) Open(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(nav *history.Navigator) error {
		return nav.Open(r.Context())
	})
}

// SelectYear drills into {year}.
func (h *HistoryHandler) SelectYear(w http.ResponseWriter, r *http.Request) {
	year, err := intParam(r, "year")
	if err != nil {
		handleServiceError(w, r.Context(), err, "Invalid year")
		return
	}
	h.apply(w, r, func(nav *history.Navigator) error {
		return nav.SelectYear(r.Context(), year)
	})
}

// SelectMonth drills into {month}, numbered 1 to 12.
func (h *HistoryHandler) SelectMonth(w http.ResponseWriter, r *http.Request) {
	month, err := intParam(r, "month")
	if err != nil {
		handleServiceError(w, r.Context(), err, "Invalid month")
		return
	}
	h.apply(w, r, func(nav *history.Navigator) error {
		return nav.SelectMonth(r.Context(), time.Month(month))
	})
}

// SelectDay drills into {day}.
func (h *HistoryHandler) SelectDay(w http.ResponseWriter, r *http.Request) {
	day, err := intParam(r, "day")
	if err != nil {
		handleServiceError(w, r.Context(), err, "Invalid day")
		return
	}
	h.apply(w, r, func(nav *history.Navigator) error {
		return nav.SelectDay(r.Context(), day)
	})
}

// Back returns to the parent level.
func (h *HistoryHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(nav *history.Navigator) error {
		nav.Back()
		return nil
	})
}

// apply runs fn under the lock and responds with the resulting view.
func (h *HistoryHandler) apply(w http.ResponseWriter, r *http.Request, fn func(*history.Navigator) error) {
	h.mu.Lock()
	err := fn(h.nav)
	v := h.nav.View()
	h.mu.Unlock()

	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to navigate history")
		return
	}
	writeJSON(w, r.Context(), http.StatusOK, v)
}
