package handlers

import (
	"net/http"

	"angertrack/internal/stats"
)

// StatsHandler serves the dashboard aggregates.
type StatsHandler struct {
	engine *stats.Engine
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(engine *stats.Engine) *StatsHandler {
	return &StatsHandler{engine: engine}
}

// Summary returns every dashboard aggregate in one response.
// Query: week_offset (default 0).
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, err := intQuery(r, "week_offset", 0)
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid week_offset")
		return
	}

	summary, err := h.engine.Summary(ctx, offset)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute summary")
		return
	}

	writeJSON(w, ctx, http.StatusOK, summary)
}

// Week returns the seven-day window. Query: offset (default 0).
func (h *StatsHandler) Week(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, err := intQuery(r, "offset", 0)
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid offset")
		return
	}

	week, err := h.engine.Week(ctx, offset)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute week")
		return
	}

	writeJSON(w, ctx, http.StatusOK, week)
}

// Months returns rolling monthly averages. Query: n (default 3).
func (h *StatsHandler) Months(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := intQuery(r, "n", 3)
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid n")
		return
	}

	months, err := h.engine.RollingMonthlyAverages(ctx, n)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute monthly averages")
		return
	}

	writeJSON(w, ctx, http.StatusOK, months)
}

// Semesters returns the previous and current semester averages.
func (h *StatsHandler) Semesters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sems, err := h.engine.SemesterAverages(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute semester averages")
		return
	}

	writeJSON(w, ctx, http.StatusOK, sems)
}

// Last30 returns the 30-day average.
func (h *StatsHandler) Last30(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	avg, err := h.engine.Last30DaysAverage(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute 30-day average")
		return
	}

	writeJSON(w, ctx, http.StatusOK, avg)
}

// Range returns the oldest and newest entry timestamps.
func (h *StatsHandler) Range(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dr, err := h.engine.DateRange(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compute date range")
		return
	}

	writeJSON(w, ctx, http.StatusOK, dr)
}
