// Package daydetail resolves everything recorded on a single calendar day.
package daydetail

import (
	"context"
	"fmt"
	"time"

	"angertrack/internal/contextutil"
	"angertrack/internal/service"
	"angertrack/internal/stats"
	"angertrack/internal/storage"
)

// Detail is the content of one calendar day.
type Detail struct {
	Date    time.Time       `json:"date"`
	Entries []storage.Entry `json:"entries"`
	Notes   []storage.Note  `json:"notes"`
	Avg     float64         `json:"avg"`
	Count   int             `json:"count"`
}

// Empty reports whether the day has neither entries nor notes.
func (d Detail) Empty() bool {
	return len(d.Entries) == 0 && len(d.Notes) == 0
}

// Resolver loads day details. The week chart and the history navigator
// both go through Resolve so they share the same day boundaries.
type Resolver struct {
	entries storage.EntryStore
	notes   storage.NoteStore
	loc     *time.Location
}

// NewResolver creates a Resolver. A nil loc means time.Local.
func NewResolver(entries storage.EntryStore, notes storage.NoteStore, loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{entries: entries, notes: notes, loc: loc}
}

// Resolve returns the entries, notes and aggregate of date's calendar day.
func (r *Resolver) Resolve(ctx context.Context, date time.Time) (Detail, error) {
	logger := contextutil.LoggerFromContext(ctx)
	start, end := stats.DayRange(date, r.loc)

	entries, err := r.entries.ListInRange(ctx, start, end)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load day entries", "date", start.Format(time.DateOnly), "error", err)
		return Detail{}, service.NewStorageError("resolve day entries", err)
	}
	notes, err := r.notes.ListInRange(ctx, start, end)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load day notes", "date", start.Format(time.DateOnly), "error", err)
		return Detail{}, service.NewStorageError("resolve day notes", err)
	}
	rs, err := r.entries.StatsInRange(ctx, start, end)
	if err != nil {
		return Detail{}, service.NewStorageError("resolve day stats", err)
	}

	d := Detail{
		Date:    start,
		Entries: entries,
		Notes:   notes,
		Count:   rs.Count,
	}
	if rs.HasData() {
		d.Avg = stats.Round2(*rs.Average)
	}
	return d, nil
}

// ResolveYMD resolves a day given as year, month and day in the resolver's location.
func (r *Resolver) ResolveYMD(ctx context.Context, year int, month time.Month, day int) (Detail, error) {
	if month < time.January || month > time.December {
		return Detail{}, &service.ValidationError{
			Field:   "month",
			Message: fmt.Sprintf("must be between 1 and 12, got %d", month),
		}
	}
	if n := stats.DaysIn(year, month); day < 1 || day > n {
		return Detail{}, &service.ValidationError{
			Field:   "day",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", n, day),
		}
	}
	return r.Resolve(ctx, time.Date(year, month, day, 0, 0, 0, 0, r.loc))
}

// ParseDate parses a YYYY-MM-DD string in the resolver's location.
func (r *Resolver) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, r.loc)
	if err != nil {
		return time.Time{}, &service.ValidationError{
			Field:   "date",
			Message: fmt.Sprintf("must be YYYY-MM-DD, got %q", s),
		}
	}
	return t, nil
}
