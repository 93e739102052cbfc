package storage

import "time"

// Entry is one logged intensity observation.
type Entry struct {
	ID        int64 `db:"id" json:"id"`
	TS        int64 `db:"ts" json:"ts"` // milliseconds since epoch
	Intensity int   `db:"intensity" json:"intensity"`
}

// Time returns the entry timestamp in loc.
func (e Entry) Time(loc *time.Location) time.Time {
	return time.UnixMilli(e.TS).In(loc)
}

// Note is a free-text reflection.
type Note struct {
	ID   int64  `db:"id" json:"id"`
	TS   int64  `db:"ts" json:"ts"`
	Text string `db:"note" json:"note"`
}

// Time returns the note timestamp in loc.
func (n Note) Time(loc *time.Location) time.Time {
	return time.UnixMilli(n.TS).In(loc)
}

// Tool is a reusable coping technique.
type Tool struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	CreatedAt   int64  `db:"createdAt" json:"createdAt"`
}

// RangeStats is the result of an aggregate query over entries.
// Average is nil when Count is 0.
type RangeStats struct {
	Count   int
	Average *float64
}

// HasData reports whether at least one entry matched.
func (s RangeStats) HasData() bool {
	return s.Count > 0 && s.Average != nil
}

// Millis converts t to the storage timestamp representation.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}
