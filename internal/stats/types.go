package stats

import "time"

// DayStats is the count and rounded average intensity of one calendar day.
type DayStats struct {
	Count int     `json:"count"`
	Avg   float64 `json:"avg"`
}

// DayAverage is one bar of the week chart. Count tells "no data" apart from an average of 0.
type DayAverage struct {
	Label string    `json:"label"`
	Date  time.Time `json:"date"`
	Avg   float64   `json:"avg"`
	Count int       `json:"count"`
}

// WeekWindow is the week chart plus its navigation state.
type WeekWindow struct {
	Offset  int          `json:"offset"`
	Days    []DayAverage `json:"days"`
	CanPrev bool         `json:"can_prev"`
	CanNext bool         `json:"can_next"`
}

// MonthAverage is the rounded average intensity of one calendar month.
type MonthAverage struct {
	Label string     `json:"label"`
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Avg   float64    `json:"avg"`
	Count int        `json:"count"`
}

// PeriodAverage is a single aggregate over an arbitrary window.
type PeriodAverage struct {
	Label string  `json:"label"`
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// SemesterAverage is the mean of the monthly averages of a half-year,
// counting only months that have entries.
type SemesterAverage struct {
	Label  string         `json:"label"`
	Year   int            `json:"year"`
	Half   int            `json:"half"` // 1 = Jan-Jun, 2 = Jul-Dec
	Avg    float64        `json:"avg"`
	Months []MonthAverage `json:"months"`
}

// DayBucket is one cell of a month grid.
type DayBucket struct {
	Day   int     `json:"day"`
	Label string  `json:"label"`
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// DateRange spans the oldest and newest entry. Empty is true when there are no entries.
type DateRange struct {
	Oldest time.Time `json:"oldest"`
	Newest time.Time `json:"newest"`
	Empty  bool      `json:"empty"`
}

// Summary is the full set of dashboard aggregates, recomputed after every write.
type Summary struct {
	Today     DayStats          `json:"today"`
	Week      WeekWindow        `json:"week"`
	Last30    PeriodAverage     `json:"last30"`
	Months3   []MonthAverage    `json:"months3"`
	Months6   []MonthAverage    `json:"months6"`
	Months12  []MonthAverage    `json:"months12"`
	Semesters []SemesterAverage `json:"semesters"`
}
