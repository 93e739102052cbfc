package stats

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"angertrack/internal/service"
	"angertrack/internal/storage"
)

const (
	// MaxMonths bounds RollingMonthlyAverages to ten years of months.
	MaxMonths = 120
	// MaxWeekOffset bounds week navigation to roughly a century back.
	MaxWeekOffset = 5200
)

// Engine computes windowed aggregates over stored entries. Every call reads
// the store fresh; nothing is cached between calls.
type Engine struct {
	entries storage.EntryStore
	loc     *time.Location
	now     func() time.Time
	locale  Locale
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocation sets the time zone used for calendar boundaries.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLocale sets the labels used for days and months.
func WithLocale(l Locale) Option {
	return func(e *Engine) {
		e.locale = l
	}
}

// NewEngine creates an Engine over entries. It defaults to the host's local
// time zone, time.Now and the Spanish locale.
func NewEngine(entries storage.EntryStore, opts ...Option) *Engine {
	e := &Engine{
		entries: entries,
		loc:     time.Local,
		now:     time.Now,
		locale:  Spanish,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Location returns the time zone used for calendar boundaries.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Locale returns the engine's labels.
func (e *Engine) Locale() Locale {
	return e.locale
}

// Now returns the current time in the engine's location.
func (e *Engine) Now() time.Time {
	return e.now().In(e.loc)
}

// rangeStats runs the range query and rounds the average. The average is 0
// when the range holds no entries.
func (e *Engine) rangeStats(ctx context.Context, op string, start, end time.Time) (int, float64, error) {
	rs, err := e.entries.StatsInRange(ctx, start, end)
	if err != nil {
		return 0, 0, service.NewStorageError(op, err)
	}
	if !rs.HasData() {
		return rs.Count, 0, nil
	}
	return rs.Count, Round2(*rs.Average), nil
}

// StatsForDay returns the entry count and average for date's calendar day.
func (e *Engine) StatsForDay(ctx context.Context, date time.Time) (DayStats, error) {
	start, end := DayRange(date, e.loc)
	count, avg, err := e.rangeStats(ctx, "stats for day", start, end)
	if err != nil {
		return DayStats{}, err
	}
	return DayStats{Count: count, Avg: avg}, nil
}

// StatsToday returns StatsForDay for the current day.
func (e *Engine) StatsToday(ctx context.Context) (DayStats, error) {
	return e.StatsForDay(ctx, e.Now())
}

// StatsForWeek returns seven daily averages, oldest first, for the window
// ending offsetWeeks weeks before today. Offset 0 ends today.
func (e *Engine) StatsForWeek(ctx context.Context, offsetWeeks int) ([]DayAverage, error) {
	if offsetWeeks < 0 || offsetWeeks > MaxWeekOffset {
		return nil, &service.ValidationError{
			Field:   "offset",
			Message: fmt.Sprintf("must be between 0 and %d, got %d", MaxWeekOffset, offsetWeeks),
		}
	}

	last := AddDays(e.Now(), -7*offsetWeeks, e.loc)
	days := make([]DayAverage, 0, 7)
	for i := 6; i >= 0; i-- {
		day := AddDays(last, -i, e.loc)
		start, end := DayRange(day, e.loc)
		count, avg, err := e.rangeStats(ctx, "stats for week", start, end)
		if err != nil {
			return nil, err
		}
		days = append(days, DayAverage{
			Label: e.weekLabel(day, offsetWeeks, i),
			Date:  start,
			Avg:   avg,
			Count: count,
		})
	}
	return days, nil
}

func (e *Engine) weekLabel(day time.Time, offsetWeeks, daysBack int) string {
	if offsetWeeks == 0 {
		switch daysBack {
		case 0:
			return e.locale.Today
		case 1:
			return e.locale.Yesterday
		}
	}
	return e.locale.Weekday(day.Weekday())
}

// Week returns StatsForWeek with its navigation flags. Newer weeks than the
// current one cannot be browsed.
func (e *Engine) Week(ctx context.Context, offsetWeeks int) (WeekWindow, error) {
	days, err := e.StatsForWeek(ctx, offsetWeeks)
	if err != nil {
		return WeekWindow{}, err
	}
	return WeekWindow{
		Offset:  offsetWeeks,
		Days:    days,
		CanPrev: true,
		CanNext: offsetWeeks > 0,
	}, nil
}

func (e *Engine) monthAverage(ctx context.Context, year int, month time.Month) (MonthAverage, error) {
	start, end := MonthRange(year, month, e.loc)
	count, avg, err := e.rangeStats(ctx, "average for month", start, end)
	if err != nil {
		return MonthAverage{}, err
	}
	return MonthAverage{
		Label: e.locale.MonthAbbr(month),
		Year:  year,
		Month: month,
		Avg:   avg,
		Count: count,
	}, nil
}

// AverageForMonth returns the average intensity of a calendar month, 0 when empty.
func (e *Engine) AverageForMonth(ctx context.Context, year int, month time.Month) (float64, error) {
	if err := validateMonth(month); err != nil {
		return 0, err
	}
	m, err := e.monthAverage(ctx, year, month)
	if err != nil {
		return 0, err
	}
	return m.Avg, nil
}

// RollingMonthlyAverages returns n monthly averages, oldest first, ending
// with the current month.
func (e *Engine) RollingMonthlyAverages(ctx context.Context, n int) ([]MonthAverage, error) {
	if n <= 0 || n > MaxMonths {
		return nil, &service.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxMonths, n),
		}
	}

	now := e.Now()
	months := make([]MonthAverage, 0, n)
	for i := n - 1; i >= 0; i-- {
		first := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, e.loc)
		m, err := e.monthAverage(ctx, first.Year(), first.Month())
		if err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, nil
}

// LastThreeMonths returns RollingMonthlyAverages(3).
func (e *Engine) LastThreeMonths(ctx context.Context) ([]MonthAverage, error) {
	return e.RollingMonthlyAverages(ctx, 3)
}

// LastSixMonths returns RollingMonthlyAverages(6).
func (e *Engine) LastSixMonths(ctx context.Context) ([]MonthAverage, error) {
	return e.RollingMonthlyAverages(ctx, 6)
}

// LastYear returns RollingMonthlyAverages(12).
func (e *Engine) LastYear(ctx context.Context) ([]MonthAverage, error) {
	return e.RollingMonthlyAverages(ctx, 12)
}

// Last30DaysAverage aggregates the 30 calendar days ending today, inclusive.
func (e *Engine) Last30DaysAverage(ctx context.Context) (PeriodAverage, error) {
	now := e.Now()
	start := AddDays(now, -29, e.loc)
	count, avg, err := e.rangeStats(ctx, "last 30 days", start, EndOfDay(now, e.loc))
	if err != nil {
		return PeriodAverage{}, err
	}
	return PeriodAverage{Label: e.locale.Last30Days, Avg: avg, Count: count}, nil
}

// SemesterAverage computes one fixed half-year (1 = Jan-Jun, 2 = Jul-Dec).
// Its value is the mean of the monthly averages of the months that have
// entries; empty months do not count toward the denominator.
func (e *Engine) SemesterAverage(ctx context.Context, year, half int) (SemesterAverage, error) {
	if half != 1 && half != 2 {
		return SemesterAverage{}, &service.ValidationError{
			Field:   "half",
			Message: fmt.Sprintf("must be 1 or 2, got %d", half),
		}
	}

	first := time.January
	if half == 2 {
		first = time.July
	}

	sem := SemesterAverage{
		Label:  fmt.Sprintf("S%d %d", half, year),
		Year:   year,
		Half:   half,
		Months: make([]MonthAverage, 0, 6),
	}

	var sum float64
	var qualifying int
	for m := first; m < first+6; m++ {
		ma, err := e.monthAverage(ctx, year, m)
		if err != nil {
			return SemesterAverage{}, err
		}
		sem.Months = append(sem.Months, ma)
		if ma.Count > 0 {
			sum += ma.Avg
			qualifying++
		}
	}
	if qualifying > 0 {
		sem.Avg = Round2(sum / float64(qualifying))
	}
	return sem, nil
}

// SemesterAverages returns the previous and the current semester, oldest first.
func (e *Engine) SemesterAverages(ctx context.Context) ([]SemesterAverage, error) {
	now := e.Now()
	year, half := now.Year(), semesterOf(now.Month())

	prevYear, prevHalf := year, 1
	if half == 1 {
		prevYear, prevHalf = year-1, 2
	}

	prev, err := e.SemesterAverage(ctx, prevYear, prevHalf)
	if err != nil {
		return nil, err
	}
	cur, err := e.SemesterAverage(ctx, year, half)
	if err != nil {
		return nil, err
	}
	return []SemesterAverage{prev, cur}, nil
}

func semesterOf(m time.Month) int {
	if m <= time.June {
		return 1
	}
	return 2
}

// YearlyMonthlyBreakdown returns twelve monthly averages, January first.
func (e *Engine) YearlyMonthlyBreakdown(ctx context.Context, year int) ([]MonthAverage, error) {
	months := make([]MonthAverage, 0, 12)
	for m := time.January; m <= time.December; m++ {
		ma, err := e.monthAverage(ctx, year, m)
		if err != nil {
			return nil, err
		}
		months = append(months, ma)
	}
	return months, nil
}

// MonthlyDailyBreakdown returns one bucket per calendar day of the month,
// including days without entries.
func (e *Engine) MonthlyDailyBreakdown(ctx context.Context, year int, month time.Month) ([]DayBucket, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	n := DaysIn(year, month)
	days := make([]DayBucket, 0, n)
	for d := 1; d <= n; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, e.loc)
		start, end := DayRange(date, e.loc)
		count, avg, err := e.rangeStats(ctx, "stats for month", start, end)
		if err != nil {
			return nil, err
		}
		days = append(days, DayBucket{
			Day:   d,
			Label: strconv.Itoa(d),
			Avg:   avg,
			Count: count,
		})
	}
	return days, nil
}

// AvailableYears returns the local calendar years holding at least one
// entry, newest first. It is empty when there are no entries.
func (e *Engine) AvailableYears(ctx context.Context) ([]int, error) {
	oldest, newest, ok, err := e.entries.Bounds(ctx)
	if err != nil {
		return nil, service.NewStorageError("available years", err)
	}
	if !ok {
		return []int{}, nil
	}

	first := time.UnixMilli(oldest).In(e.loc).Year()
	last := time.UnixMilli(newest).In(e.loc).Year()

	years := []int{}
	for y := last; y >= first; y-- {
		start, end := YearRange(y, e.loc)
		count, _, err := e.rangeStats(ctx, "available years", start, end)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			years = append(years, y)
		}
	}
	return years, nil
}

// DateRange returns the timestamps of the oldest and newest entries.
func (e *Engine) DateRange(ctx context.Context) (DateRange, error) {
	oldest, newest, ok, err := e.entries.Bounds(ctx)
	if err != nil {
		return DateRange{}, service.NewStorageError("date range", err)
	}
	if !ok {
		now := e.Now()
		return DateRange{Oldest: now, Newest: now, Empty: true}, nil
	}
	return DateRange{
		Oldest: time.UnixMilli(oldest).In(e.loc),
		Newest: time.UnixMilli(newest).In(e.loc),
	}, nil
}

// Summary computes every dashboard aggregate. It fails as a whole if any
// query fails.
func (e *Engine) Summary(ctx context.Context, weekOffset int) (Summary, error) {
	var s Summary
	var err error

	if s.Today, err = e.StatsToday(ctx); err != nil {
		return Summary{}, err
	}
	if s.Week, err = e.Week(ctx, weekOffset); err != nil {
		return Summary{}, err
	}
	if s.Last30, err = e.Last30DaysAverage(ctx); err != nil {
		return Summary{}, err
	}
	if s.Months3, err = e.LastThreeMonths(ctx); err != nil {
		return Summary{}, err
	}
	if s.Months6, err = e.LastSixMonths(ctx); err != nil {
		return Summary{}, err
	}
	if s.Months12, err = e.LastYear(ctx); err != nil {
		return Summary{}, err
	}
	if s.Semesters, err = e.SemesterAverages(ctx); err != nil {
		return Summary{}, err
	}
	return s, nil
}

func validateMonth(m time.Month) error {
	if m < time.January || m > time.December {
		return &service.ValidationError{
			Field:   "month",
			Message: fmt.Sprintf("must be between 1 and 12, got %d", m),
		}
	}
	return nil
}
