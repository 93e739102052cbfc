// Package history implements drill-down browsing of past entries:
// years, then the months of a year, then the days of a month, then one day.
package history

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"angertrack/internal/contextutil"
	"angertrack/internal/daydetail"
	"angertrack/internal/service"
	"angertrack/internal/stats"
)

// ErrInvalidTransition is returned when an action is not allowed from the current level.
var ErrInvalidTransition = errors.New("invalid navigation transition")

// Level is the navigator's depth.
type Level int

const (
	LevelYears Level = iota
	LevelYear
	LevelMonth
	LevelDay
)

func (l Level) String() string {
	switch l {
	case LevelYears:
		return "years"
	case LevelYear:
		return "year"
	case LevelMonth:
		return "month"
	case LevelDay:
		return "day"
	}
	return "unknown"
}

// MarshalText encodes the level by name.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Aggregator is the subset of stats.Engine the navigator reads from.
type Aggregator interface {
	AvailableYears(ctx context.Context) ([]int, error)
	YearlyMonthlyBreakdown(ctx context.Context, year int) ([]stats.MonthAverage, error)
	MonthlyDailyBreakdown(ctx context.Context, year int, month time.Month) ([]stats.DayBucket, error)
}

// DayResolver loads the detail of one calendar day.
type DayResolver interface {
	ResolveYMD(ctx context.Context, year int, month time.Month, day int) (daydetail.Detail, error)
}

// View is the navigator's current level, selection and loaded data.
// Only the data for the current level and its ancestors is set.
type View struct {
	Level      Level                `json:"level"`
	Year       int                  `json:"year,omitempty"`
	Month      time.Month           `json:"month,omitempty"`
	Day        int                  `json:"day,omitempty"`
	Breadcrumb string               `json:"breadcrumb"`
	Years      []int                `json:"years"`
	Months     []stats.MonthAverage `json:"months,omitempty"`
	Days       []stats.DayBucket    `json:"days,omitempty"`
	Detail     *daydetail.Detail    `json:"detail,omitempty"`
}

// Navigator is a state machine over Years, Year, Month and Day. It is not
// safe for concurrent use. Every Select fetches before it commits, so a
// failed fetch leaves the state unchanged.
type Navigator struct {
	agg    Aggregator
	days   DayResolver
	locale stats.Locale
	now    func() time.Time

	level  Level
	year   int
	month  time.Month
	day    int
	years  []int
	months []stats.MonthAverage
	grid   []stats.DayBucket
	detail *daydetail.Detail
}

// New creates a Navigator at the Years level. now must report time in the
// same location the aggregator buckets by; pass stats.Engine.Now.
func New(agg Aggregator, days DayResolver, locale stats.Locale, now func() time.Time) *Navigator {
	if now == nil {
		now = time.Now
	}
	return &Navigator{
		agg:    agg,
		days:   days,
		locale: locale,
		now:    now,
	}
}

// Open resets to the Years level and loads the years that have entries.
// When there are none, the current year is offered alone.
func (n *Navigator) Open(ctx context.Context) error {
	years, err := n.agg.AvailableYears(ctx)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	if len(years) == 0 {
		years = []int{n.now().Year()}
	}

	n.reset()
	n.years = years
	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "history opened", "years", len(years))
	return nil
}

func (n *Navigator) reset() {
	n.level = LevelYears
	n.year, n.month, n.day = 0, 0, 0
	n.months, n.grid, n.detail = nil, nil, nil
}

// SelectYear moves from Years to Year and loads its monthly averages.
func (n *Navigator) SelectYear(ctx context.Context, year int) error {
	if n.level != LevelYears {
		return fmt.Errorf("%w: select year from %s", ErrInvalidTransition, n.level)
	}
	if year < 1 {
		return &service.ValidationError{Field: "year", Message: fmt.Sprintf("must be positive, got %d", year)}
	}

	months, err := n.agg.YearlyMonthlyBreakdown(ctx, year)
	if err != nil {
		return fmt.Errorf("failed to load year %d: %w", year, err)
	}

	n.level = LevelYear
	n.year = year
	n.months = months
	return nil
}

// SelectMonth moves from Year to Month and loads its daily averages.
// Months without entries are allowed.
func (n *Navigator) SelectMonth(ctx context.Context, month time.Month) error {
	if n.level != LevelYear {
		return fmt.Errorf("%w: select month from %s", ErrInvalidTransition, n.level)
	}
	if month < time.January || month > time.December {
		return &service.ValidationError{Field: "month", Message: fmt.Sprintf("must be between 1 and 12, got %d", month)}
	}

	grid, err := n.agg.MonthlyDailyBreakdown(ctx, n.year, month)
	if err != nil {
		return fmt.Errorf("failed to load %d-%02d: %w", n.year, month, err)
	}

	n.level = LevelMonth
	n.month = month
	n.grid = grid
	return nil
}

// SelectDay moves from Month to Day and loads the day detail.
func (n *Navigator) SelectDay(ctx context.Context, day int) error {
	if n.level != LevelMonth {
		return fmt.Errorf("%w: select day from %s", ErrInvalidTransition, n.level)
	}
	if last := stats.DaysIn(n.year, n.month); day < 1 || day > last {
		return &service.ValidationError{Field: "day", Message: fmt.Sprintf("must be between 1 and %d, got %d", last, day)}
	}

	detail, err := n.days.ResolveYMD(ctx, n.year, n.month, day)
	if err != nil {
		return fmt.Errorf("failed to load %d-%02d-%02d: %w", n.year, n.month, day, err)
	}

	n.level = LevelDay
	n.day = day
	n.detail = &detail
	return nil
}

// Back returns to the parent level and clears the child's selection and
// data. It does nothing at the Years level.
func (n *Navigator) Back() {
	switch n.level {
	case LevelDay:
		n.level = LevelMonth
		n.day = 0
		n.detail = nil
	case LevelMonth:
		n.level = LevelYear
		n.month = 0
		n.grid = nil
	case LevelYear:
		n.level = LevelYears
		n.year = 0
		n.months = nil
	}
}

// Level returns the current level.
func (n *Navigator) Level() Level {
	return n.level
}

// Breadcrumb joins the selected year, month name and day label with " > ".
// It is empty at the Years level.
func (n *Navigator) Breadcrumb() string {
	var parts []string
	if n.level >= LevelYear {
		parts = append(parts, strconv.Itoa(n.year))
	}
	if n.level >= LevelMonth {
		parts = append(parts, n.locale.MonthName(n.month))
	}
	if n.level >= LevelDay {
		parts = append(parts, n.locale.DayLabel(n.day))
	}
	return strings.Join(parts, " > ")
}

// View returns a snapshot of the current state.
func (n *Navigator) View() View {
	v := View{
		Level:      n.level,
		Year:       n.year,
		Month:      n.month,
		Day:        n.day,
		Breadcrumb: n.Breadcrumb(),
		Years:      append([]int{}, n.years...),
		Months:     n.months,
		Days:       n.grid,
	}
	if n.detail != nil {
		d := *n.detail
		v.Detail = &d
	}
	return v
}
