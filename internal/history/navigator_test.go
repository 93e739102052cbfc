package history_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"angertrack/internal/daydetail"
	"angertrack/internal/history"
	"angertrack/internal/service"
	"angertrack/internal/stats"
	"angertrack/internal/storage"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var fixedNow = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newTestNavigator(t *testing.T) (*history.Navigator, *storage.EntryRepo) {
	t.Helper()
	return newNavigatorIn(t, time.UTC, fixedNow)
}

// newNavigatorIn wires the navigator the way the binaries do, with the
// engine's clock so the fallback year follows loc.
func newNavigatorIn(t *testing.T, loc *time.Location, now time.Time) (*history.Navigator, *storage.EntryRepo) {
	t.Helper()

	db, err := storage.New(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	entries := storage.NewEntryRepo(db)
	engine := stats.NewEngine(entries, stats.WithLocation(loc), stats.WithClock(func() time.Time { return now }))
	resolver := daydetail.NewResolver(entries, storage.NewNoteRepo(db), engine.Location())
	return history.New(engine, resolver, engine.Locale(), engine.Now), entries
}

func TestNavigator_Breadcrumb(t *testing.T) {
	nav, entries := newTestNavigator(t)
	ctx := context.Background()

	if _, err := entries.Insert(ctx, time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC).UnixMilli(), 6); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := nav.Open(ctx); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got := nav.Breadcrumb(); got != "" {
		t.Errorf("Breadcrumb() at years = %q, want empty", got)
	}

	steps := []struct {
		name string
		do   func() error
		want string
	}{
		{"select year", func() error { return nav.SelectYear(ctx, 2024) }, "2024"},
		{"select month", func() error { return nav.SelectMonth(ctx, time.March) }, "2024 > Marzo"},
		{"select day", func() error { return nav.SelectDay(ctx, 15) }, "2024 > Marzo > Día 15"},
		{"back to month", func() error { nav.Back(); return nil }, "2024 > Marzo"},
		{"back to year", func() error { nav.Back(); return nil }, "2024"},
	}

	for _, s := range steps {
		if err := s.do(); err != nil {
			t.Fatalf("%s: error = %v", s.name, err)
		}
		if got := nav.Breadcrumb(); got != s.want {
			t.Errorf("%s: Breadcrumb() = %q, want %q", s.name, got, s.want)
		}
	}

	v := nav.View()
	if v.Level != history.LevelYear || v.Month != 0 || v.Days != nil || len(v.Months) != 12 {
		t.Errorf("View() after back = level %s month %d days %v months %d", v.Level, v.Month, v.Days, len(v.Months))
	}
}

func TestNavigator_LoadsData(t *testing.T) {
	nav, entries := newTestNavigator(t)
	ctx := context.Background()

	for _, e := range []struct {
		ts time.Time
		n  int
	}{
		{time.Date(2023, time.July, 4, 10, 0, 0, 0, time.UTC), 2},
		{time.Date(2023, time.July, 4, 20, 0, 0, 0, time.UTC), 6},
		{time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC), 5},
	} {
		if _, err := entries.Insert(ctx, e.ts.UnixMilli(), e.n); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	if err := nav.Open(ctx); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if v := nav.View(); len(v.Years) != 2 || v.Years[0] != 2023 || v.Years[1] != 2021 {
		t.Errorf("Years = %v, want [2023 2021]", v.Years)
	}

	if err := nav.SelectYear(ctx, 2023); err != nil {
		t.Fatalf("SelectYear() error = %v", err)
	}
	if v := nav.View(); v.Months[6].Avg != 4 {
		t.Errorf("July avg = %v, want 4", v.Months[6].Avg)
	}

	if err := nav.SelectMonth(ctx, time.July); err != nil {
		t.Fatalf("SelectMonth() error = %v", err)
	}
	v := nav.View()
	if len(v.Days) != 31 || v.Days[3].Count != 2 {
		t.Errorf("July grid len=%d day4 count=%d, want 31 and 2", len(v.Days), v.Days[3].Count)
	}

	if err := nav.SelectDay(ctx, 4); err != nil {
		t.Fatalf("SelectDay() error = %v", err)
	}
	v = nav.View()
	if v.Level != history.LevelDay || v.Detail == nil || v.Detail.Count != 2 || v.Detail.Avg != 4 {
		t.Errorf("day view = %+v", v)
	}
}

func TestNavigator_OpenEmpty(t *testing.T) {
	nav, _ := newTestNavigator(t)

	if err := nav.Open(context.Background()); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if v := nav.View(); len(v.Years) != 1 || v.Years[0] != 2024 {
		t.Errorf("Years = %v, want [2024]", v.Years)
	}
}

func TestNavigator_OpenResets(t *testing.T) {
	nav, _ := newTestNavigator(t)
	ctx := context.Background()

	if err := nav.SelectYear(ctx, 2024); err != nil {
		t.Fatalf("SelectYear() error = %v", err)
	}
	if err := nav.SelectMonth(ctx, time.May); err != nil {
		t.Fatalf("SelectMonth() error = %v", err)
	}
	if err := nav.Open(ctx); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if nav.Level() != history.LevelYears || nav.Breadcrumb() != "" {
		t.Errorf("after Open level=%s breadcrumb=%q", nav.Level(), nav.Breadcrumb())
	}
}

func TestNavigator_InvalidTransitions(t *testing.T) {
	nav, _ := newTestNavigator(t)
	ctx := context.Background()

	if err := nav.SelectMonth(ctx, time.March); !errors.Is(err, history.ErrInvalidTransition) {
		t.Errorf("SelectMonth() from years error = %v, want ErrInvalidTransition", err)
	}
	if err := nav.SelectDay(ctx, 1); !errors.Is(err, history.ErrInvalidTransition) {
		t.Errorf("SelectDay() from years error = %v, want ErrInvalidTransition", err)
	}

	if err := nav.SelectYear(ctx, 2024); err != nil {
		t.Fatalf("SelectYear() error = %v", err)
	}
	if err := nav.SelectYear(ctx, 2023); !errors.Is(err, history.ErrInvalidTransition) {
		t.Errorf("SelectYear() from year error = %v, want ErrInvalidTransition", err)
	}
	if err := nav.SelectDay(ctx, 1); !errors.Is(err, history.ErrInvalidTransition) {
		t.Errorf("SelectDay() from year error = %v, want ErrInvalidTransition", err)
	}

	if nav.Level() != history.LevelYear || nav.Breadcrumb() != "2024" {
		t.Errorf("state changed after invalid transitions: %s %q", nav.Level(), nav.Breadcrumb())
	}
}

func TestNavigator_OutOfRange(t *testing.T) {
	nav, _ := newTestNavigator(t)
	ctx := context.Background()

	if err := nav.SelectYear(ctx, 0); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("SelectYear(0) error = %v, want ErrInvalidInput", err)
	}
	if err := nav.SelectYear(ctx, 2023); err != nil {
		t.Fatalf("SelectYear() error = %v", err)
	}

	for _, m := range []time.Month{0, 13} {
		if err := nav.SelectMonth(ctx, m); !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("SelectMonth(%d) error = %v, want ErrInvalidInput", m, err)
		}
	}
	if err := nav.SelectMonth(ctx, time.February); err != nil {
		t.Fatalf("SelectMonth() error = %v", err)
	}

	for _, d := range []int{0, 29, 32} {
		if err := nav.SelectDay(ctx, d); !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("SelectDay(%d) in Feb 2023 error = %v, want ErrInvalidInput", d, err)
		}
	}
	if nav.Level() != history.LevelMonth {
		t.Errorf("Level() = %s, want month", nav.Level())
	}
}

func TestNavigator_BackAtYears(t *testing.T) {
	nav, _ := newTestNavigator(t)

	nav.Back()
	if nav.Level() != history.LevelYears {
		t.Errorf("Level() = %s, want years", nav.Level())
	}
}

type failingAggregator struct {
	history.Aggregator
}

func (failingAggregator) YearlyMonthlyBreakdown(context.Context, int) ([]stats.MonthAverage, error) {
	return nil, service.NewStorageError("average for month", errors.New("disk I/O error"))
}

func (failingAggregator) AvailableYears(context.Context) ([]int, error) {
	return []int{2024}, nil
}

func TestNavigator_FailedFetchKeepsState(t *testing.T) {
	nav := history.New(failingAggregator{}, nil, stats.Spanish, clock)
	ctx := context.Background()

	if err := nav.Open(ctx); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	err := nav.SelectYear(ctx, 2024)
	if !errors.Is(err, service.ErrStorage) {
		t.Fatalf("SelectYear() error = %v, want StorageError", err)
	}
	if v := nav.View(); v.Level != history.LevelYears || v.Year != 0 || v.Months != nil {
		t.Errorf("state changed after failed fetch: %+v", v)
	}
}

func TestLevel_String(t *testing.T) {
	tests := map[history.Level]string{
		history.LevelYears: "years",
		history.LevelYear:  "year",
		history.LevelMonth: "month",
		history.LevelDay:   "day",
		history.Level(9):   "unknown",
	}
	for l, want := range tests {
		if got := l.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", int(l), got, want)
		}
	}
}

func TestNavigator_LocalNewYear(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	// 22:00 on 31 December locally, already 2025 in UTC.
	now := time.Date(2024, time.December, 31, 22, 0, 0, 0, loc)
	ctx := context.Background()

	t.Run("empty history offers the local year", func(t *testing.T) {
		nav, _ := newNavigatorIn(t, loc, now.UTC())
		if err := nav.Open(ctx); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if v := nav.View(); len(v.Years) != 1 || v.Years[0] != 2024 {
			t.Errorf("Years = %v, want [2024]", v.Years)
		}
	})

	t.Run("new year's eve entry drills down to 31 December", func(t *testing.T) {
		nav, entries := newNavigatorIn(t, loc, now.UTC())
		if _, err := entries.Insert(ctx, now.UnixMilli(), 7); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}

		if err := nav.Open(ctx); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if v := nav.View(); len(v.Years) != 1 || v.Years[0] != 2024 {
			t.Fatalf("Years = %v, want [2024]", v.Years)
		}
		if err := nav.SelectYear(ctx, 2024); err != nil {
			t.Fatalf("SelectYear() error = %v", err)
		}
		if m := nav.View().Months[11]; m.Count != 1 || m.Avg != 7 {
			t.Errorf("December = %+v, want count=1 avg=7", m)
		}
		if err := nav.SelectMonth(ctx, time.December); err != nil {
			t.Fatalf("SelectMonth() error = %v", err)
		}
		if d := nav.View().Days[30]; d.Day != 31 || d.Count != 1 {
			t.Errorf("31 December = %+v, want count=1", d)
		}
		if err := nav.SelectDay(ctx, 31); err != nil {
			t.Fatalf("SelectDay() error = %v", err)
		}
		v := nav.View()
		if v.Detail == nil || v.Detail.Count != 1 || v.Breadcrumb != "2024 > Diciembre > Día 31" {
			t.Errorf("day view = %+v", v)
		}
	})
}
