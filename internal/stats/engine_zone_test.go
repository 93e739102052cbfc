package stats_test

import (
	"context"
	"reflect"
	"testing"
	"time"
)

// UTC-3 puts local 21:00 and later on the next UTC day.
var westOfUTC = time.FixedZone("UTC-3", -3*60*60)

func local(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, westOfUTC)
}

func TestEngine_LocalDayBuckets(t *testing.T) {
	// 23:45 local on Friday 15 March is already Saturday in UTC.
	now := local(2024, time.March, 15, 23, 45)
	engine, repo := newEngineIn(t, westOfUTC, now)
	ctx := context.Background()

	seed(t, repo, local(2024, time.March, 14, 23, 30), 8)
	seed(t, repo, local(2024, time.March, 15, 0, 30), 2)
	seed(t, repo, local(2024, time.March, 15, 23, 40), 4)

	tests := []struct {
		name      string
		date      time.Time
		wantCount int
		wantAvg   float64
	}{
		{"late evening stays on its local day", local(2024, time.March, 14, 12, 0), 1, 8},
		{"utc instant is bucketed by its local day", time.Date(2024, time.March, 15, 2, 30, 0, 0, time.UTC), 1, 8},
		{"local day spans into the next utc day", local(2024, time.March, 15, 12, 0), 2, 3},
		{"next local day is empty", local(2024, time.March, 16, 12, 0), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.StatsForDay(ctx, tt.date)
			if err != nil {
				t.Fatalf("StatsForDay() error = %v", err)
			}
			if got.Count != tt.wantCount || got.Avg != tt.wantAvg {
				t.Errorf("StatsForDay() = %+v, want count=%d avg=%v", got, tt.wantCount, tt.wantAvg)
			}
		})
	}

	today, err := engine.StatsToday(ctx)
	if err != nil {
		t.Fatalf("StatsToday() error = %v", err)
	}
	if today.Count != 2 || today.Avg != 3 {
		t.Errorf("StatsToday() = %+v, want count=2 avg=3", today)
	}

	week, err := engine.StatsForWeek(ctx, 0)
	if err != nil {
		t.Fatalf("StatsForWeek() error = %v", err)
	}
	if last := week[6]; last.Label != "Hoy" || last.Count != 2 || !last.Date.Equal(local(2024, time.March, 15, 0, 0)) {
		t.Errorf("StatsForWeek() today = %+v", last)
	}
	if prev := week[5]; prev.Label != "Ayer" || prev.Count != 1 || prev.Avg != 8 {
		t.Errorf("StatsForWeek() yesterday = %+v", prev)
	}
}

func TestEngine_LocalMonthBuckets(t *testing.T) {
	engine, repo := newEngineIn(t, westOfUTC, local(2024, time.March, 15, 9, 0))
	ctx := context.Background()

	// 1 March 02:30 UTC.
	seed(t, repo, local(2024, time.February, 29, 23, 30), 6)

	feb, err := engine.MonthlyDailyBreakdown(ctx, 2024, time.February)
	if err != nil {
		t.Fatalf("MonthlyDailyBreakdown(Feb) error = %v", err)
	}
	if last := feb[28]; last.Day != 29 || last.Count != 1 || last.Avg != 6 {
		t.Errorf("Feb 29 bucket = %+v, want count=1 avg=6", last)
	}

	mar, err := engine.MonthlyDailyBreakdown(ctx, 2024, time.March)
	if err != nil {
		t.Fatalf("MonthlyDailyBreakdown(Mar) error = %v", err)
	}
	if mar[0].Count != 0 {
		t.Errorf("Mar 1 bucket = %+v, want empty", mar[0])
	}

	months, err := engine.YearlyMonthlyBreakdown(ctx, 2024)
	if err != nil {
		t.Fatalf("YearlyMonthlyBreakdown() error = %v", err)
	}
	if months[1].Count != 1 || months[2].Count != 0 {
		t.Errorf("Feb/Mar counts = %d/%d, want 1/0", months[1].Count, months[2].Count)
	}
}

func TestEngine_AvailableYears_LocalNewYear(t *testing.T) {
	tests := []struct {
		name  string
		entry time.Time
		want  []int
	}{
		{"new year's eve is the old year locally", local(2023, time.December, 31, 22, 0), []int{2023}},
		{"just after local midnight is the new year", local(2024, time.January, 1, 0, 5), []int{2024}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, repo := newEngineIn(t, westOfUTC, local(2024, time.March, 15, 9, 0))
			seed(t, repo, tt.entry, 5)

			got, err := engine.AvailableYears(context.Background())
			if err != nil {
				t.Fatalf("AvailableYears() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AvailableYears() = %v, want %v", got, tt.want)
			}
		})
	}
}
