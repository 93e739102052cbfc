package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"angertrack/internal/daydetail"
	"angertrack/internal/history"
	"angertrack/internal/stats"
)

func newDayCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "day YYYY-MM-DD",
		Short: "Show the entries and notes of one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, app *App) error {
				date, err := app.Resolver.ParseDate(args[0])
				if err != nil {
					return err
				}
				detail, err := app.Resolver.Resolve(ctx, date)
				if err != nil {
					return err
				}
				renderDetail(cmd.OutOrStdout(), app, detail)
				return nil
			})
		},
	}
}

func newHistoryCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "history [YEAR [MONTH [DAY]]]",
		Short: "Drill down from years to months to days",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := make([]int, len(args))
			for i, a := range args {
				v, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("%q is not a number", a)
				}
				sel[i] = v
			}

			return withApp(cmd, open, func(ctx context.Context, app *App) error {
				nav := app.Navigator
				if err := nav.Open(ctx); err != nil {
					return err
				}
				if len(sel) > 0 {
					if err := nav.SelectYear(ctx, sel[0]); err != nil {
						return err
					}
				}
				if len(sel) > 1 {
					if err := nav.SelectMonth(ctx, time.Month(sel[1])); err != nil {
						return err
					}
				}
				if len(sel) > 2 {
					if err := nav.SelectDay(ctx, sel[2]); err != nil {
						return err
					}
				}
				renderView(cmd.OutOrStdout(), app, nav.View())
				return nil
			})
		},
	}
}

func renderView(w io.Writer, app *App, v history.View) {
	if v.Breadcrumb != "" {
		_, _ = fmt.Fprintln(w, bold.Sprint(v.Breadcrumb))
	}

	switch v.Level {
	case history.LevelYears:
		tbl := newTable()
		for _, y := range v.Years {
			tbl.AddRow(y)
		}
		printTable(w, "Years", tbl)
	case history.LevelYear:
		printMonths(w, v.Months)
	case history.LevelMonth:
		printDays(w, v.Days)
	case history.LevelDay:
		if v.Detail != nil {
			renderDetail(w, app, *v.Detail)
		}
	}
}

func printMonths(w io.Writer, months []stats.MonthAverage) {
	tbl := newTable()
	for _, m := range months {
		tbl.AddRow(int(m.Month), m.Label, formatAvg(m.Avg, m.Count), m.Count)
	}
	printTable(w, "", tbl)
}

func printDays(w io.Writer, days []stats.DayBucket) {
	tbl := newTable()
	rows := 0
	for _, d := range days {
		if d.Count == 0 {
			continue
		}
		tbl.AddRow(d.Label, formatAvg(d.Avg, d.Count), d.Count)
		rows++
	}
	if rows == 0 {
		return
	}
	printTable(w, "", tbl)
}

func renderDetail(w io.Writer, app *App, d daydetail.Detail) {
	title := fmt.Sprintf("%d %s %d", d.Date.Day(), app.Locale.MonthName(d.Date.Month()), d.Date.Year())
	_, _ = fmt.Fprintln(w, bold.Sprint(title))
	if d.Empty() {
		_, _ = fmt.Fprintln(w, app.Locale.NoData)
		return
	}
	_, _ = fmt.Fprintf(w, "avg %s over %d entries\n\n", formatAvg(d.Avg, d.Count), d.Count)

	if len(d.Entries) > 0 {
		tbl := newTable()
		for _, e := range d.Entries {
			tbl.AddRow(e.Time(app.Location).Format("15:04"), e.Intensity)
		}
		printTable(w, "Entries", tbl)
	}
	if len(d.Notes) > 0 {
		tbl := newTable()
		for _, n := range d.Notes {
			tbl.AddRow(n.Time(app.Location).Format("15:04"), n.Text)
		}
		printTable(w, "Notes", tbl)
	}
}
