package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"angertrack/internal/stats"
)

func newStatsCmd(open Opener) *cobra.Command {
	var weekOffset int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show today, the week chart and rolling averages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, app *App) error {
				summary, err := app.Engine.Summary(ctx, weekOffset)
				if err != nil {
					return err
				}
				renderSummary(cmd.OutOrStdout(), app.Locale, summary)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&weekOffset, "week-offset", "w", 0, "weeks back from the current week")
	return cmd
}

func renderSummary(w io.Writer, locale stats.Locale, s stats.Summary) {
	_, _ = fmt.Fprintf(w, "%s: %s (%d)\n", bold.Sprint(locale.Today),
		formatAvg(s.Today.Avg, s.Today.Count), s.Today.Count)
	_, _ = fmt.Fprintf(w, "%s: %s (%d)\n\n", bold.Sprint(s.Last30.Label),
		formatAvg(s.Last30.Avg, s.Last30.Count), s.Last30.Count)

	week := newTable()
	for _, d := range s.Week.Days {
		week.AddRow(d.Label, d.Date.Format("2006-01-02"), formatAvg(d.Avg, d.Count), d.Count)
	}
	printTable(w, fmt.Sprintf("Week (offset %d)", s.Week.Offset), week)
	_, _ = fmt.Fprintln(w)

	months := newTable()
	for _, m := range s.Months12 {
		months.AddRow(fmt.Sprintf("%s %d", m.Label, m.Year), formatAvg(m.Avg, m.Count), m.Count)
	}
	printTable(w, "Last 12 months", months)
	_, _ = fmt.Fprintln(w)

	semesters := newTable()
	for _, sem := range s.Semesters {
		semesters.AddRow(sem.Label, fmt.Sprintf("%.2f", sem.Avg))
	}
	printTable(w, "Semesters", semesters)
}
