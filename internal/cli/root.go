// Package cli implements angerctl, the terminal client.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"angertrack/internal/config"
	"angertrack/internal/daydetail"
	"angertrack/internal/history"
	"angertrack/internal/service"
	"angertrack/internal/stats"
	"angertrack/internal/storage"
)

// App is everything a command needs.
type App struct {
	Tracker   service.Tracker
	Engine    *stats.Engine
	Resolver  *daydetail.Resolver
	Navigator *history.Navigator
	Locale    stats.Locale
	Location  *time.Location
}

// Opener builds an App and returns a cleanup func to release it.
type Opener func(ctx context.Context) (*App, func(), error)

// Open builds an App from the environment configuration.
func Open(ctx context.Context) (*App, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, service.WrapError(err, "load configuration")
	}

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return nil, nil, service.WrapError(err, "open database")
	}
	cleanup := func() {
		_ = db.Close()
	}

	stores := service.NewStores(db)
	tracker := service.NewTracker(db, stores, time.Now)
	if err := tracker.Initialize(ctx); err != nil {
		cleanup()
		return nil, nil, service.WrapError(err, "initialize database")
	}

	engine := stats.NewEngine(stores.Entries,
		stats.WithLocation(cfg.Location),
		stats.WithLocale(cfg.Locale),
	)
	resolver := daydetail.NewResolver(stores.Entries, stores.Notes, engine.Location())

	return &App{
		Tracker:   tracker,
		Engine:    engine,
		Resolver:  resolver,
		Navigator: history.New(engine, resolver, engine.Locale(), engine.Now),
		Locale:    engine.Locale(),
		Location:  engine.Location(),
	}, cleanup, nil
}

var bold = color.New(color.Bold)

// New returns the angerctl root command.
func New(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "angerctl",
		Short:         "Log anger intensity and review your history from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newLogCmd(open),
		newNoteCmd(open),
		newEntriesCmd(open),
		newNotesCmd(open),
		newToolsCmd(open),
		newToolCmd(open),
		newRmCmd(open),
		newClearCmd(open),
		newStatsCmd(open),
		newDayCmd(open),
		newHistoryCmd(open),
	)
	return cmd
}

// withApp opens the app for the duration of fn.
func withApp(cmd *cobra.Command, open Opener, fn func(ctx context.Context, app *App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app, cleanup, err := open(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(ctx, app)
}

func newTable() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	return tbl
}

func printTable(w io.Writer, title string, tbl *uitable.Table) {
	if title != "" {
		_, _ = fmt.Fprintln(w, bold.Sprint(title))
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func formatAvg(avg float64, count int) string {
	if count == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", avg)
}
