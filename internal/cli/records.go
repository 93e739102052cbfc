package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02 15:04"

func newLogCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "log INTENSITY",
		Short: "Log an anger intensity from 1 to 10",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			intensity, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("intensity must be a whole number: %q", args[0])
			}
			return withApp(cmd, open, func(ctx context.Context, app *App) error {
				entry, err := app.Tracker.InsertEntry(ctx, intensity)
				if err != nil {
					return err
				}
				today, err := app.Engine.StatsToday(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged %d at %s (#%d). Today: %s over %d entries\n",
					entry.Intensity, entry.Time(app.Location).Format("15:04"), entry.ID,
					formatAvg(today.Avg, today.Count), today.Count)
				return nil
			})
		},
	}
}

func newNoteCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "note TEXT...",
		Short: "Save a free-text note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, app *App) error {
				note, err := app.Tracker.InsertNote(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved note #%d\n", note.ID)
				return nil
			})
		},
	}
}

func newEntriesCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "entries",
		Short: "List logged entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, app *App) error {
				entries, err := app.Tracker.ListEntries(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					_, _ = fmt.Fprintln(out, app.Locale.NoData)
					return nil
				}
				tbl := newTable()
				tbl.AddRow(bold.Sprint("ID"), bold.Sprint("WHEN"), bold.Sprint("INTENSITY"))
				for _, e := range entries {
					tbl.AddRow(e.ID, e.Time(app.Location).Format(timeLayout), e.Intensity)
				}
				printTable(out, "", tbl)
				return nil
			})
		},
	}
}

func newNotesCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "notes",
		Short: "List saved notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, app *App) error {
				notes, err := app.Tracker.ListNotes(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(notes) == 0 {
					_, _ = fmt.Fprintln(out, app.Locale.NoData)
					return nil
				}
				tbl := newTable()
				tbl.AddRow(bold.Sprint("ID"), bold.Sprint("WHEN"), bold.Sprint("NOTE"))
				for _, n := range notes {
					tbl.AddRow(n.ID, n.Time(app.Location).Format(timeLayout), n.Text)
				}
				printTable(out, "", tbl)
				return nil
			})
		},
	}
}

func newToolsCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List coping tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, app *App) error {
				tools, err := app.Tracker.ListTools(ctx)
				if err != nil {
					return err
				}
				tbl := newTable()
				tbl.AddRow(bold.Sprint("ID"), bold.Sprint("NAME"), bold.Sprint("DESCRIPTION"))
				for _, t := range tools {
					tbl.AddRow(t.ID, t.Name, t.Description)
				}
				printTable(cmd.OutOrStdout(), "", tbl)
				return nil
			})
		},
	}
}

func newToolCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool",
		Short: "Manage coping tools",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME [DESCRIPTION]",
		Short: "Add a coping tool",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var desc string
			if len(args) == 2 {
				desc = args[1]
			}
			return withApp(cmd, open, func(ctx context.Context, app *App) error {
				tool, err := app.Tracker.InsertTool(ctx, args[0], desc)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added tool #%d %s\n", tool.ID, tool.Name)
				return nil
			})
		},
	})
	return cmd
}

func newRmCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:       "rm entry|note|tool ID",
		Short:     "Delete one record by id",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"entry", "note", "tool"},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid id %q", args[1])
			}
			return withApp(cmd, open, func(ctx context.Context, app *App) error {
				switch args[0] {
				case "entry":
					err = app.Tracker.DeleteEntry(ctx, id)
				case "note":
					err = app.Tracker.DeleteNote(ctx, id)
				case "tool":
					err = app.Tracker.DeleteTool(ctx, id)
				default:
					return fmt.Errorf("unknown kind %q, want entry, note or tool", args[0])
				}
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s #%d\n", args[0], id)
				return nil
			})
		},
	}
}

var errNotConfirmed = errors.New("refusing to delete without --yes")

func newClearCmd(open Opener) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:       "clear entries|notes|tools",
		Short:     "Delete every record of one kind",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"entries", "notes", "tools"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, app *App) error {
				out := cmd.OutOrStdout()
				var (
					count int
					err   error
					del   func(context.Context) (int, error)
				)
				switch args[0] {
				case "entries":
					count, err = app.Tracker.CountEntries(ctx)
					del = app.Tracker.DeleteAllEntries
				case "notes":
					count, err = app.Tracker.CountNotes(ctx)
					del = app.Tracker.DeleteAllNotes
				case "tools":
					// Tools are reseeded with the defaults on the next listing.
					count = -1
					del = func(ctx context.Context) (int, error) {
						return -1, app.Tracker.DeleteAllTools(ctx)
					}
				default:
					return fmt.Errorf("unknown kind %q, want entries, notes or tools", args[0])
				}
				if err != nil {
					return err
				}
				if count == 0 {
					_, _ = fmt.Fprintf(out, "No %s to delete\n", args[0])
					return nil
				}
				if !yes {
					if count > 0 {
						_, _ = fmt.Fprintf(out, "%d %s will be deleted\n", count, args[0])
					}
					return errNotConfirmed
				}
				deleted, err := del(ctx)
				if err != nil {
					return err
				}
				if deleted < 0 {
					_, _ = fmt.Fprintf(out, "Deleted all %s\n", args[0])
					return nil
				}
				_, _ = fmt.Fprintf(out, "Deleted %d %s\n", deleted, args[0])
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")
	return cmd
}
