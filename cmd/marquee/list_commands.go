package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"marquee/internal/metadata"
	"marquee/internal/watchlist"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var filterFlag string
	var sortFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the watchlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := watchlist.ParseFilter(filterFlag)
			if err != nil {
				return err
			}
			sortKey := watchlist.ParseSortKey(sortFlag)

			return ctx.withStore(cmd.Context(), func(store *watchlist.Store) error {
				items := store.View(filter, sortKey)
				if asJSON {
					return writeJSON(cmd, map[string]any{"items": items})
				}

				out := cmd.OutOrStdout()
				if len(items) == 0 {
					fmt.Fprintln(out, "The watchlist is empty.")
					return nil
				}

				colorize := shouldColorize(out)
				rows := make([][]string, 0, len(items))
				for _, item := range items {
					rows = append(rows, []string{
						strconv.FormatInt(item.ID, 10),
						kindLabel(item.Kind),
						item.Title,
						formatYear(item.ReleaseDate),
						formatRating(item.Rating),
						watchedMark(item.Watched, colorize),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Kind", "Title", "Year", "Rating", "Status"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&filterFlag, "filter", "all", "Filter: all, movies, shows, watched, unwatched")
	cmd.Flags().StringVar(&sortFlag, "sort", "added", "Sort: added, title, release, rating")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <movie|show> <id>",
		Short: "Add a title to the watchlist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindArg(args[0])
			if err != nil {
				return err
			}
			id, err := parseIDArg(args[1])
			if err != nil {
				return err
			}

			gw, err := ctx.ensureGateway()
			if err != nil {
				return err
			}

			var item *metadata.Item
			switch kind {
			case metadata.KindMovie:
				item, err = gw.MovieDetails(cmd.Context(), id)
			default:
				item, err = gw.ShowDetails(cmd.Context(), id)
			}
			if err != nil {
				return err
			}

			return ctx.withStore(cmd.Context(), func(store *watchlist.Store) error {
				added, err := store.Add(cmd.Context(), *item)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !added {
					fmt.Fprintf(out, "%s is already on the watchlist.\n", item.Title)
					return nil
				}
				fmt.Fprintf(out, "Added %s (%s) to the watchlist.\n", item.Title, kindLabel(kind))
				return nil
			})
		},
	}
	return cmd
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <movie|show> <id>",
		Short: "Remove a title from the watchlist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindArg(args[0])
			if err != nil {
				return err
			}
			id, err := parseIDArg(args[1])
			if err != nil {
				return err
			}

			return ctx.withStore(cmd.Context(), func(store *watchlist.Store) error {
				removed, err := store.Remove(cmd.Context(), id, kind)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !removed {
					fmt.Fprintf(out, "%s %d is not on the watchlist.\n", kindLabel(kind), id)
					return nil
				}
				fmt.Fprintf(out, "Removed %s %d from the watchlist.\n", kindLabel(kind), id)
				return nil
			})
		},
	}
	return cmd
}

func newWatchedCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watched <movie|show> <id>",
		Short: "Toggle the watched flag on a watchlist entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindArg(args[0])
			if err != nil {
				return err
			}
			id, err := parseIDArg(args[1])
			if err != nil {
				return err
			}

			return ctx.withStore(cmd.Context(), func(store *watchlist.Store) error {
				toggled, err := store.ToggleWatched(cmd.Context(), id, kind)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !toggled {
					fmt.Fprintf(out, "%s %d is not on the watchlist.\n", kindLabel(kind), id)
					return nil
				}
				entry, _ := store.Get(id, kind)
				if entry.Watched {
					fmt.Fprintf(out, "Marked %s as watched.\n", entry.Title)
				} else {
					fmt.Fprintf(out, "Marked %s as unwatched.\n", entry.Title)
				}
				return nil
			})
		},
	}
	return cmd
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the watchlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd.Context(), func(store *watchlist.Store) error {
				stats := store.Stats()
				if asJSON {
					return writeJSON(cmd, stats)
				}
				rows := [][]string{
					{"Total", strconv.Itoa(stats.Total)},
					{"Watched", strconv.Itoa(stats.Watched)},
					{"Unwatched", strconv.Itoa(stats.Unwatched)},
					{"Movies", strconv.Itoa(stats.Movies)},
					{"Shows", strconv.Itoa(stats.Shows)},
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Metric", "Count"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newClearCommand(ctx *commandContext) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every watchlist entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("clearing removes every entry; re-run with --yes to confirm")
			}
			return ctx.withStore(cmd.Context(), func(store *watchlist.Store) error {
				count := store.Len()
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d watchlist entries.\n", count)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm clearing the watchlist")
	return cmd
}
