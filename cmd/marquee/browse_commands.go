package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/gateway"
	"marquee/internal/metadata"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var page int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <movies|shows> <query>",
		Short: "Search the catalog by title",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindArg(args[0])
			if err != nil {
				return err
			}
			query := strings.Join(args[1:], " ")

			gw, err := ctx.ensureGateway()
			if err != nil {
				return err
			}

			var result *metadata.Page
			switch kind {
			case metadata.KindMovie:
				result, err = gw.SearchMovies(cmd.Context(), query, page)
			default:
				result, err = gw.SearchShows(cmd.Context(), query, page)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}
			offlineNotice(cmd.OutOrStdout(), gw.Offline())
			renderPage(cmd, result, fmt.Sprintf("No %s matched %q.", pluralKind(kind), query))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Result page to fetch")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newTrendingCommand(ctx *commandContext) *cobra.Command {
	var window string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "trending <movies|shows>",
		Short: "List currently trending titles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindArg(args[0])
			if err != nil {
				return err
			}

			gw, err := ctx.ensureGateway()
			if err != nil {
				return err
			}

			var result *metadata.Page
			switch kind {
			case metadata.KindMovie:
				result, err = gw.TrendingMovies(cmd.Context(), window)
			default:
				result, err = gw.TrendingShows(cmd.Context(), window)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}
			offlineNotice(cmd.OutOrStdout(), gw.Offline())
			renderPage(cmd, result, fmt.Sprintf("No trending %s right now.", pluralKind(kind)))
			return nil
		},
	}

	cmd.Flags().StringVar(&window, "window", "week", "Trending window (day or week)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newDiscoverCommand(ctx *commandContext) *cobra.Command {
	var page int
	var genre int64
	var year int
	var sortKey string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "discover <movies|shows>",
		Short: "Browse the catalog with filters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindArg(args[0])
			if err != nil {
				return err
			}

			gw, err := ctx.ensureGateway()
			if err != nil {
				return err
			}

			filters := gateway.DiscoverFilters{
				Page:    page,
				Genre:   genre,
				Year:    year,
				SortKey: sortKey,
			}

			var result *metadata.Page
			switch kind {
			case metadata.KindMovie:
				result, err = gw.DiscoverMovies(cmd.Context(), filters)
			default:
				result, err = gw.DiscoverShows(cmd.Context(), filters)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}
			offlineNotice(cmd.OutOrStdout(), gw.Offline())
			renderPage(cmd, result, fmt.Sprintf("No %s matched the filters.", pluralKind(kind)))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Result page to fetch")
	cmd.Flags().Int64Var(&genre, "genre", 0, "Restrict results to a genre ID")
	cmd.Flags().IntVar(&year, "year", 0, "Restrict results to a release year")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort order: popularity.desc, popularity.asc, rating.asc, rating.desc, release.asc, release.desc")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func pluralKind(kind metadata.Kind) string {
	if kind == metadata.KindMovie {
		return "movies"
	}
	return "shows"
}
