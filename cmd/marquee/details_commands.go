package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/metadata"
)

func newDetailsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "details <movie|show> <id>",
		Short: "Show full details for one title",
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

			if asJSON {
				return writeJSON(cmd, map[string]any{
					"item":       item,
					"poster_url": gw.PosterURL(item.PosterPath, metadata.PosterMedium),
				})
			}

			out := cmd.OutOrStdout()
			offlineNotice(out, gw.Offline())
			fmt.Fprintf(out, "%s (%s)\n", item.Title, kindLabel(item.Kind))
			fmt.Fprintf(out, "  ID:       %d\n", item.ID)
			fmt.Fprintf(out, "  Released: %s\n", orDash(item.ReleaseDate))
			fmt.Fprintf(out, "  Rating:   %s (%d votes)\n", formatRating(item.Rating), item.VoteCount)
			fmt.Fprintf(out, "  Poster:   %s\n", gw.PosterURL(item.PosterPath, metadata.PosterMedium))
			if len(item.GenreIDs) > 0 {
				fmt.Fprintf(out, "  Genres:   %s\n", joinIDs(item.GenreIDs))
			}
			if item.Overview != "" {
				fmt.Fprintf(out, "\n%s\n", item.Overview)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

func newCreditsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var castLimit int

	cmd := &cobra.Command{
		Use:   "credits <movie|show> <id>",
		Short: "List cast and crew for one title",
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

			var credits *metadata.Credits
			switch kind {
			case metadata.KindMovie:
				credits, err = gw.MovieCredits(cmd.Context(), id)
			default:
				credits, err = gw.ShowCredits(cmd.Context(), id)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, credits)
			}

			out := cmd.OutOrStdout()
			offlineNotice(out, gw.Offline())
			if len(credits.Cast) == 0 && len(credits.Crew) == 0 {
				fmt.Fprintln(out, "No credits recorded for this title.")
				return nil
			}

			cast := credits.Cast
			if castLimit > 0 && len(cast) > castLimit {
				cast = cast[:castLimit]
			}
			if len(cast) > 0 {
				rows := make([][]string, 0, len(cast))
				for _, member := range cast {
					rows = append(rows, []string{member.Name, member.Character})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Cast", "Role"},
					rows,
					[]columnAlignment{alignLeft, alignLeft},
				))
			}
			if len(credits.Crew) > 0 {
				rows := make([][]string, 0, len(credits.Crew))
				for _, member := range credits.Crew {
					rows = append(rows, []string{member.Name, member.Job})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Crew", "Job"},
					rows,
					[]columnAlignment{alignLeft, alignLeft},
				))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of tables")
	cmd.Flags().IntVar(&castLimit, "cast-limit", 15, "Maximum cast rows to print (ignored with --json)")
	return cmd
}

func newGenresCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "genres <movies|shows>",
		Short: "List the genre vocabulary for a media kind",
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

			genres, err := gw.Genres(cmd.Context(), kind)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, map[string]any{"genres": genres})
			}

			out := cmd.OutOrStdout()
			offlineNotice(out, gw.Offline())
			rows := make([][]string, 0, len(genres))
			for _, genre := range genres {
				rows = append(rows, []string{strconv.FormatInt(genre.ID, 10), genre.Name})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Genre"},
				rows,
				[]columnAlignment{alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newFindCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "find <imdb-id>",
		Short: "Cross-reference a title by its IMDb identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			externalID := strings.TrimSpace(args[0])
			if externalID == "" {
				return fmt.Errorf("an IMDb identifier is required")
			}

			gw, err := ctx.ensureGateway()
			if err != nil {
				return err
			}

			matches, err := gw.CrossReference(cmd.Context(), externalID)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, map[string]any{"matches": matches})
			}

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintf(out, "No match for %s.\n", externalID)
				return nil
			}
			for _, match := range matches {
				fmt.Fprintf(out, "%s (%s, %s)\n", match.Title, kindLabel(match.Kind), orDash(match.Year))
				fmt.Fprintf(out, "  IMDb:   %s\n", match.IMDbID)
				fmt.Fprintf(out, "  Rating: %s\n", formatRating(match.Rating))
				if match.Overview != "" {
					fmt.Fprintf(out, "  %s\n", truncate(match.Overview, 200))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ", ")
}
