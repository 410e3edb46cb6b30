package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"marquee/internal/metadata"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

var titleCaser = cases.Title(language.Und)

// kindLabel renders a media kind as a display heading ("Movie", "Show").
func kindLabel(kind metadata.Kind) string {
	return titleCaser.String(kind.String())
}

func formatRating(rating float64) string {
	if rating <= 0 {
		return "-"
	}
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

func formatYear(releaseDate string) string {
	if len(releaseDate) < 4 {
		return "-"
	}
	return releaseDate[:4]
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	if max <= 3 {
		return value[:max]
	}
	return value[:max-3] + "..."
}

func watchedMark(watched, colorize bool) string {
	if !watched {
		return ""
	}
	if colorize {
		return ansiGreen + "watched" + ansiReset
	}
	return "watched"
}

// pageRows flattens a result page for tabular output.
func pageRows(page *metadata.Page) [][]string {
	rows := make([][]string, 0, len(page.Results))
	for _, item := range page.Results {
		rows = append(rows, []string{
			strconv.FormatInt(item.ID, 10),
			item.Title,
			formatYear(item.ReleaseDate),
			formatRating(item.Rating),
		})
	}
	return rows
}

func renderPage(cmd interface{ OutOrStdout() io.Writer }, page *metadata.Page, emptyMessage string) {
	out := cmd.OutOrStdout()
	if len(page.Results) == 0 {
		fmt.Fprintln(out, emptyMessage)
		return
	}
	table := renderTable(
		[]string{"ID", "Title", "Year", "Rating"},
		pageRows(page),
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
	)
	fmt.Fprintln(out, table)
	fmt.Fprintf(out, "Page %d of %d (%d results)\n", page.Page, page.TotalPages, page.TotalResults)
}

func offlineNotice(out io.Writer, offline bool) {
	if !offline {
		return
	}
	notice := "Offline mode: serving the bundled sample catalog. Set tmdb.api_key for live data."
	if shouldColorize(out) {
		notice = ansiYellow + notice + ansiReset
	}
	fmt.Fprintln(out, notice)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// parseKindArg accepts both singular and plural spellings of a media
// kind so `marquee search movies` and `marquee details movie` read well.
func parseKindArg(value string) (metadata.Kind, error) {
	trimmed := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(value)), "s")
	return metadata.ParseKind(trimmed)
}

func parseIDArg(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: expected a positive integer", value)
	}
	return id, nil
}
