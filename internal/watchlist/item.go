// Package watchlist maintains the user's tracked movies and shows: an
// in-memory collection mirrored to durable storage on every mutation,
// with filtered and sorted read views that never disturb insertion
// order.
package watchlist

import (
	"fmt"
	"strings"
	"time"

	"marquee/internal/metadata"
)

// Item is one tracked movie or show. All metadata fields are a
// snapshot captured when the item was added; they are never refreshed
// from the provider.
type Item struct {
	ID          int64         `json:"id"`
	Kind        metadata.Kind `json:"kind"`
	Title       string        `json:"title"`
	PosterPath  string        `json:"poster_path,omitempty"`
	ReleaseDate string        `json:"release_date,omitempty"`
	Rating      float64       `json:"rating"`
	Overview    string        `json:"overview,omitempty"`
	Watched     bool          `json:"watched"`
	AddedAt     time.Time     `json:"added_at"`
}

// Stats aggregates the collection. Watched+Unwatched and Movies+Shows
// each always sum to Total.
type Stats struct {
	Total     int `json:"total"`
	Watched   int `json:"watched"`
	Unwatched int `json:"unwatched"`
	Movies    int `json:"movies"`
	Shows     int `json:"shows"`
}

// Filter selects a subset of the collection for a read view.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterMovies    Filter = "movies"
	FilterShows     Filter = "shows"
	FilterWatched   Filter = "watched"
	FilterUnwatched Filter = "unwatched"
)

// ParseFilter normalizes a user-supplied filter label.
func ParseFilter(value string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all":
		return FilterAll, nil
	case "movies", "movie":
		return FilterMovies, nil
	case "shows", "show", "tv":
		return FilterShows, nil
	case "watched":
		return FilterWatched, nil
	case "unwatched":
		return FilterUnwatched, nil
	default:
		return "", fmt.Errorf("unknown filter %q (expected all, movies, shows, watched, or unwatched)", value)
	}
}

// SortKey orders a read view.
type SortKey string

const (
	// SortAdded is the default: most recently added first.
	SortAdded   SortKey = "added"
	SortTitle   SortKey = "title"
	SortRelease SortKey = "release"
	SortRating  SortKey = "rating"
)

// ParseSortKey normalizes a user-supplied sort label. Unrecognized
// labels fall back to the default ordering.
func ParseSortKey(value string) SortKey {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "title":
		return SortTitle
	case "release", "release_date", "date":
		return SortRelease
	case "rating":
		return SortRating
	default:
		return SortAdded
	}
}

func (i Item) matches(filter Filter) bool {
	switch filter {
	case FilterMovies:
		return i.Kind == metadata.KindMovie
	case FilterShows:
		return i.Kind == metadata.KindShow
	case FilterWatched:
		return i.Watched
	case FilterUnwatched:
		return !i.Watched
	default:
		return true
	}
}
