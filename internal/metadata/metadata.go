// Package metadata defines the plain data types exchanged between the
// remote gateway, the local watchlist, and any rendering layer. Nothing
// here touches the network or disk.
package metadata

import (
	"fmt"
	"strings"
)

// Kind distinguishes movies from shows. The numeric ids handed out by
// the metadata provider overlap between the two, so every lookup is
// keyed by (id, kind).
type Kind string

const (
	KindMovie Kind = "movie"
	KindShow  Kind = "show"
)

// ParseKind normalizes user- or provider-supplied media kind labels.
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "movie", "movies", "film":
		return KindMovie, nil
	case "show", "shows", "tv", "series":
		return KindShow, nil
	default:
		return "", fmt.Errorf("unknown media kind %q (expected movie or show)", value)
	}
}

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	return k == KindMovie || k == KindShow
}

func (k Kind) String() string {
	return string(k)
}

// Item is one movie or show as returned by the gateway. Title and
// ReleaseDate are already normalized across the provider's movie/TV
// payload shapes; Kind tags which shape the item came from.
type Item struct {
	ID          int64   `json:"id"`
	Kind        Kind    `json:"kind"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	Popularity  float64 `json:"popularity"`
	Rating      float64 `json:"rating"`
	VoteCount   int64   `json:"vote_count"`
	GenreIDs    []int64 `json:"genre_ids,omitempty"`
}

// ReleaseYear extracts the four-digit year from ReleaseDate, or 0 when
// the date is absent or malformed.
func (i Item) ReleaseYear() int {
	if len(i.ReleaseDate) < 4 {
		return 0
	}
	year := 0
	for _, r := range i.ReleaseDate[:4] {
		if r < '0' || r > '9' {
			return 0
		}
		year = year*10 + int(r-'0')
	}
	return year
}

// HasGenre reports whether the item carries the given genre id.
func (i Item) HasGenre(id int64) bool {
	for _, g := range i.GenreIDs {
		if g == id {
			return true
		}
	}
	return false
}

// Page is one page of a paginated provider response.
type Page struct {
	Page         int    `json:"page"`
	Results      []Item `json:"results"`
	TotalPages   int    `json:"total_pages"`
	TotalResults int    `json:"total_results"`
}

// Genre is a provider genre list entry.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CastMember is one cast credit on a movie or show.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
	Order       int    `json:"order"`
}

// CrewMember is one crew credit on a movie or show.
type CrewMember struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job,omitempty"`
}

// Credits is the full credit roll for one movie or show.
type Credits struct {
	ID   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}
