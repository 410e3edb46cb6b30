package metadata

// CrossRef is one cross-reference match resolved from an external
// identifier shared between providers (an IMDb id). The secondary
// provider hosts full asset URLs, so PosterURL is absolute here rather
// than a path fragment.
type CrossRef struct {
	IMDbID    string  `json:"imdb_id"`
	Kind      Kind    `json:"kind"`
	Title     string  `json:"title"`
	Year      string  `json:"year,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
	PosterURL string  `json:"poster_url,omitempty"`
	Overview  string  `json:"overview,omitempty"`
}
