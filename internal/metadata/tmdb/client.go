// Package tmdb is a thin HTTP client for The Movie Database API. It
// exposes the provider's wire shapes unchanged; normalization into the
// shared metadata types happens in the gateway.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Result represents a single TMDB list entry. Movie payloads populate
// Title/ReleaseDate, TV payloads populate Name/FirstAirDate.
type Result struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	MediaType    string  `json:"media_type"`
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
	GenreIDs     []int64 `json:"genre_ids"`
}

// Response models the TMDB paginated list response.
type Response struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Genre is a TMDB genre list entry.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GenreList models the /genre/{kind}/list response.
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// Detail captures the full TMDB detail payload for one movie or show.
// Unlike list entries, details carry expanded genre objects.
type Detail struct {
	Result
	Genres []Genre `json:"genres"`
}

// CastMember is one cast credit in a credits payload.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// CrewMember is one crew credit in a credits payload.
type CrewMember struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Credits models the /credits response.
type Credits struct {
	ID   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// DiscoverOptions contains the optional filters accepted by the
// discover endpoints. Zero values mean "not set".
type DiscoverOptions struct {
	Page   int
	Genre  int64
	Year   int
	SortBy string
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchMovies performs a paged TMDB movie search.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("query", query)
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	var payload Response
	if err := c.get(ctx, "/search/movie", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SearchTV performs a paged TMDB TV search.
func (c *Client) SearchTV(ctx context.Context, query string, page int) (*Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("query", query)
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	var payload Response
	if err := c.get(ctx, "/search/tv", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// TrendingMovies fetches the trending movie list for the given window
// ("day" or "week").
func (c *Client) TrendingMovies(ctx context.Context, window string) (*Response, error) {
	var payload Response
	if err := c.get(ctx, "/trending/movie/"+trendingWindow(window), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// TrendingTV fetches the trending TV list for the given window.
func (c *Client) TrendingTV(ctx context.Context, window string) (*Response, error) {
	var payload Response
	if err := c.get(ctx, "/trending/tv/"+trendingWindow(window), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func trendingWindow(window string) string {
	switch strings.ToLower(strings.TrimSpace(window)) {
	case "day":
		return "day"
	default:
		return "week"
	}
}

// MovieDetails fetches the full detail payload for one movie.
func (c *Client) MovieDetails(ctx context.Context, id int64) (*Detail, error) {
	var payload Detail
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// TVDetails fetches the full detail payload for one show.
func (c *Client) TVDetails(ctx context.Context, id int64) (*Detail, error) {
	var payload Detail
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", id), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// MovieCredits fetches the credit roll for one movie.
func (c *Client) MovieCredits(ctx context.Context, id int64) (*Credits, error) {
	var payload Credits
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/credits", id), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// TVCredits fetches the credit roll for one show.
func (c *Client) TVCredits(ctx context.Context, id int64) (*Credits, error) {
	var payload Credits
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/credits", id), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// MovieGenres fetches the movie genre list.
func (c *Client) MovieGenres(ctx context.Context) (*GenreList, error) {
	var payload GenreList
	if err := c.get(ctx, "/genre/movie/list", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// TVGenres fetches the TV genre list.
func (c *Client) TVGenres(ctx context.Context) (*GenreList, error) {
	var payload GenreList
	if err := c.get(ctx, "/genre/tv/list", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DiscoverMovies queries the movie discover endpoint with the supplied
// filters.
func (c *Client) DiscoverMovies(ctx context.Context, opts DiscoverOptions) (*Response, error) {
	params := discoverParams(opts)
	if opts.Year > 0 {
		params.Set("primary_release_year", strconv.Itoa(opts.Year))
	}
	if opts.SortBy != "" {
		params.Set("sort_by", movieSortBy(opts.SortBy))
	}
	var payload Response
	if err := c.get(ctx, "/discover/movie", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DiscoverTV queries the TV discover endpoint with the supplied filters.
func (c *Client) DiscoverTV(ctx context.Context, opts DiscoverOptions) (*Response, error) {
	params := discoverParams(opts)
	if opts.Year > 0 {
		params.Set("first_air_date_year", strconv.Itoa(opts.Year))
	}
	if opts.SortBy != "" {
		params.Set("sort_by", tvSortBy(opts.SortBy))
	}
	var payload Response
	if err := c.get(ctx, "/discover/tv", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func discoverParams(opts DiscoverOptions) url.Values {
	params := url.Values{}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Genre > 0 {
		params.Set("with_genres", strconv.FormatInt(opts.Genre, 10))
	}
	return params
}

// movieSortBy maps the canonical sort keys onto the provider's movie
// discover vocabulary. Unrecognized keys fall back to the default
// popularity-descending ordering.
func movieSortBy(key string) string {
	switch key {
	case "popularity.asc":
		return "popularity.asc"
	case "rating.asc":
		return "vote_average.asc"
	case "rating.desc":
		return "vote_average.desc"
	case "release.asc":
		return "primary_release_date.asc"
	case "release.desc":
		return "primary_release_date.desc"
	default:
		return "popularity.desc"
	}
}

func tvSortBy(key string) string {
	switch key {
	case "popularity.asc":
		return "popularity.asc"
	case "rating.asc":
		return "vote_average.asc"
	case "rating.desc":
		return "vote_average.desc"
	case "release.asc":
		return "first_air_date.asc"
	case "release.desc":
		return "first_air_date.desc"
	default:
		return "popularity.desc"
	}
}

// get issues one API request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb %s returned %d (latency=%v)", path, resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	return nil
}
