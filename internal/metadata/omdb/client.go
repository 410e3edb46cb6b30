// Package omdb is a minimal client for the OMDb API, used to
// cross-reference titles by IMDb id. OMDb signals "not found" inside a
// 200 response body, so the client distinguishes that case from
// transport failures.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when the provider has no record for the
// requested id. Callers that treat a miss as an empty result test for
// it with errors.Is.
var ErrNotFound = errors.New("omdb: no match for id")

// Record is the subset of the OMDb payload the application consumes.
type Record struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Type       string `json:"Type"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	Released   string `json:"Released"`
	IMDbID     string `json:"imdbID"`
	IMDbRating string `json:"imdbRating"`
}

// envelope wraps Record with OMDb's in-band status fields.
type envelope struct {
	Record
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Client provides access to the OMDb API.
type Client struct {
	apiKey     string
	baseURL    string
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

// New creates an OMDb client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("omdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("omdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// ByIMDbID looks up a title by its IMDb identifier. A provider-side
// miss returns ErrNotFound; transport and status failures return
// ordinary errors.
func (c *Client) ByIMDbID(ctx context.Context, imdbID string) (*Record, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return nil, errors.New("imdb id must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return nil, fmt.Errorf("parse omdb url: %w", err)
	}
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("i", imdbID)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("omdb lookup returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload envelope
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode omdb response: %w", err)
	}
	if !strings.EqualFold(payload.Response, "true") {
		return nil, fmt.Errorf("%w (%s)", ErrNotFound, strings.TrimSpace(payload.Error))
	}
	return &payload.Record, nil
}
