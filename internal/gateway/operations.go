package gateway

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"marquee/internal/metadata"
	"marquee/internal/metadata/omdb"
)

// SearchMovies performs a paged title search over movies.
func (g *Gateway) SearchMovies(ctx context.Context, query string, page int) (*metadata.Page, error) {
	const op = "search_movies"
	key := cacheKey(op, map[string]string{
		"query": strings.ToLower(strings.TrimSpace(query)),
		"page":  pageParam(page),
	})
	return cachedFetch(g, ctx, op, key, !g.Offline(), func(ctx context.Context) (*metadata.Page, error) {
		if g.Offline() {
			return g.offline.search(metadata.KindMovie, query, page)
		}
		resp, err := g.tmdb.SearchMovies(ctx, query, page)
		if err != nil {
			return nil, err
		}
		return pageFromResponse(resp, metadata.KindMovie), nil
	})
}

// SearchShows performs a paged title search over shows.
func (g *Gateway) SearchShows(ctx context.Context, query string, page int) (*metadata.Page, error) {
	const op = "search_shows"
	key := cacheKey(op, map[string]string{
		"query": strings.ToLower(strings.TrimSpace(query)),
		"page":  pageParam(page),
	})
	return cachedFetch(g, ctx, op, key, !g.Offline(), func(ctx context.Context) (*metadata.Page, error) {
		if g.Offline() {
			return g.offline.search(metadata.KindShow, query, page)
		}
		resp, err := g.tmdb.SearchTV(ctx, query, page)
		if err != nil {
			return nil, err
		}
		return pageFromResponse(resp, metadata.KindShow), nil
	})
}

// TrendingMovies fetches the trending movie list for the given window
// ("day" or "week", defaulting to week).
func (g *Gateway) TrendingMovies(ctx context.Context, window string) (*metadata.Page, error) {
	const op = "trending_movies"
	window = normalizeWindow(window)
	key := cacheKey(op, map[string]string{"window": window})
	return cachedFetch(g, ctx, op, key, !g.Offline(), func(ctx context.Context) (*metadata.Page, error) {
		if g.Offline() {
			return g.offline.trending(metadata.KindMovie)
		}
		resp, err := g.tmdb.TrendingMovies(ctx, window)
		if err != nil {
			return nil, err
		}
		return pageFromResponse(resp, metadata.KindMovie), nil
	})
}

// TrendingShows fetches the trending show list for the given window.
func (g *Gateway) TrendingShows(ctx context.Context, window string) (*metadata.Page, error) {
	const op = "trending_shows"
	window = normalizeWindow(window)
	key := cacheKey(op, map[string]string{"window": window})
	return cachedFetch(g, ctx, op, key, !g.Offline(), func(ctx context.Context) (*metadata.Page, error) {
		if g.Offline() {
			return g.offline.trending(metadata.KindShow)
		}
		resp, err := g.tmdb.TrendingTV(ctx, window)
		if err != nil {
			return nil, err
		}
		return pageFromResponse(resp, metadata.KindShow), nil
	})
}

// MovieDetails fetches the detail snapshot for one movie.
func (g *Gateway) MovieDetails(ctx context.Context, id int64) (*metadata.Item, error) {
	const op = "movie_details"
	key := cacheKey(op, map[string]string{"id": strconv.FormatInt(id, 10)})
	return cachedFetch(g, ctx, op, key, !g.Offline(), func(ctx context.Context) (*metadata.Item, error) {
		if g.Offline() {
			return g.offline.details(metadata.KindMovie, id)
		}
		detail, err := g.tmdb.MovieDetails(ctx, id)
		if err != nil {
			return nil, err
		}
		item := itemFromDetail(detail, metadata.KindMovie)
		return &item, nil
	})
}

// ShowDetails fetches the detail snapshot for one show.
func (g *Gateway) ShowDetails(ctx context.Context, id int64) (*metadata.Item, error) {
	const op = "show_details"
	key := cacheKey(op, map[string]string{"id": strconv.FormatInt(id, 10)})
	return cachedFetch(g, ctx, op, key, !g.Offline(), func(ctx context.Context) (*metadata.Item, error) {
		if g.Offline() {
			return g.offline.details(metadata.KindShow, id)
		}
		detail, err := g.tmdb.TVDetails(ctx, id)
		if err != nil {
			return nil, err
		}
		item := itemFromDetail(detail, metadata.KindShow)
		return &item, nil
	})
}

// MovieCredits fetches the credit roll for one movie.
func (g *Gateway) MovieCredits(ctx context.Context, id int64) (*metadata.Credits, error) {
	const op = "movie_credits"
	key := cacheKey(op, map[string]string{"id": strconv.FormatInt(id, 10)})
	return cachedFetch(g, ctx, op, key, !g.Offline(), func(ctx context.Context) (*metadata.Credits, error) {
		if g.Offline() {
			return g.offline.credits(metadata.KindMovie, id), nil
		}
		resp, err := g.tmdb.MovieCredits(ctx, id)
		if err != nil {
			return nil, err
		}
		return creditsFromResponse(resp), nil
	})
}

// ShowCredits fetches the credit roll for one show.
func (g *Gateway) ShowCredits(ctx context.Context, id int64) (*metadata.Credits, error) {
	const op = "show_credits"
	key := cacheKey(op, map[string]string{"id": strconv.FormatInt(id, 10)})
	return cachedFetch(g, ctx, op, key, !g.Offline(), func(ctx context.Context) (*metadata.Credits, error) {
		if g.Offline() {
			return g.offline.credits(metadata.KindShow, id), nil
		}
		resp, err := g.tmdb.TVCredits(ctx, id)
		if err != nil {
			return nil, err
		}
		return creditsFromResponse(resp), nil
	})
}

// Genres fetches the genre list for the given media kind.
func (g *Gateway) Genres(ctx context.Context, kind metadata.Kind) ([]metadata.Genre, error) {
	const op = "genres"
	if !kind.Valid() {
		return nil, newFailure(op, fmt.Errorf("invalid media kind %q", kind))
	}
	key := cacheKey(op, map[string]string{"kind": kind.String()})
	return cachedFetch(g, ctx, op, key, !g.Offline(), func(ctx context.Context) ([]metadata.Genre, error) {
		if g.Offline() {
			return g.offline.genres(kind), nil
		}
		if kind == metadata.KindMovie {
			resp, err := g.tmdb.MovieGenres(ctx)
			if err != nil {
				return nil, err
			}
			return genresFromList(resp), nil
		}
		resp, err := g.tmdb.TVGenres(ctx)
		if err != nil {
			return nil, err
		}
		return genresFromList(resp), nil
	})
}

// DiscoverMovies queries the movie catalog with the optional filter
// set.
func (g *Gateway) DiscoverMovies(ctx context.Context, filters DiscoverFilters) (*metadata.Page, error) {
	const op = "discover_movies"
	key := cacheKey(op, filters.params())
	return cachedFetch(g, ctx, op, key, !g.Offline(), func(ctx context.Context) (*metadata.Page, error) {
		if g.Offline() {
			return g.offline.discover(metadata.KindMovie, filters)
		}
		resp, err := g.tmdb.DiscoverMovies(ctx, filters.provider())
		if err != nil {
			return nil, err
		}
		return pageFromResponse(resp, metadata.KindMovie), nil
	})
}

// DiscoverShows queries the show catalog with the optional filter set.
func (g *Gateway) DiscoverShows(ctx context.Context, filters DiscoverFilters) (*metadata.Page, error) {
	const op = "discover_shows"
	key := cacheKey(op, filters.params())
	return cachedFetch(g, ctx, op, key, !g.Offline(), func(ctx context.Context) (*metadata.Page, error) {
		if g.Offline() {
			return g.offline.discover(metadata.KindShow, filters)
		}
		resp, err := g.tmdb.DiscoverTV(ctx, filters.provider())
		if err != nil {
			return nil, err
		}
		return pageFromResponse(resp, metadata.KindShow), nil
	})
}

// CrossReference resolves an external IMDb identifier through the
// secondary provider. A provider-side miss is a valid empty result,
// not an error; without an OMDb credential the lookup deterministically
// resolves to no matches.
func (g *Gateway) CrossReference(ctx context.Context, externalID string) ([]metadata.CrossRef, error) {
	const op = "cross_reference"
	externalID = strings.TrimSpace(externalID)
	key := cacheKey(op, map[string]string{"id": strings.ToLower(externalID)})
	remote := g.omdb != nil
	return cachedFetch(g, ctx, op, key, remote, func(ctx context.Context) ([]metadata.CrossRef, error) {
		if g.omdb == nil {
			return []metadata.CrossRef{}, nil
		}
		record, err := g.omdb.ByIMDbID(ctx, externalID)
		if errors.Is(err, omdb.ErrNotFound) {
			return []metadata.CrossRef{}, nil
		}
		if err != nil {
			return nil, err
		}
		return []metadata.CrossRef{crossRefFromRecord(record)}, nil
	})
}

func pageParam(page int) string {
	if page <= 0 {
		return ""
	}
	return strconv.Itoa(page)
}

func normalizeWindow(window string) string {
	if strings.ToLower(strings.TrimSpace(window)) == "day" {
		return "day"
	}
	return "week"
}
