package gateway

import (
	"strconv"
	"strings"

	"marquee/internal/metadata"
	"marquee/internal/metadata/omdb"
	"marquee/internal/metadata/tmdb"
)

// The provider splits title and date fields across its movie and TV
// payload shapes; normalization folds both into the shared Item form
// tagged with the media kind.

func itemFromResult(r tmdb.Result, kind metadata.Kind) metadata.Item {
	title := r.Title
	release := r.ReleaseDate
	if kind == metadata.KindShow {
		if r.Name != "" {
			title = r.Name
		}
		if r.FirstAirDate != "" {
			release = r.FirstAirDate
		}
	}
	return metadata.Item{
		ID:          r.ID,
		Kind:        kind,
		Title:       title,
		Overview:    r.Overview,
		PosterPath:  r.PosterPath,
		ReleaseDate: release,
		Popularity:  r.Popularity,
		Rating:      r.VoteAverage,
		VoteCount:   r.VoteCount,
		GenreIDs:    r.GenreIDs,
	}
}

func pageFromResponse(resp *tmdb.Response, kind metadata.Kind) *metadata.Page {
	page := &metadata.Page{
		Page:         resp.Page,
		Results:      make([]metadata.Item, 0, len(resp.Results)),
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
	}
	for _, r := range resp.Results {
		page.Results = append(page.Results, itemFromResult(r, kind))
	}
	return page
}

func itemFromDetail(d *tmdb.Detail, kind metadata.Kind) metadata.Item {
	item := itemFromResult(d.Result, kind)
	if len(item.GenreIDs) == 0 && len(d.Genres) > 0 {
		ids := make([]int64, 0, len(d.Genres))
		for _, genre := range d.Genres {
			ids = append(ids, genre.ID)
		}
		item.GenreIDs = ids
	}
	return item
}

func creditsFromResponse(c *tmdb.Credits) *metadata.Credits {
	credits := &metadata.Credits{
		ID:   c.ID,
		Cast: make([]metadata.CastMember, 0, len(c.Cast)),
		Crew: make([]metadata.CrewMember, 0, len(c.Crew)),
	}
	for _, member := range c.Cast {
		credits.Cast = append(credits.Cast, metadata.CastMember{
			ID:          member.ID,
			Name:        member.Name,
			Character:   member.Character,
			ProfilePath: member.ProfilePath,
			Order:       member.Order,
		})
	}
	for _, member := range c.Crew {
		credits.Crew = append(credits.Crew, metadata.CrewMember{
			ID:   member.ID,
			Name: member.Name,
			Job:  member.Job,
		})
	}
	return credits
}

func genresFromList(list *tmdb.GenreList) []metadata.Genre {
	genres := make([]metadata.Genre, 0, len(list.Genres))
	for _, genre := range list.Genres {
		genres = append(genres, metadata.Genre{ID: genre.ID, Name: genre.Name})
	}
	return genres
}

func crossRefFromRecord(record *omdb.Record) metadata.CrossRef {
	kind := metadata.KindMovie
	if strings.EqualFold(record.Type, "series") {
		kind = metadata.KindShow
	}
	rating := 0.0
	if parsed, err := strconv.ParseFloat(strings.TrimSpace(record.IMDbRating), 64); err == nil {
		rating = parsed
	}
	poster := strings.TrimSpace(record.Poster)
	if strings.EqualFold(poster, "N/A") {
		poster = ""
	}
	return metadata.CrossRef{
		IMDbID:    record.IMDbID,
		Kind:      kind,
		Title:     record.Title,
		Year:      record.Year,
		Rating:    rating,
		PosterURL: poster,
		Overview:  record.Plot,
	}
}
