package gateway

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"marquee/internal/metadata"
)

//go:embed sample_catalog.json
var sampleCatalogJSON []byte

const offlinePageSize = 20

// catalog is the bundled offline dataset served when no TMDB
// credential is configured. Every operation over it is deterministic.
type catalog struct {
	Movies      []metadata.Item              `json:"movies"`
	Shows       []metadata.Item              `json:"shows"`
	MovieGenres []metadata.Genre             `json:"movie_genres"`
	ShowGenres  []metadata.Genre             `json:"show_genres"`
	Credits     map[string]*metadata.Credits `json:"credits"`
}

func loadSampleCatalog() (*catalog, error) {
	var c catalog
	if err := json.Unmarshal(sampleCatalogJSON, &c); err != nil {
		return nil, fmt.Errorf("parse sample catalog: %w", err)
	}
	return &c, nil
}

func (c *catalog) items(kind metadata.Kind) []metadata.Item {
	if kind == metadata.KindShow {
		return c.Shows
	}
	return c.Movies
}

func (c *catalog) search(kind metadata.Kind, query string, page int) (*metadata.Page, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	matched := make([]metadata.Item, 0)
	for _, item := range c.items(kind) {
		if strings.Contains(strings.ToLower(item.Title), query) {
			matched = append(matched, item)
		}
	}
	return paginate(matched, page), nil
}

func (c *catalog) trending(kind metadata.Kind) (*metadata.Page, error) {
	sorted := applyDiscover(c.items(kind), DiscoverFilters{})
	return paginate(sorted, 1), nil
}

func (c *catalog) details(kind metadata.Kind, id int64) (*metadata.Item, error) {
	for _, item := range c.items(kind) {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%s %d not in sample catalog", kind, id)
}

func (c *catalog) credits(kind metadata.Kind, id int64) *metadata.Credits {
	if entry, ok := c.Credits[fmt.Sprintf("%s:%d", kind, id)]; ok {
		return entry
	}
	return &metadata.Credits{ID: id}
}

func (c *catalog) genres(kind metadata.Kind) []metadata.Genre {
	if kind == metadata.KindShow {
		return c.ShowGenres
	}
	return c.MovieGenres
}

func (c *catalog) discover(kind metadata.Kind, filters DiscoverFilters) (*metadata.Page, error) {
	return paginate(applyDiscover(c.items(kind), filters), filters.Page), nil
}

func paginate(items []metadata.Item, page int) *metadata.Page {
	if page <= 0 {
		page = 1
	}
	total := len(items)
	totalPages := (total + offlinePageSize - 1) / offlinePageSize
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * offlinePageSize
	if start > total {
		start = total
	}
	end := start + offlinePageSize
	if end > total {
		end = total
	}

	results := make([]metadata.Item, end-start)
	copy(results, items[start:end])

	return &metadata.Page{
		Page:         page,
		Results:      results,
		TotalPages:   totalPages,
		TotalResults: total,
	}
}
