package gateway

import (
	"sort"
	"strconv"

	"marquee/internal/metadata"
	"marquee/internal/metadata/tmdb"
)

// DiscoverFilters is the optional filter set accepted by the discover
// operations. Zero values mean "not set".
type DiscoverFilters struct {
	Page    int
	Genre   int64
	Year    int
	SortKey string
}

func (f DiscoverFilters) params() map[string]string {
	params := map[string]string{}
	if f.Page > 0 {
		params["page"] = strconv.Itoa(f.Page)
	}
	if f.Genre > 0 {
		params["genre"] = strconv.FormatInt(f.Genre, 10)
	}
	if f.Year > 0 {
		params["year"] = strconv.Itoa(f.Year)
	}
	if f.SortKey != "" {
		params["sort"] = normalizeSortKey(f.SortKey)
	}
	return params
}

func (f DiscoverFilters) provider() tmdb.DiscoverOptions {
	return tmdb.DiscoverOptions{
		Page:   f.Page,
		Genre:  f.Genre,
		Year:   f.Year,
		SortBy: normalizeSortKey(f.SortKey),
	}
}

// normalizeSortKey maps any input onto the recognized sort vocabulary;
// unrecognized keys fall back to the default popularity.desc.
func normalizeSortKey(key string) string {
	switch key {
	case "popularity.asc", "rating.asc", "rating.desc", "release.asc", "release.desc":
		return key
	default:
		return "popularity.desc"
	}
}

// applyDiscover reproduces the provider's discover semantics over a
// local item set: exact release-year match, genre-id set membership,
// then the requested ordering. The offline catalog flows through this
// so live and offline results sort identically.
func applyDiscover(items []metadata.Item, filters DiscoverFilters) []metadata.Item {
	selected := make([]metadata.Item, 0, len(items))
	for _, item := range items {
		if filters.Genre > 0 && !item.HasGenre(filters.Genre) {
			continue
		}
		if filters.Year > 0 && item.ReleaseYear() != filters.Year {
			continue
		}
		selected = append(selected, item)
	}

	switch normalizeSortKey(filters.SortKey) {
	case "popularity.asc":
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].Popularity < selected[j].Popularity
		})
	case "rating.asc":
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].Rating < selected[j].Rating
		})
	case "rating.desc":
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].Rating > selected[j].Rating
		})
	case "release.asc":
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].ReleaseDate < selected[j].ReleaseDate
		})
	case "release.desc":
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].ReleaseDate > selected[j].ReleaseDate
		})
	default:
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].Popularity > selected[j].Popularity
		})
	}
	return selected
}
