package gateway

import (
	"testing"

	"marquee/internal/metadata"
)

func TestDiscoverGenreFilterWithRatingSort(t *testing.T) {
	itemA := metadata.Item{ID: 1, Kind: metadata.KindMovie, Title: "A", Rating: 8.7, GenreIDs: []int64{28}}
	itemB := metadata.Item{ID: 2, Kind: metadata.KindMovie, Title: "B", Rating: 8.8, GenreIDs: []int64{878}}

	got := applyDiscover([]metadata.Item{itemA, itemB}, DiscoverFilters{Genre: 28, SortKey: "rating.desc"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("result = %+v, want exactly [A]", got)
	}
}

func TestDiscoverDefaultSortIsPopularityDescending(t *testing.T) {
	items := []metadata.Item{
		{ID: 1, Popularity: 10},
		{ID: 2, Popularity: 30},
		{ID: 3, Popularity: 20},
	}
	got := applyDiscover(items, DiscoverFilters{})
	if got[0].ID != 2 || got[1].ID != 3 || got[2].ID != 1 {
		t.Errorf("order = %v", []int64{got[0].ID, got[1].ID, got[2].ID})
	}
}

func TestDiscoverUnrecognizedSortFallsBackToDefault(t *testing.T) {
	items := []metadata.Item{
		{ID: 1, Popularity: 10},
		{ID: 2, Popularity: 30},
	}
	got := applyDiscover(items, DiscoverFilters{SortKey: "alphabetical"})
	if got[0].ID != 2 {
		t.Errorf("unrecognized sort key should use popularity.desc, got first id %d", got[0].ID)
	}
}

func TestDiscoverYearFilterIsExact(t *testing.T) {
	items := []metadata.Item{
		{ID: 1, ReleaseDate: "1999-03-31"},
		{ID: 2, ReleaseDate: "1999-12-01"},
		{ID: 3, ReleaseDate: "2000-01-01"},
		{ID: 4, ReleaseDate: ""},
	}
	got := applyDiscover(items, DiscoverFilters{Year: 1999})
	if len(got) != 2 {
		t.Fatalf("matches = %d, want 2", len(got))
	}
	for _, item := range got {
		if item.ReleaseYear() != 1999 {
			t.Errorf("unexpected item %+v", item)
		}
	}
}

func TestDiscoverSortVariants(t *testing.T) {
	items := []metadata.Item{
		{ID: 1, Rating: 5, Popularity: 3, ReleaseDate: "2001-01-01"},
		{ID: 2, Rating: 9, Popularity: 1, ReleaseDate: "1999-01-01"},
		{ID: 3, Rating: 7, Popularity: 2, ReleaseDate: "2003-01-01"},
	}

	firstID := func(key string) int64 {
		return applyDiscover(items, DiscoverFilters{SortKey: key})[0].ID
	}

	if got := firstID("rating.asc"); got != 1 {
		t.Errorf("rating.asc first = %d", got)
	}
	if got := firstID("rating.desc"); got != 2 {
		t.Errorf("rating.desc first = %d", got)
	}
	if got := firstID("release.asc"); got != 2 {
		t.Errorf("release.asc first = %d", got)
	}
	if got := firstID("release.desc"); got != 3 {
		t.Errorf("release.desc first = %d", got)
	}
	if got := firstID("popularity.asc"); got != 2 {
		t.Errorf("popularity.asc first = %d", got)
	}
}
