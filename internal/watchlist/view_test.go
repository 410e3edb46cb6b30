package watchlist

import (
	"context"
	"testing"
	"time"

	"marquee/internal/metadata"
)

func seededStore(t *testing.T) *Store {
	t.Helper()

	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
	store, err := NewStore(context.Background(), newMemPersist(), nil, WithClock(clock))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	ctx := context.Background()
	seed := []metadata.Item{
		{ID: 1, Kind: metadata.KindMovie, Title: "Zodiac", ReleaseDate: "2007-03-02", Rating: 7.7},
		{ID: 2, Kind: metadata.KindShow, Title: "Andor", ReleaseDate: "2022-09-21", Rating: 8.4},
		{ID: 3, Kind: metadata.KindMovie, Title: "Alien", ReleaseDate: "1979-05-25", Rating: 8.5},
		{ID: 4, Kind: metadata.KindShow, Title: "Severance", ReleaseDate: "2022-02-18", Rating: 8.7},
	}
	for _, item := range seed {
		if _, err := store.Add(ctx, item); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	// Mark Alien and Andor watched.
	for _, key := range []struct {
		id   int64
		kind metadata.Kind
	}{{3, metadata.KindMovie}, {2, metadata.KindShow}} {
		if _, err := store.ToggleWatched(ctx, key.id, key.kind); err != nil {
			t.Fatalf("ToggleWatched: %v", err)
		}
	}
	return store
}

func titles(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestViewDefaultSortIsMostRecentFirst(t *testing.T) {
	store := seededStore(t)

	got := titles(store.View(FilterAll, SortAdded))
	want := []string{"Severance", "Alien", "Andor", "Zodiac"}
	if !equalStrings(got, want) {
		t.Errorf("default view = %v, want %v", got, want)
	}
}

func TestViewTitleSort(t *testing.T) {
	store := seededStore(t)

	got := titles(store.View(FilterAll, SortTitle))
	want := []string{"Alien", "Andor", "Severance", "Zodiac"}
	if !equalStrings(got, want) {
		t.Errorf("title view = %v, want %v", got, want)
	}
}

func TestViewRatingSort(t *testing.T) {
	store := seededStore(t)

	got := titles(store.View(FilterAll, SortRating))
	want := []string{"Severance", "Alien", "Andor", "Zodiac"}
	if !equalStrings(got, want) {
		t.Errorf("rating view = %v, want %v", got, want)
	}
}

func TestViewReleaseSort(t *testing.T) {
	store := seededStore(t)

	got := titles(store.View(FilterAll, SortRelease))
	want := []string{"Andor", "Severance", "Zodiac", "Alien"}
	if !equalStrings(got, want) {
		t.Errorf("release view = %v, want %v", got, want)
	}
}

func TestViewFilters(t *testing.T) {
	store := seededStore(t)

	watched := store.View(FilterWatched, SortTitle)
	for _, item := range watched {
		if !item.Watched {
			t.Errorf("watched view contains unwatched item %q", item.Title)
		}
	}
	if got := titles(watched); !equalStrings(got, []string{"Alien", "Andor"}) {
		t.Errorf("watched view = %v", got)
	}

	if got := titles(store.View(FilterMovies, SortTitle)); !equalStrings(got, []string{"Alien", "Zodiac"}) {
		t.Errorf("movies view = %v", got)
	}
	if got := titles(store.View(FilterShows, SortTitle)); !equalStrings(got, []string{"Andor", "Severance"}) {
		t.Errorf("shows view = %v", got)
	}
	if got := titles(store.View(FilterUnwatched, SortTitle)); !equalStrings(got, []string{"Severance", "Zodiac"}) {
		t.Errorf("unwatched view = %v", got)
	}
}

func TestViewDoesNotMutateStoredOrder(t *testing.T) {
	store := seededStore(t)

	_ = store.View(FilterAll, SortTitle)

	got := titles(store.Items())
	want := []string{"Zodiac", "Andor", "Alien", "Severance"}
	if !equalStrings(got, want) {
		t.Errorf("insertion order disturbed: %v, want %v", got, want)
	}
}

func TestParseFilterAndSortKey(t *testing.T) {
	if f, err := ParseFilter(""); err != nil || f != FilterAll {
		t.Errorf("ParseFilter empty = (%v, %v)", f, err)
	}
	if f, err := ParseFilter("TV"); err != nil || f != FilterShows {
		t.Errorf("ParseFilter tv = (%v, %v)", f, err)
	}
	if _, err := ParseFilter("starred"); err == nil {
		t.Error("expected error for unknown filter")
	}

	if key := ParseSortKey("release_date"); key != SortRelease {
		t.Errorf("ParseSortKey release_date = %v", key)
	}
	if key := ParseSortKey("anything-else"); key != SortAdded {
		t.Errorf("unrecognized sort key should fall back to default, got %v", key)
	}
}
