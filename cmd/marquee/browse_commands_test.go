package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSearchOfflineCatalog(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "search", "movies", "matrix")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "Offline mode")
	requireContains(t, out, "The Matrix")

	out, _, err = runCLI(t, env, "search", "movies", "zzzznope")
	if err != nil {
		t.Fatalf("empty search: %v", err)
	}
	requireContains(t, out, "No movies matched")
}

func TestSearchRejectsUnknownKind(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, "search", "books", "dune"); err == nil {
		t.Fatal("expected error for unknown media kind")
	}
}

func TestTrendingAndDiscoverOffline(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "trending", "shows")
	if err != nil {
		t.Fatalf("trending: %v", err)
	}
	requireContains(t, out, "Breaking Bad")

	out, _, err = runCLI(t, env, "discover", "movies", "--genre", "878", "--sort", "rating.desc", "--json")
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	var page struct {
		Results []struct {
			Title    string  `json:"title"`
			Rating   float64 `json:"rating"`
			GenreIDs []int64 `json:"genre_ids"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(out), &page); err != nil {
		t.Fatalf("decode discover: %v", err)
	}
	if len(page.Results) == 0 {
		t.Fatal("expected science fiction results from the sample catalog")
	}
	for i, item := range page.Results {
		found := false
		for _, id := range item.GenreIDs {
			if id == 878 {
				found = true
			}
		}
		if !found {
			t.Fatalf("result %d (%s) is outside the requested genre", i, item.Title)
		}
		if i > 0 && item.Rating > page.Results[i-1].Rating {
			t.Fatalf("results are not sorted by rating descending: %s after %s", item.Title, page.Results[i-1].Title)
		}
	}
}

func TestDetailsAndCreditsOffline(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "details", "movie", "603")
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	requireContains(t, out, "The Matrix (Movie)")
	requireContains(t, out, "Rating:")

	if _, _, err := runCLI(t, env, "details", "movie", "999999"); err == nil {
		t.Fatal("expected error for unknown id")
	}

	out, _, err = runCLI(t, env, "credits", "movie", "603")
	if err != nil {
		t.Fatalf("credits: %v", err)
	}
	requireContains(t, out, "Keanu Reeves")

	// A known title without recorded credits reports an empty roll.
	out, _, err = runCLI(t, env, "credits", "movie", "550")
	if err != nil {
		t.Fatalf("credits without roll: %v", err)
	}
	requireContains(t, out, "No credits recorded")
}

func TestGenresOffline(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "genres", "movies", "--json")
	if err != nil {
		t.Fatalf("genres: %v", err)
	}
	var payload struct {
		Genres []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"genres"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode genres: %v", err)
	}
	if len(payload.Genres) == 0 {
		t.Fatal("expected genre vocabulary from the sample catalog")
	}
}

func TestFindWithoutCredentials(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "find", "tt0133093")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	requireContains(t, out, "No match for tt0133093")
}

func TestParseKindArgSpellings(t *testing.T) {
	for _, spelling := range []string{"movie", "movies", "Movie", " MOVIES "} {
		kind, err := parseKindArg(spelling)
		if err != nil {
			t.Fatalf("parseKindArg(%q): %v", spelling, err)
		}
		if kind.String() != "movie" {
			t.Fatalf("parseKindArg(%q) = %s", spelling, kind)
		}
	}
	if _, err := parseKindArg("books"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestMaskKey(t *testing.T) {
	if got := maskKey(""); got != "(not set)" {
		t.Fatalf("maskKey empty = %q", got)
	}
	if got := maskKey("abc"); got != "****" {
		t.Fatalf("maskKey short = %q", got)
	}
	masked := maskKey("abcdef123456")
	if !strings.HasPrefix(masked, "ab") || !strings.HasSuffix(masked, "56") {
		t.Fatalf("maskKey = %q", masked)
	}
	if strings.Contains(masked, "cdef") {
		t.Fatalf("maskKey leaked middle: %q", masked)
	}
}
