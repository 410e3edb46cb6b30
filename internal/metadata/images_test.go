package metadata

import "testing"

func TestPosterURL(t *testing.T) {
	base := "https://image.tmdb.org/t/p"

	got := PosterURL(base, "/abc123.jpg", PosterLarge)
	want := "https://image.tmdb.org/t/p/w500/abc123.jpg"
	if got != want {
		t.Errorf("PosterURL = %q, want %q", got, want)
	}
}

func TestPosterURLDefaultsAndNormalization(t *testing.T) {
	base := "https://image.tmdb.org/t/p/"

	// Missing leading slash and empty size tier are both normalized.
	got := PosterURL(base, "abc123.jpg", "")
	want := "https://image.tmdb.org/t/p/w342/abc123.jpg"
	if got != want {
		t.Errorf("PosterURL = %q, want %q", got, want)
	}
}

func TestPosterURLPlaceholderForAbsentPath(t *testing.T) {
	for _, path := range []string{"", "   "} {
		if got := PosterURL("https://image.tmdb.org/t/p", path, PosterSmall); got != PosterPlaceholder {
			t.Errorf("PosterURL(%q) = %q, want placeholder", path, got)
		}
	}
}
