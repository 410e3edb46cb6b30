package metadata

import "strings"

// Poster size tiers recognized by the provider's asset host.
const (
	PosterSmall    = "w185"
	PosterMedium   = "w342"
	PosterLarge    = "w500"
	PosterOriginal = "original"
)

// PosterPlaceholder is returned when an item has no poster path.
const PosterPlaceholder = "about:blank#no-poster"

// PosterURL resolves a provider poster path fragment against the asset
// base URL for the requested size tier. An empty path yields the fixed
// placeholder reference so callers never branch on missing artwork.
func PosterURL(baseURL, path, size string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return PosterPlaceholder
	}
	size = strings.TrimSpace(size)
	if size == "" {
		size = PosterMedium
	}
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + "/" + size + path
}
