package watchlist

import (
	"sort"
	"strings"
)

// View produces a filtered, sorted copy of the collection. The stored
// insertion order is never mutated; equal elements keep their relative
// insertion order under every sort key.
func (s *Store) View(filter Filter, key SortKey) []Item {
	s.mu.RLock()
	view := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if item.matches(filter) {
			view = append(view, item)
		}
	}
	s.mu.RUnlock()

	switch key {
	case SortTitle:
		sort.SliceStable(view, func(i, j int) bool {
			return strings.ToLower(view[i].Title) < strings.ToLower(view[j].Title)
		})
	case SortRelease:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].ReleaseDate > view[j].ReleaseDate
		})
	case SortRating:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].Rating > view[j].Rating
		})
	default:
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].AddedAt.After(view[j].AddedAt)
		})
	}
	return view
}

// Items returns a copy of the collection in insertion order.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}
