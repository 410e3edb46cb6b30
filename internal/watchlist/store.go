package watchlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"marquee/internal/logging"
	"marquee/internal/metadata"
)

// storageKey is the single durable key holding the whole collection.
const storageKey = "watchlist"

// Persistence is the durable key-value contract the store writes
// through. kvstore.Store satisfies it.
type Persistence interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Store provides thread-safe access to the tracked-items collection.
// Every mutation rewrites the full serialized collection, so the
// durable copy always matches memory.
type Store struct {
	persist Persistence
	logger  *slog.Logger
	now     func() time.Time

	mu    sync.RWMutex
	items []Item
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for AddedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore loads the collection from durable storage. Absent or
// unparsable stored state degrades to an empty collection; that is
// logged but never surfaced to the caller.
func NewStore(ctx context.Context, persist Persistence, logger *slog.Logger, opts ...Option) (*Store, error) {
	if persist == nil {
		return nil, errors.New("watchlist requires a persistence backend")
	}
	logger = logging.NewComponentLogger(logger, "watchlist")

	s := &Store{
		persist: persist,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	raw, found, err := persist.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("load watchlist: %w", err)
	}
	if found && raw != "" {
		var items []Item
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			logger.Warn("stored watchlist is unreadable, starting empty",
				logging.Error(err))
		} else {
			s.items = items
		}
	}

	logger.Debug("watchlist loaded", logging.Int("item_count", len(s.items)))
	return s, nil
}

// Add appends a tracked item built from the snapshot if no item with
// the same (id, kind) exists. It reports whether the collection
// changed; adding a duplicate is a no-op.
func (s *Store) Add(ctx context.Context, snapshot metadata.Item) (bool, error) {
	if !snapshot.Kind.Valid() {
		return false, fmt.Errorf("invalid media kind %q", snapshot.Kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(snapshot.ID, snapshot.Kind) >= 0 {
		return false, nil
	}

	s.items = append(s.items, Item{
		ID:          snapshot.ID,
		Kind:        snapshot.Kind,
		Title:       snapshot.Title,
		PosterPath:  snapshot.PosterPath,
		ReleaseDate: snapshot.ReleaseDate,
		Rating:      snapshot.Rating,
		Overview:    snapshot.Overview,
		Watched:     false,
		AddedAt:     s.now(),
	})

	if err := s.save(ctx); err != nil {
		// Roll back so memory stays consistent with durable state.
		s.items = s.items[:len(s.items)-1]
		return false, err
	}

	s.logger.Debug("tracked item added",
		logging.Int64("id", snapshot.ID),
		logging.String("kind", snapshot.Kind.String()),
		logging.String("title", snapshot.Title))
	return true, nil
}

// Remove deletes the matching item. Removing an absent key is a no-op.
func (s *Store) Remove(ctx context.Context, id int64, kind metadata.Kind) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id, kind)
	if idx < 0 {
		return false, nil
	}

	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)

	if err := s.save(ctx); err != nil {
		s.items = append(s.items[:idx], append([]Item{removed}, s.items[idx:]...)...)
		return false, err
	}

	s.logger.Debug("tracked item removed",
		logging.Int64("id", id),
		logging.String("kind", kind.String()))
	return true, nil
}

// ToggleWatched flips the watched flag of the matching item. Toggling
// an absent key is a no-op.
func (s *Store) ToggleWatched(ctx context.Context, id int64, kind metadata.Kind) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id, kind)
	if idx < 0 {
		return false, nil
	}

	s.items[idx].Watched = !s.items[idx].Watched

	if err := s.save(ctx); err != nil {
		s.items[idx].Watched = !s.items[idx].Watched
		return false, err
	}

	s.logger.Debug("watched flag toggled",
		logging.Int64("id", id),
		logging.String("kind", kind.String()),
		logging.Bool("watched", s.items[idx].Watched))
	return true, nil
}

// Clear empties the collection.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.items
	s.items = nil

	if err := s.save(ctx); err != nil {
		s.items = previous
		return err
	}

	s.logger.Debug("watchlist cleared")
	return nil
}

// Contains reports whether an item with (id, kind) is tracked.
func (s *Store) Contains(id int64, kind metadata.Kind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id, kind) >= 0
}

// Get returns the tracked item with (id, kind) if present.
func (s *Store) Get(id int64, kind metadata.Kind) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id, kind)
	if idx < 0 {
		return Item{}, false
	}
	return s.items[idx], true
}

// Len returns the number of tracked items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Stats computes aggregate counts from current in-memory state.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{Total: len(s.items)}
	for _, item := range s.items {
		if item.Watched {
			stats.Watched++
		} else {
			stats.Unwatched++
		}
		if item.Kind == metadata.KindMovie {
			stats.Movies++
		} else {
			stats.Shows++
		}
	}
	return stats
}

// indexOf returns the position of (id, kind) in insertion order, or -1.
// Callers hold s.mu.
func (s *Store) indexOf(id int64, kind metadata.Kind) int {
	for i, item := range s.items {
		if item.ID == id && item.Kind == kind {
			return i
		}
	}
	return -1
}

// save serializes the whole collection to the single durable key.
// Callers hold s.mu.
func (s *Store) save(ctx context.Context) error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("serialize watchlist: %w", err)
	}
	if err := s.persist.Set(ctx, storageKey, string(data)); err != nil {
		return fmt.Errorf("persist watchlist: %w", err)
	}
	return nil
}
