package gateway

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/metadata"
	"marquee/internal/metadata/omdb"
	"marquee/internal/metadata/tmdb"
)

// Gateway owns the response cache, the pacer, and the provider
// clients. Construct one per process and share it; a fresh instance
// has a fresh cache, which is what tests rely on.
type Gateway struct {
	logger       *slog.Logger
	cache        *memoCache
	pace         *pacer
	tmdb         *tmdb.Client
	omdb         *omdb.Client
	offline      *catalog
	imageBaseURL string
}

// Option configures a Gateway.
type Option func(*settings)

type settings struct {
	now        func() time.Time
	httpClient *http.Client
}

// WithClock overrides the time source used for cache expiry and
// pacing.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithHTTPClient overrides the HTTP client handed to both provider
// clients.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// New builds a Gateway from configuration. A missing TMDB key routes
// every content operation to the bundled offline catalog; a missing
// OMDb key makes cross-reference lookups resolve to no matches.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Gateway, error) {
	s := settings{now: time.Now}
	for _, opt := range opts {
		opt(&s)
	}

	logger = logging.NewComponentLogger(logger, "gateway")

	g := &Gateway{
		logger:       logger,
		cache:        newMemoCache(cfg.CacheTTL(), s.now),
		pace:         newPacer(cfg.MinRequestInterval(), s.now),
		imageBaseURL: cfg.TMDB.ImageBaseURL,
	}

	if cfg.TMDB.APIKey != "" {
		var clientOpts []tmdb.Option
		if s.httpClient != nil {
			clientOpts = append(clientOpts, tmdb.WithHTTPClient(s.httpClient))
		}
		client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language, clientOpts...)
		if err != nil {
			return nil, err
		}
		g.tmdb = client
	} else {
		loaded, err := loadSampleCatalog()
		if err != nil {
			return nil, err
		}
		g.offline = loaded
		logger.Info("no tmdb api key configured, serving offline sample catalog")
	}

	if cfg.OMDB.APIKey != "" {
		var clientOpts []omdb.Option
		if s.httpClient != nil {
			clientOpts = append(clientOpts, omdb.WithHTTPClient(s.httpClient))
		}
		client, err := omdb.New(cfg.OMDB.APIKey, cfg.OMDB.BaseURL, clientOpts...)
		if err != nil {
			return nil, err
		}
		g.omdb = client
	}

	return g, nil
}

// Offline reports whether content operations are served from the
// bundled sample catalog.
func (g *Gateway) Offline() bool {
	return g.tmdb == nil
}

// PosterURL resolves a poster path fragment against the configured
// asset host, or returns the placeholder for an absent path.
func (g *Gateway) PosterURL(path, size string) string {
	return metadata.PosterURL(g.imageBaseURL, path, size)
}

// cachedFetch is the memoization primitive shared by every operation:
// serve a valid cache entry with no pacing, otherwise wait for the
// pacer (remote fetches only), run the fetch, and cache the value on
// success. Failures leave the cache untouched.
func cachedFetch[T any](g *Gateway, ctx context.Context, operation, key string, remote bool, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	if value, ok := g.cache.get(key); ok {
		if typed, ok := value.(T); ok {
			g.logger.Debug("cache hit",
				logging.String(logging.FieldOperation, operation),
				logging.String(logging.FieldCacheKey, key))
			return typed, nil
		}
	}

	if remote {
		if err := g.pace.wait(ctx); err != nil {
			return zero, newFailure(operation, err)
		}
		correlationID := uuid.NewString()
		g.logger.Debug("fetching from provider",
			logging.String(logging.FieldOperation, operation),
			logging.String(logging.FieldCacheKey, key),
			logging.String(logging.FieldCorrelationID, correlationID))

		start := time.Now()
		value, err := fetch(ctx)
		if err != nil {
			g.logger.Warn("provider fetch failed",
				logging.String(logging.FieldOperation, operation),
				logging.String(logging.FieldCorrelationID, correlationID),
				logging.Duration("latency", time.Since(start)),
				logging.Error(err))
			return zero, newFailure(operation, err)
		}
		g.logger.Debug("provider fetch complete",
			logging.String(logging.FieldOperation, operation),
			logging.String(logging.FieldCorrelationID, correlationID),
			logging.Duration("latency", time.Since(start)))

		g.cache.put(key, value)
		return value, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		return zero, newFailure(operation, err)
	}
	g.cache.put(key, value)
	return value, nil
}
