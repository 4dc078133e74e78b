// Package service composes the catalog engine with its optional
// collaborators: the Redis result cache and the Postgres archive.
package service

import (
	"context"

	"realty-catalog/internal/cache"
	"realty-catalog/internal/catalog"
	apperrors "realty-catalog/internal/common/errors"
	"realty-catalog/internal/common/logger"
	"realty-catalog/internal/common/metrics"
	"realty-catalog/internal/storage"
)

// LoadFunc rebuilds the full normalized catalog from the raw datasets.
type LoadFunc func() ([]catalog.Listing, error)

// Catalog serves listing queries from the current in-memory snapshot.
// The cache and archive may be nil; the engine works without them.
type Catalog struct {
	store        *catalog.Store
	cache        *cache.SimilarCache
	archive      *storage.ListingRepository
	load         LoadFunc
	similarLimit int
	logger       logger.Logger
}

func New(store *catalog.Store, similarCache *cache.SimilarCache,
	archive *storage.ListingRepository, load LoadFunc,
	similarLimit int, log logger.Logger) *Catalog {

	if similarLimit <= 0 {
		similarLimit = catalog.DefaultSimilarLimit
	}
	return &Catalog{
		store:        store,
		cache:        similarCache,
		archive:      archive,
		load:         load,
		similarLimit: similarLimit,
		logger:       log.WithFields(map[string]interface{}{"component": "catalog-service"}),
	}
}

// List filters the current snapshot. Never errors; no matches is an empty
// result.
func (s *Catalog) List(params catalog.FilterParams) []catalog.Listing {
	return catalog.Filter(s.store.Listings(), params)
}

// Get returns the listing with the given id from the current snapshot.
func (s *Catalog) Get(id string) (catalog.Listing, error) {
	l, ok := s.store.Get(id)
	if !ok {
		return catalog.Listing{}, apperrors.New(apperrors.ErrCodeListingNotFound,
			"listing not found").WithMetadata("id", id)
	}
	return l, nil
}

// Similar ranks the catalog against the listing with the given id and
// returns the top matches. Results are served from the Redis cache when a
// complete cached ranking exists for the current snapshot.
func (s *Catalog) Similar(ctx context.Context, id string, limit int) ([]catalog.Listing, error) {
	reference, ok := s.store.Get(id)
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeListingNotFound,
			"listing not found").WithMetadata("id", id)
	}
	if limit <= 0 {
		limit = s.similarLimit
	}

	if s.cache != nil {
		if ids, ok := s.cache.Get(ctx, id, limit); ok {
			if listings, ok := s.resolve(ids); ok {
				metrics.SimilarCacheHits.Inc()
				return listings, nil
			}
		}
		metrics.SimilarCacheMisses.Inc()
	}

	result := catalog.FindSimilar(reference, s.store.Listings(), limit)

	if s.cache != nil {
		ids := make([]string, len(result))
		for i, l := range result {
			ids[i] = l.ID
		}
		s.cache.Set(ctx, id, limit, ids)
	}
	return result, nil
}

// resolve maps cached ids back to current-snapshot listings. Any id missing
// from the snapshot invalidates the whole cached entry.
func (s *Catalog) resolve(ids []string) ([]catalog.Listing, bool) {
	listings := make([]catalog.Listing, len(ids))
	for i, id := range ids {
		l, ok := s.store.Get(id)
		if !ok {
			return nil, false
		}
		listings[i] = l
	}
	return listings, true
}

// Reload rebuilds the catalog from the raw datasets and publishes it as a
// new snapshot. The similar cache is flushed and the archive rewritten;
// failures in either are logged but do not fail the reload, since the
// in-memory snapshot is the source of truth.
func (s *Catalog) Reload(ctx context.Context) (int, error) {
	listings, err := s.load()
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrCodeCatalogReloadFailed,
			"catalog reload failed")
	}
	s.store.Replace(listings)

	if s.cache != nil {
		if err := s.cache.Flush(ctx); err != nil {
			s.logger.Warn("similar cache flush failed", map[string]interface{}{"error": err})
		}
	}
	if s.archive != nil {
		if err := s.archive.ReplaceCatalog(ctx, listings); err != nil {
			s.logger.Error("catalog archive failed", map[string]interface{}{"error": err})
		}
	}

	s.logger.Info("catalog reloaded", map[string]interface{}{"listings": len(listings)})
	return len(listings), nil
}
