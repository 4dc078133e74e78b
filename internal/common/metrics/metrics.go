package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogListings = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_listings",
			Help: "Number of listings in the current catalog snapshot",
		},
		[]string{"category", "listing_type"},
	)

	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "catalog_load_duration_seconds",
			Help: "Duration of catalog normalization in seconds",
		},
	)

	SimilarRankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "catalog_similar_rank_duration_seconds",
			Help: "Duration of similarity ranking in seconds",
		},
	)

	SimilarCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_similar_cache_hits_total",
			Help: "Similar-listing requests served from the Redis cache",
		},
	)

	SimilarCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_similar_cache_misses_total",
			Help: "Similar-listing requests computed from the in-memory catalog",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_http_requests_total",
			Help: "Total HTTP requests served, by route and status code",
		},
		[]string{"route", "status"},
	)
)
