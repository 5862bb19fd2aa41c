package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	cacheLabelKeyValue = "key_value"
	cacheLabelProduct  = "product"
)

var (
	cacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_cache_hits_total",
		Help: "Total number of cache hits.",
	}, []string{"cache"})
	cacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_cache_misses_total",
		Help: "Total number of cache misses.",
	}, []string{"cache"})
)

func observeLookup(cache string, hit bool) {
	if hit {
		cacheHitsTotal.WithLabelValues(cache).Inc()

		return
	}
	cacheMissesTotal.WithLabelValues(cache).Inc()
}
