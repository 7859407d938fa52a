package syscat

import (
	"github.com/prometheus/client_golang/prometheus"
)

type CacheCollector struct {
	engine *Engine

	hits          *prometheus.Desc
	misses        *prometheus.Desc
	regenerations *prometheus.Desc
	invalidations *prometheus.Desc
	failures      *prometheus.Desc
	cachedSlots   *prometheus.Desc
	relations     *prometheus.Desc
}

func NewCacheCollector(e *Engine) *CacheCollector {
	return &CacheCollector{
		engine: e,

		hits: prometheus.NewDesc(
			"syscat_cache_hits_total",
			"Content requests served from a valid cache slot",
			nil, nil,
		),
		misses: prometheus.NewDesc(
			"syscat_cache_misses_total",
			"Content requests that required regeneration",
			nil, nil,
		),
		regenerations: prometheus.NewDesc(
			"syscat_regenerations_total",
			"Relations successfully regenerated",
			nil, nil,
		),
		invalidations: prometheus.NewDesc(
			"syscat_invalidations_total",
			"Cache slots emptied by dirty-flag invalidation",
			nil, nil,
		),
		failures: prometheus.NewDesc(
			"syscat_generation_failures_total",
			"Relation regenerations aborted by an error",
			nil, nil,
		),
		cachedSlots: prometheus.NewDesc(
			"syscat_cached_slots",
			"Cache slots currently holding content",
			nil, nil,
		),
		relations: prometheus.NewDesc(
			"syscat_relations",
			"Catalog relations registered in the engine",
			nil, nil,
		),
	}
}

func (cc *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- cc.hits
	ch <- cc.misses
	ch <- cc.regenerations
	ch <- cc.invalidations
	ch <- cc.failures
	ch <- cc.cachedSlots
	ch <- cc.relations
}

func (cc *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	s := &cc.engine.stats

	ch <- prometheus.MustNewConstMetric(
		cc.hits,
		prometheus.CounterValue,
		float64(s.hits.Load()),
	)
	ch <- prometheus.MustNewConstMetric(
		cc.misses,
		prometheus.CounterValue,
		float64(s.misses.Load()),
	)
	ch <- prometheus.MustNewConstMetric(
		cc.regenerations,
		prometheus.CounterValue,
		float64(s.regenerations.Load()),
	)
	ch <- prometheus.MustNewConstMetric(
		cc.invalidations,
		prometheus.CounterValue,
		float64(s.invalidations.Load()),
	)
	ch <- prometheus.MustNewConstMetric(
		cc.failures,
		prometheus.CounterValue,
		float64(s.failures.Load()),
	)
	ch <- prometheus.MustNewConstMetric(
		cc.cachedSlots,
		prometheus.GaugeValue,
		float64(cc.engine.cachedCount()),
	)
	ch <- prometheus.MustNewConstMetric(
		cc.relations,
		prometheus.GaugeValue,
		float64(relationCount),
	)
}
