// Package telemetry bridges the surface core's diagnostic counters into
// Prometheus. The core keeps plain monotonic counters; anything derived
// (rates, hit ratios) is the scrape side's business.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/emberforge/scrim/pkg/surface"
)

const subsystem = "surfaces"

// Collector exposes a statistics snapshot source as Prometheus counters.
// Collect reads one snapshot per scrape; it never blocks the frame loop.
type Collector struct {
	source func() surface.StatsSnapshot

	created         *prometheus.Desc
	destroyed       *prometheus.Desc
	eventsProcessed *prometheus.Desc
	eventsUnhandled *prometheus.Desc
	poolHits        *prometheus.Desc
	poolMisses      *prometheus.Desc
}

// NewCollector builds a collector over a snapshot source, typically
// Manager.Statistics.
func NewCollector(namespace string, source func() surface.StatsSnapshot) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, name),
			help, nil, nil,
		)
	}
	return &Collector{
		source:          source,
		created:         desc("created_total", "Surfaces created and shown."),
		destroyed:       desc("destroyed_total", "Surfaces closed and released."),
		eventsProcessed: desc("events_processed_total", "Input events routed."),
		eventsUnhandled: desc("events_unhandled_total", "Input events no surface consumed."),
		poolHits:        desc("pool_hits_total", "Acquires served from the reuse pool."),
		poolMisses:      desc("pool_misses_total", "Acquires that allocated a fresh instance."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.created
	ch <- c.destroyed
	ch <- c.eventsProcessed
	ch <- c.eventsUnhandled
	ch <- c.poolHits
	ch <- c.poolMisses
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.source()
	counter := func(d *prometheus.Desc, v int64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	counter(c.created, snap.Created)
	counter(c.destroyed, snap.Destroyed)
	counter(c.eventsProcessed, snap.EventsProcessed)
	counter(c.eventsUnhandled, snap.EventsUnhandled)
	counter(c.poolHits, snap.PoolHits)
	counter(c.poolMisses, snap.PoolMisses)
}

// Register attaches the collector to a registry. A nil registry means the
// Prometheus default registry.
func Register(reg prometheus.Registerer, c *Collector) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return reg.Register(c)
}
