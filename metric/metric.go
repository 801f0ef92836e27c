/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package metric exposes Prometheus instrumentation for the component Manager.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Build status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics instruments a component Manager.
type Metrics struct {
	CacheHits     prometheus.Counter
	CacheMisses   prometheus.Counter
	Builds        *prometheus.CounterVec
	BuildDuration *prometheus.HistogramVec
	CachedTypes   prometheus.Gauge
}

// NewMetrics creates unregistered collectors; call Register to expose them.
func NewMetrics() *Metrics {
	return &Metrics{
		CacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "componentstore",
				Subsystem: "cache",
				Name:      "hits_total",
				Help:      "Type lookups served from the descriptor cache",
			},
		),

		CacheMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "componentstore",
				Subsystem: "cache",
				Name:      "misses_total",
				Help:      "Type lookups that required a descriptor build",
			},
		),

		Builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "componentstore",
				Subsystem: "factory",
				Name:      "builds_total",
				Help:      "Descriptor builds by factory and status",
			},
			[]string{"factory", "status"},
		),

		BuildDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "componentstore",
				Subsystem: "factory",
				Name:      "build_duration_seconds",
				Help:      "Descriptor build duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"factory"},
		),

		CachedTypes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "componentstore",
				Subsystem: "cache",
				Name:      "types",
				Help:      "Number of cached component type descriptors",
			},
		),
	}
}

// Register adds every collector to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.CacheHits, m.CacheMisses, m.Builds, m.BuildDuration, m.CachedTypes} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// RecordHit increments the cache hit counter
func (m *Metrics) RecordHit() {
	m.CacheHits.Inc()
}

// RecordMiss increments the cache miss counter
func (m *Metrics) RecordMiss() {
	m.CacheMisses.Inc()
}

// RecordBuild records one finished build.
func (m *Metrics) RecordBuild(factory string, duration time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.Builds.WithLabelValues(factory, status).Inc()
	m.BuildDuration.WithLabelValues(factory).Observe(duration.Seconds())
}

// RecordCached increments the cached descriptor gauge
func (m *Metrics) RecordCached() {
	m.CachedTypes.Inc()
}
