// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics defines the Prometheus instruments recorded by search runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pdiddy/met-explorer/pkg/types"
)

// Metrics holds the search instruments. A nil *Metrics records nothing.
type Metrics struct {
	// SearchesTotal counts completed runs by outcome (found, no_results,
	// no_matches, search_failed).
	SearchesTotal *prometheus.CounterVec

	// DetailFetchesTotal counts detail fetches by status (success, failure).
	DetailFetchesTotal *prometheus.CounterVec

	// DetailFetchDuration measures detail fetch latency in seconds.
	DetailFetchDuration prometheus.Histogram

	// ArtworksReturned observes the number of artworks per successful run.
	ArtworksReturned prometheus.Histogram
}

// OutcomeSearchFailed labels runs that ended with a failed search call.
const OutcomeSearchFailed = "search_failed"

// New registers the instruments with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SearchesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "met_explorer_searches_total",
				Help: "Total number of search runs by outcome",
			},
			[]string{"outcome"},
		),
		DetailFetchesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "met_explorer_detail_fetches_total",
				Help: "Total number of object detail fetches by status",
			},
			[]string{"status"},
		),
		DetailFetchDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "met_explorer_detail_fetch_duration_seconds",
				Help:    "Object detail fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		ArtworksReturned: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "met_explorer_artworks_returned",
				Help:    "Number of artworks returned per search run",
				Buckets: []float64{0, 1, 5, 10, 20, 30, 40, 50},
			},
		),
	}
}

// RecordSearch records the outcome of a finished run.
func (m *Metrics) RecordSearch(result types.SearchResult) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(string(result.Outcome())).Inc()
	m.ArtworksReturned.Observe(float64(len(result.Artworks)))
}

// RecordSearchFailed records a run whose search call failed.
func (m *Metrics) RecordSearchFailed() {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(OutcomeSearchFailed).Inc()
}

// RecordDetailFetch records one detail fetch.
func (m *Metrics) RecordDetailFetch(duration time.Duration, success bool) {
	if m == nil {
		return
	}
	status := "success"
	if !success {
		status = "failure"
	}
	m.DetailFetchesTotal.WithLabelValues(status).Inc()
	m.DetailFetchDuration.Observe(duration.Seconds())
}
