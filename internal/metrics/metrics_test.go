// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/met-explorer/pkg/types"
)

func TestRecordSearch(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordSearch(types.SearchResult{})
	m.RecordSearch(types.SearchResult{TotalAvailable: 2, CandidateCount: 2})
	m.RecordSearch(types.SearchResult{TotalAvailable: 2, CandidateCount: 2, Artworks: []types.Artwork{{}}})
	m.RecordSearchFailed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(string(types.OutcomeNoResults))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(string(types.OutcomeNoMatches))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(string(types.OutcomeFound))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues(OutcomeSearchFailed)))
}

func TestRecordDetailFetch(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordDetailFetch(10*time.Millisecond, true)
	m.RecordDetailFetch(20*time.Millisecond, true)
	m.RecordDetailFetch(5*time.Millisecond, false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DetailFetchesTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DetailFetchesTotal.WithLabelValues("failure")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordSearch(types.SearchResult{})
		m.RecordSearchFailed()
		m.RecordDetailFetch(time.Second, false)
	})
}
