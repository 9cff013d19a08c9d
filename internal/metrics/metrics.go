// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics provides Prometheus metrics for the dictionary adapter.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels.
const (
	OpEntries = "get_entries"
	OpMatches = "get_matches"
)

// Metrics holds the adapter's collectors.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RecordsReturned *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dictionary_uniprot_requests_total",
				Help: "Total number of UniProt API requests",
			},
			[]string{"operation", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dictionary_uniprot_request_duration_seconds",
				Help:    "Duration of UniProt API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		RecordsReturned: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dictionary_uniprot_records_returned_total",
				Help: "Total number of records returned to callers",
			},
			[]string{"operation"},
		),
	}
}

// ObserveRequest records one outbound request. Safe on a nil receiver.
func (m *Metrics) ObserveRequest(op string, d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.RequestsTotal.WithLabelValues(op, status).Inc()
	m.RequestDuration.WithLabelValues(op).Observe(d.Seconds())
}

// ObserveRecords records the number of records handed back to a caller.
func (m *Metrics) ObserveRecords(op string, n int) {
	if m == nil {
		return
	}
	m.RecordsReturned.WithLabelValues(op).Add(float64(n))
}

// WriteTextfile writes the metrics gathered from g to path in the text
// exposition format, for the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
