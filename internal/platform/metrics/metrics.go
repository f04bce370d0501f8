// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trm"

const (
	OutcomeSuccess    = "success"
	OutcomeError      = "error"
	OutcomeEmpty      = "empty"
	OutcomeSuperseded = "superseded"
)

var (
	GatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gateway",
		Name:      "request_duration_seconds",
		Help:      "Duration of requests to the rate source by operation and outcome.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "outcome"})

	GatewayDroppedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gateway",
		Name:      "dropped_records_total",
		Help:      "Records returned by the rate source that failed validation.",
	}, []string{"operation"})

	Refreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refresh_total",
		Help:      "Completed state refreshes by outcome.",
	}, []string{"outcome"})

	LookupCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "lookup_cache",
		Name:      "requests_total",
		Help:      "Lookup cache requests by kind (date, range) and result (hit, miss).",
	}, []string{"kind", "result"})

	CurrentRate = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "current_rate",
		Help:      "Most recent published rate held in memory.",
	})
)
