package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	barsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indicator_engine_bars_processed_total",
			Help: "Total number of bars applied to indicator state",
		},
		[]string{"worker"},
	)

	barsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "indicator_engine_bars_rejected_total",
			Help: "Total number of bars rejected by validation",
		},
	)

	updateLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "indicator_engine_update_latency_seconds",
			Help:    "Time spent updating all indicators for one bar",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 7),
		},
		[]string{"worker"},
	)

	snapshotsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "indicator_engine_snapshots_published_total",
			Help: "Total number of indicator snapshots published",
		},
	)

	symbolsTracked = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "indicator_engine_symbols_tracked",
			Help: "Number of symbols with live indicator state",
		},
		[]string{"worker"},
	)

	rehydrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "indicator_engine_rehydrations_total",
			Help: "Total number of completed symbol rehydrations",
		},
	)
)
