package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the chunk scheduler.
var (
	chunksProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "batchkit_chunks_processed_total",
		Help: "Total number of chunks processed successfully",
	})

	wavesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "batchkit_waves_total",
		Help: "Total number of completed scheduler waves",
	})

	waveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "batchkit_wave_duration_seconds",
		Help:    "Wall-clock duration of a scheduler wave in seconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
	})

	chunkFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "batchkit_chunk_failures_total",
		Help: "Total number of chunk waves aborted by a process error",
	})
)
