package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for paginated fetches.
var (
	pagesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "batchkit_pages_fetched_total",
		Help: "Total number of pages fetched successfully",
	})

	pageFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "batchkit_page_fetch_duration_seconds",
		Help:    "Duration of a single page read in seconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
	})

	fetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "batchkit_fetch_failures_total",
		Help: "Total number of page reads that returned an error",
	})
)
